package usecase

import (
	"math/big"

	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
)

// ConvertFromBaseline converts a baseline-denominated amount into the target
// currency at the oracle's latest answer. amount * price / 10^decimals,
// truncating division.
func (im *impl) ConvertFromBaseline(c bCtx.Ctx, amount *big.Int, token domain.Address) (*big.Int, error) {
	if token.Equals(im.Baseline()) {
		return new(big.Int).Set(amount), nil
	}

	price, decimals, err := im.latestPrice(c, token)
	if err != nil {
		return nil, err
	}

	res := new(big.Int).Mul(amount, price)
	return res.Quo(res, domain.Pow10(decimals)), nil
}

// ConvertToBaseline is the algebraic inverse: amount * 10^decimals / price.
func (im *impl) ConvertToBaseline(c bCtx.Ctx, amount *big.Int, token domain.Address) (*big.Int, error) {
	if token.Equals(im.Baseline()) {
		return new(big.Int).Set(amount), nil
	}

	price, decimals, err := im.latestPrice(c, token)
	if err != nil {
		return nil, err
	}
	if price.Cmp(domain.Big0) <= 0 {
		return nil, domain.ErrNoPriceFeed
	}

	res := new(big.Int).Mul(amount, domain.Pow10(decimals))
	return res.Quo(res, price), nil
}

// DisplayAmount renders a raw amount in human units using the currency's own
// token decimals.
func (im *impl) DisplayAmount(c bCtx.Ctx, amount *big.Int, token domain.Address) (string, error) {
	currency, err := im.repo.FindOne(c, im.chainId, token)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return "", err
	}
	if currency == nil {
		return "", domain.ErrCurrencyNotAvailable
	}
	return decimal.NewFromBigInt(amount, -currency.TokenDecimals).String(), nil
}

func (im *impl) latestPrice(c bCtx.Ctx, token domain.Address) (*big.Int, int32, error) {
	currency, err := im.repo.FindOne(c, im.chainId, token)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, 0, err
	}
	if currency == nil {
		return nil, 0, domain.ErrCurrencyNotAvailable
	}
	if currency.FeedAddress.IsEmpty() {
		return nil, 0, domain.ErrNoPriceFeed
	}

	price, updatedAt, err := im.pricefeed.LatestAnswer(c, im.chainId, currency.FeedAddress)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"feed": currency.FeedAddress,
		}).Error("pricefeed.LatestAnswer failed")
		return nil, 0, err
	}

	c.WithFields(log.Fields{
		"token":     token,
		"price":     price.String(),
		"updatedAt": updatedAt,
	}).Debug("oracle answer")

	return price, currency.Decimals, nil
}
