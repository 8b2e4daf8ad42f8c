package domain

import (
	"math/big"

	"github.com/x-xyz/marketplace/base/ctx"
)

// Currency is a registered fungible payment method. A currency is registered
// iff a registry entry exists for its address; the baseline and native
// currencies are configured separately and the native sentinel bypasses the
// erc20 liveness probe.
type Currency struct {
	ChainId ChainId `bson:"chainId"`
	Address Address `bson:"address"`
	// FeedAddress is the price aggregator reporting this currency's price
	// against the baseline currency
	FeedAddress Address `bson:"feedAddress"`
	// Decimals is the aggregator's reporting scale
	Decimals int32 `bson:"decimals"`
	// TokenDecimals is the token's own decimal precision, used only for
	// display amounts
	TokenDecimals int32 `bson:"tokenDecimals"`
}

type CurrencyId struct {
	ChainId ChainId `bson:"chainId"`
	Address Address `bson:"address"`
}

func (c *Currency) ToId() *CurrencyId {
	return &CurrencyId{
		ChainId: c.ChainId,
		Address: c.Address,
	}
}

type CurrencyRepo interface {
	FindOne(ctx.Ctx, ChainId, Address) (*Currency, error)
	FindAll(ctx.Ctx, ChainId) ([]Currency, error)
	Create(ctx.Ctx, *Currency) error
	Delete(ctx.Ctx, ChainId, Address) error
}

// CurrencyUsecase is the registry of accepted currencies plus the oracle
// pricing utility. All mutating operations are restricted to the marketplace
// owner.
type CurrencyUsecase interface {
	Add(c ctx.Ctx, caller Address, currency *Currency) error
	Remove(c ctx.Ctx, caller Address, token Address) error
	SetBaseline(c ctx.Ctx, caller Address, token Address) error
	SetNative(c ctx.Ctx, caller Address, token Address) error

	Get(c ctx.Ctx, token Address) (*Currency, error)
	List(c ctx.Ctx) ([]Currency, error)
	IsRegistered(c ctx.Ctx, token Address) (bool, error)
	Baseline() Address
	Native() Address

	// ConvertFromBaseline converts an amount denominated in the baseline
	// currency into the given currency using the oracle's latest answer.
	// Truncating integer division; round trips are exact only up to
	// truncation error.
	ConvertFromBaseline(c ctx.Ctx, amount *big.Int, token Address) (*big.Int, error)
	// ConvertToBaseline is the algebraic inverse of ConvertFromBaseline.
	ConvertToBaseline(c ctx.Ctx, amount *big.Int, token Address) (*big.Int, error)
	// DisplayAmount renders a raw amount in human units using the
	// currency's token decimals.
	DisplayAmount(c ctx.Ctx, amount *big.Int, token Address) (string, error)
}
