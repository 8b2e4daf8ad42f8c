package pricefeed

import (
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/x-xyz/marketplace/base/abi"
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/keys"
	"github.com/x-xyz/marketplace/domain/pricefeed"
	"github.com/x-xyz/marketplace/service/cache"
	"github.com/x-xyz/marketplace/service/cache/provider/primitive"
	"github.com/x-xyz/marketplace/service/chain"
)

type roundData struct {
	Answer    string `json:"answer"`
	UpdatedAt int64  `json:"updatedAt"`
}

type impl struct {
	chainClient chain.Client
	cache       cache.Service
}

func New(chainClient chain.Client) pricefeed.Pricefeed {
	return &impl{
		chainClient: chainClient,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxPricefeed,
			Cache: primitive.NewPrimitive(keys.PfxPricefeed, 32),
		}),
	}
}

func (im *impl) LatestAnswer(c ctx.Ctx, chainId domain.ChainId, feed domain.Address) (*big.Int, time.Time, error) {
	var res roundData

	key := keys.CacheKey(strconv.Itoa(int(chainId)), feed.ToLowerStr(), "latest")

	if err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		if res, err := im.latestRoundData(c, chainId, feed); err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"feed":    feed,
			}).Error("latestRoundData failed")
			return nil, err
		} else {
			return res, nil
		}
	}); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"feed":    feed,
		}).Error("cache.GetByFunc failed")
		return nil, time.Time{}, err
	}

	answer, err := domain.ToBigInt(res.Answer)
	if err != nil {
		return nil, time.Time{}, err
	}
	return answer, time.Unix(res.UpdatedAt, 0), nil
}

func (im *impl) latestRoundData(c ctx.Ctx, chainId domain.ChainId, feed domain.Address) (*roundData, error) {
	feedAddr := common.HexToAddress(string(feed))

	res, err := im.chainClient.Call(c, int32(chainId), feedAddr, nil, abi.AggregatorABI, "latestRoundData")
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"feed":    feed,
		}).Error("chainClient.Call failed")
		return nil, err
	}

	answer := res[1].(*big.Int)
	updatedAt := res[3].(*big.Int)
	return &roundData{
		Answer:    answer.String(),
		UpdatedAt: updatedAt.Int64(),
	}, nil
}
