package pricefeed

import (
	"math/big"
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

// Pricefeed reads a price aggregator. The returned timestamp is the feed's
// last update time; staleness is not enforced here, the timestamp is
// informational.
type Pricefeed interface {
	LatestAnswer(c ctx.Ctx, chainId domain.ChainId, feed domain.Address) (*big.Int, time.Time, error)
}
