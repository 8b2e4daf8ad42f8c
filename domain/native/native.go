package native

import (
	"math/big"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

// Transferor sends native-asset value out of the marketplace escrow.
type Transferor interface {
	Send(c ctx.Ctx, chainId domain.ChainId, to domain.Address, amount *big.Int) error
}
