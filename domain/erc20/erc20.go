package erc20

import (
	"math/big"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

// Erc20 is the fungible-token transfer capability. Any failure, including an
// insufficient balance or allowance, aborts the enclosing operation.
type Erc20 interface {
	TotalSupply(c ctx.Ctx, chainId domain.ChainId, token domain.Address) (*big.Int, error)
	BalanceOf(c ctx.Ctx, chainId domain.ChainId, token domain.Address, owner domain.Address) (*big.Int, error)
	Transfer(c ctx.Ctx, chainId domain.ChainId, token domain.Address, to domain.Address, amount *big.Int) error
	TransferFrom(c ctx.Ctx, chainId domain.ChainId, token domain.Address, from, to domain.Address, amount *big.Int) error
}
