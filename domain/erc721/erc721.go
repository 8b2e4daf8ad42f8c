package erc721

import (
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

// Erc721 is the unique-asset transfer capability. TransferFrom is used for
// escrow intake; SafeTransferFrom for payout, it additionally verifies the
// recipient can accept the asset.
type Erc721 interface {
	OwnerOf(c ctx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId domain.TokenId) (domain.Address, error)
	IsApprovedForAll(c ctx.Ctx, chainId domain.ChainId, collection domain.Address, owner, operator domain.Address) (bool, error)
	TransferFrom(c ctx.Ctx, chainId domain.ChainId, collection domain.Address, from, to domain.Address, tokenId domain.TokenId) error
	SafeTransferFrom(c ctx.Ctx, chainId domain.ChainId, collection domain.Address, from, to domain.Address, tokenId domain.TokenId) error
}
