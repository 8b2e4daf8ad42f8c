package token

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/x-xyz/marketplace/base/abi"
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/erc721"
	"github.com/x-xyz/marketplace/service/chain"
)

type erc721Impl struct {
	chainClient chain.Client
}

func NewErc721(chainClient chain.Client) erc721.Erc721 {
	return &erc721Impl{chainClient: chainClient}
}

func (im *erc721Impl) OwnerOf(c ctx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	id, err := domain.ToBigInt(tokenId.String())
	if err != nil {
		return "", err
	}
	res, err := im.chainClient.Call(c, int32(chainId), common.HexToAddress(string(collection)), nil, abi.ERC721TokenABI, "ownerOf", id)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"chainId":    chainId,
			"collection": collection,
			"tokenId":    tokenId,
		}).Error("ownerOf call failed")
		return "", err
	}
	return domain.Address(res[0].(common.Address).Hex()).ToLower(), nil
}

func (im *erc721Impl) IsApprovedForAll(c ctx.Ctx, chainId domain.ChainId, collection domain.Address, owner, operator domain.Address) (bool, error) {
	res, err := im.chainClient.Call(c, int32(chainId), common.HexToAddress(string(collection)), nil, abi.ERC721TokenABI, "isApprovedForAll", common.HexToAddress(string(owner)), common.HexToAddress(string(operator)))
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"chainId":    chainId,
			"collection": collection,
			"owner":      owner,
			"operator":   operator,
		}).Error("isApprovedForAll call failed")
		return false, err
	}
	return res[0].(bool), nil
}

func (im *erc721Impl) TransferFrom(c ctx.Ctx, chainId domain.ChainId, collection domain.Address, from, to domain.Address, tokenId domain.TokenId) error {
	id, err := domain.ToBigInt(tokenId.String())
	if err != nil {
		return err
	}
	err = im.chainClient.Transact(c, int32(chainId), common.HexToAddress(string(collection)), nil, abi.ERC721TokenABI, "transferFrom", common.HexToAddress(string(from)), common.HexToAddress(string(to)), id)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"chainId":    chainId,
			"collection": collection,
			"from":       from,
			"to":         to,
			"tokenId":    tokenId,
		}).Error("transferFrom failed")
		return err
	}
	return nil
}

func (im *erc721Impl) SafeTransferFrom(c ctx.Ctx, chainId domain.ChainId, collection domain.Address, from, to domain.Address, tokenId domain.TokenId) error {
	id, err := domain.ToBigInt(tokenId.String())
	if err != nil {
		return err
	}
	err = im.chainClient.Transact(c, int32(chainId), common.HexToAddress(string(collection)), nil, abi.ERC721TokenABI, "safeTransferFrom", common.HexToAddress(string(from)), common.HexToAddress(string(to)), id)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"chainId":    chainId,
			"collection": collection,
			"from":       from,
			"to":         to,
			"tokenId":    tokenId,
		}).Error("safeTransferFrom failed")
		return err
	}
	return nil
}
