package token

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/x-xyz/marketplace/base/abi"
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/erc20"
	"github.com/x-xyz/marketplace/service/chain"
)

type erc20Impl struct {
	chainClient chain.Client
}

func NewErc20(chainClient chain.Client) erc20.Erc20 {
	return &erc20Impl{chainClient: chainClient}
}

func (im *erc20Impl) TotalSupply(c ctx.Ctx, chainId domain.ChainId, token domain.Address) (*big.Int, error) {
	res, err := im.chainClient.Call(c, int32(chainId), common.HexToAddress(string(token)), nil, abi.ERC20TokenABI, "totalSupply")
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"token":   token,
		}).Error("totalSupply call failed")
		return nil, err
	}
	return res[0].(*big.Int), nil
}

func (im *erc20Impl) BalanceOf(c ctx.Ctx, chainId domain.ChainId, token domain.Address, owner domain.Address) (*big.Int, error) {
	res, err := im.chainClient.Call(c, int32(chainId), common.HexToAddress(string(token)), nil, abi.ERC20TokenABI, "balanceOf", common.HexToAddress(string(owner)))
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"token":   token,
			"owner":   owner,
		}).Error("balanceOf call failed")
		return nil, err
	}
	return res[0].(*big.Int), nil
}

func (im *erc20Impl) Transfer(c ctx.Ctx, chainId domain.ChainId, token domain.Address, to domain.Address, amount *big.Int) error {
	err := im.chainClient.Transact(c, int32(chainId), common.HexToAddress(string(token)), nil, abi.ERC20TokenABI, "transfer", common.HexToAddress(string(to)), amount)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"token":   token,
			"to":      to,
			"amount":  amount.String(),
		}).Error("transfer failed")
		return err
	}
	return nil
}

func (im *erc20Impl) TransferFrom(c ctx.Ctx, chainId domain.ChainId, token domain.Address, from, to domain.Address, amount *big.Int) error {
	err := im.chainClient.Transact(c, int32(chainId), common.HexToAddress(string(token)), nil, abi.ERC20TokenABI, "transferFrom", common.HexToAddress(string(from)), common.HexToAddress(string(to)), amount)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"token":   token,
			"from":    from,
			"to":      to,
			"amount":  amount.String(),
		}).Error("transferFrom failed")
		return err
	}
	return nil
}
