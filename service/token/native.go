package token

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/native"
	"github.com/x-xyz/marketplace/service/chain"
)

type nativeImpl struct {
	chainClient chain.Client
}

func NewNativeTransferor(chainClient chain.Client) native.Transferor {
	return &nativeImpl{chainClient: chainClient}
}

func (im *nativeImpl) Send(c ctx.Ctx, chainId domain.ChainId, to domain.Address, amount *big.Int) error {
	if err := im.chainClient.Send(c, int32(chainId), common.HexToAddress(string(to)), amount); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"to":      to,
			"amount":  amount.String(),
		}).Error("native send failed")
		return err
	}
	return nil
}
