package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

type ClientCfg struct {
	RpcUrls map[int32]string
	// OperatorKey signs outgoing transactions. Hex encoded, no 0x prefix.
	OperatorKey string
}

type Client interface {
	// Call executes a read-only contract call
	Call(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)

	// Transact packs and sends a state-changing contract call signed by the operator key.
	// It blocks until the transaction is mined and returns an error when it reverted.
	Transact(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) error

	// Send transfers native value from the operator account
	Send(bCtx.Ctx, int32, common.Address, *big.Int) error
}

type clientImpl struct {
	clients     map[int32]*ethclient.Client
	operatorKey *ecdsa.PrivateKey
	operator    common.Address
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	clients := make(map[int32]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}

	im := &clientImpl{clients: clients}
	if cfg.OperatorKey != "" {
		key, err := crypto.HexToECDSA(cfg.OperatorKey)
		if err != nil {
			ctx.WithField("err", err).Error("invalid operator key")
			return nil, err
		}
		im.operatorKey = key
		im.operator = crypto.PubkeyToAddress(key.PublicKey)
	}
	return im, anyerr
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId int32, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) error {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return err
	}
	return c.sendTx(ctx, chainId, addr, value, data)
}

func (c *clientImpl) Send(ctx bCtx.Ctx, chainId int32, to common.Address, amount *big.Int) error {
	return c.sendTx(ctx, chainId, to, amount, nil)
}

func (c *clientImpl) sendTx(ctx bCtx.Ctx, chainId int32, to common.Address, value *big.Int, data []byte) error {
	client, ok := c.clients[chainId]
	if !ok {
		return ErrUnsupportedChain
	}
	if c.operatorKey == nil {
		return errors.New("operator key not configured")
	}

	nonce, err := client.PendingNonceAt(ctx, c.operator)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return err
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return err
	}
	msg := ethereum.CallMsg{
		From:     c.operator,
		To:       &to,
		Value:    value,
		Data:     data,
		GasPrice: gasPrice,
	}
	gasLimit, err := client.EstimateGas(ctx, msg)
	if err != nil {
		ctx.WithField("err", err).Error("client.EstimateGas failed")
		return err
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(int64(chainId))), c.operatorKey)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return err
	}
	if err := client.SendTransaction(ctx, signed); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"tx":   signed.Hash().Hex(),
			"to":   to.Hex(),
			"data": common.Bytes2Hex(data),
		}).Error("client.SendTransaction failed")
		return err
	}

	receipt, err := c.waitMined(ctx, chainId, signed.Hash())
	if err != nil {
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		ctx.WithField("tx", signed.Hash().Hex()).Error("transaction reverted")
		return errors.New("transaction reverted")
	}
	return nil
}

func (c *clientImpl) waitMined(ctx bCtx.Ctx, chainId int32, hash common.Hash) (*types.Receipt, error) {
	client := c.clients[chainId]
	for {
		receipt, err := client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if err != ethereum.NotFound {
			ctx.WithField("err", err).Error("client.TransactionReceipt failed")
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}
}
