package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var AggregatorABI abi.ABI

var aggregatorABI = `[{"type":"function","name":"latestRoundData","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"uint80","name":"roundId"},{"type":"int256","name":"answer"},{"type":"uint256","name":"startedAt"},{"type":"uint256","name":"updatedAt"},{"type":"uint80","name":"answeredInRound"}]},{"type":"function","name":"decimals","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"uint8"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(aggregatorABI))
	if err != nil {
		panic("Failed to parse aggregator abi")
	}
	AggregatorABI = _abi
}
