package domain

import (
	"math/big"
	"strings"
)

var (
	Big0   = big.NewInt(0)
	Big10  = big.NewInt(10)
	Big100 = big.NewInt(100)
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// ToBigInt parses a base-10 amount string. The empty string counts as zero,
// matching the zero value of persisted amount fields.
func ToBigInt(num string) (*big.Int, error) {
	if num == "" {
		return new(big.Int), nil
	}
	bn, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return nil, ErrInvalidNumberFormat
	}
	return bn, nil
}

// Pow10 returns 10^n for non-negative n
func Pow10(n int32) *big.Int {
	return new(big.Int).Exp(Big10, big.NewInt(int64(n)), nil)
}
