package ctx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithValue(t *testing.T) {
	req := require.New(t)

	parent := Background()
	child := WithValue(parent, "listingId", uint64(42))

	req.Equal(uint64(42), child.Value("listingId"))
	req.Nil(parent.Value("listingId"))
}

func TestWithValues(t *testing.T) {
	req := require.New(t)

	c := WithValues(Background(), map[string]interface{}{
		"seller": "0xabc",
		"txn":    "buy",
	})

	req.Equal("0xabc", c.Value("seller"))
	req.Equal("buy", c.Value("txn"))
}
