package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ptr"
	"github.com/x-xyz/marketplace/domain"
)

func TestMakeBsonM(t *testing.T) {
	type patchableCurrency struct {
		Address       domain.Address `bson:"address"`
		FeedAddress   domain.Address `bson:"feedAddress"`
		Decimals      *int32         `bson:"decimals,omitempty"`
		TokenDecimals *int32         `bson:"tokenDecimals,omitempty"`
	}

	patchable := &patchableCurrency{
		Address:  "0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268",
		Decimals: ptr.Int32(0),
	}

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"address": domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268"),
			// pointer to zero still participates
			"decimals": int32(0),
			// feedAddress is empty, so ignored
		},
		updater,
	)
}
