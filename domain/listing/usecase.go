package listing

import (
	"math/big"
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

// Usecase is the listing lifecycle and settlement engine. Every operation
// runs to completion under a single writer: it either fully applies or leaves
// no visible partial state. Expiry is a guard evaluated at access time, never
// a stored status.
type Usecase interface {
	// CreateFixedPriceListing escrows the nft and opens a fixed-price
	// listing denominated in the baseline currency. The deadline is
	// now + term.
	CreateFixedPriceListing(c ctx.Ctx, seller domain.Address, collection domain.Address, tokenId domain.TokenId, price *big.Int, term time.Duration) (uint64, error)

	// CreateAuctionListing escrows the nft and opens an auction accepting
	// bids in the given registered currency. The end time is now + term.
	CreateAuctionListing(c ctx.Ctx, seller domain.Address, collection domain.Address, tokenId domain.TokenId, term time.Duration, minBid *big.Int, currency domain.Address) (uint64, error)

	// BuyListing settles a fixed-price listing in the given currency at
	// the oracle rate. value is the native payment attached by the buyer,
	// only consulted when paying in the native currency.
	BuyListing(c ctx.Ctx, buyer domain.Address, listingId uint64, payCurrency domain.Address, value *big.Int) error

	// PlaceBid records a bid and escrows the funds. For native-currency
	// auctions the bid amount is the attached value. Bidding again
	// overwrites the held amount, it does not accumulate.
	PlaceBid(c ctx.Ctx, bidder domain.Address, listingId uint64, amount *big.Int, value *big.Int) error

	// WithdrawBid refunds the caller's held bid and zeroes the ledger
	// entry. The bidder stays in the bidder sequence.
	WithdrawBid(c ctx.Ctx, bidder domain.Address, listingId uint64) error

	// UpdateDeadline rewrites the purchase deadline to now + term.
	UpdateDeadline(c ctx.Ctx, seller domain.Address, listingId uint64, term time.Duration) error

	// UpdatePrice replaces the fixed price.
	UpdatePrice(c ctx.Ctx, seller domain.Address, listingId uint64, price *big.Int) error

	// FinalizeAuction settles an ended auction in favor of the named
	// winner at the winner's recorded bid. Losing bids stay escrowed until
	// individually withdrawn.
	FinalizeAuction(c ctx.Ctx, caller domain.Address, listingId uint64, winner domain.Address) error

	// UpdateTreasury and UpdateTreasuryPercentage are owner-restricted.
	UpdateTreasury(c ctx.Ctx, caller domain.Address, treasury domain.Address) error
	UpdateTreasuryPercentage(c ctx.Ctx, caller domain.Address, percentage int32) error

	// read-only projections
	GetListing(c ctx.Ctx, listingId uint64) (*Listing, error)
	GetListings(c ctx.Ctx, opts ...FindAllOptions) ([]*Listing, error)
	GetBid(c ctx.Ctx, listingId uint64, bidder domain.Address) (*Bid, error)
	GetBids(c ctx.Ctx, listingId uint64) ([]Bid, error)
}
