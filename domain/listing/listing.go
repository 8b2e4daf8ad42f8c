package listing

import (
	"math/big"
	"time"

	"github.com/x-xyz/marketplace/domain"
)

// Listing is one escrowed nft offered for sale. A listing is active iff its
// seller is non-empty; a cleared listing id is never reused. Amounts persist
// as base-10 strings.
//
// Invariants: an auction listing always has Price == "0"; a fixed-price
// listing always has a nil AuctionEndTime and MinBid == "0".
type Listing struct {
	ListingId  uint64         `json:"listingId" bson:"listingId"`
	ChainId    domain.ChainId `json:"chainId" bson:"chainId"`
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
	Seller     domain.Address `json:"seller" bson:"seller"`

	// fixed-price terms
	Price    string     `json:"price" bson:"price"`
	Deadline *time.Time `json:"deadline" bson:"deadline"`

	// auction terms
	IsAuction      bool       `json:"isAuction" bson:"isAuction"`
	AuctionEndTime *time.Time `json:"auctionEndTime" bson:"auctionEndTime"`
	MinBid         string     `json:"minBid" bson:"minBid"`

	Currency domain.Address `json:"currency" bson:"currency"`

	// Bidders is the insertion-ordered sequence of bidders. A bidder who
	// bids again appears twice; a withdrawn bidder stays listed with a zero
	// ledger amount.
	Bidders []domain.Address `json:"bidders" bson:"bidders"`
	// Bids maps bidder to currently held bid amount. "0" or a missing
	// entry both mean no bid.
	Bids map[domain.Address]string `json:"bids" bson:"bids"`
}

func (l *Listing) IsActive() bool {
	return l != nil && !l.Seller.IsEmpty()
}

// BidAmount returns the bidder's currently held amount, zero when absent.
func (l *Listing) BidAmount(bidder domain.Address) (*big.Int, error) {
	if l.Bids == nil {
		return new(big.Int), nil
	}
	return domain.ToBigInt(l.Bids[bidder.ToLower()])
}

// Clone deep-copies the listing so the engine can restore it when an
// outbound transfer fails after local state was already cleared.
func (l *Listing) Clone() *Listing {
	cp := *l
	if l.Deadline != nil {
		d := *l.Deadline
		cp.Deadline = &d
	}
	if l.AuctionEndTime != nil {
		e := *l.AuctionEndTime
		cp.AuctionEndTime = &e
	}
	cp.Bidders = append([]domain.Address(nil), l.Bidders...)
	if l.Bids != nil {
		cp.Bids = make(map[domain.Address]string, len(l.Bids))
		for k, v := range l.Bids {
			cp.Bids[k] = v
		}
	}
	return &cp
}

// Bid is the query projection of one entry of a listing's bid ledger.
type Bid struct {
	ListingId     uint64         `json:"listingId" bson:"listingId"`
	Bidder        domain.Address `json:"bidder" bson:"bidder"`
	Amount        string         `json:"amount" bson:"amount"`
	DisplayAmount string         `json:"displayAmount,omitempty" bson:"-"`
}

type findAllOptions struct {
	Offset     int
	Limit      int
	SortBy     string
	ChainId    *domain.ChainId
	Seller     *domain.Address
	Collection *domain.Address
	IsAuction  *bool
}

type FindAllOptions func(*findAllOptions)

func GetFindAllOptions(opts ...FindAllOptions) findAllOptions {
	res := findAllOptions{Limit: 50, SortBy: "listingId"}
	for _, opt := range opts {
		opt(&res)
	}
	return res
}

func WithPagination(offset, limit int) FindAllOptions {
	return func(o *findAllOptions) {
		o.Offset = offset
		o.Limit = limit
	}
}

func WithChainId(chainId domain.ChainId) FindAllOptions {
	return func(o *findAllOptions) {
		o.ChainId = &chainId
	}
}

func WithSeller(seller domain.Address) FindAllOptions {
	return func(o *findAllOptions) {
		s := seller.ToLower()
		o.Seller = &s
	}
}

func WithCollection(collection domain.Address) FindAllOptions {
	return func(o *findAllOptions) {
		c := collection.ToLower()
		o.Collection = &c
	}
}

func WithIsAuction(isAuction bool) FindAllOptions {
	return func(o *findAllOptions) {
		o.IsAuction = &isAuction
	}
}
