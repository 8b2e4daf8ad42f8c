package domain

import (
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
)

type EventType string

const (
	EventNewListing                EventType = "NewListing"
	EventListingPurchased          EventType = "ListingPurchased"
	EventNewBid                    EventType = "NewBid"
	EventBidWithdrawn              EventType = "BidWithdrawn"
	EventAuctionResult             EventType = "AuctionResult"
	EventTreasuryChanged           EventType = "TreasuryChanged"
	EventTreasuryPercentageChanged EventType = "TreasuryPercentageChanged"
	EventCurrencyAdded             EventType = "CurrencyAdded"
	EventCurrencyRemoved           EventType = "CurrencyRemoved"
	EventPriceUpdated              EventType = "PriceUpdated"
	EventDeadlineUpdated           EventType = "DeadlineUpdated"
	EventBaselineCurrencySet       EventType = "BaselineCurrencySet"
	EventNativeCurrencySet         EventType = "NativeCurrencySet"
)

// Event is one entry of the durable marketplace event feed consumed by
// indexers. Only the fields relevant to the event type are set.
type Event struct {
	Type       EventType  `bson:"type"`
	ChainId    ChainId    `bson:"chainId"`
	ListingId  *uint64    `bson:"listingId,omitempty"`
	Account    *Address   `bson:"account,omitempty"`
	Currency   *Address   `bson:"currency,omitempty"`
	Feed       *Address   `bson:"feed,omitempty"`
	Amount     string     `bson:"amount,omitempty"`
	Percentage *int32     `bson:"percentage,omitempty"`
	Deadline   *time.Time `bson:"deadline,omitempty"`
	CreatedAt  time.Time  `bson:"createdAt"`
}

type EventRepo interface {
	Insert(ctx.Ctx, *Event) error
	FindAll(c ctx.Ctx, offset, limit int, types ...EventType) ([]Event, error)
}

// EventPublisher appends to the event feed. Publishing is best effort: a
// failure must not abort the operation that already settled, implementations
// log and move on.
type EventPublisher interface {
	Publish(ctx.Ctx, *Event)
}
