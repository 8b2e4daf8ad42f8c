package usecase

import (
	"math/big"
	"sync"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/base/metrics"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/erc20"
	"github.com/x-xyz/marketplace/domain/erc721"
	"github.com/x-xyz/marketplace/domain/listing"
	"github.com/x-xyz/marketplace/domain/native"
)

type ListingUsecaseCfg struct {
	ChainId domain.ChainId
	Owner   domain.Address
	// Engine is the escrow account holding listed nfts and bid funds
	Engine             domain.Address
	Treasury           domain.Address
	TreasuryPercentage int32
	MaxTerm            time.Duration

	Repo      listing.Repo
	Currency  domain.CurrencyUsecase
	Erc20     erc20.Erc20
	Erc721    erc721.Erc721
	Native    native.Transferor
	Publisher domain.EventPublisher
}

type impl struct {
	chainId   domain.ChainId
	owner     domain.Address
	engine    domain.Address
	maxTerm   time.Duration
	repo      listing.Repo
	currency  domain.CurrencyUsecase
	erc20     erc20.Erc20
	erc721    erc721.Erc721
	native    native.Transferor
	publisher domain.EventPublisher
	met       metrics.Service

	// mu serializes every mutating operation, matching the single-writer
	// execution the settlement rules assume
	mu          sync.Mutex
	treasury    domain.Address
	treasuryPct int32
	finalizing  bool

	timeNow func() time.Time
}

func NewListingUsecase(cfg *ListingUsecaseCfg) listing.Usecase {
	return &impl{
		chainId:     cfg.ChainId,
		owner:       cfg.Owner,
		engine:      cfg.Engine.ToLower(),
		maxTerm:     cfg.MaxTerm,
		repo:        cfg.Repo,
		currency:    cfg.Currency,
		erc20:       cfg.Erc20,
		erc721:      cfg.Erc721,
		native:      cfg.Native,
		publisher:   cfg.Publisher,
		met:         metrics.New("listing"),
		treasury:    cfg.Treasury.ToLower(),
		treasuryPct: cfg.TreasuryPercentage,
		timeNow:     time.Now,
	}
}

func (im *impl) CreateFixedPriceListing(c bCtx.Ctx, seller domain.Address, collection domain.Address, tokenId domain.TokenId, price *big.Int, term time.Duration) (uint64, error) {
	defer im.met.BumpTime("time", "func", "createFixedPriceListing").End()

	if term > im.maxTerm {
		return 0, xerrors.Errorf("term %s: %w", term, domain.ErrTooLongTerm)
	}
	if price == nil || price.Cmp(domain.Big0) <= 0 {
		return 0, domain.ErrZeroPrice
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	deadline := im.timeNow().Add(term)
	l := &listing.Listing{
		ChainId:    im.chainId,
		Collection: collection.ToLower(),
		TokenId:    tokenId,
		Seller:     seller.ToLower(),
		Price:      price.String(),
		Deadline:   &deadline,
		MinBid:     "0",
		Currency:   im.currency.Baseline(),
	}
	return im.createListing(c, l)
}

func (im *impl) CreateAuctionListing(c bCtx.Ctx, seller domain.Address, collection domain.Address, tokenId domain.TokenId, term time.Duration, minBid *big.Int, currency domain.Address) (uint64, error) {
	defer im.met.BumpTime("time", "func", "createAuctionListing").End()

	if term > im.maxTerm {
		return 0, xerrors.Errorf("term %s: %w", term, domain.ErrTooLongTerm)
	}
	if minBid == nil || minBid.Cmp(domain.Big0) <= 0 {
		return 0, domain.ErrZeroBid
	}
	if currency.IsEmpty() {
		return 0, domain.ErrZeroAddress
	}
	if registered, err := im.currency.IsRegistered(c, currency); err != nil {
		return 0, err
	} else if !registered {
		return 0, domain.ErrCurrencyNotAvailable
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	endTime := im.timeNow().Add(term)
	l := &listing.Listing{
		ChainId:        im.chainId,
		Collection:     collection.ToLower(),
		TokenId:        tokenId,
		Seller:         seller.ToLower(),
		Price:          "0",
		IsAuction:      true,
		AuctionEndTime: &endTime,
		MinBid:         minBid.String(),
		Currency:       currency.ToLower(),
	}
	return im.createListing(c, l)
}

// createListing escrows the nft and stores the record. Caller holds the lock
// and has validated the terms.
func (im *impl) createListing(c bCtx.Ctx, l *listing.Listing) (uint64, error) {
	id, err := im.repo.NextId(c)
	if err != nil {
		c.WithField("err", err).Error("repo.NextId failed")
		return 0, err
	}
	if occupied, err := im.repo.FindOne(c, id); err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return 0, err
	} else if occupied.IsActive() {
		return 0, domain.ErrItemAlreadyOnListing
	}

	owner, err := im.erc721.OwnerOf(c, im.chainId, l.Collection, l.TokenId)
	if err != nil {
		return 0, err
	}
	if !owner.Equals(l.Seller) {
		return 0, domain.ErrSenderIsNotItemOwner
	}
	if approved, err := im.erc721.IsApprovedForAll(c, im.chainId, l.Collection, l.Seller, im.engine); err != nil {
		return 0, err
	} else if !approved {
		return 0, domain.ErrNonApprovedNFT
	}

	if err := im.erc721.TransferFrom(c, im.chainId, l.Collection, l.Seller, im.engine, l.TokenId); err != nil {
		return 0, err
	}

	l.ListingId = id
	l.Bidders = []domain.Address{}
	l.Bids = map[domain.Address]string{}
	if err := im.repo.Create(c, l); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("repo.Create failed")
		return 0, err
	}

	seller := l.Seller
	im.publisher.Publish(c, &domain.Event{
		Type:      domain.EventNewListing,
		ChainId:   im.chainId,
		ListingId: &l.ListingId,
		Account:   &seller,
	})
	return id, nil
}

func (im *impl) UpdateDeadline(c bCtx.Ctx, seller domain.Address, listingId uint64, term time.Duration) error {
	if term > im.maxTerm {
		return xerrors.Errorf("term %s: %w", term, domain.ErrTooLongTerm)
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.getActive(c, listingId)
	if err != nil {
		return err
	}
	if !l.Seller.Equals(seller) {
		return domain.ErrSenderIsNotItemOwner
	}

	deadline := im.timeNow().Add(term)
	l.Deadline = &deadline
	if err := im.repo.Update(c, l); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return err
	}

	account := seller.ToLower()
	im.publisher.Publish(c, &domain.Event{
		Type:      domain.EventDeadlineUpdated,
		ChainId:   im.chainId,
		ListingId: &listingId,
		Account:   &account,
		Deadline:  &deadline,
	})
	return nil
}

func (im *impl) UpdatePrice(c bCtx.Ctx, seller domain.Address, listingId uint64, price *big.Int) error {
	if price == nil || price.Cmp(domain.Big0) <= 0 {
		return domain.ErrZeroPrice
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.getActive(c, listingId)
	if err != nil {
		return err
	}
	if !l.Seller.Equals(seller) {
		return domain.ErrSenderIsNotItemOwner
	}

	// auction listings are not excluded here, the stored price is simply
	// ignored by the auction settlement path
	l.Price = price.String()
	if err := im.repo.Update(c, l); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return err
	}

	account := seller.ToLower()
	im.publisher.Publish(c, &domain.Event{
		Type:      domain.EventPriceUpdated,
		ChainId:   im.chainId,
		ListingId: &listingId,
		Account:   &account,
		Amount:    price.String(),
	})
	return nil
}

func (im *impl) UpdateTreasury(c bCtx.Ctx, caller domain.Address, treasury domain.Address) error {
	if !caller.Equals(im.owner) {
		return domain.ErrOnlyOwner
	}
	if treasury.IsEmpty() {
		return domain.ErrZeroAddress
	}

	im.mu.Lock()
	im.treasury = treasury.ToLower()
	im.mu.Unlock()

	account := treasury.ToLower()
	im.publisher.Publish(c, &domain.Event{
		Type:    domain.EventTreasuryChanged,
		ChainId: im.chainId,
		Account: &account,
	})
	return nil
}

func (im *impl) UpdateTreasuryPercentage(c bCtx.Ctx, caller domain.Address, percentage int32) error {
	if !caller.Equals(im.owner) {
		return domain.ErrOnlyOwner
	}
	if percentage < 0 || percentage > 100 {
		return xerrors.Errorf("percentage %d: %w", percentage, domain.ErrInvalidPercentage)
	}

	im.mu.Lock()
	im.treasuryPct = percentage
	im.mu.Unlock()

	im.publisher.Publish(c, &domain.Event{
		Type:       domain.EventTreasuryPercentageChanged,
		ChainId:    im.chainId,
		Percentage: &percentage,
	})
	return nil
}

// getActive loads the record under the caller-held lock. Cleared records are
// tombstones, the id stays occupied but the listing no longer exists.
func (im *impl) getActive(c bCtx.Ctx, listingId uint64) (*listing.Listing, error) {
	l, err := im.repo.FindOne(c, listingId)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	if !l.IsActive() {
		return nil, domain.ErrListingNotFound
	}
	return l, nil
}
