package repository

import (
	"sort"
	"sync"

	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/listing"
)

type listingInmemRepo struct {
	mu       sync.RWMutex
	listings map[uint64]*listing.Listing
	nextId   uint64
}

// NewInmemListingRepo backs the store with plain maps. Intended for engine
// tests and local runs without mongo.
func NewInmemListingRepo() listing.Repo {
	return &listingInmemRepo{
		listings: map[uint64]*listing.Listing{},
	}
}

func (r *listingInmemRepo) NextId(ctx bCtx.Ctx) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextId
	r.nextId++
	return id, nil
}

func (r *listingInmemRepo) FindOne(ctx bCtx.Ctx, listingId uint64) (*listing.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.listings[listingId]
	if !ok {
		return nil, nil
	}
	return l.Clone(), nil
}

func (r *listingInmemRepo) FindAll(ctx bCtx.Ctx, optFns ...listing.FindAllOptions) ([]*listing.Listing, error) {
	opts := listing.GetFindAllOptions(optFns...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	res := []*listing.Listing{}
	for _, l := range r.listings {
		if opts.ChainId != nil && l.ChainId != *opts.ChainId {
			continue
		}
		if opts.Seller != nil && !l.Seller.Equals(*opts.Seller) {
			continue
		}
		if opts.Collection != nil && !l.Collection.Equals(*opts.Collection) {
			continue
		}
		if opts.IsAuction != nil && l.IsAuction != *opts.IsAuction {
			continue
		}
		res = append(res, l.Clone())
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].ListingId < res[j].ListingId
	})

	if opts.Offset >= len(res) {
		return []*listing.Listing{}, nil
	}
	res = res[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(res) {
		res = res[:opts.Limit]
	}
	return res, nil
}

func (r *listingInmemRepo) Create(ctx bCtx.Ctx, l *listing.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listings[l.ListingId] = l.Clone()
	return nil
}

func (r *listingInmemRepo) Update(ctx bCtx.Ctx, l *listing.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listings[l.ListingId] = l.Clone()
	return nil
}

func (r *listingInmemRepo) Delete(ctx bCtx.Ctx, listingId uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[listingId]; !ok {
		return domain.ErrListingNotFound
	}
	delete(r.listings, listingId)
	return nil
}
