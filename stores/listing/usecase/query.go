package usecase

import (
	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/listing"
)

func (im *impl) GetListing(c bCtx.Ctx, listingId uint64) (*listing.Listing, error) {
	l, err := im.repo.FindOne(c, listingId)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	if !l.IsActive() {
		// absent and cleared ids alike read back as the zero record
		return &listing.Listing{ListingId: listingId}, nil
	}
	return l, nil
}

func (im *impl) GetListings(c bCtx.Ctx, opts ...listing.FindAllOptions) ([]*listing.Listing, error) {
	ls, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}

	res := []*listing.Listing{}
	for _, l := range ls {
		if l.IsActive() {
			res = append(res, l)
		}
	}
	return res, nil
}

func (im *impl) GetBid(c bCtx.Ctx, listingId uint64, bidder domain.Address) (*listing.Bid, error) {
	l, err := im.repo.FindOne(c, listingId)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrListingNotFound
	}

	bidder = bidder.ToLower()
	amount, err := l.BidAmount(bidder)
	if err != nil {
		return nil, err
	}
	return &listing.Bid{
		ListingId:     listingId,
		Bidder:        bidder,
		Amount:        amount.String(),
		DisplayAmount: im.displayAmount(c, l, amount.String()),
	}, nil
}

func (im *impl) GetBids(c bCtx.Ctx, listingId uint64) ([]listing.Bid, error) {
	l, err := im.repo.FindOne(c, listingId)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrListingNotFound
	}

	res := []listing.Bid{}
	for _, bidder := range l.Bidders {
		amount, err := l.BidAmount(bidder)
		if err != nil {
			return nil, err
		}
		res = append(res, listing.Bid{
			ListingId:     listingId,
			Bidder:        bidder,
			Amount:        amount.String(),
			DisplayAmount: im.displayAmount(c, l, amount.String()),
		})
	}
	return res, nil
}

// displayAmount is best effort, projections render without it when the
// currency lookup fails.
func (im *impl) displayAmount(c bCtx.Ctx, l *listing.Listing, amount string) string {
	raw, err := domain.ToBigInt(amount)
	if err != nil {
		return ""
	}
	display, err := im.currency.DisplayAmount(c, raw, l.Currency)
	if err != nil {
		return ""
	}
	return display
}
