package usecase

import (
	"math/big"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

func (im *impl) PlaceBid(c bCtx.Ctx, bidder domain.Address, listingId uint64, amount *big.Int, value *big.Int) error {
	defer im.met.BumpTime("time", "func", "placeBid").End()

	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.getActive(c, listingId)
	if err != nil {
		return err
	}
	if !l.IsAuction {
		return domain.ErrNonAuction
	}
	if bidder.Equals(l.Seller) {
		return domain.ErrSenderIsItemOwner
	}
	now := im.timeNow()
	if l.AuctionEndTime != nil && now.After(*l.AuctionEndTime) {
		return xerrors.Errorf("ended at %s: %w", l.AuctionEndTime, domain.ErrExpired)
	}

	isNative := l.Currency.Equals(im.currency.Native())
	if isNative {
		// the attached value is the bid
		amount = value
	}
	if amount == nil || amount.Cmp(domain.Big0) <= 0 {
		return domain.ErrZeroBid
	}
	minBid, err := domain.ToBigInt(l.MinBid)
	if err != nil {
		return err
	}
	if amount.Cmp(minBid) < 0 {
		return xerrors.Errorf("bid %s below minimum %s: %w", amount, minBid, domain.ErrBidIsTooLow)
	}

	bidder = bidder.ToLower()

	// escrow first, the record only changes once the funds are held
	if !isNative {
		if err := im.erc20.TransferFrom(c, im.chainId, l.Currency, bidder, im.engine, amount); err != nil {
			return err
		}
	}

	// a repeat bidder appears twice in the sequence, the ledger holds only
	// the latest amount
	l.Bidders = append(l.Bidders, bidder)
	if l.Bids == nil {
		l.Bids = map[domain.Address]string{}
	}
	l.Bids[bidder] = amount.String()
	if err := im.repo.Update(c, l); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return err
	}

	currency := l.Currency
	im.publisher.Publish(c, &domain.Event{
		Type:      domain.EventNewBid,
		ChainId:   im.chainId,
		ListingId: &listingId,
		Account:   &bidder,
		Currency:  &currency,
		Amount:    amount.String(),
	})
	return nil
}

func (im *impl) WithdrawBid(c bCtx.Ctx, bidder domain.Address, listingId uint64) error {
	defer im.met.BumpTime("time", "func", "withdrawBid").End()

	im.mu.Lock()
	defer im.mu.Unlock()

	// withdrawal works on cleared records too, losing bids outlive the
	// auction they were placed in
	l, err := im.repo.FindOne(c, listingId)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return err
	}
	if l == nil {
		return domain.ErrListingNotFound
	}

	bidder = bidder.ToLower()
	held, err := l.BidAmount(bidder)
	if err != nil {
		return err
	}
	if held.Cmp(domain.Big0) == 0 {
		return domain.ErrZeroBid
	}

	// zero the entry before refunding, restore it if the refund fails
	snapshot := l.Clone()
	l.Bids[bidder] = "0"
	if err := im.repo.Update(c, l); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return err
	}

	if l.Currency.Equals(im.currency.Native()) {
		if err := im.native.Send(c, im.chainId, bidder, held); err != nil {
			im.restore(c, snapshot)
			return err
		}
	} else {
		if err := im.erc20.Transfer(c, im.chainId, l.Currency, bidder, held); err != nil {
			im.restore(c, snapshot)
			return err
		}
	}

	im.publisher.Publish(c, &domain.Event{
		Type:      domain.EventBidWithdrawn,
		ChainId:   im.chainId,
		ListingId: &listingId,
		Account:   &bidder,
		Amount:    held.String(),
	})
	return nil
}
