package usecase

import (
	"math/big"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/listing"
)

func (im *impl) BuyListing(c bCtx.Ctx, buyer domain.Address, listingId uint64, payCurrency domain.Address, value *big.Int) error {
	defer im.met.BumpTime("time", "func", "buyListing").End()

	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.getActive(c, listingId)
	if err != nil {
		return err
	}
	if l.IsAuction {
		return domain.ErrNonStandardPurchase
	}
	if buyer.Equals(l.Seller) {
		return domain.ErrSenderIsItemOwner
	}
	now := im.timeNow()
	if l.Deadline != nil && now.After(*l.Deadline) {
		return xerrors.Errorf("deadline %s passed: %w", l.Deadline, domain.ErrExpired)
	}

	price, err := domain.ToBigInt(l.Price)
	if err != nil {
		return err
	}
	amount, err := im.currency.ConvertFromBaseline(c, price, payCurrency)
	if err != nil {
		return err
	}
	fee, remainder := im.feeSplit(amount)

	isNative := payCurrency.Equals(im.currency.Native())
	if isNative {
		attached := value
		if attached == nil {
			attached = new(big.Int)
		}
		if attached.Cmp(amount) < 0 {
			return xerrors.Errorf("attached %s, requires %s: %w", attached, amount, domain.ErrInsufficientPayment)
		}
	} else {
		if registered, err := im.currency.IsRegistered(c, payCurrency); err != nil {
			return err
		} else if !registered {
			return domain.ErrCurrencyNotAvailable
		}
	}

	buyer = buyer.ToLower()
	payCurrency = payCurrency.ToLower()
	seller := l.Seller

	// clear the record before any outbound transfer, restore on failure
	snapshot := l.Clone()
	l.Seller = ""
	if err := im.repo.Update(c, l); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return err
	}

	if isNative {
		if fee.Cmp(domain.Big0) > 0 {
			if err := im.native.Send(c, im.chainId, im.treasury, fee); err != nil {
				im.restore(c, snapshot)
				return err
			}
		}
		if err := im.native.Send(c, im.chainId, seller, remainder); err != nil {
			im.restore(c, snapshot)
			return err
		}
	} else {
		if err := im.erc20.TransferFrom(c, im.chainId, payCurrency, buyer, seller, amount); err != nil {
			im.restore(c, snapshot)
			return err
		}
		if fee.Cmp(domain.Big0) > 0 {
			if err := im.erc20.TransferFrom(c, im.chainId, payCurrency, seller, im.treasury, fee); err != nil {
				im.restore(c, snapshot)
				return err
			}
		}
	}

	if err := im.erc721.SafeTransferFrom(c, im.chainId, l.Collection, im.engine, buyer, l.TokenId); err != nil {
		im.restore(c, snapshot)
		return err
	}

	im.publisher.Publish(c, &domain.Event{
		Type:      domain.EventListingPurchased,
		ChainId:   im.chainId,
		ListingId: &listingId,
		Account:   &buyer,
		Currency:  &payCurrency,
		Amount:    amount.String(),
	})
	return nil
}

func (im *impl) FinalizeAuction(c bCtx.Ctx, caller domain.Address, listingId uint64, winner domain.Address) error {
	defer im.met.BumpTime("time", "func", "finalizeAuction").End()

	im.mu.Lock()
	defer im.mu.Unlock()

	if im.finalizing {
		return domain.ErrReentrantCall
	}
	im.finalizing = true
	defer func() { im.finalizing = false }()

	l, err := im.getActive(c, listingId)
	if err != nil {
		return err
	}
	if !l.IsAuction {
		return domain.ErrNonAuction
	}
	now := im.timeNow()
	if l.AuctionEndTime != nil && !now.After(*l.AuctionEndTime) {
		return xerrors.Errorf("ends at %s: %w", l.AuctionEndTime, domain.ErrAuctionNotOver)
	}
	if !caller.Equals(l.Seller) {
		return domain.ErrSenderIsNotItemOwner
	}

	winner = winner.ToLower()
	winBid, err := l.BidAmount(winner)
	if err != nil {
		return err
	}
	if winBid.Cmp(domain.Big0) == 0 {
		return domain.ErrWinnerHasNotBid
	}

	fee, remainder := im.feeSplit(winBid)
	isNative := l.Currency.Equals(im.currency.Native())
	seller := l.Seller

	// zero the winning entry and clear the record before any outbound
	// transfer, losing bids stay in the ledger for withdrawal
	snapshot := l.Clone()
	l.Bids[winner] = "0"
	l.Seller = ""
	if err := im.repo.Update(c, l); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return err
	}

	if isNative {
		if fee.Cmp(domain.Big0) > 0 {
			if err := im.native.Send(c, im.chainId, im.treasury, fee); err != nil {
				im.restore(c, snapshot)
				return err
			}
		}
		if err := im.native.Send(c, im.chainId, seller, remainder); err != nil {
			im.restore(c, snapshot)
			return err
		}
	} else {
		// escrow pays the seller in full, the fee is clawed back from the
		// seller as a second independent transfer
		if err := im.erc20.Transfer(c, im.chainId, l.Currency, seller, winBid); err != nil {
			im.restore(c, snapshot)
			return err
		}
		if fee.Cmp(domain.Big0) > 0 {
			if err := im.erc20.TransferFrom(c, im.chainId, l.Currency, seller, im.treasury, fee); err != nil {
				im.restore(c, snapshot)
				return err
			}
		}
	}

	if err := im.erc721.SafeTransferFrom(c, im.chainId, l.Collection, im.engine, winner, l.TokenId); err != nil {
		im.restore(c, snapshot)
		return err
	}

	currency := l.Currency
	im.publisher.Publish(c, &domain.Event{
		Type:      domain.EventAuctionResult,
		ChainId:   im.chainId,
		ListingId: &listingId,
		Account:   &winner,
		Currency:  &currency,
		Amount:    winBid.String(),
	})
	return nil
}

// feeSplit computes the treasury cut, truncating toward zero.
func (im *impl) feeSplit(amount *big.Int) (fee, remainder *big.Int) {
	fee = new(big.Int).Mul(amount, big.NewInt(int64(im.treasuryPct)))
	fee.Quo(fee, domain.Big100)
	remainder = new(big.Int).Sub(amount, fee)
	return fee, remainder
}

func (im *impl) restore(c bCtx.Ctx, snapshot *listing.Listing) {
	if err := im.repo.Update(c, snapshot); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": snapshot.ListingId,
		}).Error("restore failed")
	}
}
