package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	mErc20 "github.com/x-xyz/marketplace/domain/erc20/mocks"
	mErc721 "github.com/x-xyz/marketplace/domain/erc721/mocks"
	mNative "github.com/x-xyz/marketplace/domain/native/mocks"
	mPricefeed "github.com/x-xyz/marketplace/domain/pricefeed/mocks"
	currency_repository "github.com/x-xyz/marketplace/stores/currency/repository"
	currency_usecase "github.com/x-xyz/marketplace/stores/currency/usecase"
	listing_repository "github.com/x-xyz/marketplace/stores/listing/repository"
)

var (
	mockCtx = bCtx.Background()

	chainId  = domain.ChainId(1)
	owner    = domain.Address("0x000000000000000000000000000000000000000a")
	engine   = domain.Address("0x000000000000000000000000000000000000000e")
	treasury = domain.Address("0x000000000000000000000000000000000000000f")

	seller  = domain.Address("0x0000000000000000000000000000000000000001")
	buyer   = domain.Address("0x0000000000000000000000000000000000000002")
	bidder1 = domain.Address("0x0000000000000000000000000000000000000003")
	bidder2 = domain.Address("0x0000000000000000000000000000000000000004")

	collection = domain.Address("0x00000000000000000000000000000000000000c0")
	tokenId    = domain.TokenId("42")

	baselineCur = domain.Address("0x00000000000000000000000000000000000000b0")
	tokenCur    = domain.Address("0x00000000000000000000000000000000000000d0")
	tokenFeed   = domain.Address("0x00000000000000000000000000000000000000d1")
	nativeCur   = domain.Address("0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	nativeFeed  = domain.Address("0x00000000000000000000000000000000000000e1")
)

type eventRecorder struct {
	events []*domain.Event
}

func (r *eventRecorder) Publish(_ bCtx.Ctx, e *domain.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) last() *domain.Event {
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

type engineSuite struct {
	suite.Suite

	erc20     *mErc20.Erc20
	erc721    *mErc721.Erc721
	native    *mNative.Transferor
	pricefeed *mPricefeed.Pricefeed
	events    *eventRecorder
	currency  domain.CurrencyUsecase
	im        *impl

	now time.Time
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(engineSuite))
}

func (s *engineSuite) SetupTest() {
	s.erc20 = &mErc20.Erc20{}
	s.erc721 = &mErc721.Erc721{}
	s.native = &mNative.Transferor{}
	s.pricefeed = &mPricefeed.Pricefeed{}
	s.events = &eventRecorder{}
	s.now = time.Now()

	s.erc20.On("TotalSupply", mock.Anything, chainId, mock.Anything).Return(big.NewInt(1000), nil).Maybe()
	// oracle rates against the baseline: 2 token units per baseline unit,
	// 0.5 native units per baseline unit
	s.pricefeed.On("LatestAnswer", mock.Anything, chainId, tokenFeed).Return(big.NewInt(2_0000_0000), s.now, nil).Maybe()
	s.pricefeed.On("LatestAnswer", mock.Anything, chainId, nativeFeed).Return(big.NewInt(5000_0000), s.now, nil).Maybe()

	s.currency = currency_usecase.NewCurrencyUsecase(&currency_usecase.CurrencyUsecaseCfg{
		ChainId:   chainId,
		Owner:     owner,
		Baseline:  baselineCur,
		Native:    nativeCur,
		Repo:      currency_repository.NewInmemCurrencyRepo(),
		Erc20:     s.erc20,
		Pricefeed: s.pricefeed,
		Publisher: s.events,
	})
	s.NoError(s.currency.Add(mockCtx, owner, &domain.Currency{Address: baselineCur, Decimals: 8, TokenDecimals: 18}))
	s.NoError(s.currency.Add(mockCtx, owner, &domain.Currency{Address: tokenCur, FeedAddress: tokenFeed, Decimals: 8, TokenDecimals: 18}))
	s.NoError(s.currency.Add(mockCtx, owner, &domain.Currency{Address: nativeCur, FeedAddress: nativeFeed, Decimals: 8, TokenDecimals: 18}))

	s.im = NewListingUsecase(&ListingUsecaseCfg{
		ChainId:            chainId,
		Owner:              owner,
		Engine:             engine,
		Treasury:           treasury,
		TreasuryPercentage: 2,
		MaxTerm:            30 * 24 * time.Hour,
		Repo:               listing_repository.NewInmemListingRepo(),
		Currency:           s.currency,
		Erc20:              s.erc20,
		Erc721:             s.erc721,
		Native:             s.native,
		Publisher:          s.events,
	}).(*impl)
	s.im.timeNow = func() time.Time { return s.now }
}

func (s *engineSuite) TearDownTest() {
	s.erc20.AssertExpectations(s.T())
	s.erc721.AssertExpectations(s.T())
	s.native.AssertExpectations(s.T())
	s.pricefeed.AssertExpectations(s.T())
}

func (s *engineSuite) expectEscrowIntake() {
	s.erc721.On("OwnerOf", mock.Anything, chainId, collection, tokenId).Return(seller, nil).Once()
	s.erc721.On("IsApprovedForAll", mock.Anything, chainId, collection, seller, engine).Return(true, nil).Once()
	s.erc721.On("TransferFrom", mock.Anything, chainId, collection, seller, engine, tokenId).Return(nil).Once()
}

func (s *engineSuite) createFixed(price int64) uint64 {
	s.expectEscrowIntake()
	id, err := s.im.CreateFixedPriceListing(mockCtx, seller, collection, tokenId, big.NewInt(price), time.Hour)
	s.NoError(err)
	return id
}

func (s *engineSuite) createAuction(minBid int64, currency domain.Address) uint64 {
	s.expectEscrowIntake()
	id, err := s.im.CreateAuctionListing(mockCtx, seller, collection, tokenId, time.Hour, big.NewInt(minBid), currency)
	s.NoError(err)
	return id
}

func (s *engineSuite) TestCreateFixedPriceListing() {
	id := s.createFixed(100)
	s.Equal(uint64(0), id)

	l, err := s.im.GetListing(mockCtx, id)
	s.NoError(err)
	s.True(l.IsActive())
	s.Equal("100", l.Price)
	s.Equal(baselineCur, l.Currency)
	s.False(l.IsAuction)
	s.Equal(s.now.Add(time.Hour), *l.Deadline)
	s.Equal(domain.EventNewListing, s.events.last().Type)

	// ids are never reused
	s.expectEscrowIntake()
	id2, err := s.im.CreateFixedPriceListing(mockCtx, seller, collection, tokenId, big.NewInt(5), time.Hour)
	s.NoError(err)
	s.Equal(uint64(1), id2)
}

func (s *engineSuite) TestCreateFixedPriceListingValidation() {
	_, err := s.im.CreateFixedPriceListing(mockCtx, seller, collection, tokenId, big.NewInt(0), time.Hour)
	s.ErrorIs(err, domain.ErrZeroPrice)

	_, err = s.im.CreateFixedPriceListing(mockCtx, seller, collection, tokenId, big.NewInt(1), 365*24*time.Hour)
	s.ErrorIs(err, domain.ErrTooLongTerm)

	s.erc721.On("OwnerOf", mock.Anything, chainId, collection, tokenId).Return(buyer, nil).Once()
	_, err = s.im.CreateFixedPriceListing(mockCtx, seller, collection, tokenId, big.NewInt(1), time.Hour)
	s.ErrorIs(err, domain.ErrSenderIsNotItemOwner)

	s.erc721.On("OwnerOf", mock.Anything, chainId, collection, tokenId).Return(seller, nil).Once()
	s.erc721.On("IsApprovedForAll", mock.Anything, chainId, collection, seller, engine).Return(false, nil).Once()
	_, err = s.im.CreateFixedPriceListing(mockCtx, seller, collection, tokenId, big.NewInt(1), time.Hour)
	s.ErrorIs(err, domain.ErrNonApprovedNFT)
}

func (s *engineSuite) TestCreateAuctionListing() {
	id := s.createAuction(10, tokenCur)

	l, err := s.im.GetListing(mockCtx, id)
	s.NoError(err)
	s.True(l.IsAuction)
	s.Equal("0", l.Price)
	s.Equal("10", l.MinBid)
	s.Equal(tokenCur, l.Currency)
	s.Equal(s.now.Add(time.Hour), *l.AuctionEndTime)
}

func (s *engineSuite) TestCreateAuctionListingValidation() {
	_, err := s.im.CreateAuctionListing(mockCtx, seller, collection, tokenId, time.Hour, big.NewInt(0), tokenCur)
	s.ErrorIs(err, domain.ErrZeroBid)

	_, err = s.im.CreateAuctionListing(mockCtx, seller, collection, tokenId, time.Hour, big.NewInt(1), "")
	s.ErrorIs(err, domain.ErrZeroAddress)

	_, err = s.im.CreateAuctionListing(mockCtx, seller, collection, tokenId, time.Hour, big.NewInt(1), "0x00000000000000000000000000000000000000ff")
	s.ErrorIs(err, domain.ErrCurrencyNotAvailable)
}

func (s *engineSuite) TestBuyListingBaseline() {
	id := s.createFixed(100)

	s.erc20.On("TransferFrom", mock.Anything, chainId, baselineCur, buyer, seller, big.NewInt(100)).Return(nil).Once()
	s.erc20.On("TransferFrom", mock.Anything, chainId, baselineCur, seller, treasury, big.NewInt(2)).Return(nil).Once()
	s.erc721.On("SafeTransferFrom", mock.Anything, chainId, collection, engine, buyer, tokenId).Return(nil).Once()

	s.NoError(s.im.BuyListing(mockCtx, buyer, id, baselineCur, nil))

	l, err := s.im.GetListing(mockCtx, id)
	s.NoError(err)
	s.False(l.IsActive())
	s.Equal(domain.EventListingPurchased, s.events.last().Type)
	s.Equal("100", s.events.last().Amount)

	// settled listings cannot be bought twice
	s.ErrorIs(s.im.BuyListing(mockCtx, buyer, id, baselineCur, nil), domain.ErrListingNotFound)
}

func (s *engineSuite) TestBuyListingConvertedCurrency() {
	id := s.createFixed(100)

	// 100 baseline * 2e8 / 1e8 = 200 token units, fee 4
	s.erc20.On("TransferFrom", mock.Anything, chainId, tokenCur, buyer, seller, big.NewInt(200)).Return(nil).Once()
	s.erc20.On("TransferFrom", mock.Anything, chainId, tokenCur, seller, treasury, big.NewInt(4)).Return(nil).Once()
	s.erc721.On("SafeTransferFrom", mock.Anything, chainId, collection, engine, buyer, tokenId).Return(nil).Once()

	s.NoError(s.im.BuyListing(mockCtx, buyer, id, tokenCur, nil))
}

func (s *engineSuite) TestBuyListingNative() {
	id := s.createFixed(100)

	// 100 baseline * 5e7 / 1e8 = 50 native units
	s.ErrorIs(s.im.BuyListing(mockCtx, buyer, id, nativeCur, big.NewInt(49)), domain.ErrInsufficientPayment)

	s.native.On("Send", mock.Anything, chainId, treasury, big.NewInt(1)).Return(nil).Once()
	s.native.On("Send", mock.Anything, chainId, seller, big.NewInt(49)).Return(nil).Once()
	s.erc721.On("SafeTransferFrom", mock.Anything, chainId, collection, engine, buyer, tokenId).Return(nil).Once()

	s.NoError(s.im.BuyListing(mockCtx, buyer, id, nativeCur, big.NewInt(50)))
}

func (s *engineSuite) TestBuyListingRollback() {
	id := s.createFixed(100)

	before, err := s.im.GetListing(mockCtx, id)
	s.NoError(err)

	boom := errors.New("transfer reverted")
	s.erc20.On("TransferFrom", mock.Anything, chainId, baselineCur, buyer, seller, big.NewInt(100)).Return(nil).Once()
	s.erc20.On("TransferFrom", mock.Anything, chainId, baselineCur, seller, treasury, big.NewInt(2)).Return(nil).Once()
	s.erc721.On("SafeTransferFrom", mock.Anything, chainId, collection, engine, buyer, tokenId).Return(boom).Once()

	s.ErrorIs(s.im.BuyListing(mockCtx, buyer, id, baselineCur, nil), boom)

	after, err := s.im.GetListing(mockCtx, id)
	s.NoError(err)
	s.Equal(before, after)
}

func (s *engineSuite) TestBuyListingGuards() {
	id := s.createFixed(100)

	s.ErrorIs(s.im.BuyListing(mockCtx, buyer, id+1, baselineCur, nil), domain.ErrListingNotFound)
	s.ErrorIs(s.im.BuyListing(mockCtx, seller, id, baselineCur, nil), domain.ErrSenderIsItemOwner)

	s.now = s.now.Add(2 * time.Hour)
	s.ErrorIs(s.im.BuyListing(mockCtx, buyer, id, baselineCur, nil), domain.ErrExpired)
}

func (s *engineSuite) TestBuyAuctionListing() {
	id := s.createAuction(10, tokenCur)
	s.ErrorIs(s.im.BuyListing(mockCtx, buyer, id, tokenCur, nil), domain.ErrNonStandardPurchase)
}

func (s *engineSuite) TestPlaceBid() {
	id := s.createAuction(10, tokenCur)

	s.ErrorIs(s.im.PlaceBid(mockCtx, bidder1, id, big.NewInt(9), nil), domain.ErrBidIsTooLow)
	s.ErrorIs(s.im.PlaceBid(mockCtx, seller, id, big.NewInt(10), nil), domain.ErrSenderIsItemOwner)

	s.erc20.On("TransferFrom", mock.Anything, chainId, tokenCur, bidder1, engine, big.NewInt(10)).Return(nil).Once()
	s.NoError(s.im.PlaceBid(mockCtx, bidder1, id, big.NewInt(10), nil))

	bid, err := s.im.GetBid(mockCtx, id, bidder1)
	s.NoError(err)
	s.Equal("10", bid.Amount)
	s.Equal(domain.EventNewBid, s.events.last().Type)

	// bidding again overwrites the held amount, the sequence keeps both entries
	s.erc20.On("TransferFrom", mock.Anything, chainId, tokenCur, bidder1, engine, big.NewInt(20)).Return(nil).Once()
	s.NoError(s.im.PlaceBid(mockCtx, bidder1, id, big.NewInt(20), nil))

	bids, err := s.im.GetBids(mockCtx, id)
	s.NoError(err)
	s.Len(bids, 2)
	s.Equal("20", bids[0].Amount)
	s.Equal("20", bids[1].Amount)
}

func (s *engineSuite) TestPlaceBidGuards() {
	fixed := s.createFixed(100)
	s.ErrorIs(s.im.PlaceBid(mockCtx, bidder1, fixed, big.NewInt(10), nil), domain.ErrNonAuction)

	s.expectEscrowIntake()
	id, err := s.im.CreateAuctionListing(mockCtx, seller, collection, tokenId, time.Hour, big.NewInt(10), tokenCur)
	s.NoError(err)

	s.now = s.now.Add(2 * time.Hour)
	s.ErrorIs(s.im.PlaceBid(mockCtx, bidder1, id, big.NewInt(10), nil), domain.ErrExpired)
}

func (s *engineSuite) TestPlaceBidNative() {
	id := s.createAuction(10, nativeCur)

	// the attached value is the bid, the amount argument is ignored
	s.NoError(s.im.PlaceBid(mockCtx, bidder1, id, big.NewInt(999), big.NewInt(15)))

	bid, err := s.im.GetBid(mockCtx, id, bidder1)
	s.NoError(err)
	s.Equal("15", bid.Amount)

	s.ErrorIs(s.im.PlaceBid(mockCtx, bidder2, id, big.NewInt(999), nil), domain.ErrZeroBid)
}

func (s *engineSuite) TestWithdrawBid() {
	id := s.createAuction(10, tokenCur)

	s.ErrorIs(s.im.WithdrawBid(mockCtx, bidder1, id), domain.ErrZeroBid)

	s.erc20.On("TransferFrom", mock.Anything, chainId, tokenCur, bidder1, engine, big.NewInt(10)).Return(nil).Once()
	s.NoError(s.im.PlaceBid(mockCtx, bidder1, id, big.NewInt(10), nil))

	s.erc20.On("Transfer", mock.Anything, chainId, tokenCur, bidder1, big.NewInt(10)).Return(nil).Once()
	s.NoError(s.im.WithdrawBid(mockCtx, bidder1, id))

	// entry stays in the sequence with a zero amount
	bids, err := s.im.GetBids(mockCtx, id)
	s.NoError(err)
	s.Len(bids, 1)
	s.Equal("0", bids[0].Amount)

	s.ErrorIs(s.im.WithdrawBid(mockCtx, bidder1, id), domain.ErrZeroBid)
}

func (s *engineSuite) TestWithdrawBidRollback() {
	id := s.createAuction(10, tokenCur)

	s.erc20.On("TransferFrom", mock.Anything, chainId, tokenCur, bidder1, engine, big.NewInt(10)).Return(nil).Once()
	s.NoError(s.im.PlaceBid(mockCtx, bidder1, id, big.NewInt(10), nil))

	boom := errors.New("transfer reverted")
	s.erc20.On("Transfer", mock.Anything, chainId, tokenCur, bidder1, big.NewInt(10)).Return(boom).Once()
	s.ErrorIs(s.im.WithdrawBid(mockCtx, bidder1, id), boom)

	bid, err := s.im.GetBid(mockCtx, id, bidder1)
	s.NoError(err)
	s.Equal("10", bid.Amount)
}

func (s *engineSuite) TestFinalizeAuction() {
	id := s.createAuction(10, tokenCur)

	s.erc20.On("TransferFrom", mock.Anything, chainId, tokenCur, bidder1, engine, big.NewInt(200)).Return(nil).Once()
	s.NoError(s.im.PlaceBid(mockCtx, bidder1, id, big.NewInt(200), nil))
	s.erc20.On("TransferFrom", mock.Anything, chainId, tokenCur, bidder2, engine, big.NewInt(300)).Return(nil).Once()
	s.NoError(s.im.PlaceBid(mockCtx, bidder2, id, big.NewInt(300), nil))

	s.ErrorIs(s.im.FinalizeAuction(mockCtx, seller, id, bidder2), domain.ErrAuctionNotOver)

	s.now = s.now.Add(2 * time.Hour)
	s.ErrorIs(s.im.FinalizeAuction(mockCtx, buyer, id, bidder2), domain.ErrSenderIsNotItemOwner)
	s.ErrorIs(s.im.FinalizeAuction(mockCtx, seller, id, buyer), domain.ErrWinnerHasNotBid)

	// escrow pays the seller in full, the fee is clawed back to the treasury
	s.erc20.On("Transfer", mock.Anything, chainId, tokenCur, seller, big.NewInt(300)).Return(nil).Once()
	s.erc20.On("TransferFrom", mock.Anything, chainId, tokenCur, seller, treasury, big.NewInt(6)).Return(nil).Once()
	s.erc721.On("SafeTransferFrom", mock.Anything, chainId, collection, engine, bidder2, tokenId).Return(nil).Once()

	s.NoError(s.im.FinalizeAuction(mockCtx, seller, id, bidder2))
	s.Equal(domain.EventAuctionResult, s.events.last().Type)
	s.Equal("300", s.events.last().Amount)

	l, err := s.im.GetListing(mockCtx, id)
	s.NoError(err)
	s.False(l.IsActive())

	// the losing bid survives settlement and can still be withdrawn
	s.erc20.On("Transfer", mock.Anything, chainId, tokenCur, bidder1, big.NewInt(200)).Return(nil).Once()
	s.NoError(s.im.WithdrawBid(mockCtx, bidder1, id))

	// the winning entry was zeroed
	s.ErrorIs(s.im.WithdrawBid(mockCtx, bidder2, id), domain.ErrZeroBid)
}

func (s *engineSuite) TestFinalizeAuctionNative() {
	id := s.createAuction(10, nativeCur)

	s.NoError(s.im.PlaceBid(mockCtx, bidder1, id, nil, big.NewInt(100)))

	s.now = s.now.Add(2 * time.Hour)

	s.native.On("Send", mock.Anything, chainId, treasury, big.NewInt(2)).Return(nil).Once()
	s.native.On("Send", mock.Anything, chainId, seller, big.NewInt(98)).Return(nil).Once()
	s.erc721.On("SafeTransferFrom", mock.Anything, chainId, collection, engine, bidder1, tokenId).Return(nil).Once()

	s.NoError(s.im.FinalizeAuction(mockCtx, seller, id, bidder1))
}

func (s *engineSuite) TestFinalizeAuctionRollback() {
	id := s.createAuction(10, tokenCur)

	s.erc20.On("TransferFrom", mock.Anything, chainId, tokenCur, bidder1, engine, big.NewInt(100)).Return(nil).Once()
	s.NoError(s.im.PlaceBid(mockCtx, bidder1, id, big.NewInt(100), nil))

	s.now = s.now.Add(2 * time.Hour)

	boom := errors.New("transfer reverted")
	s.erc20.On("Transfer", mock.Anything, chainId, tokenCur, seller, big.NewInt(100)).Return(boom).Once()
	s.ErrorIs(s.im.FinalizeAuction(mockCtx, seller, id, bidder1), boom)

	// the record and the winning bid survive the failed settlement
	l, err := s.im.GetListing(mockCtx, id)
	s.NoError(err)
	s.True(l.IsActive())
	bid, err := s.im.GetBid(mockCtx, id, bidder1)
	s.NoError(err)
	s.Equal("100", bid.Amount)
}

func (s *engineSuite) TestFeeTruncation() {
	id := s.createFixed(99)

	// 99 * 2 / 100 = 1 after truncation, seller receives 98
	s.erc20.On("TransferFrom", mock.Anything, chainId, baselineCur, buyer, seller, big.NewInt(99)).Return(nil).Once()
	s.erc20.On("TransferFrom", mock.Anything, chainId, baselineCur, seller, treasury, big.NewInt(1)).Return(nil).Once()
	s.erc721.On("SafeTransferFrom", mock.Anything, chainId, collection, engine, buyer, tokenId).Return(nil).Once()

	s.NoError(s.im.BuyListing(mockCtx, buyer, id, baselineCur, nil))
}

func (s *engineSuite) TestUpdatePrice() {
	id := s.createFixed(100)

	s.ErrorIs(s.im.UpdatePrice(mockCtx, buyer, id, big.NewInt(50)), domain.ErrSenderIsNotItemOwner)
	s.ErrorIs(s.im.UpdatePrice(mockCtx, seller, id, big.NewInt(0)), domain.ErrZeroPrice)

	s.NoError(s.im.UpdatePrice(mockCtx, seller, id, big.NewInt(50)))
	l, err := s.im.GetListing(mockCtx, id)
	s.NoError(err)
	s.Equal("50", l.Price)
	s.Equal(domain.EventPriceUpdated, s.events.last().Type)

	// the stored price is mutable on auctions too, settlement ignores it
	auction := s.createAuction(10, tokenCur)
	s.NoError(s.im.UpdatePrice(mockCtx, seller, auction, big.NewInt(123)))
}

func (s *engineSuite) TestUpdateDeadline() {
	id := s.createFixed(100)

	s.ErrorIs(s.im.UpdateDeadline(mockCtx, buyer, id, time.Hour), domain.ErrSenderIsNotItemOwner)
	s.ErrorIs(s.im.UpdateDeadline(mockCtx, seller, id, 365*24*time.Hour), domain.ErrTooLongTerm)

	s.now = s.now.Add(30 * time.Minute)
	s.NoError(s.im.UpdateDeadline(mockCtx, seller, id, time.Hour))

	l, err := s.im.GetListing(mockCtx, id)
	s.NoError(err)
	// the new deadline is relative to now, not to creation
	s.Equal(s.now.Add(time.Hour), *l.Deadline)
}

func (s *engineSuite) TestUpdateTreasury() {
	s.ErrorIs(s.im.UpdateTreasury(mockCtx, buyer, treasury), domain.ErrOnlyOwner)
	s.ErrorIs(s.im.UpdateTreasury(mockCtx, owner, ""), domain.ErrZeroAddress)
	s.NoError(s.im.UpdateTreasury(mockCtx, owner, buyer))
	s.Equal(domain.EventTreasuryChanged, s.events.last().Type)

	s.ErrorIs(s.im.UpdateTreasuryPercentage(mockCtx, buyer, 10), domain.ErrOnlyOwner)
	s.ErrorIs(s.im.UpdateTreasuryPercentage(mockCtx, owner, 101), domain.ErrInvalidPercentage)
	s.NoError(s.im.UpdateTreasuryPercentage(mockCtx, owner, 10))
	s.Equal(domain.EventTreasuryPercentageChanged, s.events.last().Type)
}
