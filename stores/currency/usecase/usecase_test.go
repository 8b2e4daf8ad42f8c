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
	domainMocks "github.com/x-xyz/marketplace/domain/mocks"
	mPricefeed "github.com/x-xyz/marketplace/domain/pricefeed/mocks"
	"github.com/x-xyz/marketplace/stores/currency/repository"
)

var (
	mockCtx = bCtx.Background()

	chainId  = domain.ChainId(1)
	owner    = domain.Address("0x000000000000000000000000000000000000000a")
	stranger = domain.Address("0x000000000000000000000000000000000000000b")

	dai       = domain.Address("0x00000000000000000000000000000000000000d0")
	weth      = domain.Address("0x00000000000000000000000000000000000000d2")
	wethFeed  = domain.Address("0x00000000000000000000000000000000000000d3")
	nativeCur = domain.Address("0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
)

type currencySuite struct {
	suite.Suite

	erc20     *mErc20.Erc20
	pricefeed *mPricefeed.Pricefeed
	publisher *domainMocks.EventPublisher
	im        domain.CurrencyUsecase
}

func TestCurrencySuite(t *testing.T) {
	suite.Run(t, new(currencySuite))
}

func (s *currencySuite) SetupTest() {
	s.erc20 = &mErc20.Erc20{}
	s.pricefeed = &mPricefeed.Pricefeed{}
	s.publisher = &domainMocks.EventPublisher{}
	s.publisher.On("Publish", mock.Anything, mock.Anything).Maybe()

	s.im = NewCurrencyUsecase(&CurrencyUsecaseCfg{
		ChainId:   chainId,
		Owner:     owner,
		Baseline:  dai,
		Native:    nativeCur,
		Repo:      repository.NewInmemCurrencyRepo(),
		Erc20:     s.erc20,
		Pricefeed: s.pricefeed,
		Publisher: s.publisher,
	})
}

func (s *currencySuite) TearDownTest() {
	s.erc20.AssertExpectations(s.T())
	s.pricefeed.AssertExpectations(s.T())
	s.publisher.AssertExpectations(s.T())
}

func (s *currencySuite) addWeth() {
	s.erc20.On("TotalSupply", mock.Anything, chainId, weth).Return(big.NewInt(1000), nil).Once()
	s.NoError(s.im.Add(mockCtx, owner, &domain.Currency{
		Address:       weth,
		FeedAddress:   wethFeed,
		Decimals:      8,
		TokenDecimals: 18,
	}))
}

func (s *currencySuite) TestAdd() {
	s.ErrorIs(s.im.Add(mockCtx, stranger, &domain.Currency{Address: weth}), domain.ErrOnlyOwner)
	s.ErrorIs(s.im.Add(mockCtx, owner, &domain.Currency{}), domain.ErrZeroAddress)

	s.erc20.On("TotalSupply", mock.Anything, chainId, weth).Return(nil, errors.New("no contract")).Once()
	s.ErrorIs(s.im.Add(mockCtx, owner, &domain.Currency{Address: weth}), domain.ErrInvalidCurrency)

	s.erc20.On("TotalSupply", mock.Anything, chainId, weth).Return(big.NewInt(0), nil).Once()
	s.ErrorIs(s.im.Add(mockCtx, owner, &domain.Currency{Address: weth}), domain.ErrInvalidCurrency)

	s.addWeth()

	registered, err := s.im.IsRegistered(mockCtx, weth)
	s.NoError(err)
	s.True(registered)

	got, err := s.im.Get(mockCtx, weth)
	s.NoError(err)
	s.Equal(chainId, got.ChainId)
	s.Equal(wethFeed, got.FeedAddress)

	s.ErrorIs(s.im.Add(mockCtx, owner, &domain.Currency{Address: weth}), domain.ErrCurrencyAlreadyRegistered)
}

func (s *currencySuite) TestAddNativeSkipsProbe() {
	// no TotalSupply expectation, the sentinel must not be probed
	s.NoError(s.im.Add(mockCtx, owner, &domain.Currency{Address: nativeCur, TokenDecimals: 18}))

	registered, err := s.im.IsRegistered(mockCtx, nativeCur)
	s.NoError(err)
	s.True(registered)
}

func (s *currencySuite) TestRemove() {
	s.ErrorIs(s.im.Remove(mockCtx, stranger, weth), domain.ErrOnlyOwner)
	s.ErrorIs(s.im.Remove(mockCtx, owner, weth), domain.ErrCurrencyNotRegistered)

	s.addWeth()
	s.NoError(s.im.Remove(mockCtx, owner, weth))

	registered, err := s.im.IsRegistered(mockCtx, weth)
	s.NoError(err)
	s.False(registered)

	// a removed currency can be registered again
	s.addWeth()
}

func (s *currencySuite) TestSetBaseline() {
	s.ErrorIs(s.im.SetBaseline(mockCtx, stranger, weth), domain.ErrOnlyOwner)
	s.ErrorIs(s.im.SetBaseline(mockCtx, owner, ""), domain.ErrZeroAddress)

	s.erc20.On("TotalSupply", mock.Anything, chainId, weth).Return(nil, errors.New("no contract")).Once()
	s.ErrorIs(s.im.SetBaseline(mockCtx, owner, weth), domain.ErrInvalidCurrency)
	s.Equal(dai, s.im.Baseline())

	s.erc20.On("TotalSupply", mock.Anything, chainId, weth).Return(big.NewInt(1000), nil).Once()
	s.NoError(s.im.SetBaseline(mockCtx, owner, weth))
	s.Equal(weth, s.im.Baseline())
}

func (s *currencySuite) TestSetNative() {
	s.ErrorIs(s.im.SetNative(mockCtx, stranger, weth), domain.ErrOnlyOwner)
	s.ErrorIs(s.im.SetNative(mockCtx, owner, ""), domain.ErrZeroAddress)

	// the native slot takes any address without probing
	s.NoError(s.im.SetNative(mockCtx, owner, weth))
	s.Equal(weth, s.im.Native())
}

func (s *currencySuite) TestList() {
	ls, err := s.im.List(mockCtx)
	s.NoError(err)
	s.Empty(ls)

	s.addWeth()
	s.NoError(s.im.Add(mockCtx, owner, &domain.Currency{Address: nativeCur}))

	ls, err = s.im.List(mockCtx)
	s.NoError(err)
	s.Len(ls, 2)
	// ordered by address
	s.Equal(weth, ls[0].Address)
	s.Equal(nativeCur, ls[1].Address)
}

func (s *currencySuite) TestGetUnregistered() {
	_, err := s.im.Get(mockCtx, weth)
	s.ErrorIs(err, domain.ErrCurrencyNotRegistered)
}

func (s *currencySuite) TestConvertFromBaseline() {
	// baseline converts to itself even without a registry entry
	res, err := s.im.ConvertFromBaseline(mockCtx, big.NewInt(100), dai)
	s.NoError(err)
	s.Equal(big.NewInt(100), res)

	_, err = s.im.ConvertFromBaseline(mockCtx, big.NewInt(100), weth)
	s.ErrorIs(err, domain.ErrCurrencyNotAvailable)

	s.addWeth()
	s.pricefeed.On("LatestAnswer", mock.Anything, chainId, wethFeed).Return(big.NewInt(3_0000_0000), time.Now(), nil)

	res, err = s.im.ConvertFromBaseline(mockCtx, big.NewInt(100), weth)
	s.NoError(err)
	s.Equal(big.NewInt(300), res)

	// truncating division on the way back
	res, err = s.im.ConvertToBaseline(mockCtx, big.NewInt(100), weth)
	s.NoError(err)
	s.Equal(big.NewInt(33), res)
}

func (s *currencySuite) TestConvertWithoutFeed() {
	s.erc20.On("TotalSupply", mock.Anything, chainId, weth).Return(big.NewInt(1000), nil).Once()
	s.NoError(s.im.Add(mockCtx, owner, &domain.Currency{Address: weth, Decimals: 8}))

	_, err := s.im.ConvertFromBaseline(mockCtx, big.NewInt(100), weth)
	s.ErrorIs(err, domain.ErrNoPriceFeed)
}

func (s *currencySuite) TestConvertZeroAnswer() {
	s.addWeth()
	s.pricefeed.On("LatestAnswer", mock.Anything, chainId, wethFeed).Return(big.NewInt(0), time.Now(), nil)

	res, err := s.im.ConvertFromBaseline(mockCtx, big.NewInt(100), weth)
	s.NoError(err)
	s.Equal(big.NewInt(0), res)

	// the inverse cannot divide by a zero answer
	_, err = s.im.ConvertToBaseline(mockCtx, big.NewInt(100), weth)
	s.ErrorIs(err, domain.ErrNoPriceFeed)
}

func (s *currencySuite) TestDisplayAmount() {
	_, err := s.im.DisplayAmount(mockCtx, big.NewInt(1), weth)
	s.ErrorIs(err, domain.ErrCurrencyNotAvailable)

	s.addWeth()

	display, err := s.im.DisplayAmount(mockCtx, big.NewInt(1_500_000_000_000_000_000), weth)
	s.NoError(err)
	s.Equal("1.5", display)
}
