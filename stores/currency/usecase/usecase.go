package usecase

import (
	"sync"

	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/erc20"
	"github.com/x-xyz/marketplace/domain/pricefeed"
)

type CurrencyUsecaseCfg struct {
	ChainId   domain.ChainId
	Owner     domain.Address
	Baseline  domain.Address
	Native    domain.Address
	Repo      domain.CurrencyRepo
	Erc20     erc20.Erc20
	Pricefeed pricefeed.Pricefeed
	Publisher domain.EventPublisher
}

type impl struct {
	chainId   domain.ChainId
	owner     domain.Address
	repo      domain.CurrencyRepo
	erc20     erc20.Erc20
	pricefeed pricefeed.Pricefeed
	publisher domain.EventPublisher

	mu       sync.RWMutex
	baseline domain.Address
	native   domain.Address
}

func NewCurrencyUsecase(cfg *CurrencyUsecaseCfg) domain.CurrencyUsecase {
	return &impl{
		chainId:   cfg.ChainId,
		owner:     cfg.Owner,
		repo:      cfg.Repo,
		erc20:     cfg.Erc20,
		pricefeed: cfg.Pricefeed,
		publisher: cfg.Publisher,
		baseline:  cfg.Baseline.ToLower(),
		native:    cfg.Native.ToLower(),
	}
}

func (im *impl) requireOwner(caller domain.Address) error {
	if !caller.Equals(im.owner) {
		return domain.ErrOnlyOwner
	}
	return nil
}

// probe rejects addresses that do not answer totalSupply with a positive
// value. The native sentinel has no erc20 surface and is exempt.
func (im *impl) probe(c bCtx.Ctx, token domain.Address) error {
	if token.Equals(im.Native()) {
		return nil
	}
	supply, err := im.erc20.TotalSupply(c, im.chainId, token)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"token": token,
		}).Warn("totalSupply probe failed")
		return domain.ErrInvalidCurrency
	}
	if supply.Cmp(domain.Big0) <= 0 {
		return domain.ErrInvalidCurrency
	}
	return nil
}

func (im *impl) Add(c bCtx.Ctx, caller domain.Address, currency *domain.Currency) error {
	if err := im.requireOwner(caller); err != nil {
		return err
	}
	if currency.Address.IsEmpty() {
		return domain.ErrZeroAddress
	}

	currency.ChainId = im.chainId
	existing, err := im.repo.FindOne(c, im.chainId, currency.Address)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return err
	}
	if existing != nil {
		return domain.ErrCurrencyAlreadyRegistered
	}

	if err := im.probe(c, currency.Address); err != nil {
		return err
	}

	if err := im.repo.Create(c, currency); err != nil {
		c.WithField("err", err).Error("repo.Create failed")
		return err
	}

	addr := currency.Address.ToLower()
	feed := currency.FeedAddress.ToLower()
	im.publisher.Publish(c, &domain.Event{
		Type:     domain.EventCurrencyAdded,
		ChainId:  im.chainId,
		Currency: &addr,
		Feed:     &feed,
	})
	return nil
}

func (im *impl) Remove(c bCtx.Ctx, caller domain.Address, token domain.Address) error {
	if err := im.requireOwner(caller); err != nil {
		return err
	}

	existing, err := im.repo.FindOne(c, im.chainId, token)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return err
	}
	if existing == nil {
		return domain.ErrCurrencyNotRegistered
	}

	if err := im.repo.Delete(c, im.chainId, token); err != nil {
		c.WithField("err", err).Error("repo.Delete failed")
		return err
	}

	addr := token.ToLower()
	im.publisher.Publish(c, &domain.Event{
		Type:     domain.EventCurrencyRemoved,
		ChainId:  im.chainId,
		Currency: &addr,
	})
	return nil
}

func (im *impl) SetBaseline(c bCtx.Ctx, caller domain.Address, token domain.Address) error {
	if err := im.requireOwner(caller); err != nil {
		return err
	}
	if token.IsEmpty() {
		return domain.ErrZeroAddress
	}
	if err := im.probe(c, token); err != nil {
		return err
	}

	im.mu.Lock()
	im.baseline = token.ToLower()
	im.mu.Unlock()

	addr := token.ToLower()
	im.publisher.Publish(c, &domain.Event{
		Type:     domain.EventBaselineCurrencySet,
		ChainId:  im.chainId,
		Currency: &addr,
	})
	return nil
}

func (im *impl) SetNative(c bCtx.Ctx, caller domain.Address, token domain.Address) error {
	if err := im.requireOwner(caller); err != nil {
		return err
	}
	if token.IsEmpty() {
		return domain.ErrZeroAddress
	}

	im.mu.Lock()
	im.native = token.ToLower()
	im.mu.Unlock()

	addr := token.ToLower()
	im.publisher.Publish(c, &domain.Event{
		Type:     domain.EventNativeCurrencySet,
		ChainId:  im.chainId,
		Currency: &addr,
	})
	return nil
}

func (im *impl) Get(c bCtx.Ctx, token domain.Address) (*domain.Currency, error) {
	currency, err := im.repo.FindOne(c, im.chainId, token)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	if currency == nil {
		return nil, domain.ErrCurrencyNotRegistered
	}
	return currency, nil
}

func (im *impl) List(c bCtx.Ctx) ([]domain.Currency, error) {
	currencies, err := im.repo.FindAll(c, im.chainId)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	return currencies, nil
}

func (im *impl) IsRegistered(c bCtx.Ctx, token domain.Address) (bool, error) {
	currency, err := im.repo.FindOne(c, im.chainId, token)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return false, err
	}
	return currency != nil, nil
}

func (im *impl) Baseline() domain.Address {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.baseline
}

func (im *impl) Native() domain.Address {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.native
}
