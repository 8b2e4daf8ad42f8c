package repository

import (
	"sort"
	"sync"

	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

type currencyInmemRepo struct {
	mu         sync.RWMutex
	currencies map[domain.CurrencyId]domain.Currency
}

// NewInmemCurrencyRepo backs the registry with plain maps. Intended for tests
// and local runs without mongo.
func NewInmemCurrencyRepo() domain.CurrencyRepo {
	return &currencyInmemRepo{
		currencies: map[domain.CurrencyId]domain.Currency{},
	}
}

func (r *currencyInmemRepo) FindOne(ctx bCtx.Ctx, chainId domain.ChainId, address domain.Address) (*domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	currency, ok := r.currencies[domain.CurrencyId{ChainId: chainId, Address: address.ToLower()}]
	if !ok {
		return nil, nil
	}
	return &currency, nil
}

func (r *currencyInmemRepo) FindAll(ctx bCtx.Ctx, chainId domain.ChainId) ([]domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	currencies := []domain.Currency{}
	for id, currency := range r.currencies {
		if id.ChainId == chainId {
			currencies = append(currencies, currency)
		}
	}
	sort.Slice(currencies, func(i, j int) bool {
		return currencies[i].Address < currencies[j].Address
	})
	return currencies, nil
}

func (r *currencyInmemRepo) Create(ctx bCtx.Ctx, currency *domain.Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *currency
	cp.Address = cp.Address.ToLower()
	cp.FeedAddress = cp.FeedAddress.ToLower()
	r.currencies[*cp.ToId()] = cp
	return nil
}

func (r *currencyInmemRepo) Delete(ctx bCtx.Ctx, chainId domain.ChainId, address domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := domain.CurrencyId{ChainId: chainId, Address: address.ToLower()}
	if _, ok := r.currencies[id]; !ok {
		return domain.ErrCurrencyNotRegistered
	}
	delete(r.currencies, id)
	return nil
}
