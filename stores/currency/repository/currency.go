package repository

import (
	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/database/mongoclient"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/service/query"
)

type currencyMongoRepo struct {
	q query.Mongo
}

func NewCurrencyRepo(q query.Mongo) domain.CurrencyRepo {
	return &currencyMongoRepo{
		q: q,
	}
}

func (r *currencyMongoRepo) FindOne(ctx bCtx.Ctx, chainId domain.ChainId, address domain.Address) (*domain.Currency, error) {
	currency := &domain.Currency{}
	if qry, err := mongoclient.MakeBsonM(&domain.CurrencyId{ChainId: chainId, Address: address.ToLower()}); err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	} else if err := r.q.FindOne(ctx, domain.TableCurrencies, qry, currency); err != nil && err != query.ErrNotFound {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, nil
	}
	return currency, nil
}

func (r *currencyMongoRepo) FindAll(ctx bCtx.Ctx, chainId domain.ChainId) ([]domain.Currency, error) {
	qry, err := mongoclient.MakeBsonM(&domain.CurrencyId{ChainId: chainId})
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	currencies := []domain.Currency{}
	if err := r.q.Search(ctx, domain.TableCurrencies, 0, 0, "address", qry, &currencies); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return currencies, nil
}

func (r *currencyMongoRepo) Create(ctx bCtx.Ctx, currency *domain.Currency) error {
	currency.Address = currency.Address.ToLower()
	currency.FeedAddress = currency.FeedAddress.ToLower()
	selector, err := mongoclient.MakeBsonM(currency.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TableCurrencies, selector, currency); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  currency.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *currencyMongoRepo) Delete(ctx bCtx.Ctx, chainId domain.ChainId, address domain.Address) error {
	selector, err := mongoclient.MakeBsonM(&domain.CurrencyId{ChainId: chainId, Address: address.ToLower()})
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Remove(ctx, domain.TableCurrencies, selector); err == query.ErrNotFound {
		return domain.ErrCurrencyNotRegistered
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
