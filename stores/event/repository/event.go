package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/service/query"
)

type eventMongoRepo struct {
	q query.Mongo
}

func NewEventRepo(q query.Mongo) domain.EventRepo {
	return &eventMongoRepo{
		q: q,
	}
}

func (r *eventMongoRepo) Insert(ctx bCtx.Ctx, event *domain.Event) error {
	if err := r.q.Insert(ctx, domain.TableEvents, event); err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *eventMongoRepo) FindAll(ctx bCtx.Ctx, offset, limit int, types ...domain.EventType) ([]domain.Event, error) {
	qry := bson.M{}
	if len(types) > 0 {
		qry["type"] = bson.M{"$in": types}
	}

	events := []domain.Event{}
	if err := r.q.Search(ctx, domain.TableEvents, offset, limit, "-createdAt", qry, &events); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return events, nil
}
