package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/listing"
	"github.com/x-xyz/marketplace/service/query"
)

const listingCounter = "listings"

type counter struct {
	Name string `bson:"name"`
	Seq  uint64 `bson:"seq"`
}

type listingMongoRepo struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) listing.Repo {
	return &listingMongoRepo{
		q: q,
	}
}

func (r *listingMongoRepo) NextId(ctx bCtx.Ctx) (uint64, error) {
	res := &counter{}
	selector := bson.M{"name": listingCounter}
	if err := r.q.Increment(ctx, domain.TableCounters, selector, res, "seq", 1); err != nil {
		ctx.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	// ids start at 0, the counter document holds the count of issued ids
	return res.Seq - 1, nil
}

func (r *listingMongoRepo) FindOne(ctx bCtx.Ctx, listingId uint64) (*listing.Listing, error) {
	res := &listing.Listing{}
	qry := bson.M{"listingId": listingId}
	if err := r.q.FindOne(ctx, domain.TableListings, qry, res); err != nil && err != query.ErrNotFound {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, nil
	}
	return res, nil
}

func (r *listingMongoRepo) FindAll(ctx bCtx.Ctx, optFns ...listing.FindAllOptions) ([]*listing.Listing, error) {
	opts := listing.GetFindAllOptions(optFns...)

	qry := bson.M{}
	if opts.ChainId != nil {
		qry["chainId"] = *opts.ChainId
	}
	if opts.Seller != nil {
		qry["seller"] = *opts.Seller
	}
	if opts.Collection != nil {
		qry["collection"] = *opts.Collection
	}
	if opts.IsAuction != nil {
		qry["isAuction"] = *opts.IsAuction
	}

	res := []*listing.Listing{}
	if err := r.q.Search(ctx, domain.TableListings, opts.Offset, opts.Limit, opts.SortBy, qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *listingMongoRepo) Create(ctx bCtx.Ctx, l *listing.Listing) error {
	if err := r.q.Insert(ctx, domain.TableListings, l); err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *listingMongoRepo) Update(ctx bCtx.Ctx, l *listing.Listing) error {
	selector := bson.M{"listingId": l.ListingId}
	if err := r.q.Upsert(ctx, domain.TableListings, selector, l); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": l.ListingId,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *listingMongoRepo) Delete(ctx bCtx.Ctx, listingId uint64) error {
	selector := bson.M{"listingId": listingId}
	if err := r.q.Remove(ctx, domain.TableListings, selector); err == query.ErrNotFound {
		return domain.ErrListingNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
