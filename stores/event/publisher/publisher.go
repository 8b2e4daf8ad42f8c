package publisher

import (
	"time"

	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/base/metrics"
	"github.com/x-xyz/marketplace/domain"
)

type impl struct {
	repo domain.EventRepo
	met  metrics.Service
}

// New builds a publisher appending to the durable event feed. Publishing is
// best effort: failures are logged and counted, never surfaced to the caller.
func New(repo domain.EventRepo) domain.EventPublisher {
	return &impl{
		repo: repo,
		met:  metrics.New("event"),
	}
}

func (im *impl) Publish(ctx bCtx.Ctx, event *domain.Event) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	ctx.WithFields(log.Fields{
		"type":      event.Type,
		"listingId": event.ListingId,
		"account":   event.Account,
	}).Info("publishing event")

	if err := im.repo.Insert(ctx, event); err != nil {
		im.met.BumpSum("publish.err", 1, "type", string(event.Type))
		ctx.WithFields(log.Fields{
			"err":  err,
			"type": event.Type,
		}).Error("event insert failed")
	}
}
