package listing

import (
	"github.com/x-xyz/marketplace/base/ctx"
)

// Repo is the durable listing store. Listing ids are assigned from a
// monotonically increasing counter starting at 0 and are never reused.
type Repo interface {
	// NextId reserves and returns the next listing id, bumping the counter.
	NextId(ctx.Ctx) (uint64, error)
	// FindOne returns (nil, nil) when no active listing occupies the id.
	FindOne(ctx.Ctx, uint64) (*Listing, error)
	FindAll(ctx.Ctx, ...FindAllOptions) ([]*Listing, error)
	Create(ctx.Ctx, *Listing) error
	Update(ctx.Ctx, *Listing) error
	Delete(ctx.Ctx, uint64) error
}
