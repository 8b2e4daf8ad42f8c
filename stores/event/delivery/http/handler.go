package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	"github.com/x-xyz/marketplace/domain"
)

type handler struct {
	events domain.EventRepo
}

// New exposes the durable event feed for indexers.
func New(e *echo.Echo, events domain.EventRepo) {
	h := &handler{events: events}

	g := e.Group("/events")
	g.GET("", h.getEvents)
}

func (h *handler) getEvents(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Offset int      `query:"offset"`
		Limit  int      `query:"limit"`
		Types  []string `query:"type"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 50
	}

	types := make([]domain.EventType, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, domain.EventType(t))
	}

	res, err := h.events.FindAll(ctx, p.Offset, p.Limit, types...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
