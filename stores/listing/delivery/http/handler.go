package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/listing"
	"github.com/x-xyz/marketplace/middleware"
	authMiddleware "github.com/x-xyz/marketplace/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.Usecase
}

func New(e *echo.Echo, am *authMiddleware.AuthMiddleware, uc listing.Usecase) {
	h := &handler{listing: uc}

	g := e.Group("/listings")
	g.GET("", h.getListings)
	g.GET("/:id", h.getListing)
	g.GET("/:id/bids", h.getBids)
	g.GET("/:id/bids/:bidder", h.getBid, middleware.IsValidAddress("bidder"))

	g.POST("", h.createListing, am.Auth())
	g.POST("/:id/buy", h.buyListing, am.Auth())
	g.POST("/:id/bids", h.placeBid, am.Auth())
	g.DELETE("/:id/bids", h.withdrawBid, am.Auth())
	g.POST("/:id/finalize", h.finalizeAuction, am.Auth())
	g.PATCH("/:id/price", h.updatePrice, am.Auth())
	g.PATCH("/:id/deadline", h.updateDeadline, am.Auth())

	t := e.Group("/treasury", am.Auth(), am.IsAdmin())
	t.PUT("", h.updateTreasury)
	t.PUT("/percentage", h.updateTreasuryPercentage)
}

func listingId(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id, err := listingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	res, err := h.listing.GetListing(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Offset     int    `query:"offset"`
		Limit      int    `query:"limit"`
		Seller     string `query:"seller"`
		Collection string `query:"collection"`
		IsAuction  *bool  `query:"isAuction"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	opts := []listing.FindAllOptions{}
	if p.Limit > 0 {
		opts = append(opts, listing.WithPagination(p.Offset, p.Limit))
	}
	if p.Seller != "" {
		opts = append(opts, listing.WithSeller(domain.Address(p.Seller)))
	}
	if p.Collection != "" {
		opts = append(opts, listing.WithCollection(domain.Address(p.Collection)))
	}
	if p.IsAuction != nil {
		opts = append(opts, listing.WithIsAuction(*p.IsAuction))
	}

	res, err := h.listing.GetListings(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getBids(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id, err := listingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	res, err := h.listing.GetBids(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id, err := listingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	res, err := h.listing.GetBid(ctx, id, domain.Address(c.Param("bidder")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) createListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	seller := c.Get("address").(domain.Address)

	p := struct {
		Collection string `json:"collection" validate:"required"`
		TokenId    string `json:"tokenId" validate:"required"`
		Term       int64  `json:"term" validate:"required,gt=0"`
		IsAuction  bool   `json:"isAuction"`
		Price      string `json:"price"`
		MinBid     string `json:"minBid"`
		Currency   string `json:"currency"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	term := time.Duration(p.Term) * time.Second
	var (
		id  uint64
		err error
	)
	if p.IsAuction {
		minBid, perr := domain.ToBigInt(p.MinBid)
		if perr != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, perr)
		}
		id, err = h.listing.CreateAuctionListing(ctx, seller, domain.Address(p.Collection), domain.TokenId(p.TokenId), term, minBid, domain.Address(p.Currency))
	} else {
		price, perr := domain.ToBigInt(p.Price)
		if perr != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, perr)
		}
		id, err = h.listing.CreateFixedPriceListing(ctx, seller, domain.Address(p.Collection), domain.TokenId(p.TokenId), price, term)
	}
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]uint64{"listingId": id})
}

func (h *handler) buyListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	buyer := c.Get("address").(domain.Address)
	id, err := listingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	p := struct {
		Currency string `json:"currency" validate:"required"`
		Value    string `json:"value"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	value, err := domain.ToBigInt(p.Value)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.BuyListing(ctx, buyer, id, domain.Address(p.Currency), value); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	bidder := c.Get("address").(domain.Address)
	id, err := listingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	p := struct {
		Amount string `json:"amount"`
		Value  string `json:"value"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	amount, err := domain.ToBigInt(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	value, err := domain.ToBigInt(p.Value)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.PlaceBid(ctx, bidder, id, amount, value); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) withdrawBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	bidder := c.Get("address").(domain.Address)
	id, err := listingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.listing.WithdrawBid(ctx, bidder, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) finalizeAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	id, err := listingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	p := struct {
		Winner string `json:"winner" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.FinalizeAuction(ctx, caller, id, domain.Address(p.Winner)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) updatePrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	seller := c.Get("address").(domain.Address)
	id, err := listingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	p := struct {
		Price string `json:"price" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	price, err := domain.ToBigInt(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.UpdatePrice(ctx, seller, id, price); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) updateDeadline(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	seller := c.Get("address").(domain.Address)
	id, err := listingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	p := struct {
		Term int64 `json:"term" validate:"required,gt=0"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.UpdateDeadline(ctx, seller, id, time.Duration(p.Term)*time.Second); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) updateTreasury(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := struct {
		Treasury string `json:"treasury" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.UpdateTreasury(ctx, caller, domain.Address(p.Treasury)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) updateTreasuryPercentage(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := struct {
		Percentage int32 `json:"percentage" validate:"gte=0,lte=100"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.UpdateTreasuryPercentage(ctx, caller, p.Percentage); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
