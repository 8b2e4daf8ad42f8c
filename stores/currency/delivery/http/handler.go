package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/middleware"
	authMiddleware "github.com/x-xyz/marketplace/stores/auth/delivery/http/middleware"
)

type handler struct {
	currency domain.CurrencyUsecase
}

func New(e *echo.Echo, am *authMiddleware.AuthMiddleware, uc domain.CurrencyUsecase) {
	h := &handler{currency: uc}

	g := e.Group("/currencies")
	g.GET("", h.getCurrencies)
	g.GET("/:address", h.getCurrency, middleware.IsValidAddress("address"))

	g.POST("", h.addCurrency, am.Auth(), am.IsAdmin())
	g.DELETE("/:address", h.removeCurrency, am.Auth(), am.IsAdmin(), middleware.IsValidAddress("address"))
	g.PUT("/baseline", h.setBaseline, am.Auth(), am.IsAdmin())
	g.PUT("/native", h.setNative, am.Auth(), am.IsAdmin())
}

func (h *handler) getCurrencies(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.currency.List(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]interface{}{
		"baseline":   h.currency.Baseline(),
		"native":     h.currency.Native(),
		"currencies": res,
	})
}

func (h *handler) getCurrency(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.currency.Get(ctx, domain.Address(c.Param("address")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) addCurrency(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := struct {
		Address       string `json:"address" validate:"required"`
		FeedAddress   string `json:"feedAddress"`
		Decimals      int32  `json:"decimals" validate:"gte=0"`
		TokenDecimals int32  `json:"tokenDecimals" validate:"gte=0"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	currency := &domain.Currency{
		Address:       domain.Address(p.Address),
		FeedAddress:   domain.Address(p.FeedAddress),
		Decimals:      p.Decimals,
		TokenDecimals: p.TokenDecimals,
	}
	if err := h.currency.Add(ctx, caller, currency); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, currency)
}

func (h *handler) removeCurrency(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.currency.Remove(ctx, caller, domain.Address(c.Param("address"))); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) setBaseline(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := struct {
		Address string `json:"address" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.currency.SetBaseline(ctx, caller, domain.Address(p.Address)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) setNative(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := struct {
		Address string `json:"address" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.currency.SetNative(ctx, caller, domain.Address(p.Address)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
