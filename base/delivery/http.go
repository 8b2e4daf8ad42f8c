package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp writes the response envelope. When data is an error the
// status is refined from the domain error taxonomy before writing.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = refineStatus(status, err)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

func refineStatus(status int, err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, query.ErrNotFound),
		errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrCurrencyNotRegistered):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOnlyOwner),
		errors.Is(err, domain.ErrSenderIsNotItemOwner),
		errors.Is(err, domain.ErrSenderIsItemOwner):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrItemAlreadyOnListing),
		errors.Is(err, domain.ErrCurrencyAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, domain.ErrZeroAddress),
		errors.Is(err, domain.ErrZeroPrice),
		errors.Is(err, domain.ErrZeroBid),
		errors.Is(err, domain.ErrTooLongTerm),
		errors.Is(err, domain.ErrInvalidPercentage),
		errors.Is(err, domain.ErrBidIsTooLow),
		errors.Is(err, domain.ErrInsufficientPayment),
		errors.Is(err, domain.ErrExpired),
		errors.Is(err, domain.ErrNonStandardPurchase),
		errors.Is(err, domain.ErrNonAuction),
		errors.Is(err, domain.ErrWinnerHasNotBid),
		errors.Is(err, domain.ErrAuctionNotOver),
		errors.Is(err, domain.ErrCurrencyNotAvailable),
		errors.Is(err, domain.ErrNonApprovedNFT),
		errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	}
	return status
}
