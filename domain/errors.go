package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// input validation
	ErrZeroAddress       = errors.New("zero address")
	ErrZeroPrice         = errors.New("zero price")
	ErrZeroBid           = errors.New("zero bid")
	ErrTooLongTerm       = errors.New("listing term exceeds maximum")
	ErrInvalidPercentage = errors.New("invalid percentage")

	// authorization
	ErrOnlyOwner            = errors.New("restricted to contract owner")
	ErrSenderIsNotItemOwner = errors.New("sender is not item owner")
	ErrSenderIsItemOwner    = errors.New("sender is item owner")

	// state preconditions
	ErrListingNotFound           = errors.New("listing not found")
	ErrItemAlreadyOnListing      = errors.New("item already on listing")
	ErrNonApprovedNFT            = errors.New("nft transfer not approved")
	ErrCurrencyAlreadyRegistered = errors.New("currency already registered")
	ErrCurrencyNotRegistered     = errors.New("currency not registered")
	ErrCurrencyNotAvailable      = errors.New("currency not available")
	ErrNonStandardPurchase       = errors.New("listing is an auction")
	ErrNonAuction                = errors.New("listing is not an auction")
	ErrWinnerHasNotBid           = errors.New("winner has not bid")
	ErrAuctionNotOver            = errors.New("auction is not over")
	ErrReentrantCall             = errors.New("reentrant call")

	// economic
	ErrBidIsTooLow         = errors.New("bid is below minimum")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrExpired             = errors.New("listing expired")

	// external dependencies
	ErrInvalidCurrency     = errors.New("invalid currency")
	ErrNoPriceFeed         = errors.New("no price feed")
	ErrInvalidNumberFormat = errors.New("invalid number format")
)
