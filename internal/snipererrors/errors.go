package snipererrors

import "errors"

// Record-store errors
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrInvalidRecord   = errors.New("invalid record")
	ErrBadCSV          = errors.New("malformed csv input")
)

// browser and bidding errors
var (
	ErrLoginFailed    = errors.New("login failed")
	ErrBidInteraction = errors.New("bid interaction failed")
)
