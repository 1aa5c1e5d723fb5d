package helpers

import (
	"fmt"

	model "bid-sniper/internal/models"
	"bid-sniper/internal/repository"
	"bid-sniper/internal/snipererrors"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type AccountRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
}

// AccountResponse never carries the password back out.
type AccountResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type AuctionRequest struct {
	ExternalRef     string `json:"external_ref" binding:"required"`
	Deadline        string `json:"deadline"`
	BidAmount       string `json:"bid_amount"`
	Address         string `json:"address"`
	AccountUsername string `json:"account_username"`
}

type StatusResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

// AccountToResponse maps a stored account to its redacted response form
func AccountToResponse(account model.Account) AccountResponse {
	return AccountResponse{ID: account.ID, Username: account.Username}
}

// AccountsToResponse maps a list of stored accounts to response form
func AccountsToResponse(accounts []model.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, AccountToResponse(account))
	}
	return out
}

// AuctionFromRequest converts a request payload into a domain auction.
// The deadline accepts RFC 3339 or local "2006-01-02 15:04[:05]" forms;
// an empty deadline or amount means none/zero.
func AuctionFromRequest(req AuctionRequest) (model.Auction, error) {
	deadline, err := repository.ParseDeadline(req.Deadline)
	if err != nil {
		return model.Auction{}, fmt.Errorf("%w - bad deadline %q", snipererrors.ErrInvalidRecord, req.Deadline)
	}

	amount := decimal.Zero
	if req.BidAmount != "" {
		amount, err = decimal.NewFromString(req.BidAmount)
		if err != nil {
			return model.Auction{}, fmt.Errorf("%w - bad bid amount %q", snipererrors.ErrInvalidRecord, req.BidAmount)
		}
	}

	return model.Auction{
		ExternalRef:     req.ExternalRef,
		Deadline:        deadline,
		BidAmount:       amount,
		Address:         req.Address,
		AccountUsername: req.AccountUsername,
	}, nil
}
