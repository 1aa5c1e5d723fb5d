package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a set of auction-site credentials
type Account struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Auction represents a tracked listing and the bid planned for it
type Auction struct {
	ID              int             `json:"id"`
	ExternalRef     string          `json:"external_ref"`
	Deadline        *time.Time      `json:"deadline,omitempty"`
	BidAmount       decimal.Decimal `json:"bid_amount"`
	Address         string          `json:"address,omitempty"`
	AccountUsername string          `json:"account_username"`
	BidPlacedAt     *time.Time      `json:"bid_placed_at,omitempty"`
}

// Eligible reports whether the auction still needs a bid placed.
// An auction with a recorded bid timestamp is done and never rescheduled.
func (a Auction) Eligible() bool {
	return a.BidPlacedAt == nil
}

// HasDeadline reports whether a firing time can be computed for the auction.
func (a Auction) HasDeadline() bool {
	return a.Deadline != nil
}

// Records is the full persisted data set, loaded and saved as one document
type Records struct {
	Accounts []Account `json:"accounts"`
	Auctions []Auction `json:"auctions"`
}

// Scheduler event names
const (
	EventBidScheduled   = "bid_scheduled"
	EventBidSkipped     = "bid_skipped"
	EventBidPlaced      = "bid_placed"
	EventBidFailed      = "bid_failed"
	EventLoginFailed    = "login_failed"
	EventSessionFailed  = "session_failed"
	EventBidsCancelled  = "bids_cancelled"
	EventSessionsClosed = "sessions_closed"
)

// SniperEvent is one entry in the scheduler's event stream
type SniperEvent struct {
	EventID     string `json:"event_id"`
	TsMs        int64  `json:"ts_ms"`
	Event       string `json:"event"`
	AuctionID   int    `json:"auction_id,omitempty"`
	ExternalRef string `json:"external_ref,omitempty"`
	Username    string `json:"username,omitempty"`
	Amount      string `json:"amount,omitempty"`
	FireAtMs    int64  `json:"fire_at_ms,omitempty"`
	Count       int    `json:"count,omitempty"`
	Err         string `json:"err,omitempty"`
}

// NewEvent builds a stamped event with the given name
func NewEvent(id, event string) SniperEvent {
	return SniperEvent{
		EventID: id,
		TsMs:    time.Now().UnixMilli(),
		Event:   event,
	}
}
