package sniper

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"bid-sniper/internal/browser"
	model "bid-sniper/internal/models"
	"bid-sniper/internal/snipererrors"
)

// ExecutorOptions locate the venue's bid controls and bound the sequence.
type ExecutorOptions struct {
	ListingBaseURL   string
	PlaceBidSelector string
	ConfirmSelector  string
	BidFieldSuffix   string
	SettleDelay      time.Duration
}

// Executor drives one bid-placement sequence on a session's tab.
type Executor struct {
	opts ExecutorOptions
}

// NewExecutor creates a new Executor instance
func NewExecutor(opts ExecutorOptions) *Executor {
	return &Executor{opts: opts}
}

// BidFieldID derives the bid-amount input id for a listing reference:
// trimmed, uppercased, path separators removed, fixed suffix appended.
// "stg/1234" with suffix "_bidInput" becomes "STG1234_bidInput".
func (e *Executor) BidFieldID(externalRef string) string {
	id := strings.ToUpper(strings.TrimSpace(externalRef))
	id = strings.NewReplacer("/", "", "\\", "").Replace(id)
	return id + e.opts.BidFieldSuffix
}

// PlaceBid runs the bid sequence against the auction's listing page: navigate,
// locate the bid field, type the amount over whatever is there, activate the
// place-bid control, wait the fixed settle delay for the confirmation UI to
// render, then activate the confirmation control. Success means both clicks
// landed, not that the venue acknowledged the bid; the returned timestamp is
// wall-clock completion time. Any step error aborts this auction only and
// leaves its outcome untouched.
func (e *Executor) PlaceBid(ctx context.Context, page browser.Page, auction model.Auction) (time.Time, error) {
	fieldSelector := "#" + e.BidFieldID(auction.ExternalRef)
	amount := auction.BidAmount.StringFixed(2)

	if err := page.Navigate(ctx, e.listingURL(auction)); err != nil {
		return time.Time{}, bidError(auction, err)
	}
	if err := page.WaitForElement(ctx, fieldSelector); err != nil {
		return time.Time{}, bidError(auction, err)
	}
	if err := page.TypeInto(ctx, fieldSelector, amount); err != nil {
		return time.Time{}, bidError(auction, err)
	}
	if err := page.Click(ctx, e.opts.PlaceBidSelector); err != nil {
		return time.Time{}, bidError(auction, err)
	}
	// The confirmation UI renders asynchronously; the fixed delay is the only
	// readiness signal the venue gives us.
	if err := sleepWithContext(ctx, e.opts.SettleDelay); err != nil {
		return time.Time{}, bidError(auction, err)
	}
	if err := page.Click(ctx, e.opts.ConfirmSelector); err != nil {
		return time.Time{}, bidError(auction, err)
	}

	return time.Now(), nil
}

// listingURL resolves the auction's detail page: the stored address when the
// record carries one, else the base URL joined with the escaped reference.
func (e *Executor) listingURL(auction model.Auction) string {
	if addr := strings.TrimSpace(auction.Address); addr != "" {
		return addr
	}
	base := strings.TrimRight(e.opts.ListingBaseURL, "/")
	return base + "/" + url.PathEscape(strings.TrimSpace(auction.ExternalRef))
}

func bidError(auction model.Auction, err error) error {
	return fmt.Errorf("bid %s: %v: %w", auction.ExternalRef, err, snipererrors.ErrBidInteraction)
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
