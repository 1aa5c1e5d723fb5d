package sniper

import (
	"context"
	"fmt"
	"sync"
	"time"

	model "bid-sniper/internal/models"
	"bid-sniper/internal/repository"
	"bid-sniper/utils"
)

// EventSink receives scheduler lifecycle events. Implementations must not
// block; the scheduler emits from its hot paths.
type EventSink interface {
	Emit(ev model.SniperEvent)
}

// FanoutSink forwards each event to every sink it holds.
type FanoutSink []EventSink

// Emit sends ev to all member sinks
func (f FanoutSink) Emit(ev model.SniperEvent) {
	for _, sink := range f {
		if sink != nil {
			sink.Emit(ev)
		}
	}
}

// scheduledBid is one armed timer's cancellable handle.
type scheduledBid struct {
	auctionID int
	username  string
	fireAt    time.Time
	cancel    context.CancelFunc
}

// Scheduler orchestrates deadline-driven bid placement: it loads records,
// opens and signs in one session per account with work to do, places
// past-deadline bids immediately, and arms one timer per future deadline.
type Scheduler struct {
	store    repository.RecordStore
	registry *Registry
	login    *LoginController
	executor *Executor
	events   EventSink

	mu      sync.Mutex
	pending map[int]*scheduledBid

	// baseCtx outlives any single ScheduleAll call; armed timers derive from
	// it so a finished HTTP request cannot kill a pending bid.
	baseCtx context.Context
	stop    context.CancelFunc
}

// NewScheduler creates a new Scheduler instance. A nil events sink is valid
// and discards all events.
func NewScheduler(store repository.RecordStore, registry *Registry, login *LoginController, executor *Executor, events EventSink) *Scheduler {
	baseCtx, stop := context.WithCancel(context.Background())
	return &Scheduler{
		store:    store,
		registry: registry,
		login:    login,
		executor: executor,
		events:   events,
		pending:  make(map[int]*scheduledBid),
		baseCtx:  baseCtx,
		stop:     stop,
	}
}

// ScheduleAll runs one full scheduling pass. It first cancels every armed
// timer, so repeated calls leave exactly the timers implied by the latest
// records. It returns once every account's pass has completed: immediate
// bids placed, future bids armed. Individual bid failures never surface as
// an error; the caller always gets the reloaded auction collection.
func (s *Scheduler) ScheduleAll(ctx context.Context) ([]model.Auction, error) {
	s.CancelAllPending()

	records, err := s.store.LoadRecords()
	if err != nil {
		return nil, fmt.Errorf("scheduler: load records: %w", err)
	}

	if len(records.Accounts) == 0 || len(records.Auctions) == 0 {
		return records.Auctions, nil
	}

	eligible := groupEligible(records)

	var wg sync.WaitGroup
	for _, account := range records.Accounts {
		auctions := eligible[account.Username]
		if len(auctions) == 0 {
			// Nothing to bid on: no session, no login.
			continue
		}
		wg.Add(1)
		go func(account model.Account, auctions []model.Auction) {
			defer wg.Done()
			s.runAccountPass(ctx, account, auctions)
		}(account, auctions)
	}
	wg.Wait()

	latest, err := s.store.LoadRecords()
	if err != nil {
		utils.Error("scheduler: reload after pass failed", map[string]any{"error": err.Error()})
		return records.Auctions, nil
	}
	return latest.Auctions, nil
}

// groupEligible buckets biddable auctions by account username. Auctions with
// a non-positive amount, an already-recorded outcome, or no matching account
// never reach a session.
func groupEligible(records model.Records) map[string][]model.Auction {
	known := make(map[string]bool, len(records.Accounts))
	for _, account := range records.Accounts {
		known[account.Username] = true
	}

	grouped := make(map[string][]model.Auction)
	for _, auction := range records.Auctions {
		if !auction.BidAmount.IsPositive() || !auction.Eligible() {
			continue
		}
		if !known[auction.AccountUsername] {
			utils.Warn("scheduler: auction has no matching account", map[string]any{
				"auction_id":   auction.ID,
				"external_ref": auction.ExternalRef,
				"username":     auction.AccountUsername,
			})
			continue
		}
		grouped[auction.AccountUsername] = append(grouped[auction.AccountUsername], auction)
	}
	return grouped
}

// runAccountPass works through one account's eligible auctions sequentially
// against its single shared session.
func (s *Scheduler) runAccountPass(ctx context.Context, account model.Account, auctions []model.Auction) {
	utils.Debug("scheduler: account pass started", map[string]any{
		"username": account.Username,
		"auctions": len(auctions),
	})

	session, err := s.registry.Acquire(ctx, account.Username)
	if err != nil {
		utils.Error("scheduler: could not open session", map[string]any{
			"username": account.Username,
			"error":    err.Error(),
		})
		ev := s.newEvent(model.EventSessionFailed)
		ev.Username = account.Username
		ev.Err = err.Error()
		s.emit(ev)
		return
	}

	if err := s.login.EnsureAuthenticated(ctx, session, account); err != nil {
		// Login failure is non-fatal: log it and proceed with bidding.
		utils.Warn("scheduler: login failed, proceeding unauthenticated", map[string]any{
			"username": account.Username,
			"error":    err.Error(),
		})
		ev := s.newEvent(model.EventLoginFailed)
		ev.Username = account.Username
		ev.Err = err.Error()
		s.emit(ev)
	}

	for _, auction := range auctions {
		if !auction.HasDeadline() {
			utils.Info("scheduler: auction has no deadline, skipped", map[string]any{
				"auction_id":   auction.ID,
				"external_ref": auction.ExternalRef,
			})
			s.emit(s.newAuctionEvent(model.EventBidSkipped, auction))
			continue
		}

		delay := time.Until(*auction.Deadline)
		if delay <= 0 {
			s.executeBid(session, auction)
		} else {
			s.armBid(session, auction, delay)
		}
	}
}

// armBid registers a cancellable timer that fires the bid at the deadline.
// An existing timer for the same auction is cancelled first, so at most one
// timer per auction is ever live.
func (s *Scheduler) armBid(session *Session, auction model.Auction, delay time.Duration) {
	bidCtx, cancel := context.WithCancel(s.baseCtx)
	sb := &scheduledBid{
		auctionID: auction.ID,
		username:  session.Username,
		fireAt:    time.Now().Add(delay),
		cancel:    cancel,
	}

	s.mu.Lock()
	if old, ok := s.pending[auction.ID]; ok {
		old.cancel()
	}
	s.pending[auction.ID] = sb
	s.mu.Unlock()

	ev := s.newAuctionEvent(model.EventBidScheduled, auction)
	ev.FireAtMs = sb.fireAt.UnixMilli()
	s.emit(ev)
	utils.Info("scheduler: bid armed", map[string]any{
		"auction_id":   auction.ID,
		"external_ref": auction.ExternalRef,
		"username":     session.Username,
		"fire_in":      delay.String(),
	})

	go func() {
		defer s.forgetPending(sb)

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-bidCtx.Done():
			return
		case <-timer.C:
		}
		// The timer and a cancellation can become ready in the same instant;
		// cancellation wins.
		if bidCtx.Err() != nil {
			return
		}

		s.executeBid(session, auction)
	}()
}

// forgetPending drops sb from the pending set if it is still the registered
// handle for its auction.
func (s *Scheduler) forgetPending(sb *scheduledBid) {
	s.mu.Lock()
	if current, ok := s.pending[sb.auctionID]; ok && current == sb {
		delete(s.pending, sb.auctionID)
	}
	s.mu.Unlock()
}

// executeBid runs one bid attempt holding the session's interactive lock, so
// attempts on a shared session never overlap. A fired attempt runs to
// completion; it cannot be cancelled mid-flight.
func (s *Scheduler) executeBid(session *Session, auction model.Auction) {
	session.mu.Lock()
	defer session.mu.Unlock()

	placedAt, err := s.executor.PlaceBid(s.baseCtx, session.Page, auction)
	if err != nil {
		utils.Error("scheduler: bid attempt failed", map[string]any{
			"auction_id":   auction.ID,
			"external_ref": auction.ExternalRef,
			"username":     session.Username,
			"error":        err.Error(),
		})
		ev := s.newAuctionEvent(model.EventBidFailed, auction)
		ev.Err = err.Error()
		s.emit(ev)
		return
	}

	if err := s.store.RecordBidOutcome(auction.ID, placedAt); err != nil {
		utils.Error("scheduler: bid placed but outcome not persisted", map[string]any{
			"auction_id": auction.ID,
			"error":      err.Error(),
		})
	}

	ev := s.newAuctionEvent(model.EventBidPlaced, auction)
	ev.Amount = auction.BidAmount.StringFixed(2)
	s.emit(ev)
	utils.Info("scheduler: bid placed", map[string]any{
		"auction_id":   auction.ID,
		"external_ref": auction.ExternalRef,
		"username":     session.Username,
		"amount":       auction.BidAmount.StringFixed(2),
	})
}

// CancelAllPending cancels every armed timer and clears the pending set.
// Sessions and their authentication state are untouched. Returns the number
// of timers cancelled; an attempt already executing runs to completion.
func (s *Scheduler) CancelAllPending() int {
	s.mu.Lock()
	cancelled := make([]*scheduledBid, 0, len(s.pending))
	for _, sb := range s.pending {
		cancelled = append(cancelled, sb)
	}
	s.pending = make(map[int]*scheduledBid)
	s.mu.Unlock()

	for _, sb := range cancelled {
		sb.cancel()
	}

	if len(cancelled) > 0 {
		ev := s.newEvent(model.EventBidsCancelled)
		ev.Count = len(cancelled)
		s.emit(ev)
		utils.Info("scheduler: pending bids cancelled", map[string]any{"count": len(cancelled)})
	}
	return len(cancelled)
}

// CloseAllSessions closes every live session and clears the registry. Armed
// timers stay armed; one that later fires against a closed session fails as
// an ordinary interaction failure.
func (s *Scheduler) CloseAllSessions() int {
	closed := s.registry.CloseAll()
	if closed > 0 {
		ev := s.newEvent(model.EventSessionsClosed)
		ev.Count = closed
		s.emit(ev)
		utils.Info("scheduler: sessions closed", map[string]any{"count": closed})
	}
	return closed
}

// PendingCount reports the number of armed timers.
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Shutdown is the process-exit path: cancel pending timers and abort
// in-flight bids, then close all sessions.
func (s *Scheduler) Shutdown() {
	s.CancelAllPending()
	s.stop()
	s.registry.CloseAll()
}

func (s *Scheduler) emit(ev model.SniperEvent) {
	if s.events != nil {
		s.events.Emit(ev)
	}
}

func (s *Scheduler) newEvent(event string) model.SniperEvent {
	return model.NewEvent(utils.GenerateID(), event)
}

func (s *Scheduler) newAuctionEvent(event string, auction model.Auction) model.SniperEvent {
	ev := s.newEvent(event)
	ev.AuctionID = auction.ID
	ev.ExternalRef = auction.ExternalRef
	ev.Username = auction.AccountUsername
	return ev
}
