package repository

import (
	model "bid-sniper/internal/models"
	"bid-sniper/internal/snipererrors"
	"fmt"
	"sync"
	"time"
)

// RecordStore defines the persistence interface for accounts and auctions.
// Loads and saves move the whole collection; there is no partial-update API.
type RecordStore interface {
	LoadRecords() (model.Records, error)
	SaveRecords(records model.Records) error
	RecordBidOutcome(auctionID int, placedAt time.Time) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of RecordStore
type MemoryRepo struct {
	mu       sync.RWMutex
	accounts []model.Account
	auctions []model.Auction
}

// NewMemoryRepo creates a new in-memory store instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		accounts: []model.Account{},
		auctions: []model.Auction{},
	}
}

// LoadRecords returns a copy of the current record set
func (r *MemoryRepo) LoadRecords() (model.Records, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return model.Records{
		Accounts: append([]model.Account(nil), r.accounts...),
		Auctions: append([]model.Auction(nil), r.auctions...),
	}, nil
}

// SaveRecords replaces the whole record set
func (r *MemoryRepo) SaveRecords(records model.Records) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts = append([]model.Account(nil), records.Accounts...)
	r.auctions = append([]model.Auction(nil), records.Auctions...)
	return nil
}

// RecordBidOutcome stamps one auction's outcome timestamp and keeps
// everything else untouched
func (r *MemoryRepo) RecordBidOutcome(auctionID int, placedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.auctions {
		if r.auctions[i].ID == auctionID {
			ts := placedAt
			r.auctions[i].BidPlacedAt = &ts
			return nil
		}
	}
	return fmt.Errorf("record outcome for auction %d: %w", auctionID, snipererrors.ErrAuctionNotFound)
}
