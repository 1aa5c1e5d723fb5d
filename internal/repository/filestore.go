package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	model "bid-sniper/internal/models"
	"bid-sniper/internal/snipererrors"
)

// FileRepo persists the whole record set as one JSON document on disk.
// A process-local mutex serializes scheduler outcome writes against UI edits;
// across processes the file remains last-writer-wins per save.
type FileRepo struct {
	mu   sync.Mutex
	path string
}

// NewFileRepo creates a store backed by the JSON file at path. The file is
// created on first save; a missing file loads as an empty record set.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{path: path}
}

// LoadRecords reads the latest record set from disk
func (r *FileRepo) LoadRecords() (model.Records, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

// SaveRecords atomically replaces the record file
func (r *FileRepo) SaveRecords(records model.Records) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked(records)
}

// RecordBidOutcome reads the latest records, stamps one auction's outcome
// timestamp, and writes the whole file back.
func (r *FileRepo) RecordBidOutcome(auctionID int, placedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.loadLocked()
	if err != nil {
		return fmt.Errorf("record outcome for auction %d: %w", auctionID, err)
	}

	found := false
	for i := range records.Auctions {
		if records.Auctions[i].ID == auctionID {
			ts := placedAt
			records.Auctions[i].BidPlacedAt = &ts
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("record outcome for auction %d: %w", auctionID, snipererrors.ErrAuctionNotFound)
	}

	return r.saveLocked(records)
}

func (r *FileRepo) loadLocked() (model.Records, error) {
	empty := model.Records{Accounts: []model.Account{}, Auctions: []model.Auction{}}

	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return empty, nil
		}
		return empty, fmt.Errorf("read records %s: %w", r.path, err)
	}

	var records model.Records
	if err := json.Unmarshal(b, &records); err != nil {
		return empty, fmt.Errorf("parse records %s: %w", r.path, err)
	}
	if records.Accounts == nil {
		records.Accounts = []model.Account{}
	}
	if records.Auctions == nil {
		records.Auctions = []model.Auction{}
	}
	return records, nil
}

func (r *FileRepo) saveLocked(records model.Records) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create records dir: %w", err)
	}

	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	b = append(b, '\n')

	// Write-then-rename so a crash mid-save never truncates the live file.
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write records %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace records %s: %w", r.path, err)
	}
	return nil
}
