package records

import (
	"fmt"
	"io"
	"strings"

	model "bid-sniper/internal/models"
	"bid-sniper/internal/repository"
	"bid-sniper/internal/snipererrors"
)

// RecordsService owns account and auction bookkeeping: CRUD with validation,
// integer ID assignment, and CSV ingestion. The scheduler core only ever sees
// the finished records through the store.
type RecordsService struct {
	store repository.RecordStore
}

// NewRecordsService creates a new RecordsService instance
func NewRecordsService(store repository.RecordStore) *RecordsService {
	return &RecordsService{store: store}
}

// ListAccounts returns all stored accounts
func (s *RecordsService) ListAccounts() ([]model.Account, error) {
	records, err := s.store.LoadRecords()
	if err != nil {
		return nil, fmt.Errorf("service: failed to load accounts: %w", err)
	}
	return records.Accounts, nil
}

// CreateAccount validates and stores a new account with the next free ID
func (s *RecordsService) CreateAccount(username, password string) (model.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return model.Account{}, fmt.Errorf("service: %w - empty username", snipererrors.ErrInvalidRecord)
	}

	records, err := s.store.LoadRecords()
	if err != nil {
		return model.Account{}, fmt.Errorf("service: failed to load records: %w", err)
	}

	account := model.Account{
		ID:       nextAccountID(records.Accounts),
		Username: username,
		Password: password,
	}
	records.Accounts = append(records.Accounts, account)

	if err := s.store.SaveRecords(records); err != nil {
		return model.Account{}, fmt.Errorf("service: failed to save account %s: %w", username, err)
	}
	return account, nil
}

// UpdateAccount replaces the credentials of an existing account
func (s *RecordsService) UpdateAccount(id int, username, password string) (model.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return model.Account{}, fmt.Errorf("service: %w - empty username", snipererrors.ErrInvalidRecord)
	}

	records, err := s.store.LoadRecords()
	if err != nil {
		return model.Account{}, fmt.Errorf("service: failed to load records: %w", err)
	}

	for i := range records.Accounts {
		if records.Accounts[i].ID == id {
			records.Accounts[i].Username = username
			records.Accounts[i].Password = password
			if err := s.store.SaveRecords(records); err != nil {
				return model.Account{}, fmt.Errorf("service: failed to save account %d: %w", id, err)
			}
			return records.Accounts[i], nil
		}
	}
	return model.Account{}, fmt.Errorf("service: account %d: %w", id, snipererrors.ErrAccountNotFound)
}

// DeleteAccount removes an account by ID. Auctions pointing at it keep their
// username and simply stop matching during scheduling.
func (s *RecordsService) DeleteAccount(id int) error {
	records, err := s.store.LoadRecords()
	if err != nil {
		return fmt.Errorf("service: failed to load records: %w", err)
	}

	for i := range records.Accounts {
		if records.Accounts[i].ID == id {
			records.Accounts = append(records.Accounts[:i], records.Accounts[i+1:]...)
			if err := s.store.SaveRecords(records); err != nil {
				return fmt.Errorf("service: failed to delete account %d: %w", id, err)
			}
			return nil
		}
	}
	return fmt.Errorf("service: account %d: %w", id, snipererrors.ErrAccountNotFound)
}

// ListAuctions returns all stored auctions
func (s *RecordsService) ListAuctions() ([]model.Auction, error) {
	records, err := s.store.LoadRecords()
	if err != nil {
		return nil, fmt.Errorf("service: failed to load auctions: %w", err)
	}
	return records.Auctions, nil
}

// CreateAuction validates and stores a new auction with the next free ID.
// The outcome timestamp always starts empty.
func (s *RecordsService) CreateAuction(auction model.Auction) (model.Auction, error) {
	if err := validateAuction(auction); err != nil {
		return model.Auction{}, err
	}

	records, err := s.store.LoadRecords()
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to load records: %w", err)
	}

	auction.ID = nextAuctionID(records.Auctions)
	auction.BidPlacedAt = nil
	records.Auctions = append(records.Auctions, auction)

	if err := s.store.SaveRecords(records); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to save auction %s: %w", auction.ExternalRef, err)
	}
	return auction, nil
}

// UpdateAuction replaces an auction's editable fields. The outcome timestamp
// is owned by the scheduler and survives edits.
func (s *RecordsService) UpdateAuction(auction model.Auction) (model.Auction, error) {
	if err := validateAuction(auction); err != nil {
		return model.Auction{}, err
	}

	records, err := s.store.LoadRecords()
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to load records: %w", err)
	}

	for i := range records.Auctions {
		if records.Auctions[i].ID == auction.ID {
			auction.BidPlacedAt = records.Auctions[i].BidPlacedAt
			records.Auctions[i] = auction
			if err := s.store.SaveRecords(records); err != nil {
				return model.Auction{}, fmt.Errorf("service: failed to save auction %d: %w", auction.ID, err)
			}
			return auction, nil
		}
	}
	return model.Auction{}, fmt.Errorf("service: auction %d: %w", auction.ID, snipererrors.ErrAuctionNotFound)
}

// DeleteAuction removes an auction by ID
func (s *RecordsService) DeleteAuction(id int) error {
	records, err := s.store.LoadRecords()
	if err != nil {
		return fmt.Errorf("service: failed to load records: %w", err)
	}

	for i := range records.Auctions {
		if records.Auctions[i].ID == id {
			records.Auctions = append(records.Auctions[:i], records.Auctions[i+1:]...)
			if err := s.store.SaveRecords(records); err != nil {
				return fmt.Errorf("service: failed to delete auction %d: %w", id, err)
			}
			return nil
		}
	}
	return fmt.Errorf("service: auction %d: %w", id, snipererrors.ErrAuctionNotFound)
}

// ImportAuctions parses CSV listing rows, assigns IDs, and appends them to
// the stored set. Returns the number of auctions imported. A parse error
// imports nothing.
func (s *RecordsService) ImportAuctions(r io.Reader) (int, error) {
	imported, err := repository.ParseAuctions(r)
	if err != nil {
		return 0, fmt.Errorf("service: import auctions: %w", err)
	}
	if len(imported) == 0 {
		return 0, nil
	}

	records, err := s.store.LoadRecords()
	if err != nil {
		return 0, fmt.Errorf("service: failed to load records: %w", err)
	}

	nextID := nextAuctionID(records.Auctions)
	for i := range imported {
		imported[i].ID = nextID
		nextID++
	}
	records.Auctions = append(records.Auctions, imported...)

	if err := s.store.SaveRecords(records); err != nil {
		return 0, fmt.Errorf("service: failed to save imported auctions: %w", err)
	}
	return len(imported), nil
}

func validateAuction(auction model.Auction) error {
	if strings.TrimSpace(auction.ExternalRef) == "" {
		return fmt.Errorf("service: %w - empty external ref", snipererrors.ErrInvalidRecord)
	}
	if auction.BidAmount.IsNegative() {
		return fmt.Errorf("service: %w - negative bid amount", snipererrors.ErrInvalidRecord)
	}
	return nil
}

func nextAccountID(accounts []model.Account) int {
	next := 1
	for _, a := range accounts {
		if a.ID >= next {
			next = a.ID + 1
		}
	}
	return next
}

func nextAuctionID(auctions []model.Auction) int {
	next := 1
	for _, a := range auctions {
		if a.ID >= next {
			next = a.ID + 1
		}
	}
	return next
}
