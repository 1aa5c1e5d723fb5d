package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	model "bid-sniper/internal/models"
	"bid-sniper/internal/snipererrors"

	"github.com/shopspring/decimal"
)

// Expected column order for auction imports. A header row is optional and
// detected by its first cell.
// external_ref, deadline, bid_amount, address, account_username
const auctionCSVColumns = 5

var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseAuctions reads auction rows from CSV input. IDs are left zero for the
// caller to assign. The import is all-or-nothing: any bad row fails the whole
// parse so a typo near the end cannot half-import a file.
func ParseAuctions(r io.Reader) ([]model.Auction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = auctionCSVColumns
	reader.TrimLeadingSpace = true

	auctions := []model.Auction{}
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: %v", row, snipererrors.ErrBadCSV, err)
		}
		if row == 1 && isHeaderRow(record) {
			continue
		}

		auction, err := parseAuctionRow(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		auctions = append(auctions, auction)
	}
	return auctions, nil
}

func isHeaderRow(record []string) bool {
	return strings.EqualFold(strings.TrimSpace(record[0]), "external_ref")
}

func parseAuctionRow(record []string) (model.Auction, error) {
	ref := strings.TrimSpace(record[0])
	if ref == "" {
		return model.Auction{}, fmt.Errorf("%w: empty external_ref", snipererrors.ErrBadCSV)
	}

	deadline, err := ParseDeadline(record[1])
	if err != nil {
		return model.Auction{}, fmt.Errorf("%w: bad deadline %q", snipererrors.ErrBadCSV, record[1])
	}

	amountRaw := strings.TrimSpace(record[2])
	if amountRaw == "" {
		amountRaw = "0"
	}
	amount, err := decimal.NewFromString(amountRaw)
	if err != nil {
		return model.Auction{}, fmt.Errorf("%w: bad bid_amount %q", snipererrors.ErrBadCSV, record[2])
	}

	return model.Auction{
		ExternalRef:     ref,
		Deadline:        deadline,
		BidAmount:       amount,
		Address:         strings.TrimSpace(record[3]),
		AccountUsername: strings.TrimSpace(record[4]),
	}, nil
}

// ParseDeadline parses a deadline in RFC 3339 or local naive form. An empty
// string is a valid "no deadline".
func ParseDeadline(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range deadlineLayouts {
		var (
			t   time.Time
			err error
		)
		if layout == time.RFC3339 {
			t, err = time.Parse(layout, raw)
		} else {
			t, err = time.ParseInLocation(layout, raw, time.Local)
		}
		if err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized deadline %q", raw)
}
