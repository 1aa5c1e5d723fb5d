package integrationtests

import (
	"net/http"
	"testing"
	"time"

	model "bid-sniper/internal/models"
	"bid-sniper/services/sniper/helpers"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Account CRUD over the wire
func TestAccountAPI(t *testing.T) {
	router := SetupTestRouter(t)

	// Create
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/accounts",
		helpers.AccountRequest{Username: "alice", Password: "hunter2"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 1.0, resp["id"])
	require.Equal(t, "alice", resp["username"])
	require.NotContains(t, resp, "password")

	// List never exposes the stored password
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/accounts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 1)
	require.NotContains(t, w.Body.String(), "hunter2")

	// Update
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPut, "/accounts/1",
		helpers.AccountRequest{Username: "alice-eu", Password: "hunter3"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "alice-eu", resp["data"].(map[string]any)["username"])

	// Delete, then the set is empty and a second delete misses
	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/accounts/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/accounts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 0)

	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/accounts/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// CreateAuctionHandler validation over the wire
func TestCreateAuctionAPI(t *testing.T) {
	tests := []struct {
		name       string
		request    any
		wantStatus int
	}{
		{
			name: "Valid_Auction",
			request: helpers.AuctionRequest{
				ExternalRef:     "stg/1234",
				Deadline:        "2026-09-01T12:30:00Z",
				BidAmount:       "12.50",
				AccountUsername: "alice",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Invalid_JSON",
			request:    "{external_ref: 'missing quotes'}", // invalid JSON
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Missing_External_Ref",
			request:    helpers.AuctionRequest{BidAmount: "5"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Unparseable_Deadline",
			request:    helpers.AuctionRequest{ExternalRef: "lot1", Deadline: "next tuesday"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Unparseable_Amount",
			request:    helpers.AuctionRequest{ExternalRef: "lot1", BidAmount: "five"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupTestRouter(t)
			resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				require.Equal(t, 1.0, resp["id"])
				require.Equal(t, "stg/1234", resp["external_ref"])
				require.Equal(t, "alice", resp["account_username"])
				require.NotContains(t, resp, "bid_placed_at")

				deadline, err := time.Parse(time.RFC3339, resp["deadline"].(string))
				require.NoError(t, err)
				require.True(t, deadline.Equal(time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)))

				amount, err := decimal.NewFromString(resp["bid_amount"].(string))
				require.NoError(t, err)
				require.True(t, amount.Equal(decimal.RequireFromString("12.50")))
			}
		})
	}
}

// CSV import over the wire
func TestImportAuctionsAPI(t *testing.T) {
	router := SetupTestRouter(t)

	csv := "external_ref,deadline,bid_amount,address,account_username\n" +
		"stg/1234,2026-09-01T12:30:00Z,12.50,,alice\n" +
		"lot9,,5,,bob\n"
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/import", []byte(csv))
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 2.0, resp["imported"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	auctions := resp["data"].([]any)
	require.Len(t, auctions, 2)
	require.Equal(t, 1.0, auctions[0].(map[string]any)["id"])
	require.Equal(t, 2.0, auctions[1].(map[string]any)["id"])

	// A malformed row imports nothing
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/import", []byte("lot1,5,alice\n"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions", nil)
	require.Len(t, resp["data"].([]any), 2)
}

// A scheduling pass places past-deadline bids before responding and reports
// the stamped outcomes in its body.
func TestSchedulePassAPI(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	router := SetupTestRouterWithRecords(t, model.Records{
		Accounts: []model.Account{{ID: 1, Username: "alice", Password: "pw"}},
		Auctions: []model.Auction{
			{ID: 1, ExternalRef: "lot1", Deadline: &past, BidAmount: decimal.RequireFromString("5"), AccountUsername: "alice"},
			{ID: 2, ExternalRef: "lot2", BidAmount: decimal.RequireFromString("7"), AccountUsername: "alice"},
		},
	})

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/schedule", nil)
	require.Equal(t, http.StatusOK, w.Code)

	byRef := map[string]map[string]any{}
	for _, a := range resp["data"].([]any) {
		auction := a.(map[string]any)
		byRef[auction["external_ref"].(string)] = auction
	}
	require.Len(t, byRef, 2)
	require.Contains(t, byRef["lot1"], "bid_placed_at")    // past deadline, placed during the pass
	require.NotContains(t, byRef["lot2"], "bid_placed_at") // no deadline, skipped

	firstStamp := byRef["lot1"]["bid_placed_at"].(string)
	_, err := time.Parse(time.RFC3339, firstStamp)
	require.NoError(t, err)

	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/pending", nil)
	require.Equal(t, 0.0, resp["data"].(map[string]any)["count"])

	// A second pass skips the recorded outcome and leaves the stamp untouched
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/schedule", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, a := range resp["data"].([]any) {
		auction := a.(map[string]any)
		if auction["external_ref"] == "lot1" {
			require.Equal(t, firstStamp, auction["bid_placed_at"])
		}
	}
}

// Far-future deadlines arm timers that cancel cleanly over the API
func TestCancelPendingBidsAPI(t *testing.T) {
	future := time.Now().Add(time.Hour)
	router := SetupTestRouterWithRecords(t, model.Records{
		Accounts: []model.Account{{ID: 1, Username: "alice", Password: "pw"}},
		Auctions: []model.Auction{
			{ID: 1, ExternalRef: "lot1", Deadline: &future, BidAmount: decimal.RequireFromString("5"), AccountUsername: "alice"},
		},
	})

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/schedule", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, _ := ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/pending", nil)
	pending := resp["data"].(map[string]any)
	require.Equal(t, 1.0, pending["count"])
	require.Equal(t, "1 bids pending", pending["message"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cancelled := resp["data"].(map[string]any)
	require.Equal(t, 1.0, cancelled["count"])
	require.Equal(t, "cancelled 1 pending bids", cancelled["message"])

	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/pending", nil)
	require.Equal(t, 0.0, resp["data"].(map[string]any)["count"])

	// The cancelled bid never placed anything
	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions", nil)
	require.NotContains(t, resp["data"].([]any)[0].(map[string]any), "bid_placed_at")
}

// Closing sessions over the API tears down the browser pool
func TestCloseSessionsAPI(t *testing.T) {
	future := time.Now().Add(time.Hour)
	router := SetupTestRouterWithRecords(t, model.Records{
		Accounts: []model.Account{{ID: 1, Username: "alice", Password: "pw"}},
		Auctions: []model.Auction{
			{ID: 1, ExternalRef: "lot1", Deadline: &future, BidAmount: decimal.RequireFromString("5"), AccountUsername: "alice"},
		},
	})

	// A scheduling pass opens alice's session
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/schedule", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/sessions/close", nil)
	require.Equal(t, http.StatusOK, w.Code)
	closed := resp["data"].(map[string]any)
	require.Equal(t, 1.0, closed["count"])
	require.Equal(t, "closed 1 sessions", closed["message"])

	// Nothing left to close
	resp, _ = ExecuteRequestAndParse(t, router, http.MethodPost, "/sessions/close", nil)
	require.Equal(t, 0.0, resp["data"].(map[string]any)["count"])

	// The armed timer survives the session teardown
	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/pending", nil)
	require.Equal(t, 1.0, resp["data"].(map[string]any)["count"])
}
