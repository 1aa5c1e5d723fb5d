package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"bid-sniper/internal/browser"
	model "bid-sniper/internal/models"
	records "bid-sniper/internal/recordService"
	"bid-sniper/internal/repository"
	"bid-sniper/internal/server"
	sniper "bid-sniper/internal/sniperService"
	handler "bid-sniper/services/sniper/handler"

	"github.com/gin-gonic/gin"
)

// stubPage accepts every automation call so a scheduling pass always reaches
// the confirmation step.
type stubPage struct{}

func (p *stubPage) Navigate(ctx context.Context, url string) error          { return nil }
func (p *stubPage) WaitForElement(ctx context.Context, selector string) error { return nil }
func (p *stubPage) TypeInto(ctx context.Context, selector, text string) error { return nil }
func (p *stubPage) Click(ctx context.Context, selector string) error          { return nil }
func (p *stubPage) ClickAndNavigate(ctx context.Context, selector string) error {
	return nil
}
func (p *stubPage) Close() error { return nil }

type stubDriver struct {
	mu    sync.Mutex
	pages int
}

func (d *stubDriver) NewPage(ctx context.Context) (browser.Page, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pages++
	return &stubPage{}, nil
}

// SetupTestRouter initializes the router with an in-memory store and a stubbed
// browser driver for integration testing.
func SetupTestRouter(t *testing.T) *gin.Engine {
	return SetupTestRouterWithRecords(t, model.Records{})
}

// SetupTestRouterWithRecords initializes the router and seeds the store.
func SetupTestRouterWithRecords(t *testing.T, seed model.Records) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	if err := repo.SaveRecords(seed); err != nil {
		t.Fatalf("failed to seed records: %v", err)
	}
	recordsSvc := records.NewRecordsService(repo)

	registry := sniper.NewRegistry(&stubDriver{})
	login := sniper.NewLoginController(sniper.LoginOptions{
		URL:              "https://venue.test/login",
		UsernameSelector: "#username",
		PasswordSelector: "#password",
		SubmitSelector:   "#loginButton",
	})
	executor := sniper.NewExecutor(sniper.ExecutorOptions{
		ListingBaseURL:   "https://venue.test/listing",
		PlaceBidSelector: "#placeBidButton",
		ConfirmSelector:  "#confirmBidButton",
		BidFieldSuffix:   "_bidInput",
	})
	scheduler := sniper.NewScheduler(repo, registry, login, executor, nil)
	t.Cleanup(scheduler.Shutdown)

	recordsHandler := handler.NewRecordsHandler(recordsSvc)
	sniperHandler := handler.NewSniperHandler(scheduler)
	return server.SetupRouter(recordsHandler, sniperHandler, nil)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}
