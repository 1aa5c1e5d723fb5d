package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the sniper process.
type Config struct {
	ListenAddr string

	DataFile  string
	AuditFile string

	LoginURL       string
	ListingBaseURL string

	UsernameSelector string
	PasswordSelector string
	SubmitSelector   string
	PlaceBidSelector string
	ConfirmSelector  string
	BidFieldSuffix   string

	Headless   bool
	BrowserBin string

	NavigateTimeout time.Duration
	ElementTimeout  time.Duration
	SettleDelay     time.Duration
}

// Default returns the stock configuration used when no environment overrides are set.
func Default() Config {
	return Config{
		ListenAddr:       ":8080",
		DataFile:         "data/records.json",
		AuditFile:        "data/events.jsonl",
		LoginURL:         "https://example-auctions.test/login",
		ListingBaseURL:   "https://example-auctions.test/listing",
		UsernameSelector: "#username",
		PasswordSelector: "#password",
		SubmitSelector:   "#loginButton",
		PlaceBidSelector: "#placeBidButton",
		ConfirmSelector:  "#confirmBidButton",
		BidFieldSuffix:   "_bidInput",
		Headless:         true,
		NavigateTimeout:  60 * time.Second,
		ElementTimeout:   20 * time.Second,
		SettleDelay:      3 * time.Second,
	}
}

// Load reads a .env file when present, then applies environment overrides on
// top of the defaults. A missing .env file is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: load .env: %w", err)
		}
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from process environment variables, falling back to
// defaults for anything unset.
func FromEnv() Config {
	cfg := Default()

	if raw := strings.TrimSpace(os.Getenv("PORT")); raw != "" {
		cfg.ListenAddr = ":" + raw
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_LISTEN_ADDR")); raw != "" {
		cfg.ListenAddr = raw
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_DATA_FILE")); raw != "" {
		cfg.DataFile = raw
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_AUDIT_FILE")); raw != "" {
		cfg.AuditFile = raw
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_LOGIN_URL")); raw != "" {
		cfg.LoginURL = raw
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_LISTING_BASE_URL")); raw != "" {
		cfg.ListingBaseURL = raw
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_USERNAME_SELECTOR")); raw != "" {
		cfg.UsernameSelector = raw
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_PASSWORD_SELECTOR")); raw != "" {
		cfg.PasswordSelector = raw
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_SUBMIT_SELECTOR")); raw != "" {
		cfg.SubmitSelector = raw
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_PLACE_BID_SELECTOR")); raw != "" {
		cfg.PlaceBidSelector = raw
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_CONFIRM_SELECTOR")); raw != "" {
		cfg.ConfirmSelector = raw
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_BID_FIELD_SUFFIX")); raw != "" {
		cfg.BidFieldSuffix = raw
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_HEADLESS")); raw != "" {
		cfg.Headless = raw != "0" && strings.ToLower(raw) != "false"
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_BROWSER_BIN")); raw != "" {
		cfg.BrowserBin = raw
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_NAVIGATE_TIMEOUT_MS")); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			cfg.NavigateTimeout = time.Duration(ms) * time.Millisecond
		}
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_ELEMENT_TIMEOUT_MS")); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			cfg.ElementTimeout = time.Duration(ms) * time.Millisecond
		}
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPER_SETTLE_DELAY_MS")); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms >= 0 {
			cfg.SettleDelay = time.Duration(ms) * time.Millisecond
		}
	}

	return cfg.normalize()
}

func (c Config) normalize() Config {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.NavigateTimeout <= 0 {
		c.NavigateTimeout = 60 * time.Second
	}
	if c.ElementTimeout <= 0 {
		c.ElementTimeout = 20 * time.Second
	}
	if c.SettleDelay < 0 {
		c.SettleDelay = 3 * time.Second
	}
	return c
}
