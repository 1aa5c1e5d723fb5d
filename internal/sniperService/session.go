package sniper

import (
	"sync"
	"time"

	"bid-sniper/internal/browser"
)

// Session is one account's live automation handle: a single browser tab
// reused for every bid that account places. Sessions are owned by the
// Registry and only borrowed by the login controller and executor; a failed
// bid leaves the session open for the next attempt.
type Session struct {
	Username      string
	Page          browser.Page
	Authenticated bool
	CreatedAt     time.Time

	// mu serializes interactive use of the tab. Login and each bid attempt
	// hold it end to end, so timers firing close together queue up instead
	// of interleaving keystrokes.
	mu sync.Mutex
}
