package sniper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bid-sniper/internal/browser"
	"bid-sniper/utils"
)

// Registry owns the live sessions, keyed by account username. It is the only
// component that creates or destroys sessions.
type Registry struct {
	driver browser.Driver

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry launching sessions through driver.
func NewRegistry(driver browser.Driver) *Registry {
	return &Registry{
		driver:   driver,
		sessions: make(map[string]*Session),
	}
}

// Acquire returns the account's existing session unchanged regardless of its
// authentication state, else launches a new one and registers it. The
// registry lock is held across the launch, so no account can ever end up
// with two live sessions.
func (r *Registry) Acquire(ctx context.Context, username string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, ok := r.sessions[username]; ok {
		return session, nil
	}

	page, err := r.driver.NewPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("registry: open session for %s: %w", username, err)
	}

	session := &Session{
		Username:  username,
		Page:      page,
		CreatedAt: time.Now(),
	}
	r.sessions[username] = session
	return session, nil
}

// CloseAll closes every session and clears the registry. Close errors are
// logged and do not stop the sweep. Safe with zero sessions.
func (r *Registry) CloseAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	closed := 0
	for username, session := range r.sessions {
		if err := session.Page.Close(); err != nil {
			utils.Warn("registry: failed to close session", map[string]any{
				"username": username,
				"error":    err.Error(),
			})
		}
		closed++
	}
	r.sessions = make(map[string]*Session)
	return closed
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
