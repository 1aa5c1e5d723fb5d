package sniper

import (
	"context"
	"fmt"

	model "bid-sniper/internal/models"
	"bid-sniper/internal/snipererrors"
)

// LoginOptions locate the venue's login surface.
type LoginOptions struct {
	URL              string
	UsernameSelector string
	PasswordSelector string
	SubmitSelector   string
}

// LoginController performs the venue sign-in handshake on a session's tab.
type LoginController struct {
	opts LoginOptions
}

// NewLoginController creates a new LoginController instance
func NewLoginController(opts LoginOptions) *LoginController {
	return &LoginController{opts: opts}
}

// EnsureAuthenticated signs the session in once. An already-authenticated
// session returns immediately with zero driver calls; many scheduled bids
// per account rely on that. On failure the session stays unauthenticated and
// the error is returned for the caller to log; the caller proceeds with
// bidding regardless.
func (l *LoginController) EnsureAuthenticated(ctx context.Context, session *Session, account model.Account) error {
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.Authenticated {
		return nil
	}

	if err := l.signIn(ctx, session, account); err != nil {
		return fmt.Errorf("login %s: %v: %w", account.Username, err, snipererrors.ErrLoginFailed)
	}

	session.Authenticated = true
	return nil
}

func (l *LoginController) signIn(ctx context.Context, session *Session, account model.Account) error {
	page := session.Page

	if err := page.Navigate(ctx, l.opts.URL); err != nil {
		return err
	}
	if err := page.WaitForElement(ctx, l.opts.UsernameSelector); err != nil {
		return err
	}
	if err := page.TypeInto(ctx, l.opts.UsernameSelector, account.Username); err != nil {
		return err
	}
	if err := page.WaitForElement(ctx, l.opts.PasswordSelector); err != nil {
		return err
	}
	if err := page.TypeInto(ctx, l.opts.PasswordSelector, account.Password); err != nil {
		return err
	}
	return page.ClickAndNavigate(ctx, l.opts.SubmitSelector)
}
