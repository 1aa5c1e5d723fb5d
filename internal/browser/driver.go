package browser

import (
	"context"
	"time"
)

// Page is the automation surface one session tab exposes. Every method that
// talks to the remote page is time-bounded; exceeding a bound is an ordinary
// error, never a panic.
type Page interface {
	// Navigate loads url and waits for the page load to complete.
	Navigate(ctx context.Context, url string) error
	// WaitForElement blocks until the element exists and is visible.
	WaitForElement(ctx context.Context, selector string) error
	// TypeInto selects all existing text in the element and types text over it.
	TypeInto(ctx context.Context, selector, text string) error
	// Click activates the element.
	Click(ctx context.Context, selector string) error
	// ClickAndNavigate activates the element and waits for the navigation it
	// triggers to complete.
	ClickAndNavigate(ctx context.Context, selector string) error
	// Close tears down the tab and its owning browser process.
	Close() error
}

// Driver launches automation pages. One NewPage call owns one browser
// process with a single tab.
type Driver interface {
	NewPage(ctx context.Context) (Page, error)
}

// Options bound every remote interaction a launched page performs.
type Options struct {
	Headless        bool
	Bin             string
	NavigateTimeout time.Duration
	ElementTimeout  time.Duration
}

func (o Options) withDefaults() Options {
	if o.NavigateTimeout <= 0 {
		o.NavigateTimeout = 60 * time.Second
	}
	if o.ElementTimeout <= 0 {
		o.ElementTimeout = 20 * time.Second
	}
	return o
}
