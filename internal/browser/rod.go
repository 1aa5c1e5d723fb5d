package browser

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// RodDriver launches real Chromium processes through go-rod. Each page gets
// its own browser process so closing one account's session can never disturb
// another account's tab.
type RodDriver struct {
	opts Options
}

// NewRodDriver creates a driver with the given launch options.
func NewRodDriver(opts Options) *RodDriver {
	return &RodDriver{opts: opts.withDefaults()}
}

// NewPage launches a browser process and opens a single blank tab in it.
func (d *RodDriver) NewPage(ctx context.Context) (Page, error) {
	l := launcher.New().Headless(d.opts.Headless)
	if d.opts.Bin != "" {
		l = l.Bin(d.opts.Bin)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("browser: launch: %w", err)
	}

	b := rod.New().ControlURL(u).Context(ctx)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("browser: connect: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = b.Close()
		l.Cleanup()
		return nil, fmt.Errorf("browser: open page: %w", err)
	}

	return &rodPage{launcher: l, browser: b, page: page, opts: d.opts}, nil
}

type rodPage struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	opts     Options
}

func (p *rodPage) Navigate(ctx context.Context, url string) error {
	pg := p.page.Context(ctx).Timeout(p.opts.NavigateTimeout)
	if err := pg.Navigate(url); err != nil {
		return fmt.Errorf("browser: navigate %s: %w", url, err)
	}
	if err := pg.WaitLoad(); err != nil {
		return fmt.Errorf("browser: wait load %s: %w", url, err)
	}
	return nil
}

// element waits for the selector to match, bounded by the element timeout.
func (p *rodPage) element(ctx context.Context, selector string) (*rod.Element, error) {
	el, err := p.page.Context(ctx).Timeout(p.opts.ElementTimeout).Element(selector)
	if err != nil {
		return nil, fmt.Errorf("browser: find %q: %w", selector, err)
	}
	return el, nil
}

func (p *rodPage) WaitForElement(ctx context.Context, selector string) error {
	el, err := p.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.WaitVisible(); err != nil {
		return fmt.Errorf("browser: wait visible %q: %w", selector, err)
	}
	return nil
}

func (p *rodPage) TypeInto(ctx context.Context, selector, text string) error {
	el, err := p.element(ctx, selector)
	if err != nil {
		return err
	}
	// Select-all so typing replaces whatever the page pre-filled.
	if err := el.SelectAllText(); err != nil {
		return fmt.Errorf("browser: select text in %q: %w", selector, err)
	}
	if err := el.Input(text); err != nil {
		return fmt.Errorf("browser: type into %q: %w", selector, err)
	}
	return nil
}

func (p *rodPage) Click(ctx context.Context, selector string) error {
	el, err := p.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("browser: click %q: %w", selector, err)
	}
	return nil
}

func (p *rodPage) ClickAndNavigate(ctx context.Context, selector string) error {
	pg := p.page.Context(ctx).Timeout(p.opts.NavigateTimeout)
	el, err := pg.Element(selector)
	if err != nil {
		return fmt.Errorf("browser: find %q: %w", selector, err)
	}
	wait := pg.WaitNavigation(proto.PageLifecycleEventNameLoad)
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("browser: click %q: %w", selector, err)
	}
	wait()
	return nil
}

func (p *rodPage) Close() error {
	err := p.browser.Close()
	if p.launcher != nil {
		p.launcher.Cleanup()
	}
	if err != nil {
		return fmt.Errorf("browser: close: %w", err)
	}
	return nil
}
