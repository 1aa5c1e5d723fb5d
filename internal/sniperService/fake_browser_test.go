package sniper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"bid-sniper/internal/browser"
	model "bid-sniper/internal/models"
)

// fakeDriver hands out fakePages and counts launches.
type fakeDriver struct {
	mu        sync.Mutex
	launchErr error
	pages     []*fakePage
}

func (d *fakeDriver) NewPage(ctx context.Context) (browser.Page, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.launchErr != nil {
		return nil, d.launchErr
	}
	p := &fakePage{}
	d.pages = append(d.pages, p)
	return p, nil
}

func (d *fakeDriver) launched() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pages)
}

func (d *fakeDriver) page(i int) *fakePage {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pages[i]
}

// fakePage records every interaction in call order. Calls containing failOn
// error out; all calls error once the page is closed.
type fakePage struct {
	mu     sync.Mutex
	calls  []string
	failOn string
	closed bool
}

func (p *fakePage) record(call string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call)
	if p.closed {
		return errors.New("page closed")
	}
	if p.failOn != "" && strings.Contains(call, p.failOn) {
		return fmt.Errorf("forced failure at %q", call)
	}
	return nil
}

func (p *fakePage) Navigate(ctx context.Context, url string) error {
	return p.record("navigate " + url)
}

func (p *fakePage) WaitForElement(ctx context.Context, selector string) error {
	return p.record("wait " + selector)
}

func (p *fakePage) TypeInto(ctx context.Context, selector, text string) error {
	return p.record("type " + selector + " " + text)
}

func (p *fakePage) Click(ctx context.Context, selector string) error {
	return p.record("click " + selector)
}

func (p *fakePage) ClickAndNavigate(ctx context.Context, selector string) error {
	return p.record("submit " + selector)
}

func (p *fakePage) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func (p *fakePage) setFailOn(substr string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failOn = substr
}

func (p *fakePage) snapshot() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func (p *fakePage) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

func (p *fakePage) countMatching(substr string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, call := range p.calls {
		if strings.Contains(call, substr) {
			n++
		}
	}
	return n
}

// captureSink collects emitted events for assertions.
type captureSink struct {
	mu     sync.Mutex
	events []model.SniperEvent
}

func (s *captureSink) Emit(ev model.SniperEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *captureSink) byName(event string) []model.SniperEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.SniperEvent
	for _, ev := range s.events {
		if ev.Event == event {
			out = append(out, ev)
		}
	}
	return out
}
