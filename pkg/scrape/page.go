package scrape

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// rodPage adapts a *rod.Page to the NavigablePage interface. Selector
// lookups are bounded by the session's query timeout so a missing element
// fails fast instead of waiting for the navigation deadline.
type rodPage struct {
	page         *rod.Page
	queryTimeout time.Duration
	navTimeout   time.Duration

	closeOnce sync.Once
	closeErr  error
}

var _ NavigablePage = (*rodPage)(nil)

// Navigate loads url and waits for the document response and load event.
// It returns the HTTP status of the document response.
func (p *rodPage) Navigate(ctx context.Context, url string) (int, error) {
	page := p.page.Context(ctx).Timeout(p.navTimeout)

	var resp proto.NetworkResponseReceived
	wait := page.WaitEvent(&resp)

	if err := page.Navigate(url); err != nil {
		return 0, fmt.Errorf("could not navigate to %q: %w", url, err)
	}
	wait()

	if err := page.WaitLoad(); err != nil {
		return 0, fmt.Errorf("could not finish loading %q: %w", url, err)
	}

	return resp.Response.Status, nil
}

func (p *rodPage) element(selector string) (*rod.Element, error) {
	el, err := p.page.Timeout(p.queryTimeout).Element(selector)
	if err != nil {
		return nil, fmt.Errorf("element %q not found: %w", selector, err)
	}

	return el, nil
}

func (p *rodPage) Text(selector string) (string, error) {
	el, err := p.element(selector)
	if err != nil {
		return "", err
	}

	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("could not read text of %q: %w", selector, err)
	}

	return text, nil
}

func (p *rodPage) Attribute(selector, attribute string) (string, error) {
	el, err := p.element(selector)
	if err != nil {
		return "", err
	}

	value, err := el.Attribute(attribute)
	if err != nil {
		return "", fmt.Errorf("could not read attribute %q of %q: %w", attribute, selector, err)
	}
	if value == nil {
		return "", fmt.Errorf("element %q has no attribute %q", selector, attribute)
	}

	return *value, nil
}

func (p *rodPage) Close() error {
	p.closeOnce.Do(func() {
		p.closeErr = p.page.Close()
	})

	return p.closeErr
}
