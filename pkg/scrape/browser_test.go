package scrape

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"pricetracker/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

// fakeChrome stands in for a launched browser process.
type fakeChrome struct {
	pageErr error
	closed  atomic.Int64
}

func (c *fakeChrome) page() (NavigablePage, error) {
	if c.pageErr != nil {
		return nil, c.pageErr
	}

	return &fakeNavigablePage{}, nil
}

func (c *fakeChrome) close() error {
	c.closed.Add(1)

	return nil
}

type fakeNavigablePage struct {
	fixturePage

	status int
	navErr error
}

func (p *fakeNavigablePage) Navigate(_ context.Context, _ string) (int, error) {
	if p.navErr != nil {
		return 0, p.navErr
	}
	if p.status == 0 {
		return 200, nil
	}

	return p.status, nil
}

func newTestSession(launches *atomic.Int64, browser *fakeChrome, launchErr error) *Session {
	s := NewSession(SessionOptions{})
	s.launch = func(SessionOptions) (chrome, error) {
		launches.Add(1)
		if launchErr != nil {
			return nil, launchErr
		}

		return browser, nil
	}

	return s
}

func TestEnsureOpenLaunchesOnce(t *testing.T) {
	var launches atomic.Int64
	s := newTestSession(&launches, &fakeChrome{}, nil)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.EnsureOpen(context.Background()); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := launches.Load(); got != 1 {
		t.Fatalf("expected exactly one launch, got %d", got)
	}
	if s.State() != StateOpen {
		t.Fatalf("expected open state, got %s", s.State())
	}
}

func TestEnsureOpenLaunchFailure(t *testing.T) {
	var launches atomic.Int64
	s := newTestSession(&launches, nil, errors.New("no chromium"))

	err := s.EnsureOpen(context.Background())
	if err == nil || !errors.Is(err, ErrBrowserUnavailable) {
		t.Fatalf("expected ErrBrowserUnavailable, got %v", err)
	}
	if s.State() != StateClosed {
		t.Fatalf("expected closed state after failed launch, got %s", s.State())
	}

	// a later attempt retries the launch
	if err := s.EnsureOpen(context.Background()); err == nil {
		t.Fatal("expected second launch attempt to fail as well")
	}
	if got := launches.Load(); got != 2 {
		t.Fatalf("expected two launch attempts, got %d", got)
	}
}

func TestNewPageRequiresOpen(t *testing.T) {
	var launches atomic.Int64
	s := newTestSession(&launches, &fakeChrome{}, nil)

	if _, err := s.NewPage(); !errors.Is(err, ErrBrowserUnavailable) {
		t.Fatalf("expected ErrBrowserUnavailable while closed, got %v", err)
	}
}

func TestPageCountAndIdleShutdown(t *testing.T) {
	var launches atomic.Int64
	chrome := &fakeChrome{}
	s := newTestSession(&launches, chrome, nil)
	ctx := context.Background()

	if err := s.EnsureOpen(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p1, err := s.NewPage()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p2, err := s.NewPage()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.OpenPages(); got != 2 {
		t.Fatalf("expected 2 open pages, got %d", got)
	}

	// pages still open: the sweep must not tear down the session
	s.CloseIfIdle(ctx)
	if s.State() != StateOpen {
		t.Fatal("expected sweep to be a no-op while pages are open")
	}

	_ = p1.Close()
	_ = p1.Close() // double close decrements only once
	if got := s.OpenPages(); got != 1 {
		t.Fatalf("expected 1 open page after close, got %d", got)
	}

	_ = p2.Close()
	s.CloseIfIdle(ctx)
	if s.State() != StateClosed {
		t.Fatalf("expected closed state after idle sweep, got %s", s.State())
	}
	if got := chrome.closed.Load(); got != 1 {
		t.Fatalf("expected browser to be closed once, got %d", got)
	}

	// sweep on a closed session is a no-op
	s.CloseIfIdle(ctx)
	if got := chrome.closed.Load(); got != 1 {
		t.Fatalf("sweep on closed session must not close again, got %d", got)
	}
}

func TestReopenAfterIdleShutdown(t *testing.T) {
	var launches atomic.Int64
	s := newTestSession(&launches, &fakeChrome{}, nil)
	ctx := context.Background()

	if err := s.EnsureOpen(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.CloseIfIdle(ctx)
	if err := s.EnsureOpen(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := launches.Load(); got != 2 {
		t.Fatalf("expected relaunch after idle shutdown, got %d launches", got)
	}
}
