package scrape

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pricetracker/pkg/logger"
	"pricetracker/pkg/serrors"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
	"go.uber.org/zap"
)

// State is the lifecycle state of the shared browser session.
type State int

const (
	// StateClosed means no browser process is running.
	StateClosed State = iota
	// StateOpening means a launch is in flight.
	StateOpening
	// StateOpen means the browser and its context are ready for pages.
	StateOpen
	// StateClosing means a teardown is in flight.
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// SessionOptions configure the shared headless browser.
type SessionOptions struct {
	// BinPath is the browser binary to launch. Empty means download and use
	// the default chromium build.
	BinPath string
	// Headless runs the browser without a visible window.
	Headless bool
	// NoSandbox disables the chromium sandbox, required in most containers.
	NoSandbox bool
	// NavigationTimeout bounds page navigation, so a hanging site can never
	// stall concurrent scrape attempts indefinitely.
	NavigationTimeout time.Duration
	// QueryTimeout bounds individual DOM selector lookups.
	QueryTimeout time.Duration
}

// chrome abstracts the launched browser process so the session state machine
// can be exercised without chromium in tests.
type chrome interface {
	page() (NavigablePage, error)
	close() error
}

// Session owns the process-wide browser singleton. It is created lazily on
// first need and torn down by the idle sweep once no pages remain open. All
// state transitions are serialized behind the mutex; acquiring a page while
// already open does not need exclusivity beyond the counter update.
type Session struct {
	opts SessionOptions

	// launch starts a browser process. Swapped out in tests.
	launch func(opts SessionOptions) (chrome, error)

	mu      sync.Mutex
	state   State
	browser chrome
	pages   int
}

// NewSession returns a session in the Closed state. No browser is launched
// until EnsureOpen is called.
func NewSession(opts SessionOptions) *Session {
	if opts.NavigationTimeout <= 0 {
		opts.NavigationTimeout = 30 * time.Second
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 5 * time.Second
	}

	return &Session{
		opts:   opts,
		launch: launchChrome,
	}
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// OpenPages reports how many borrowed pages are currently open.
func (s *Session) OpenPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pages
}

// EnsureOpen launches the browser if it is not open yet. Concurrent callers
// observing a closed session do not launch duplicate processes: the mutex is
// held across the Closed -> Open edge, so exactly one launch wins and the
// rest reuse it.
func (s *Session) EnsureOpen(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateOpen {
		return nil
	}

	s.state = StateOpening
	logger.Info(ctx, "launching browser...")

	browser, err := s.launch(s.opts)
	if err != nil {
		s.state = StateClosed

		return serrors.Wrap(ErrBrowserUnavailable, err, "could not launch browser")
	}

	s.browser = browser
	s.state = StateOpen
	logger.Info(ctx, "browser session open")

	return nil
}

// NewPage borrows a new page from the open session. The returned page's
// Close decrements the open-page count on every path, including navigation
// failures.
func (s *Session) NewPage() (NavigablePage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateOpen {
		return nil, serrors.With(ErrBrowserUnavailable, "browser session is %s", s.state)
	}

	page, err := s.browser.page()
	if err != nil {
		return nil, serrors.Wrap(ErrBrowserUnavailable, err, "could not open page")
	}

	s.pages++

	return &countedPage{NavigablePage: page, release: s.releasePage}, nil
}

func (s *Session) releasePage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pages > 0 {
		s.pages--
	}
}

// CloseIfIdle tears down the browser when the session is open and no pages
// are borrowed. It is a no-op otherwise. Intended to run on its own periodic
// cadence so idle resources are reclaimed without disrupting in-flight
// scrapes.
func (s *Session) CloseIfIdle(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateOpen || s.pages > 0 {
		return
	}

	s.state = StateClosing
	logger.Info(ctx, "closing idle browser...")

	if err := s.browser.close(); err != nil {
		logger.Error(ctx, "could not close browser", zap.Error(err))
	}

	s.browser = nil
	s.state = StateClosed
	logger.Info(ctx, "browser session closed")
}

// Close unconditionally tears down the session regardless of open pages.
// Used on process shutdown.
func (s *Session) Close(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateOpen {
		return
	}

	s.state = StateClosing
	if err := s.browser.close(); err != nil {
		logger.Error(ctx, "could not close browser", zap.Error(err))
	}
	s.browser = nil
	s.pages = 0
	s.state = StateClosed
}

// countedPage decrements the session page counter exactly once on Close.
type countedPage struct {
	NavigablePage

	once    sync.Once
	release func()
}

func (p *countedPage) Close() error {
	err := p.NavigablePage.Close()
	p.once.Do(p.release)

	return err
}

// rodChrome is the production chrome implementation backed by go-rod with a
// stealth browsing profile.
type rodChrome struct {
	browser      *rod.Browser
	context      *rod.Browser
	queryTimeout time.Duration
	navTimeout   time.Duration
}

func launchChrome(opts SessionOptions) (chrome, error) {
	bin := opts.BinPath
	if bin == "" {
		path, err := launcher.NewBrowser().Get()
		if err != nil {
			return nil, fmt.Errorf("could not download browser: %w", err)
		}
		bin = path
	}

	controlURL, err := launcher.New().
		Headless(opts.Headless).
		Bin(bin).
		NoSandbox(opts.NoSandbox).
		Launch()
	if err != nil {
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("could not connect to browser: %w", err)
	}

	// a dedicated incognito context keeps page state out of the default profile
	browserCtx, err := browser.Incognito()
	if err != nil {
		_ = browser.Close()

		return nil, fmt.Errorf("could not create browsing context: %w", err)
	}

	return &rodChrome{
		browser:      browser,
		context:      browserCtx,
		queryTimeout: opts.QueryTimeout,
		navTimeout:   opts.NavigationTimeout,
	}, nil
}

func (c *rodChrome) page() (NavigablePage, error) {
	page, err := stealth.Page(c.context)
	if err != nil {
		return nil, fmt.Errorf("could not create stealth page: %w", err)
	}

	return &rodPage{
		page:         page,
		queryTimeout: c.queryTimeout,
		navTimeout:   c.navTimeout,
	}, nil
}

func (c *rodChrome) close() error {
	if err := c.browser.Close(); err != nil {
		return fmt.Errorf("could not close browser: %w", err)
	}

	return nil
}
