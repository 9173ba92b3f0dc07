package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/stockdesk/internal/client/config"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/router"
	"github.com/dmitrijs2005/stockdesk/internal/client/services"
	"github.com/dmitrijs2005/stockdesk/internal/client/session"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
)

// getSimpleText and getPassword point at the interactive prompts and are
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Lister fetches one page of a listing into out. services.ListingService
// implements it.
type Lister interface {
	Fetch(ctx context.Context, resource models.Resource, q models.ListQuery, out any) error
}

// Deps are the collaborators of App, built by the entry point.
type Deps struct {
	Config    *config.Config
	Log       logging.Logger
	Session   *session.Store
	Router    *router.Router
	Auth      services.AuthService
	Inventory services.InventoryService
	Listings  Lister
	Settings  services.SettingsService
}

type App struct {
	config    *config.Config
	log       logging.Logger
	session   *session.Store
	router    *router.Router
	auth      services.AuthService
	inventory services.InventoryService
	listings  Lister
	settings  services.SettingsService

	reader *bufio.Reader
	out    io.Writer

	queries map[string]models.ListQuery
	pages   map[string]models.Pagination
}

func NewApp(d Deps) *App {
	return &App{
		config:    d.Config,
		log:       d.Log,
		session:   d.Session,
		router:    d.Router,
		auth:      d.Auth,
		inventory: d.Inventory,
		listings:  d.Listings,
		settings:  d.Settings,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		queries:   make(map[string]models.ListQuery),
		pages:     make(map[string]models.Pagination),
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status is shown in the prompt: the user's name and the current page.
func (a *App) status() string {
	loc := a.router.Current()
	if !a.isLoggedIn() {
		return loc.Path
	}
	return fmt.Sprintf("%s %s", a.session.DisplayName(), loc.Path)
}

// Run restores the start page, starts the expiry watcher and blocks in the
// REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	printlnFn("stockdesk (type 'help' for commands)")

	start := router.PathDashboard
	if !a.isLoggedIn() {
		start = router.PathLogin
	}
	if _, err := a.router.Navigate(ctx, start); err != nil {
		a.log.Error(ctx, "initial navigation failed", "error", err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartExpiryWatcher(watchCtx, a.config.ExpiryCheckInterval)

	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
}

// StartExpiryWatcher checks the session every interval. It warns once when
// the token is about to expire and reports the forced sign-out when it has.
func (a *App) StartExpiryWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	warned := false
	for {
		select {
		case <-ticker.C:
			warned = a.checkExpiry(ctx, warned)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkExpiry(ctx context.Context, warned bool) bool {
	if !a.session.IsAuthenticated() {
		return false
	}
	if !a.session.IsTokenValid(ctx) {
		printlnFn("Your session has expired. Please sign in again.")
		return false
	}
	if !a.session.IsTokenExpiringSoon() {
		return false
	}
	if !warned {
		left := a.session.TimeUntilExpiration().Round(time.Second)
		printlnFn(fmt.Sprintf("Your session expires in %s.", left))
		a.log.Warn(ctx, "session expiring soon", "remaining", left.String())
	}
	return true
}

// open navigates to target and reports a redirect to the user. It returns
// the committed location.
func (a *App) open(ctx context.Context, target string) (router.Location, error) {
	loc, err := a.router.Navigate(ctx, target)
	if err != nil {
		return loc, err
	}
	want, _ := router.ParseLocation(target)
	if loc.Path != want.Path {
		if rt, ok := a.router.Route(loc.Path); ok {
			fmt.Fprintf(a.out, "Redirected to %s (%s).\n", rt.Title, rt.Path)
		}
	}
	return loc, nil
}

// title prints the heading of the page at path.
func (a *App) title(path string) {
	if rt, ok := a.router.Route(path); ok {
		fmt.Fprintf(a.out, "== %s ==\n", rt.Title)
	}
}

func (a *App) fail(err error) error {
	fmt.Fprintln(a.out, describeError(err))
	return err
}
