package router

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/dmitrijs2005/stockdesk/internal/client/session"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
)

// maxRedirects bounds the guard redirect chain of a single navigation.
const maxRedirects = 8

var ErrRedirectLoop = errors.New("too many redirects")

// Location is a committed navigation target.
type Location struct {
	Path  string
	Query url.Values
}

func (l Location) String() string {
	if len(l.Query) == 0 {
		return l.Path
	}
	return l.Path + "?" + l.Query.Encode()
}

// Param returns the first value of the query parameter key.
func (l Location) Param(key string) string {
	return l.Query.Get(key)
}

// ParseLocation splits target into a cleaned path and its query.
func ParseLocation(target string) (Location, error) {
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		return Location{}, fmt.Errorf("parse %q: %w", target, err)
	}

	p := "/" + strings.Trim(u.Path, "/")
	return Location{Path: p, Query: u.Query()}, nil
}

type Router struct {
	session Session
	log     logging.Logger
	routes  map[string]Route

	mu        sync.Mutex
	current   Location
	listeners map[int]func(Location)
	nextID    int
}

func New(s Session, log logging.Logger, routes ...Route) *Router {
	if len(routes) == 0 {
		routes = DefaultRoutes()
	}
	r := &Router{
		session:   s,
		log:       log.With("component", "router"),
		routes:    make(map[string]Route, len(routes)),
		listeners: make(map[int]func(Location)),
	}
	for _, rt := range routes {
		r.routes[rt.Path] = rt
	}
	return r
}

// Navigate resolves target through the route table and guards and commits
// the final location. Unknown paths and failed guards redirect; the chain is
// bounded by maxRedirects.
func (r *Router) Navigate(ctx context.Context, target string) (Location, error) {
	loc, err := ParseLocation(target)
	if err != nil {
		return Location{}, err
	}

	for hop := 0; hop <= maxRedirects; hop++ {
		route, ok := r.routes[loc.Path]
		if !ok {
			r.log.Debug(ctx, "unknown route", "path", loc.Path)
			loc = Location{Path: PathLogin}
			continue
		}

		// Guards may trigger session events that navigate re-entrantly, so
		// they run without r.mu held.
		if route.Guard != nil {
			d := route.Guard(ctx, r.session)
			if !d.Allow {
				r.log.Debug(ctx, "navigation redirected", "from", loc.Path, "to", d.Redirect)
				if loc, err = ParseLocation(d.Redirect); err != nil {
					return Location{}, err
				}
				continue
			}
		}

		r.commit(loc)
		return loc, nil
	}

	return Location{}, fmt.Errorf("navigate %s: %w", target, ErrRedirectLoop)
}

func (r *Router) commit(loc Location) {
	r.mu.Lock()
	r.current = loc
	fns := make([]func(Location), 0, len(r.listeners))
	for _, fn := range r.listeners {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(loc)
	}
}

func (r *Router) Current() Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Route returns the route registered for path.
func (r *Router) Route(path string) (Route, bool) {
	rt, ok := r.routes[path]
	return rt, ok
}

// OnNavigate registers fn for every committed navigation.
func (r *Router) OnNavigate(fn func(Location)) func() {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.listeners, id)
		r.mu.Unlock()
	}
}

// Subscriber is implemented by session.Store.
type Subscriber interface {
	Subscribe(fn func(session.Event)) func()
}

// FollowSession sends the user to the login page whenever the session ends.
func (r *Router) FollowSession(s Subscriber) func() {
	return s.Subscribe(func(ev session.Event) {
		switch ev.Type {
		case session.EventLoggedOut, session.EventExpired:
			ctx := context.Background()
			if _, err := r.Navigate(ctx, PathLogin); err != nil {
				r.log.Error(ctx, "redirect after sign-out failed", "error", err)
			}
		}
	})
}
