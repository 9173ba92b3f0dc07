// Package router maps navigation targets to pages and gates them with
// session guards.
package router

import "context"

// Session is the part of the session store the guards read.
type Session interface {
	IsAuthenticated() bool
	IsTokenValid(ctx context.Context) bool
}

// Decision is the outcome of a guard: either Allow or a Redirect target.
type Decision struct {
	Allow    bool
	Redirect string
}

func allow() Decision { return Decision{Allow: true} }

func redirect(to string) Decision { return Decision{Redirect: to} }

type Guard func(ctx context.Context, s Session) Decision

// AuthGuard admits signed-in users holding a token that is still valid at
// navigation time. Everyone else is sent to the login page.
func AuthGuard(ctx context.Context, s Session) Decision {
	if s.IsAuthenticated() && s.IsTokenValid(ctx) {
		return allow()
	}
	return redirect(PathLogin)
}

// GuestGuard admits only signed-out users; signed-in users go to the
// dashboard.
func GuestGuard(_ context.Context, s Session) Decision {
	if !s.IsAuthenticated() {
		return allow()
	}
	return redirect(PathDashboard)
}
