// Package services contains the application services of the stockdesk
// client. They validate input, call the API through client.Client and keep
// the session store in step with the answers.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/stockdesk/internal/client/client"
)

// SessionStore is the part of session.Store the services depend on.
type SessionStore interface {
	SetAuthenticatedUser(ctx context.Context, token string) error
	Logout(ctx context.Context)
	IsTokenValid(ctx context.Context) bool
	UserID() (int64, bool)
}

// Validator checks a request before it is sent.
type Validator interface {
	Validate(s any) error
}

// endOnUnauthorized signs the user out when an authenticated call is
// rejected with 401, then returns err unchanged.
func endOnUnauthorized(ctx context.Context, s SessionStore, err error) error {
	if err != nil && errors.Is(err, client.ErrUnauthorized) {
		s.Logout(ctx)
	}
	return err
}
