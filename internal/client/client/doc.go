// Package client contains the client-side building blocks for talking to the
// inventory API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     authentication, the dashboard, inventory and product maintenance, stock
//     movements and the paginated listings.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that tags every
//     request with an X-Request-ID, attaches the bearer token supplied by a
//     TokenProvider and turns non-2xx answers into *APIError.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Every failed call returns *APIError. It matches the sentinel errors with
// errors.Is: ErrUnavailable (no response), ErrBadRequest, ErrUnauthorized,
// ErrForbidden, ErrNotFound, ErrConflict and ErrServer (any 5xx). Calls are
// never retried.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation and timeouts.
package client
