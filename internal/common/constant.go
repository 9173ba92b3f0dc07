// Package common contains constants and sentinel errors shared by the
// client packages.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName tags every outbound request for log correlation.
	RequestIDHeaderName = "X-Request-ID"

	// AccessTokenKey is the metadata slot holding the persisted bearer token.
	AccessTokenKey = "access_token"
)
