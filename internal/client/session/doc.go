// Package session holds the client's authentication state.
//
// A Store is either Unauthenticated or Authenticated with a token and the
// profile decoded from it. The token is mirrored to a Storage so a restarted
// client resumes its session. Validity is re-checked on every IsTokenValid
// call: a token that has expired since it was installed moves the store back
// to Unauthenticated before the caller sees the answer.
//
// Every way out of Authenticated (explicit logout, lazy expiry detection, an
// already expired token handed to SetAuthenticatedUser) goes through the same
// transition, which clears storage and notifies subscribers.
package session
