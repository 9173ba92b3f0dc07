// Package models defines the request and response shapes exchanged with the
// inventory API, plus locally persisted settings.
package models
