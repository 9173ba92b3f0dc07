// Package netx holds small HTTP helpers for JSON request/response exchange.
package netx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const contentTypeJSON = "application/json"

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

// NewJSONRequest builds a request with body encoded as JSON. A nil body
// produces a request without payload.
func NewJSONRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", contentTypeJSON)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	return req, nil
}

// ReadBody reads at most maxBodySize bytes and closes the body.
func ReadBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}

// DecodeJSON unmarshals b into v. Empty input leaves v untouched.
func DecodeJSON(b []byte, v any) error {
	if v == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// ErrorMessage extracts the "message" field of an error body. The API sends
// either a string or a list of strings; lists are joined with "; ".
func ErrorMessage(b []byte) string {
	var body struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(b, &body); err != nil || len(body.Message) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Message, &s); err == nil {
		return s
	}

	var list []string
	if err := json.Unmarshal(body.Message, &list); err == nil {
		return strings.Join(list, "; ")
	}

	return ""
}
