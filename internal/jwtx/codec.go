package jwtx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Undecodable is returned by TimeUntilExpiration when the token cannot be
// decoded or carries no expiry. It is distinct from 0, which means expired.
const Undecodable time.Duration = -1

var (
	ErrSegmentCount = errors.New("token must have 3 segments")
	ErrNotObject    = errors.New("payload is not a JSON object")
)

// Codec decodes tokens and evaluates their expiry against its clock.
type Codec struct {
	now    func() time.Time
	parser *jwt.Parser
}

type Option func(*Codec)

// WithClock replaces the wall clock used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		now:    time.Now,
		parser: jwt.NewParser(jwt.WithPaddingAllowed()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DecodeErr returns the payload of token or the reason it could not be read.
func (c *Codec) DecodeErr(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %w", jwt.ErrTokenMalformed, ErrSegmentCount)
	}

	raw, err := c.parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: payload encoding: %w", jwt.ErrTokenMalformed, err)
	}

	if t := bytes.TrimSpace(raw); len(t) == 0 || t[0] != '{' {
		return nil, fmt.Errorf("%w: %w", jwt.ErrTokenMalformed, ErrNotObject)
	}

	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, fmt.Errorf("%w: payload: %w", jwt.ErrTokenMalformed, err)
	}

	return &claims, nil
}

// Decode returns the payload of token, or false when it cannot be decoded.
func (c *Codec) Decode(token string) (*Claims, bool) {
	claims, err := c.DecodeErr(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func (c *Codec) IsExpired(token string) bool {
	claims, ok := c.Decode(token)
	if !ok {
		return true
	}
	return c.IsClaimsExpired(claims)
}

// IsClaimsExpired reports whether exp is missing or not strictly in the future.
func (c *Codec) IsClaimsExpired(claims *Claims) bool {
	if claims == nil || claims.ExpiresAt == nil || claims.ExpiresAt.Unix() == 0 {
		return true
	}
	return claims.ExpiresAt.UnixMilli() <= c.now().UnixMilli()
}

func (c *Codec) IsValid(token string) bool {
	if token == "" {
		return false
	}
	return !c.IsExpired(token)
}

// TimeUntilExpiration returns the remaining validity, 0 once expired, or
// Undecodable.
func (c *Codec) TimeUntilExpiration(token string) time.Duration {
	claims, ok := c.Decode(token)
	if !ok || claims.ExpiresAt == nil || claims.ExpiresAt.Unix() == 0 {
		return Undecodable
	}

	left := claims.ExpiresAt.UnixMilli() - c.now().UnixMilli()
	if left <= 0 {
		return 0
	}
	return time.Duration(left) * time.Millisecond
}

func (c *Codec) UserID(token string) (int64, bool) {
	claims, ok := c.Decode(token)
	if !ok || claims.Subject == 0 {
		return 0, false
	}
	return int64(claims.Subject), true
}

func (c *Codec) UserName(token string) (string, bool) {
	return c.stringClaim(token, func(cl *Claims) string { return cl.Name })
}

func (c *Codec) UserEmail(token string) (string, bool) {
	return c.stringClaim(token, func(cl *Claims) string { return cl.Email })
}

func (c *Codec) UserRole(token string) (string, bool) {
	return c.stringClaim(token, func(cl *Claims) string { return cl.Role })
}

func (c *Codec) stringClaim(token string, get func(*Claims) string) (string, bool) {
	claims, ok := c.Decode(token)
	if !ok {
		return "", false
	}
	v := get(claims)
	return v, v != ""
}

var defaultCodec = NewCodec()

func Decode(token string) (*Claims, bool)            { return defaultCodec.Decode(token) }
func IsExpired(token string) bool                    { return defaultCodec.IsExpired(token) }
func IsValid(token string) bool                      { return defaultCodec.IsValid(token) }
func TimeUntilExpiration(token string) time.Duration { return defaultCodec.TimeUntilExpiration(token) }
