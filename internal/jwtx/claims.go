package jwtx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Subject is the numeric user id carried in the "sub" claim. The API emits
// it as a JSON number but a numeric string is accepted too.
type Subject int64

func (s Subject) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(s), 10)), nil
}

func (s *Subject) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = 0
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		b = []byte(str)
	}

	if v, err := strconv.ParseInt(string(b), 10, 64); err == nil {
		*s = Subject(v)
		return nil
	}

	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil || f != math.Trunc(f) {
		return fmt.Errorf("invalid sub claim %q", string(b))
	}
	*s = Subject(int64(f))
	return nil
}

// Claims is the payload of the session token.
type Claims struct {
	Subject   Subject          `json:"sub,omitempty"`
	Email     string           `json:"email,omitempty"`
	Name      string           `json:"name,omitempty"`
	Role      string           `json:"role,omitempty"`
	IssuedAt  *jwt.NumericDate `json:"iat,omitempty"`
	ExpiresAt *jwt.NumericDate `json:"exp,omitempty"`
}

var _ jwt.Claims = (*Claims)(nil)

func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) { return c.ExpiresAt, nil }
func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error)       { return c.IssuedAt, nil }
func (c *Claims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c *Claims) GetIssuer() (string, error)                   { return "", nil }
func (c *Claims) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }

func (c *Claims) GetSubject() (string, error) {
	if c.Subject == 0 {
		return "", nil
	}
	return strconv.FormatInt(int64(c.Subject), 10), nil
}
