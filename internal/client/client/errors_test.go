package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_IsSentinels(t *testing.T) {
	all := []error{ErrUnavailable, ErrBadRequest, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrConflict, ErrServer}

	tests := []struct {
		status int
		want   error
	}{
		{0, ErrUnavailable},
		{400, ErrBadRequest},
		{401, ErrUnauthorized},
		{403, ErrForbidden},
		{404, ErrNotFound},
		{409, ErrConflict},
		{500, ErrServer},
		{503, ErrServer},
		{418, nil},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &APIError{StatusCode: tt.status})
			for _, s := range all {
				assert.Equal(t, s == tt.want, errors.Is(err, s), "sentinel %v", s)
			}
		})
	}
}

func TestAPIError_Message(t *testing.T) {
	assert.Equal(t, "api status 409: El email ya está registrado",
		(&APIError{StatusCode: 409, Message: "El email ya está registrado"}).Error())
	assert.Equal(t, "api status 500", (&APIError{StatusCode: 500}).Error())
	assert.Equal(t, "server unavailable", (&APIError{}).Error())
	assert.Contains(t, (&APIError{Err: context.DeadlineExceeded}).Error(), "deadline exceeded")
	assert.Equal(t, "api status 502: read body: unexpected EOF",
		(&APIError{StatusCode: 502, Err: fmt.Errorf("read body: %w", io.ErrUnexpectedEOF)}).Error())
}

func TestAPIError_UnwrapsTransportCause(t *testing.T) {
	err := &APIError{Err: context.DeadlineExceeded}
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestStatusOfAndMessageOf(t *testing.T) {
	err := fmt.Errorf("login: %w", &APIError{StatusCode: 401, Message: "Credenciales inválidas"})

	code, ok := StatusOf(err)
	assert.True(t, ok)
	assert.Equal(t, 401, code)
	assert.Equal(t, "Credenciales inválidas", MessageOf(err))

	_, ok = StatusOf(errors.New("plain"))
	assert.False(t, ok)
	assert.Empty(t, MessageOf(errors.New("plain")))
}
