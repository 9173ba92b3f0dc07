package netx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONRequest(t *testing.T) {
	t.Run("with body", func(t *testing.T) {
		req, err := NewJSONRequest(context.Background(), http.MethodPost, "http://api/auth/login",
			map[string]string{"email": "a@b.c"})
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", req.Header.Get("Accept"))

		b, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"email":"a@b.c"}`, string(b))
	})

	t.Run("without body", func(t *testing.T) {
		req, err := NewJSONRequest(context.Background(), http.MethodGet, "http://api/categories", nil)
		require.NoError(t, err)
		assert.Empty(t, req.Header.Get("Content-Type"))
		assert.Nil(t, req.Body)
	})

	t.Run("unencodable body", func(t *testing.T) {
		_, err := NewJSONRequest(context.Background(), http.MethodPost, "http://api", make(chan int))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "encode request body")
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := NewJSONRequest(context.Background(), http.MethodGet, "://nope", nil)
		require.Error(t, err)
	})
}

func TestReadBodyAndDecode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":7,"name":"Tornillo"}`)
	}))
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)

	b, err := ReadBody(resp)
	require.NoError(t, err)

	var got struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, DecodeJSON(b, &got))
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "Tornillo", got.Name)
}

func TestDecodeJSON_EdgeCases(t *testing.T) {
	var v map[string]any
	require.NoError(t, DecodeJSON(nil, &v))
	require.NoError(t, DecodeJSON([]byte("  "), &v))
	assert.Nil(t, v)

	require.NoError(t, DecodeJSON([]byte(`{"a":1}`), nil))

	err := DecodeJSON([]byte("{"), &v)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "decode response body"))
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string", `{"message":"Credenciales inválidas","statusCode":401}`, "Credenciales inválidas"},
		{"list", `{"message":["email must be an email","password too short"]}`, "email must be an email; password too short"},
		{"missing", `{"error":"Bad Request"}`, ""},
		{"wrong type", `{"message":42}`, ""},
		{"not json", `<html>502</html>`, ""},
		{"empty", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage([]byte(tt.body)))
		})
	}
}
