package fone

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"fonebridge/config"
	"fonebridge/pkg/apperror"
	"fonebridge/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(config.FoneConfig{
		NodeURL: srv.URL + "///", // trailing slashes must be trimmed
		APIKey:  "test-api-key",
	}, srv.Client(), logger.NewWithWriter("error", io.Discard))
	return c, srv
}

func TestCall_Success(t *testing.T) {
	var gotPath, gotKey, gotAccept, gotContentType string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"address":"FoNE1abc","balance":12.5}`))
	})

	result, err := c.Call(context.Background(), http.MethodGet, "/wallet/FoNE1abc/balance", nil)
	require.NoError(t, err)

	assert.Equal(t, "/wallet/FoNE1abc/balance", gotPath)
	assert.Equal(t, "test-api-key", gotKey)
	assert.Equal(t, "application/json", gotAccept)
	assert.Empty(t, gotContentType, "no Content-Type without a body")

	obj, ok := result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "FoNE1abc", obj["address"])
	assert.Equal(t, 12.5, obj["balance"])
}

func TestCall_SerializesBody(t *testing.T) {
	var gotBody map[string]interface{}
	var gotContentType string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"txid":"abc123"}`))
	})

	_, err := c.Call(context.Background(), http.MethodPost, "/transaction/send", map[string]interface{}{
		"recipient": "FoNE1xyz",
		"amount":    3.25,
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "FoNE1xyz", gotBody["recipient"])
	assert.Equal(t, 3.25, gotBody["amount"])
}

func TestCall_ArrayResponse(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"txid":"a"},{"txid":"b"}]`))
	})

	result, err := c.Call(context.Background(), http.MethodGet, "/wallet/x/transactions", nil)
	require.NoError(t, err)

	list, ok := result.([]interface{})
	require.True(t, ok)
	assert.Len(t, list, 2)
}

func TestCall_NonJSONBodyWrappedAsRaw(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("node is syncing"))
	})

	result, err := c.Call(context.Background(), http.MethodGet, "/status", nil)
	require.NoError(t, err)

	obj, ok := result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "node is syncing", obj["raw"])
}

func TestCall_EmptyBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	result, err := c.Call(context.Background(), http.MethodPost, "/wallet/create", nil)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestCall_RemoteErrorField(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"insufficient funds"}`))
	})

	_, err := c.Call(context.Background(), http.MethodPost, "/transaction/send", map[string]string{"x": "y"})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "FONE_002", appErr.Code)
	assert.Equal(t, "insufficient funds", appErr.Message)
}

func TestCall_StatusPhraseFallback(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Call(context.Background(), http.MethodPost, "/wallet/create", nil)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Internal Server Error", appErr.Message)
}

func TestCall_UnknownStatusCode(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(599)
	})

	_, err := c.Call(context.Background(), http.MethodGet, "/x", nil)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "HTTP 599", appErr.Message)
}

func TestCall_NeverLeaksCredentials(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Call(context.Background(), http.MethodPost, "/wallet/create", nil)
	require.Error(t, err)

	host := mustHost(t, srv.URL)
	assert.NotContains(t, err.Error(), host)
	assert.NotContains(t, err.Error(), "test-api-key")
}

func TestCall_TransportErrorSanitized(t *testing.T) {
	c := NewClient(config.FoneConfig{
		NodeURL: "http://127.0.0.1:1", // nothing listens here
		APIKey:  "test-api-key",
	}, &http.Client{Timeout: time.Second}, logger.NewWithWriter("error", io.Discard))

	_, err := c.Call(context.Background(), http.MethodGet, "/x", nil)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "FONE_002", appErr.Code)
	assert.NotContains(t, err.Error(), "127.0.0.1:1")
	assert.NotContains(t, err.Error(), "test-api-key")
}

func TestCall_NotConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.FoneConfig
	}{
		{"no url", config.FoneConfig{APIKey: "k"}},
		{"no key", config.FoneConfig{NodeURL: "https://node"}},
		{"neither", config.FoneConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			c := NewClient(tt.cfg, roundTripFunc(func(req *http.Request) (*http.Response, error) {
				called = true
				return nil, errors.New("should not be reached")
			}), logger.NewWithWriter("error", io.Discard))

			_, err := c.Call(context.Background(), http.MethodPost, "/wallet/create", nil)
			require.Error(t, err)

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "FONE_001", appErr.Code)
			assert.False(t, called, "no network I/O before the configuration check")
		})
	}
}

// roundTripFunc adapts a function to the HTTPClient interface.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func mustHost(t *testing.T, raw string) string {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Host
}
