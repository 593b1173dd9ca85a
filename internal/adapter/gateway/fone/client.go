// Package fone implements the outbound client for the remote Fone
// wallet node. It is the single point of contact with the node: it
// attaches the service credentials, normalizes responses into opaque
// JSON values, and derives sanitized error messages that never expose
// the node URL or the API key.
package fone

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fonebridge/config"
	"fonebridge/pkg/apperror"

	"github.com/rs/zerolog"
)

// maxResponseBytes bounds how much of a remote response is read.
const maxResponseBytes = 4 << 20 // 4 MiB

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues HTTP calls to the configured Fone node. It holds no
// state across calls beyond the configuration read once at startup.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a Fone node client. Trailing slashes on the
// configured base URL are trimmed once, here.
func NewClient(cfg config.FoneConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.NodeURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		log:        log,
	}
}

// Configured reports whether both the base URL and the API key are set.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

// Call issues a request against the node and returns the decoded JSON
// response. A non-JSON body is wrapped as {"raw": <text>} so the
// caller always receives a structured value. Fails before any network
// I/O when the node is not configured.
func (c *Client) Call(ctx context.Context, method, path string, body interface{}) (interface{}, error) {
	if !c.Configured() {
		return nil, apperror.ErrFoneNotConfigured()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("marshal request body: %w", err))
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		// The error would echo the URL back; keep it out of the message.
		return nil, apperror.ErrRemoteCall("invalid request to Fone node")
	}

	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport errors (url.Error) embed the full URL; log and
		// return only a derived message.
		msg := "Fone node unreachable"
		if errors.Is(err, context.DeadlineExceeded) {
			msg = "Fone node request timed out"
		}
		c.log.Error().Str("method", method).Str("path", path).Msg("fone call transport failure")
		return nil, apperror.ErrRemoteCall(msg)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperror.ErrRemoteCall("failed to read Fone node response")
	}

	var parsed interface{}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			parsed = map[string]interface{}{"raw": string(raw)}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := remoteErrorMessage(parsed, resp.StatusCode)
		c.log.Warn().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("fone call failed")
		return nil, apperror.ErrRemoteCall(msg)
	}

	return parsed, nil
}

// remoteErrorMessage derives the failure message in priority order:
// the remote's own error field, the HTTP status phrase, then a
// generic "HTTP <code>" string.
func remoteErrorMessage(parsed interface{}, status int) string {
	if obj, ok := parsed.(map[string]interface{}); ok {
		if msg, ok := obj["error"].(string); ok && msg != "" {
			return msg
		}
	}
	if phrase := http.StatusText(status); phrase != "" {
		return phrase
	}
	return fmt.Sprintf("HTTP %d", status)
}
