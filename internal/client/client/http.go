package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// HTTPClient is the request gateway: every backend call goes through Request.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient returns a gateway for baseURL. A nil httpClient means a
// plain &http.Client{} (no timeout; the caller's context bounds each call).
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// URL joins the configured base URL and route with exactly one slash.
func (c *HTTPClient) URL(route string) string {
	return c.baseURL + "/" + strings.TrimLeft(route, "/")
}

// Request issues a single HTTP call and decodes the JSON response into out.
//
// token is sent as a bearer token when non-empty. body may be nil. For GET
// requests a JSON body is sent as query parameters instead. Any non-2xx
// status yields a *StatusError. There are no retries.
func (c *HTTPClient) Request(ctx context.Context, method, route, token string, body Body, out any) error {
	req, err := c.newRequest(ctx, method, route, token, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%s %s: %w: %w", method, route, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s %s response: %w", method, route, err)
	}
	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, route, token string, body Body) (*http.Request, error) {
	target := c.URL(route)

	var (
		reader      io.Reader
		contentType string
	)

	if body != nil {
		if method == http.MethodGet {
			jb, ok := body.(jsonBody)
			if !ok {
				return nil, fmt.Errorf("%s %s: only JSON bodies can be sent with GET", method, route)
			}
			values, err := jb.query()
			if err != nil {
				return nil, err
			}
			if len(values) > 0 {
				target += "?" + values.Encode()
			}
		} else {
			var err error
			reader, contentType, err = body.encode()
			if err != nil {
				return nil, err
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(req)
	}
	return req, nil
}
