// Package api is a typed client for the study-assistant REST API. All
// endpoints speak JSON over HTTP; the upstream tracks the signed-in user with
// an opaque session cookie that this client captures and threads on every
// call.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Auth carries the upstream session cookie for one signed-in user. The zero
// value is an anonymous caller. Calls that receive a Set-Cookie update the
// cookie in place, so the web layer can persist it back into its own session.
type Auth struct {
	Cookie string
}

func (c *Client) do(ctx context.Context, method, path string, auth *Auth, query url.Values, body, out interface{}) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, &payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != nil && auth.Cookie != "" {
		req.Header.Set("Cookie", auth.Cookie)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if auth != nil {
		auth.Cookie = mergeCookies(auth.Cookie, resp.Cookies())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Ping reports whether the upstream answers at all. Any HTTP status counts
// as an answer, even an error one; only transport failures are returned.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.CheckAuth(ctx, nil)
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return nil
	}
	return err
}

// mergeCookies folds Set-Cookie headers into an existing Cookie header value,
// the way a browser jar would for a single origin.
func mergeCookies(current string, updates []*http.Cookie) string {
	if len(updates) == 0 {
		return current
	}
	values := map[string]string{}
	for _, pair := range strings.Split(current, "; ") {
		if name, value, ok := strings.Cut(pair, "="); ok {
			values[name] = value
		}
	}
	for _, cookie := range updates {
		if cookie.MaxAge < 0 {
			delete(values, cookie.Name)
			continue
		}
		values[cookie.Name] = cookie.Value
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+values[name])
	}
	return strings.Join(pairs, "; ")
}
