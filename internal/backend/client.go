// Package backend is the REST client for the SENTINELA backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/sentinela/gateway/internal/session"
)

var (
	ErrDecode  = errors.New("respuesta inesperada del servidor")
	ErrNoPhoto = errors.New("no photo for pin")
)

// StatusError is a non-2xx answer from the backend. Detail carries the
// "detail" field of the error body when present.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP %d: %s %s", e.StatusCode, e.Method, e.Path)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// Detail returns the backend-provided message of err, or fallback.
func Detail(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail
	}
	return fallback
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Limiter *rate.Limiter
}

// New builds a client with a request timeout and an optional requests per
// second ceiling (rps <= 0 disables limiting).
func New(baseURL string, timeout time.Duration, rps float64) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
	if rps > 0 {
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		c.Limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return c
}

type request struct {
	method string
	path   string
	query  url.Values
	token  string
	body   any
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		c.HTTP = &http.Client{Timeout: 30 * time.Second}
	}
	return c.HTTP
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) send(ctx context.Context, r request) (*http.Response, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, c.endpoint(r.path, r.query), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	return c.httpClient().Do(req)
}

// do issues r and returns the raw body of a 2xx answer.
func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	resp, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Method:     r.method,
			Path:       r.path,
			StatusCode: resp.StatusCode,
			Detail:     errorDetail(raw),
		}
	}
	return raw, nil
}

func (c *Client) decode(ctx context.Context, r request, out any) error {
	raw, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func errorDetail(raw []byte) string {
	if !gjson.ValidBytes(raw) {
		return ""
	}
	d := gjson.GetBytes(raw, "detail")
	switch {
	case !d.Exists():
		return ""
	case d.Type == gjson.String:
		return d.String()
	case d.IsArray():
		if msg := d.Get("0.msg"); msg.Exists() {
			return msg.String()
		}
	}
	return d.Raw
}

// listOf extracts a JSON array from raw, accepting either a bare array or
// an object wrapping it under key. An object without the key is an empty
// list.
func listOf(raw []byte, key string) (gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, ErrDecode
	}
	root := gjson.ParseBytes(raw)
	switch {
	case root.IsArray():
		return root, nil
	case root.IsObject():
		return root.Get(key), nil
	}
	return gjson.Result{}, ErrDecode
}

func unmarshalList[T any](res gjson.Result) ([]T, error) {
	if !res.Exists() || res.Type == gjson.Null {
		return []T{}, nil
	}
	if !res.IsArray() {
		return nil, ErrDecode
	}
	out := []T{}
	if err := json.Unmarshal([]byte(res.Raw), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return out, nil
}

// Ping reports whether the backend answers HTTP at all. Any status counts
// as reachable.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.send(ctx, request{method: http.MethodGet, path: "/"})
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

func pinQuery(s session.Session) url.Values {
	q := url.Values{}
	q.Set("pin", s.PIN)
	return q
}
