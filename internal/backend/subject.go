package backend

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/sentinela/gateway/internal/models"
	"github.com/sentinela/gateway/internal/session"
)

func (c *Client) GetInmate(ctx context.Context, s session.Session) (models.Inmate, error) {
	if err := s.RequirePIN(); err != nil {
		return models.Inmate{}, err
	}
	var inmate models.Inmate
	err := c.decode(ctx, request{
		method: http.MethodGet,
		path:   "/inmates/" + url.PathEscape(s.PIN),
		token:  s.Token,
	}, &inmate)
	return inmate, err
}

// ListAlerts fetches alert events, scoped to the session's PIN when one is
// selected. Events that carry transcript_snippet instead of message are
// normalised.
func (c *Client) ListAlerts(ctx context.Context, s session.Session) ([]models.Alert, error) {
	var q url.Values
	if s.PIN != "" {
		q = pinQuery(s)
	}
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/alerts/events/", query: q, token: s.Token})
	if err != nil {
		return nil, err
	}
	list, err := listOf(raw, "alerts")
	if err != nil {
		return nil, err
	}
	alerts, err := unmarshalList[models.Alert](list)
	if err != nil {
		return nil, err
	}
	items := list.Array()
	for i := range alerts {
		if alerts[i].Message == "" && i < len(items) {
			alerts[i].Message = items[i].Get("transcript_snippet").String()
		}
	}
	return alerts, nil
}

func (c *Client) GetNetwork(ctx context.Context, s session.Session) (models.Graph, error) {
	if err := s.RequirePIN(); err != nil {
		return models.Graph{}, err
	}
	var g models.Graph
	err := c.decode(ctx, request{method: http.MethodGet, path: "/network", query: pinQuery(s), token: s.Token}, &g)
	return g, err
}

// PhotoURL is the backend location of a subject photo.
func (c *Client) PhotoURL(pin string) string {
	return c.BaseURL + "/photos/" + url.PathEscape(pin) + ".jpg"
}

// FetchPhoto downloads a subject photo. Any non-2xx answer is ErrNoPhoto.
func (c *Client) FetchPhoto(ctx context.Context, pin string) ([]byte, string, error) {
	if pin == "" {
		return nil, "", session.ErrNoPIN
	}
	resp, err := c.send(ctx, request{method: http.MethodGet, path: "/photos/" + url.PathEscape(pin) + ".jpg"})
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, "", ErrNoPhoto
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = http.DetectContentType(b)
	}
	return b, ct, nil
}
