package backend

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/sentinela/gateway/internal/models"
	"github.com/sentinela/gateway/internal/session"
)

// ListCalls fetches the calls of the session's PIN, optionally restricted to
// one contact number.
func (c *Client) ListCalls(ctx context.Context, s session.Session, contact string) ([]models.Call, error) {
	if err := s.RequirePIN(); err != nil {
		return nil, err
	}
	q := pinQuery(s)
	if contact != "" {
		q.Set("contact", contact)
	}
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/llamadas", query: q, token: s.Token})
	if err != nil {
		return nil, err
	}
	list, err := listOf(raw, "llamadas")
	if err != nil {
		return nil, err
	}
	return unmarshalList[models.Call](list)
}

// CallsPerDay fetches the daily call counts. Records may use fecha/llamadas
// or date/count.
func (c *Client) CallsPerDay(ctx context.Context, s session.Session) ([]models.DailyCount, error) {
	if err := s.RequirePIN(); err != nil {
		return nil, err
	}
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/llamadas-por-dia", query: pinQuery(s), token: s.Token})
	if err != nil {
		return nil, err
	}
	list, err := listOf(raw, "dias")
	if err != nil {
		return nil, err
	}
	if !list.IsArray() {
		return []models.DailyCount{}, nil
	}
	out := []models.DailyCount{}
	for _, item := range list.Array() {
		if !item.IsObject() {
			return nil, ErrDecode
		}
		out = append(out, models.DailyCount{
			Fecha:    firstOf(item, "fecha", "date").String(),
			Llamadas: int(firstOf(item, "llamadas", "count").Int()),
		})
	}
	return out, nil
}

type analyzeRequest struct {
	Transcripciones []models.Transcription `json:"transcripciones"`
}

// AnalyzeTranscriptions submits transcripts for derived-field extraction.
func (c *Client) AnalyzeTranscriptions(ctx context.Context, s session.Session, items []models.Transcription) ([]models.Enrichment, error) {
	raw, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/analyze/transcription",
		token:  s.Token,
		body:   analyzeRequest{Transcripciones: items},
	})
	if err != nil {
		return nil, err
	}
	list, err := listOf(raw, "resultados")
	if err != nil {
		return nil, err
	}
	return unmarshalList[models.Enrichment](list)
}

func firstOf(item gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if v := item.Get(k); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}
