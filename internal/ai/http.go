package ai

import (
	"context"

	"github.com/sentinela/gateway/internal/models"
	"github.com/sentinela/gateway/internal/session"
)

// Analyzer is the backend operation BackendEnricher delegates to.
type Analyzer interface {
	AnalyzeTranscriptions(ctx context.Context, s session.Session, items []models.Transcription) ([]models.Enrichment, error)
}

// BackendEnricher asks the backend analysis endpoint, authenticated with
// the session carried by ctx.
type BackendEnricher struct {
	Backend Analyzer
}

func (b BackendEnricher) Enrich(ctx context.Context, calls []models.Call) ([]models.Enrichment, error) {
	if len(calls) == 0 {
		return []models.Enrichment{}, nil
	}
	return b.Backend.AnalyzeTranscriptions(ctx, session.FromContext(ctx), Transcriptions(calls))
}
