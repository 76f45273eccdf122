// Package ai derives keywords, summaries, emotion and language for call
// transcripts.
package ai

import (
	"context"

	"github.com/sentinela/gateway/internal/models"
)

type Enricher interface {
	Enrich(ctx context.Context, calls []models.Call) ([]models.Enrichment, error)
}

// Transcriptions maps calls to analysis input, using the summary as text.
func Transcriptions(calls []models.Call) []models.Transcription {
	out := make([]models.Transcription, 0, len(calls))
	for _, c := range calls {
		out = append(out, models.Transcription{ID: c.KeyID(), Texto: c.Resumen})
	}
	return out
}
