package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sentinela/gateway/internal/models"
	"github.com/sentinela/gateway/internal/utils"
)

// MockEnricher produces stable pseudo-analysis from the call id, for demos
// without an analysis backend.
type MockEnricher struct{}

var (
	mockEmotions  = []string{"Neutral", "Tensa", "Alegre", "Amenazante"}
	mockLanguages = []string{"es", "es", "en"}
	mockKeywords  = []string{"dinero", "visita", "abogado", "familia", "deposito", "traslado", "salud"}
)

func (MockEnricher) Enrich(ctx context.Context, calls []models.Call) ([]models.Enrichment, error) {
	out := make([]models.Enrichment, 0, len(calls))
	for _, c := range calls {
		key := c.Key()
		kw := []string{
			mockKeywords[utils.PickIndex(key, 3, len(mockKeywords))],
			mockKeywords[utils.PickIndex(key, 11, len(mockKeywords))],
		}
		if kw[0] == kw[1] {
			kw = kw[:1]
		}
		out = append(out, models.Enrichment{
			ID:                c.KeyID(),
			PalabrasClave:     kw,
			ResumenAutomatico: mockSummary(c),
			Emocion:           mockEmotions[utils.PickIndex(key, 0, len(mockEmotions))],
			Idioma:            mockLanguages[utils.PickIndex(key, 7, len(mockLanguages))],
		})
	}
	return out, nil
}

func mockSummary(c models.Call) string {
	words := strings.Fields(c.Resumen)
	if len(words) > 12 {
		words = append(words[:12], "...")
	}
	if len(words) == 0 {
		return fmt.Sprintf("Llamada %s sin transcripción", c.Key())
	}
	return strings.Join(words, " ")
}
