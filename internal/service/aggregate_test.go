package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/sentinela/gateway/internal/ai"
	"github.com/sentinela/gateway/internal/models"
)

func TestDailyTotalsEmpty(t *testing.T) {
	s := DailyTotals(nil)
	if s.Total != 0 || s.Average != 0 || s.Peak != nil || s.ZeroDays != 0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestDailyTotalsPeakFirstWins(t *testing.T) {
	days := []models.DailyCount{
		{Fecha: "2025-01-01", Llamadas: 2},
		{Fecha: "2025-01-02", Llamadas: 5},
		{Fecha: "2025-01-03", Llamadas: 0},
		{Fecha: "2025-01-04", Llamadas: 5},
	}
	s := DailyTotals(days)
	if s.Total != 12 || s.Average != 3 || s.ZeroDays != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Peak == nil || s.Peak.Fecha != "2025-01-02" {
		t.Fatalf("expected first max day as peak, got %+v", s.Peak)
	}
}

func TestDailyTotalsProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		counts := rapid.SliceOf(rapid.IntRange(0, 500)).Draw(t, "counts")
		days := make([]models.DailyCount, len(counts))
		sum := 0
		for i, n := range counts {
			days[i] = models.DailyCount{Fecha: fmt.Sprintf("d%d", i), Llamadas: n}
			sum += n
		}
		s := DailyTotals(days)
		if s.Total != sum {
			t.Fatalf("total %d != sum %d", s.Total, sum)
		}
		if len(days) == 0 {
			if s.Average != 0 || s.Peak != nil {
				t.Fatalf("empty input must give zero average and no peak")
			}
			return
		}
		if s.Average != float64(sum)/float64(len(days)) {
			t.Fatalf("average mismatch: %f", s.Average)
		}
		for _, d := range days {
			if d.Llamadas > s.Peak.Llamadas {
				t.Fatalf("peak %d is not the maximum", s.Peak.Llamadas)
			}
		}
	})
}

func TestHourlyHistogramDropsInvalidHours(t *testing.T) {
	calls := []models.Call{
		{Hora: "09:15"}, {Hora: "9:59"}, {Hora: "25:00"}, {Hora: "xx:10"},
		{Hora: ""}, {Hora: "23:00"}, {Hora: "00:01"}, {Hora: "-1:00"},
	}
	h := HourlyHistogram(calls)
	if h[9] != 2 || h[23] != 1 || h[0] != 1 {
		t.Fatalf("unexpected histogram: %v", h)
	}
	total := 0
	for _, n := range h {
		total += n
	}
	if total != 4 {
		t.Fatalf("expected 4 counted calls, got %d", total)
	}
}

func TestHourlyHistogramProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		horas := rapid.SliceOf(rapid.String()).Draw(t, "horas")
		calls := make([]models.Call, len(horas))
		for i, h := range horas {
			calls[i] = models.Call{Hora: h}
		}
		buckets := HourlyHistogram(calls)
		total := 0
		for _, n := range buckets {
			if n < 0 {
				t.Fatalf("negative bucket")
			}
			total += n
		}
		if total > len(calls) {
			t.Fatalf("counted %d of %d calls", total, len(calls))
		}
	})
}

func TestHourLabels(t *testing.T) {
	l := HourLabels()
	if len(l) != 24 || l[0] != "0:00" || l[23] != "23:00" {
		t.Fatalf("unexpected labels: %v", l)
	}
}

func TestTopCalledOrdersByCount(t *testing.T) {
	var calls []models.Call
	add := func(tel string, n int) {
		for i := 0; i < n; i++ {
			calls = append(calls, models.Call{Telefono: tel})
		}
	}
	add("C", 3)
	add("A", 5)
	add("B", 5)
	add("", 9)

	top := TopCalled(calls, 10)
	if len(top) != 3 {
		t.Fatalf("expected 3 numbers, got %+v", top)
	}
	if top[2].Telefono != "C" {
		t.Fatalf("expected C last, got %+v", top)
	}
	if top[0].Count != 5 || top[1].Count != 5 {
		t.Fatalf("expected A and B first, got %+v", top)
	}
}

func TestTopCalledProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tels := rapid.SliceOf(rapid.SampledFrom([]string{"", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"})).Draw(t, "tels")
		n := rapid.IntRange(0, 12).Draw(t, "n")
		calls := make([]models.Call, len(tels))
		for i, tel := range tels {
			calls[i] = models.Call{Telefono: tel}
		}
		top := TopCalled(calls, n)
		if len(top) > n {
			t.Fatalf("got %d entries for n=%d", len(top), n)
		}
		for i := 1; i < len(top); i++ {
			if top[i].Count > top[i-1].Count {
				t.Fatalf("not sorted descending: %+v", top)
			}
		}
		for _, pc := range top {
			if pc.Telefono == "" {
				t.Fatalf("empty telefono counted")
			}
		}
	})
}

func TestUniquePhones(t *testing.T) {
	got := UniquePhones([]models.Call{{Telefono: "2"}, {Telefono: "1"}, {Telefono: "2"}, {}})
	if len(got) != 2 || got[0] != "2" || got[1] != "1" {
		t.Fatalf("unexpected phones: %v", got)
	}
}

func TestExtractContact(t *testing.T) {
	cases := map[string]string{
		"Llamada saliente. Receptor: María López (5512345678) habló de dinero": "María López",
		"Receptor:  Pedro  (x)": "Pedro",
		"Sin receptor":          "",
		"Receptor: Juan":        "",
	}
	for in, want := range cases {
		if got := ExtractContact(in); got != want {
			t.Fatalf("ExtractContact(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMergeEnrichment(t *testing.T) {
	calls := []models.Call{{ID: models.NumID("1"), Resumen: "a"}, {ID: models.NumID("2"), Resumen: "b"}}
	res := []models.Enrichment{{ID: models.TextID("2"), Emocion: "Tensa", PalabrasClave: []string{"arma"}}}
	out := MergeEnrichment(calls, res)
	if out[0].Emocion != "" || out[1].Emocion != "Tensa" || out[1].PalabrasClave[0] != "arma" {
		t.Fatalf("unexpected merge: %+v", out)
	}
	if calls[1].Emocion != "" {
		t.Fatalf("input must not be mutated")
	}
}

func TestMergeEnrichmentKeepsLeadingZeros(t *testing.T) {
	var calls []models.Call
	if err := json.Unmarshal([]byte(`[{"id":"007","resumen":"a"},{"id":7,"resumen":"b"}]`), &calls); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := ai.MockEnricher{}.Enrich(context.Background(), calls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, _ := json.Marshal(res)
	var decoded []models.Enrichment
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded[0].Emocion, decoded[1].Emocion = "Tensa", "Tranquila"
	out := MergeEnrichment(calls, decoded)
	if out[0].Emocion != "Tensa" || out[1].Emocion != "Tranquila" {
		t.Fatalf("enrichment not matched by id: %+v", out)
	}
	if !strings.Contains(string(raw), `"id":"007"`) {
		t.Fatalf("expected string id on the wire, got %s", raw)
	}
}
