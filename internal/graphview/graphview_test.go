package graphview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/sentinela/gateway/internal/models"
	"github.com/sentinela/gateway/internal/resource"
)

func sampleGraph() models.Graph {
	return models.Graph{
		Nodes: []models.GraphNode{
			{ID: "666", Label: "PIN 666", Type: models.NodePin},
			{ID: "c1", Label: "Juan", Type: models.NodeContact, Phones: []string{"555", "556"}, Identity: "Juan Pérez", Alias: "El Flaco"},
			{ID: "c2", Label: "María", Type: models.NodeContact},
		},
		Links: []models.GraphLink{
			{Source: "666", Target: "c1", Value: 10},
			{Source: "666", Target: "c2"},
			{Source: "c2", Target: "ghost", Value: 2},
		},
	}
}

func TestNodeVisualPin(t *testing.T) {
	v := NodeVisual(models.GraphNode{ID: "666", Label: "PIN", Type: models.NodePin})
	if v.Radius != 12 || v.Color != "#ff4444" || v.BorderColor != "#ff0000" {
		t.Fatalf("unexpected pin visual: %+v", v)
	}
	if v.Border.Radius != 13.5 || v.Border.Opacity != 0.4 || v.Glow.Radius != 15 || v.Glow.Opacity != 0.15 {
		t.Fatalf("unexpected shells: %+v %+v", v.Border, v.Glow)
	}
	if v.Label.FontPx != 170 || v.Label.Fill != "#ffffff" {
		t.Fatalf("unexpected label: %+v", v.Label)
	}
	if v.Label.ScaleX != 24*2.2 || v.Label.ScaleY != 24*0.7 || v.Label.OffsetZ != 24*0.7 {
		t.Fatalf("unexpected sprite geometry: %+v", v.Label)
	}
}

func TestContactRadius(t *testing.T) {
	cases := []struct {
		phones int
		want   float64
	}{
		{0, 8.5}, {1, 8.5}, {2, 9}, {8, 12}, {20, 12},
	}
	for _, c := range cases {
		n := models.GraphNode{Type: models.NodeContact, Phones: make([]string, c.phones)}
		if got := Radius(n); got != c.want {
			t.Fatalf("phones=%d: radius %v, want %v", c.phones, got, c.want)
		}
	}
	v := NodeVisual(models.GraphNode{Type: models.NodeContact})
	if v.Color != "#4488ff" || v.Label.FontPx != 100 || v.Label.Fill != "#e0e7ff" {
		t.Fatalf("unexpected contact visual: %+v", v)
	}
}

func TestRadiusProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 100).Draw(t, "phones")
		node := models.GraphNode{Type: models.NodeContact, Phones: make([]string, n)}
		r := Radius(node)
		if r < 8 || r > 12 {
			t.Fatalf("radius %v out of range", r)
		}
		if NodeVisual(node) != NodeVisual(node) {
			t.Fatalf("visual not deterministic")
		}
	})
}

func TestTooltip(t *testing.T) {
	g := sampleGraph()
	tip := Tooltip(g.Nodes[1])
	for _, want := range []string{"Juan", "2 números", "Juan Pérez", "El Flaco"} {
		if !strings.Contains(tip, want) {
			t.Fatalf("tooltip %q missing %q", tip, want)
		}
	}
	if Tooltip(g.Nodes[2]) != "María" {
		t.Fatalf("expected bare label, got %q", Tooltip(g.Nodes[2]))
	}
}

func TestHighlightToleratesObjectEndpoints(t *testing.T) {
	var g models.Graph
	raw := `{"nodes":[{"id":"a","label":"A","type":"pin"},{"id":"b","label":"B","type":"contact"}],
		"links":[{"source":{"id":"a"},"target":{"id":"b"},"value":3},{"source":"b","target":"b","value":1}]}`
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		t.Fatalf("decode: %v", err)
	}
	hl := Highlight(g, "a")
	if !hl[0] || hl[1] {
		t.Fatalf("unexpected highlight: %v", hl)
	}
	if len(Highlight(g, "")) != 0 {
		t.Fatalf("unhover must clear highlight")
	}
}

func TestLinkStyle(t *testing.T) {
	l := models.GraphLink{Value: 10}
	if s := LinkStyle(l, true, true); s.Color != "rgba(255, 165, 0, 0.8)" || s.Width != 5 || s.Particles != 4 {
		t.Fatalf("unexpected highlighted style: %+v", s)
	}
	if s := LinkStyle(l, false, true); s.Color != "rgba(100, 100, 100, 0.2)" || s.Width != 3 || s.Particles != 0 {
		t.Fatalf("unexpected dimmed style: %+v", s)
	}
	if s := LinkStyle(models.GraphLink{}, false, false); s.Color != "rgba(245, 158, 66, 0.6)" || s.Width != 1 {
		t.Fatalf("unexpected default style: %+v", s)
	}
	if s := LinkStyle(models.GraphLink{}, true, true); s.Width != 3 {
		t.Fatalf("expected minimum highlighted width 3, got %v", s.Width)
	}
}

func TestBuildSceneAndValidate(t *testing.T) {
	g := sampleGraph()
	s := BuildScene(g, "c2")
	if len(s.Nodes) != 3 || len(s.Links) != 3 {
		t.Fatalf("unexpected scene sizes: %d %d", len(s.Nodes), len(s.Links))
	}
	if s.Links[0].Style.Particles != 0 || s.Links[1].Style.Particles != 4 || s.Links[2].Style.Particles != 4 {
		t.Fatalf("unexpected highlight in scene: %+v", s.Links)
	}
	issues := Validate(g)
	if issues.OK() || len(issues.DanglingLinks) != 1 || issues.DanglingLinks[0].Missing[0] != "ghost" {
		t.Fatalf("unexpected issues: %+v", issues)
	}
	g.Nodes = append(g.Nodes, models.GraphNode{ID: "c1"})
	if d := Validate(g).DuplicateIDs; len(d) != 1 || d[0] != "c1" {
		t.Fatalf("expected duplicate c1, got %v", d)
	}
}

func TestNeighbors(t *testing.T) {
	n := Neighbors(sampleGraph(), "c2")
	if !n["c2"] || !n["666"] || !n["ghost"] || n["c1"] {
		t.Fatalf("unexpected neighbors: %v", n)
	}
}

type summary struct{ calls int }

func loadedView(t *testing.T) *View[summary] {
	t.Helper()
	v := &View[summary]{}
	tok, _ := v.StartGraph(context.Background())
	if v.Graph().State != resource.Loading {
		t.Fatalf("expected loading graph")
	}
	if !v.GraphLoaded(tok, sampleGraph()) {
		t.Fatalf("expected graph to resolve")
	}
	return v
}

func TestViewClickPinClearsSummary(t *testing.T) {
	v := loadedView(t)
	sel, err := v.Click(context.Background(), "c1")
	if err != nil || !sel.Drill {
		t.Fatalf("expected drill for contact: %+v %v", sel, err)
	}
	v.SummaryLoaded(sel.Token, summary{calls: 3})

	sel, err = v.Click(context.Background(), "666")
	if err != nil || sel.Drill || !strings.Contains(sel.Identification, "tipo: pin") {
		t.Fatalf("unexpected pin selection: %+v %v", sel, err)
	}
	if v.Summary().State != resource.NotStarted {
		t.Fatalf("expected summary cleared, got %s", v.Summary().State)
	}
	if _, ident, ok := v.Selected(); !ok || ident == "" {
		t.Fatalf("expected identification for selected pin")
	}
}

func TestViewStaleSummaryDropped(t *testing.T) {
	v := loadedView(t)
	first, _ := v.Click(context.Background(), "c1")
	second, _ := v.Click(context.Background(), "c2")
	if first.Ctx.Err() == nil {
		t.Fatalf("expected first drill-down cancelled")
	}
	if v.SummaryLoaded(first.Token, summary{calls: 99}) {
		t.Fatalf("stale summary must be dropped")
	}
	if !v.SummaryFailed(second.Token, errors.New("boom")) {
		t.Fatalf("current summary must settle")
	}
	if got := v.Summary(); got.State != resource.Failed || got.Message() != "boom" {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestViewUnknownNodeAndHover(t *testing.T) {
	v := loadedView(t)
	if _, err := v.Click(context.Background(), "nope"); !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}
	v.Hover("c1")
	if v.Scene().Links[0].Style.Particles != 4 {
		t.Fatalf("expected hovered link highlighted")
	}
	v.Unhover()
	if v.Scene().Links[0].Style.Color != "rgba(245, 158, 66, 0.6)" {
		t.Fatalf("expected default styling after unhover")
	}
}
