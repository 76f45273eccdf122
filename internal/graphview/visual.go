// Package graphview turns a relationship graph into render-ready node and
// link styling and tracks hover and selection state for one graph view.
package graphview

import (
	"fmt"
	"math"
	"strings"

	"github.com/sentinela/gateway/internal/models"
)

const (
	pinRadius        = 12.0
	contactMinRadius = 8.0
	contactStep      = 0.5
	contactMaxRadius = 12.0
)

type Shell struct {
	Radius  float64 `json:"radius"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

type Label struct {
	Text    string  `json:"text"`
	FontPx  int     `json:"font_px"`
	Fill    string  `json:"fill"`
	ScaleX  float64 `json:"scale_x"`
	ScaleY  float64 `json:"scale_y"`
	OffsetZ float64 `json:"offset_z"`
}

// Visual is the sphere, shells and label sprite of one node.
type Visual struct {
	ID          string          `json:"id"`
	Type        models.NodeType `json:"type"`
	Radius      float64         `json:"radius"`
	Color       string          `json:"color"`
	BorderColor string          `json:"border_color"`
	Border      Shell           `json:"border"`
	Glow        Shell           `json:"glow"`
	Label       Label           `json:"label"`
	Tooltip     string          `json:"tooltip"`
}

// Radius is fixed for the subject node; contacts grow with their number of
// phones up to the subject's size.
func Radius(n models.GraphNode) float64 {
	if n.Type == models.NodePin {
		return pinRadius
	}
	count := len(n.Phones)
	if count == 0 {
		count = 1
	}
	return math.Min(contactMinRadius+float64(count)*contactStep, contactMaxRadius)
}

func NodeVisual(n models.GraphNode) Visual {
	r := Radius(n)
	color, border := "#4488ff", "#0066ff"
	font, fill := 100, "#e0e7ff"
	if n.Type == models.NodePin {
		color, border = "#ff4444", "#ff0000"
		font, fill = 170, "#ffffff"
	}
	d := r * 2
	return Visual{
		ID:          n.ID,
		Type:        n.Type,
		Radius:      r,
		Color:       color,
		BorderColor: border,
		Border:      Shell{Radius: r + 1.5, Color: border, Opacity: 0.4},
		Glow:        Shell{Radius: r + 3, Color: border, Opacity: 0.15},
		Label: Label{
			Text:    n.Label,
			FontPx:  font,
			Fill:    fill,
			ScaleX:  d * 2.2,
			ScaleY:  d * 0.7,
			OffsetZ: d * 0.7,
		},
		Tooltip: Tooltip(n),
	}
}

// Tooltip is the hover text of a node, one fact per line.
func Tooltip(n models.GraphNode) string {
	lines := []string{n.Label}
	if len(n.Phones) > 1 {
		lines = append(lines, fmt.Sprintf("%d números", len(n.Phones)))
	}
	if n.Identity != "" {
		lines = append(lines, "Identidad: "+n.Identity)
	}
	if n.Alias != "" {
		lines = append(lines, "Alias: "+n.Alias)
	}
	return strings.Join(lines, "\n")
}

// Identification is the panel text shown when a non-contact node is
// selected.
func Identification(n models.GraphNode) string {
	return fmt.Sprintf("Nodo seleccionado: %s (tipo: %s)", n.Label, n.Type)
}
