package graphview

import (
	"math"

	"github.com/sentinela/gateway/internal/models"
)

// LinkSet holds the indexes of highlighted links within Graph.Links.
type LinkSet map[int]bool

// Highlight returns the links incident to the hovered node. An empty id
// highlights nothing.
func Highlight(g models.Graph, hovered string) LinkSet {
	set := LinkSet{}
	if hovered == "" {
		return set
	}
	for i, l := range g.Links {
		if l.Touches(hovered) {
			set[i] = true
		}
	}
	return set
}

// Neighbors lists the ids adjacent to id, including id itself.
func Neighbors(g models.Graph, id string) map[string]bool {
	out := map[string]bool{}
	if id == "" {
		return out
	}
	out[id] = true
	for _, l := range g.Links {
		switch id {
		case string(l.Source):
			out[string(l.Target)] = true
		case string(l.Target):
			out[string(l.Source)] = true
		}
	}
	return out
}

const (
	colorHighlighted = "rgba(255, 165, 0, 0.8)"
	colorDimmed      = "rgba(100, 100, 100, 0.2)"
	colorDefault     = "rgba(245, 158, 66, 0.6)"
)

type Style struct {
	Color     string  `json:"color"`
	Width     float64 `json:"width"`
	Particles int     `json:"particles"`
}

// LinkStyle styles one link. Width grows with the call count; a zero value
// counts as one call.
func LinkStyle(l models.GraphLink, highlighted, anyHovered bool) Style {
	v := l.Value
	if v == 0 {
		v = 1
	}
	if highlighted {
		return Style{Color: colorHighlighted, Width: math.Max(v*0.5, 3), Particles: 4}
	}
	color := colorDefault
	if anyHovered {
		color = colorDimmed
	}
	return Style{Color: color, Width: math.Max(v*0.3, 1)}
}
