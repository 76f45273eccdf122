package graphview

import (
	"github.com/sentinela/gateway/internal/models"
)

type LinkView struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
	Style  Style   `json:"style"`
}

type Scene struct {
	Hovered string     `json:"hovered,omitempty"`
	Nodes   []Visual   `json:"nodes"`
	Links   []LinkView `json:"links"`
}

func (s Scene) IsEmpty() bool { return len(s.Nodes) == 0 }

// BuildScene computes every node visual and link style for one render.
func BuildScene(g models.Graph, hovered string) Scene {
	hl := Highlight(g, hovered)
	s := Scene{
		Hovered: hovered,
		Nodes:   make([]Visual, 0, len(g.Nodes)),
		Links:   make([]LinkView, 0, len(g.Links)),
	}
	for _, n := range g.Nodes {
		s.Nodes = append(s.Nodes, NodeVisual(n))
	}
	for i, l := range g.Links {
		s.Links = append(s.Links, LinkView{
			Source: string(l.Source),
			Target: string(l.Target),
			Value:  l.Value,
			Style:  LinkStyle(l, hl[i], hovered != ""),
		})
	}
	return s
}

type DanglingLink struct {
	Index   int      `json:"index"`
	Source  string   `json:"source"`
	Target  string   `json:"target"`
	Missing []string `json:"missing"`
}

// Issues lists structural problems of a graph. They are reported, never
// enforced.
type Issues struct {
	DuplicateIDs  []string       `json:"duplicate_ids,omitempty"`
	DanglingLinks []DanglingLink `json:"dangling_links,omitempty"`
}

func (i Issues) OK() bool {
	return len(i.DuplicateIDs) == 0 && len(i.DanglingLinks) == 0
}

func Validate(g models.Graph) Issues {
	var out Issues
	ids := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		ids[n.ID]++
		if ids[n.ID] == 2 {
			out.DuplicateIDs = append(out.DuplicateIDs, n.ID)
		}
	}
	for i, l := range g.Links {
		var missing []string
		if ids[string(l.Source)] == 0 {
			missing = append(missing, string(l.Source))
		}
		if ids[string(l.Target)] == 0 && l.Target != l.Source {
			missing = append(missing, string(l.Target))
		}
		if len(missing) > 0 {
			out.DanglingLinks = append(out.DanglingLinks, DanglingLink{
				Index:   i,
				Source:  string(l.Source),
				Target:  string(l.Target),
				Missing: missing,
			})
		}
	}
	return out
}

// Contacts lists the contact nodes in graph order.
func Contacts(g models.Graph) []models.GraphNode {
	var out []models.GraphNode
	for _, n := range g.Nodes {
		if n.Type == models.NodeContact {
			out = append(out, n)
		}
	}
	return out
}
