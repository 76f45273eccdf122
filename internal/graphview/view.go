package graphview

import (
	"context"
	"errors"
	"sync"

	"github.com/sentinela/gateway/internal/models"
	"github.com/sentinela/gateway/internal/resource"
)

var ErrUnknownNode = errors.New("nodo no encontrado en la red")

// View is the state of one graph view: the graph resource, the hovered
// node and the selected node with its call summary of type S. Summary
// loads are generation-tagged, so a newer click discards the results of
// an older one.
type View[S any] struct {
	graph   resource.Tracker[models.Graph]
	summary resource.Tracker[S]

	mu       sync.Mutex
	hovered  string
	selected *models.GraphNode
	ident    string
}

func (v *View[S]) StartGraph(ctx context.Context) (resource.Token, context.Context) {
	v.mu.Lock()
	v.hovered = ""
	v.selected = nil
	v.ident = ""
	v.mu.Unlock()
	v.summary.Reset()
	return v.graph.Start(ctx)
}

func (v *View[S]) GraphLoaded(tok resource.Token, g models.Graph) bool {
	return v.graph.Resolve(tok, g)
}

func (v *View[S]) GraphFailed(tok resource.Token, err error) bool {
	return v.graph.Reject(tok, err)
}

func (v *View[S]) Graph() resource.Resource[models.Graph] {
	return v.graph.Snapshot()
}

func (v *View[S]) Hover(id string) {
	v.mu.Lock()
	v.hovered = id
	v.mu.Unlock()
}

func (v *View[S]) Unhover() { v.Hover("") }

func (v *View[S]) Hovered() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.hovered
}

// Scene renders the current graph under the current hover state. It is
// empty until the graph is ready.
func (v *View[S]) Scene() Scene {
	g := v.graph.Snapshot()
	if !g.IsReady() {
		return Scene{}
	}
	return BuildScene(g.Data, v.Hovered())
}

// Selection is the outcome of a click.
type Selection struct {
	Node           models.GraphNode
	Identification string
	// Drill is true for contact nodes: the caller must load the summary
	// under Token with Ctx.
	Drill bool
	Token resource.Token
	Ctx   context.Context
}

// Click selects node id. The summary panel is always cleared; contact nodes
// start a new summary generation and cancel the previous one.
func (v *View[S]) Click(ctx context.Context, id string) (Selection, error) {
	g := v.graph.Snapshot()
	if !g.IsReady() {
		return Selection{}, ErrUnknownNode
	}
	node, ok := g.Data.Node(id)
	if !ok {
		return Selection{}, ErrUnknownNode
	}

	v.mu.Lock()
	v.selected = &node
	v.ident = ""
	if node.Type != models.NodeContact {
		v.ident = Identification(node)
	}
	v.mu.Unlock()

	if node.Type != models.NodeContact {
		v.summary.Reset()
		return Selection{Node: node, Identification: Identification(node)}, nil
	}
	tok, sctx := v.summary.Start(ctx)
	return Selection{Node: node, Drill: true, Token: tok, Ctx: sctx}, nil
}

func (v *View[S]) SummaryLoaded(tok resource.Token, s S) bool {
	return v.summary.Resolve(tok, s)
}

func (v *View[S]) SummaryFailed(tok resource.Token, err error) bool {
	return v.summary.Reject(tok, err)
}

func (v *View[S]) Summary() resource.Resource[S] {
	return v.summary.Snapshot()
}

// Selected returns the selected node and, for non-contact nodes, its
// identification text.
func (v *View[S]) Selected() (models.GraphNode, string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selected == nil {
		return models.GraphNode{}, "", false
	}
	return *v.selected, v.ident, true
}
