package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sentinela/gateway/internal/ai"
	"github.com/sentinela/gateway/internal/backend"
	"github.com/sentinela/gateway/internal/geocode"
	"github.com/sentinela/gateway/internal/graphview"
	"github.com/sentinela/gateway/internal/models"
	"github.com/sentinela/gateway/internal/resource"
	"github.com/sentinela/gateway/internal/session"
)

// Backend is the subset of the backend client the dashboard reads from.
type Backend interface {
	CallLister
	CallsPerDay(ctx context.Context, s session.Session) ([]models.DailyCount, error)
	ListAlerts(ctx context.Context, s session.Session) ([]models.Alert, error)
	GetInmate(ctx context.Context, s session.Session) (models.Inmate, error)
	GetNetwork(ctx context.Context, s session.Session) (models.Graph, error)
	PhotoURL(pin string) string
}

// WidgetError is a widget failure: a user-facing message plus the cause.
type WidgetError struct {
	Message string
	Err     error
}

func (e *WidgetError) Error() string { return e.Message }
func (e *WidgetError) Unwrap() error { return e.Err }

var ErrNodeNotFound = errors.New("El nodo no existe en la red de vínculos.")

// widgetErr keeps the missing-PIN message as is, prefers a backend detail,
// and otherwise falls back to msg.
func widgetErr(err error, msg string) error {
	if errors.Is(err, session.ErrNoPIN) {
		return session.ErrNoPIN
	}
	return &WidgetError{Message: backend.Detail(err, msg), Err: err}
}

const TopNumbersLimit = 10

type Dashboard struct {
	Backend          Backend
	Enricher         ai.Enricher
	Locator          geocode.Locator
	Notes            *Notes
	Logger           zerolog.Logger
	MergeKm          float64
	Parallelism      int
	PlaceholderPhoto string
}

type DailyPayload struct {
	Days    []models.DailyCount `json:"days"`
	Summary DailySummary        `json:"summary"`
}

func (p DailyPayload) IsEmpty() bool { return len(p.Days) == 0 }

func (d *Dashboard) Daily(ctx context.Context, s session.Session) resource.Resource[DailyPayload] {
	if err := s.RequirePIN(); err != nil {
		return resource.Fail[DailyPayload](err)
	}
	days, err := d.Backend.CallsPerDay(ctx, s)
	if err != nil {
		d.logFailure("daily", s, err)
		return resource.Fail[DailyPayload](widgetErr(err, "No se pudo obtener los datos de llamadas"))
	}
	return resource.Succeed(DailyPayload{Days: days, Summary: DailyTotals(days)})
}

type HourlyPayload struct {
	Labels  []string `json:"labels"`
	Buckets [24]int  `json:"buckets"`
	Calls   int      `json:"calls"`
}

func (p HourlyPayload) IsEmpty() bool { return p.Calls == 0 }

func (d *Dashboard) Hourly(ctx context.Context, s session.Session) resource.Resource[HourlyPayload] {
	calls, err := d.calls(ctx, s, "hourly")
	if err != nil {
		return resource.Fail[HourlyPayload](err)
	}
	return resource.Succeed(HourlyPayload{Labels: HourLabels(), Buckets: HourlyHistogram(calls), Calls: len(calls)})
}

func (d *Dashboard) TopNumbers(ctx context.Context, s session.Session) resource.Resource[[]PhoneCount] {
	calls, err := d.calls(ctx, s, "top_numbers")
	if err != nil {
		return resource.Fail[[]PhoneCount](err)
	}
	return resource.SucceedList(TopCalled(calls, TopNumbersLimit))
}

type CallMapPayload struct {
	Markers   []geocode.Marker `json:"markers"`
	Unlocated []string         `json:"unlocated,omitempty"`
}

func (p CallMapPayload) IsEmpty() bool { return len(p.Markers) == 0 && len(p.Unlocated) == 0 }

func (d *Dashboard) CallMap(ctx context.Context, s session.Session) resource.Resource[CallMapPayload] {
	calls, err := d.calls(ctx, s, "call_map")
	if err != nil {
		return resource.Fail[CallMapPayload](err)
	}
	markers, unlocated := geocode.Markers(d.Locator, UniquePhones(calls), d.MergeKm)
	if markers == nil {
		markers = []geocode.Marker{}
	}
	return resource.Succeed(CallMapPayload{Markers: markers, Unlocated: unlocated})
}

type RecentCall struct {
	models.Call
	Contacto string `json:"contacto"`
}

// RecentCalls lists the subject's calls enriched with analysis fields and
// the session's analyst notes. Enrichment failures leave calls unenriched.
func (d *Dashboard) RecentCalls(ctx context.Context, s session.Session) resource.Resource[[]RecentCall] {
	calls, err := d.callsWithMessage(ctx, s, "recent_calls", "No se pudieron obtener las transcripciones")
	if err != nil {
		return resource.Fail[[]RecentCall](err)
	}
	if d.Enricher != nil && len(calls) > 0 {
		results, err := d.Enricher.Enrich(session.WithSession(ctx, s), calls)
		if err != nil {
			d.Logger.Warn().Err(err).Str("pin", s.PIN).Msg("transcription analysis failed")
		} else {
			calls = MergeEnrichment(calls, results)
		}
	}
	calls = d.Notes.Apply(s.ID, calls)

	out := make([]RecentCall, 0, len(calls))
	for _, c := range calls {
		out = append(out, RecentCall{Call: c, Contacto: ExtractContact(c.Resumen)})
	}
	return resource.SucceedList(out)
}

type AlertView struct {
	models.Alert
	Badge string `json:"badge"`
}

func (d *Dashboard) Alerts(ctx context.Context, s session.Session) resource.Resource[[]AlertView] {
	alerts, err := d.Backend.ListAlerts(ctx, s)
	if err != nil {
		d.logFailure("alerts", s, err)
		return resource.Fail[[]AlertView](widgetErr(err, "Error al cargar alertas"))
	}
	out := make([]AlertView, 0, len(alerts))
	for _, a := range alerts {
		if !a.Severity.Valid() {
			d.Logger.Debug().Str("severity", string(a.Severity)).Msg("unknown alert severity")
		}
		out = append(out, AlertView{Alert: a, Badge: a.Severity.BadgeColor()})
	}
	return resource.SucceedList(out)
}

type ProfilePayload struct {
	Inmate      models.Inmate `json:"inmate"`
	DisplayName string        `json:"display_name"`
	PhotoURL    string        `json:"photo_url"`
	Placeholder string        `json:"placeholder"`
}

func (d *Dashboard) Profile(ctx context.Context, s session.Session) resource.Resource[ProfilePayload] {
	if err := s.RequirePIN(); err != nil {
		return resource.Fail[ProfilePayload](err)
	}
	inmate, err := d.Backend.GetInmate(ctx, s)
	if err != nil {
		d.logFailure("profile", s, err)
		return resource.Fail[ProfilePayload](widgetErr(err, "No se encontró información del PPL para este PIN."))
	}
	return resource.Succeed(ProfilePayload{
		Inmate:      inmate,
		DisplayName: inmate.DisplayName(),
		PhotoURL:    d.Backend.PhotoURL(s.PIN),
		Placeholder: d.PlaceholderPhoto,
	})
}

type NetworkPayload struct {
	Graph  models.Graph     `json:"graph"`
	Scene  graphview.Scene  `json:"scene"`
	Issues graphview.Issues `json:"issues"`
}

func (p NetworkPayload) IsEmpty() bool { return len(p.Graph.Nodes) == 0 }

// Network fetches the relationship graph and renders it with hovered as
// the hovered node ("" for none).
func (d *Dashboard) Network(ctx context.Context, s session.Session, hovered string) resource.Resource[NetworkPayload] {
	g, err := d.network(ctx, s)
	if err != nil {
		return resource.Fail[NetworkPayload](err)
	}
	issues := graphview.Validate(g)
	if !issues.OK() {
		d.Logger.Warn().
			Int("duplicates", len(issues.DuplicateIDs)).
			Int("dangling", len(issues.DanglingLinks)).
			Str("pin", s.PIN).
			Msg("network graph has structural issues")
	}
	return resource.Succeed(NetworkPayload{Graph: g, Scene: graphview.BuildScene(g, hovered), Issues: issues})
}

type ContactPayload struct {
	Node           models.GraphNode `json:"node"`
	Identification string           `json:"identification,omitempty"`
	Report         *DrillReport     `json:"report,omitempty"`
}

func (p ContactPayload) IsEmpty() bool { return p.Report != nil && p.Report.IsEmpty() }

// Contact resolves nodeID in the subject's graph. Contact nodes get a
// drill-down report; other nodes only their identification text.
func (d *Dashboard) Contact(ctx context.Context, s session.Session, nodeID string) resource.Resource[ContactPayload] {
	g, err := d.network(ctx, s)
	if err != nil {
		return resource.Fail[ContactPayload](err)
	}
	node, ok := g.Node(nodeID)
	if !ok {
		return resource.Fail[ContactPayload](ErrNodeNotFound)
	}
	if node.Type != models.NodeContact {
		return resource.Succeed(ContactPayload{Node: node, Identification: graphview.Identification(node)})
	}
	report, err := d.DrillDown(ctx, s, node)
	if err != nil {
		return resource.Fail[ContactPayload](widgetErr(err, "Error al obtener resumen de llamadas"))
	}
	return resource.Succeed(ContactPayload{Node: node, Report: &report})
}

// DrillDown runs the per-phone call lookup of a contact node.
func (d *Dashboard) DrillDown(ctx context.Context, s session.Session, node models.GraphNode) (DrillReport, error) {
	return DrillDown{Calls: d.Backend, Parallelism: d.Parallelism, Logger: d.Logger}.Run(ctx, s, node)
}

func (d *Dashboard) network(ctx context.Context, s session.Session) (models.Graph, error) {
	if err := s.RequirePIN(); err != nil {
		return models.Graph{}, err
	}
	g, err := d.Backend.GetNetwork(ctx, s)
	if err != nil {
		d.logFailure("network", s, err)
		return models.Graph{}, widgetErr(err, "Error al cargar la red de vínculos")
	}
	return g, nil
}

func (d *Dashboard) calls(ctx context.Context, s session.Session, widget string) ([]models.Call, error) {
	return d.callsWithMessage(ctx, s, widget, "No se pudieron obtener las llamadas")
}

func (d *Dashboard) callsWithMessage(ctx context.Context, s session.Session, widget, msg string) ([]models.Call, error) {
	if err := s.RequirePIN(); err != nil {
		return nil, err
	}
	calls, err := d.Backend.ListCalls(ctx, s, "")
	if err != nil {
		d.logFailure(widget, s, err)
		return nil, widgetErr(err, msg)
	}
	return calls, nil
}

func (d *Dashboard) logFailure(widget string, s session.Session, err error) {
	d.Logger.Error().Err(err).Str("widget", widget).Str("pin", s.PIN).Msg("widget fetch failed")
}

// Summary bundles every widget of the dashboard page.
type Summary struct {
	PIN        string                            `json:"pin"`
	Daily      resource.Resource[DailyPayload]   `json:"daily"`
	Hourly     resource.Resource[HourlyPayload]  `json:"hourly"`
	TopNumbers resource.Resource[[]PhoneCount]   `json:"top_numbers"`
	CallMap    resource.Resource[CallMapPayload] `json:"call_map"`
	Recent     resource.Resource[[]RecentCall]   `json:"recent_calls"`
	Alerts     resource.Resource[[]AlertView]    `json:"alerts"`
	Profile    resource.Resource[ProfilePayload] `json:"profile"`
}

// Summary loads the dashboard widgets concurrently. Widgets fail
// independently; the summary itself never fails.
func (d *Dashboard) Summary(ctx context.Context, s session.Session) Summary {
	out := Summary{PIN: s.PIN}
	eg, gCtx := errgroup.WithContext(ctx)
	eg.Go(func() error { out.Daily = d.Daily(gCtx, s); return nil })
	eg.Go(func() error { out.Hourly = d.Hourly(gCtx, s); return nil })
	eg.Go(func() error { out.TopNumbers = d.TopNumbers(gCtx, s); return nil })
	eg.Go(func() error { out.CallMap = d.CallMap(gCtx, s); return nil })
	eg.Go(func() error { out.Recent = d.RecentCalls(gCtx, s); return nil })
	eg.Go(func() error { out.Alerts = d.Alerts(gCtx, s); return nil })
	eg.Go(func() error { out.Profile = d.Profile(gCtx, s); return nil })
	_ = eg.Wait()
	return out
}
