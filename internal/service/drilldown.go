package service

import (
	"context"
	"sort"
	"time"

	"github.com/araddon/dateparse"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sentinela/gateway/internal/models"
	"github.com/sentinela/gateway/internal/session"
)

type CallLister interface {
	ListCalls(ctx context.Context, s session.Session, contact string) ([]models.Call, error)
}

type PhoneFailure struct {
	Phone string `json:"phone"`
	Error string `json:"error"`
}

// DrillReport is the call summary of one contact node. Calls holds only the
// calls of phones whose lookup succeeded, newest first.
type DrillReport struct {
	Node      models.GraphNode `json:"node"`
	Succeeded []string         `json:"succeeded"`
	Failed    []PhoneFailure   `json:"failed,omitempty"`
	Partial   bool             `json:"partial"`
	Calls     []models.Call    `json:"calls"`
}

func (r DrillReport) IsEmpty() bool { return len(r.Calls) == 0 }

type DrillDown struct {
	Calls       CallLister
	Parallelism int
	Logger      zerolog.Logger
}

type phoneResult struct {
	phone string
	calls []models.Call
	err   error
}

// Run queries the calls of every phone of node concurrently. A failing
// phone is logged and reported in Failed without failing the whole
// drill-down; only a cancelled ctx does.
func (d DrillDown) Run(ctx context.Context, s session.Session, node models.GraphNode) (DrillReport, error) {
	if err := s.RequirePIN(); err != nil {
		return DrillReport{}, err
	}
	phones := node.PhoneList()
	results := make([]phoneResult, len(phones))

	limit := d.Parallelism
	if limit <= 0 {
		limit = 4
	}
	eg, gCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i, phone := range phones {
		eg.Go(func() error {
			calls, err := d.Calls.ListCalls(gCtx, s, phone)
			results[i] = phoneResult{phone: phone, calls: calls, err: err}
			return nil
		})
	}
	_ = eg.Wait()
	if err := ctx.Err(); err != nil {
		return DrillReport{}, err
	}

	report := DrillReport{Node: node, Succeeded: []string{}, Calls: []models.Call{}}
	for _, r := range results {
		if r.err != nil {
			d.Logger.Warn().Err(r.err).Str("pin", s.PIN).Str("phone", r.phone).Msg("no se pudieron obtener llamadas")
			report.Failed = append(report.Failed, PhoneFailure{Phone: r.phone, Error: r.err.Error()})
			continue
		}
		report.Succeeded = append(report.Succeeded, r.phone)
		report.Calls = append(report.Calls, r.calls...)
	}
	report.Partial = len(report.Failed) > 0
	SortByFechaDesc(report.Calls)
	return report, nil
}

// FechaTime parses a call date in any common layout. Unparseable or empty
// dates yield the zero time.
func FechaTime(fecha string) time.Time {
	if fecha == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(fecha)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SortByFechaDesc orders calls newest first. Calls with unparseable dates
// go last; equal dates keep their relative order.
func SortByFechaDesc(calls []models.Call) {
	keys := make([]time.Time, len(calls))
	for i, c := range calls {
		keys[i] = FechaTime(c.Fecha)
	}
	idx := make([]int, len(calls))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]].After(keys[idx[b]])
	})
	sorted := make([]models.Call, len(calls))
	for i, j := range idx {
		sorted[i] = calls[j]
	}
	copy(calls, sorted)
}
