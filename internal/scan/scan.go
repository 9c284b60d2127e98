// Package scan evaluates every registered application probe and reports the
// outcome. It is a diagnostic sweep for operators and tooling; resolution
// itself (hostapp.Resolver) stays sequential and returns at most one match.
package scan

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pipefold/hostprobe/internal/hostapp"
)

// ProbeStatus is the sweep outcome for one application.
type ProbeStatus struct {
	ID                string   `json:"id"`
	DisplayName       string   `json:"displayName"`
	ExecutableAliases []string `json:"executableAliases,omitempty"`
	Matched           bool     `json:"matched"`
}

// Report holds the outcome of probing every registered application, in
// registration order.
type Report struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	Statuses    []ProbeStatus `json:"statuses"`
}

// Matched returns the statuses whose probe reported true.
func (r *Report) Matched() []ProbeStatus {
	var out []ProbeStatus
	for _, s := range r.Statuses {
		if s.Matched {
			out = append(out, s)
		}
	}
	return out
}

// Run evaluates every registered probe, at most limit at a time (limit < 1
// means sequential). Statuses are index-addressed so the report order is
// registration order regardless of probe scheduling. Panicking probes count
// as unmatched, same as during resolution.
func Run(ctx context.Context, reg *hostapp.Registry, limit int) (*Report, error) {
	descs := reg.All()
	statuses := make([]ProbeStatus, len(descs))

	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)

	for i, d := range descs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			statuses[i] = ProbeStatus{
				ID:                d.ID,
				DisplayName:       d.DisplayName(),
				ExecutableAliases: d.ExecutableAliases,
				Matched:           hostapp.RunProbe(d.Probe),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{
		GeneratedAt: time.Now().UTC(),
		Statuses:    statuses,
	}, nil
}
