// Package seeder installs the known-good default form configuration.
// It is a one-shot administrative procedure, not a service.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charan-kumar-kamasani/authentik/internal/events"
	"github.com/charan-kumar-kamasani/authentik/internal/formconfig"
	"github.com/charan-kumar-kamasani/authentik/internal/metrics"
)

// Result reports what the seeder did.
type Result string

const (
	Created Result = "created"
	Updated Result = "updated"
)

// Run upserts the seed content through st. It is idempotent: a second
// run overwrites the same document and reports Updated. The actor is
// stamped on the audit fields.
func Run(ctx context.Context, st formconfig.Store, actor string) (Result, error) {
	res := Updated
	_, err := st.FindGlobal(ctx)
	if errors.Is(err, formconfig.ErrNotFound) {
		res = Created
	} else if err != nil {
		return "", fmt.Errorf("query global config: %w", err)
	}
	seed := formconfig.SeedConfig()
	if v := formconfig.Validate(seed); !v.OK() {
		return "", fmt.Errorf("seed content invalid: %+v", v.Violations)
	}
	saved, err := st.UpsertGlobal(ctx, seed, actor)
	if err != nil {
		metrics.SeedRuns.WithLabelValues("error").Inc()
		return "", fmt.Errorf("persist seed config: %w", err)
	}
	metrics.SeedRuns.WithLabelValues(string(res)).Inc()
	events.Emit(ctx, events.Event{Name: events.ConfigSeeded, Time: time.Now(), Data: saved, ID: saved.ID})
	return res, nil
}
