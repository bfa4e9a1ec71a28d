package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rshade/cbamcalc/internal/config"
	"github.com/rshade/cbamcalc/internal/engine"
	"github.com/rshade/cbamcalc/internal/factors"
	"github.com/rshade/cbamcalc/internal/logging"
)

// errNoTable is returned when neither config nor flags name a table file.
var errNoTable = errors.New("no emission factor table configured: use --table or table.paths")

// loadEngine loads the configured reference table and returns an engine over it.
func loadEngine(ctx context.Context, cfg *config.Config) (*engine.Engine, error) {
	log := logging.FromContext(ctx)
	if len(cfg.Table.Paths) == 0 {
		return nil, usageError(errNoTable)
	}

	start := time.Now()
	table, reports, err := factors.LoadFiles(ctx, cfg.Table.Paths, cfg.Table.Sheet)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Strs("paths", cfg.Table.Paths).Msg("failed to load reference table")
		return nil, fmt.Errorf("loading reference table: %w", err)
	}

	for _, r := range reports {
		ev := log.Debug()
		if len(r.Skipped) > 0 {
			ev = log.Warn()
		}
		ev.Ctx(ctx).
			Str("source", r.Source).
			Int("rows", r.Rows).
			Int("loaded", r.Loaded).
			Int("skipped", len(r.Skipped)).
			Msg("reference table loaded")
	}
	log.Debug().Ctx(ctx).
		Int("records", table.Len()).
		Dur("duration", time.Since(start)).
		Msg("engine ready")

	return engine.New(table), nil
}

// requireCode rejects codes the table does not know, listing what it does know.
func requireCode(table *factors.Table, code string) error {
	if table.HasCode(code) {
		return nil
	}
	codes := table.Codes()
	const maxListed = 10
	if len(codes) > maxListed {
		codes = append(codes[:maxListed:maxListed], "...")
	}
	return usageError(fmt.Errorf("%w %q (known codes: %v)", ErrUnknownCNCode, code, codes))
}
