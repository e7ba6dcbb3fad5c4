package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/ailearn/internal/app"
	"github.com/abhisek/ailearn/internal/config"
	"github.com/abhisek/ailearn/internal/evaluation"
	"github.com/abhisek/ailearn/internal/lessons"
	"github.com/abhisek/ailearn/internal/pacing"
	"github.com/abhisek/ailearn/internal/progress"
	"github.com/abhisek/ailearn/internal/screen"
	"github.com/abhisek/ailearn/internal/statestore"
	"github.com/abhisek/ailearn/internal/store"
	"github.com/abhisek/ailearn/internal/tutor"
)

// runtime holds everything a command needs. Close releases it.
type runtime struct {
	svc       screen.Services
	store     *store.Store
	snapshots store.SnapshotRepo
	closers   []func()
}

func (r *runtime) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

// openRuntime opens the configured progress backend plus the SQLite store
// for snapshots and the event log, and builds the shared services. pace
// disables the simulated delays when false.
func openRuntime(ctx context.Context, pace bool) (*runtime, error) {
	rt := &runtime{}
	ok := false
	defer func() {
		if !ok {
			rt.Close()
		}
	}()

	var backend progress.Backend
	if cfg.Backend != config.BackendMemory {
		st, err := store.Open(ctx, cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		rt.closers = append(rt.closers, func() { _ = st.Close() })
		rt.store = st
		rt.snapshots = st.SnapshotRepo()
		rt.svc.Events = st.EventRepo()
	}

	switch cfg.Backend {
	case config.BackendSQLite:
		backend = rt.store.StateRepo(store.DefaultStateKey)
	case config.BackendRedis:
		rc := statestore.DefaultRedisConfig()
		rc.Addr, rc.Password, rc.DB, rc.Key = cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Key
		r, err := statestore.OpenRedis(ctx, rc)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, func() { _ = r.Close() })
		backend = r
	case config.BackendPostgres:
		pc := statestore.DefaultPostgresConfig()
		pc.DSN, pc.Key = cfg.Postgres.DSN, cfg.Postgres.Key
		p, err := statestore.OpenPostgres(ctx, pc)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, p.Close)
		backend = p
	case config.BackendMemory:
		backend = &progress.MemoryBackend{}
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidBackend, cfg.Backend)
	}

	svc, err := progress.Open(ctx, backend, progress.Options{Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	var rubrics []evaluation.Rubric
	if cfg.Rubrics != "" {
		rubrics, err = evaluation.LoadRubrics(cfg.Rubrics)
		if err != nil {
			return nil, err
		}
	}
	ev, err := evaluation.New(rubrics...)
	if err != nil {
		return nil, fmt.Errorf("rubrics: %w", err)
	}

	pacer := pacing.Instant()
	if pace {
		pacer = pacing.New(cfg.Pacing)
	}

	rt.svc.Progress = svc
	rt.svc.Catalog = lessons.Default()
	rt.svc.Tutor = tutor.New(nil)
	rt.svc.Evaluator = ev
	rt.svc.Pacer = pacer
	rt.svc.Logger = logger
	ok = true
	return rt, nil
}

// snapshot keeps a copy of the progress blob and prunes old copies. It is
// a no-op without the SQLite store.
func (r *runtime) snapshot(ctx context.Context) error {
	if r.snapshots == nil {
		return nil
	}
	if err := r.svc.Progress.Flush(ctx); err != nil {
		return err
	}
	data, err := r.svc.Progress.Export()
	if err != nil {
		return err
	}
	if err := r.snapshots.Save(ctx, &store.Snapshot{Data: data}); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := r.snapshots.Prune(ctx, cfg.Database.SnapshotsKept); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// runApp opens the backends, launches the TUI and snapshots the progress
// when it exits.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	rt, err := openRuntime(ctx, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	logger.Info("starting tui", zap.String("backend", cfg.Backend), zap.String("db", cfg.Database.Path))
	runErr := app.Run(rt.svc)

	if err := rt.snapshot(context.WithoutCancel(ctx)); err != nil {
		logger.Warn("snapshot after session", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Could not save a progress snapshot:", err)
	}
	return runErr
}
