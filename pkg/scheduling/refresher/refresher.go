package refresher

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	sferrors "github.com/nikitashade/seqflow/pkg/common/errors"
	"github.com/nikitashade/seqflow/pkg/common/validation"
	"github.com/nikitashade/seqflow/pkg/fluent"
	"github.com/nikitashade/seqflow/pkg/metrics"
)

const moduleName = "refresher"

// Snapshot is one materialized evaluation of a pipeline.
type Snapshot[T any] struct {
	Values      []T
	RefreshedAt time.Time
}

// Config holds configuration for a Refresher.
type Config[T any] struct {
	// Spec is the cron expression controlling automatic refreshes.
	// Standard 5-field expressions and descriptors such as "@hourly" or
	// "@every 30s" are supported.
	Spec string

	// Location is the timezone for cron evaluation. Defaults to time.Local.
	Location *time.Location

	// Logger receives refresh outcomes. Defaults to zap.NewNop().
	Logger *zap.Logger

	// RefreshOnStart triggers an immediate refresh when Start is called.
	RefreshOnStart bool

	// OnRefresh, if set, is invoked with every new snapshot.
	OnRefresh func(Snapshot[T])

	// Metrics configures optional Prometheus instrumentation.
	Metrics metrics.Config
}

// Refresher re-evaluates a pipeline on a cron schedule and caches the
// latest materialized snapshot. The pipeline itself stays cheap to build
// (lazy chains queue in O(1)); the refresher pays the evaluation cost on
// the schedule instead of on every read.
type Refresher[T any] struct {
	name     string
	build    func() fluent.Pipeline[T]
	cfg      Config[T]
	cron     *cron.Cron
	logger   *zap.Logger
	registry *metrics.Registry

	mu     sync.RWMutex
	last   Snapshot[T]
	has    bool
	closed bool
}

// New creates a Refresher that evaluates the pipeline returned by build on
// the schedule in config.Spec. build is called once per refresh so the
// pipeline may capture changing inputs.
func New[T any](name string, build func() fluent.Pipeline[T], config Config[T]) (*Refresher[T], error) {
	if err := validation.ValidateNotEmpty(moduleName, "name", name); err != nil {
		return nil, err
	}
	if build == nil {
		return nil, sferrors.NewValidationError(moduleName, "build", nil, "cannot be nil").
			WithHint("provide a function returning the pipeline to evaluate")
	}
	if err := validation.ValidateNotEmpty(moduleName, "spec", config.Spec); err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	location := config.Location
	if location == nil {
		location = time.Local
	}

	r := &Refresher[T]{
		name:   name,
		build:  build,
		cfg:    config,
		cron:   cron.New(cron.WithLocation(location)),
		logger: logger,
	}

	if config.Metrics.Enabled {
		r.registry = metrics.NewRegistry(config.Metrics.Registry)
	}

	if _, err := r.cron.AddFunc(config.Spec, r.runScheduled); err != nil {
		return nil, sferrors.NewValidationError(moduleName, "spec", config.Spec, "invalid cron expression").
			WithHint(err.Error())
	}

	return r, nil
}

// Start begins scheduled refreshing. Returns ErrClosed after Stop.
func (r *Refresher[T]) Start() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return sferrors.ErrClosed
	}
	r.mu.Unlock()

	if r.cfg.RefreshOnStart {
		if _, err := r.Refresh(); err != nil {
			r.logger.Warn("initial refresh failed",
				zap.String("refresher", r.name),
				zap.Error(err))
		}
	}

	r.cron.Start()
	return nil
}

// Stop halts scheduled refreshing and waits for an in-flight refresh to
// finish. The cached snapshot remains readable; further Start calls fail.
func (r *Refresher[T]) Stop() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	<-r.cron.Stop().Done()
}

// Refresh evaluates the pipeline immediately, stores the snapshot, and
// returns it. A panic during evaluation is recovered and reported as an
// error; the previous snapshot stays in place.
func (r *Refresher[T]) Refresh() (snap Snapshot[T], err error) {
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s %q: evaluation panicked: %v", moduleName, r.name, rec)
		}
		r.report(start, len(snap.Values), err)
	}()

	values := r.build().ToSlice()
	snap = Snapshot[T]{Values: values, RefreshedAt: time.Now()}

	r.mu.Lock()
	r.last = snap
	r.has = true
	r.mu.Unlock()

	if r.cfg.OnRefresh != nil {
		r.cfg.OnRefresh(snap)
	}

	return snap, nil
}

// Latest returns the most recent snapshot, and false if no refresh has
// completed yet.
func (r *Refresher[T]) Latest() (Snapshot[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last, r.has
}

// runScheduled is the cron entry point.
func (r *Refresher[T]) runScheduled() {
	snap, err := r.Refresh()
	if err != nil {
		r.logger.Error("scheduled refresh failed",
			zap.String("refresher", r.name),
			zap.Error(err))
		return
	}

	r.logger.Debug("refreshed",
		zap.String("refresher", r.name),
		zap.Int("size", len(snap.Values)),
		zap.Time("at", snap.RefreshedAt))
}

func (r *Refresher[T]) report(start time.Time, size int, err error) {
	if r.registry == nil {
		return
	}

	status := "ok"
	if err != nil {
		status = "error"
	}

	r.registry.RefreshRuns.WithLabelValues(r.name, status).Inc()
	r.registry.RefreshDuration.WithLabelValues(r.name).Observe(time.Since(start).Seconds())
	if err == nil {
		r.registry.RefreshSnapshotSize.WithLabelValues(r.name).Set(float64(size))
	}
}
