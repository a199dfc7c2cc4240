package redislist

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	sferrors "github.com/nikitashade/seqflow/pkg/common/errors"
	"github.com/nikitashade/seqflow/pkg/common/validation"
	"github.com/nikitashade/seqflow/pkg/fluent"
	"github.com/nikitashade/seqflow/pkg/fluent/eager"
	"github.com/nikitashade/seqflow/pkg/fluent/lazy"
	"github.com/nikitashade/seqflow/pkg/metrics"
)

const moduleName = "redislist"

// FetchError wraps a Redis failure with the key being read.
type FetchError struct {
	Key string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("redislist: fetch %q: %v", e.Key, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Source reads a Redis list and decodes its entries into a sequence usable
// by either pipeline strategy. Redis lists keep insertion order, so the
// order invariants of the pipelines carry through.
type Source[T any] struct {
	client   redis.Cmdable
	key      string
	decode   Decoder[T]
	registry *metrics.Registry
}

// New creates a Source over the list stored at key.
func New[T any](client redis.Cmdable, key string, decode Decoder[T]) (*Source[T], error) {
	if client == nil {
		return nil, sferrors.NewValidationError(moduleName, "client", nil, "cannot be nil").
			WithHint("provide a connected go-redis client")
	}
	if err := validation.ValidateNotEmpty(moduleName, "key", key); err != nil {
		return nil, err
	}
	if decode == nil {
		return nil, sferrors.NewValidationError(moduleName, "decode", nil, "cannot be nil").
			WithHint("use one of the package decoders, e.g. redislist.Ints()")
	}

	return &Source[T]{client: client, key: key, decode: decode}, nil
}

// WithMetrics enables Prometheus instrumentation for fetches and returns
// the source for chaining.
func (s *Source[T]) WithMetrics(config metrics.Config) *Source[T] {
	if !config.Enabled {
		s.registry = nil
		return s
	}

	s.registry = metrics.NewRegistry(config.Registry)
	return s
}

// Fetch reads the whole list (LRANGE key 0 -1) and decodes every entry.
func (s *Source[T]) Fetch(ctx context.Context) ([]T, error) {
	return s.FetchRange(ctx, 0, -1)
}

// FetchRange reads the list slice [start, stop] (Redis index semantics,
// inclusive, negative offsets count from the tail) and decodes every entry.
// A decode failure aborts the fetch with an error wrapping ErrDecode.
func (s *Source[T]) FetchRange(ctx context.Context, start, stop int64) ([]T, error) {
	begin := time.Now()

	raw, err := s.client.LRange(ctx, s.key, start, stop).Result()
	if err != nil {
		s.report(begin, 0, err)
		return nil, &FetchError{Key: s.key, Err: err}
	}

	values := make([]T, 0, len(raw))
	for i, entry := range raw {
		v, err := s.decode(entry)
		if err != nil {
			err = fmt.Errorf("%w: %s[%d]=%q: %v", sferrors.ErrDecode, s.key, i, entry, err)
			s.report(begin, 0, err)
			return nil, err
		}
		values = append(values, v)
	}

	s.report(begin, len(values), nil)
	return values, nil
}

// Eager fetches the list and wraps it in an eager pipeline (the values are
// copied once more on construction, per the eager contract).
func (s *Source[T]) Eager(ctx context.Context) (fluent.Pipeline[T], error) {
	values, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return eager.From(values), nil
}

// Lazy fetches the list and wraps it in a lazy pipeline over the fetched
// values. The fetch itself is eager; laziness applies to the chain built
// on top.
func (s *Source[T]) Lazy(ctx context.Context) (fluent.Pipeline[T], error) {
	values, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return lazy.From(values), nil
}

func (s *Source[T]) report(start time.Time, items int, err error) {
	if s.registry == nil {
		return
	}

	status := "ok"
	if err != nil {
		status = "error"
	}

	s.registry.SourceFetches.WithLabelValues(sourceType, status).Inc()
	s.registry.SourceFetchDuration.WithLabelValues(sourceType).Observe(time.Since(start).Seconds())
	if err == nil {
		s.registry.SourceItems.WithLabelValues(sourceType).Add(float64(items))
	}
}

const sourceType = "redis_list"
