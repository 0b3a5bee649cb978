// Package batch sorts many independent sequences concurrently.
//
// A single sort is always synchronous; parallelism comes only from sorting
// distinct sequences on distinct workers. Sorters are stateless, so one
// Sorter is shared by every worker. The caller must not touch any of the
// sequences until SortAll returns.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sorter"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

// WorkersEnvVar sets the default worker count.
const WorkersEnvVar = "SORT_WORKER_COUNT"

const tracerName = "github.com/amp-labs/amp-sort/batch"

type options struct {
	workers        int
	tracerProvider trace.TracerProvider
}

// Option configures SortAll.
type Option func(*options)

// WithWorkers caps the number of sequences sorted at once. Values below 1
// are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// DefaultWorkers reads SORT_WORKER_COUNT, falling back to GOMAXPROCS.
func DefaultWorkers(ctx context.Context) int {
	procs := runtime.GOMAXPROCS(0)

	return envutil.Int[int](ctx, WorkersEnvVar,
		envutil.Default(procs),
		envutil.Validate(func(n int) error {
			if n < 1 {
				return errors.InvalidArgumentf("%s must be positive, got %d", WorkersEnvVar, n)
			}

			return nil
		})).ValueOrElse(procs)
}

// SortAll sorts every sequence in seqs with s and cmp, up to the configured
// number at a time.
//
// Every sequence is validated before any is sorted, so invalid input leaves
// all of them untouched. Once sorting has started, a cancelled ctx stops
// sequences that have not been picked up yet; sorts already running finish.
// The returned error joins one entry per failed sequence, prefixed with its
// index.
func SortAll[T any](ctx context.Context, s sorter.Sorter[T], seqs []sorter.Sequence[T],
	cmp compare.Func[T], opts ...Option,
) error {
	if s == nil {
		return errors.InvalidArgument("sorter is nil")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.workers == 0 {
		o.workers = DefaultWorkers(ctx)
	}

	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}

	workers := max(min(o.workers, len(seqs)), 1)

	ctx, span := o.tracerProvider.Tracer(tracerName).Start(ctx, "batch.SortAll",
		trace.WithAttributes(
			attribute.String("sort.algorithm", s.Algorithm().String()),
			attribute.Int("sort.sequences", len(seqs)),
			attribute.Int("sort.workers", workers),
		))
	defer span.End()

	log := logger.Get(ctx).With("algorithm", s.Algorithm().String(), "sequences", len(seqs))

	var errs errors.Collection
	for i, seq := range seqs {
		errs.Addf(sorter.Check(seq, cmp), "sequence %d", i)
	}

	if errs.HasError() {
		return fail(span, errs.GetError())
	}

	if len(seqs) == 0 {
		return nil
	}

	log.Debug("sorting batch", "workers", workers)

	start := time.Now()
	results := make([]error, len(seqs))
	skipped := atomic.NewInt64(0)

	pool := pond.NewPool(workers)
	group := pool.NewGroup()

	for i, seq := range seqs {
		group.Submit(func() {
			if ctx.Err() != nil {
				skipped.Inc()

				return
			}

			_, results[i] = s.Sort(seq, cmp)
		})
	}

	waitErr := group.Wait()

	pool.StopAndWait()

	errs.Add(waitErr)

	for i, err := range results {
		errs.Addf(err, "sequence %d", i)
	}

	if n := skipped.Load(); n > 0 {
		errs.Add(fmt.Errorf("%d of %d sequences not sorted: %w", n, len(seqs), context.Cause(ctx)))
	}

	if errs.HasError() {
		log.Debug("batch failed", "errors", errs.Len(), "skipped", skipped.Load())

		return fail(span, errs.GetError())
	}

	log.Debug("batch sorted", "duration", time.Since(start))

	return nil
}

// SortAllSlices is SortAll for plain slices.
func SortAllSlices[T any](ctx context.Context, s sorter.Sorter[T], slices [][]T,
	cmp compare.Func[T], opts ...Option,
) error {
	seqs := make([]sorter.Sequence[T], len(slices))
	for i, x := range slices {
		seqs[i] = sorter.Slice[T](x)
	}

	return SortAll(ctx, s, seqs, cmp, opts...)
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
