// Package bench runs sorting strategies against a shared dataset and checks
// that every run produced a sorted permutation of its input.
//
// The dataset is built once and held in a copy-on-write pointer. Each run
// clones the pointer and asks for a mutable view, which detaches a private
// copy; the original is verified unchanged once all runs are done.
package bench

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-containers/compare"
	"github.com/amp-labs/amp-containers/corpus"
	"github.com/amp-labs/amp-containers/cow"
	commonerrors "github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/hashing"
	"github.com/amp-labs/amp-containers/logger"
	"github.com/amp-labs/amp-containers/ownership"
	"github.com/amp-labs/amp-containers/sorting"
	"github.com/amp-labs/amp-containers/stack"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "github.com/amp-labs/amp-containers/bench"

// ErrDatasetMutated means a run wrote through to the shared dataset.
var ErrDatasetMutated = errors.New("shared dataset was modified by a run")

// Result describes one strategy run.
type Result struct {
	Strategy string
	Repeat   int
	Size     int
	Duration time.Duration
	// Sorted holds if every adjacent pair is in order.
	Sorted bool
	// Permutation holds if the output has exactly the input's elements.
	Permutation bool
	// Idempotent holds if sorting the output again left every position
	// equivalent under the comparator.
	Idempotent bool
	// Unchanged holds if the second sort left the output byte-for-byte
	// identical. Unstable strategies may reorder equivalent keys.
	Unchanged   bool
	Fingerprint hashing.Fingerprint
	Err         error
}

// Passed reports whether the run sorted correctly.
func (r Result) Passed() bool {
	return r.Err == nil && r.Sorted && r.Permutation && r.Idempotent
}

// Report collects every run of one Run call.
type Report struct {
	RunID   string
	Kind    Kind
	Order   Order
	Size    int
	Input   hashing.Fingerprint
	Results []Result
	// Agree holds if every successful run produced the same output.
	Agree bool
}

// Passed reports whether all runs passed.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}

	return len(r.Results) > 0
}

type runOptions struct {
	tracer     trace.Tracer
	corpusOpts []corpus.Option
	words      []string
}

// Option configures Run.
type Option func(*runOptions)

// WithTracer records a span per strategy run.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *runOptions) {
		o.tracer = tracer
	}
}

// WithCorpusOptions is passed to corpus.Load when the config names an input.
func WithCorpusOptions(opts ...corpus.Option) Option {
	return func(o *runOptions) {
		o.corpusOpts = append(o.corpusOpts, opts...)
	}
}

// WithWords uses words as the text dataset instead of loading or
// generating one.
func WithWords(words []string) Option {
	return func(o *runOptions) {
		o.words = words
	}
}

// Run executes the configured benchmark. Verification failures are reported
// in the returned Report; an error means the benchmark itself could not run.
func Run(ctx context.Context, cfg *Config, opts ...Option) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := runOptions{tracer: noop.NewTracerProvider().Tracer(tracerName)}
	for _, opt := range opts {
		opt(&options)
	}

	runID := uuid.NewString()
	ctx = logger.WithRunId(ctx, runID)

	report := &Report{
		RunID: runID,
		Kind:  cfg.Kind,
		Order: cfg.Order,
	}

	var err error

	switch cfg.Kind {
	case KindInt:
		data := corpus.GenerateInts(cfg.Seed, cfg.Size, cfg.MaxValue)
		err = execute(ctx, cfg, &options, report, data, compare.Ordered[int](), hashing.Int[int]())
	case KindText:
		var words []string

		words, err = textDataset(ctx, cfg, &options)
		if err != nil {
			return nil, err
		}

		err = execute(ctx, cfg, &options, report, words, cfg.textComparator(), hashing.String[string]())
	}

	if err != nil {
		return nil, err
	}

	logger.Get(ctx).Info("benchmark finished",
		"kind", report.Kind,
		"size", report.Size,
		"runs", len(report.Results),
		"passed", report.Passed(),
		"agree", report.Agree)

	return report, nil
}

func textDataset(ctx context.Context, cfg *Config, options *runOptions) ([]string, error) {
	switch {
	case options.words != nil:
		return options.words, nil
	case cfg.Input != "":
		opts := slices.Clone(options.corpusOpts)
		if cfg.Size > 0 {
			opts = append(opts, corpus.WithMaxWords(cfg.Size))
		}

		return corpus.Load(ctx, cfg.Input, opts...)
	default:
		return corpus.GenerateWords(cfg.Seed, cfg.Size), nil
	}
}

// execute runs every strategy cfg.Repeat times over data.
func execute[T any](
	ctx context.Context,
	cfg *Config,
	options *runOptions,
	report *Report,
	data []T,
	cmp compare.Comparator[T],
	enc hashing.Encoder[T],
) error {
	strategies := make([]sorting.Strategy[T], 0, len(cfg.Strategies))

	for _, name := range cfg.Strategies {
		strat, err := sorting.New(name, cmp)
		if err != nil {
			return err
		}

		strategies = append(strategies, strat)
	}

	report.Size = len(data)
	report.Input = hashing.Of(data, enc)
	datasetElements.WithLabelValues(string(cfg.Kind)).Set(float64(len(data)))

	base := cow.New(data, cow.WithTraits(ownership.Slice(ownership.Value[T]())))
	defer base.Reset()

	results := stack.New(
		stack.WithName[Result]("bench-results"),
		stack.WithInitialCapacity[Result](len(strategies)*cfg.Repeat),
		stack.WithLogger[Result](logger.Get(ctx)))

	var (
		mu    sync.Mutex
		errs  commonerrors.Collection
		tasks = make([]pond.Task, 0, len(strategies)*cfg.Repeat)
	)

	pool := pond.NewPool(cfg.Workers, pond.WithContext(ctx))

	for repeat := range cfg.Repeat {
		for _, strat := range strategies {
			// Cloned here so only this goroutine touches base.
			view := base.Clone()

			tasks = append(tasks, pool.SubmitErr(func() error {
				defer view.Reset()

				res := runOne(ctx, options.tracer, strat, repeat, view, cmp, enc, report.Input)

				mu.Lock()
				defer mu.Unlock()

				return results.Push(res)
			}))
		}
	}

	for _, task := range tasks {
		if err := task.Wait(); err != nil {
			errs.Add(err)
		}
	}

	pool.StopAndWait()

	if errs.HasError() {
		return errs.GetError()
	}

	original, err := base.Get()
	if err != nil {
		return err
	}

	if !hashing.Of(original, enc).Identical(report.Input) {
		return ErrDatasetMutated
	}

	report.Results, err = collect(results)
	if err != nil {
		return err
	}

	report.Agree = agree(report.Results)

	return nil
}

func runOne[T any](
	ctx context.Context,
	tracer trace.Tracer,
	strat sorting.Strategy[T],
	repeat int,
	view *cow.Pointer[[]T],
	cmp compare.Comparator[T],
	enc hashing.Encoder[T],
	want hashing.Fingerprint,
) Result {
	ctx, span := tracer.Start(ctx, "sort "+strat.Name(),
		trace.WithAttributes(
			attribute.String("strategy", strat.Name()),
			attribute.Int("repeat", repeat)))
	defer span.End()

	res := Result{Strategy: strat.Name(), Repeat: repeat}

	defer func() {
		runsTotal.WithLabelValues(res.Strategy, res.outcome()).Inc()
		span.SetAttributes(
			attribute.Int("size", res.Size),
			attribute.Bool("passed", res.Passed()))

		if res.Err != nil {
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, res.Err.Error())
		}
	}()

	seq, err := view.Mutable()
	if err != nil {
		res.Err = err

		return res
	}

	res.Size = len(*seq)

	start := time.Now()
	err = strat.Sort(*seq, len(*seq))
	res.Duration = time.Since(start)

	runDuration.WithLabelValues(res.Strategy).Observe(res.Duration.Seconds())

	if err != nil {
		res.Err = fmt.Errorf("%s: %w", strat.Name(), err)

		return res
	}

	res.Sorted = sorting.IsSorted(*seq, cmp)
	res.Fingerprint = hashing.Of(*seq, enc)
	res.Permutation = res.Fingerprint.SameElements(want)

	first := slices.Clone(*seq)

	if err := strat.Sort(*seq, len(*seq)); err != nil {
		res.Err = fmt.Errorf("%s: second pass: %w", strat.Name(), err)

		return res
	}

	res.Idempotent = slices.EqualFunc(first, *seq, cmp.Equal)
	res.Unchanged = hashing.Of(*seq, enc).Identical(res.Fingerprint)

	logger.Get(ctx).Debug("strategy run finished",
		"strategy", res.Strategy,
		"repeat", res.Repeat,
		"duration", res.Duration,
		"sorted", res.Sorted,
		"permutation", res.Permutation,
		"idempotent", res.Idempotent)

	return res
}

// displayOrder sorts results by strategy name, then repeat.
func displayOrder() compare.Comparator[Result] {
	byName := compare.By(func(r Result) string { return r.Strategy }, compare.Text())
	byRepeat := compare.By(func(r Result) int { return r.Repeat }, compare.Ordered[int]())

	return byName.Then(byRepeat)
}

// collect drains the result stack into display order.
func collect(results *stack.Stack[Result]) ([]Result, error) {
	out := make([]Result, 0, results.Count())

	for !results.IsEmpty() {
		res, err := results.Pop()
		if err != nil {
			return nil, err
		}

		out = append(out, res)
	}

	if err := sorting.NewShellSort(displayOrder()).Sort(out, len(out)); err != nil {
		return nil, fmt.Errorf("ordering results: %w", err)
	}

	return out, nil
}

func agree(results []Result) bool {
	var first *hashing.Fingerprint

	for i := range results {
		if results[i].Err != nil {
			continue
		}

		if first == nil {
			first = &results[i].Fingerprint

			continue
		}

		if !first.Identical(results[i].Fingerprint) {
			return false
		}
	}

	return first != nil
}
