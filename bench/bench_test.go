package bench

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amp-labs/amp-containers/corpus"
	"github.com/amp-labs/amp-containers/logger"
	"github.com/amp-labs/amp-containers/sorting"
	"github.com/amp-labs/amp-containers/stack"
	"github.com/amp-labs/amp-containers/tests"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestRun_Ints(t *testing.T) {
	t.Parallel()

	cfg := &Config{Size: 500, Seed: 3, Kind: KindInt, MaxValue: 50, Workers: 2, Repeat: 2}

	report, err := Run(tests.GetUniqueContext(t), cfg)
	require.NoError(t, err)

	_, err = uuid.Parse(report.RunID)
	require.NoError(t, err)

	assert.True(t, report.Passed())
	assert.True(t, report.Agree)
	assert.Equal(t, 500, report.Size)
	assert.Equal(t, 500, report.Input.Count)
	require.Len(t, report.Results, len(sorting.Names())*2)

	for i, res := range report.Results {
		assert.True(t, res.Passed(), "%s #%d", res.Strategy, res.Repeat)
		assert.True(t, res.Unchanged, "ints have no distinguishable equal keys")
		assert.Equal(t, 500, res.Size)
		assert.True(t, res.Fingerprint.SameElements(report.Input))

		if i > 0 {
			prev := report.Results[i-1]
			assert.True(t, prev.Strategy < res.Strategy ||
				(prev.Strategy == res.Strategy && prev.Repeat < res.Repeat))
		}
	}
}

func TestRun_Words(t *testing.T) {
	t.Parallel()

	words := []string{"pear", "Apple", "fig", "apple", "Banana", "cherry", "file10", "file2"}

	for _, order := range []Order{OrderBytes, OrderFold, OrderNatural} {
		t.Run(string(order), func(t *testing.T) {
			t.Parallel()

			cfg := &Config{Kind: KindText, Order: order, Size: 1, Workers: 1}

			report, err := Run(t.Context(), cfg, WithWords(words))
			require.NoError(t, err)

			assert.True(t, report.Passed())
			assert.Equal(t, len(words), report.Size)
		})
	}
}

func TestRun_GeneratedWordsCaseSensitive(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Strategies:    []string{sorting.CombSort, sorting.ShellSort},
		Kind:          KindText,
		Size:          300,
		Seed:          11,
		CaseSensitive: true,
	}

	report, err := Run(t.Context(), cfg)
	require.NoError(t, err)

	// Byte order is total on strings, so every strategy yields the same output.
	assert.True(t, report.Passed())
	assert.True(t, report.Agree)
}

func TestRun_Corpus(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("kiwi apple fig Date banana ", 20)), 0o600))

	cfg := &Config{
		Strategies: []string{sorting.HeapSort},
		Kind:       KindText,
		Input:      path,
		Size:       30,
	}

	report, err := Run(t.Context(), cfg, WithCorpusOptions(corpus.WithCharset("utf-8")))
	require.NoError(t, err)

	assert.Equal(t, 30, report.Size)
	assert.True(t, report.Passed())

	cfg.Input = filepath.Join(t.TempDir(), "missing.txt")
	_, err = Run(t.Context(), cfg)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := Run(t.Context(), &Config{Size: 5, Strategies: []string{"bubble"}})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRun_Spans(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	t.Cleanup(func() { require.NoError(t, provider.Shutdown(context.Background())) })

	cfg := &Config{Size: 64, Workers: 3}

	report, err := Run(logger.WithSubsystem(t.Context(), "bench-test"), cfg,
		WithTracer(provider.Tracer("bench-test")))
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, len(report.Results))

	names := make([]string, 0, len(spans))
	for _, span := range spans {
		names = append(names, span.Name)
	}

	assert.ElementsMatch(t, []string{"sort comb", "sort heap", "sort shell"}, names)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	results := stack.New[Result]()

	for _, res := range []Result{
		{Strategy: "shell", Repeat: 0},
		{Strategy: "comb", Repeat: 1},
		{Strategy: "heap", Repeat: 0},
		{Strategy: "comb", Repeat: 0},
	} {
		require.NoError(t, results.Push(res))
	}

	out, err := collect(results)
	require.NoError(t, err)
	assert.True(t, results.IsEmpty())

	order := make([]string, 0, len(out))
	for _, res := range out {
		order = append(order, fmt.Sprintf("%s/%d", res.Strategy, res.Repeat))
	}

	assert.Equal(t, []string{"comb/0", "comb/1", "heap/0", "shell/0"}, order)

	empty, err := collect(stack.New[Result]())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAgree(t *testing.T) {
	t.Parallel()

	a := Result{Strategy: "a"}
	a.Fingerprint.Ordered = 1

	b := a
	b.Strategy = "b"

	assert.True(t, agree([]Result{a, b}))
	assert.False(t, agree(nil))

	b.Fingerprint.Ordered = 2
	assert.False(t, agree([]Result{a, b}))

	b.Err = assert.AnError
	assert.True(t, agree([]Result{a, b}))
}

func TestResult_Passed(t *testing.T) {
	t.Parallel()

	ok := Result{Sorted: true, Permutation: true, Idempotent: true}
	assert.True(t, ok.Passed())
	assert.Equal(t, outcomePass, ok.outcome())

	unsorted := ok
	unsorted.Sorted = false
	assert.False(t, unsorted.Passed())
	assert.Equal(t, outcomeFail, unsorted.outcome())

	failed := ok
	failed.Err = assert.AnError
	assert.Equal(t, outcomeError, failed.outcome())

	assert.False(t, (&Report{}).Passed())
}
