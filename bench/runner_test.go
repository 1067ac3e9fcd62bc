package bench

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"sortbench/sorting"
)

func smallOptions() Options {
	return Options{
		Sizes:      []int{10, 50, 100},
		Number:     2,
		Repeat:     2,
		Seed:       42,
		MinValue:   1,
		MaxValue:   1000,
		Algorithms: sorting.DefaultKeys(),
		Styles:     []Style{StyleFunc, StyleObject},
	}
}

func TestRunnerMeasuresEveryCell(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r, err := NewRunner(smallOptions(), zap.New(core))
	require.NoError(t, err)

	run, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, int64(42), run.Seed)
	assert.Len(t, run.Measurements, 3*3*2)

	for _, alg := range run.Algorithms {
		for _, style := range run.Styles {
			times, ok := run.Times(alg, style)
			require.True(t, ok, "%s/%s", alg, style)
			assert.Len(t, times, 3)
		}
	}

	m, ok := run.Lookup(sorting.KeyMerge, StyleObject, 100)
	require.True(t, ok)
	assert.Equal(t, 100, m.Size)
	assert.Positive(t, m.AllocBytes, "clone + merge buffer allocate")

	assert.NotZero(t, logs.FilterMessage("벤치마크 완료").Len())
}

func TestRunnerSeedZeroUsesClock(t *testing.T) {
	opts := smallOptions()
	opts.Seed = 0
	opts.Sizes = []int{5}
	opts.Algorithms = []string{sorting.KeyBuiltin}

	r, err := NewRunner(opts, nil)
	require.NoError(t, err)
	r.now = func() time.Time { return time.Unix(0, 777) }

	run, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(777), run.Seed)
}

func TestRunnerUsesDatasetPrefix(t *testing.T) {
	opts := smallOptions()
	opts.Sizes = []int{3, 5}
	opts.Algorithms = []string{sorting.KeyInsertion}
	opts.Dataset = []int{5, 4, 3, 2, 1}
	opts.DatasetName = "fixed.txt"

	r, err := NewRunner(opts, nil)
	require.NoError(t, err)
	run, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fixed.txt", run.Input)

	_, ok := run.Lookup(sorting.KeyInsertion, StyleFunc, 5)
	assert.True(t, ok)

	opts.Sizes = []int{6}
	_, err = NewRunner(opts, nil)
	require.Error(t, err)
}

func TestRunnerFullIntValueRange(t *testing.T) {
	opts := smallOptions()
	opts.MinValue = math.MinInt
	opts.MaxValue = math.MaxInt

	r, err := NewRunner(opts, nil)
	require.NoError(t, err)
	run, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, run.Measurements, len(opts.Sizes)*len(opts.Algorithms)*len(opts.Styles))
}

func TestRunnerCancelled(t *testing.T) {
	r, err := NewRunner(smallOptions(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"no sizes", func(o *Options) { o.Sizes = nil }},
		{"zero size", func(o *Options) { o.Sizes = []int{0} }},
		{"duplicate", func(o *Options) { o.Sizes = []int{10, 10} }},
		{"number", func(o *Options) { o.Number = 0 }},
		{"range", func(o *Options) { o.MinValue = 5; o.MaxValue = 1 }},
		{"no algorithms", func(o *Options) { o.Algorithms = nil }},
		{"unknown algorithm", func(o *Options) { o.Algorithms = []string{"bogo"} }},
		{"no styles", func(o *Options) { o.Styles = nil }},
		{"unknown style", func(o *Options) { o.Styles = []Style{"oop"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := smallOptions()
			tt.mutate(&opts)
			assert.Error(t, opts.Validate())
		})
	}
}

func TestCompare(t *testing.T) {
	run := &Run{
		Sizes:      []int{10, 20},
		Algorithms: []string{"merge"},
		Styles:     []Style{StyleFunc, StyleObject},
		Measurements: []Measurement{
			{Algorithm: "merge", Style: StyleFunc, Size: 10, Best: 150},
			{Algorithm: "merge", Style: StyleObject, Size: 10, Best: 100},
			{Algorithm: "merge", Style: StyleFunc, Size: 20, Best: 50},
			{Algorithm: "merge", Style: StyleObject, Size: 20, Best: 0},
		},
	}

	got := Compare(run)
	require.Len(t, got, 2)

	assert.True(t, got[0].Comparable)
	assert.InDelta(t, 50.0, got[0].PercentIncrease, 1e-9)
	assert.InDelta(t, 1.5, got[0].Speedup, 1e-9)
	assert.Equal(t, time.Duration(50), got[0].Difference)

	assert.False(t, got[1].Comparable)
	assert.Equal(t, time.Duration(50), got[1].Difference)

	run.Styles = []Style{StyleFunc}
	assert.Nil(t, Compare(run))
}

func TestStyleNames(t *testing.T) {
	assert.Equal(t, "sort_func", StyleFunc.Label())
	assert.Equal(t, "sort_classes", StyleObject.Label())
	assert.Equal(t, "Sort Function", StyleFunc.Title())
	assert.Equal(t, "Sort Classes", StyleObject.Title())
	assert.Equal(t, []Style{StyleFunc, StyleObject}, ParseStyles([]string{"func", "object"}))
}
