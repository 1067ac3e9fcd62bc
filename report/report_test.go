package report

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sortbench/bench"
	"sortbench/complexity"
)

// syntheticRun insertion 은 n^2, merge 는 n log n, builtin 은 한 칸 누락
func syntheticRun() *bench.Run {
	sizes := []int{100, 200, 400, 800, 1600}
	run := &bench.Run{
		ID:         "run-1",
		StartedAt:  time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
		GoVersion:  "go1.24",
		NumCPU:     8,
		Sizes:      sizes,
		Number:     10,
		Repeat:     3,
		Seed:       42,
		Algorithms: []string{"insertion", "merge", "builtin"},
		Styles:     []bench.Style{bench.StyleFunc, bench.StyleObject},
	}
	for _, n := range sizes {
		fn := float64(n)
		quad := time.Duration(fn * fn)
		nlogn := time.Duration(20 * fn * math.Log(fn))
		run.Measurements = append(run.Measurements,
			bench.Measurement{Algorithm: "insertion", Style: bench.StyleFunc, Size: n, Best: quad * 9 / 10},
			bench.Measurement{Algorithm: "insertion", Style: bench.StyleObject, Size: n, Best: quad},
			bench.Measurement{Algorithm: "merge", Style: bench.StyleFunc, Size: n, Best: nlogn, AllocBytes: uint64(8 * n)},
			bench.Measurement{Algorithm: "merge", Style: bench.StyleObject, Size: n, Best: nlogn},
			bench.Measurement{Algorithm: "builtin", Style: bench.StyleFunc, Size: n, Best: nlogn / 2},
		)
		if n != 1600 {
			run.Measurements = append(run.Measurements,
				bench.Measurement{Algorithm: "builtin", Style: bench.StyleObject, Size: n, Best: nlogn / 2})
		}
	}
	return run
}

func TestAnalyze(t *testing.T) {
	a := Analyze(syntheticRun(), complexity.Regression)

	e, ok := a.Estimate("insertion", bench.StyleFunc)
	require.True(t, ok)
	require.NotNil(t, e.Estimate)
	assert.Equal(t, complexity.Quadratic, e.Estimate.Class)
	assert.InDelta(t, 2.0, e.Estimate.Slope, 1e-6)

	e, ok = a.Estimate("merge", bench.StyleObject)
	require.True(t, ok)
	require.NotNil(t, e.Estimate)
	assert.Equal(t, complexity.Linearithmic, e.Estimate.Class)

	e, ok = a.Estimate("builtin", bench.StyleObject)
	require.True(t, ok)
	assert.Nil(t, e.Estimate)
	assert.Equal(t, "incomplete measurements", e.Error)
	assert.Contains(t, e.Verdict(), "n/a")

	_, ok = a.Estimate("quick", bench.StyleFunc)
	assert.False(t, ok)

	// builtin 은 1600 칸이 없어 4 행
	assert.Len(t, a.comparisons("insertion"), 5)
	assert.Len(t, a.comparisons("builtin"), 4)
}

func TestAnalyzeSingleSize(t *testing.T) {
	run := &bench.Run{
		Sizes:        []int{100},
		Algorithms:   []string{"merge"},
		Styles:       []bench.Style{bench.StyleFunc},
		Measurements: []bench.Measurement{{Algorithm: "merge", Style: bench.StyleFunc, Size: 100, Best: 5}},
	}
	a := Analyze(run, complexity.Regression)
	require.Len(t, a.Estimates, 1)
	assert.Nil(t, a.Estimates[0].Estimate)
	assert.Contains(t, a.Estimates[0].Error, "insufficient data")
	assert.Empty(t, a.Comparisons)
}

func TestRenderTables(t *testing.T) {
	out := RenderTables(Analyze(syntheticRun(), complexity.Regression))

	assert.Contains(t, out, "Results for Insertion Sort:")
	assert.Contains(t, out, "Results for Merge Sort:")
	assert.Contains(t, out, "Data Size")
	assert.Contains(t, out, "Sort Function")
	assert.Contains(t, out, "Sort Classes")
	assert.Contains(t, out, "Speedup Factor")
	assert.Contains(t, out, "Functional Complexity: O(n^2) - Quadratic complexity")
	assert.Contains(t, out, "Class-based Complexity: O(n log n) - Linearithmic complexity")
	assert.Contains(t, out, "-10.00%", "func is 10% faster than object for insertion")

	// builtin 객체형 1600 칸은 비어 있음
	builtin := out[strings.Index(out, "Results for Builtin Sort:"):]
	assert.Contains(t, builtin, "-")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.235s", formatDuration(1234567890*time.Nanosecond))
	assert.Equal(t, "12.346ms", formatDuration(12345678*time.Nanosecond))
	assert.Equal(t, "1.23µs", formatDuration(1234*time.Nanosecond))
	assert.Equal(t, "999ns", formatDuration(999))
	assert.Equal(t, "-1.23µs", formatDuration(-1234))
}

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), MarkdownFile)
	require.NoError(t, WriteMarkdown(path, Analyze(syntheticRun(), complexity.Endpoints)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	md := string(data)
	assert.Contains(t, md, "# 정렬 알고리즘 벤치마크 결과")
	assert.Contains(t, md, "`run-1`")
	assert.Contains(t, md, "## Merge Sort")
	assert.Contains(t, md, "| 100 |")
	assert.Contains(t, md, "800 bytes")
	assert.Contains(t, md, "endpoints")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), JSONFile)
	require.NoError(t, WriteJSON(path, Analyze(syntheticRun(), complexity.Regression)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "regression", doc["method"])
	run := doc["run"].(map[string]any)
	assert.Equal(t, "run-1", run["id"])
	assert.Contains(t, string(data), `"class": "O(n^2) - Quadratic complexity"`)
}

func TestWriterWritesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(Options{Dir: dir, Markdown: true, JSON: true, Plot: true, LogLog: true}, zap.NewNop())
	a := Analyze(syntheticRun(), complexity.Regression)

	paths, err := w.Write(context.Background(), a)
	require.NoError(t, err)

	runDir := filepath.Join(dir, "run-1")
	assert.Equal(t, runDir, w.RunDir(a))
	want := []string{
		filepath.Join(runDir, JSONFile),
		filepath.Join(runDir, MarkdownFile),
		filepath.Join(runDir, "builtin.png"),
		filepath.Join(runDir, "insertion.png"),
		filepath.Join(runDir, "merge.png"),
		filepath.Join(runDir, "styles_func.png"),
		filepath.Join(runDir, "styles_object.png"),
	}
	assert.ElementsMatch(t, want, paths)
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), p)
	}
}

func TestWriterSVGOnlyPlots(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(Options{Dir: dir, Plot: true, PlotFormat: "svg"}, nil)

	paths, err := w.Write(context.Background(), Analyze(syntheticRun(), complexity.Regression))
	require.NoError(t, err)
	require.Len(t, paths, 5)
	for _, p := range paths {
		assert.Equal(t, ".svg", filepath.Ext(p))
	}
}

func TestWriterCancelled(t *testing.T) {
	w := NewWriter(Options{Dir: t.TempDir(), Plot: true}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.Write(ctx, Analyze(syntheticRun(), complexity.Regression))
	require.ErrorIs(t, err, context.Canceled)
}

func TestPlotNoData(t *testing.T) {
	run := syntheticRun()
	err := PlotAlgorithm(filepath.Join(t.TempDir(), "x.png"), run, "quick", false)
	require.Error(t, err)
}

func TestRenderHistory(t *testing.T) {
	assert.Equal(t, "No stored runs.\n", RenderHistory(nil))

	run := syntheticRun()
	run.Elapsed = 1500 * time.Millisecond
	out := RenderHistory([]*bench.Run{run})
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "100,200,400,800,1600")
	assert.Contains(t, out, "insertion,merge,builtin")
	assert.Contains(t, out, "1.5s")
}

func TestRenderCatalog(t *testing.T) {
	out := RenderCatalog()
	assert.Contains(t, out, "parallel-merge")
	assert.Contains(t, out, "Insertion Sort")
	assert.Contains(t, out, "O(n^2)")
}

func TestRenderPretty(t *testing.T) {
	a := Analyze(syntheticRun(), complexity.Regression)

	out, err := RenderPretty(a, "notty", 120)
	require.NoError(t, err)
	assert.Contains(t, out, "정렬 알고리즘 벤치마크 결과")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "Insertion Sort")

	_, err = RenderPretty(a, "no-such-style", 80)
	assert.Error(t, err)
}

func TestChartTitles(t *testing.T) {
	assert.Equal(t, "Comparison of Merge Sort", algorithmChartTitle("merge"))
	assert.Equal(t, "Sorting Algorithm Comparison (sort_func)", styleChartTitle(bench.StyleFunc))
	assert.Equal(t, "Sorting Algorithm Comparison (sort_classes)", styleChartTitle(bench.StyleObject))
}
