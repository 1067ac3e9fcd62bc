package complexity

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sizes = []float64{10, 20, 50, 100, 200, 400, 800, 1600, 3200, 6400, 12800}

func series(f func(n float64) float64) []float64 {
	out := make([]float64, len(sizes))
	for i, n := range sizes {
		out[i] = f(n)
	}
	return out
}

func TestFitRecoversPowerLaw(t *testing.T) {
	tests := []struct {
		name  string
		f     func(n float64) float64
		slope float64
		class Class
	}{
		{"constant", func(n float64) float64 { return 1e-6 }, 0, Constant},
		{"linear", func(n float64) float64 { return 3e-9 * n }, 1, Linearithmic},
		{"quadratic", func(n float64) float64 { return 1e-10 * n * n }, 2, Quadratic},
		{"cubic", func(n float64) float64 { return 1e-12 * n * n * n }, 3, Higher},
		{"sublinear", func(n float64) float64 { return 1e-7 * math.Pow(n, 0.3) }, 0.3, Logarithmic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est, err := Fit(sizes, series(tt.f), Regression)
			require.NoError(t, err)
			assert.InDelta(t, tt.slope, est.Slope, 1e-9)
			assert.Equal(t, tt.class, est.Class)
			assert.Equal(t, len(sizes), est.Points)
		})
	}
}

func TestFitNLogN(t *testing.T) {
	est, err := Fit(sizes, series(func(n float64) float64 { return 1e-9 * n * math.Log(n) }), Regression)
	require.NoError(t, err)
	assert.Greater(t, est.Slope, 1.0)
	assert.Less(t, est.Slope, 1.5)
	assert.Equal(t, Linearithmic, est.Class)
	assert.Greater(t, est.RSquared, 0.99)
}

func TestEndpointsUsesFirstAndLast(t *testing.T) {
	// 중간 점이 튀어도 endpoints 는 영향 없음
	times := series(func(n float64) float64 { return 1e-10 * n * n })
	times[5] *= 100

	est, err := Fit(sizes, times, Endpoints)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, est.Slope, 1e-9)
	assert.Equal(t, Quadratic, est.Class)
	assert.Zero(t, est.RSquared)

	reg, err := Fit(sizes, times, Regression)
	require.NoError(t, err)
	assert.NotEqual(t, est.Slope, reg.Slope)
	assert.Less(t, reg.RSquared, 1.0)
}

func TestFitErrors(t *testing.T) {
	_, err := Fit([]float64{10}, []float64{1}, Regression)
	require.ErrorIs(t, err, ErrInsufficientData)

	_, err = Fit([]float64{10, 10}, []float64{1, 2}, Regression)
	require.ErrorIs(t, err, ErrInsufficientData)

	_, err = Fit([]float64{10, 20}, []float64{1}, Regression)
	require.Error(t, err)

	_, err = Fit([]float64{10, 20}, []float64{0, 1}, Regression)
	require.Error(t, err)

	_, err = Fit([]float64{10, 20}, []float64{1, 2}, Method("guess"))
	require.Error(t, err)

	_, err = Fit([]float64{10, 20, 10}, []float64{1, 2, 3}, Endpoints)
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestFitDurations(t *testing.T) {
	est, err := FitDurations([]int{100, 200, 400}, []time.Duration{100, 400, 1600}, "")
	require.NoError(t, err)
	assert.Equal(t, Regression, est.Method)
	assert.InDelta(t, 2.0, est.Slope, 1e-9)

	_, err = FitDurations([]int{100}, []time.Duration{1, 2}, Regression)
	require.Error(t, err)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		slope float64
		want  Class
	}{
		{0, Constant},
		{0.09, Constant},
		{-0.09, Constant},
		{-0.1, Indeterminate},
		{-3, Indeterminate},
		{0.1, Logarithmic},
		{0.49, Logarithmic},
		{0.5, Linearithmic},
		{1.49, Linearithmic},
		{1.5, Higher},
		{1.51, Quadratic},
		{2.49, Quadratic},
		{2.5, Higher},
		{math.NaN(), Indeterminate},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.slope), "slope %v", tt.slope)
	}
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "O(n^2) - Quadratic complexity", Quadratic.String())
	text, err := Linearithmic.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "O(n log n) - Linearithmic complexity", string(text))
	assert.Equal(t, "Indeterminate complexity", Indeterminate.String())
}
