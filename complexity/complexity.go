// Package complexity ln(시간)-ln(크기) 기울기로 정렬 알고리즘의 증가 차수를 추정
package complexity

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientData 두 점 미만이거나 크기가 모두 같음
var ErrInsufficientData = errors.New("insufficient data for complexity estimate")

// Method 기울기 계산 방식
type Method string

const (
	// Regression 모든 점에 대한 최소제곱 회귀
	Regression Method = "regression"
	// Endpoints 첫 점과 마지막 점만 사용
	Endpoints Method = "endpoints"
)

// Class 복잡도 등급
type Class int

const (
	Constant Class = iota
	Logarithmic
	Linearithmic
	Quadratic
	Higher
	Indeterminate
)

func (c Class) String() string {
	switch c {
	case Constant:
		return "O(1) - Constant complexity"
	case Logarithmic:
		return "O(log n) - Logarithmic complexity"
	case Linearithmic:
		return "O(n log n) - Linearithmic complexity"
	case Quadratic:
		return "O(n^2) - Quadratic complexity"
	case Higher:
		return "Higher complexity"
	}
	return "Indeterminate complexity"
}

// MarshalText JSON 리포트에 문자열로 기록
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Classify 기울기 -> 등급. 위에서부터 처음 맞는 규칙
func Classify(slope float64) Class {
	switch {
	case math.IsNaN(slope):
		return Indeterminate
	case math.Abs(slope) < 0.1:
		return Constant
	case slope <= -0.1:
		// 크기가 커질수록 빨라짐: 측정 잡음
		return Indeterminate
	case slope < 0.5:
		return Logarithmic
	case slope < 1.5:
		return Linearithmic
	case math.Abs(slope-2) < 0.5:
		return Quadratic
	}
	return Higher
}

// Estimate 추정 결과
type Estimate struct {
	Method    Method  `json:"method"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	// 회귀의 결정계수. endpoints 방식이거나 정의되지 않으면 0
	RSquared float64 `json:"r_squared"`
	Points   int     `json:"points"`
	Class    Class   `json:"class"`
}

// FitDurations 측정 시간으로 추정
func FitDurations(sizes []int, times []time.Duration, method Method) (Estimate, error) {
	if len(sizes) != len(times) {
		return Estimate{}, fmt.Errorf("sizes and times differ in length (%d vs %d)", len(sizes), len(times))
	}
	x := make([]float64, len(sizes))
	y := make([]float64, len(times))
	for i := range sizes {
		x[i] = float64(sizes[i])
		y[i] = times[i].Seconds()
	}
	return Fit(x, y, method)
}

// Fit ln(y) = intercept + slope*ln(x) 적합
func Fit(sizes, times []float64, method Method) (Estimate, error) {
	if len(sizes) != len(times) {
		return Estimate{}, fmt.Errorf("sizes and times differ in length (%d vs %d)", len(sizes), len(times))
	}
	if len(sizes) < 2 {
		return Estimate{}, fmt.Errorf("%w: %d point(s)", ErrInsufficientData, len(sizes))
	}

	lx := make([]float64, len(sizes))
	ly := make([]float64, len(times))
	distinct := false
	for i := range sizes {
		if sizes[i] <= 0 || times[i] <= 0 {
			return Estimate{}, fmt.Errorf("non-positive point (size %g, time %g)", sizes[i], times[i])
		}
		lx[i] = math.Log(sizes[i])
		ly[i] = math.Log(times[i])
		if sizes[i] != sizes[0] {
			distinct = true
		}
	}
	if !distinct {
		return Estimate{}, fmt.Errorf("%w: all sizes equal", ErrInsufficientData)
	}

	est := Estimate{Method: method, Points: len(sizes)}

	switch method {
	case Regression, "":
		est.Method = Regression
		est.Intercept, est.Slope = stat.LinearRegression(lx, ly, nil, false)
		if r2 := stat.RSquared(lx, ly, nil, est.Intercept, est.Slope); !math.IsNaN(r2) {
			est.RSquared = r2
		}
	case Endpoints:
		last := len(lx) - 1
		if lx[last] == lx[0] {
			return Estimate{}, fmt.Errorf("%w: first and last sizes equal", ErrInsufficientData)
		}
		est.Slope = (ly[last] - ly[0]) / (lx[last] - lx[0])
		est.Intercept = ly[0] - est.Slope*lx[0]
	default:
		return Estimate{}, fmt.Errorf("unknown method %q", method)
	}

	est.Class = Classify(est.Slope)
	return est, nil
}
