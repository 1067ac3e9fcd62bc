// Package report 실행 결과를 테이블, 파일, 차트로 변환
package report

import (
	"sortbench/bench"
	"sortbench/complexity"
)

// EstimateEntry 알고리즘 x 스타일의 복잡도 추정. 실패하면 Error 만 채움
type EstimateEntry struct {
	Algorithm string               `json:"algorithm"`
	Style     bench.Style          `json:"style"`
	Estimate  *complexity.Estimate `json:"estimate,omitempty"`
	Error     string               `json:"error,omitempty"`
}

// Verdict 테이블 표시용 한 줄
func (e EstimateEntry) Verdict() string {
	if e.Estimate == nil {
		return "n/a (" + e.Error + ")"
	}
	return e.Estimate.Class.String()
}

// Analysis 실행 결과 + 비교 + 추정
type Analysis struct {
	Run         *bench.Run         `json:"run"`
	Method      complexity.Method  `json:"method"`
	Comparisons []bench.Comparison `json:"comparisons,omitempty"`
	Estimates   []EstimateEntry    `json:"estimates"`
}

// Analyze 비교표와 복잡도 추정 계산
func Analyze(run *bench.Run, method complexity.Method) *Analysis {
	a := &Analysis{
		Run:         run,
		Method:      method,
		Comparisons: bench.Compare(run),
	}

	for _, alg := range run.Algorithms {
		for _, style := range run.Styles {
			entry := EstimateEntry{Algorithm: alg, Style: style}

			times, ok := run.Times(alg, style)
			if !ok {
				entry.Error = "incomplete measurements"
				a.Estimates = append(a.Estimates, entry)
				continue
			}

			est, err := complexity.FitDurations(run.Sizes, times, method)
			if err != nil {
				entry.Error = err.Error()
			} else {
				entry.Estimate = &est
			}
			a.Estimates = append(a.Estimates, entry)
		}
	}
	return a
}

// Estimate 특정 칸의 추정
func (a *Analysis) Estimate(alg string, style bench.Style) (EstimateEntry, bool) {
	for _, e := range a.Estimates {
		if e.Algorithm == alg && e.Style == style {
			return e, true
		}
	}
	return EstimateEntry{}, false
}

// comparisons 한 알고리즘의 비교 행
func (a *Analysis) comparisons(alg string) []bench.Comparison {
	var out []bench.Comparison
	for _, c := range a.Comparisons {
		if c.Algorithm == alg {
			out = append(out, c)
		}
	}
	return out
}
