package bench

import "time"

// Comparison 같은 알고리즘/크기에서 함수형 vs 객체형
type Comparison struct {
	Algorithm string        `json:"algorithm"`
	Size      int           `json:"size"`
	Func      time.Duration `json:"func_ns"`
	Object    time.Duration `json:"object_ns"`

	// object 측정값이 0 이면 비율 계산 불가 (false)
	Comparable      bool          `json:"comparable"`
	PercentIncrease float64       `json:"percent_increase"` // (func-object)/object*100
	Speedup         float64       `json:"speedup"`          // func/object
	Difference      time.Duration `json:"difference_ns"`
}

// Compare 두 스타일이 모두 측정된 실행에서 비교표 생성
func Compare(run *Run) []Comparison {
	if !run.HasStyle(StyleFunc) || !run.HasStyle(StyleObject) {
		return nil
	}

	out := make([]Comparison, 0, len(run.Algorithms)*len(run.Sizes))
	for _, alg := range run.Algorithms {
		for _, size := range run.Sizes {
			f, ok1 := run.Lookup(alg, StyleFunc, size)
			o, ok2 := run.Lookup(alg, StyleObject, size)
			if !ok1 || !ok2 {
				continue
			}

			c := Comparison{
				Algorithm:  alg,
				Size:       size,
				Func:       f.Best,
				Object:     o.Best,
				Difference: f.Best - o.Best,
			}
			if o.Best > 0 {
				c.Comparable = true
				c.PercentIncrease = float64(f.Best-o.Best) / float64(o.Best) * 100
				c.Speedup = float64(f.Best) / float64(o.Best)
			}
			out = append(out, c)
		}
	}
	return out
}
