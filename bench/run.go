package bench

import (
	"slices"
	"time"
)

// Style 구현 스타일
type Style string

const (
	StyleFunc   Style = "func"   // 자유 함수
	StyleObject Style = "object" // Sorter 인터페이스 + Handler
)

// Label 플롯 범례용 이름
func (s Style) Label() string {
	switch s {
	case StyleFunc:
		return "sort_func"
	case StyleObject:
		return "sort_classes"
	}
	return string(s)
}

// Title 테이블 헤더용 이름
func (s Style) Title() string {
	switch s {
	case StyleFunc:
		return "Sort Function"
	case StyleObject:
		return "Sort Classes"
	}
	return string(s)
}

// ParseStyles 문자열 목록을 Style 로 변환
func ParseStyles(names []string) []Style {
	out := make([]Style, len(names))
	for i, n := range names {
		out[i] = Style(n)
	}
	return out
}

// Measurement 알고리즘 x 스타일 x 크기 한 칸의 측정값
type Measurement struct {
	Algorithm  string        `json:"algorithm"`
	Style      Style         `json:"style"`
	Size       int           `json:"size"`
	Best       time.Duration `json:"best_ns"`
	AllocBytes uint64        `json:"alloc_bytes"`
}

// Run 한 번의 벤치마크 실행 결과
type Run struct {
	ID         string        `json:"id"`
	StartedAt  time.Time     `json:"started_at"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	GoVersion  string        `json:"go_version"`
	NumCPU     int           `json:"num_cpu"`
	Sizes      []int         `json:"sizes"`
	Number     int           `json:"number"`
	Repeat     int           `json:"repeat"`
	Seed       int64         `json:"seed"`
	Input      string        `json:"input,omitempty"`
	Algorithms []string      `json:"algorithms"`
	Styles     []Style       `json:"styles"`

	Measurements []Measurement `json:"measurements"`
}

// Lookup 특정 칸의 측정값
func (r *Run) Lookup(alg string, style Style, size int) (Measurement, bool) {
	for _, m := range r.Measurements {
		if m.Algorithm == alg && m.Style == style && m.Size == size {
			return m, true
		}
	}
	return Measurement{}, false
}

// Times 크기 순서대로의 측정 시간. 빠진 칸이 있으면 ok=false
func (r *Run) Times(alg string, style Style) ([]time.Duration, bool) {
	times := make([]time.Duration, 0, len(r.Sizes))
	for _, size := range r.Sizes {
		m, ok := r.Lookup(alg, style, size)
		if !ok {
			return nil, false
		}
		times = append(times, m.Best)
	}
	return times, true
}

// HasStyle 실행에 스타일이 포함됐는지
func (r *Run) HasStyle(style Style) bool {
	return slices.Contains(r.Styles, style)
}
