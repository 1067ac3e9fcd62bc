package sorting

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm 등록되지 않은 알고리즘 키
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// 알고리즘 키
const (
	KeyMerge         = "merge"
	KeyInsertion     = "insertion"
	KeyBuiltin       = "builtin"
	KeyQuick         = "quick"
	KeyParallelQuick = "parallel-quick"
	KeyParallelMerge = "parallel-merge"
)

// Algorithm 카탈로그 항목
type Algorithm struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Expected string `json:"expected"` // 평균 시간 복잡도
	Parallel bool   `json:"parallel"`
}

var catalog = []Algorithm{
	{Key: KeyMerge, Name: "Merge Sort", Expected: "O(n log n)"},
	{Key: KeyInsertion, Name: "Insertion Sort", Expected: "O(n^2)"},
	{Key: KeyBuiltin, Name: "Builtin Sort", Expected: "O(n log n)"},
	{Key: KeyQuick, Name: "Quick Sort", Expected: "O(n log n)"},
	{Key: KeyParallelQuick, Name: "Parallel Quick Sort", Expected: "O(n log n)", Parallel: true},
	{Key: KeyParallelMerge, Name: "Parallel Merge Sort", Expected: "O(n log n)", Parallel: true},
}

// Catalog 지원하는 모든 알고리즘 (복사본)
func Catalog() []Algorithm {
	out := make([]Algorithm, len(catalog))
	copy(out, catalog)
	return out
}

// DefaultKeys 기본 비교 대상 세 가지
func DefaultKeys() []string {
	return []string{KeyMerge, KeyInsertion, KeyBuiltin}
}

// Lookup 키로 카탈로그 항목 조회
func Lookup(key string) (Algorithm, error) {
	for _, a := range catalog {
		if a.Key == key {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)
}

// DisplayName 표시용 이름. 모르는 키는 그대로 반환
func DisplayName(key string) string {
	if a, err := Lookup(key); err == nil {
		return a.Name
	}
	return key
}

// Func 함수형 스타일 정렬 함수. 병렬 알고리즘은 pool 을 사용
func Func(key string, pool *Pool) (func([]int), error) {
	switch key {
	case KeyMerge:
		return MergeSort[int], nil
	case KeyInsertion:
		return InsertionSort[int], nil
	case KeyBuiltin:
		return BuiltinSort[int], nil
	case KeyQuick:
		return QuickSort[int], nil
	case KeyParallelQuick:
		return func(s []int) { ParallelQuickSort(s, pool) }, nil
	case KeyParallelMerge:
		return func(s []int) { ParallelMergeSort(s, pool) }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)
}
