package sorting

import (
	"fmt"
	"slices"
)

// Sorter 객체형 스타일의 정렬 인터페이스
type Sorter interface {
	Name() string
	Sort(data []int)
}

// MergeSorter 머지소트 (메서드 재귀)
type MergeSorter struct{}

func (MergeSorter) Name() string { return "Merge Sort" }

func (m MergeSorter) Sort(data []int) {
	if len(data) < 2 {
		return
	}
	m.sort(data, make([]int, len(data)))
}

func (m MergeSorter) sort(data, buf []int) {
	if len(data) <= 1 {
		return
	}

	mid := len(data) / 2
	m.sort(data[:mid], buf[:mid])
	m.sort(data[mid:], buf[mid:])

	copy(buf, data)
	m.merge(data, buf[:mid], buf[mid:])
}

func (MergeSorter) merge(dst, left, right []int) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		dst[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		dst[k] = right[j]
		j++
		k++
	}
}

// InsertionSorter 삽입정렬
type InsertionSorter struct{}

func (InsertionSorter) Name() string { return "Insertion Sort" }

func (InsertionSorter) Sort(data []int) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// BuiltinSorter 내장 정렬
type BuiltinSorter struct{}

func (BuiltinSorter) Name() string { return "Builtin Sort" }

func (BuiltinSorter) Sort(data []int) { slices.Sort(data) }

// QuickSorter 하이브리드 퀵소트
type QuickSorter struct{}

func (QuickSorter) Name() string { return "Quick Sort" }

func (q QuickSorter) Sort(data []int) {
	for len(data) > insertionCutoff {
		lt, gt := q.partition(data)
		// 작은 쪽만 재귀
		if lt < len(data)-gt {
			q.Sort(data[:lt])
			data = data[gt:]
		} else {
			q.Sort(data[gt:])
			data = data[:lt]
		}
	}
	InsertionSorter{}.Sort(data)
}

// partition 중앙값 피벗으로 3분할. data[lt:gt] 가 피벗과 같은 구간
func (QuickSorter) partition(data []int) (lt, gt int) {
	a, b, c := data[0], data[len(data)/2], data[len(data)-1]
	pivot := max(min(a, b), min(max(a, b), c))

	lt, i, gt := 0, 0, len(data)
	for i < gt {
		switch {
		case data[i] < pivot:
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
		case data[i] > pivot:
			gt--
			data[i], data[gt] = data[gt], data[i]
		default:
			i++
		}
	}
	return lt, gt
}

// ParallelQuickSorter 병렬 퀵소트
type ParallelQuickSorter struct {
	Pool *Pool
}

func (ParallelQuickSorter) Name() string { return "Parallel Quick Sort" }

func (p ParallelQuickSorter) Sort(data []int) { ParallelQuickSort(data, p.Pool) }

// ParallelMergeSorter 병렬 머지소트
type ParallelMergeSorter struct {
	Pool *Pool
}

func (ParallelMergeSorter) Name() string { return "Parallel Merge Sort" }

func (p ParallelMergeSorter) Sort(data []int) { ParallelMergeSort(data, p.Pool) }

// Handler 알고리즘 키 -> Sorter 레지스트리
type Handler struct {
	sorters map[string]Sorter
}

// NewHandler 카탈로그의 모든 알고리즘을 등록한 핸들러
func NewHandler(pool *Pool) *Handler {
	h := &Handler{sorters: make(map[string]Sorter, len(catalog))}
	h.Register(KeyMerge, MergeSorter{})
	h.Register(KeyInsertion, InsertionSorter{})
	h.Register(KeyBuiltin, BuiltinSorter{})
	h.Register(KeyQuick, QuickSorter{})
	h.Register(KeyParallelQuick, ParallelQuickSorter{Pool: pool})
	h.Register(KeyParallelMerge, ParallelMergeSorter{Pool: pool})
	return h
}

// Register key 에 sorter 등록 (기존 항목 교체)
func (h *Handler) Register(key string, s Sorter) {
	h.sorters[key] = s
}

// Sorter 등록된 정렬기 조회
func (h *Handler) Sorter(key string) (Sorter, error) {
	s, ok := h.sorters[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)
	}
	return s, nil
}

// Perform data 를 복제해서 정렬한 결과를 반환. 입력은 변경하지 않음
func (h *Handler) Perform(key string, data []int) ([]int, error) {
	s, err := h.Sorter(key)
	if err != nil {
		return nil, err
	}
	out := slices.Clone(data)
	s.Sort(out)
	return out, nil
}
