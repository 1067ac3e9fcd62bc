package sorting

import (
	"runtime"
	"sync"

	"golang.org/x/exp/constraints"
)

// ParallelMergeSort 병렬 머지소트. pool 이 nil 이면 DefaultPool 사용
func ParallelMergeSort[T constraints.Ordered](s []T, pool *Pool) {
	if len(s) < 2 {
		return
	}
	if pool == nil {
		pool = DefaultPool()
	}
	buf := make([]T, len(s))
	parallelMergeSort(s, buf, runtime.NumCPU(), parallelThreshold(len(s)), pool)
}

func parallelMergeSort[T constraints.Ordered](s, buf []T, depth, threshold int, pool *Pool) {
	if len(s) <= 1 {
		return
	}
	if depth <= 1 || len(s) <= threshold {
		mergeSort(s, buf)
		return
	}

	mid := len(s) / 2

	// 반쪽마다 버퍼 구간이 겹치지 않으므로 고루틴 간 공유 없음
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if pool.TryAcquire() {
			defer pool.Release()
			parallelMergeSort(s[:mid], buf[:mid], depth/2, threshold, pool)
			return
		}
		mergeSort(s[:mid], buf[:mid])
	}()

	go func() {
		defer wg.Done()
		if pool.TryAcquire() {
			defer pool.Release()
			parallelMergeSort(s[mid:], buf[mid:], depth/2, threshold, pool)
			return
		}
		mergeSort(s[mid:], buf[mid:])
	}()

	wg.Wait()

	copy(buf, s)
	merge(s, buf[:mid], buf[mid:])
}
