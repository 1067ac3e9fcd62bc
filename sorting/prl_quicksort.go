package sorting

import (
	"runtime"
	"sync"

	"golang.org/x/exp/constraints"
)

// ParallelQuickSort 병렬 퀵소트. pool 이 nil 이면 DefaultPool 사용
func ParallelQuickSort[T constraints.Ordered](s []T, pool *Pool) {
	if len(s) < 2 {
		return
	}
	if pool == nil {
		pool = DefaultPool()
	}
	parallelQuickSort(s, 0, len(s)-1, runtime.NumCPU(), parallelThreshold(len(s)), pool)
}

func parallelQuickSort[T constraints.Ordered](s []T, low, high, depth, threshold int, pool *Pool) {
	if low >= high {
		return
	}
	if depth <= 1 || high-low+1 <= threshold {
		quickSortRange(s, low, high)
		return
	}

	lt, gt := partition3Way(s, low, high)

	var wg sync.WaitGroup
	wg.Add(2)

	// 각 고루틴이 독립적으로 슬롯을 잡고, 못 잡으면 순차 처리
	go func() {
		defer wg.Done()
		if pool.TryAcquire() {
			defer pool.Release()
			parallelQuickSort(s, low, lt-1, depth/2, threshold, pool)
			return
		}
		quickSortRange(s, low, lt-1)
	}()

	go func() {
		defer wg.Done()
		if pool.TryAcquire() {
			defer pool.Release()
			parallelQuickSort(s, gt+1, high, depth/2, threshold, pool)
			return
		}
		quickSortRange(s, gt+1, high)
	}()

	wg.Wait()
}

// parallelThreshold 전체 크기에 따른 동적 임계값. 이 크기 이하 구간은 순차 처리
func parallelThreshold(total int) int {
	switch {
	case total < 1000:
		return total // 작은 데이터는 병렬처리 안함
	case total < 10000:
		return 300
	case total < 100000:
		return 800
	default:
		return 1500
	}
}
