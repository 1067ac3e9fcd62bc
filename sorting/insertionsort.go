package sorting

import "golang.org/x/exp/constraints"

// InsertionSort 삽입정렬. 이미 정렬된 입력은 O(n), 그 외 O(n^2)
func InsertionSort[T constraints.Ordered](s []T) {
	insertionSortRange(s, 0, len(s)-1)
}

// insertionSortRange s[low..high] 구간만 정렬 (퀵소트의 작은 구간용)
func insertionSortRange[T constraints.Ordered](s []T, low, high int) {
	for i := low + 1; i <= high; i++ {
		key := s[i]
		j := i - 1

		for j >= low && s[j] > key {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}
