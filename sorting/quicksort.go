package sorting

import "golang.org/x/exp/constraints"

// insertionCutoff 이 크기 이하 구간은 삽입정렬로 처리
const insertionCutoff = 16

// QuickSort 하이브리드 퀵소트 (3-way 파티셔닝 + 작은 구간 삽입정렬)
func QuickSort[T constraints.Ordered](s []T) {
	if len(s) < 2 {
		return
	}
	quickSortRange(s, 0, len(s)-1)
}

func quickSortRange[T constraints.Ordered](s []T, low, high int) {
	for low < high {
		if high-low+1 <= insertionCutoff {
			insertionSortRange(s, low, high)
			return
		}

		lt, gt := partition3Way(s, low, high)

		// 더 작은 쪽만 재귀, 큰 쪽은 루프로 (스택 깊이 O(log n))
		if lt-low < high-gt {
			quickSortRange(s, low, lt-1)
			low = gt + 1
		} else {
			quickSortRange(s, gt+1, high)
			high = lt - 1
		}
	}
}

// partition3Way 3-way 파티셔닝. 반환 후 s[lt..gt] == pivot
func partition3Way[T constraints.Ordered](s []T, low, high int) (int, int) {
	medianOfThree(s, low, low+(high-low)/2, high)
	pivot := s[low]

	lt := low      // s[low..lt-1] < pivot
	i := low + 1   // s[lt..i-1] == pivot
	gt := high + 1 // s[gt..high] > pivot

	for i < gt {
		switch {
		case s[i] < pivot:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case s[i] > pivot:
			gt--
			s[i], s[gt] = s[gt], s[i]
		default:
			i++
		}
	}

	return lt, gt - 1
}

// medianOfThree 세 값의 중앙값을 s[a]로 옮김
func medianOfThree[T constraints.Ordered](s []T, a, b, c int) {
	if s[a] > s[b] {
		s[a], s[b] = s[b], s[a]
	}
	if s[b] > s[c] {
		s[b], s[c] = s[c], s[b]
	}
	if s[a] > s[b] {
		s[a], s[b] = s[b], s[a]
	}
	s[a], s[b] = s[b], s[a]
}
