package sorting

import "golang.org/x/exp/constraints"

// MergeSort 하향식 머지소트 (제자리 결과, 보조 버퍼 1개)
// 같은 값은 왼쪽 원소가 먼저 오므로 안정 정렬이다.
func MergeSort[T constraints.Ordered](s []T) {
	if len(s) < 2 {
		return
	}
	buf := make([]T, len(s))
	mergeSort(s, buf)
}

func mergeSort[T constraints.Ordered](s, buf []T) {
	if len(s) <= 1 {
		return
	}

	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid])
	mergeSort(s[mid:], buf[mid:])

	// 두 반쪽을 버퍼로 옮긴 뒤 원래 자리로 병합
	copy(buf, s)
	merge(s, buf[:mid], buf[mid:])
}

// merge left, right를 dst에 병합. len(dst) == len(left)+len(right)
func merge[T constraints.Ordered](dst, left, right []T) {
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

	// 남은 요소들 한 번에 복사
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
