package sorting

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// BuiltinSort 런타임 내장 정렬 (pdqsort). 정렬/역정렬된 패턴을 감지하는 적응형 정렬
func BuiltinSort[T constraints.Ordered](s []T) {
	slices.Sort(s)
}
