package bench

import (
	"fmt"
	"runtime"
	"time"
)

// 기본 측정 횟수
const (
	DefaultNumber = 10
	DefaultRepeat = 3
)

// MeasureTime fn 을 number 번 호출하는 시행을 repeat 번 반복해서
// 가장 빠른 시행의 호출당 시간을 반환한다 (min-of-N).
func MeasureTime(fn func(), number, repeat int) (time.Duration, error) {
	if number < 1 || repeat < 1 {
		return 0, fmt.Errorf("number and repeat must be >= 1 (got %d, %d)", number, repeat)
	}

	// 측정 전 GC 로 이전 할당의 영향을 줄임
	runtime.GC()

	best := time.Duration(-1)
	for r := 0; r < repeat; r++ {
		start := time.Now()
		for i := 0; i < number; i++ {
			fn()
		}
		elapsed := time.Since(start)
		if best < 0 || elapsed < best {
			best = elapsed
		}
	}

	return best / time.Duration(number), nil
}

// MeasureAlloc fn 한 번 실행 동안 할당된 바이트 수 (TotalAlloc 차이)
func MeasureAlloc(fn func()) uint64 {
	var before, after runtime.MemStats

	runtime.GC()
	runtime.ReadMemStats(&before)
	fn()
	runtime.ReadMemStats(&after)

	return after.TotalAlloc - before.TotalAlloc
}
