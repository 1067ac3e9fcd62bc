package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureTimeCallsNumberTimesRepeat(t *testing.T) {
	calls := 0
	_, err := MeasureTime(func() { calls++ }, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, calls)
}

func TestMeasureTimeReturnsPerCallBest(t *testing.T) {
	// 첫 시행만 느리게: 최소값은 빠른 시행 기준
	trial := 0
	calls := 0
	best, err := MeasureTime(func() {
		if trial == 0 {
			time.Sleep(2 * time.Millisecond)
		}
		calls++
		if calls%2 == 0 {
			trial++
		}
	}, 2, 3)
	require.NoError(t, err)
	assert.Less(t, best, time.Millisecond)
}

func TestMeasureTimeRejectsBadCounts(t *testing.T) {
	_, err := MeasureTime(func() {}, 0, 3)
	require.Error(t, err)
	_, err = MeasureTime(func() {}, 1, 0)
	require.Error(t, err)
}

func TestMeasureAlloc(t *testing.T) {
	var sink []byte
	n := MeasureAlloc(func() { sink = make([]byte, 1<<20) })
	assert.GreaterOrEqual(t, n, uint64(1<<20))
	assert.Len(t, sink, 1<<20)
}
