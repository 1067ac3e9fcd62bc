package sorting

import (
	"runtime"
	"sync"
)

// Pool 병렬 정렬용 워커 풀
// * 채널 통한 세마포 구현. 슬롯이 없으면 호출자는 순차 처리로 폴백한다.
type Pool struct {
	slots chan struct{}
}

// NewPool capacity 개의 슬롯을 가진 풀. capacity < 1 이면 CPU 코어 수
func NewPool(capacity int) *Pool {
	if capacity < 1 {
		capacity = runtime.NumCPU()
	}
	return &Pool{slots: make(chan struct{}, capacity)}
}

var (
	defaultPool     *Pool
	defaultPoolOnce sync.Once
)

// DefaultPool 프로세스 전역 풀 (재사용을 위해)
func DefaultPool() *Pool {
	defaultPoolOnce.Do(func() {
		defaultPool = NewPool(runtime.NumCPU())
	})
	return defaultPool
}

// TryAcquire 슬롯 획득 시도. 블로킹하지 않음
func (p *Pool) TryAcquire() bool {
	select {
	case p.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

// Release 획득한 슬롯 반환
func (p *Pool) Release() {
	<-p.slots
}

// Status 사용 중인 슬롯 수와 용량
func (p *Pool) Status() (used int, capacity int) {
	return len(p.slots), cap(p.slots)
}

// Reset 남아있는 슬롯 강제 정리 (패닉 등으로 반환되지 못한 경우)
func (p *Pool) Reset() {
	for {
		select {
		case <-p.slots:
		default:
			return
		}
	}
}
