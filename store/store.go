// Package store 벤치마크 실행 기록 저장소 (bbolt / badger / pebble)
package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"sortbench/bench"
	"sortbench/logging"
)

// ErrNotFound 저장되지 않은 실행 ID
var ErrNotFound = errors.New("run not found")

// 백엔드 이름
const (
	BackendNone   = "none"
	BackendBbolt  = "bbolt"
	BackendBadger = "badger"
	BackendPebble = "pebble"
)

// Store 실행 기록 저장소
type Store interface {
	Save(ctx context.Context, run *bench.Run) error
	Get(ctx context.Context, id string) (*bench.Run, error)
	// List 최신순. limit <= 0 이면 전부
	List(ctx context.Context, limit int) ([]*bench.Run, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// Open backend 종류에 맞는 저장소 열기
func Open(backend, path string, logger *zap.Logger) (Store, error) {
	logger = logging.OrNop(logger)

	if backend == BackendNone || backend == "" {
		return discard{}, nil
	}
	if path == "" {
		return nil, fmt.Errorf("store path required for backend %q", backend)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	logger.Debug("저장소 열기", zap.String("backend", backend), zap.String("path", path))

	switch backend {
	case BackendBbolt:
		return openBolt(path)
	case BackendBadger:
		return openBadger(path, logger)
	case BackendPebble:
		return openPebble(path, logger)
	}
	return nil, fmt.Errorf("unknown store backend %q", backend)
}

// 키 구성
//   - 기록: 8바이트 빅엔디언 시작시각(unix nano) + ID  => 순회 순서 = 시간 순서
//   - 색인: ID -> 기록 키
var (
	runPrefix = []byte("run/")
	idPrefix  = []byte("id/")
)

func primaryKey(run *bench.Run) []byte {
	key := make([]byte, 8, 8+len(run.ID))
	binary.BigEndian.PutUint64(key, uint64(run.StartedAt.UnixNano()))
	return append(key, run.ID...)
}

func prefixed(prefix, key []byte) []byte {
	out := make([]byte, 0, len(prefix)+len(key))
	out = append(out, prefix...)
	return append(out, key...)
}

// prefixEnd prefix 로 시작하는 모든 키보다 큰 최소 키
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func encode(run *bench.Run) ([]byte, error) {
	if run.ID == "" {
		return nil, errors.New("run has no id")
	}
	data, err := json.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("failed to encode run %s: %w", run.ID, err)
	}
	return data, nil
}

func decode(data []byte) (*bench.Run, error) {
	var run bench.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to decode run: %w", err)
	}
	return &run, nil
}

// DiskUsage 파일 또는 디렉터리 전체 크기
func DiskUsage(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}

// discard backend "none": 아무것도 저장하지 않음
type discard struct{}

func (discard) Save(ctx context.Context, _ *bench.Run) error { return ctx.Err() }

func (discard) Get(_ context.Context, id string) (*bench.Run, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (discard) List(ctx context.Context, _ int) ([]*bench.Run, error) { return nil, ctx.Err() }

func (discard) Delete(_ context.Context, id string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (discard) Close() error { return nil }
