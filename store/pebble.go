package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"go.uber.org/zap"

	"sortbench/bench"
	"sortbench/logging"
)

// pebbleStore 디렉터리 기반 LSM. 기록/색인을 키 접두사로 분리
type pebbleStore struct {
	db *pebble.DB
}

func openPebble(dir string, logger *zap.Logger) (*pebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{Logger: logging.NewPebbleLogger(logger)})
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble store: %w", err)
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) Save(ctx context.Context, run *bench.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	val, err := encode(run)
	if err != nil {
		return err
	}

	pk := prefixed(runPrefix, primaryKey(run))
	idKey := prefixed(idPrefix, []byte(run.ID))
	batch := s.db.NewBatch()
	defer batch.Close()

	old, err := s.get(idKey, run.ID)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return err
	case !bytes.Equal(old, pk):
		if err := batch.Delete(old, nil); err != nil {
			return err
		}
	}
	if err := batch.Set(pk, val, nil); err != nil {
		return err
	}
	if err := batch.Set(idKey, pk, nil); err != nil {
		return err
	}
	return batch.Commit(pebble.Sync)
}

// get 값 복사본. 없으면 ErrNotFound
func (s *pebbleStore) get(key []byte, id string) ([]byte, error) {
	val, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return append([]byte(nil), val...), nil
}

func (s *pebbleStore) Get(ctx context.Context, id string) (*bench.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pk, err := s.get(prefixed(idPrefix, []byte(id)), id)
	if err != nil {
		return nil, err
	}
	val, err := s.get(pk, id)
	if err != nil {
		return nil, err
	}
	return decode(val)
}

func (s *pebbleStore) List(ctx context.Context, limit int) ([]*bench.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: runPrefix,
		UpperBound: prefixEnd(runPrefix),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var runs []*bench.Run
	for iter.Last(); iter.Valid(); iter.Prev() {
		if limit > 0 && len(runs) >= limit {
			break
		}
		run, err := decode(iter.Value())
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, iter.Error()
}

func (s *pebbleStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	idKey := prefixed(idPrefix, []byte(id))
	pk, err := s.get(idKey, id)
	if err != nil {
		return err
	}

	batch := s.db.NewBatch()
	defer batch.Close()
	if err := batch.Delete(pk, nil); err != nil {
		return err
	}
	if err := batch.Delete(idKey, nil); err != nil {
		return err
	}
	return batch.Commit(pebble.Sync)
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
