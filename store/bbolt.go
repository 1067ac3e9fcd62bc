package store

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"sortbench/bench"
)

var (
	runsBucket = []byte("runs")
	idsBucket  = []byte("ids")
)

// boltStore 단일 파일. 기록/색인을 버킷으로 분리
type boltStore struct {
	db *bbolt.DB
}

func openBolt(path string) (*boltStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(runsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(idsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}

	return &boltStore{db: db}, nil
}

func (s *boltStore) Save(ctx context.Context, run *bench.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	val, err := encode(run)
	if err != nil {
		return err
	}

	pk := primaryKey(run)
	return s.db.Update(func(tx *bbolt.Tx) error {
		runs, ids := tx.Bucket(runsBucket), tx.Bucket(idsBucket)
		// 같은 ID 재저장: 시작 시각이 바뀌었으면 이전 기록 제거
		if old := ids.Get([]byte(run.ID)); old != nil && !bytes.Equal(old, pk) {
			if err := runs.Delete(append([]byte(nil), old...)); err != nil {
				return err
			}
		}
		if err := runs.Put(pk, val); err != nil {
			return err
		}
		return ids.Put([]byte(run.ID), pk)
	})
}

func (s *boltStore) Get(ctx context.Context, id string) (*bench.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var run *bench.Run
	err := s.db.View(func(tx *bbolt.Tx) error {
		pk := tx.Bucket(idsBucket).Get([]byte(id))
		if pk == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		val := tx.Bucket(runsBucket).Get(pk)
		if val == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}

		var err error
		run, err = decode(val)
		return err
	})
	return run, err
}

func (s *boltStore) List(ctx context.Context, limit int) ([]*bench.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var runs []*bench.Run
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(runsBucket).Cursor()
		// bbolt 커서는 처음/끝에서 nil 을 돌려주므로 별도 카운터 없이 역순 순회
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(runs) >= limit {
				break
			}
			run, err := decode(v)
			if err != nil {
				return err
			}
			runs = append(runs, run)
		}
		return nil
	})
	return runs, err
}

func (s *boltStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		ids := tx.Bucket(idsBucket)
		pk := ids.Get([]byte(id))
		if pk == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if err := tx.Bucket(runsBucket).Delete(append([]byte(nil), pk...)); err != nil {
			return err
		}
		return ids.Delete([]byte(id))
	})
}

func (s *boltStore) Close() error {
	return s.db.Close()
}
