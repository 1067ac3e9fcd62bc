package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"

	"sortbench/bench"
	"sortbench/logging"
)

// badgerStore 디렉터리 기반 LSM. 기록/색인을 키 접두사로 분리
type badgerStore struct {
	db *badger.DB
}

func openBadger(dir string, logger *zap.Logger) (*badgerStore, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(logging.NewBadgerLogger(logger)).
		WithMemTableSize(16 << 20)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}
	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Save(ctx context.Context, run *bench.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	val, err := encode(run)
	if err != nil {
		return err
	}

	pk := prefixed(runPrefix, primaryKey(run))
	return s.db.Update(func(txn *badger.Txn) error {
		old, err := s.lookup(txn, run.ID)
		switch {
		case errors.Is(err, ErrNotFound):
		case err != nil:
			return err
		case !bytes.Equal(old, pk):
			if err := txn.Delete(old); err != nil {
				return err
			}
		}
		if err := txn.Set(pk, val); err != nil {
			return err
		}
		return txn.Set(prefixed(idPrefix, []byte(run.ID)), pk)
	})
}

func (s *badgerStore) Get(ctx context.Context, id string) (*bench.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var run *bench.Run
	err := s.db.View(func(txn *badger.Txn) error {
		pk, err := s.lookup(txn, id)
		if err != nil {
			return err
		}
		item, err := txn.Get(pk)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			run, err = decode(val)
			return err
		})
	})
	return run, err
}

func (s *badgerStore) lookup(txn *badger.Txn, id string) ([]byte, error) {
	item, err := txn.Get(prefixed(idPrefix, []byte(id)))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (s *badgerStore) List(ctx context.Context, limit int) ([]*bench.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var runs []*bench.Run
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = runPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		// 역방향은 접두사 뒤 0xFF 부터 시작해야 마지막 키에 닿음
		for it.Seek(append(append([]byte(nil), runPrefix...), 0xFF)); it.ValidForPrefix(runPrefix); it.Next() {
			if limit > 0 && len(runs) >= limit {
				break
			}
			err := it.Item().Value(func(val []byte) error {
				run, err := decode(val)
				if err != nil {
					return err
				}
				runs = append(runs, run)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return runs, err
}

func (s *badgerStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		pk, err := s.lookup(txn, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(pk); err != nil {
			return err
		}
		return txn.Delete(prefixed(idPrefix, []byte(id)))
	})
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}
