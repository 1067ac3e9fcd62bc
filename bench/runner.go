package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sortbench/logging"
	"sortbench/sorting"
)

// Options 러너 설정
type Options struct {
	Sizes      []int
	Number     int
	Repeat     int
	Seed       int64 // 0 이면 현재 시각
	MinValue   int
	MaxValue   int
	Algorithms []string
	Styles     []Style

	// 비어 있지 않으면 난수 대신 크기별로 앞에서부터 잘라 사용
	Dataset     []int
	DatasetName string
}

// Validate 측정 전에 잡을 수 있는 오류
func (o *Options) Validate() error {
	if len(o.Sizes) == 0 {
		return errors.New("no sizes to measure")
	}
	seen := make(map[int]bool, len(o.Sizes))
	for _, s := range o.Sizes {
		if s <= 0 {
			return fmt.Errorf("size %d must be positive", s)
		}
		if seen[s] {
			return fmt.Errorf("duplicate size %d", s)
		}
		seen[s] = true
	}
	if o.Number < 1 || o.Repeat < 1 {
		return fmt.Errorf("number and repeat must be >= 1 (got %d, %d)", o.Number, o.Repeat)
	}
	if o.MinValue > o.MaxValue {
		return fmt.Errorf("min value %d exceeds max value %d", o.MinValue, o.MaxValue)
	}
	if len(o.Algorithms) == 0 {
		return errors.New("no algorithms selected")
	}
	for _, a := range o.Algorithms {
		if _, err := sorting.Lookup(a); err != nil {
			return err
		}
	}
	if len(o.Styles) == 0 {
		return errors.New("no styles selected")
	}
	for _, s := range o.Styles {
		if s != StyleFunc && s != StyleObject {
			return fmt.Errorf("unknown style %q", s)
		}
	}
	if len(o.Dataset) > 0 {
		if largest := slices.Max(o.Sizes); largest > len(o.Dataset) {
			return fmt.Errorf("dataset has %d values, size %d requested", len(o.Dataset), largest)
		}
	}
	return nil
}

// Runner 크기 x 알고리즘 x 스타일 측정 루프
type Runner struct {
	opts    Options
	pool    *sorting.Pool
	handler *sorting.Handler
	logger  *zap.Logger
	now     func() time.Time
}

// NewRunner 옵션 검증 후 러너 생성
func NewRunner(opts Options, logger *zap.Logger) (*Runner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	pool := sorting.DefaultPool()
	return &Runner{
		opts:    opts,
		pool:    pool,
		handler: sorting.NewHandler(pool),
		logger:  logging.OrNop(logger),
		now:     time.Now,
	}, nil
}

// Run 모든 조합을 측정. ctx 취소 시 측정 사이에서 중단
func (r *Runner) Run(ctx context.Context) (*Run, error) {
	seed := r.opts.Seed
	if seed == 0 {
		seed = r.now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	run := &Run{
		ID:         uuid.New().String(),
		StartedAt:  r.now().UTC(),
		GoVersion:  runtime.Version(),
		NumCPU:     runtime.NumCPU(),
		Sizes:      slices.Clone(r.opts.Sizes),
		Number:     r.opts.Number,
		Repeat:     r.opts.Repeat,
		Seed:       seed,
		Input:      r.opts.DatasetName,
		Algorithms: slices.Clone(r.opts.Algorithms),
		Styles:     slices.Clone(r.opts.Styles),
	}

	r.logger.Info("벤치마크 시작",
		zap.String("run_id", run.ID),
		zap.Ints("sizes", run.Sizes),
		zap.Strings("algorithms", run.Algorithms),
		zap.Int("number", run.Number),
		zap.Int("repeat", run.Repeat),
		zap.Int64("seed", seed))

	start := time.Now()
	for _, size := range r.opts.Sizes {
		data, err := r.dataFor(size, rng)
		if err != nil {
			return nil, err
		}

		for _, alg := range r.opts.Algorithms {
			for _, style := range r.opts.Styles {
				if err := ctx.Err(); err != nil {
					return nil, err
				}

				m, err := r.measure(alg, style, data)
				if err != nil {
					return nil, err
				}
				run.Measurements = append(run.Measurements, m)

				r.logger.Debug("측정 완료",
					zap.String("algorithm", alg),
					zap.String("style", string(style)),
					zap.Int("size", size),
					zap.Duration("best", m.Best),
					zap.Uint64("alloc_bytes", m.AllocBytes))
			}
		}
		r.logger.Info("크기 완료", zap.Int("size", size))
	}
	run.Elapsed = time.Since(start)

	r.logger.Info("벤치마크 완료", zap.String("run_id", run.ID), zap.Duration("elapsed", run.Elapsed))
	return run, nil
}

func (r *Runner) dataFor(size int, rng *rand.Rand) ([]int, error) {
	if len(r.opts.Dataset) > 0 {
		return r.opts.Dataset[:size], nil
	}
	return GenerateData(size, rng, r.opts.MinValue, r.opts.MaxValue)
}

// measure 두 스타일 모두 "복제 후 정렬" 을 같은 하니스로 측정
func (r *Runner) measure(alg string, style Style, data []int) (Measurement, error) {
	var work func()

	switch style {
	case StyleFunc:
		sortFn, err := sorting.Func(alg, r.pool)
		if err != nil {
			return Measurement{}, err
		}
		work = func() {
			sortFn(slices.Clone(data))
		}
	case StyleObject:
		if _, err := r.handler.Sorter(alg); err != nil {
			return Measurement{}, err
		}
		work = func() {
			// 키는 위에서 확인했으므로 에러 없음
			_, _ = r.handler.Perform(alg, data)
		}
	default:
		return Measurement{}, fmt.Errorf("unknown style %q", style)
	}

	best, err := MeasureTime(work, r.opts.Number, r.opts.Repeat)
	if err != nil {
		return Measurement{}, fmt.Errorf("measure %s/%s: %w", alg, style, err)
	}

	return Measurement{
		Algorithm:  alg,
		Style:      style,
		Size:       len(data),
		Best:       best,
		AllocBytes: MeasureAlloc(work),
	}, nil
}
