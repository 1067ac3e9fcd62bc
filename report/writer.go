package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sortbench/logging"
)

// 결과 파일 이름
const (
	MarkdownFile = "benchmark_results.md"
	JSONFile     = "benchmark_results.json"
)

// Options 어떤 결과물을 어디에 쓸지
type Options struct {
	Dir        string
	Markdown   bool
	JSON       bool
	Plot       bool
	PlotFormat string // png, svg, pdf
	LogLog     bool
}

// Writer 결과물 저장기
type Writer struct {
	opts   Options
	logger *zap.Logger
}

func NewWriter(opts Options, logger *zap.Logger) *Writer {
	if opts.PlotFormat == "" {
		opts.PlotFormat = "png"
	}
	return &Writer{opts: opts, logger: logging.OrNop(logger)}
}

// RunDir 실행별 출력 디렉터리
func (w *Writer) RunDir(a *Analysis) string {
	return filepath.Join(w.opts.Dir, a.Run.ID)
}

// Write 마크다운/JSON/플롯을 동시에 만들고, 생성된 파일 경로를 정렬해서 반환
func (w *Writer) Write(ctx context.Context, a *Analysis) ([]string, error) {
	dir := w.RunDir(a)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		mu    sync.Mutex
		paths []string
	)
	done := func(path string) {
		mu.Lock()
		paths = append(paths, path)
		mu.Unlock()
		w.logger.Debug("결과물 저장", zap.String("path", path))
	}

	g, ctx := errgroup.WithContext(ctx)

	if w.opts.Markdown {
		g.Go(func() error {
			path := filepath.Join(dir, MarkdownFile)
			if err := WriteMarkdown(path, a); err != nil {
				return err
			}
			done(path)
			return nil
		})
	}

	if w.opts.JSON {
		g.Go(func() error {
			path := filepath.Join(dir, JSONFile)
			if err := WriteJSON(path, a); err != nil {
				return err
			}
			done(path)
			return nil
		})
	}

	// 플롯은 폰트 캐시를 공유하므로 한 고루틴에서 순서대로
	if w.opts.Plot {
		g.Go(func() error {
			run := a.Run
			for _, alg := range run.Algorithms {
				if err := ctx.Err(); err != nil {
					return err
				}
				path := filepath.Join(dir, fmt.Sprintf("%s.%s", alg, w.opts.PlotFormat))
				if err := PlotAlgorithm(path, run, alg, w.opts.LogLog); err != nil {
					return err
				}
				done(path)
			}
			for _, style := range run.Styles {
				if err := ctx.Err(); err != nil {
					return err
				}
				path := filepath.Join(dir, fmt.Sprintf("styles_%s.%s", style, w.opts.PlotFormat))
				if err := PlotStyle(path, run, style, w.opts.LogLog); err != nil {
					return err
				}
				done(path)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(paths)
	w.logger.Info("결과물 저장 완료", zap.String("dir", dir), zap.Int("files", len(paths)))
	return paths, nil
}
