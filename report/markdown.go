package report

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"sortbench/sorting"
)

// WriteMarkdown 마크다운 리포트 파일 저장
func WriteMarkdown(path string, a *Analysis) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create markdown report: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)

	if _, err := writer.WriteString(renderMarkdown(a)); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}
	return file.Close()
}

func renderMarkdown(a *Analysis) string {
	run := a.Run

	var builder strings.Builder
	builder.Grow(16 * 1024)

	builder.WriteString("# 정렬 알고리즘 벤치마크 결과\n\n")
	builder.WriteString(fmt.Sprintf("- 실행 ID: `%s`\n", run.ID))
	builder.WriteString(fmt.Sprintf("- 시작 시각: %s\n", run.StartedAt.Format("2006-01-02 15:04:05 MST")))
	builder.WriteString(fmt.Sprintf("- 소요 시간: %v\n", run.Elapsed.Round(time.Millisecond)))
	builder.WriteString(fmt.Sprintf("- Go 버전: %s\n", run.GoVersion))
	builder.WriteString(fmt.Sprintf("- CPU 코어 수: %d\n", run.NumCPU))
	builder.WriteString(fmt.Sprintf("- 측정: %d회 호출 x %d회 반복 중 최소값\n", run.Number, run.Repeat))
	if run.Input != "" {
		builder.WriteString(fmt.Sprintf("- 입력 파일: `%s`\n", run.Input))
	} else {
		builder.WriteString(fmt.Sprintf("- 시드: %d\n", run.Seed))
	}
	builder.WriteString("\n")

	for _, alg := range run.Algorithms {
		builder.WriteString(fmt.Sprintf("## %s\n\n", sorting.DisplayName(alg)))

		builder.WriteString("| 데이터 크기 |")
		for _, style := range run.Styles {
			builder.WriteString(fmt.Sprintf(" %s | %s 메모리 |", style.Title(), style.Title()))
		}
		builder.WriteString("\n|---|")
		for range run.Styles {
			builder.WriteString("---|---|")
		}
		builder.WriteString("\n")

		for _, size := range run.Sizes {
			builder.WriteString(fmt.Sprintf("| %d |", size))
			for _, style := range run.Styles {
				if m, ok := run.Lookup(alg, style, size); ok {
					builder.WriteString(fmt.Sprintf(" %s | %d bytes |", formatDuration(m.Best), m.AllocBytes))
				} else {
					builder.WriteString(" - | - |")
				}
			}
			builder.WriteString("\n")
		}
		builder.WriteString("\n")

		if cmp := a.comparisons(alg); len(cmp) > 0 {
			builder.WriteString("### 스타일 비교 (함수형 vs 객체형)\n\n")
			builder.WriteString("| 데이터 크기 | 함수형 | 객체형 | 증가율 | 배율 | 차이 |\n")
			builder.WriteString("|---|---|---|---|---|---|\n")
			for _, row := range comparisonRows(cmp) {
				builder.WriteString("| " + strings.Join(row, " | ") + " |\n")
			}
			builder.WriteString("\n")
		}

		builder.WriteString("### 복잡도 추정\n\n")
		for _, style := range run.Styles {
			e, ok := a.Estimate(alg, style)
			if !ok {
				continue
			}
			if e.Estimate == nil {
				builder.WriteString(fmt.Sprintf("- %s: %s\n", style.Title(), e.Verdict()))
				continue
			}
			builder.WriteString(fmt.Sprintf("- %s: %s (기울기 %.3f, R² %.3f, %s)\n",
				style.Title(), e.Verdict(), e.Estimate.Slope, e.Estimate.RSquared, e.Estimate.Method))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}
