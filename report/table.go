package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"sortbench/bench"
	"sortbench/sorting"
)

// pipeTable 마크다운(pipe) 형식 테이블
func pipeTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

// RenderTables 알고리즘별 결과, 스타일 비교, 복잡도 추정을 터미널용 문자열로
func RenderTables(a *Analysis) string {
	run := a.Run
	var sb strings.Builder

	for _, alg := range run.Algorithms {
		name := sorting.DisplayName(alg)

		headers := []string{"Data Size"}
		for _, style := range run.Styles {
			headers = append(headers, style.Title())
		}

		rows := make([][]string, 0, len(run.Sizes))
		for _, size := range run.Sizes {
			row := []string{strconv.Itoa(size)}
			for _, style := range run.Styles {
				row = append(row, cell(run, alg, style, size))
			}
			rows = append(rows, row)
		}

		fmt.Fprintf(&sb, "Results for %s:\n", name)
		sb.WriteString(pipeTable(headers, rows))
		sb.WriteString("\n\n")

		if cmp := a.comparisons(alg); len(cmp) > 0 {
			sb.WriteString(pipeTable(
				[]string{"Data Size", "Sort Function Time", "Sort Classes Time", "Percentage Increase", "Speedup Factor", "Absolute Difference"},
				comparisonRows(cmp),
			))
			sb.WriteString("\n\n")
		}

		for _, style := range run.Styles {
			if e, ok := a.Estimate(alg, style); ok {
				fmt.Fprintf(&sb, "%s Complexity: %s\n", styleNoun(style), e.Verdict())
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func cell(run *bench.Run, alg string, style bench.Style, size int) string {
	m, ok := run.Lookup(alg, style, size)
	if !ok {
		return "-"
	}
	return formatDuration(m.Best)
}

func comparisonRows(cmp []bench.Comparison) [][]string {
	rows := make([][]string, 0, len(cmp))
	for _, c := range cmp {
		pct, speedup := "n/a", "n/a"
		if c.Comparable {
			pct = fmt.Sprintf("%.2f%%", c.PercentIncrease)
			speedup = fmt.Sprintf("%.2f", c.Speedup)
		}
		rows = append(rows, []string{
			strconv.Itoa(c.Size),
			formatDuration(c.Func),
			formatDuration(c.Object),
			pct,
			speedup,
			formatDuration(c.Difference),
		})
	}
	return rows
}

func styleNoun(style bench.Style) string {
	switch style {
	case bench.StyleFunc:
		return "Functional"
	case bench.StyleObject:
		return "Class-based"
	}
	return string(style)
}

// formatDuration 유효숫자 4자리 정도로 반올림
func formatDuration(d time.Duration) string {
	abs := d
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= time.Second:
		return d.Round(time.Millisecond).String()
	case abs >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	case abs >= time.Microsecond:
		return d.Round(10 * time.Nanosecond).String()
	}
	return d.String()
}
