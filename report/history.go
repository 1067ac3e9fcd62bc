package report

import (
	"strconv"
	"strings"
	"time"

	"sortbench/bench"
	"sortbench/sorting"
)

// RenderHistory 저장된 실행 목록
func RenderHistory(runs []*bench.Run) string {
	if len(runs) == 0 {
		return "No stored runs.\n"
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		sizes := make([]string, len(r.Sizes))
		for i, s := range r.Sizes {
			sizes[i] = strconv.Itoa(s)
		}
		rows = append(rows, []string{
			r.ID,
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			strings.Join(sizes, ","),
			strings.Join(r.Algorithms, ","),
			strconv.Itoa(len(r.Measurements)),
			r.Elapsed.Round(time.Millisecond).String(),
		})
	}
	return pipeTable([]string{"ID", "Started", "Sizes", "Algorithms", "Cells", "Elapsed"}, rows) + "\n"
}

// RenderCatalog 지원 알고리즘 목록. 기본 선택은 * 표시
func RenderCatalog() string {
	defaults := make(map[string]bool)
	for _, k := range sorting.DefaultKeys() {
		defaults[k] = true
	}

	var rows [][]string
	for _, a := range sorting.Catalog() {
		def := ""
		if defaults[a.Key] {
			def = "*"
		}
		parallel := ""
		if a.Parallel {
			parallel = "yes"
		}
		rows = append(rows, []string{a.Key, a.Name, a.Expected, parallel, def})
	}
	return pipeTable([]string{"Key", "Name", "Expected", "Parallel", "Default"}, rows) + "\n"
}
