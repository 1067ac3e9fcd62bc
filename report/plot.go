package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"sortbench/bench"
	"sortbench/sorting"
)

// 차트 크기
const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// series 범례 이름 + 점들
type series struct {
	label  string
	points plotter.XYs
}

// PlotAlgorithm 한 알고리즘의 스타일별 시간 곡선. 형식은 path 확장자로 결정
func PlotAlgorithm(path string, run *bench.Run, alg string, logLog bool) error {
	var lines []series
	for _, style := range run.Styles {
		if pts, ok := points(run, alg, style); ok {
			lines = append(lines, series{label: style.Label(), points: pts})
		}
	}
	return savePlot(path, algorithmChartTitle(alg), lines, logLog)
}

// PlotStyle 한 스타일에서 모든 알고리즘 겹쳐 그리기
func PlotStyle(path string, run *bench.Run, style bench.Style, logLog bool) error {
	var lines []series
	for _, alg := range run.Algorithms {
		if pts, ok := points(run, alg, style); ok {
			lines = append(lines, series{label: sorting.DisplayName(alg), points: pts})
		}
	}
	return savePlot(path, styleChartTitle(style), lines, logLog)
}

func algorithmChartTitle(alg string) string {
	return "Comparison of " + sorting.DisplayName(alg)
}

// styleChartTitle 스타일별 차트가 여러 장이므로 라벨을 붙여 구분
func styleChartTitle(style bench.Style) string {
	return fmt.Sprintf("Sorting Algorithm Comparison (%s)", style.Label())
}

func points(run *bench.Run, alg string, style bench.Style) (plotter.XYs, bool) {
	times, ok := run.Times(alg, style)
	if !ok {
		return nil, false
	}
	pts := make(plotter.XYs, len(times))
	for i, d := range times {
		pts[i].X = float64(run.Sizes[i])
		pts[i].Y = d.Seconds()
	}
	return pts, true
}

// positive 로그 축에 올릴 수 있는지 (0 이하 값이 있으면 불가)
func positive(lines []series) bool {
	for _, l := range lines {
		for _, p := range l.points {
			if p.X <= 0 || p.Y <= 0 {
				return false
			}
		}
	}
	return true
}

func savePlot(path, title string, lines []series, logLog bool) error {
	if len(lines) == 0 {
		return fmt.Errorf("no data to plot for %q", title)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Data Size"
	p.Y.Label.Text = "Execution Time (seconds)"
	p.Legend.Top = true
	p.Legend.Left = true

	if logLog && positive(lines) {
		p.X.Scale = plot.LogScale{}
		p.Y.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Label.Text = "Execution Time (seconds, log)"
	}

	args := make([]interface{}, 0, 2*len(lines))
	for _, l := range lines {
		args = append(args, l.label, l.points)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return fmt.Errorf("failed to build plot %q: %w", title, err)
	}

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", path, err)
	}
	return nil
}
