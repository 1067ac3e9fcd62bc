package report

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// RenderPretty 마크다운 리포트를 터미널 스타일로 렌더링
// style 이 비어 있으면 터미널 배경에 맞춰 자동 선택
func RenderPretty(a *Analysis, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := renderer.Render(renderMarkdown(a))
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}
