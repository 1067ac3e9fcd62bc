package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON 분석 결과 전체를 JSON 으로 저장
func WriteJSON(path string, a *Analysis) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create json report: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(a); err != nil {
		return fmt.Errorf("failed to encode json report: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write json report: %w", err)
	}
	return file.Close()
}
