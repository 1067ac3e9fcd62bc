package bench

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// GenerateData [lo, hi] 범위의 균등 난수 size 개
// int 전체 범위도 허용. 폭은 uint64 로 계산
func GenerateData(size int, rng *rand.Rand, lo, hi int) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("size %d must not be negative", size)
	}
	if lo > hi {
		return nil, fmt.Errorf("empty value range [%d, %d]", lo, hi)
	}

	data := make([]int, size)
	span := uint64(hi) - uint64(lo) + 1
	for i := range data {
		data[i] = lo + int(uniform(rng, span))
	}
	return data, nil
}

// uniform [0, span) 균등 추출. span == 0 은 2^64 (전체 범위)
func uniform(rng *rand.Rand, span uint64) uint64 {
	if span == 0 {
		return rng.Uint64()
	}
	// 나머지 편향 제거: 2^64 mod span 미만은 버림
	threshold := -span % span
	for {
		if v := rng.Uint64(); v >= threshold {
			return v % span
		}
	}
}

// WriteDataset 한 줄에 정수 하나씩 기록
func WriteDataset(path string, data []int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset: %w", err)
	}
	defer file.Close()

	// 큰 버퍼 사용으로 I/O 횟수 감소
	writer := bufio.NewWriterSize(file, 64*1024)

	var builder strings.Builder
	builder.Grow(min(len(data), 10000) * 8)

	for i, num := range data {
		builder.WriteString(strconv.Itoa(num))
		builder.WriteByte('\n')

		// 주기적으로 플러시 (메모리 사용량 제어)
		if i%10000 == 9999 {
			if _, err := writer.WriteString(builder.String()); err != nil {
				return fmt.Errorf("failed to write dataset: %w", err)
			}
			builder.Reset()
		}
	}

	if builder.Len() > 0 {
		if _, err := writer.WriteString(builder.String()); err != nil {
			return fmt.Errorf("failed to write dataset: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return file.Close()
}

// ReadDataset WriteDataset 형식 파일 읽기. 빈 줄은 무시
func ReadDataset(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat dataset: %w", err)
	}

	// 대략적인 숫자 개수 추정 (평균 3자리 + 개행)
	data := make([]int, 0, int(info.Size()/4))

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		num, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("dataset %s line %d: %w", path, line, err)
		}
		data = append(data, num)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return data, nil
}
