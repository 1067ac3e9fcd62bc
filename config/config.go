package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// 프리셋 이름
const (
	PresetDefault  = "default"
	PresetExtended = "extended"
)

// 환경변수 오버라이드
const (
	EnvLogLevel  = "SORTBENCH_LOG_LEVEL"
	EnvStore     = "SORTBENCH_STORE"
	EnvOutputDir = "SORTBENCH_OUTPUT_DIR"
)

var presets = map[string][]int{
	PresetDefault:  {100, 500, 1000, 3000},
	PresetExtended: {10, 20, 50, 100, 200, 400, 800, 1600, 3200, 6400, 12800},
}

// 검증용 허용값. 하위 패키지를 참조하지 않도록 여기서 관리
var (
	knownAlgorithms = []string{"merge", "insertion", "builtin", "quick", "parallel-quick", "parallel-merge"}
	knownStyles     = []string{"func", "object"}
	knownMethods    = []string{"regression", "endpoints"}
	knownBackends   = []string{"none", "bbolt", "badger", "pebble"}
	knownFormats    = []string{"png", "svg", "pdf"}
)

// Config sortbench 전체 설정
type Config struct {
	Preset string `yaml:"preset"`
	Sizes  []int  `yaml:"sizes"`

	// 측정: number 회 호출을 repeat 번 반복해 최소값 / number
	Number int   `yaml:"number"`
	Repeat int   `yaml:"repeat"`
	Seed   int64 `yaml:"seed"` // 0 이면 현재 시각

	MinValue int    `yaml:"min_value"`
	MaxValue int    `yaml:"max_value"`
	Input    string `yaml:"input"` // 한 줄에 정수 하나인 데이터 파일

	Algorithms []string `yaml:"algorithms"`
	Styles     []string `yaml:"styles"`

	Complexity ComplexityConfig `yaml:"complexity"`
	Output     OutputConfig     `yaml:"output"`
	Store      StoreConfig      `yaml:"store"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ComplexityConfig 복잡도 추정 방식
type ComplexityConfig struct {
	Method string `yaml:"method"`
}

// OutputConfig 결과물 출력
type OutputConfig struct {
	Dir        string `yaml:"dir"`
	Markdown   bool   `yaml:"markdown"`
	JSON       bool   `yaml:"json"`
	Plot       bool   `yaml:"plot"`
	PlotFormat string `yaml:"plot_format"`
	LogLog     bool   `yaml:"log_log"`
}

// StoreConfig 실행 기록 저장소
type StoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"` // 비어 있으면 output.dir 아래 기본 경로
}

// LoggingConfig 로깅
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default 기본 설정
func Default() *Config {
	return &Config{
		Preset:     PresetDefault,
		Sizes:      slices.Clone(presets[PresetDefault]),
		Number:     10,
		Repeat:     3,
		Seed:       42,
		MinValue:   1,
		MaxValue:   1000,
		Algorithms: []string{"merge", "insertion", "builtin"},
		Styles:     []string{"func", "object"},
		Complexity: ComplexityConfig{Method: "regression"},
		Output: OutputConfig{
			Dir:        "results",
			Markdown:   true,
			JSON:       true,
			Plot:       true,
			PlotFormat: "png",
		},
		Store:   StoreConfig{Backend: "bbolt"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load 기본값 위에 YAML 파일(있으면)과 환경변수를 순서대로 적용
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// 파일에 sizes 가 없을 때만 preset 이 크기를 결정
		var probe struct {
			Sizes []int `yaml:"sizes"`
		}
		if err := yaml.Unmarshal(data, &probe); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		if len(probe.Sizes) == 0 {
			if err := cfg.ApplyPreset(cfg.Preset); err != nil {
				return nil, err
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// ApplyPreset 프리셋의 크기 목록으로 교체
func (c *Config) ApplyPreset(name string) error {
	if name == "" {
		name = PresetDefault
	}
	sizes, ok := presets[name]
	if !ok {
		return fmt.Errorf("unknown preset %q", name)
	}
	c.Preset = name
	c.Sizes = slices.Clone(sizes)
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvStore); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.Output.Dir = v
	}
}

// StorePath 백엔드별 기본 경로
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	switch c.Store.Backend {
	case "bbolt":
		return filepath.Join(c.Output.Dir, "history.db")
	case "badger":
		return filepath.Join(c.Output.Dir, "history.badger")
	case "pebble":
		return filepath.Join(c.Output.Dir, "history.pebble")
	}
	return ""
}

// Validate 모든 오류를 모아서 반환
func (c *Config) Validate() error {
	var errs []error

	if len(c.Sizes) == 0 {
		errs = append(errs, errors.New("sizes must not be empty"))
	}
	seen := make(map[int]bool, len(c.Sizes))
	for _, s := range c.Sizes {
		if s <= 0 {
			errs = append(errs, fmt.Errorf("size %d must be positive", s))
		}
		if seen[s] {
			errs = append(errs, fmt.Errorf("duplicate size %d", s))
		}
		seen[s] = true
	}
	if c.Number < 1 {
		errs = append(errs, fmt.Errorf("number must be >= 1, got %d", c.Number))
	}
	if c.Repeat < 1 {
		errs = append(errs, fmt.Errorf("repeat must be >= 1, got %d", c.Repeat))
	}
	if c.MinValue > c.MaxValue {
		errs = append(errs, fmt.Errorf("min_value %d exceeds max_value %d", c.MinValue, c.MaxValue))
	}

	if len(c.Algorithms) == 0 {
		errs = append(errs, errors.New("algorithms must not be empty"))
	}
	errs = append(errs, checkKnown("algorithm", c.Algorithms, knownAlgorithms)...)
	if len(c.Styles) == 0 {
		errs = append(errs, errors.New("styles must not be empty"))
	}
	errs = append(errs, checkKnown("style", c.Styles, knownStyles)...)
	errs = append(errs, checkKnown("complexity method", []string{c.Complexity.Method}, knownMethods)...)
	errs = append(errs, checkKnown("store backend", []string{c.Store.Backend}, knownBackends)...)
	if c.Output.Plot {
		errs = append(errs, checkKnown("plot format", []string{c.Output.PlotFormat}, knownFormats)...)
	}

	return errors.Join(errs...)
}

func checkKnown(kind string, values, known []string) []error {
	var errs []error
	for _, v := range values {
		if !slices.Contains(known, v) {
			errs = append(errs, fmt.Errorf("unknown %s %q (known: %v)", kind, v, known))
		}
	}
	return errs
}
