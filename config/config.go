// Package config 读取计算器配置文件（YAML），并由环境变量覆盖。
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"sheath/equation"
)

// DefaultPath 默认配置文件
const DefaultPath = "sheath.yaml"

// Config 计算器配置
type Config struct {
	Mode    string             `yaml:"mode"`
	Inputs  map[string]float64 `yaml:"inputs,omitempty"`
	Output  OutputConfig       `yaml:"output"`
	Logging LoggingConfig      `yaml:"logging"`
}

// OutputConfig 输出配置
type OutputConfig struct {
	Format     string `yaml:"format"`      // text, json
	Chart      string `yaml:"chart"`       // echarts 页面路径
	Plot       string `yaml:"plot"`        // 相量图路径
	PlotFormat string `yaml:"plot_format"` // png, svg, pdf
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		Mode: equation.ThreePhase.String(),
		Output: OutputConfig{
			Format:     "text",
			Chart:      "sheath.html",
			Plot:       "phasor.png",
			PlotFormat: "png",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load 读取配置文件，文件不存在时返回默认配置
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save 保存配置
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides 环境变量覆盖
func (c *Config) applyEnvOverrides() {
	if mode := os.Getenv("SHEATH_MODE"); mode != "" {
		c.Mode = mode
	}
	if level := os.Getenv("SHEATH_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("SHEATH_OUTPUT_FORMAT"); format != "" {
		c.Output.Format = format
	}
}

// Validate 检查配置项
func (c *Config) Validate() error {
	mode, err := c.ParseMode()
	if err != nil {
		return err
	}
	for field := range c.Inputs {
		if !mode.HasField(field) {
			return fmt.Errorf("input %q is not used by mode %s", field, mode)
		}
	}
	switch strings.ToLower(c.Output.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unsupported output format %q", c.Output.Format)
	}
	if _, err := c.Logging.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseMode 解析计算模型
func (c *Config) ParseMode() (equation.Mode, error) {
	if c.Mode == "" {
		return equation.ThreePhase, nil
	}
	return equation.ParseMode(c.Mode)
}

// Values 模型默认值与配置输入合并
func (c *Config) Values() (equation.Mode, equation.Values, error) {
	mode, err := c.ParseMode()
	if err != nil {
		return 0, nil, err
	}
	values := equation.DefaultValues(mode)
	for k, v := range c.Inputs {
		values[k] = v
	}
	return mode, values, nil
}
