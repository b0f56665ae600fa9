package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Value 表示一个原始值及其所在行
type Value struct {
	Value string // 原始值
	Line  int    // 行号
}

// siSuffix 工程单位前缀，按顺序匹配，长前缀在前
var siSuffix = []struct {
	Suffix string
	Scale  float64
}{
	{"meg", 1e6},
	{"MEG", 1e6},
	{"Meg", 1e6},
	{"T", 1e12},
	{"G", 1e9},
	{"M", 1e6},
	{"k", 1e3},
	{"K", 1e3},
	{"m", 1e-3},
	{"u", 1e-6},
	{"µ", 1e-6},
	{"n", 1e-9},
	{"p", 1e-12},
	{"f", 1e-15},
}

// ParseSI 解析浮点数，支持工程单位前缀，如 20m、1.5k、2meg
func (value Value) ParseSI() (float64, error) {
	s := strings.TrimSpace(value.Value)
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, nil
	}
	for _, si := range siSuffix {
		if num, ok := strings.CutSuffix(s, si.Suffix); ok {
			return parseScaled(num, si.Scale, value)
		}
	}
	return 0, fmt.Errorf("第 %d 行: 无法解析数值 %q", value.Line, value.Value)
}

// parseScaled 解析去掉前缀后的数值
func parseScaled(num string, scale float64, value Value) (float64, error) {
	val, err := strconv.ParseFloat(num, 64)
	if err != nil || num == "" {
		return 0, fmt.Errorf("第 %d 行: 无法解析数值 %q", value.Line, value.Value)
	}
	return val * scale, nil
}

// ParseFloat64 解析64位浮点数，失败返回默认值
func (value Value) ParseFloat64(defaultValue float64) float64 {
	if val, err := value.ParseSI(); err == nil {
		return val
	}
	return defaultValue
}

// ParseString 安全获取字符串
func (value Value) ParseString(str string) string {
	if value.Value != "" {
		return value.Value
	}
	return str
}
