package equation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode 未知计算模型
var ErrUnknownMode = errors.New("未知计算模型")

// Mode 计算模型
type Mode uint8

// 计算模型常量定义
const (
	ThreePhase         Mode = iota // 三相模型
	ReducedSinglePhase             // 简化单相模型
)

// Evaluator 模型计算函数
type Evaluator func(values Values) Result

// modeInfo 模型描述
type modeInfo struct {
	Name      string    // 名称
	Fields    []string  // 输入字段(按显示顺序)
	Phases    []string  // 输出相
	Equations []string  // 公式文本
	Evaluator Evaluator // 计算函数
}

// modeTable 模型映射
var modeTable = map[Mode]modeInfo{
	ThreePhase: {
		Name: "three-phase",
		Fields: []string{
			FieldFaultCurrent, FieldGroundResistance, FieldFrequency,
			FieldSpacingAG, FieldSpacingBG, FieldSpacingCG,
			FieldSpacingAB, FieldSpacingAC,
			FieldDiameter, FieldRadius,
		},
		Phases: []string{PhaseA, PhaseB, PhaseC},
		Equations: []string{
			"E_a = I_sg × [R_g + jω(2×10⁻⁷) × ln(2S_ag^2/(d×r_g))]",
			"E_b = I_sg × [R_g + jω(2×10⁻⁷) × ln(S_ag×S_bg/(r_g×S_ab))]",
			"E_c = I_sg × [R_g + jω(2×10⁻⁷) × ln(S_ag×S_cg/(r_g×S_ac))]",
		},
		Evaluator: func(values Values) Result { return EvaluateThreePhase(values.ThreePhase()) },
	},
	ReducedSinglePhase: {
		Name: "single-phase",
		Fields: []string{
			FieldFaultCurrent, FieldFrequency, FieldSpacing, FieldDiameter, FieldRadius,
		},
		Phases: []string{PhaseA},
		Equations: []string{
			"E_a = ω(2×10⁻⁷) × ln(2S^2/(d×r_g)) × I_sg",
		},
		Evaluator: func(values Values) Result { return EvaluateSinglePhase(values.SinglePhase()) },
	},
}

// modeAlias 名称别名
var modeAlias = map[string]Mode{
	"three-phase":          ThreePhase,
	"threephase":           ThreePhase,
	"3p":                   ThreePhase,
	"single-phase":         ReducedSinglePhase,
	"reduced-single-phase": ReducedSinglePhase,
	"reducedsinglephase":   ReducedSinglePhase,
	"1p":                   ReducedSinglePhase,
}

// Modes 全部模型
func Modes() []Mode { return []Mode{ThreePhase, ReducedSinglePhase} }

// ParseMode 通过名称获取模型，不区分大小写
func ParseMode(name string) (Mode, error) {
	if m, ok := modeAlias[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// String 返回模型名称
func (m Mode) String() string {
	if info, ok := modeTable[m]; ok {
		return info.Name
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Valid 是否为已定义模型
func (m Mode) Valid() bool {
	_, ok := modeTable[m]
	return ok
}

// Fields 输入字段列表
func (m Mode) Fields() []string { return append([]string(nil), modeTable[m].Fields...) }

// Phases 输出相列表
func (m Mode) Phases() []string { return append([]string(nil), modeTable[m].Phases...) }

// Equations 公式文本
func (m Mode) Equations() []string { return append([]string(nil), modeTable[m].Equations...) }

// HasField 模型是否使用该字段
func (m Mode) HasField(field string) bool {
	for _, f := range modeTable[m].Fields {
		if f == field {
			return true
		}
	}
	return false
}

// MarshalText 文本编码
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText 文本解码
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
