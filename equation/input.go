package equation

// 输入字段名称
const (
	FieldFaultCurrent     = "I_sg"      // 故障电流 (A)
	FieldGroundResistance = "R_g"       // 接地回路电阻 (Ω/m)
	FieldFrequency        = "frequency" // 系统频率 (Hz)
	FieldSpacingAG        = "S_ag"      // A相至接地导体间距 (m)
	FieldSpacingBG        = "S_bg"      // B相至接地导体间距 (m)
	FieldSpacingCG        = "S_cg"      // C相至接地导体间距 (m)
	FieldSpacingAB        = "S_ab"      // A-B相间距 (m)
	FieldSpacingAC        = "S_ac"      // A-C相间距 (m)
	FieldDiameter         = "d"         // 接地导体直径 (m)
	FieldRadius           = "r_g"       // 接地导体半径 (m)
	FieldSpacing          = "S"         // 简化模型单一间距 (m)
)

// 输出相名称
const (
	PhaseA = "E_a"
	PhaseB = "E_b"
	PhaseC = "E_c"
)

// Values 字段名到数值的映射
type Values map[string]float64

// Clone 复制
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for key, val := range v {
		out[key] = val
	}
	return out
}

// ThreePhase 转换为三相输入
func (v Values) ThreePhase() ThreePhaseInput {
	return ThreePhaseInput{
		FaultCurrent:     v[FieldFaultCurrent],
		GroundResistance: v[FieldGroundResistance],
		Frequency:        v[FieldFrequency],
		SpacingAG:        v[FieldSpacingAG],
		SpacingBG:        v[FieldSpacingBG],
		SpacingCG:        v[FieldSpacingCG],
		SpacingAB:        v[FieldSpacingAB],
		SpacingAC:        v[FieldSpacingAC],
		Diameter:         v[FieldDiameter],
		Radius:           v[FieldRadius],
	}
}

// SinglePhase 转换为简化单相输入
func (v Values) SinglePhase() SinglePhaseInput {
	return SinglePhaseInput{
		FaultCurrent: v[FieldFaultCurrent],
		Frequency:    v[FieldFrequency],
		Spacing:      v[FieldSpacing],
		Diameter:     v[FieldDiameter],
		Radius:       v[FieldRadius],
	}
}

// ThreePhaseInput 三相模型输入
type ThreePhaseInput struct {
	FaultCurrent     float64 `yaml:"I_sg" json:"I_sg"`
	GroundResistance float64 `yaml:"R_g" json:"R_g"`
	Frequency        float64 `yaml:"frequency" json:"frequency"`
	SpacingAG        float64 `yaml:"S_ag" json:"S_ag"`
	SpacingBG        float64 `yaml:"S_bg" json:"S_bg"`
	SpacingCG        float64 `yaml:"S_cg" json:"S_cg"`
	SpacingAB        float64 `yaml:"S_ab" json:"S_ab"`
	SpacingAC        float64 `yaml:"S_ac" json:"S_ac"`
	Diameter         float64 `yaml:"d" json:"d"`
	Radius           float64 `yaml:"r_g" json:"r_g"`
}

// ToValues 转换为映射
func (in ThreePhaseInput) ToValues() Values {
	return Values{
		FieldFaultCurrent:     in.FaultCurrent,
		FieldGroundResistance: in.GroundResistance,
		FieldFrequency:        in.Frequency,
		FieldSpacingAG:        in.SpacingAG,
		FieldSpacingBG:        in.SpacingBG,
		FieldSpacingCG:        in.SpacingCG,
		FieldSpacingAB:        in.SpacingAB,
		FieldSpacingAC:        in.SpacingAC,
		FieldDiameter:         in.Diameter,
		FieldRadius:           in.Radius,
	}
}

// SinglePhaseInput 简化单相模型输入，不含接地电阻
type SinglePhaseInput struct {
	FaultCurrent float64 `yaml:"I_sg" json:"I_sg"`
	Frequency    float64 `yaml:"frequency" json:"frequency"`
	Spacing      float64 `yaml:"S" json:"S"`
	Diameter     float64 `yaml:"d" json:"d"`
	Radius       float64 `yaml:"r_g" json:"r_g"`
}

// ToValues 转换为映射
func (in SinglePhaseInput) ToValues() Values {
	return Values{
		FieldFaultCurrent: in.FaultCurrent,
		FieldFrequency:    in.Frequency,
		FieldSpacing:      in.Spacing,
		FieldDiameter:     in.Diameter,
		FieldRadius:       in.Radius,
	}
}

// DefaultValues 默认输入
func DefaultValues(mode Mode) Values {
	switch mode {
	case ReducedSinglePhase:
		return SinglePhaseInput{
			FaultCurrent: 1000,
			Frequency:    50,
			Spacing:      1.5,
			Diameter:     0.05,
			Radius:       0.02,
		}.ToValues()
	default:
		return ThreePhaseInput{
			FaultCurrent:     1000,
			GroundResistance: 0.5,
			Frequency:        50,
			SpacingAG:        1.5,
			SpacingBG:        2.0,
			SpacingCG:        2.5,
			SpacingAB:        0.3,
			SpacingAC:        0.6,
			Diameter:         0.05,
			Radius:           0.02,
		}.ToValues()
	}
}

// FieldInfo 字段显示信息
type FieldInfo struct {
	Label       string // 标签
	Unit        string // 单位
	Description string // 说明
}

// fieldInfo 字段显示信息表
var fieldInfo = map[string]FieldInfo{
	FieldFaultCurrent:     {"I_sg", "A", "Fault current magnitude"},
	FieldGroundResistance: {"R_g", "Ω/m", "Ground resistance"},
	FieldFrequency:        {"f", "Hz", "Frequency"},
	FieldSpacingAG:        {"S_ag", "m", "Phase A to ground"},
	FieldSpacingBG:        {"S_bg", "m", "Phase B to ground"},
	FieldSpacingCG:        {"S_cg", "m", "Phase C to ground"},
	FieldSpacingAB:        {"S_ab", "m", "Phase A to B spacing"},
	FieldSpacingAC:        {"S_ac", "m", "Phase A to C spacing"},
	FieldDiameter:         {"d", "m", "Ground conductor diameter"},
	FieldRadius:           {"r_g", "m", "Ground conductor radius"},
	FieldSpacing:          {"S", "m", "Cable to ground spacing"},
}

// Describe 字段显示信息
func Describe(field string) FieldInfo {
	if info, ok := fieldInfo[field]; ok {
		return info
	}
	return FieldInfo{Label: field}
}
