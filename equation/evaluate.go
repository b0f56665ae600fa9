// Package equation 实现单相接地故障下电缆护套感应电压的计算公式。
// 函数均为纯函数，不做输入校验；非正的间距或半径按浮点规则得到 NaN/Inf。
package equation

import (
	"fmt"
	"math"

	"sheath/maths"
)

// MagneticConstant 互感系数常数项 μ₀/2π
const MagneticConstant = 2e-7

// PhaseResult 单相计算结果
type PhaseResult struct {
	Name      string        `json:"name"`      // 相名称 E_a/E_b/E_c
	LogTerm   float64       `json:"log_term"`  // 几何均距对数项
	Impedance maths.Complex `json:"impedance"` // 单位长度阻抗
	Voltage   maths.Complex `json:"voltage"`   // 护套感应电压
}

// Result 计算结果
type Result struct {
	Mode   Mode          `json:"mode"`
	Phases []PhaseResult `json:"phases"`
}

// Voltage 按相名称获取电压
func (r Result) Voltage(name string) (maths.Complex, bool) {
	for _, p := range r.Phases {
		if p.Name == name {
			return p.Voltage, true
		}
	}
	return maths.Complex{}, false
}

// CommonFactor 公共系数 2×10⁻⁷·2π·f
func CommonFactor(frequency float64) float64 {
	return MagneticConstant * 2 * math.Pi * frequency
}

// EvaluateThreePhase 三相模型
// E_p = I_sg · (R_g + j·cf·ln(term_p))
func EvaluateThreePhase(in ThreePhaseInput) Result {
	cf := CommonFactor(in.Frequency)
	terms := [3]struct {
		name string
		log  float64
	}{
		{PhaseA, math.Log((2 * in.SpacingAG * in.SpacingAG) / (in.Diameter * in.Radius))},
		{PhaseB, math.Log((in.SpacingAG * in.SpacingBG) / (in.Radius * in.SpacingAB))},
		{PhaseC, math.Log((in.SpacingAG * in.SpacingCG) / (in.Radius * in.SpacingAC))},
	}
	result := Result{Mode: ThreePhase, Phases: make([]PhaseResult, 0, len(terms))}
	for _, term := range terms {
		impedance := maths.New(in.GroundResistance, cf*term.log)
		result.Phases = append(result.Phases, PhaseResult{
			Name:      term.name,
			LogTerm:   term.log,
			Impedance: impedance,
			Voltage:   impedance.MultiplyScalar(in.FaultCurrent),
		})
	}
	return result
}

// EvaluateSinglePhase 简化单相模型
// 电抗与电流之积置于实部，虚部为零，且不含接地电阻
func EvaluateSinglePhase(in SinglePhaseInput) Result {
	cf := CommonFactor(in.Frequency)
	logTerm := math.Log((2 * in.Spacing * in.Spacing) / (in.Diameter * in.Radius))
	return Result{
		Mode: ReducedSinglePhase,
		Phases: []PhaseResult{{
			Name:      PhaseA,
			LogTerm:   logTerm,
			Impedance: maths.New(cf*logTerm, 0),
			Voltage:   maths.New(cf*logTerm*in.FaultCurrent, 0),
		}},
	}
}

// Evaluate 按模型计算
func Evaluate(mode Mode, values Values) (Result, error) {
	info, ok := modeTable[mode]
	if !ok {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(mode))
	}
	return info.Evaluator(values), nil
}
