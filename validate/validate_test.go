package validate

import (
	"math"
	"testing"

	"sheath/equation"
)

// TestValidateDefaults 默认输入全部通过
func TestValidateDefaults(t *testing.T) {
	for _, mode := range equation.Modes() {
		if errs := Validate(mode, equation.DefaultValues(mode)); errs != nil {
			t.Errorf("%s: 默认输入不应报错, 实际 %v", mode, errs)
		}
	}
}

// TestValidateFaultCurrent 负故障电流被拒绝
func TestValidateFaultCurrent(t *testing.T) {
	values := equation.DefaultValues(equation.ThreePhase)
	values[equation.FieldFaultCurrent] = -5
	errs := Validate(equation.ThreePhase, values)
	if len(errs) != 1 || !errs.Has(MsgFaultCurrent) {
		t.Errorf("期望 [%s], 实际 %v", MsgFaultCurrent, errs)
	}
}

// TestValidateCollectsAll 全部错误一并报告
func TestValidateCollectsAll(t *testing.T) {
	values := equation.Values{
		equation.FieldFaultCurrent:     0,
		equation.FieldGroundResistance: -0.1,
		equation.FieldFrequency:        -50,
		equation.FieldSpacingAG:        1,
		equation.FieldSpacingBG:        0,
		equation.FieldSpacingCG:        -1,
		equation.FieldSpacingAB:        0,
		equation.FieldSpacingAC:        math.NaN(),
		equation.FieldDiameter:         0,
		equation.FieldRadius:           -0.02,
	}
	want := []string{
		MsgFaultCurrent, MsgGroundResistance, MsgFrequency,
		MsgGroundSpacing, MsgCableSpacing, MsgDiameter, MsgRadius,
	}
	errs := Validate(equation.ThreePhase, values)
	if len(errs) != len(want) {
		t.Fatalf("期望 %d 条错误, 实际 %d: %v", len(want), len(errs), errs)
	}
	for i, msg := range want {
		if errs[i] != msg {
			t.Errorf("第 %d 条: 期望 %q, 实际 %q", i, msg, errs[i])
		}
	}
}

// TestValidateGroundResistanceZero 接地电阻允许为零
func TestValidateGroundResistanceZero(t *testing.T) {
	values := equation.DefaultValues(equation.ThreePhase)
	values[equation.FieldGroundResistance] = 0
	if errs := Validate(equation.ThreePhase, values); errs != nil {
		t.Errorf("R_g=0 应通过, 实际 %v", errs)
	}
}

// TestValidateMissingAndInfinite 缺失与无穷值
func TestValidateMissingAndInfinite(t *testing.T) {
	values := equation.DefaultValues(equation.ReducedSinglePhase)
	delete(values, equation.FieldSpacing)
	values[equation.FieldFrequency] = math.Inf(1)
	errs := Validate(equation.ReducedSinglePhase, values)
	if !errs.Has("Missing value for S") || !errs.Has("frequency must be a finite number") {
		t.Errorf("缺少预期错误: %v", errs)
	}
	if errs.Has(MsgSpacing) || errs.Has(MsgFrequency) {
		t.Errorf("缺失或无穷字段不应重复报告: %v", errs)
	}
	if errs.Error() != "frequency must be a finite number; Missing value for S" {
		t.Errorf("Error() 格式不正确: %q", errs.Error())
	}
}

// TestValidateSinglePhaseIgnoresResistance 简化模型不检查接地电阻
func TestValidateSinglePhaseIgnoresResistance(t *testing.T) {
	values := equation.DefaultValues(equation.ReducedSinglePhase)
	values[equation.FieldGroundResistance] = -1
	if errs := Validate(equation.ReducedSinglePhase, values); errs != nil {
		t.Errorf("简化模型不应检查 R_g, 实际 %v", errs)
	}
}
