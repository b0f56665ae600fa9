// Package validate 在调用计算前检查输入，收集全部不满足的条件后一并返回。
package validate

import (
	"fmt"
	"math"
	"strings"

	"sheath/equation"
)

// 校验信息
const (
	MsgFaultCurrent     = "Fault current must be positive"
	MsgGroundResistance = "Ground resistance cannot be negative"
	MsgFrequency        = "Frequency must be positive"
	MsgGroundSpacing    = "All spacing values must be positive"
	MsgCableSpacing     = "Cable spacing values must be positive"
	MsgSpacing          = "Spacing must be positive"
	MsgDiameter         = "Ground conductor diameter must be positive"
	MsgRadius           = "Ground conductor radius must be positive"
)

// Errors 校验错误列表
type Errors []string

// Error 实现 error 接口
func (e Errors) Error() string { return strings.Join(e, "; ") }

// Messages 错误信息副本
func (e Errors) Messages() []string { return append([]string(nil), e...) }

// Has 是否包含指定信息
func (e Errors) Has(msg string) bool {
	for _, m := range e {
		if m == msg {
			return true
		}
	}
	return false
}

// rule 单条规则：一组字段共享一条信息
type rule struct {
	fields   []string
	positive bool // true: > 0, false: >= 0
	message  string
}

// rules 各模型规则，顺序即报告顺序
var rules = map[equation.Mode][]rule{
	equation.ThreePhase: {
		{[]string{equation.FieldFaultCurrent}, true, MsgFaultCurrent},
		{[]string{equation.FieldGroundResistance}, false, MsgGroundResistance},
		{[]string{equation.FieldFrequency}, true, MsgFrequency},
		{[]string{equation.FieldSpacingAG, equation.FieldSpacingBG, equation.FieldSpacingCG}, true, MsgGroundSpacing},
		{[]string{equation.FieldSpacingAB, equation.FieldSpacingAC}, true, MsgCableSpacing},
		{[]string{equation.FieldDiameter}, true, MsgDiameter},
		{[]string{equation.FieldRadius}, true, MsgRadius},
	},
	equation.ReducedSinglePhase: {
		{[]string{equation.FieldFaultCurrent}, true, MsgFaultCurrent},
		{[]string{equation.FieldFrequency}, true, MsgFrequency},
		{[]string{equation.FieldSpacing}, true, MsgSpacing},
		{[]string{equation.FieldDiameter}, true, MsgDiameter},
		{[]string{equation.FieldRadius}, true, MsgRadius},
	},
}

// Validate 校验输入，全部通过返回 nil
func Validate(mode equation.Mode, values equation.Values) Errors {
	list, ok := rules[mode]
	if !ok {
		return Errors{fmt.Sprintf("Unknown calculation mode %s", mode)}
	}
	var errs Errors
	for _, field := range mode.Fields() {
		v, ok := values[field]
		switch {
		case !ok:
			errs = append(errs, fmt.Sprintf("Missing value for %s", field))
		case math.IsInf(v, 0):
			errs = append(errs, fmt.Sprintf("%s must be a finite number", field))
		}
	}
	for _, r := range list {
		for _, field := range r.fields {
			v, ok := values[field]
			if !ok || math.IsInf(v, 0) {
				continue
			}
			// NaN 不满足任何比较，按违规处理
			if (r.positive && !(v > 0)) || (!r.positive && !(v >= 0)) {
				errs = append(errs, r.message)
				break
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
