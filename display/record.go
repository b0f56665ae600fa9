package display

import (
	"encoding/json"
	"io"

	"sheath/equation"
	"sheath/maths"
)

// RecordPhase 单相记录
type RecordPhase struct {
	equation.PhaseResult
	LogTerm   maths.Float `json:"log_term"`
	Magnitude maths.Float `json:"magnitude"`
	Degrees   maths.Float `json:"phase_degrees"`
}

// Record 一次计算的输入与结果
type Record struct {
	Mode         equation.Mode          `json:"mode"`
	CommonFactor maths.Float            `json:"common_factor"`
	Inputs       map[string]maths.Float `json:"inputs"`
	Phases       []RecordPhase          `json:"phases"`
	Equations    []string               `json:"equations"`
	Errors       []string               `json:"errors,omitempty"`
}

// NewRecord 生成记录，result 为空时只记录错误
func NewRecord(mode equation.Mode, inputs equation.Values, result *equation.Result, errs []string) *Record {
	rec := &Record{
		Mode:         mode,
		CommonFactor: maths.Float(equation.CommonFactor(inputs[equation.FieldFrequency])),
		Inputs:       maths.Floats(inputs),
		Phases:       []RecordPhase{},
		Equations:    mode.Equations(),
		Errors:       errs,
	}
	if result != nil {
		for _, p := range result.Phases {
			rec.Phases = append(rec.Phases, RecordPhase{
				PhaseResult: p,
				LogTerm:     maths.Float(p.LogTerm),
				Magnitude:   maths.Float(p.Voltage.Magnitude()),
				Degrees:     maths.Float(Degrees(p.Voltage)),
			})
		}
	}
	return rec
}

// Render 格式化输出
func (rec *Record) Render(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
