// Package display 将计算结果格式化为文本、JSON、echarts 页面和相量图。
package display

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"sheath/equation"
	"sheath/maths"
)

// Unit 电压梯度单位
const Unit = "V/m"

// phaseTitle 相标题
var phaseTitle = map[string]string{
	equation.PhaseA: "Phase A Shield Voltage (E_a)",
	equation.PhaseB: "Phase B Shield Voltage (E_b)",
	equation.PhaseC: "Phase C Shield Voltage (E_c)",
}

// Card 单相显示内容
type Card struct {
	Name      string  // 相名称
	Title     string  // 标题
	Real      string  // 实部，4位小数
	Imag      string  // 虚部，指数形式并带符号
	Magnitude string  // 幅值
	Phase     string  // 相角(度)
	Degrees   float64 // 相角数值(度)
}

// Title 相标题
func Title(name string) string {
	if t, ok := phaseTitle[name]; ok {
		return t
	}
	return name
}

// Degrees 相角换算为角度
func Degrees(c maths.Complex) float64 {
	return c.Phase() * 180 / math.Pi
}

// Format 格式化单相电压
func Format(name string, c maths.Complex) Card {
	deg := Degrees(c)
	return Card{
		Name:      name,
		Title:     Title(name),
		Real:      strconv.FormatFloat(c.Real(), 'f', 4, 64),
		Imag:      FormatImag(c.Imag()),
		Magnitude: strconv.FormatFloat(c.Magnitude(), 'f', 4, 64),
		Phase:     strconv.FormatFloat(deg, 'f', 4, 64),
		Degrees:   deg,
	}
}

// Cards 格式化全部相
func Cards(result equation.Result) []Card {
	cards := make([]Card, 0, len(result.Phases))
	for _, p := range result.Phases {
		cards = append(cards, Format(p.Name, p.Voltage))
	}
	return cards
}

// FormatImag 虚部格式 +5.285e-1，指数不补零
func FormatImag(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	s := Exponential(v, 3)
	if v >= 0 && !math.Signbit(v) {
		return "+" + s
	}
	if v == 0 {
		// 负零按正值显示
		return "+" + strings.TrimPrefix(s, "-")
	}
	return s
}

// Exponential 指数形式，digits 为小数位数，指数不补零
func Exponential(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'e', digits, 64)
	i := strings.LastIndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	mantissa, sign, exp := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + string(sign) + exp
}

// Text 输出文本结果
func Text(w io.Writer, result equation.Result) error {
	var sb strings.Builder
	for _, card := range Cards(result) {
		fmt.Fprintf(&sb, "%s\n", card.Title)
		fmt.Fprintf(&sb, "  Real:      %s %s\n", card.Real, Unit)
		fmt.Fprintf(&sb, "  Imaginary: %sj %s\n", card.Imag, Unit)
		fmt.Fprintf(&sb, "  Magnitude: %s %s\n", card.Magnitude, Unit)
		fmt.Fprintf(&sb, "  Phase:     %s°\n", card.Phase)
	}
	sb.WriteString("Equations Used:\n")
	for _, eq := range result.Mode.Equations() {
		fmt.Fprintf(&sb, "  %s\n", eq)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Errors 输出校验错误
func Errors(w io.Writer, messages []string) error {
	var sb strings.Builder
	sb.WriteString("Input Errors:\n")
	for _, m := range messages {
		fmt.Fprintf(&sb, "  • %s\n", m)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
