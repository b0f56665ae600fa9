package display

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"sheath/equation"
	"sheath/maths"
)

// defaultResult 默认三相结果
func defaultResult(t *testing.T, mode equation.Mode) equation.Result {
	t.Helper()
	result, err := equation.Evaluate(mode, equation.DefaultValues(mode))
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	return result
}

// TestFormatImag 测试虚部指数格式
func TestFormatImag(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0.528531034747784, "+5.285e-1"},
		{528.37, "+5.284e+2"},
		{-0.0039, "-3.900e-3"},
		{0, "+0.000e+0"},
		{math.Copysign(0, -1), "+0.000e+0"},
		{1.5e-200, "+1.500e-200"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
	}
	for _, c := range cases {
		if got := FormatImag(c.v); got != c.want {
			t.Errorf("FormatImag(%v): 期望 %q, 实际 %q", c.v, c.want, got)
		}
	}
}

// TestFormatCard 测试单相显示
func TestFormatCard(t *testing.T) {
	card := Format(equation.PhaseA, maths.New(0, -2))
	if card.Title != "Phase A Shield Voltage (E_a)" {
		t.Errorf("标题不正确: %s", card.Title)
	}
	if card.Real != "0.0000" || card.Imag != "-2.000e+0" || card.Magnitude != "2.0000" {
		t.Errorf("格式不正确: %+v", card)
	}
	if math.Abs(card.Degrees+90) > 1e-9 || card.Phase != "-90.0000" {
		t.Errorf("相角不正确: %v %s", card.Degrees, card.Phase)
	}
	if Title("X") != "X" {
		t.Errorf("未知相标题应原样返回")
	}
}

// TestText 测试文本输出
func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, defaultResult(t, equation.ThreePhase)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"Phase A Shield Voltage (E_a)",
		"Phase C Shield Voltage (E_c)",
		"Real:      500.0000 V/m",
		"Imaginary: +5.285e-1j V/m",
		"Equations Used:",
		"ln(2S_ag^2/(d×r_g))",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("输出缺少 %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := Errors(&buf, []string{"Fault current must be positive"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "• Fault current must be positive") {
		t.Errorf("错误输出不正确: %s", buf.String())
	}
}

// TestRecord 测试 JSON 记录
func TestRecord(t *testing.T) {
	result := defaultResult(t, equation.ReducedSinglePhase)
	rec := NewRecord(equation.ReducedSinglePhase, equation.DefaultValues(equation.ReducedSinglePhase), &result, nil)
	var buf bytes.Buffer
	if err := rec.Render(&buf); err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Mode   string `json:"mode"`
		Phases []struct {
			Name    string `json:"name"`
			Voltage struct {
				Real float64 `json:"real"`
				Imag float64 `json:"imag"`
			} `json:"voltage"`
			Magnitude float64 `json:"magnitude"`
		} `json:"phases"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("解析失败: %v\n%s", err, buf.String())
	}
	if decoded.Mode != "single-phase" || len(decoded.Phases) != 1 {
		t.Fatalf("记录内容不正确: %+v", decoded)
	}
	p := decoded.Phases[0]
	if p.Name != "E_a" || p.Voltage.Imag != 0 || math.Abs(p.Magnitude-p.Voltage.Real) > 1e-12 {
		t.Errorf("相记录不正确: %+v", p)
	}

	// 无结果时只有错误
	rec = NewRecord(equation.ThreePhase, equation.DefaultValues(equation.ThreePhase), nil, []string{"x"})
	buf.Reset()
	if err := rec.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"phases": []`) || !strings.Contains(buf.String(), `"x"`) {
		t.Errorf("错误记录不正确: %s", buf.String())
	}
}

// TestCharts 测试 echarts 页面输出
func TestCharts(t *testing.T) {
	var buf bytes.Buffer
	c := &Charts{Result: defaultResult(t, equation.ThreePhase)}
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"echarts", "E_a", "E_b", "E_c", "Magnitude"} {
		if !strings.Contains(out, want) {
			t.Errorf("页面缺少 %q", want)
		}
	}
}

// TestPlot 测试相量图输出
func TestPlot(t *testing.T) {
	var buf bytes.Buffer
	p := &Plot{Result: defaultResult(t, equation.ThreePhase), Format: "svg"}
	if err := p.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("SVG 输出不正确")
	}

	buf.Reset()
	p.Format = ""
	if err := p.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("PNG 输出不正确")
	}

	values := equation.DefaultValues(equation.ThreePhase)
	values[equation.FieldRadius] = 0
	bad, _ := equation.Evaluate(equation.ThreePhase, values)
	if err := (&Plot{Result: bad}).Render(&buf); err == nil {
		t.Error("非有限值应返回错误")
	}
}
