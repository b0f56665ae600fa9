package ast

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// TestParseTree 测试参数表解析
func TestParseTree(t *testing.T) {
	src := `# 三相算例
.mode three-phase
I_sg 1000      // 故障电流
.value R_g 0.5
frequency = 50
/* 间距
   单位 m */
S_ag 1.5
r_g 20m
`
	tree, err := NewParseTree(strings.NewReader(src))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if tree.Mode == nil || tree.Mode.Name != "three-phase" || tree.Mode.Line != 2 {
		t.Fatalf("模型指令不正确: %+v", tree.Mode)
	}
	want := []struct {
		name  string
		value string
		line  int
	}{
		{"I_sg", "1000", 3},
		{"R_g", "0.5", 4},
		{"frequency", "50", 5},
		{"S_ag", "1.5", 8},
		{"r_g", "20m", 9},
	}
	if len(tree.ParamNodes) != len(want) {
		t.Fatalf("期望 %d 个参数, 实际 %d\n%s", len(want), len(tree.ParamNodes), tree)
	}
	for i, w := range want {
		n := tree.ParamNodes[i]
		if n.Name != w.name || n.Value.Value != w.value || n.Line != w.line {
			t.Errorf("第 %d 个参数: 期望 %s=%s@%d, 实际 %s=%s@%d",
				i, w.name, w.value, w.line, n.Name, n.Value.Value, n.Line)
		}
	}
	if len(tree.CommentNodes) != 3 {
		t.Errorf("期望 3 个注释, 实际 %d", len(tree.CommentNodes))
	}
	if tree.CommentNodes[0].Text != "三相算例" {
		t.Errorf("注释内容不正确: %q", tree.CommentNodes[0].Text)
	}
}

// TestParseTreeErrors 测试错误行号
func TestParseTreeErrors(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"I_sg\n", "第 1 行"},
		{"I_sg 1\nR_g 1 2\n", "第 2 行"},
		{".mode\n", "第 1 行"},
		{".mode a\n.mode b\n", "第 2 行"},
		{"# c\n# d\n.value\n", "第 3 行"},
		{"1x 5\n", "无效的参数名"},
	}
	for _, c := range cases {
		_, err := NewParseTree(strings.NewReader(c.src))
		if err == nil || !strings.Contains(err.Error(), c.want) {
			t.Errorf("%q: 期望包含 %q 的错误, 实际 %v", c.src, c.want, err)
		}
	}
}

// TestParseSI 测试工程单位前缀
func TestParseSI(t *testing.T) {
	cases := map[string]float64{
		"1000":  1000,
		"1e-3":  0.001,
		"20m":   0.02,
		"1.5k":  1500,
		"2meg":  2e6,
		"3M":    3e6,
		"50u":   50e-6,
		"50µ":   50e-6,
		"4n":    4e-9,
		"-2.5K": -2500,
		"1MEG":  1e6,
		"7Meg":  7e6,
	}
	for s, want := range cases {
		got, err := Value{Value: s}.ParseSI()
		if err != nil {
			t.Errorf("%q: %v", s, err)
			continue
		}
		if !scalar.EqualWithinRel(got, want, 1e-12) {
			t.Errorf("%q: 期望 %v, 实际 %v", s, want, got)
		}
	}
	for _, s := range []string{"", "abc", "m", "1x", "1.2.3k"} {
		if _, err := (Value{Value: s, Line: 7}).ParseSI(); err == nil || !strings.Contains(err.Error(), "第 7 行") {
			t.Errorf("%q 应解析失败, 实际 %v", s, err)
		}
	}
	// 同一输入多次解析结果一致，meg 优先于 m
	for i := 0; i < 50; i++ {
		if got, err := (Value{Value: "2meg"}).ParseSI(); err != nil || got != 2e6 {
			t.Fatalf("第 %d 次解析 2meg: 期望 2e6, 实际 %v %v", i, got, err)
		}
	}
	if got := (Value{Value: "bad"}).ParseFloat64(3); got != 3 {
		t.Errorf("ParseFloat64 默认值: 期望 3, 实际 %v", got)
	}
}
