// Package app 终端交互输入表单，每次按键后同步重新计算并刷新结果。
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sheath"
	"sheath/display"
	"sheath/equation"
	"sheath/load/ast"
)

// Form 输入表单
type Form struct {
	calc   *sheath.Calculator
	fields []string
	inputs []textinput.Model
	focus  int
	styles Styles
	width  int
}

// NewForm 初始化表单
func NewForm(calc *sheath.Calculator) Form {
	f := Form{calc: calc, styles: NewStyles()}
	f.buildInputs()
	return f
}

// buildInputs 按当前模型生成输入框
func (f *Form) buildInputs() {
	f.fields = f.calc.Mode().Fields()
	f.inputs = make([]textinput.Model, len(f.fields))
	for i, field := range f.fields {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.Placeholder = "Enter value"
		ti.CharLimit = 32
		ti.Width = 16
		if v, ok := f.calc.Value(field); ok {
			ti.SetValue(ast.AnyToString(v))
			ti.CursorEnd()
		}
		f.inputs[i] = ti
	}
	if f.focus >= len(f.inputs) {
		f.focus = 0
	}
	if len(f.inputs) > 0 {
		f.inputs[f.focus].Focus()
	}
}

// Calculator 计算器
func (f Form) Calculator() *sheath.Calculator { return f.calc }

// Focused 当前焦点字段
func (f Form) Focused() string { return f.fields[f.focus] }

// Init 实现 tea.Model
func (f Form) Init() tea.Cmd { return textinput.Blink }

// Update 实现 tea.Model
func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		return f, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return f, tea.Quit
		case "tab", "down", "enter":
			f.move(1)
			return f, textinput.Blink
		case "shift+tab", "up":
			f.move(-1)
			return f, textinput.Blink
		case "ctrl+t":
			f.toggleMode()
			return f, textinput.Blink
		}
	}
	var cmd tea.Cmd
	before := f.inputs[f.focus].Value()
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if after := f.inputs[f.focus].Value(); after != before {
		f.calc.Set(f.fields[f.focus], parseInput(after))
	}
	return f, cmd
}

// parseInput 无法解析的输入按 0 处理，由校验报告
func parseInput(s string) float64 {
	return ast.Value{Value: s}.ParseFloat64(0)
}

// move 移动焦点
func (f *Form) move(delta int) {
	f.inputs[f.focus].Blur()
	n := len(f.inputs)
	f.focus = ((f.focus+delta)%n + n) % n
	f.inputs[f.focus].Focus()
}

// toggleMode 切换计算模型
func (f *Form) toggleMode() {
	next := equation.ThreePhase
	if f.calc.Mode() == equation.ThreePhase {
		next = equation.ReducedSinglePhase
	}
	f.calc.SetMode(next)
	f.focus = 0
	f.buildInputs()
}

// View 实现 tea.Model
func (f Form) View() string {
	var sb strings.Builder
	sb.WriteString(f.styles.Header.Render("Shield-Sheath Overvoltage Calculator"))
	sb.WriteString("\n")
	sb.WriteString(f.styles.Muted.Render(fmt.Sprintf("mode: %s · tab/↑↓ move · ctrl+t switch mode · esc quit", f.calc.Mode())))
	sb.WriteString("\n")

	sb.WriteString(f.styles.Section.Render("Input Parameters"))
	sb.WriteString("\n")
	for i, field := range f.fields {
		info := equation.Describe(field)
		label := f.styles.Label
		if i == f.focus {
			label = f.styles.Focused
		}
		fmt.Fprintf(&sb, "%s%s %s  %s\n",
			label.Render(info.Label),
			f.inputs[i].View(),
			f.styles.Muted.Render(info.Unit),
			f.styles.Muted.Render(info.Description))
	}

	if errs := f.calc.Errors(); len(errs) > 0 {
		lines := []string{f.styles.ErrorTitle.Render("Input Errors:")}
		for _, e := range errs {
			lines = append(lines, "• "+e)
		}
		sb.WriteString(f.styles.ErrorBox.Render(strings.Join(lines, "\n")))
		sb.WriteString("\n")
	} else if err := f.calc.Failure(); err != nil {
		sb.WriteString(f.styles.ErrorBox.Render(f.styles.ErrorTitle.Render("Input Errors:") + "\n• " + sheath.ErrCalculationFailed.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString(f.styles.Section.Render("Calculation Results"))
	sb.WriteString("\n")
	result, ok := f.calc.Result()
	if !ok {
		sb.WriteString(f.styles.Placeholder.Render("Enter valid parameters to see results"))
		sb.WriteString("\n")
	} else {
		cards := make([]string, 0, len(result.Phases))
		for i, card := range display.Cards(result) {
			body := strings.Join([]string{
				f.styles.CardTitle.Render(card.Title),
				fmt.Sprintf("Real:      %s %s", card.Real, display.Unit),
				fmt.Sprintf("Imaginary: %sj %s", card.Imag, display.Unit),
				fmt.Sprintf("Magnitude: %s", f.styles.Value.Render(card.Magnitude+" "+display.Unit)),
				fmt.Sprintf("Phase:     %s", f.styles.Value.Render(card.Phase+"°")),
			}, "\n")
			cards = append(cards, f.styles.cardStyle(i).Render(body))
		}
		if f.width >= 120 {
			sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		} else {
			sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
		}
		sb.WriteString("\n")
	}

	eq := append([]string{"Equations Used:"}, f.calc.Mode().Equations()...)
	sb.WriteString(f.styles.Equations.Render(strings.Join(eq, "\n")))
	sb.WriteString("\n")
	return sb.String()
}

// Run 运行交互表单
func Run(calc *sheath.Calculator, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewForm(calc), opts...).Run()
	return err
}
