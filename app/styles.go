package app

import "github.com/charmbracelet/lipgloss"

// Styles 界面样式
type Styles struct {
	Header      lipgloss.Style
	Section     lipgloss.Style
	Label       lipgloss.Style
	Focused     lipgloss.Style
	Muted       lipgloss.Style
	ErrorBox    lipgloss.Style
	ErrorTitle  lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	Value       lipgloss.Style
	Equations   lipgloss.Style
	Placeholder lipgloss.Style
}

// cardColors 各相卡片颜色
var cardColors = []lipgloss.Color{"#2563eb", "#16a34a", "#ea580c"}

// NewStyles 默认样式
func NewStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color("#2563eb")).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),
		Section: lipgloss.NewStyle().
			Bold(true).
			MarginTop(1),
		Label: lipgloss.NewStyle().
			Width(10),
		Focused: lipgloss.NewStyle().
			Width(10).
			Foreground(lipgloss.Color("#2563eb")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280")),
		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#dc2626")).
			Foreground(lipgloss.Color("#b91c1c")).
			Padding(0, 1).
			MarginTop(1),
		ErrorTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#991b1b")).
			Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginTop(1),
		CardTitle: lipgloss.NewStyle().
			Bold(true),
		Value: lipgloss.NewStyle().
			Bold(true),
		Equations: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#374151")).
			MarginTop(1),
		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280")).
			Italic(true).
			MarginTop(1),
	}
}

// cardStyle 第 i 相卡片样式
func (s Styles) cardStyle(i int) lipgloss.Style {
	return s.Card.BorderForeground(cardColors[i%len(cardColors)])
}
