package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	canvasStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	oneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	zeroStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	matrixHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)

	cellStyles = map[cellKind]lipgloss.Style{
		cellEdge:      lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		cellArrow:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		cellLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Underline(true),
		cellNode:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		cellNodeLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		cellActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	}
)
