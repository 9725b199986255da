package viz

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(38)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	statusAdvancing = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	statusPaused    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	statusScrubbing = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	statusFinished  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
)
