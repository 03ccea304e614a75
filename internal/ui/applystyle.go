package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorCyan   = lipgloss.Color("6")
	colorGray   = lipgloss.Color("245")

	titleStyle      = Style{Bold: true}
	titleErrorStyle = Style{Fg: colorRed, Bold: true}
	frameStyle      = Style{Fg: colorGreen}
	folderStyle     = Style{Fg: colorCyan}
	sizeStyle       = Style{Fg: colorGray}
	barStyle        = Style{Fg: colorYellow}
	selectedStyle   = Style{Reverse: true}
	helpStyle       = Style{Fg: colorGray}
	warnLogStyle    = Style{Fg: colorYellow}
	errorLogStyle   = Style{Fg: colorRed}

	spinnerStyle = lipgloss.NewStyle().Foreground(colorCyan)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)
