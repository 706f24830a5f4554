package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spaghettifunk/clay/engine/math"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F25D94")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	matrixStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F87"))
)

// renderMat4 prints m row by row inside a border.
func renderMat4(m math.Mat4) string {
	rows := make([]string, 4)
	for row := 0; row < 4; row++ {
		rows[row] = fmt.Sprintf("%10.6f %10.6f %10.6f %10.6f",
			m.Data[row], m.Data[4+row], m.Data[8+row], m.Data[12+row])
	}
	return matrixStyle.Render(strings.Join(rows, "\n"))
}

func printMatrix(w io.Writer, name string, m math.Mat4) {
	fmt.Fprintln(w, headerStyle.Render(name))
	fmt.Fprintln(w, renderMat4(m))
}

func printStat(w io.Writer, label string, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), fmt.Sprintf(format, args...))
}
