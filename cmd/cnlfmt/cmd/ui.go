package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	styleDetail  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func printSuccess(format string, args ...any) {
	fmt.Println(styleSuccess.Render("✓") + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styleError.Render("✗")+" "+fmt.Sprintf(format, args...))
}

func printDetail(format string, args ...any) {
	fmt.Println(styleDetail.Render(fmt.Sprintf(format, args...)))
}
