package ui

import (
	"fmt"
	"os"

	"get.pme.sh/hostsctl/config"

	"github.com/charmbracelet/lipgloss"
)

var (
	FaintColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8b8b8b"}
	FaintStyle = lipgloss.NewStyle().Foreground(FaintColor)
	OkColor    = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	OkStyle    = lipgloss.NewStyle().Foreground(OkColor)
	ErrColor   = lipgloss.AdaptiveColor{Light: "#770000", Dark: "#AA0000"}
	ErrStyle   = lipgloss.NewStyle().Foreground(ErrColor)
)

var errLinePfx = lipgloss.NewStyle().Background(ErrColor).Bold(true).Render(" ERR ") + " "
var okLinePfx = lipgloss.NewStyle().Background(OkColor).Bold(true).Render(" OK ") + " "

func RenderErrorLine(err any) string {
	if *config.Dumb {
		return "ERR " + Display(err)
	}
	return errLinePfx + Display(err)
}
func ExitWithError(err any) {
	fmt.Println(RenderErrorLine(err) + "\n")
	os.Exit(1)
}

func RenderOkLine(res any) string {
	if *config.Dumb {
		return "OK " + Display(res)
	}
	return okLinePfx + Display(res)
}
