package cmd

import (
	"fmt"
	"strings"

	"memorial-banner/internal/features/banners/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5A524"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8F98")).Width(18)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#17C964"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F31260"))
)

func printKV(key, value string) {
	fmt.Printf("  %s %s\n", keyStyle.Render(key), value)
}

// swatch renders a colour block for hex colours and nothing otherwise.
func swatch(color string) string {
	if !strings.HasPrefix(color, "#") {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("      ")
}

func printStyle(title string, style domain.Style) {
	fmt.Println(titleStyle.Render(title))
	printKV("background-image", orUnset(style.BackgroundImage))
	printKV("background-color", orUnset(style.BackgroundColor)+" "+swatch(style.BackgroundColor))
	printKV("class", orUnset(style.Class))
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
