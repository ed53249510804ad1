package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	borderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	arrowStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	borderRunes    = "┌┐└┘─│╭╮╰╯═║╔╗╚╝├┤┬┴┼+-|"
	arrowRunes     = "^v<>▲▼◄►◥◤◢◣●○x"
)

// colorize applies lipgloss styling to a rendered canvas string as a
// terminal-only overlay: box borders in one style, arrowheads in
// another. The plain string this wraps is untouched — colorize never
// changes which runes are printed, only how a terminal displays them.
func colorize(rendered string) string {
	var sb strings.Builder
	for _, line := range strings.Split(rendered, "\n") {
		for _, r := range line {
			switch {
			case strings.ContainsRune(borderRunes, r):
				sb.WriteString(borderStyle.Render(string(r)))
			case strings.ContainsRune(arrowRunes, r):
				sb.WriteString(arrowStyle.Render(string(r)))
			default:
				sb.WriteRune(r)
			}
		}
		sb.WriteByte('\n')
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
