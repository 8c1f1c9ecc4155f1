package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm shows title and warnings on out and asks the user to type "yes".
// It returns true only for that exact answer.
func Confirm(in io.Reader, out io.Writer, title string, warnings []string) bool {
	width := GetTerminalWidth()

	lines := []string{"", WarningTitleStyle.Render(fmt.Sprintf("   %s  %s", WarningMarker, title)), ""}
	for _, warning := range warnings {
		lines = append(lines, lipgloss.NewStyle().Foreground(TextColor).Render("   • "+warning))
	}
	lines = append(lines, "")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))

	fmt.Fprintln(out, box)
	fmt.Fprint(out, WarningTitleStyle.Render("Type \"yes\" to continue: "))

	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		fmt.Fprintln(out)
		return false
	}

	if strings.TrimSpace(input) == "yes" {
		return true
	}

	fmt.Fprintln(out, MutedStyle.Render("  Operation cancelled."))
	return false
}

// ConfirmRemoveSection asks before deleting a whole section.
func ConfirmRemoveSection(in io.Reader, out io.Writer, path, section string, keys int) bool {
	return Confirm(in, out, "REMOVE SECTION",
		[]string{
			fmt.Sprintf("Section [%s] in %s will be deleted", section, path),
			fmt.Sprintf("%d key(s) will be lost", keys),
			"Comments and formatting in the file are not preserved on save",
		},
	)
}
