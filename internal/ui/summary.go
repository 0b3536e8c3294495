package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// FileStatus renders a one-line verdict for a checked file.
func FileStatus(path string, errors, warnings int, fromCache bool) string {
	status := okStyle.Render("ok")
	if errors > 0 {
		status = failStyle.Render(fmt.Sprintf("%d error(s)", errors))
	}
	line := fmt.Sprintf("%s %s", truncatePath(path, 60), status)
	if warnings > 0 {
		line += " " + warnStyle.Render(fmt.Sprintf("%d warning(s)", warnings))
	}
	if fromCache {
		line += " " + faintStyle.Render("(cached)")
	}
	return line
}

// Summary renders the run-level closing line.
func Summary(files, failed, errors, warnings int) string {
	if failed == 0 {
		s := okStyle.Render(fmt.Sprintf("%d file(s) ok", files))
		if warnings > 0 {
			s += " " + warnStyle.Render(fmt.Sprintf("%d warning(s)", warnings))
		}
		return s
	}
	return failStyle.Render(fmt.Sprintf("%d of %d file(s) failed", failed, files)) +
		" " + fmt.Sprintf("%d error(s), %d warning(s)", errors, warnings)
}

// truncatePath shortens long paths from the left, keeping the tail that
// identifies the file. Width is display cells, not bytes.
func truncatePath(path string, width int) string {
	if runewidth.StringWidth(path) <= width {
		return path
	}
	return "…" + runewidth.TruncateLeft(path, runewidth.StringWidth(path)-width+1, "")
}
