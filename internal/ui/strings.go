package ui

import (
	"net/url"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// fitCell truncates then pads value to exactly width cells.
func fitCell(value string, width int) string {
	return padRight(truncate(value, width), width)
}

// clampLines word-wraps text to width and keeps at most limit lines. When
// lines are dropped the last kept line ends with an ellipsis.
func clampLines(text string, width, limit int) []string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" || width <= 0 || limit <= 0 {
		return nil
	}

	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if len(lines) <= limit {
		return lines
	}

	lines = lines[:limit]
	last := []rune(lines[limit-1])
	if len(last) > width-1 {
		last = last[:max(width-1, 0)]
	}
	lines[limit-1] = strings.TrimRight(string(last), " ") + "…"
	return lines
}

// imageLabel returns the file name at the end of an image URL.
func imageLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	p := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		p = u.Path
	}
	name := path.Base(p)
	if name == "." || name == "/" {
		return raw
	}
	return name
}
