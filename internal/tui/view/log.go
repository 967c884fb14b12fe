package view

import (
	"fmt"
	"strings"

	"rgbctl/internal/tui/design"
	"rgbctl/pkg/logging"
)

// FormatLogEntry renders an entry as a single activity log line.
func FormatLogEntry(entry logging.LogEntry) string {
	line := fmt.Sprintf("%s [%s] [%s] %s",
		entry.Timestamp.Format("15:04:05.000"),
		entry.Level.String(),
		entry.Subsystem,
		entry.Message)
	if entry.Err != nil {
		line = fmt.Sprintf("%s -- Error: %v", line, entry.Err)
	}
	return line
}

// PrepareLogContent applies colour styles based on log level markers.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
