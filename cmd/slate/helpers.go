package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"slate/internal/store"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

func formatTimestamp(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Local().Format("2006-01-02 15:04")
}

func formatOptionalTimestamp(value *time.Time) string {
	if value == nil {
		return "-"
	}
	return formatTimestamp(*value)
}

func truncate(value string, max int) string {
	trimmed := strings.TrimSpace(value)
	if max <= 3 || len(trimmed) <= max {
		return trimmed
	}
	return trimmed[:max-3] + "..."
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func colorizeStatus(status string, colorize bool) string {
	if !colorize {
		return status
	}
	var color string
	switch store.ContentStatus(status) {
	case store.StatusPublished, store.StatusReady:
		color = ansiGreen
	case store.StatusQueued, store.StatusGenerating:
		color = ansiYellow
	case store.StatusFailed:
		color = ansiRed
	case store.StatusDraft:
		color = ansiBlue
	default:
		switch store.ScheduleStatus(status) {
		case store.SchedulePublished:
			color = ansiGreen
		case store.SchedulePending:
			color = ansiYellow
		case store.ScheduleFailed:
			color = ansiRed
		}
	}
	if color == "" {
		return status
	}
	return color + status + ansiReset
}
