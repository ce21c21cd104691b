package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"slate/internal/store"
)

func TestParseScheduleTimeLayouts(t *testing.T) {
	cases := []string{
		"2026-08-26T15:04:05Z",
		"2026-08-26 15:04:05",
		"2026-08-26 15:04",
	}
	for _, value := range cases {
		parsed, err := parseScheduleTime(value)
		if err != nil {
			t.Fatalf("parseScheduleTime(%q): %v", value, err)
		}
		if parsed.Year() != 2026 || parsed.Month() != time.August {
			t.Fatalf("parseScheduleTime(%q) = %v", value, parsed)
		}
	}

	if _, err := parseScheduleTime("not a time"); err == nil {
		t.Fatal("expected error for malformed time")
	}
}

func TestTruncateShortensLongValues(t *testing.T) {
	if got := truncate("short", 40); got != "short" {
		t.Fatalf("truncate(short) = %q", got)
	}
	long := "this error message is far too long to fit into a table cell"
	got := truncate(long, 20)
	if len(got) != 20 || got[17:] != "..." {
		t.Fatalf("truncate(long, 20) = %q", got)
	}
}

func TestLoadBatchRequestsParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.txt")
	content := "# comment line\n" +
		"Beam Reactions|beam|simply supported beam\n" +
		"\n" +
		"Axial Stress\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write batch file: %v", err)
	}

	requests, err := loadBatchRequests(path, store.TypeProblem)
	if err != nil {
		t.Fatalf("loadBatchRequests: %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(requests))
	}
	if requests[0].Topic != "Beam Reactions" || requests[0].Category != "beam" {
		t.Fatalf("unexpected first request: %+v", requests[0])
	}
	if requests[0].Description != "simply supported beam" {
		t.Fatalf("unexpected description: %q", requests[0].Description)
	}
	if requests[1].Topic != "Axial Stress" || requests[1].Category != "" {
		t.Fatalf("unexpected second request: %+v", requests[1])
	}
}

func TestLoadBatchRequestsRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("# only comments\n"), 0o644); err != nil {
		t.Fatalf("write batch file: %v", err)
	}
	if _, err := loadBatchRequests(path, store.TypeProblem); err == nil {
		t.Fatal("expected error for empty batch file")
	}
}
