package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slate/internal/logging"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slate.log")
	logger, err := logging.New(logging.Options{
		Level:       "info",
		Format:      "console",
		OutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("publish scheduled",
		logging.Int64(logging.FieldContentID, 42),
		logging.String(logging.FieldPlatform, "twitter"),
	)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "publish scheduled") {
		t.Fatalf("expected message in log output, got %q", out)
	}
	if !strings.Contains(out, "content_id=42") {
		t.Fatalf("expected content_id attr in log output, got %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("should not panic", logging.Error(nil))
}
