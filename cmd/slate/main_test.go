package main

import (
	"testing"
	"time"
)

func TestCLIGenerateListAndQueue(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{
		"generate", "Beam Reactions",
		"--category", "beam",
		"--description", "simply supported beam with a point load",
	}, env.configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	requireContains(t, out, "Generated content 1")
	requireContains(t, out, "ready")

	out, _, err = runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Beam Reactions")
	requireContains(t, out, "ready")

	out, _, err = runCLI(t, []string{"status", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Has diagram: yes")
	requireContains(t, out, "Has script:  yes")

	at := time.Now().Add(-time.Minute).Format("2006-01-02 15:04")
	out, _, err = runCLI(t, []string{"queue", "1", "--at", at}, env.configPath)
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	requireContains(t, out, "Queued content 1")

	out, _, err = runCLI(t, []string{"queue-status"}, env.configPath)
	if err != nil {
		t.Fatalf("queue-status: %v", err)
	}
	requireContains(t, out, "Publish queue: 1 visible")
	requireContains(t, out, "pending")

	out, _, err = runCLI(t, []string{"history", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "pending")
}

func TestCLIQueueAllSchedulesEveryReadyItem(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{
		"generate", "Axial Stress", "--category", "stress", "--count", "2",
	}, env.configPath); err != nil {
		t.Fatalf("generate: %v", err)
	}

	out, _, err := runCLI(t, []string{"queue-all"}, env.configPath)
	if err != nil {
		t.Fatalf("queue-all: %v", err)
	}
	requireContains(t, out, "Queued 2 content item(s)")

	out, _, err = runCLI(t, []string{"list", "--status", "queued"}, env.configPath)
	if err != nil {
		t.Fatalf("list queued: %v", err)
	}
	requireContains(t, out, "Axial Stress")
}

func TestCLIListRejectsUnknownStatus(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"list", "--status", "bogus"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestCLISettingsInterval(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"settings", "set-interval", "90"}, env.configPath)
	if err != nil {
		t.Fatalf("set-interval: %v", err)
	}
	requireContains(t, out, "Publish interval set to 90")

	out, _, err = runCLI(t, []string{"settings", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("settings show: %v", err)
	}
	requireContains(t, out, "1h30m0s")

	if _, _, err := runCLI(t, []string{"settings", "set-interval", "0"}, env.configPath); err == nil {
		t.Fatal("expected error for non-positive interval")
	}
}
