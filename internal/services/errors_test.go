package services_test

import (
	"errors"
	"strings"
	"testing"

	"slate/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	cause := errors.New("connection refused")
	err := services.Wrap(services.ErrCollaborator, "publisher", "post image", "twitter call failed", cause)

	if !errors.Is(err, services.ErrCollaborator) {
		t.Fatal("expected collaborator marker in chain")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause preserved in chain")
	}
	if !strings.Contains(err.Error(), "publisher: post image: twitter call failed") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatal("expected transient marker when none provided")
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestClassifiers(t *testing.T) {
	if !services.IsValidation(services.Wrap(services.ErrValidation, "planner", "queue", "content not ready", nil)) {
		t.Fatal("expected validation classification")
	}
	if services.IsConfiguration(errors.New("plain")) {
		t.Fatal("plain errors must not classify as configuration")
	}
}
