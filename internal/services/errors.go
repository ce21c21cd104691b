package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks a caller precondition failure. Nothing was mutated.
	ErrValidation = errors.New("validation error")
	// ErrCollaborator marks a failed synthesis, render, or publish call.
	ErrCollaborator = errors.New("collaborator error")
	// ErrConfiguration marks a missing or unusable collaborator configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrNotFound marks a lookup for a row that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrTransient marks a failure worth retrying on the next iteration.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsValidation reports whether an error chain carries the validation marker.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsConfiguration reports whether an error chain carries the configuration marker.
func IsConfiguration(err error) bool { return errors.Is(err, ErrConfiguration) }

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
