package console

import (
	"errors"
	"fmt"

	"patterns/internal/domain"
)

// Describe converts an error into the single line shown to the user.
// Unknown errors keep their own text.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var inErr *domain.InputError
	if errors.As(err, &inErr) {
		return fmt.Sprintf("Invalid input: %s", inErr.Error())
	}

	var exErr *domain.ExportError
	if errors.As(err, &exErr) {
		return fmt.Sprintf("Failed to export report to %s: %v", exErr.Path, exErr.Err)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "Invalid input."
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Sprintf("Not found: %v", err)
	}
	return fmt.Sprintf("Error: %v", err)
}
