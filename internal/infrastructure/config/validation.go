package config

import (
	"fmt"
	"strings"
)

// Validate reports structural problems that make entries unusable regardless
// of which callbacks are registered: missing input or callback names.
// Name resolution is left to the binding resolver.
func Validate(doc *Document) error {
	var validationErrors []string

	for i, entry := range doc.Bindings {
		if strings.TrimSpace(entry.Input) == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("keyboard_and_mouse_bindings[%d].key must not be empty", i))
		}
		if strings.TrimSpace(entry.Callback) == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("keyboard_and_mouse_bindings[%d].callback must not be empty", i))
		}
		for j, mod := range entry.Modifiers {
			if strings.TrimSpace(mod) == "" {
				validationErrors = append(validationErrors, fmt.Sprintf("keyboard_and_mouse_bindings[%d].mod[%d] must not be empty", i, j))
			}
		}
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("bindings validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}
