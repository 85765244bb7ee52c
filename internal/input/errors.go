package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrUnknownInput is returned when a binding names an input that is not in the name table.
	ErrUnknownInput = errors.New("unknown input name")
	// ErrUnknownCallback is returned when a callback name was never registered.
	ErrUnknownCallback = errors.New("unknown callback name")
	// ErrUnknownModifier is returned when a binding lists an unrecognised modifier.
	ErrUnknownModifier = errors.New("unknown modifier name")
	// ErrDuplicateCallback is returned by a strict registry on re-registration.
	ErrDuplicateCallback = errors.New("callback already registered")
	// ErrInvalidCallback is returned for an empty name or a nil handler.
	ErrInvalidCallback = errors.New("invalid callback")
)

// EntryError describes why a single binding entry was skipped.
type EntryError struct {
	Index      int
	Input      string
	Callback   string
	Suggestion string
	Err        error
}

func (e *EntryError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "binding %d (%s -> %s): %v", e.Index, e.Input, e.Callback, e.Err)
	if e.Suggestion != "" {
		fmt.Fprintf(&sb, " (did you mean %q?)", e.Suggestion)
	}
	return sb.String()
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Conflict records an identifier bound more than once by the same document.
// The later entry wins.
type Conflict struct {
	ID       Identifier
	Previous string
	Callback string
	Index    int
}

func (c Conflict) Error() string {
	return fmt.Sprintf("binding %d: %s already bound to %s, replaced by %s", c.Index, c.ID, c.Previous, c.Callback)
}

// maxSuggestionDistance bounds how far a typo may be from a known name.
const maxSuggestionDistance = 3

// suggest returns the candidate closest to name, or "" when none is close.
func suggest(name string, candidates []string) string {
	if name == "" {
		return ""
	}
	target := strings.ToUpper(name)
	best, bestDist := "", maxSuggestionDistance+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(target, strings.ToUpper(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
