package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C or Cancel).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoPlaceholders is returned when the snapshot offers nothing to fill.
	ErrNoPlaceholders = errors.New("prompt: snapshot has no placeholders")
)
