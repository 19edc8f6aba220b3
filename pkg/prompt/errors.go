package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrRequired is returned by the answer validator when a required
	// question is left without any maskable characters.
	ErrRequired = errors.New("prompt: a value is required")
	// ErrNoEngine is returned when a question has no engine attached.
	ErrNoEngine = errors.New("prompt: question has no mask engine")
)
