package mask

import "unicode/utf8"

// Result is the outcome of a Session change.
type Result struct {
	Display string
	Raw     string
	Deleted bool
}

// Session tracks the previous display and raw values of one input so that
// deleting a single character removes the last raw character. Without it,
// deleting a literal such as ")" is undone by the next Mask call, which
// re-inserts the literal.
type Session struct {
	engine      *Engine
	prevDisplay string
	prevRaw     string
}

// NewSession starts tracking changes for engine.
func NewSession(engine *Engine) *Session {
	return &Session{engine: engine}
}

// Change feeds the current display text of the input and returns the new
// display and raw values.
func (s *Session) Change(display string) Result {
	if s == nil || s.engine == nil {
		return Result{Display: display, Raw: display}
	}
	value := display
	deleted := false
	if s.prevDisplay != "" && utf8.RuneCountInString(s.prevDisplay)-utf8.RuneCountInString(display) == 1 {
		raw := []rune(s.prevRaw)
		if len(raw) > 0 {
			raw = raw[:len(raw)-1]
		}
		value = string(raw)
		deleted = true
	}

	result := Result{
		Display: s.engine.Mask(value),
		Raw:     s.engine.Unmask(value),
		Deleted: deleted,
	}
	s.prevDisplay = result.Display
	s.prevRaw = result.Raw
	return result
}

// Reset forgets the tracked values.
func (s *Session) Reset() {
	if s == nil {
		return
	}
	s.prevDisplay = ""
	s.prevRaw = ""
}
