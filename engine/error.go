package engine

import "fmt"

// NoOffset marks a CompileError whose failure position could not be
// determined; the message then refers to the whole pattern.
const NoOffset = -1

// CompileError describes a pattern the engine rejected.
//
// Offset, when known, is the byte position within Pattern where compilation
// failed. An Offset equal to len(Pattern) means the failure is at the very
// end of the pattern; the rendered message then omits the trailing context
// that would otherwise name the pattern suffix starting at the offset.
type CompileError struct {
	// Pattern is the rejected pattern text.
	Pattern string

	// Message is the engine-specific human-readable failure text.
	Message string

	// Offset is the byte position of the failure, or NoOffset.
	Offset int

	// Err is the underlying engine error, when one exists.
	Err error
}

// Error renders the failure the way configuration diagnostics expect it:
// message, pattern, and (for mid-pattern failures with a known offset) the
// pattern suffix starting at the failure position.
func (e *CompileError) Error() string {
	if e.Offset != NoOffset && e.Offset >= 0 && e.Offset < len(e.Pattern) {
		return fmt.Sprintf("compile failed: %s in %q at %q",
			e.Message, e.Pattern, e.Pattern[e.Offset:])
	}
	return fmt.Sprintf("compile failed: %s in %q", e.Message, e.Pattern)
}

// Unwrap returns the underlying engine error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// HasOffset reports whether the failure position is known.
func (e *CompileError) HasOffset() bool {
	return e.Offset != NoOffset
}
