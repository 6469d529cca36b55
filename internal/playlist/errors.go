package playlist

import "fmt"

// FormatError reports that a document matched neither supported page
// layout, or that its embedded state region could not be isolated.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("detecting page format: %s", e.Reason)
}

// NavigationError reports a break in the fixed path through the embedded
// state JSON. The path mirrors an external, versioned, undocumented data
// shape, so a missing step fails loudly rather than degrading silently.
type NavigationError struct {
	Step string
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigating embedded state: missing %q", e.Step)
}

// FieldError reports a required field absent from an otherwise-located
// video block.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("video block missing required field %q", e.Field)
}
