// Package errors defines the errors reported by icukit.
package errors

// ICUError wraps a failure reported by ICU.
type ICUError struct {
	Code int
}

func (e *ICUError) Error() string {
	return "icu error"
}
