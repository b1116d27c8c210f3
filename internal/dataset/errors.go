package dataset

import (
	"fmt"

	"cuelang.org/go/cue/token"
)

// Error codes for shape file loading.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeUnsupported  = "E003" // Unsupported file extension
	ErrCodeParseFailed  = "E004" // YAML or CUE parse failure
	ErrCodeNotFound     = "E005" // Path not found
	ErrCodeUnknownKind  = "E201" // Shape kind not recognized
	ErrCodeMissingField = "E202" // Required shape field absent
	ErrCodeNoShapes     = "E203" // No shapes list in file
)

// LoadError reports a shape file that could not be turned into a collection.
type LoadError struct {
	Code    string
	Message string
	Index   int       // Index of the offending shape, -1 for file-level errors
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Index >= 0 {
		msg = fmt.Sprintf("shapes[%d]: %s", e.Index, e.Message)
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, msg)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func fileError(code, format string, args ...any) *LoadError {
	return &LoadError{Code: code, Message: fmt.Sprintf(format, args...), Index: -1}
}
