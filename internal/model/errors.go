package model

import "fmt"

// ErrorKind is the closed error taxonomy (spec §7): every failure a
// command service produces fits exactly one of these.
type ErrorKind string

const (
	KindInvalidInput          ErrorKind = "InvalidInput"
	KindNotFound              ErrorKind = "NotFound"
	KindMissingExternalSymbol ErrorKind = "MissingExternalSymbol"
	KindConflict              ErrorKind = "Conflict"
	KindIOFailure             ErrorKind = "IOFailure"
	KindUnsupported           ErrorKind = "Unsupported"
)

// CLIError is the uniform error value command services return. Field
// carries the offending input field name for InvalidInput; Symbol carries
// the missing supertype simple name for MissingExternalSymbol; Detail
// wraps an underlying error message for IOFailure.
type CLIError struct {
	Kind    ErrorKind
	Message string
	Field   string
	Symbol  string
	Detail  string
}

func (e *CLIError) Error() string {
	return e.Reason()
}

// Reason renders the human-readable errorReason string for the envelope.
func (e *CLIError) Reason() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Field)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

// InvalidInput builds a CLIError naming the offending field.
func InvalidInput(field, message string) *CLIError {
	return &CLIError{Kind: KindInvalidInput, Message: message, Field: field}
}

// NotFound builds a CLIError naming what was sought.
func NotFound(message string) *CLIError {
	return &CLIError{Kind: KindNotFound, Message: message}
}

// MissingExternalSymbol builds a CLIError for an id-field search that
// walked into a supertype whose source is not in the project.
func MissingExternalSymbol(symbol string) *CLIError {
	return &CLIError{
		Kind:    KindMissingExternalSymbol,
		Message: fmt.Sprintf("missing source for supertype %q; supply it and retry", symbol),
		Symbol:  symbol,
	}
}

// Conflict builds a CLIError for a target that already exists.
func Conflict(path string) *CLIError {
	return &CLIError{Kind: KindConflict, Message: "file already exists", Detail: path}
}

// IOFailure wraps an underlying read/write/parse/rename error.
func IOFailure(message string, cause error) *CLIError {
	d := ""
	if cause != nil {
		d = cause.Error()
	}
	return &CLIError{Kind: KindIOFailure, Message: message, Detail: d}
}

// Unsupported builds a CLIError for a language this command doesn't handle.
func Unsupported(message string) *CLIError {
	return &CLIError{Kind: KindUnsupported, Message: message}
}

// AsCLIError recovers a *CLIError from a panic/arbitrary error at the
// outermost boundary, converting anything else to IOFailure (spec §7).
func AsCLIError(err error) *CLIError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*CLIError); ok {
		return ce
	}
	return IOFailure("internal error", err)
}
