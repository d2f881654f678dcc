// Package model defines the command envelope: the single generic result
// type every command service returns, and its JSON wire shape.
package model

import "encoding/json"

// Envelope is the sum-type result every command service returns: either a
// successful payload or a human-readable failure reason.
//
// The wire shape always emits "succeed"; "data" is emitted only when a
// payload is present, "errorReason" only on failure. The one documented
// exception is MissingExternalSymbol (see CLIError.Kind): create-repository
// needs to hand the caller a symbol name to retry with even though the
// operation failed, so that one error kind carries both errorReason and
// data. Every other failure carries errorReason alone.
type Envelope struct {
	Succeed     bool   `json:"succeed"`
	Data        any    `json:"data,omitempty"`
	ErrorReason string `json:"errorReason,omitempty"`
}

// Success builds a success envelope carrying payload.
func Success(payload any) *Envelope {
	return &Envelope{Succeed: true, Data: payload}
}

// SuccessEmpty builds a success envelope with no payload.
func SuccessEmpty() *Envelope {
	return &Envelope{Succeed: true}
}

// Failure builds a failure envelope. reason must be non-empty.
func Failure(reason string) *Envelope {
	if reason == "" {
		reason = "unknown error"
	}
	return &Envelope{Succeed: false, ErrorReason: reason}
}

// FromError converts a CLIError (or any error) into a failure envelope,
// honoring the MissingExternalSymbol payload exception.
func FromError(err error) *Envelope {
	if ce, ok := err.(*CLIError); ok {
		env := Failure(ce.Reason())
		if ce.Kind == KindMissingExternalSymbol {
			env.Data = map[string]any{
				"requiresSymbolSource": true,
				"symbol":               ce.Symbol,
			}
		}
		return env
	}
	return Failure(err.Error())
}

// MarshalJSON guarantees a stable, compact encoding (no pretty-printing)
// regardless of caller-supplied encoder settings.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	type wire Envelope
	return json.Marshal((*wire)(e))
}
