// File: argsparser/errors.go

package argsparser

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is against errors returned by this package.
var (
	// ErrFormat indicates a token that is not of the form --arg=value
	ErrFormat = errors.New("malformed argument")
	// ErrUnknownArgument indicates a token naming an unregistered argument
	ErrUnknownArgument = errors.New("unknown argument")
	// ErrMissingMandatory indicates a mandatory argument absent from the command line
	ErrMissingMandatory = errors.New("mandatory argument not passed")
	// ErrConversion indicates a value that cannot be converted to the requested type
	ErrConversion = errors.New("conversion failed")
	// ErrNotFound indicates a name with no value in the parsed arguments
	ErrNotFound = errors.New("argument not found")
	// ErrEmptyDefault is carried by the panic raised when a default stringifies to ""
	ErrEmptyDefault = errors.New("empty default value")
	// ErrHelpRequested is returned by Parse when help was printed but the exit action returned
	ErrHelpRequested = errors.New("help requested")
)

// ArgError is the concrete error returned by parsing and retrieval.
// Its message is stable and names the offending token, name or value.
type ArgError struct {
	Kind error
	Msg  string
}

func (e *ArgError) Error() string {
	return e.Msg
}

func (e *ArgError) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, a ...any) *ArgError {
	return &ArgError{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}
