package simparams

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	// Loading continues with the remaining sources, so callers usually treat
	// this as informational rather than fatal.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrCLIParse indicates command-line arguments could not be parsed into
	// parameter overrides.
	ErrCLIParse = errors.New("failed to parse command-line arguments")
)

// UnknownParameterError reports a read of a parameter name that was never
// set. This is a contract violation between the code declaring defaults and
// the code reading them, not bad external input.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %q", e.Name)
}

// MalformedValueError reports stored text that does not parse as the type
// requested by an accessor. Name and Value identify the offending entry so
// the operator can correct the override source.
type MalformedValueError struct {
	Name  string // parameter name
	Value string // raw stored text
	Want  string // logical type requested: "integer", "real", "boolean"
	Err   error  // underlying parse error, if any
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("parameter %q: cannot parse %q as %s", e.Name, e.Value, e.Want)
}

func (e *MalformedValueError) Unwrap() error {
	return e.Err
}

// ValidationError reports a domain constraint violated by structurally valid
// parameters. Params lists every parameter involved in the failed rule with
// its current value.
type ValidationError struct {
	Constraint string
	Params     []Override
}

func (e *ValidationError) Error() string {
	if len(e.Params) == 0 {
		return fmt.Sprintf("invalid configuration: %s", e.Constraint)
	}
	pairs := make([]string, 0, len(e.Params))
	for _, p := range e.Params {
		pairs = append(pairs, p.Name+"="+p.Value)
	}
	return fmt.Sprintf("invalid configuration: %s: %s", strings.Join(pairs, " "), e.Constraint)
}
