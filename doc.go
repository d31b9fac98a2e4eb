// Package simparams provides a typed, defaulted, validated parameter store
// for numerical-simulation runs, with textual overrides from TOML/JSON/YAML
// files, environment variables, and command-line arguments.
//
// Parameters are stored as text in insertion order and converted on read by
// strict typed accessors. A read of a name that was never declared is an
// *UnknownParameterError; text that does not parse as the requested type is a
// *MalformedValueError. There is no cross-type coercion: GetInt on a value
// written as "false" fails instead of returning 0.
//
// Quick Start:
//
//	model, err := simparams.NewBuilder().
//	    WithFile("run.toml").
//	    WithArgs(os.Args[1:]).
//	    WithEnvPrefix("SIM_").
//	    Build()
//	if err != nil && !errors.Is(err, simparams.ErrConfigNotFound) {
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(1)
//	}
//
//	lx, _ := model.ExtentX()
//	gamma, _ := model.LossRate()
//
// Default Precedence (highest to lowest):
//  1. Command-line arguments (--Lx=8)
//  2. Environment variables (SIM_LX=8)
//  3. Configuration file (run.toml)
//  4. Declared defaults
//
// Validation:
// Model.Check is the gate between configuration and computation. It returns a
// *ValidationError describing the violated constraint rather than terminating;
// the entry point decides whether to print and exit. After a successful Check
// the configuration is treated as read-only for the remainder of the run and
// may be read concurrently without further coordination.
package simparams
