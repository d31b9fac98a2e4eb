// Command simparams builds a validated simulation parameter set from the
// declared defaults, a discovered configuration file, environment variables,
// and command-line overrides, then prints the resulting parameters in
// declaration order.
//
// Usage:
//
//	simparams [--config run.toml] [--Lx 8] [--gamma=0.5] [--b_periodic_x]
//
// Validation failure is terminal: the diagnostic goes to stderr and the
// process exits with a non-zero status before any expensive computation
// could start.
package main

import (
	"errors"
	"fmt"
	"os"

	"simparams"
)

func main() {
	args := os.Args[1:]
	file := simparams.DiscoverFile(simparams.DefaultDiscoveryOptions("simparams"), args)

	model, err := simparams.NewBuilder().
		WithFile(file).
		WithArgs(args).
		WithEnvPrefix("SIM_").
		Build()
	if err != nil && !errors.Is(err, simparams.ErrConfigNotFound) {
		fmt.Fprintln(os.Stderr, "simparams:", err)
		os.Exit(1)
	}

	for _, p := range model.All() {
		fmt.Printf("%s = %s\n", p.Name, p.Value)
	}
}
