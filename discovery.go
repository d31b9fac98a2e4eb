package simparams

import (
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions configures automatic config file discovery.
type FileDiscoveryOptions struct {
	// Base name of the config file (without extension).
	Name string

	// Extensions to try, in order.
	Extensions []string

	// Custom search paths, tried before the standard locations.
	Paths []string

	// Environment variable holding an explicit path.
	EnvVar string

	// CLI flag holding an explicit path (e.g. "--config").
	CLIFlag string

	// Whether to search the XDG config directory.
	UseXDG bool

	// Whether to search the current directory.
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns sensible defaults for the given app name.
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".toml", ".yaml", ".json"},
		EnvVar:        strings.ToUpper(appName) + "_CONFIG",
		CLIFlag:       "--config",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// DiscoverFile finds a configuration file. Priority: the CLI flag, the
// environment variable, then each search path combined with each extension.
// Returns "" when nothing is found.
func DiscoverFile(opts FileDiscoveryOptions, args []string) string {
	if opts.CLIFlag != "" {
		for i, arg := range args {
			if arg == opts.CLIFlag && i+1 < len(args) {
				return args[i+1]
			}
			if strings.HasPrefix(arg, opts.CLIFlag+"=") {
				return strings.TrimPrefix(arg, opts.CLIFlag+"=")
			}
		}
	}

	if opts.EnvVar != "" {
		if path, exists := os.LookupEnv(opts.EnvVar); exists && path != "" {
			return path
		}
	}

	searchPaths := append([]string{}, opts.Paths...)
	if opts.UseCurrentDir {
		searchPaths = append(searchPaths, ".")
	}
	if opts.UseXDG {
		if configDir, err := os.UserConfigDir(); err == nil {
			searchPaths = append(searchPaths, filepath.Join(configDir, opts.Name))
		}
	}

	for _, dir := range searchPaths {
		for _, ext := range opts.Extensions {
			candidate := filepath.Join(dir, opts.Name+ext)
			if stat, err := os.Stat(candidate); err == nil && !stat.IsDir() {
				return candidate
			}
		}
	}

	return ""
}

// WithFileDiscovery resolves the configuration file path via DiscoverFile
// using the builder's arguments.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if path := DiscoverFile(opts, b.args); path != "" {
		b.file = path
	}
	return b
}
