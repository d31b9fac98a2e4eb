package simparams

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Source identifies an override origin, used to define load precedence.
type Source string

const (
	// SourceDefault represents the declared default values.
	SourceDefault Source = "default"
	// SourceFile represents values loaded from a configuration file.
	SourceFile Source = "file"
	// SourceEnv represents values loaded from environment variables.
	SourceEnv Source = "env"
	// SourceCLI represents values loaded from command-line arguments.
	SourceCLI Source = "cli"
)

// EnvTransformFunc converts a parameter name to an environment variable name.
type EnvTransformFunc func(name string) string

// LoadOptions configures how overrides are gathered and merged.
type LoadOptions struct {
	// Sources defines the precedence order (first = highest priority).
	// Default: [SourceCLI, SourceEnv, SourceFile, SourceDefault]
	Sources []Source

	// EnvPrefix is prepended to environment variable names.
	// Example: "SIM_" transforms "gamma" to "SIM_GAMMA".
	EnvPrefix string

	// EnvTransform customizes how names map to environment variables.
	// If nil, uses the default transformation (uppercase, prefixed).
	EnvTransform EnvTransformFunc

	// Strict rejects file and CLI overrides whose names were never declared.
	// Environment lookups only ever consult declared names.
	Strict bool
}

// DefaultLoadOptions returns the standard load options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Sources: []Source{SourceCLI, SourceEnv, SourceFile, SourceDefault},
	}
}

// Load merges overrides from a configuration file and command-line arguments
// with the default precedence.
func (s *Store) Load(filePath string, args []string) error {
	return s.LoadWithOptions(filePath, args, DefaultLoadOptions())
}

// LoadWithOptions merges overrides from every configured source. Sources are
// applied in reverse precedence order so that higher-priority sources
// overwrite lower-priority ones through ordinary merging. A missing file
// yields ErrConfigNotFound in the returned error but does not stop the
// remaining sources from loading.
func (s *Store) LoadWithOptions(filePath string, args []string, opts LoadOptions) error {
	var loadErrors []error

	for i := len(opts.Sources) - 1; i >= 0; i-- {
		switch opts.Sources[i] {
		case SourceDefault:
			// Defaults are already in place from construction.
			continue

		case SourceFile:
			if filePath == "" {
				continue
			}
			overrides, err := FileOverrides(filePath)
			if err != nil {
				if errors.Is(err, ErrConfigNotFound) {
					loadErrors = append(loadErrors, err)
					continue
				}
				return err // fatal parse or I/O error
			}
			if err := s.apply(overrides, opts.Strict); err != nil {
				return err
			}

		case SourceEnv:
			s.MergeOverrides(s.EnvOverrides(opts))

		case SourceCLI:
			if len(args) == 0 {
				continue
			}
			overrides, err := CLIOverrides(args)
			if err != nil {
				return err
			}
			if err := s.apply(overrides, opts.Strict); err != nil {
				return err
			}
		}
	}

	return errors.Join(loadErrors...)
}

// apply merges overrides, first rejecting undeclared names when strict.
func (s *Store) apply(overrides []Override, strict bool) error {
	if strict {
		for _, o := range overrides {
			if !s.Has(o.Name) {
				return &UnknownParameterError{Name: o.Name}
			}
		}
	}
	s.MergeOverrides(overrides)
	return nil
}

// FileOverrides reads a TOML, JSON, or YAML file and returns its scalar
// entries as textual overrides. The format is chosen by extension first, then
// by content sniffing. Nested tables are flattened to dot-separated names.
// Entries are returned in sorted name order so repeated loads of the same
// file merge deterministically.
func FileOverrides(path string) ([]Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}
	if format == "" {
		return nil, fmt.Errorf("unable to determine config format for file '%s'", path)
	}

	raw := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // preserve number precision
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
	}

	flat := flattenMap(raw, "")
	names := make([]string, 0, len(flat))
	for name := range flat {
		names = append(names, name)
	}
	sort.Strings(names)

	overrides := make([]Override, 0, len(names))
	for _, name := range names {
		overrides = append(overrides, Override{Name: name, Value: valueText(flat[name])})
	}
	return overrides, nil
}

// EnvOverrides looks up an environment variable for every declared parameter
// name and returns the ones that are set, in the store's enumeration order.
func (s *Store) EnvOverrides(opts LoadOptions) []Override {
	transform := opts.EnvTransform
	if transform == nil {
		transform = defaultEnvTransform(opts.EnvPrefix)
	}

	var overrides []Override
	for _, name := range s.Names() {
		if value, exists := os.LookupEnv(transform(name)); exists {
			overrides = append(overrides, Override{Name: name, Value: value})
		}
	}
	return overrides
}

// defaultEnvTransform creates the default environment variable transformer.
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(name string) string {
		return prefix + strings.ToUpper(name)
	}
}

// CLIOverrides parses command-line arguments into ordered overrides.
// Accepted forms are "--name=value", "--name value", and a bare "--name"
// meaning "true". Arguments that do not start with "--" are skipped, as is a
// lone "--" separator.
func CLIOverrides(args []string) ([]Override, error) {
	var overrides []Override

	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			i++
			continue
		}

		content := strings.TrimPrefix(arg, "--")
		if content == "" {
			i++
			continue
		}

		var name, value string
		if eq := strings.IndexByte(content, '='); eq >= 0 {
			name = content[:eq]
			value = content[eq+1:]
			i++
		} else if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
			// Boolean flag with no value.
			name = content
			value = "true"
			i++
		} else {
			name = content
			value = args[i+1]
			i += 2
		}

		if !isValidName(name) {
			return nil, fmt.Errorf("%w: invalid parameter name %q", ErrCLIParse, name)
		}
		overrides = append(overrides, Override{Name: name, Value: value})
	}

	return overrides, nil
}

// isValidName checks a parameter name: dot-separated segments of letters,
// digits, underscores, and dashes, each starting with a letter or underscore.
func isValidName(name string) bool {
	for _, segment := range strings.Split(name, ".") {
		if len(segment) == 0 {
			return false
		}
		first := rune(segment[0])
		if !isAlpha(first) && first != '_' {
			return false
		}
		for _, r := range segment[1:] {
			if !isAlpha(r) && !isDigit(r) && r != '-' && r != '_' {
				return false
			}
		}
	}
	return true
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// flattenMap converts a nested map to a flat map with dot-notation names.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			for subName, subValue := range flattenMap(nestedMap, name) {
				flat[subName] = subValue
			}
		} else {
			flat[name] = value
		}
	}

	return flat
}

// valueText renders a parsed scalar back to the store's textual form.
func valueText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// detectFileFormat determines the format from the file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect the format by parsing.
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format).
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// YAML is a superset of JSON, so check after JSON.
	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}
