package simparams

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the current parameter set into the target struct or map.
// Every stored value is text, so decoding is weakly typed by design: "4"
// becomes an int field, "false" a bool field. Callers wanting strict parse
// failures use the typed accessors instead.
func (s *Store) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	s.mutex.RLock()
	data := make(map[string]any, len(s.values))
	for name, text := range s.values {
		data[name] = text
	}
	s.mutex.RUnlock()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}
	return nil
}
