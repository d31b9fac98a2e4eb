package simparams

import (
	"strconv"
	"strings"
	"sync"
)

// Override is a single textual parameter assignment. Override sources (files,
// environment variables, command-line arguments) produce ordered slices of
// these; the defaults table and debug dumps use the same shape.
type Override struct {
	Name  string
	Value string
}

// Store holds simulation parameters as text, in insertion order, and converts
// them on read. Values carry no declared type; the type is determined by
// which accessor is called, and the text is re-parsed on each typed read.
//
// Access is guarded by a read-write mutex so a validated store can be read
// from concurrent simulation workers, but override merging from multiple
// sources must still be serialized by the caller before validation.
type Store struct {
	mutex  sync.RWMutex
	values map[string]string
	names  []string // insertion order, for deterministic enumeration
}

// NewStore creates an empty parameter store.
func NewStore() *Store {
	return &Store{
		values: make(map[string]string),
	}
}

// Set inserts or overwrites the value for name. Overwriting keeps the name's
// original position in the enumeration order. The text is not validated here;
// validation is deferred to typed reads.
func (s *Store) Set(name, text string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.set(name, text)
}

// set is the lock-free core of Set, shared with MergeOverrides.
func (s *Store) set(name, text string) {
	if _, exists := s.values[name]; !exists {
		s.names = append(s.names, name)
	}
	s.values[name] = text
}

// MergeOverrides applies each override in order as a Set. Repeated names keep
// the last value. Names never declared before are accepted and appended; a
// caller wanting an allowlist rejects them before merging (see
// LoadOptions.Strict).
func (s *Store) MergeOverrides(overrides []Override) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, o := range overrides {
		s.set(o.Name, o.Value)
	}
}

// GetText returns the raw stored text for name.
func (s *Store) GetText(name string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	text, exists := s.values[name]
	if !exists {
		return "", &UnknownParameterError{Name: name}
	}
	return text, nil
}

// GetInt parses the stored text as a signed base-10 integer. Partial parses
// are rejected: "4.5", "0x10", and trailing garbage are all malformed.
func (s *Store) GetInt(name string) (int64, error) {
	text, err := s.GetText(name)
	if err != nil {
		return 0, err
	}

	v, parseErr := strconv.ParseInt(text, 10, 64)
	if parseErr != nil {
		return 0, &MalformedValueError{Name: name, Value: text, Want: "integer", Err: parseErr}
	}
	return v, nil
}

// GetFloat parses the stored text as a floating-point number.
func (s *Store) GetFloat(name string) (float64, error) {
	text, err := s.GetText(name)
	if err != nil {
		return 0, err
	}

	v, parseErr := strconv.ParseFloat(text, 64)
	if parseErr != nil {
		return 0, &MalformedValueError{Name: name, Value: text, Want: "real", Err: parseErr}
	}
	return v, nil
}

// GetBool parses the stored text as a boolean. Accepted tokens are "true" and
// "false" in any letter case, plus the numeric flags "1" and "0". Anything
// else, including "yes" and the single-letter forms, is malformed.
func (s *Store) GetBool(name string) (bool, error) {
	text, err := s.GetText(name)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(text) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, &MalformedValueError{Name: name, Value: text, Want: "boolean"}
}

// Has reports whether name has been set.
func (s *Store) Has(name string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, exists := s.values[name]
	return exists
}

// Len returns the number of stored parameters.
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.names)
}

// Names returns all parameter names in insertion order.
func (s *Store) Names() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// All returns a snapshot of every parameter in insertion order.
func (s *Store) All() []Override {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]Override, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, Override{Name: name, Value: s.values[name]})
	}
	return out
}
