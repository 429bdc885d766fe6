package store

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Registry is the explicit list of module-owned collection keys that take
// part in cloud sync. Each module registers its key once at startup; the
// sync layer iterates the registry instead of pattern-matching key names,
// so the set of synced collections is statically enumerable.
type Registry struct {
	keys []string
	seen map[string]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]bool)}
}

// Register adds a collection key. The key must carry the shared namespace
// prefix and must not be one of the explicitly tracked core keys.
func (r *Registry) Register(key string) error {
	if !strings.HasPrefix(key, Prefix) {
		return fmt.Errorf("collection key %q must start with %q", key, Prefix)
	}
	if CoreKeys()[key] {
		return fmt.Errorf("key %q is tracked explicitly and cannot be registered", key)
	}
	if r.seen[key] {
		return nil
	}
	r.seen[key] = true
	r.keys = append(r.keys, key)
	return nil
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Collect reads every registered collection present in the store and
// returns it keyed by storage key. Absent keys are skipped.
func (r *Registry) Collect(s *Store) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(r.keys))
	for _, key := range r.keys {
		raw, ok, err := s.Get(key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if json.Valid([]byte(raw)) {
			out[key] = json.RawMessage(raw)
			continue
		}
		quoted, err := json.Marshal(raw)
		if err != nil {
			continue
		}
		out[key] = quoted
	}
	return out, nil
}

// DefaultRegistry registers the scheduling and calendar collections.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, key := range []string{
		KeyJadualRelief,
		KeyJadualClassTeachers,
		KeyJadualSpeech,
		KeyJadualSlots,
		KeyTakwimSchoolWeeks,
		KeyTakwimExamWeeks,
	} {
		// Keys are compile-time constants; registration cannot fail.
		_ = r.Register(key)
	}
	return r
}
