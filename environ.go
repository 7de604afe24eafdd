// environ.go
package loadenv

import (
	"os"
	"sort"
	"strings"
)

// Environ is the table a Store reads and writes. OSEnv is the process
// environment; MapEnv is an in-memory table.
type Environ interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	// Snapshot returns a copy of every entry.
	Snapshot() map[string]string
	// Replace makes the table hold exactly the given entries.
	Replace(entries map[string]string) error
}

// OSEnv is the process environment.
type OSEnv struct{}

func (OSEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (OSEnv) Setenv(key, value string) error { return os.Setenv(key, value) }

func (OSEnv) Snapshot() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		// Windows keeps per-drive entries like "=C:=C:\"; skip them.
		key, val, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		out[key] = val
	}
	return out
}

func (OSEnv) Replace(entries map[string]string) error {
	os.Clearenv()
	for k, v := range entries {
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}

// MapEnv is an in-memory Environ. The zero value is ready to use.
type MapEnv struct {
	m map[string]string
}

// NewMapEnv returns a MapEnv seeded with a copy of entries.
func NewMapEnv(entries map[string]string) *MapEnv {
	e := &MapEnv{m: make(map[string]string, len(entries))}
	for k, v := range entries {
		e.m[k] = v
	}
	return e
}

func (e *MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := e.m[key]
	return v, ok
}

func (e *MapEnv) Setenv(key, value string) error {
	if e.m == nil {
		e.m = make(map[string]string)
	}
	e.m[key] = value
	return nil
}

func (e *MapEnv) Snapshot() map[string]string {
	out := make(map[string]string, len(e.m))
	for k, v := range e.m {
		out[k] = v
	}
	return out
}

func (e *MapEnv) Replace(entries map[string]string) error {
	e.m = make(map[string]string, len(entries))
	for k, v := range entries {
		e.m[k] = v
	}
	return nil
}

// Table is the coerced view of an environment.
type Table map[string]Value

func coerceAll(entries map[string]string) Table {
	t := make(Table, len(entries))
	for k, v := range entries {
		t[k] = Coerce(v)
	}
	return t
}

// Get returns the value stored under key.
func (t Table) Get(key string) (Value, bool) {
	v, ok := t[key]
	return v, ok
}

// String returns the raw text under key, or "" if unset.
func (t Table) String(key string) string {
	return t[key].Str
}

// Int returns the integer under key. ok is false when the key is unset or
// did not coerce to an integer.
func (t Table) Int(key string) (n int64, ok bool) {
	v, found := t[key]
	if !found || v.Kind != KindInt {
		return 0, false
	}
	return v.Int, true
}

// Float returns the number under key. Integers are widened.
func (t Table) Float(key string) (f float64, ok bool) {
	v, found := t[key]
	if !found {
		return 0, false
	}
	switch v.Kind {
	case KindFloat:
		return v.Float, true
	case KindInt:
		return float64(v.Int), true
	default:
		return 0, false
	}
}

// Keys returns the keys of t sorted lexicographically.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Subset returns a table holding only the given keys that are present.
func (t Table) Subset(keys []string) Table {
	out := make(Table, len(keys))
	for _, k := range keys {
		if v, ok := t[k]; ok {
			out[k] = v
		}
	}
	return out
}
