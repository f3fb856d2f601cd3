package env

import (
	"os"
	"sort"
	"strings"
)

// Entry is a single environment variable.
type Entry struct {
	Name  string
	Value string
}

// Source supplies environment variables.
type Source interface {
	// Environ returns the environment as "KEY=VALUE" strings.
	Environ() []string
	// LookupEnv returns the value of key and whether it is set.
	LookupEnv(key string) (string, bool)
}

// OsSource reads the real process environment.
type OsSource struct{}

func (OsSource) Environ() []string {
	return os.Environ()
}

func (OsSource) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapSource is an in-memory Source. Environ returns the keys sorted so the
// order is stable across calls.
type MapSource map[string]string

func (m MapSource) Environ() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+m[k])
	}
	return out
}

func (m MapSource) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Snapshot is the environment as read once from a Source, in source order.
type Snapshot struct {
	entries []Entry
	index   map[string]int
}

// Collect reads src once. Each string is split at the first '=' after the
// first byte, so Windows drive entries such as "=C:=C:\" keep their name.
// Strings without a separator are skipped and a repeated name keeps its
// first value, which is what os.Getenv returns.
func Collect(src Source) Snapshot {
	raw := src.Environ()
	s := Snapshot{
		entries: make([]Entry, 0, len(raw)),
		index:   make(map[string]int, len(raw)),
	}
	for _, kv := range raw {
		if kv == "" {
			continue
		}
		i := strings.IndexByte(kv[1:], '=')
		if i < 0 {
			continue
		}
		name, value := kv[:i+1], kv[i+2:]
		if _, dup := s.index[name]; dup {
			continue
		}
		s.index[name] = len(s.entries)
		s.entries = append(s.entries, Entry{Name: name, Value: value})
	}
	return s
}

// NewSnapshot builds a snapshot from already split entries. Entries with an
// empty name are dropped; the first of a repeated name wins.
func NewSnapshot(entries ...Entry) Snapshot {
	s := Snapshot{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		if _, dup := s.index[e.Name]; dup {
			continue
		}
		s.index[e.Name] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	return s
}

// Len returns the number of entries.
func (s Snapshot) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in source order.
func (s Snapshot) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Lookup finds name with an exact, case-sensitive match.
func (s Snapshot) Lookup(name string) (Entry, bool) {
	i, ok := s.index[name]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Collate returns a copy of entries sorted by name in byte order.
func Collate(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
