// Package allowlist provides the immutable family-id allow-list checked on
// every photo request.
package allowlist

import (
	"sort"
	"strings"
)

// Set is an immutable membership set of family identifiers. An empty Set
// disables the check entirely: every non-empty id is allowed. This is
// fail-open by design when unconfigured.
type Set map[string]struct{}

// New creates a Set from a slice of ids. Empty entries are dropped.
func New(ids []string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

// Parse creates a Set from a comma-separated list of ids.
func Parse(list string) Set {
	if strings.TrimSpace(list) == "" {
		return Set{}
	}
	return New(strings.Split(list, ","))
}

// Allowed reports whether id may access the service. An empty set allows
// every id.
func (s Set) Allowed(id string) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[id]
	return ok
}

// Empty reports whether the set has no members (allow-all).
func (s Set) Empty() bool {
	return len(s) == 0
}

// IDs returns the members in sorted order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Config holds configuration for loading the allow-list.
type Config struct {
	Inline string `mapstructure:"allowed_family_ids"` // comma-separated ids from config
	File   string `mapstructure:"allowed_ids_file"`   // path to a JSON file containing an array of ids
}

// FromConfig builds a Set from the given configuration. Ids from the inline
// list and the file (if specified) are merged into a single set.
func FromConfig(cfg Config) (Set, error) {
	s := Parse(cfg.Inline)

	if cfg.File != "" {
		fileIDs, err := LoadIDsFromFile(cfg.File)
		if err != nil {
			return nil, err
		}
		for _, id := range fileIDs {
			id = strings.TrimSpace(id)
			if id != "" {
				s[id] = struct{}{}
			}
		}
	}

	return s, nil
}
