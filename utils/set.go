package utils

import "sort"

// StringSet tracks unique string keys, such as row fingerprints or
// categorical offenders.
type StringSet struct {
	seen map[string]struct{}
}

// NewStringSet creates an empty StringSet.
func NewStringSet() *StringSet {
	return &StringSet{seen: make(map[string]struct{})}
}

// Add returns true if the key was newly added, false if already present.
func (s *StringSet) Add(key string) bool {
	if _, exists := s.seen[key]; exists {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// Contains returns true if the key has already been added.
func (s *StringSet) Contains(key string) bool {
	_, exists := s.seen[key]
	return exists
}

// Size returns the number of unique keys tracked.
func (s *StringSet) Size() int {
	return len(s.seen)
}

// Sorted returns the keys in lexical order.
func (s *StringSet) Sorted() []string {
	keys := make([]string, 0, len(s.seen))
	for k := range s.seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
