// Package blocklist owns the mutable set of blocked domain patterns.
package blocklist

import (
	"errors"
	"regexp"
	"strings"
	"sync"
)

// Errors surfaced to the UI collaborator. All are recoverable and leave
// the store unchanged.
var (
	ErrInvalidFormat  = errors.New("invalid website format")
	ErrAlreadyBlocked = errors.New("website is already blocked")
	ErrNotFound       = errors.New("website is not in the blocklist")
)

// patternRe accepts a bare domain: one or more alphanumeric/hyphen
// labels followed by an alphabetic TLD of at least two characters.
// A leading "www." is accepted but never stripped; "www.example.com"
// and "example.com" are distinct patterns.
var patternRe = regexp.MustCompile(`^(www\.)?([A-Za-z0-9-]+\.)+[A-Za-z]{2,}$`)

// Store is the shared, lock-protected set of blocked domain patterns.
// Entries are stored normalized (lowercase, no trailing dot) in
// insertion order and are unique case-insensitively. One instance lives
// for the whole process and is shared between the navigation guard and
// the list-editing surface.
type Store struct {
	mu       sync.RWMutex
	patterns []string
}

// NewStore creates an empty blocklist store.
func NewStore() *Store { return &Store{} }

// Normalize canonicalizes a raw user-entered pattern: surrounding
// whitespace and a trailing dot are dropped and the result is lowercased.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, ".")
	return strings.ToLower(s)
}

// Add validates raw and appends its normalized form to the set.
// Returns ErrInvalidFormat for malformed input and ErrAlreadyBlocked
// when a case-insensitive duplicate exists.
func (s *Store) Add(raw string) error {
	p := Normalize(raw)
	if !patternRe.MatchString(p) {
		return ErrInvalidFormat
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.patterns {
		if existing == p {
			return ErrAlreadyBlocked
		}
	}
	s.patterns = append(s.patterns, p)
	return nil
}

// Remove deletes an exact stored entry. Returns ErrNotFound if absent.
func (s *Store) Remove(pattern string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.patterns {
		if existing == pattern {
			s.patterns = append(s.patterns[:i], s.patterns[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Matches reports whether host equals a stored pattern or is a strict
// subdomain of one. The caller passes an already-lowercased host.
func (s *Store) Matches(host string) bool {
	_, ok := s.Match(host)
	return ok
}

// Match returns the pattern that blocks host, if any. The result does
// not depend on insertion order beyond which of several matching
// patterns is reported: the blocked/not-blocked outcome is
// order-independent.
func (s *Store) Match(host string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.patterns {
		if host == p || strings.HasSuffix(host, "."+p) {
			return p, true
		}
	}
	return "", false
}

// List returns a snapshot of the current patterns in insertion order.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Len returns the number of stored patterns.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patterns)
}
