package blocklist

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

func TestStore_AddAndList(t *testing.T) {
	s := NewStore()

	if err := s.Add("Example.COM"); err != nil {
		t.Fatal(err)
	}

	list := s.List()
	if len(list) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(list))
	}
	if list[0] != "example.com" {
		t.Errorf("expected normalized example.com, got %q", list[0])
	}
}

func TestStore_AddNormalizes(t *testing.T) {
	s := NewStore()

	if err := s.Add("  example.com.  "); err != nil {
		t.Fatal(err)
	}
	if list := s.List(); list[0] != "example.com" {
		t.Errorf("expected trailing dot and whitespace stripped, got %q", list[0])
	}
}

func TestStore_AddDuplicate(t *testing.T) {
	s := NewStore()

	if err := s.Add("example.com"); err != nil {
		t.Fatal(err)
	}

	// Case-variant duplicate is rejected, not overwritten.
	err := s.Add("EXAMPLE.com")
	if !errors.Is(err, ErrAlreadyBlocked) {
		t.Fatalf("expected ErrAlreadyBlocked, got %v", err)
	}
	if len(s.List()) != 1 {
		t.Errorf("expected list unchanged after duplicate add, got %v", s.List())
	}
}

func TestStore_AddInvalidFormat(t *testing.T) {
	s := NewStore()

	bad := []string{
		"",
		"example",
		"not a domain",
		"http://example.com",
		"example.com/path",
		"example.c",
		".example.com",
		"example..com",
		"example.com:8080",
	}
	for _, raw := range bad {
		if err := s.Add(raw); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Add(%q): expected ErrInvalidFormat, got %v", raw, err)
		}
	}
	if len(s.List()) != 0 {
		t.Errorf("expected empty store after invalid adds, got %v", s.List())
	}
}

func TestStore_WWWIsDistinct(t *testing.T) {
	s := NewStore()

	if err := s.Add("www.example.com"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("example.com"); err != nil {
		t.Fatalf("example.com should be distinct from www.example.com: %v", err)
	}
	if len(s.List()) != 2 {
		t.Errorf("expected 2 patterns, got %v", s.List())
	}
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()

	if err := s.Add("example.com"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("example.org"); err != nil {
		t.Fatal(err)
	}

	if err := s.Remove("example.com"); err != nil {
		t.Fatal(err)
	}
	list := s.List()
	if len(list) != 1 || list[0] != "example.org" {
		t.Errorf("expected [example.org], got %v", list)
	}
}

func TestStore_RemoveNotFound(t *testing.T) {
	s := NewStore()

	if err := s.Add("example.com"); err != nil {
		t.Fatal(err)
	}

	err := s.Remove("missing.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(s.List()) != 1 {
		t.Errorf("expected store unchanged, got %v", s.List())
	}
}

func TestStore_Matches(t *testing.T) {
	s := NewStore()

	if err := s.Add("example.com"); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		host string
		want bool
	}{
		{"example.com", true},
		{"sub.example.com", true},
		{"deep.sub.example.com", true},
		{"example.org", false},
		{"notexample.com", false},     // no dot boundary
		{"example.com.evil.net", false},
		{"", false},
	}
	for _, c := range cases {
		if got := s.Matches(c.host); got != c.want {
			t.Errorf("Matches(%q) = %v, want %v", c.host, got, c.want)
		}
	}
}

func TestStore_MatchesInsertionOrderIndependent(t *testing.T) {
	a := NewStore()
	b := NewStore()

	for _, p := range []string{"example.com", "sub.example.com"} {
		if err := a.Add(p); err != nil {
			t.Fatal(err)
		}
	}
	for _, p := range []string{"sub.example.com", "example.com"} {
		if err := b.Add(p); err != nil {
			t.Fatal(err)
		}
	}

	for _, host := range []string{"example.com", "sub.example.com", "x.sub.example.com", "other.org"} {
		if a.Matches(host) != b.Matches(host) {
			t.Errorf("match outcome for %q depends on insertion order", host)
		}
	}
}

// randomLabel produces a valid alphanumeric domain label.
func randomLabel(rng *rand.Rand) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	n := 1 + rng.Intn(8)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

func randomDomain(rng *rand.Rand) string {
	labels := make([]string, 1+rng.Intn(3))
	for i := range labels {
		labels[i] = randomLabel(rng)
	}
	tlds := []string{"com", "org", "net", "io", "dev"}
	return strings.Join(labels, ".") + "." + tlds[rng.Intn(len(tlds))]
}

func TestStore_MatchesProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		s := NewStore()
		pattern := randomDomain(rng)
		if err := s.Add(pattern); err != nil {
			t.Fatalf("Add(%q): %v", pattern, err)
		}

		host := randomDomain(rng)
		switch rng.Intn(3) {
		case 0:
			host = pattern // exact
		case 1:
			host = fmt.Sprintf("%s.%s", randomLabel(rng), pattern) // subdomain
		}

		want := host == pattern || strings.HasSuffix(host, "."+pattern)
		if got := s.Matches(host); got != want {
			t.Fatalf("Matches(%q) against pattern %q = %v, want %v", host, pattern, got, want)
		}
	}
}

func TestStore_ConcurrentMatchAndAdd(t *testing.T) {
	s := NewStore()
	if err := s.Add("example.com"); err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = s.Add(fmt.Sprintf("site%d.com", i))
		}
	}()

	for i := 0; i < 200; i++ {
		if !s.Matches("sub.example.com") {
			t.Error("expected sub.example.com to stay blocked during adds")
		}
	}
	<-done
}
