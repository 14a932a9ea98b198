package tokenizer

import (
	"errors"
	"testing"

	"github.com/randalmurphal/promptlint/prompt"
)

// fixedTokenizer counts a constant for testing.
type fixedTokenizer struct {
	name string
}

func (f *fixedTokenizer) Name() string                            { return f.name }
func (f *fixedTokenizer) CountText(string) int                    { return 7 }
func (f *fixedTokenizer) CountMessages(msgs []prompt.Message) int { return 7 * len(msgs) }

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&fixedTokenizer{name: "fixed"})

	if !r.IsRegistered("fixed") {
		t.Error("expected 'fixed' to be registered")
	}

	tok, err := r.Get("fixed")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if tok.Name() != "fixed" {
		t.Errorf("got tokenizer %q, want %q", tok.Name(), "fixed")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("nope")
	if err == nil {
		t.Fatal("expected error for unregistered tokenizer")
	}
	if !errors.Is(err, ErrUnknownTokenizer) {
		t.Errorf("expected ErrUnknownTokenizer, got %v", err)
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&fixedTokenizer{name: "dup"})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	r.Register(&fixedTokenizer{name: "dup"})
}

func TestRegistry_Available(t *testing.T) {
	r := NewRegistry()
	r.Register(&fixedTokenizer{name: "zeta"})
	r.Register(&fixedTokenizer{name: "alpha"})

	names := r.Available()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("Available() = %v, want sorted [alpha zeta]", names)
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	tok, err := r.Get(ApproxName)
	if err != nil {
		t.Fatalf("default registry missing approx: %v", err)
	}
	if tok.Name() != ApproxName {
		t.Errorf("got %q, want %q", tok.Name(), ApproxName)
	}
}
