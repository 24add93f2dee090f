package domain

import (
	"errors"
	"testing"
)

func TestParseAction(t *testing.T) {
	cases := []struct {
		in   string
		want Action
	}{
		{"W P 0", PlaceAt(White, 0)},
		{"B M 0 1", MoveTo(Black, 0, 1)},
		{"W R 5", RemoveAt(White, 5)},
		{"B P 23", PlaceAt(Black, 23)},
		{"  W   M 15   23 ", MoveTo(White, 15, 23)},
		// range checks belong to the engine
		{"W P 24", PlaceAt(White, 24)},
	}
	for _, tc := range cases {
		got, err := ParseAction(tc.in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %+v, got %+v", tc.in, tc.want, got)
		}
	}
}

func TestParseActionRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"W",
		"W P",
		"W P 1 2",
		"W M 1",
		"W M 1 2 3",
		"W R 1 2",
		"X P 1",
		"w P 1",
		"W Q 1",
		"W P one",
		"W P -1",
		"W M 1 x",
		"W P 1.5",
	}
	for _, in := range cases {
		_, err := ParseAction(in)
		if err == nil {
			t.Fatalf("%q: expected parse error", in)
		}
		if !errors.Is(err, ErrMalformedAction) {
			t.Fatalf("%q: expected ErrMalformedAction, got %v", in, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Input != in {
			t.Fatalf("%q: expected *ParseError carrying the input, got %#v", in, err)
		}
		if Kind(err) != nil {
			t.Fatalf("%q: parse errors must not look like rule errors", in)
		}
	}
}

func TestActionStringMatchesGrammar(t *testing.T) {
	for _, s := range []string{"W P 0", "B M 0 1", "W R 5", "B M 23 15"} {
		a := MustParseAction(s)
		if a.String() != s {
			t.Fatalf("expected %q, got %q", s, a.String())
		}
	}
}

func TestKindFindsWrappedSentinel(t *testing.T) {
	g := New()
	err := g.Play(PlaceAt(White, 30))
	if Kind(err) != ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", Kind(err))
	}
	if Kind(nil) != nil {
		t.Fatalf("nil error has no kind")
	}
}
