package letters

import (
	"errors"
	"testing"
)

func TestLetters(t *testing.T) {
	list := Letters()
	if len(list) != 26 {
		t.Fatalf("expected 26 letters, got %d", len(list))
	}
	for i, l := range list {
		want := Letter('A' + i)
		if l != want {
			t.Errorf("position %d: expected %q, got %q", i, want, l)
		}
		if i > 0 && list[i-1] >= l {
			t.Errorf("letters not strictly ascending at %d", i)
		}
	}
}

func TestLettersFreshSlice(t *testing.T) {
	a := Letters()
	a[0] = 'Z'
	if b := Letters(); b[0] != 'A' {
		t.Errorf("mutating a result leaked into the next call: %q", b[0])
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		input   string
		want    Letter
		wantErr bool
	}{
		{"A", 'A', false},
		{"a", 'A', false},
		{" z ", 'Z', false},
		{"", 0, true},
		{"AB", 0, true},
		{"1", 0, true},
		{"é", 0, true},
		{"-", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidLetter) {
					t.Fatalf("expected ErrInvalidLetter, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLower(t *testing.T) {
	if Letter('K').Lower() != "k" {
		t.Errorf("expected lowercase k")
	}
}
