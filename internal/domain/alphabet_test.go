package domain

import (
	"strings"
	"testing"
)

func TestBuildAlphabet(t *testing.T) {
	tests := []struct {
		name    string
		classes ClassSet
		want    string
	}{
		{"empty set", NewClassSet(), ""},
		{"digits only", NewClassSet(Digit), "0123456789"},
		{
			name:    "uppercase and digits",
			classes: NewClassSet(Uppercase, Digit),
			want:    "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789",
		},
		{
			name:    "caller order is ignored",
			classes: NewClassSet(Symbol, Lowercase),
			want:    "abcdefghijklmnopqrstuvwxyz!@#$%^&*()_+-=[]{}|;:,.<>?",
		},
		{
			name:    "all classes",
			classes: NewClassSet(AllClasses...),
			want:    UppercaseChars + LowercaseChars + DigitChars + SymbolChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildAlphabet(tt.classes)
			if got.String() != tt.want {
				t.Errorf("BuildAlphabet() = %q, want %q", got.String(), tt.want)
			}
			if got.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", got.Len(), len(tt.want))
			}
		})
	}
}

func TestBuildAlphabet_Deterministic(t *testing.T) {
	first := BuildAlphabet(NewClassSet(Uppercase, Digit))
	for i := 0; i < 10; i++ {
		again := BuildAlphabet(NewClassSet(Digit, Uppercase))
		if again != first {
			t.Fatalf("call %d: BuildAlphabet() = %q, want %q", i, again.String(), first.String())
		}
	}
}

func TestBuildAlphabet_SizeIsSumOfClasses(t *testing.T) {
	got := BuildAlphabet(NewClassSet(AllClasses...)).Len()
	if got != 88 {
		t.Errorf("Len() = %d, want 88", got)
	}
}

func TestAlphabet_At(t *testing.T) {
	a := BuildAlphabet(NewClassSet(Lowercase, Digit))

	if got := a.At(0); got != 'a' {
		t.Errorf("At(0) = %q, want 'a'", got)
	}
	if got := a.At(a.Len() - 1); got != '9' {
		t.Errorf("At(last) = %q, want '9'", got)
	}
	if strings.ContainsRune(a.String(), 'Z') {
		t.Error("expected alphabet not to contain 'Z'")
	}
}
