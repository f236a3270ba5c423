package domain

import (
	"fmt"
	"strings"
)

// CharacterClass identifies one fixed group of characters that may be
// enabled for sampling.
type CharacterClass int

const (
	// Uppercase is the ASCII letters A through Z.
	Uppercase CharacterClass = iota
	// Lowercase is the ASCII letters a through z.
	Lowercase
	// Digit is the ASCII digits 0 through 9.
	Digit
	// Symbol is a fixed set of ASCII punctuation.
	Symbol
)

// Character sequences per class. The order inside each sequence is part of
// the alphabet contract.
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// AllClasses lists every class in canonical order.
var AllClasses = []CharacterClass{Uppercase, Lowercase, Digit, Symbol}

// Chars returns the ordered character sequence for the class, or "" for an
// unknown class.
func (c CharacterClass) Chars() string {
	switch c {
	case Uppercase:
		return UppercaseChars
	case Lowercase:
		return LowercaseChars
	case Digit:
		return DigitChars
	case Symbol:
		return SymbolChars
	}
	return ""
}

// String returns the canonical class name used in flags and config files.
func (c CharacterClass) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digit:
		return "digits"
	case Symbol:
		return "symbols"
	}
	return fmt.Sprintf("CharacterClass(%d)", int(c))
}

var classAliases = map[string]CharacterClass{
	"uppercase": Uppercase,
	"upper":     Uppercase,
	"u":         Uppercase,
	"lowercase": Lowercase,
	"lower":     Lowercase,
	"l":         Lowercase,
	"digits":    Digit,
	"digit":     Digit,
	"numbers":   Digit,
	"d":         Digit,
	"n":         Digit,
	"symbols":   Symbol,
	"symbol":    Symbol,
	"s":         Symbol,
}

// ParseClass resolves a class name or alias, ignoring case and surrounding
// whitespace.
func ParseClass(name string) (CharacterClass, error) {
	c, ok := classAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}
	return c, nil
}

// ClassSet is a set of character classes. The zero value is the empty set,
// which is a valid value that generation rejects.
type ClassSet uint8

// NewClassSet returns a set holding the given classes. Duplicates and
// ordering are irrelevant.
func NewClassSet(classes ...CharacterClass) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// ParseClassSet parses a list of class names into a set. An empty list
// yields the empty set.
func ParseClassSet(names []string) (ClassSet, error) {
	var s ClassSet
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c, err := ParseClass(name)
		if err != nil {
			return 0, err
		}
		s = s.With(c)
	}
	return s, nil
}

// With returns a copy of s that also holds c. Unknown classes are ignored.
func (s ClassSet) With(c CharacterClass) ClassSet {
	if c < Uppercase || c > Symbol {
		return s
	}
	return s | 1<<uint(c)
}

// Has reports whether c is in the set.
func (s ClassSet) Has(c CharacterClass) bool {
	if c < Uppercase || c > Symbol {
		return false
	}
	return s&(1<<uint(c)) != 0
}

// IsEmpty reports whether no class is enabled.
func (s ClassSet) IsEmpty() bool {
	return s.Classes() == nil
}

// Classes returns the enabled classes in canonical order.
func (s ClassSet) Classes() []CharacterClass {
	var out []CharacterClass
	for _, c := range AllClasses {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the canonical names of the enabled classes in canonical order.
func (s ClassSet) Names() []string {
	classes := s.Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}

// String joins the canonical names with commas.
func (s ClassSet) String() string {
	return strings.Join(s.Names(), ",")
}
