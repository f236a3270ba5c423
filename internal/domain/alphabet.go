package domain

import "strings"

// Alphabet is the ordered sequence of characters eligible for sampling in a
// single generation request.
type Alphabet struct {
	chars string
}

// BuildAlphabet concatenates the sequences of every enabled class in
// canonical order. The empty set yields an empty alphabet.
func BuildAlphabet(classes ClassSet) Alphabet {
	var b strings.Builder
	for _, c := range classes.Classes() {
		b.WriteString(c.Chars())
	}
	return Alphabet{chars: b.String()}
}

// Len returns the number of characters in the alphabet.
func (a Alphabet) Len() int {
	return len(a.chars)
}

// At returns the character at index i. It panics if i is out of range.
func (a Alphabet) At(i int) byte {
	return a.chars[i]
}

// String returns the alphabet characters in order.
func (a Alphabet) String() string {
	return a.chars
}
