package domain

import "math"

// Strength is a qualitative label for a requested length.
type Strength string

const (
	// StrengthWeak is reported for lengths below 8.
	StrengthWeak Strength = "weak"
	// StrengthMedium is reported for lengths from 8 up to 15.
	StrengthMedium Strength = "medium"
	// StrengthStrong is reported for lengths of 16 and above.
	StrengthStrong Strength = "strong"
)

// Length thresholds for Classify.
const (
	MediumMinLength = 8
	StrongMinLength = 16
)

// Classify maps a length to a strength label. The label depends on length
// alone; a digits-only string is labelled the same as one drawn from all
// four classes. EntropyBits gives the alphabet-aware figure.
func Classify(length int) Strength {
	switch {
	case length < MediumMinLength:
		return StrengthWeak
	case length < StrongMinLength:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}

// Title returns the label with its first letter capitalised, for display.
func (s Strength) Title() string {
	switch s {
	case StrengthWeak:
		return "Weak"
	case StrengthMedium:
		return "Medium"
	case StrengthStrong:
		return "Strong"
	}
	return string(s)
}

// EntropyBits returns length * log2(alphabetSize), the entropy of a string
// drawn uniformly from an alphabet of that size. Non-positive inputs yield 0.
func EntropyBits(length, alphabetSize int) float64 {
	if length <= 0 || alphabetSize <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(alphabetSize))
}
