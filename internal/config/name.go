package config

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName folds a profile name to its lookup key: NFKC-normalized,
// case-folded, with runs of whitespace, underscores and dashes collapsed to
// a single dash. "API Key", "api_key" and "api-key" share a key.
func NormalizeName(name string) string {
	s := cases.Fold().String(norm.NFKC.String(name))
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '\t' || r == '\n'
	})
	return strings.Join(fields, "-")
}
