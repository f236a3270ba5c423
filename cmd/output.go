package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/eykd/tokengen-go/internal/domain"
)

// writeJSON encodes v as JSON to w, handling I/O errors at the boundary.
func writeJSON(w io.Writer, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}

var strengthColors = map[domain.Strength]lipgloss.Color{
	domain.StrengthWeak:   lipgloss.Color("#EF4444"),
	domain.StrengthMedium: lipgloss.Color("#F59E0B"),
	domain.StrengthStrong: lipgloss.Color("#10B981"),
}

// renderStrength styles the strength label for w. Writers that are not
// terminals receive plain text.
func renderStrength(w io.Writer, s domain.Strength) string {
	style := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	if c, ok := strengthColors[s]; ok {
		style = style.Foreground(c)
	}
	return style.Render(s.Title())
}
