package render

import (
	"fmt"
	"strings"

	"github.com/poojithagummadi/Model-Context-Protocol/pkg/records"
)

// TextBars draws one glyph bar per employee, scaled against Cap.
type TextBars struct {
	Cap    int
	Filled string
	Empty  string
}

// NewTextBars creates a TextBars renderer with the default glyphs.
func NewTextBars(limit int) *TextBars {
	if limit <= 0 {
		limit = DefaultCap
	}

	return &TextBars{
		Cap:    limit,
		Filled: "🟩",
		Empty:  "⬜",
	}
}

// Render implements Renderer. Balances above Cap draw a full bar; a
// non-positive Cap falls back to DefaultCap.
func (t *TextBars) Render(snapshot records.Snapshot) (string, error) {
	limit := t.Cap
	if limit <= 0 {
		limit = DefaultCap
	}

	lines := []string{"🗂️ Leave Balances Summary:\n"}

	for _, entry := range snapshot {
		filled := min(max(entry.Balance, 0), limit)
		bar := strings.Repeat(t.Filled, filled) + strings.Repeat(t.Empty, limit-filled)
		lines = append(lines, fmt.Sprintf("%s: %s (%d days left)", entry.EmployeeID, bar, entry.Balance))
	}

	return strings.Join(lines, "\n"), nil
}
