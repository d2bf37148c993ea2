package hw

import (
	"fmt"
	"strings"
	"sync"
)

// TextDisplay is an in-memory 2x16 character surface. Writes past the
// last column are clipped rather than wrapped, so an overlong formatted
// field cannot corrupt the next row.
type TextDisplay struct {
	mu       sync.Mutex
	cells    [DisplayRows][DisplayCols]rune
	row, col int
}

func NewTextDisplay() *TextDisplay {
	d := &TextDisplay{}
	d.clearLocked()
	return d
}

func (d *TextDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearLocked()
}

func (d *TextDisplay) clearLocked() {
	for r := range d.cells {
		for c := range d.cells[r] {
			d.cells[r][c] = ' '
		}
	}
	d.row, d.col = 0, 0
}

// Locate moves the cursor, clamping out-of-range coordinates onto the
// surface.
func (d *TextDisplay) Locate(row, col int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.row = clampIndex(row, DisplayRows)
	d.col = clampIndex(col, DisplayCols)
}

// Printf writes formatted text at the cursor and advances it.
func (d *TextDisplay) Printf(format string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range fmt.Sprintf(format, args...) {
		if d.col >= DisplayCols {
			break
		}
		d.cells[d.row][d.col] = r
		d.col++
	}
}

// Row returns the contents of one display row as a 16-character string.
func (d *TextDisplay) Row(i int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	i = clampIndex(i, DisplayRows)
	var b strings.Builder
	for _, r := range d.cells[i] {
		b.WriteRune(r)
	}
	return b.String()
}

// Rows returns both display rows.
func (d *TextDisplay) Rows() []string {
	return []string{d.Row(0), d.Row(1)}
}

func clampIndex(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
