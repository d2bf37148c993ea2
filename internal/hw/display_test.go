package hw

import (
	"strings"
	"testing"
)

func TestTextDisplay_StartsBlank(t *testing.T) {
	d := NewTextDisplay()
	for i := 0; i < DisplayRows; i++ {
		if got := d.Row(i); got != strings.Repeat(" ", DisplayCols) {
			t.Errorf("row %d not blank: %q", i, got)
		}
	}
}

func TestTextDisplay_Printf(t *testing.T) {
	d := NewTextDisplay()
	d.Locate(0, 0)
	d.Printf("speed: %9.1f", 88.5)
	d.Locate(1, 0)
	d.Printf("odom : %9.1f", 1234.5)

	if got := d.Row(0); got != "speed:      88.5" {
		t.Errorf("row 0 = %q", got)
	}
	if got := d.Row(1); got != "odom :    1234.5" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestTextDisplay_ClipsAtLastColumn(t *testing.T) {
	d := NewTextDisplay()
	d.Locate(0, 10)
	d.Printf("overflowing text")

	if got := d.Row(0); got != "          overfl" {
		t.Errorf("row 0 = %q", got)
	}
	if got := d.Row(1); got != strings.Repeat(" ", DisplayCols) {
		t.Errorf("overflow leaked onto row 1: %q", got)
	}
}

func TestTextDisplay_LocateClamps(t *testing.T) {
	d := NewTextDisplay()
	d.Locate(-1, 99)
	d.Printf("x")
	if got := d.Row(0); got[DisplayCols-1] != 'x' {
		t.Errorf("expected clamped write at last column, row = %q", got)
	}
}

func TestTextDisplay_Clear(t *testing.T) {
	d := NewTextDisplay()
	d.Locate(1, 3)
	d.Printf("dirty")
	d.Clear()
	if got := d.Row(1); got != strings.Repeat(" ", DisplayCols) {
		t.Errorf("row 1 not cleared: %q", got)
	}
}
