package lxw

import "testing"

func TestParseCell(t *testing.T) {
	tests := []struct {
		cell string
		row  Row
		col  Col
	}{
		{"A1", 0, 0},
		{"B2", 1, 1},
		{"$B$2", 1, 1},
		{"AA1", 0, 26},
		{"XFD1048576", 1048575, 16383},
		{"", 0, 0},
		{"1A", 0, 0},
	}
	for _, tt := range tests {
		row, col := ParseCell(tt.cell)
		if row != tt.row || col != tt.col {
			t.Errorf("ParseCell(%q) = (%d, %d), want (%d, %d)", tt.cell, row, col, tt.row, tt.col)
		}
	}
}

func TestParseCols(t *testing.T) {
	tests := []struct {
		cols  string
		first Col
		last  Col
	}{
		{"A:C", 0, 2},
		{"$B:$D", 1, 3},
		{"F", 5, 5},
		{"", 0, 0},
	}
	for _, tt := range tests {
		first, last := ParseCols(tt.cols)
		if first != tt.first || last != tt.last {
			t.Errorf("ParseCols(%q) = (%d, %d), want (%d, %d)", tt.cols, first, last, tt.first, tt.last)
		}
	}
}

func TestParseRange(t *testing.T) {
	fr, fc, lr, lc := ParseRange("A1:C3")
	if fr != 0 || fc != 0 || lr != 2 || lc != 2 {
		t.Errorf("ParseRange(A1:C3) = (%d, %d, %d, %d), want (0, 0, 2, 2)", fr, fc, lr, lc)
	}

	fr, fc, lr, lc = ParseRange("B2")
	if fr != 1 || fc != 1 || lr != 1 || lc != 1 {
		t.Errorf("ParseRange(B2) = (%d, %d, %d, %d), want (1, 1, 1, 1)", fr, fc, lr, lc)
	}
}

func TestNameToRowCol(t *testing.T) {
	if got := NameToRow("$A$32"); got != 31 {
		t.Errorf("NameToRow($A$32) = %d, want 31", got)
	}
	if got := NameToCol("$B$1"); got != 1 {
		t.Errorf("NameToCol($B$1) = %d, want 1", got)
	}
	if got := NameToRow2("A1:B5"); got != 4 {
		t.Errorf("NameToRow2(A1:B5) = %d, want 4", got)
	}
	if got := NameToCol2("A1:D2"); got != 3 {
		t.Errorf("NameToCol2(A1:D2) = %d, want 3", got)
	}
}

func TestCellName(t *testing.T) {
	name, err := cellName(0, 0)
	if err != nil || name != "A1" {
		t.Errorf("cellName(0, 0) = (%q, %v), want (A1, nil)", name, err)
	}
	name, err = cellName(9, 2)
	if err != nil || name != "C10" {
		t.Errorf("cellName(9, 2) = (%q, %v), want (C10, nil)", name, err)
	}
	name, err = absCellName(1, 1)
	if err != nil || name != "$B$2" {
		t.Errorf("absCellName(1, 1) = (%q, %v), want ($B$2, nil)", name, err)
	}
}

func TestQuoteSheetName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Sheet1", "Sheet1"},
		{"My Sheet", "'My Sheet'"},
		{"Bob's", "'Bob''s'"},
	}
	for _, tt := range tests {
		if got := quoteSheetName(tt.name); got != tt.want {
			t.Errorf("quoteSheetName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRangeFormula(t *testing.T) {
	got, err := rangeFormula("Sheet1", 0, 0, 4, 0)
	if err != nil || got != "Sheet1!$A$1:$A$5" {
		t.Errorf("rangeFormula = (%q, %v), want (Sheet1!$A$1:$A$5, nil)", got, err)
	}

	// A single cell collapses to one reference.
	got, err = rangeFormula("Data Sheet", 1, 1, 1, 1)
	if err != nil || got != "'Data Sheet'!$B$2" {
		t.Errorf("rangeFormula = (%q, %v), want ('Data Sheet'!$B$2, nil)", got, err)
	}
}
