package lxw

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row and Col are zero-based worksheet coordinates, matching the
// boundary's lxw_row_t and lxw_col_t widths.
type (
	Row = uint32
	Col = uint16
)

// cellName converts zero-based coordinates to an A1 reference.
func cellName(row Row, col Col) (string, error) {
	name, err := excelize.CoordinatesToCellName(int(col)+1, int(row)+1)
	if err != nil {
		return "", ErrWorksheetIndexOutOfRange
	}
	return name, nil
}

// absCellName converts zero-based coordinates to an absolute ($A$1)
// reference.
func absCellName(row Row, col Col) (string, error) {
	name, err := excelize.CoordinatesToCellName(int(col)+1, int(row)+1, true)
	if err != nil {
		return "", ErrWorksheetIndexOutOfRange
	}
	return name, nil
}

// quoteSheetName wraps a sheet name in single quotes when a formula
// reference requires it.
func quoteSheetName(name string) string {
	if strings.ContainsAny(name, " !$%&'()+,-;<=>@^{}~\"") {
		return "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}
	return name
}

// rangeFormula builds a "Sheet1!$A$1:$B$2" style reference. A single
// cell range collapses to one reference.
func rangeFormula(sheet string, firstRow Row, firstCol Col, lastRow Row, lastCol Col) (string, error) {
	first, err := absCellName(firstRow, firstCol)
	if err != nil {
		return "", err
	}
	if firstRow == lastRow && firstCol == lastCol {
		return fmt.Sprintf("%s!%s", quoteSheetName(sheet), first), nil
	}
	last, err := absCellName(lastRow, lastCol)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s!%s:%s", quoteSheetName(sheet), first, last), nil
}

// ParseCell converts an A1 style reference to zero-based row and col
// values, mirroring lxw_parse_cell. Absolute markers are accepted.
// Malformed input parses as (0, 0).
func ParseCell(cell string) (Row, Col) {
	col, row, err := excelize.CellNameToCoordinates(strings.ReplaceAll(cell, "$", ""))
	if err != nil || row < 1 || col < 1 {
		return 0, 0
	}
	return Row(row - 1), Col(col - 1)
}

// ParseCols converts an "A:C" column range to zero-based first and
// last column values, mirroring lxw_parse_cols.
func ParseCols(cols string) (Col, Col) {
	cols = strings.ReplaceAll(cols, "$", "")
	first, rest, found := strings.Cut(cols, ":")
	if !found {
		rest = first
	}
	fc, err1 := excelize.ColumnNameToNumber(first)
	lc, err2 := excelize.ColumnNameToNumber(rest)
	if err1 != nil || err2 != nil {
		return 0, 0
	}
	return Col(fc - 1), Col(lc - 1)
}

// ParseRange converts an "A1:B2" range to zero-based coordinates,
// mirroring lxw_parse_range. A single cell is a degenerate range.
func ParseRange(rangeRef string) (firstRow Row, firstCol Col, lastRow Row, lastCol Col) {
	first, rest, found := strings.Cut(rangeRef, ":")
	if !found {
		rest = first
	}
	firstRow, firstCol = ParseCell(first)
	lastRow, lastCol = ParseCell(rest)
	return firstRow, firstCol, lastRow, lastCol
}

// NameToRow extracts the zero-based row from a reference like "$A$32",
// mirroring lxw_name_to_row.
func NameToRow(rowStr string) Row {
	r, _ := ParseCell(rowStr)
	return r
}

// NameToCol extracts the zero-based column from a reference like
// "$B$1", mirroring lxw_name_to_col.
func NameToCol(colStr string) Col {
	_, c := ParseCell(colStr)
	return c
}

// NameToRow2 extracts the second row of a range like "A1:B2".
func NameToRow2(rangeStr string) Row {
	_, _, r, _ := ParseRange(rangeStr)
	return r
}

// NameToCol2 extracts the second column of a range like "A1:B2".
func NameToCol2(rangeStr string) Col {
	_, _, _, c := ParseRange(rangeStr)
	return c
}
