package lxw

import (
	"strings"
	"testing"
)

func testSheet(t *testing.T) (*Workbook, *Worksheet) {
	t.Helper()
	wb := tempWorkbook(t)
	ws, err := wb.AddWorksheet("")
	if err != nil {
		t.Fatalf("AddWorksheet: %v", err)
	}
	return wb, ws
}

func TestWriteString(t *testing.T) {
	wb, ws := testSheet(t)
	if err := ws.WriteString(0, 0, "hello", nil); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	got, err := wb.File().GetCellValue(ws.Name(), "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "hello" {
		t.Errorf("A1 = %q, want hello", got)
	}
}

func TestWriteStringTooLong(t *testing.T) {
	_, ws := testSheet(t)
	long := strings.Repeat("x", maxStringLength+1)
	if err := ws.WriteString(0, 0, long, nil); Code(err) != ErrMaxStringLengthExceeded {
		t.Errorf("WriteString = %v, want code %d", err, ErrMaxStringLengthExceeded)
	}
}

func TestWriteNumber(t *testing.T) {
	wb, ws := testSheet(t)
	if err := ws.WriteNumber(1, 1, 3.5, nil); err != nil {
		t.Fatalf("WriteNumber: %v", err)
	}
	got, err := wb.File().GetCellValue(ws.Name(), "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "3.5" {
		t.Errorf("B2 = %q, want 3.5", got)
	}
}

func TestWriteFormula(t *testing.T) {
	wb, ws := testSheet(t)
	if err := ws.WriteFormula(0, 0, "=SUM(B1:B5)", nil); err != nil {
		t.Fatalf("WriteFormula: %v", err)
	}
	got, err := wb.File().GetCellFormula(ws.Name(), "A1")
	if err != nil {
		t.Fatalf("GetCellFormula: %v", err)
	}
	if got != "SUM(B1:B5)" {
		t.Errorf("A1 formula = %q, want SUM(B1:B5)", got)
	}

	if err := ws.WriteFormula(0, 1, "", nil); Code(err) != ErrNullParameterIgnored {
		t.Errorf("empty formula = %v, want code %d", Code(err), ErrNullParameterIgnored)
	}
}

func TestWriteBlank(t *testing.T) {
	_, ws := testSheet(t)
	// Unformatted blanks are dropped without error.
	if err := ws.WriteBlank(0, 0, nil); err != nil {
		t.Errorf("WriteBlank without format = %v, want nil", err)
	}
}

func TestWriteDatetime(t *testing.T) {
	wb, ws := testSheet(t)
	f := wb.AddFormat()
	f.SetNumFormat("yyyy-mm-dd")
	dt := DateTime{Year: 2024, Month: 6, Day: 15}
	if err := ws.WriteDatetime(0, 0, dt, f); err != nil {
		t.Fatalf("WriteDatetime: %v", err)
	}
	got, err := wb.File().GetCellValue(ws.Name(), "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "2024-06-15" {
		t.Errorf("A1 = %q, want 2024-06-15", got)
	}
}

func TestWriteURL(t *testing.T) {
	wb, ws := testSheet(t)
	if err := ws.WriteURL(0, 0, "https://example.com", nil); err != nil {
		t.Fatalf("WriteURL: %v", err)
	}
	has, link, err := wb.File().GetCellHyperLink(ws.Name(), "A1")
	if err != nil {
		t.Fatalf("GetCellHyperLink: %v", err)
	}
	if !has || link != "https://example.com" {
		t.Errorf("A1 hyperlink = (%v, %q), want (true, https://example.com)", has, link)
	}

	long := "https://example.com/" + strings.Repeat("x", maxURLLength)
	if err := ws.WriteURL(1, 0, long, nil); Code(err) != ErrMaxURLLengthExceeded {
		t.Errorf("long URL = %v, want code %d", Code(err), ErrMaxURLLengthExceeded)
	}
	if err := ws.WriteURL(2, 0, "", nil); Code(err) != ErrNullParameterIgnored {
		t.Errorf("empty URL = %v, want code %d", Code(err), ErrNullParameterIgnored)
	}
}

func TestMergeRange(t *testing.T) {
	wb, ws := testSheet(t)
	if err := ws.MergeRange(0, 0, 0, 2, "merged", nil); err != nil {
		t.Fatalf("MergeRange: %v", err)
	}
	cells, err := wb.File().GetMergeCells(ws.Name())
	if err != nil {
		t.Fatalf("GetMergeCells: %v", err)
	}
	if len(cells) != 1 {
		t.Fatalf("merge cell count = %d, want 1", len(cells))
	}

	// Merging a single cell is a validation error.
	if err := ws.MergeRange(5, 5, 5, 5, "x", nil); Code(err) != ErrParameterValidation {
		t.Errorf("single cell merge = %v, want code %d", Code(err), ErrParameterValidation)
	}
}

func TestSetRowAndColumn(t *testing.T) {
	wb, ws := testSheet(t)
	if err := ws.SetRow(2, 30, nil); err != nil {
		t.Fatalf("SetRow: %v", err)
	}
	height, err := wb.File().GetRowHeight(ws.Name(), 3)
	if err != nil {
		t.Fatalf("GetRowHeight: %v", err)
	}
	if height != 30 {
		t.Errorf("row 3 height = %v, want 30", height)
	}

	if err := ws.SetColumn(0, 2, 15, nil); err != nil {
		t.Fatalf("SetColumn: %v", err)
	}
	width, err := wb.File().GetColWidth(ws.Name(), "B")
	if err != nil {
		t.Fatalf("GetColWidth: %v", err)
	}
	if width != 15 {
		t.Errorf("column B width = %v, want 15", width)
	}
}

func TestSetRowOptHidden(t *testing.T) {
	wb, ws := testSheet(t)
	if err := ws.SetRowOpt(4, 15, nil, RowColOptions{Hidden: true}); err != nil {
		t.Fatalf("SetRowOpt: %v", err)
	}
	visible, err := wb.File().GetRowVisible(ws.Name(), 5)
	if err != nil {
		t.Fatalf("GetRowVisible: %v", err)
	}
	if visible {
		t.Error("row 5 still visible after hiding")
	}
}

func TestHeaderFooterLimit(t *testing.T) {
	_, ws := testSheet(t)
	if err := ws.SetHeader("&CQuarterly Report"); err != nil {
		t.Fatalf("SetHeader: %v", err)
	}
	long := strings.Repeat("x", maxHeaderLength+1)
	if err := ws.SetHeader(long); Code(err) != Err255StringLengthExceeded {
		t.Errorf("long header = %v, want code %d", Code(err), Err255StringLengthExceeded)
	}
	if err := ws.SetFooter(long); Code(err) != Err255StringLengthExceeded {
		t.Errorf("long footer = %v, want code %d", Code(err), Err255StringLengthExceeded)
	}
}

func TestAutofilter(t *testing.T) {
	_, ws := testSheet(t)
	headers := []string{"Region", "Count"}
	for i, h := range headers {
		if err := ws.WriteString(0, Col(i), h, nil); err != nil {
			t.Fatalf("WriteString: %v", err)
		}
	}
	if err := ws.Autofilter(0, 0, 10, 1); err != nil {
		t.Fatalf("Autofilter: %v", err)
	}
	if err := ws.FilterColumn(0, FilterRule{
		Criteria:    FilterCriteriaEqualTo,
		ValueString: "East",
	}); err != nil {
		t.Fatalf("FilterColumn: %v", err)
	}

	// Filtering before setting a range is a validation error.
	_, ws2 := testSheet(t)
	err := ws2.FilterColumn(0, FilterRule{Criteria: FilterCriteriaEqualTo, ValueString: "x"})
	if Code(err) != ErrParameterValidation {
		t.Errorf("FilterColumn without range = %v, want code %d", Code(err), ErrParameterValidation)
	}
}

func TestPixelConversions(t *testing.T) {
	if got := pixelsToWidth(0); got != 0 {
		t.Errorf("pixelsToWidth(0) = %v, want 0", got)
	}
	if got := pixelsToWidth(75); got != 10 {
		t.Errorf("pixelsToWidth(75) = %v, want 10", got)
	}
}

func TestDetectImageExt(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"png", "\x89PNG\r\n\x1a\nrest", ".png"},
		{"jpeg", "\xff\xd8\xff\xe0rest", ".jpg"},
		{"gif", "GIF89a-rest", ".gif"},
		{"bmp", "BMxxxx", ".bmp"},
		{"unknown", "plain", ".png"},
	}
	for _, tt := range tests {
		if got := detectImageExt([]byte(tt.data)); got != tt.want {
			t.Errorf("detectImageExt(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestWriteComment(t *testing.T) {
	wb, ws := testSheet(t)
	ws.SetCommentsAuthor("QA")
	if err := ws.WriteComment(0, 0, "check this value"); err != nil {
		t.Fatalf("WriteComment: %v", err)
	}
	comments, err := wb.File().GetComments(ws.Name())
	if err != nil {
		t.Fatalf("GetComments: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("comment count = %d, want 1", len(comments))
	}
	if comments[0].Author != "QA" {
		t.Errorf("comment author = %q, want QA", comments[0].Author)
	}

	if err := ws.WriteComment(1, 0, ""); Code(err) != ErrNullParameterIgnored {
		t.Errorf("empty comment = %v, want code %d", Code(err), ErrNullParameterIgnored)
	}
}
