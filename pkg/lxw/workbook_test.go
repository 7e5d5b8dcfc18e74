package lxw

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempWorkbook(t *testing.T) *Workbook {
	t.Helper()
	return NewWorkbook(filepath.Join(t.TempDir(), "test.xlsx"))
}

func TestAddWorksheetDefaultNames(t *testing.T) {
	wb := tempWorkbook(t)

	ws1, err := wb.AddWorksheet("")
	if err != nil {
		t.Fatalf("AddWorksheet: %v", err)
	}
	if ws1.Name() != "Sheet1" {
		t.Errorf("first sheet name = %q, want Sheet1", ws1.Name())
	}

	ws2, err := wb.AddWorksheet("")
	if err != nil {
		t.Fatalf("AddWorksheet: %v", err)
	}
	if ws2.Name() != "Sheet2" {
		t.Errorf("second sheet name = %q, want Sheet2", ws2.Name())
	}
}

func TestValidateSheetName(t *testing.T) {
	wb := tempWorkbook(t)
	if _, err := wb.AddWorksheet("Data"); err != nil {
		t.Fatalf("AddWorksheet: %v", err)
	}

	tests := []struct {
		name string
		want Error
	}{
		{strings.Repeat("x", 32), ErrSheetnameLengthExceeded},
		{"bad[name]", ErrInvalidSheetnameCharacter},
		{"with:colon", ErrInvalidSheetnameCharacter},
		{"'leading", ErrSheetnameStartEndApostrophe},
		{"trailing'", ErrSheetnameStartEndApostrophe},
		{"Data", ErrSheetnameAlreadyUsed},
		{"DATA", ErrSheetnameAlreadyUsed},
	}
	for _, tt := range tests {
		if _, err := wb.AddWorksheet(tt.name); Code(err) != tt.want {
			t.Errorf("AddWorksheet(%q) = %v, want code %d", tt.name, err, tt.want)
		}
	}
}

func TestGetWorksheetByName(t *testing.T) {
	wb := tempWorkbook(t)
	ws, err := wb.AddWorksheet("Results")
	if err != nil {
		t.Fatalf("AddWorksheet: %v", err)
	}
	if got := wb.GetWorksheetByName("Results"); got != ws {
		t.Errorf("GetWorksheetByName(Results) = %v, want %v", got, ws)
	}
	if got := wb.GetWorksheetByName("Missing"); got != nil {
		t.Errorf("GetWorksheetByName(Missing) = %v, want nil", got)
	}
}

func TestWorkbookClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	wb := NewWorkbook(path)
	ws, err := wb.AddWorksheet("")
	if err != nil {
		t.Fatalf("AddWorksheet: %v", err)
	}
	if err := ws.WriteString(0, 0, "hello", nil); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := wb.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}

	// A second close is reported as an ignored parameter.
	if err := wb.Close(); Code(err) != ErrNullParameterIgnored {
		t.Errorf("second Close = %v, want code %d", err, ErrNullParameterIgnored)
	}
}

func TestWorkbookCloseBadPath(t *testing.T) {
	wb := NewWorkbook(filepath.Join(t.TempDir(), "missing", "nested", "out.xlsx"))
	if _, err := wb.AddWorksheet(""); err != nil {
		t.Fatalf("AddWorksheet: %v", err)
	}
	if err := wb.Close(); Code(err) != ErrCreatingXlsxFile {
		t.Errorf("Close with bad path = %v, want code %d", err, ErrCreatingXlsxFile)
	}
}

func TestDefineName(t *testing.T) {
	wb := tempWorkbook(t)
	ws, err := wb.AddWorksheet("")
	if err != nil {
		t.Fatalf("AddWorksheet: %v", err)
	}
	if err := ws.WriteNumber(0, 0, 42, nil); err != nil {
		t.Fatalf("WriteNumber: %v", err)
	}
	if err := wb.DefineName("Answer", "=Sheet1!$A$1"); err != nil {
		t.Fatalf("DefineName: %v", err)
	}

	found := false
	for _, dn := range wb.File().GetDefinedName() {
		if dn.Name == "Answer" {
			found = true
		}
	}
	if !found {
		t.Error("defined name Answer not recorded")
	}
}

func TestSetProperties(t *testing.T) {
	wb := tempWorkbook(t)
	err := wb.SetProperties(DocProperties{
		Title:   "Annual Report",
		Author:  "QA",
		Company: "Acme",
	})
	if err != nil {
		t.Fatalf("SetProperties: %v", err)
	}
	props, err := wb.File().GetDocProps()
	if err != nil {
		t.Fatalf("GetDocProps: %v", err)
	}
	if props.Title != "Annual Report" {
		t.Errorf("title = %q, want Annual Report", props.Title)
	}
	if props.Creator != "QA" {
		t.Errorf("creator = %q, want QA", props.Creator)
	}
}

func TestCustomPropertiesUnsupported(t *testing.T) {
	wb := tempWorkbook(t)
	if err := wb.SetCustomPropertyString("dept", "eng"); Code(err) != ErrFeatureNotSupported {
		t.Errorf("SetCustomPropertyString = %v, want code %d", err, ErrFeatureNotSupported)
	}
	if err := wb.SetCustomPropertyNumber("", 1.5); Code(err) != ErrNullParameterIgnored {
		t.Errorf("SetCustomPropertyNumber with empty name = %v, want code %d", err, ErrNullParameterIgnored)
	}
}

func TestStyleIDCaching(t *testing.T) {
	wb := tempWorkbook(t)
	f := wb.AddFormat()
	f.SetBold()

	id1, err := wb.styleID(f)
	if err != nil {
		t.Fatalf("styleID: %v", err)
	}
	id2, err := wb.styleID(f)
	if err != nil {
		t.Fatalf("styleID: %v", err)
	}
	if id1 != id2 {
		t.Errorf("unchanged format produced ids %d and %d", id1, id2)
	}

	// Mutating the format invalidates the cached style.
	f.SetItalic()
	id3, err := wb.styleID(f)
	if err != nil {
		t.Fatalf("styleID: %v", err)
	}
	if id3 == id1 {
		t.Error("mutated format reused stale style id")
	}
}

func TestChartsheetMaterialize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.xlsx")
	wb := NewWorkbook(path)
	ws, err := wb.AddWorksheet("Data")
	if err != nil {
		t.Fatalf("AddWorksheet: %v", err)
	}
	for i, v := range []float64{2, 4, 8} {
		if err := ws.WriteNumber(Row(i), 0, v, nil); err != nil {
			t.Fatalf("WriteNumber: %v", err)
		}
	}

	chart := wb.AddChart(ChartTypeColumn)
	chart.AddSeries("", "=Data!$A$1:$A$3")

	cs, err := wb.AddChartsheet("")
	if err != nil {
		t.Fatalf("AddChartsheet: %v", err)
	}
	if cs.Name() != "Chart1" {
		t.Errorf("chartsheet name = %q, want Chart1", cs.Name())
	}
	if err := cs.SetChart(chart); err != nil {
		t.Fatalf("SetChart: %v", err)
	}
	if err := wb.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}
