package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"unsafe"

	"github.com/lvxlsx/lvxlsx/pkg/lxw"
)

func tempBook(t *testing.T) uintptr {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.xlsx")
	h := implWorkbookNew(path)
	if h == 0 {
		t.Fatalf("workbook_new(%q) returned handle 0", path)
	}
	return h
}

func cAddr(t *testing.T, s string) (uintptr, []byte) {
	t.Helper()
	buf := append([]byte(s), 0)
	return uintptr(unsafe.Pointer(&buf[0])), buf
}

func TestWorkbookNewEmptyFilename(t *testing.T) {
	if h := implWorkbookNew(""); h != 0 {
		t.Errorf("empty filename: got handle %#x, want 0", h)
	}
}

func TestWorkbookLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.xlsx")
	wbH := implWorkbookNew(path)
	if wbH == 0 {
		t.Fatal("workbook_new returned 0")
	}
	wsH := implWorkbookAddWorksheet(wbH, "Data")
	if wsH == 0 {
		t.Fatal("add_worksheet returned 0")
	}
	fmtH := implWorkbookAddFormat(wbH)
	if fmtH == 0 {
		t.Fatal("add_format returned 0")
	}

	if got := implWorksheetWriteString(wsH, 0, 0, "hello", fmtH); got != lxw.NoError {
		t.Fatalf("write_string: got %v, want 0", got)
	}
	if got := implWorkbookClose(wbH); got != lxw.NoError {
		t.Fatalf("close: got %v, want 0", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file: %v", err)
	}

	// Every handle issued under the workbook is dead after close.
	if got := implWorksheetWriteString(wsH, 0, 1, "late", 0); got != lxw.ErrNullParameterIgnored {
		t.Errorf("write after close: got %v, want %v", got, lxw.ErrNullParameterIgnored)
	}
	if got := implWorkbookClose(wbH); got != lxw.ErrNullParameterIgnored {
		t.Errorf("second close: got %v, want %v", got, lxw.ErrNullParameterIgnored)
	}
}

func TestNilWorksheetOperationsIgnored(t *testing.T) {
	if got := implWorksheetWriteNumber(0, 0, 0, 1.5, 0); got != lxw.ErrNullParameterIgnored {
		t.Errorf("write_number on handle 0: got %v, want %v", got, lxw.ErrNullParameterIgnored)
	}
	if got := implWorksheetMergeRange(0xdead, 0, 0, 1, 1, "x", 0); got != lxw.ErrNullParameterIgnored {
		t.Errorf("merge_range on bogus handle: got %v, want %v", got, lxw.ErrNullParameterIgnored)
	}
}

func TestGetByNameReturnsIssuedHandle(t *testing.T) {
	wbH := tempBook(t)
	wsH := implWorkbookAddWorksheet(wbH, "Summary")
	if got := implWorkbookGetWorksheetByName(wbH, "Summary"); got != wsH {
		t.Errorf("get_worksheet_by_name: got %#x, want %#x", got, wsH)
	}
	if got := implWorkbookGetWorksheetByName(wbH, "Missing"); got != 0 {
		t.Errorf("get of unknown name: got %#x, want 0", got)
	}
	implWorkbookClose(wbH)
}

func TestAxisHandleStable(t *testing.T) {
	wbH := tempBook(t)
	chartH := implWorkbookAddChart(wbH, lxw.ChartTypeLine)
	a1 := implChartAxisGet(chartH, lxw.AxisTypeY)
	a2 := implChartAxisGet(chartH, lxw.AxisTypeY)
	if a1 == 0 || a1 != a2 {
		t.Errorf("axis handles differ across gets: %#x vs %#x", a1, a2)
	}
	if x := implChartAxisGet(chartH, lxw.AxisTypeX); x == a1 {
		t.Errorf("x axis shares the y axis handle %#x", x)
	}
	implWorkbookClose(wbH)
	if got := implChartAxisGet(chartH, lxw.AxisTypeY); got != 0 {
		t.Errorf("axis get after close: got %#x, want 0", got)
	}
}

func TestLabelsCustomEmptyInput(t *testing.T) {
	wbH := tempBook(t)
	chartH := implWorkbookAddChart(wbH, lxw.ChartTypeColumn)
	seriesH := implChartAddSeries(chartH, "", "=Data!$B$1:$B$3")

	if got := implChartSeriesSetLabelsCustom(seriesH, nil, nil, lv); got != lxw.ErrNullParameterIgnored {
		t.Errorf("zero count: got %v, want %v", got, lxw.ErrNullParameterIgnored)
	}
	implWorkbookClose(wbH)
}

func TestLabelsCustomStaleSeries(t *testing.T) {
	wbH := tempBook(t)
	chartH := implWorkbookAddChart(wbH, lxw.ChartTypeColumn)
	seriesH := implChartAddSeries(chartH, "", "=Data!$B$1:$B$3")
	implWorkbookClose(wbH)

	addr, buf := cAddr(t, "Alpha")
	got := implChartSeriesSetLabelsCustom(seriesH, []uintptr{addr}, nil, lv)
	runtime.KeepAlive(buf)
	if got != lxw.ErrNullParameterIgnored {
		t.Errorf("stale series: got %v, want %v", got, lxw.ErrNullParameterIgnored)
	}
}

func TestLabelsCustomSlotAssembly(t *testing.T) {
	alpha, bufA := cAddr(t, "Alpha")
	gamma, bufG := cAddr(t, "Gamma")
	delta, bufD := cAddr(t, "Delta")
	values := []uintptr{alpha, 0, gamma, delta}
	hide := []byte{0, 1, 0, 1}

	labels := buildCustomLabels(values, hide, lv)
	runtime.KeepAlive(bufA)
	runtime.KeepAlive(bufG)
	runtime.KeepAlive(bufD)

	want := []lxw.DataLabel{
		{Value: "Alpha"},
		{Hide: true},
		{Value: "Gamma"},
		{Value: "Delta", Hide: true},
	}
	if len(labels) != len(want) {
		t.Fatalf("got %d labels, want %d", len(labels), len(want))
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("label %d: got %+v, want %+v", i, labels[i], want[i])
		}
	}
}

func TestLabelsCustomConversionApplied(t *testing.T) {
	conv := func(s string) string { return s + "-utf8" }

	addr, buf := cAddr(t, "raw")
	labels := buildCustomLabels([]uintptr{addr}, nil, conv)
	runtime.KeepAlive(buf)
	if labels[0].Value != "raw-utf8" {
		t.Errorf("converted label: got %q, want %q", labels[0].Value, "raw-utf8")
	}

	// Hide and value are independent; a hidden slot still converts.
	addr2, buf2 := cAddr(t, "masked")
	labels = buildCustomLabels([]uintptr{addr2}, []byte{1}, conv)
	runtime.KeepAlive(buf2)
	if labels[0].Value != "masked-utf8" || !labels[0].Hide {
		t.Errorf("hidden slot: got %+v, want {masked-utf8 true}", labels[0])
	}

	// A missing flags array means not hidden.
	addr3, buf3 := cAddr(t, "bare")
	labels = buildCustomLabels([]uintptr{addr3, addr3}, []byte{1}, conv)
	runtime.KeepAlive(buf3)
	if labels[1].Hide {
		t.Error("slot past the flags array reported hidden")
	}
}

func TestLabelsCustomUnsupportedBySeries(t *testing.T) {
	wbH := tempBook(t)
	chartH := implWorkbookAddChart(wbH, lxw.ChartTypeColumn)
	seriesH := implChartAddSeries(chartH, "", "=Data!$B$1:$B$3")

	addr, buf := cAddr(t, "Alpha")
	got := implChartSeriesSetLabelsCustom(seriesH, []uintptr{addr}, nil, lv)
	runtime.KeepAlive(buf)
	if got != lxw.ErrFeatureNotSupported {
		t.Errorf("live series: got %v, want %v", got, lxw.ErrFeatureNotSupported)
	}
	implWorkbookClose(wbH)
}

func TestGoStringAt(t *testing.T) {
	if got := goStringAt(0); got != "" {
		t.Errorf("address 0: got %q, want empty", got)
	}
	addr, buf := cAddr(t, "cell text")
	got := goStringAt(addr)
	runtime.KeepAlive(buf)
	if got != "cell text" {
		t.Errorf("got %q, want %q", got, "cell text")
	}
}

func TestChartsheetSetChart(t *testing.T) {
	wbH := tempBook(t)
	csH := implWorkbookAddChartsheet(wbH, "Chart1")
	chartH := implWorkbookAddChart(wbH, lxw.ChartTypeLine)
	seriesH := implChartAddSeries(chartH, "", "=Data!$A$1:$A$3")
	if seriesH == 0 {
		t.Fatal("add_series returned 0")
	}
	if got := implChartsheetSetChart(csH, chartH); got != lxw.NoError {
		t.Errorf("set_chart: got %v, want 0", got)
	}
	if got := implChartsheetSetChart(csH, 0); got != lxw.ErrNullParameterIgnored {
		t.Errorf("set_chart nil chart: got %v, want %v", got, lxw.ErrNullParameterIgnored)
	}
	implWorkbookClose(wbH)
}

func TestErrorBarsHandleAdopted(t *testing.T) {
	wbH := tempBook(t)
	chartH := implWorkbookAddChart(wbH, lxw.ChartTypeScatter)
	seriesH := implChartAddSeries(chartH, "=Data!$A$1:$A$3", "=Data!$B$1:$B$3")
	ebH := implChartSeriesGetErrorBars(seriesH, lxw.ErrorBarAxisY)
	if ebH == 0 {
		t.Fatal("get_error_bars returned 0")
	}
	if again := implChartSeriesGetErrorBars(seriesH, lxw.ErrorBarAxisY); again != ebH {
		t.Errorf("error bar handle changed across gets: %#x vs %#x", again, ebH)
	}
	implWorkbookClose(wbH)
	if getErrorBars(ebH) != nil {
		t.Error("error bars survived workbook close")
	}
}
