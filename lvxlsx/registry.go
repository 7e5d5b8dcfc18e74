package main

import (
	"unsafe"

	"github.com/lvxlsx/lvxlsx/pkg/ansi"
	"github.com/lvxlsx/lvxlsx/pkg/debug"
	"github.com/lvxlsx/lvxlsx/pkg/handle"
	"github.com/lvxlsx/lvxlsx/pkg/lxw"
)

// objects maps every live engine object to the integer token the host
// holds. One table serves all kinds; the kind tag keeps a worksheet
// handle from resolving as a chart.
var objects handle.Table

func putWorkbook(wb *lxw.Workbook) uintptr { return objects.Put(handle.KindWorkbook, wb) }

func putWorksheet(ws *lxw.Worksheet) uintptr { return objects.Put(handle.KindWorksheet, ws) }

func putChartsheet(cs *lxw.Chartsheet) uintptr { return objects.Put(handle.KindChartsheet, cs) }

func putChart(c *lxw.Chart) uintptr { return objects.Put(handle.KindChart, c) }

func putSeries(s *lxw.ChartSeries) uintptr { return objects.Put(handle.KindSeries, s) }

func putAxis(a *lxw.ChartAxis) uintptr { return objects.Put(handle.KindAxis, a) }

func putErrorBars(eb *lxw.ErrorBars) uintptr { return objects.Put(handle.KindErrorBars, eb) }

func putFormat(f *lxw.Format) uintptr { return objects.Put(handle.KindFormat, f) }

func getWorkbook(h uintptr) *lxw.Workbook {
	if v := objects.Get(handle.KindWorkbook, h); v != nil {
		return v.(*lxw.Workbook)
	}
	return nil
}

func getWorksheet(h uintptr) *lxw.Worksheet {
	if v := objects.Get(handle.KindWorksheet, h); v != nil {
		return v.(*lxw.Worksheet)
	}
	return nil
}

func getChartsheet(h uintptr) *lxw.Chartsheet {
	if v := objects.Get(handle.KindChartsheet, h); v != nil {
		return v.(*lxw.Chartsheet)
	}
	return nil
}

func getChart(h uintptr) *lxw.Chart {
	if v := objects.Get(handle.KindChart, h); v != nil {
		return v.(*lxw.Chart)
	}
	return nil
}

func getSeries(h uintptr) *lxw.ChartSeries {
	if v := objects.Get(handle.KindSeries, h); v != nil {
		return v.(*lxw.ChartSeries)
	}
	return nil
}

func getAxis(h uintptr) *lxw.ChartAxis {
	if v := objects.Get(handle.KindAxis, h); v != nil {
		return v.(*lxw.ChartAxis)
	}
	return nil
}

func getErrorBars(h uintptr) *lxw.ErrorBars {
	if v := objects.Get(handle.KindErrorBars, h); v != nil {
		return v.(*lxw.ErrorBars)
	}
	return nil
}

// getFormat resolves an optional format handle. Zero and stale
// handles yield nil, which every engine operation treats as
// "unformatted".
func getFormat(h uintptr) *lxw.Format {
	if v := objects.Get(handle.KindFormat, h); v != nil {
		return v.(*lxw.Format)
	}
	return nil
}

// code flattens an engine error to its boundary result code.
func code(err error) lxw.Error { return lxw.Code(err) }

// lv converts a host-encoded string to UTF-8. When conversion fails
// the original bytes pass through unchanged; a wrong-looking cell
// beats a lost one.
func lv(s string) string {
	out, ok := ansi.ToUTF8(s)
	if !ok {
		if s != "" {
			debug.Warnf("ansi conversion failed, passing %d bytes through", len(s))
		}
		return s
	}
	return out
}

// goStringAt reads a NUL-terminated C string at a raw address. The
// host passes string pointers as integers in the custom label array.
func goStringAt(addr uintptr) string {
	if addr == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(addr + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(addr)), n))
}
