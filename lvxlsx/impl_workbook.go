package main

import (
	"sync"

	"github.com/lvxlsx/lvxlsx/pkg/debug"
	"github.com/lvxlsx/lvxlsx/pkg/handle"
	"github.com/lvxlsx/lvxlsx/pkg/lxw"
)

// Ownership of issued handles. Closing a workbook releases every
// handle created under it, so the host cannot keep poking objects
// whose file is already written.
var (
	ownersMu sync.Mutex
	owned    = map[uintptr][]uintptr{}
	ownerOf  = map[uintptr]uintptr{}

	// Lookups by name return the handle issued at creation, not a
	// fresh one.
	wsHandles = map[*lxw.Worksheet]uintptr{}
	csHandles = map[*lxw.Chartsheet]uintptr{}
)

func adopt(parent, h uintptr) uintptr {
	ownersMu.Lock()
	defer ownersMu.Unlock()
	wbH, ok := ownerOf[parent]
	if !ok {
		wbH = parent
	}
	owned[wbH] = append(owned[wbH], h)
	ownerOf[h] = wbH
	return h
}

func releaseWorkbook(wbH uintptr) {
	ownersMu.Lock()
	defer ownersMu.Unlock()
	for _, h := range owned[wbH] {
		objects.Delete(h)
		delete(ownerOf, h)
	}
	delete(owned, wbH)
	objects.Delete(wbH)
	for ws, h := range wsHandles {
		if objects.Get(handle.KindWorksheet, h) == nil {
			delete(wsHandles, ws)
		}
	}
	for cs, h := range csHandles {
		if objects.Get(handle.KindChartsheet, h) == nil {
			delete(csHandles, cs)
		}
	}
	releaseChartObjects()
}

func implWorkbookNew(filename string) uintptr {
	if filename == "" {
		return 0
	}
	debug.Infof("workbook_new %q", filename)
	return putWorkbook(lxw.NewWorkbook(filename))
}

func implWorkbookNewOpt(filename string, opts lxw.WorkbookOptions) uintptr {
	if filename == "" {
		return 0
	}
	debug.Infof("workbook_new_opt %q", filename)
	return putWorkbook(lxw.NewWorkbookOpt(filename, opts))
}

func implWorkbookAddWorksheet(wbH uintptr, name string) uintptr {
	wb := getWorkbook(wbH)
	if wb == nil {
		return 0
	}
	ws, err := wb.AddWorksheet(name)
	if err != nil {
		debug.Warnf("add_worksheet %q: %v", name, err)
		return 0
	}
	h := adopt(wbH, putWorksheet(ws))
	ownersMu.Lock()
	wsHandles[ws] = h
	ownersMu.Unlock()
	return h
}

func implWorkbookAddChartsheet(wbH uintptr, name string) uintptr {
	wb := getWorkbook(wbH)
	if wb == nil {
		return 0
	}
	cs, err := wb.AddChartsheet(name)
	if err != nil {
		debug.Warnf("add_chartsheet %q: %v", name, err)
		return 0
	}
	h := adopt(wbH, putChartsheet(cs))
	ownersMu.Lock()
	csHandles[cs] = h
	ownersMu.Unlock()
	return h
}

func implWorkbookAddFormat(wbH uintptr) uintptr {
	wb := getWorkbook(wbH)
	if wb == nil {
		return 0
	}
	return adopt(wbH, putFormat(wb.AddFormat()))
}

func implWorkbookGetDefaultURLFormat(wbH uintptr) uintptr {
	wb := getWorkbook(wbH)
	if wb == nil {
		return 0
	}
	return adopt(wbH, putFormat(wb.DefaultURLFormat()))
}

func implWorkbookAddChart(wbH uintptr, chartType uint8) uintptr {
	wb := getWorkbook(wbH)
	if wb == nil {
		return 0
	}
	return adopt(wbH, putChart(wb.AddChart(chartType)))
}

func implWorkbookClose(wbH uintptr) lxw.Error {
	wb := getWorkbook(wbH)
	if wb == nil {
		return lxw.ErrNullParameterIgnored
	}
	err := wb.Close()
	releaseWorkbook(wbH)
	if err != nil {
		debug.Errorf("workbook_close: %v", err)
	}
	return code(err)
}

func implWorkbookSetProperties(wbH uintptr, p lxw.DocProperties) lxw.Error {
	wb := getWorkbook(wbH)
	if wb == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(wb.SetProperties(p))
}

func implWorkbookSetCustomPropertyString(wbH uintptr, name, value string) lxw.Error {
	wb := getWorkbook(wbH)
	if wb == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(wb.SetCustomPropertyString(name, value))
}

func implWorkbookSetCustomPropertyNumber(wbH uintptr, name string, value float64) lxw.Error {
	wb := getWorkbook(wbH)
	if wb == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(wb.SetCustomPropertyNumber(name, value))
}

func implWorkbookSetCustomPropertyInteger(wbH uintptr, name string, value int32) lxw.Error {
	wb := getWorkbook(wbH)
	if wb == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(wb.SetCustomPropertyInteger(name, value))
}

func implWorkbookSetCustomPropertyBoolean(wbH uintptr, name string, value bool) lxw.Error {
	wb := getWorkbook(wbH)
	if wb == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(wb.SetCustomPropertyBoolean(name, value))
}

func implWorkbookSetCustomPropertyDatetime(wbH uintptr, name string, dt lxw.DateTime) lxw.Error {
	wb := getWorkbook(wbH)
	if wb == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(wb.SetCustomPropertyDateTime(name, dt))
}

func implWorkbookDefineName(wbH uintptr, name, formula string) lxw.Error {
	wb := getWorkbook(wbH)
	if wb == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(wb.DefineName(name, formula))
}

func implWorkbookGetWorksheetByName(wbH uintptr, name string) uintptr {
	wb := getWorkbook(wbH)
	if wb == nil {
		return 0
	}
	ws := wb.GetWorksheetByName(name)
	if ws == nil {
		return 0
	}
	ownersMu.Lock()
	h := wsHandles[ws]
	ownersMu.Unlock()
	return h
}

func implWorkbookGetChartsheetByName(wbH uintptr, name string) uintptr {
	wb := getWorkbook(wbH)
	if wb == nil {
		return 0
	}
	cs := wb.GetChartsheetByName(name)
	if cs == nil {
		return 0
	}
	ownersMu.Lock()
	h := csHandles[cs]
	ownersMu.Unlock()
	return h
}

func implWorkbookValidateSheetName(wbH uintptr, name string) lxw.Error {
	wb := getWorkbook(wbH)
	if wb == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(wb.ValidateSheetName(name))
}

func implWorkbookAddVBAProject(wbH uintptr, filename string) lxw.Error {
	wb := getWorkbook(wbH)
	if wb == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(wb.AddVBAProject(filename))
}

func implWorkbookAddSignedVBAProject(wbH uintptr, vbaProject, signature string) lxw.Error {
	wb := getWorkbook(wbH)
	if wb == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(wb.AddSignedVBAProject(vbaProject, signature))
}

func implWorkbookSetVBAName(wbH uintptr, name string) lxw.Error {
	wb := getWorkbook(wbH)
	if wb == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(wb.SetVBAName(name))
}
