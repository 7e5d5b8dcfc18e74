package main

import (
	"github.com/lvxlsx/lvxlsx/pkg/lxw"
)

func implWorksheetWriteString(wsH uintptr, row lxw.Row, col lxw.Col, s string, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteString(row, col, s, getFormat(fmtH)))
}

func implWorksheetWriteNumber(wsH uintptr, row lxw.Row, col lxw.Col, number float64, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteNumber(row, col, number, getFormat(fmtH)))
}

func implWorksheetWriteBoolean(wsH uintptr, row lxw.Row, col lxw.Col, value bool, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteBoolean(row, col, value, getFormat(fmtH)))
}

func implWorksheetWriteBlank(wsH uintptr, row lxw.Row, col lxw.Col, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteBlank(row, col, getFormat(fmtH)))
}

func implWorksheetWriteFormula(wsH uintptr, row lxw.Row, col lxw.Col, formula string, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteFormula(row, col, formula, getFormat(fmtH)))
}

func implWorksheetWriteFormulaNum(wsH uintptr, row lxw.Row, col lxw.Col, formula string, fmtH uintptr, result float64) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteFormulaNum(row, col, formula, getFormat(fmtH), result))
}

func implWorksheetWriteFormulaStr(wsH uintptr, row lxw.Row, col lxw.Col, formula string, fmtH uintptr, result string) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteFormulaStr(row, col, formula, getFormat(fmtH), result))
}

func implWorksheetWriteArrayFormula(wsH uintptr, fr lxw.Row, fc lxw.Col, lr lxw.Row, lc lxw.Col, formula string, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteArrayFormula(fr, fc, lr, lc, formula, getFormat(fmtH)))
}

func implWorksheetWriteDynamicArrayFormula(wsH uintptr, fr lxw.Row, fc lxw.Col, lr lxw.Row, lc lxw.Col, formula string, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteDynamicArrayFormula(fr, fc, lr, lc, formula, getFormat(fmtH)))
}

func implWorksheetWriteDynamicFormula(wsH uintptr, row lxw.Row, col lxw.Col, formula string, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteDynamicFormula(row, col, formula, getFormat(fmtH)))
}

func implWorksheetWriteDatetime(wsH uintptr, row lxw.Row, col lxw.Col, dt lxw.DateTime, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteDatetime(row, col, dt, getFormat(fmtH)))
}

func implWorksheetWriteUnixtime(wsH uintptr, row lxw.Row, col lxw.Col, unixtime int64, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteUnixtime(row, col, unixtime, getFormat(fmtH)))
}

func implWorksheetWriteURL(wsH uintptr, row lxw.Row, col lxw.Col, url string, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteURL(row, col, url, getFormat(fmtH)))
}

func implWorksheetWriteURLOpt(wsH uintptr, row lxw.Row, col lxw.Col, url string, fmtH uintptr, text, tooltip string) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteURLOpt(row, col, url, getFormat(fmtH), text, tooltip))
}

func implWorksheetWriteComment(wsH uintptr, row lxw.Row, col lxw.Col, text string) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.WriteComment(row, col, text))
}

func implWorksheetMergeRange(wsH uintptr, fr lxw.Row, fc lxw.Col, lr lxw.Row, lc lxw.Col, s string, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.MergeRange(fr, fc, lr, lc, s, getFormat(fmtH)))
}

func implWorksheetSetRow(wsH uintptr, row lxw.Row, height float64, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetRow(row, height, getFormat(fmtH)))
}

func implWorksheetSetRowOpt(wsH uintptr, row lxw.Row, height float64, fmtH uintptr, opts lxw.RowColOptions) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetRowOpt(row, height, getFormat(fmtH), opts))
}

func implWorksheetSetRowPixels(wsH uintptr, row lxw.Row, pixels uint32, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetRowPixels(row, pixels, getFormat(fmtH)))
}

func implWorksheetSetRowPixelsOpt(wsH uintptr, row lxw.Row, pixels uint32, fmtH uintptr, opts lxw.RowColOptions) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetRowPixelsOpt(row, pixels, getFormat(fmtH), opts))
}

func implWorksheetSetColumn(wsH uintptr, fc, lc lxw.Col, width float64, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetColumn(fc, lc, width, getFormat(fmtH)))
}

func implWorksheetSetColumnOpt(wsH uintptr, fc, lc lxw.Col, width float64, fmtH uintptr, opts lxw.RowColOptions) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetColumnOpt(fc, lc, width, getFormat(fmtH), opts))
}

func implWorksheetSetColumnPixels(wsH uintptr, fc, lc lxw.Col, pixels uint32, fmtH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetColumnPixels(fc, lc, pixels, getFormat(fmtH)))
}

func implWorksheetSetColumnPixelsOpt(wsH uintptr, fc, lc lxw.Col, pixels uint32, fmtH uintptr, opts lxw.RowColOptions) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetColumnPixelsOpt(fc, lc, pixels, getFormat(fmtH), opts))
}

func implWorksheetInsertImage(wsH uintptr, row lxw.Row, col lxw.Col, filename string) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.InsertImage(row, col, filename))
}

func implWorksheetInsertImageOpt(wsH uintptr, row lxw.Row, col lxw.Col, filename string, opts lxw.ImageOptions) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.InsertImageOpt(row, col, filename, opts))
}

func implWorksheetInsertImageBuffer(wsH uintptr, row lxw.Row, col lxw.Col, buf []byte) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.InsertImageBuffer(row, col, buf, ""))
}

func implWorksheetInsertImageBufferOpt(wsH uintptr, row lxw.Row, col lxw.Col, buf []byte, opts lxw.ImageOptions) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.InsertImageBufferOpt(row, col, buf, "", opts))
}

func implWorksheetEmbedImage(wsH uintptr, row lxw.Row, col lxw.Col, filename string) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.EmbedImage(row, col, filename))
}

func implWorksheetEmbedImageOpt(wsH uintptr, row lxw.Row, col lxw.Col, filename string, opts lxw.ImageOptions) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.EmbedImageOpt(row, col, filename, opts))
}

func implWorksheetEmbedImageBuffer(wsH uintptr, row lxw.Row, col lxw.Col, buf []byte) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.EmbedImageBuffer(row, col, buf))
}

func implWorksheetEmbedImageBufferOpt(wsH uintptr, row lxw.Row, col lxw.Col, buf []byte, opts lxw.ImageOptions) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.EmbedImageBufferOpt(row, col, buf, opts))
}

func implWorksheetInsertChart(wsH uintptr, row lxw.Row, col lxw.Col, chartH uintptr) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.InsertChart(row, col, getChart(chartH)))
}

func implWorksheetInsertChartOpt(wsH uintptr, row lxw.Row, col lxw.Col, chartH uintptr, opts lxw.ChartOptions) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.InsertChartOpt(row, col, getChart(chartH), opts))
}

func implWorksheetInsertCheckbox(wsH uintptr, row lxw.Row, col lxw.Col, checked bool) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.InsertCheckbox(row, col, checked))
}

func implWorksheetInsertButton(wsH uintptr, row lxw.Row, col lxw.Col, opts lxw.ButtonOptions) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.InsertButton(row, col, opts))
}

func implWorksheetInsertTextbox(wsH uintptr, row lxw.Row, col lxw.Col, text string) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.InsertTextbox(row, col, text))
}

func implWorksheetInsertTextboxOpt(wsH uintptr, row lxw.Row, col lxw.Col, text string, opts lxw.TextboxOptions) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.InsertTextboxOpt(row, col, text, opts))
}

func implWorksheetAutofilter(wsH uintptr, fr lxw.Row, fc lxw.Col, lr lxw.Row, lc lxw.Col) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.Autofilter(fr, fc, lr, lc))
}

func implWorksheetFilterColumn(wsH uintptr, col lxw.Col, rule lxw.FilterRule) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.FilterColumn(col, rule))
}

func implWorksheetFilterColumn2(wsH uintptr, col lxw.Col, rule1, rule2 lxw.FilterRule, orJoin bool) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.FilterColumn2(col, rule1, rule2, orJoin))
}

func implWorksheetSetSelection(wsH uintptr, fr lxw.Row, fc lxw.Col, lr lxw.Row, lc lxw.Col) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetSelection(fr, fc, lr, lc))
}

func implWorksheetSetHeader(wsH uintptr, header string, opts lxw.HeaderFooterOptions) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetHeaderOpt(header, opts))
}

func implWorksheetSetFooter(wsH uintptr, footer string, opts lxw.HeaderFooterOptions) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetFooterOpt(footer, opts))
}

func implWorksheetSetHPagebreaks(wsH uintptr, rows []lxw.Row) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetHPagebreaks(rows))
}

func implWorksheetSetVPagebreaks(wsH uintptr, cols []lxw.Col) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetVPagebreaks(cols))
}

func implWorksheetRepeatRows(wsH uintptr, firstRow, lastRow lxw.Row) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.RepeatRows(firstRow, lastRow))
}

func implWorksheetRepeatColumns(wsH uintptr, firstCol, lastCol lxw.Col) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.RepeatColumns(firstCol, lastCol))
}

func implWorksheetPrintArea(wsH uintptr, fr lxw.Row, fc lxw.Col, lr lxw.Row, lc lxw.Col) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.PrintArea(fr, fc, lr, lc))
}

func implWorksheetSetVBAName(wsH uintptr, name string) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetVBAName(name))
}

func implWorksheetIgnoreErrors(wsH uintptr, errType uint8, rangeRef string) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.IgnoreErrors(errType, rangeRef))
}

func implWorksheetSetBackground(wsH uintptr, filename string) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetBackground(filename))
}

func implWorksheetSetBackgroundBuffer(wsH uintptr, buf []byte) lxw.Error {
	ws := getWorksheet(wsH)
	if ws == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(ws.SetBackgroundBuffer(buf))
}
