package main

/*
#include "clib.h"
*/
import "C"

import (
	"github.com/lvxlsx/lvxlsx/pkg/lxw"
)

//export chartsheet_set_chart
func chartsheet_set_chart(chartsheet, chart C.ulong) C.int {
	return C.int(implChartsheetSetChart(uintptr(chartsheet), uintptr(chart)))
}

//export chartsheet_set_chart_opt
func chartsheet_set_chart_opt(chartsheet, chart C.ulong, options *C.lxw_chart_options) C.int {
	return C.int(implChartsheetSetChartOpt(uintptr(chartsheet), uintptr(chart), goChartOptions(options)))
}

//export chartsheet_activate
func chartsheet_activate(chartsheet C.ulong) {
	if cs := getChartsheet(uintptr(chartsheet)); cs != nil {
		cs.Activate()
	}
}

//export chartsheet_select
func chartsheet_select(chartsheet C.ulong) {
	if cs := getChartsheet(uintptr(chartsheet)); cs != nil {
		cs.Select()
	}
}

//export chartsheet_hide
func chartsheet_hide(chartsheet C.ulong) {
	if cs := getChartsheet(uintptr(chartsheet)); cs != nil {
		cs.Hide()
	}
}

//export chartsheet_set_first_sheet
func chartsheet_set_first_sheet(chartsheet C.ulong) {
	if cs := getChartsheet(uintptr(chartsheet)); cs != nil {
		cs.SetFirstSheet()
	}
}

//export chartsheet_set_tab_color
func chartsheet_set_tab_color(chartsheet C.ulong, color C.uint32_t) {
	if cs := getChartsheet(uintptr(chartsheet)); cs != nil {
		cs.SetTabColor(lxw.Color(color))
	}
}

//export chartsheet_protect
func chartsheet_protect(chartsheet C.ulong, password *C.char, options *C.lxw_protection) {
	if cs := getChartsheet(uintptr(chartsheet)); cs != nil {
		cs.Protect(gostr(password), goProtection(options))
	}
}

//export chartsheet_set_zoom
func chartsheet_set_zoom(chartsheet C.ulong, scale C.uint16_t) {
	if cs := getChartsheet(uintptr(chartsheet)); cs != nil {
		cs.SetZoom(uint16(scale))
	}
}

//export chartsheet_set_landscape
func chartsheet_set_landscape(chartsheet C.ulong) {
	if cs := getChartsheet(uintptr(chartsheet)); cs != nil {
		cs.SetLandscape()
	}
}

//export chartsheet_set_portrait
func chartsheet_set_portrait(chartsheet C.ulong) {
	if cs := getChartsheet(uintptr(chartsheet)); cs != nil {
		cs.SetPortrait()
	}
}

//export chartsheet_set_paper
func chartsheet_set_paper(chartsheet C.ulong, paper_type C.uint8_t) {
	if cs := getChartsheet(uintptr(chartsheet)); cs != nil {
		cs.SetPaper(uint8(paper_type))
	}
}

//export chartsheet_set_margins
func chartsheet_set_margins(chartsheet C.ulong, left, right, top, bottom C.double) {
	if cs := getChartsheet(uintptr(chartsheet)); cs != nil {
		cs.SetMargins(float64(left), float64(right), float64(top), float64(bottom))
	}
}

//export chartsheet_set_header_lv
func chartsheet_set_header_lv(chartsheet C.ulong, header *C.char) C.int {
	cs := getChartsheet(uintptr(chartsheet))
	if cs == nil {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	return C.int(code(cs.SetHeader(lvstr(header))))
}

//export chartsheet_set_footer_lv
func chartsheet_set_footer_lv(chartsheet C.ulong, footer *C.char) C.int {
	cs := getChartsheet(uintptr(chartsheet))
	if cs == nil {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	return C.int(code(cs.SetFooter(lvstr(footer))))
}

//export chartsheet_set_header_opt
func chartsheet_set_header_opt(chartsheet C.ulong, str *C.char, options *C.lxw_header_footer_options) C.int {
	return C.int(implChartsheetSetHeader(uintptr(chartsheet), gostr(str), goHeaderFooterOptions(options)))
}

//export chartsheet_set_footer_opt
func chartsheet_set_footer_opt(chartsheet C.ulong, str *C.char, options *C.lxw_header_footer_options) C.int {
	return C.int(implChartsheetSetFooter(uintptr(chartsheet), gostr(str), goHeaderFooterOptions(options)))
}
