package main

/*
#include "clib.h"
*/
import "C"

import (
	"github.com/lvxlsx/lvxlsx/pkg/lxw"
)

// gostr copies a C string, tolerating NULL.
func gostr(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

// lvstr copies a C string and routes it through the host-encoding
// bridge. The legacy entry points use this in place of gostr.
func lvstr(s *C.char) string {
	return lv(gostr(s))
}

func goDateTime(dt *C.lxw_datetime) lxw.DateTime {
	if dt == nil {
		return lxw.DateTime{}
	}
	return lxw.DateTime{
		Year:  int32(dt.year),
		Month: int32(dt.month),
		Day:   int32(dt.day),
		Hour:  int32(dt.hour),
		Min:   int32(dt.min),
		Sec:   float64(dt.sec),
	}
}

func goRowColOptions(o *C.lxw_row_col_options) lxw.RowColOptions {
	if o == nil {
		return lxw.RowColOptions{}
	}
	return lxw.RowColOptions{
		Hidden:    o.hidden != 0,
		Level:     uint8(o.level),
		Collapsed: o.collapsed != 0,
	}
}

func goImageOptions(o *C.lxw_image_options) lxw.ImageOptions {
	if o == nil {
		return lxw.ImageOptions{}
	}
	return lxw.ImageOptions{
		XOffset:     int32(o.x_offset),
		YOffset:     int32(o.y_offset),
		XScale:      float64(o.x_scale),
		YScale:      float64(o.y_scale),
		URL:         goStringAt(uintptr(o.url)),
		Tip:         goStringAt(uintptr(o.tip)),
		Description: goStringAt(uintptr(o.description)),
		Decorative:  o.decorative != 0,
	}
}

func goChartOptions(o *C.lxw_chart_options) lxw.ChartOptions {
	if o == nil {
		return lxw.ChartOptions{}
	}
	return lxw.ChartOptions{
		XOffset:     int32(o.x_offset),
		YOffset:     int32(o.y_offset),
		XScale:      float64(o.x_scale),
		YScale:      float64(o.y_scale),
		Description: goStringAt(uintptr(o.description)),
		Decorative:  o.decorative != 0,
	}
}

func goProtection(o *C.lxw_protection) lxw.Protection {
	if o == nil {
		return lxw.Protection{}
	}
	return lxw.Protection{
		NoSelectLockedCells:   o.no_select_locked_cells != 0,
		NoSelectUnlockedCells: o.no_select_unlocked_cells != 0,
		FormatCells:           o.format_cells != 0,
		FormatColumns:         o.format_columns != 0,
		FormatRows:            o.format_rows != 0,
		InsertColumns:         o.insert_columns != 0,
		InsertRows:            o.insert_rows != 0,
		InsertHyperlinks:      o.insert_hyperlinks != 0,
		DeleteColumns:         o.delete_columns != 0,
		DeleteRows:            o.delete_rows != 0,
		Sort:                  o.sort != 0,
		Autofilter:            o.autofilter != 0,
		PivotTables:           o.pivot_tables != 0,
		Scenarios:             o.scenarios != 0,
		Objects:               o.objects != 0,
	}
}

func goHeaderFooterOptions(o *C.lxw_header_footer_options) lxw.HeaderFooterOptions {
	if o == nil {
		return lxw.HeaderFooterOptions{}
	}
	return lxw.HeaderFooterOptions{Margin: float64(o.margin)}
}

func goTextboxOptions(o *C.lxw_textbox_options) lxw.TextboxOptions {
	if o == nil {
		return lxw.TextboxOptions{}
	}
	return lxw.TextboxOptions{
		Width:       uint32(o.width),
		Height:      uint32(o.height),
		XOffset:     int32(o.x_offset),
		YOffset:     int32(o.y_offset),
		XScale:      float64(o.x_scale),
		YScale:      float64(o.y_scale),
		Description: goStringAt(uintptr(o.description)),
	}
}

func goButtonOptions(o *C.lxw_button_options) lxw.ButtonOptions {
	if o == nil {
		return lxw.ButtonOptions{}
	}
	return lxw.ButtonOptions{
		Caption: goStringAt(uintptr(o.caption)),
		Macro:   goStringAt(uintptr(o.macro)),
		Width:   uint32(o.width),
		Height:  uint32(o.height),
	}
}

func goWorkbookOptions(o *C.lxw_workbook_options) lxw.WorkbookOptions {
	if o == nil {
		return lxw.WorkbookOptions{}
	}
	return lxw.WorkbookOptions{
		ConstantMemory: o.constant_memory != 0,
		Tmpdir:         goStringAt(uintptr(o.tmpdir)),
		UseZip64:       o.use_zip64 != 0,
	}
}

func goDocProperties(p *C.lxw_doc_properties) lxw.DocProperties {
	if p == nil {
		return lxw.DocProperties{}
	}
	return lxw.DocProperties{
		Title:         goStringAt(uintptr(p.title)),
		Subject:       goStringAt(uintptr(p.subject)),
		Author:        goStringAt(uintptr(p.author)),
		Manager:       goStringAt(uintptr(p.manager)),
		Company:       goStringAt(uintptr(p.company)),
		Category:      goStringAt(uintptr(p.category)),
		Keywords:      goStringAt(uintptr(p.keywords)),
		Comments:      goStringAt(uintptr(p.comments)),
		Status:        goStringAt(uintptr(p.status)),
		HyperlinkBase: goStringAt(uintptr(p.hyperlink_base)),
		Created:       int64(p.created),
	}
}

func goChartLine(l *C.lxw_chart_line) *lxw.ChartLine {
	if l == nil {
		return nil
	}
	return &lxw.ChartLine{
		Color:        lxw.Color(l.color),
		None:         l.none != 0,
		Width:        float64(l.width),
		DashType:     uint8(l.dash_type),
		Transparency: uint8(l.transparency),
	}
}

func goChartFill(f *C.lxw_chart_fill) *lxw.ChartFill {
	if f == nil {
		return nil
	}
	return &lxw.ChartFill{
		Color:        lxw.Color(f.color),
		None:         f.none != 0,
		Transparency: uint8(f.transparency),
	}
}

func goChartPattern(p *C.lxw_chart_pattern) *lxw.ChartPattern {
	if p == nil {
		return nil
	}
	return &lxw.ChartPattern{
		FgColor: lxw.Color(p.fg_color),
		BgColor: lxw.Color(p.bg_color),
		Type:    uint8(p._type),
	}
}

func goChartGradient(g *C.lxw_chart_gradient_fill) *lxw.ChartGradientFill {
	if g == nil {
		return nil
	}
	n := int(g.num_colors)
	if n > len(g.colors) {
		n = len(g.colors)
	}
	colors := make([]lxw.Color, n)
	for i := 0; i < n; i++ {
		colors[i] = lxw.Color(g.colors[i])
	}
	return &lxw.ChartGradientFill{
		Type:   uint8(g._type),
		Colors: colors,
		Angle:  float64(g.angle),
	}
}

func goChartFont(f *C.lxw_chart_font) *lxw.ChartFont {
	if f == nil {
		return nil
	}
	return &lxw.ChartFont{
		Name:      goStringAt(uintptr(f.name)),
		Size:      float64(f.size),
		Bold:      f.bold != 0,
		Italic:    f.italic != 0,
		Underline: f.underline != 0,
		Rotation:  int32(f.rotation),
		Color:     lxw.Color(f.color),
	}
}

func goChartLayout(l *C.lxw_chart_layout) *lxw.ChartLayout {
	if l == nil {
		return nil
	}
	return &lxw.ChartLayout{
		X:      float64(l.x),
		Y:      float64(l.y),
		Width:  float64(l.width),
		Height: float64(l.height),
	}
}
