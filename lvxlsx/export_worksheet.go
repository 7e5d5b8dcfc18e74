package main

/*
#include "clib.h"
*/
import "C"

import (
	"unsafe"

	"github.com/lvxlsx/lvxlsx/pkg/lxw"
)

// rowsAt reads a zero-terminated lxw_row_t array at a raw address.
func rowsAt(addr uintptr) []lxw.Row {
	if addr == 0 {
		return nil
	}
	var rows []lxw.Row
	for {
		v := *(*uint32)(unsafe.Pointer(addr))
		if v == 0 {
			return rows
		}
		rows = append(rows, lxw.Row(v))
		addr += 4
	}
}

// colsAt reads a zero-terminated lxw_col_t array at a raw address.
func colsAt(addr uintptr) []lxw.Col {
	if addr == 0 {
		return nil
	}
	var cols []lxw.Col
	for {
		v := *(*uint16)(unsafe.Pointer(addr))
		if v == 0 {
			return cols
		}
		cols = append(cols, lxw.Col(v))
		addr += 2
	}
}

func goBytes(buf *C.uchar, size C.size_t) []byte {
	if buf == nil || size == 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(buf), C.int(size))
}

//export worksheet_write_string
func worksheet_write_string(worksheet C.ulong, row C.uint32_t, col C.uint16_t, str *C.char, format C.ulong) C.int {
	return C.int(implWorksheetWriteString(uintptr(worksheet), lxw.Row(row), lxw.Col(col), gostr(str), uintptr(format)))
}

//export worksheet_write_string_lv
func worksheet_write_string_lv(worksheet C.ulong, row C.uint32_t, col C.uint16_t, str *C.char, format C.ulong) C.int {
	return C.int(implWorksheetWriteString(uintptr(worksheet), lxw.Row(row), lxw.Col(col), lvstr(str), uintptr(format)))
}

//export worksheet_write_number
func worksheet_write_number(worksheet C.ulong, row C.uint32_t, col C.uint16_t, number C.double, format C.ulong) C.int {
	return C.int(implWorksheetWriteNumber(uintptr(worksheet), lxw.Row(row), lxw.Col(col), float64(number), uintptr(format)))
}

//export worksheet_write_boolean
func worksheet_write_boolean(worksheet C.ulong, row C.uint32_t, col C.uint16_t, value C.int, format C.ulong) C.int {
	return C.int(implWorksheetWriteBoolean(uintptr(worksheet), lxw.Row(row), lxw.Col(col), value != 0, uintptr(format)))
}

//export worksheet_write_blank
func worksheet_write_blank(worksheet C.ulong, row C.uint32_t, col C.uint16_t, format C.ulong) C.int {
	return C.int(implWorksheetWriteBlank(uintptr(worksheet), lxw.Row(row), lxw.Col(col), uintptr(format)))
}

//export worksheet_write_datetime
func worksheet_write_datetime(worksheet C.ulong, row C.uint32_t, col C.uint16_t, datetime *C.lxw_datetime, format C.ulong) C.int {
	return C.int(implWorksheetWriteDatetime(uintptr(worksheet), lxw.Row(row), lxw.Col(col), goDateTime(datetime), uintptr(format)))
}

//export worksheet_write_unixtime
func worksheet_write_unixtime(worksheet C.ulong, row C.uint32_t, col C.uint16_t, unixtime C.int64_t, format C.ulong) C.int {
	return C.int(implWorksheetWriteUnixtime(uintptr(worksheet), lxw.Row(row), lxw.Col(col), int64(unixtime), uintptr(format)))
}

//export worksheet_write_formula
func worksheet_write_formula(worksheet C.ulong, row C.uint32_t, col C.uint16_t, formula *C.char, format C.ulong) C.int {
	return C.int(implWorksheetWriteFormula(uintptr(worksheet), lxw.Row(row), lxw.Col(col), gostr(formula), uintptr(format)))
}

//export worksheet_write_formula_lv
func worksheet_write_formula_lv(worksheet C.ulong, row C.uint32_t, col C.uint16_t, formula *C.char, format C.ulong) C.int {
	return C.int(implWorksheetWriteFormula(uintptr(worksheet), lxw.Row(row), lxw.Col(col), lvstr(formula), uintptr(format)))
}

//export worksheet_write_formula_num
func worksheet_write_formula_num(worksheet C.ulong, row C.uint32_t, col C.uint16_t, formula *C.char, format C.ulong, result C.double) C.int {
	return C.int(implWorksheetWriteFormulaNum(uintptr(worksheet), lxw.Row(row), lxw.Col(col), gostr(formula), uintptr(format), float64(result)))
}

//export worksheet_write_formula_str
func worksheet_write_formula_str(worksheet C.ulong, row C.uint32_t, col C.uint16_t, formula *C.char, format C.ulong, result *C.char) C.int {
	return C.int(implWorksheetWriteFormulaStr(uintptr(worksheet), lxw.Row(row), lxw.Col(col), gostr(formula), uintptr(format), gostr(result)))
}

//export worksheet_write_array_formula
func worksheet_write_array_formula(worksheet C.ulong, first_row C.uint32_t, first_col C.uint16_t, last_row C.uint32_t, last_col C.uint16_t, formula *C.char, format C.ulong) C.int {
	return C.int(implWorksheetWriteArrayFormula(uintptr(worksheet), lxw.Row(first_row), lxw.Col(first_col), lxw.Row(last_row), lxw.Col(last_col), gostr(formula), uintptr(format)))
}

// The _num variants below drop the precomputed result hint at the
// boundary; the engine recalculates formula results on load.
//
//export worksheet_write_array_formula_num
func worksheet_write_array_formula_num(worksheet C.ulong, first_row C.uint32_t, first_col C.uint16_t, last_row C.uint32_t, last_col C.uint16_t, formula *C.char, format C.ulong, result C.double) C.int {
	return C.int(implWorksheetWriteArrayFormula(uintptr(worksheet), lxw.Row(first_row), lxw.Col(first_col), lxw.Row(last_row), lxw.Col(last_col), gostr(formula), uintptr(format)))
}

//export worksheet_write_dynamic_array_formula
func worksheet_write_dynamic_array_formula(worksheet C.ulong, first_row C.uint32_t, first_col C.uint16_t, last_row C.uint32_t, last_col C.uint16_t, formula *C.char, format C.ulong) C.int {
	return C.int(implWorksheetWriteDynamicArrayFormula(uintptr(worksheet), lxw.Row(first_row), lxw.Col(first_col), lxw.Row(last_row), lxw.Col(last_col), gostr(formula), uintptr(format)))
}

//export worksheet_write_dynamic_array_formula_num
func worksheet_write_dynamic_array_formula_num(worksheet C.ulong, first_row C.uint32_t, first_col C.uint16_t, last_row C.uint32_t, last_col C.uint16_t, formula *C.char, format C.ulong, result C.double) C.int {
	return C.int(implWorksheetWriteDynamicArrayFormula(uintptr(worksheet), lxw.Row(first_row), lxw.Col(first_col), lxw.Row(last_row), lxw.Col(last_col), gostr(formula), uintptr(format)))
}

//export worksheet_write_dynamic_formula
func worksheet_write_dynamic_formula(worksheet C.ulong, row C.uint32_t, col C.uint16_t, formula *C.char, format C.ulong) C.int {
	return C.int(implWorksheetWriteDynamicFormula(uintptr(worksheet), lxw.Row(row), lxw.Col(col), gostr(formula), uintptr(format)))
}

//export worksheet_write_dynamic_formula_num
func worksheet_write_dynamic_formula_num(worksheet C.ulong, row C.uint32_t, col C.uint16_t, formula *C.char, format C.ulong, result C.double) C.int {
	return C.int(implWorksheetWriteDynamicFormula(uintptr(worksheet), lxw.Row(row), lxw.Col(col), gostr(formula), uintptr(format)))
}

//export worksheet_write_rich_string
func worksheet_write_rich_string(worksheet C.ulong, row C.uint32_t, col C.uint16_t, rich_string C.ulong, format C.ulong) C.int {
	if getWorksheet(uintptr(worksheet)) == nil {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	return C.int(lxw.ErrFeatureNotSupported)
}

//export worksheet_write_url
func worksheet_write_url(worksheet C.ulong, row C.uint32_t, col C.uint16_t, url *C.char, format C.ulong) C.int {
	return C.int(implWorksheetWriteURL(uintptr(worksheet), lxw.Row(row), lxw.Col(col), gostr(url), uintptr(format)))
}

//export worksheet_write_url_lv
func worksheet_write_url_lv(worksheet C.ulong, row C.uint32_t, col C.uint16_t, url *C.char, format C.ulong) C.int {
	return C.int(implWorksheetWriteURL(uintptr(worksheet), lxw.Row(row), lxw.Col(col), lvstr(url), uintptr(format)))
}

//export worksheet_write_url_opt
func worksheet_write_url_opt(worksheet C.ulong, row C.uint32_t, col C.uint16_t, url *C.char, format C.ulong, str, tooltip *C.char) C.int {
	return C.int(implWorksheetWriteURLOpt(uintptr(worksheet), lxw.Row(row), lxw.Col(col), gostr(url), uintptr(format), gostr(str), gostr(tooltip)))
}

//export worksheet_write_comment
func worksheet_write_comment(worksheet C.ulong, row C.uint32_t, col C.uint16_t, str *C.char) C.int {
	return C.int(implWorksheetWriteComment(uintptr(worksheet), lxw.Row(row), lxw.Col(col), gostr(str)))
}

//export worksheet_write_comment_lv
func worksheet_write_comment_lv(worksheet C.ulong, row C.uint32_t, col C.uint16_t, str *C.char) C.int {
	return C.int(implWorksheetWriteComment(uintptr(worksheet), lxw.Row(row), lxw.Col(col), lvstr(str)))
}

// The comment options struct (author, box size, visibility) has no
// counterpart in the engine's comment API and is ignored; the text is
// written as a plain comment.
//
//export worksheet_write_comment_opt
func worksheet_write_comment_opt(worksheet C.ulong, row C.uint32_t, col C.uint16_t, str *C.char, options C.ulong) C.int {
	return C.int(implWorksheetWriteComment(uintptr(worksheet), lxw.Row(row), lxw.Col(col), gostr(str)))
}

//export worksheet_merge_range
func worksheet_merge_range(worksheet C.ulong, first_row C.uint32_t, first_col C.uint16_t, last_row C.uint32_t, last_col C.uint16_t, str *C.char, format C.ulong) C.int {
	return C.int(implWorksheetMergeRange(uintptr(worksheet), lxw.Row(first_row), lxw.Col(first_col), lxw.Row(last_row), lxw.Col(last_col), gostr(str), uintptr(format)))
}

//export worksheet_merge_range_lv
func worksheet_merge_range_lv(worksheet C.ulong, first_row C.uint32_t, first_col C.uint16_t, last_row C.uint32_t, last_col C.uint16_t, str *C.char, format C.ulong) C.int {
	return C.int(implWorksheetMergeRange(uintptr(worksheet), lxw.Row(first_row), lxw.Col(first_col), lxw.Row(last_row), lxw.Col(last_col), lvstr(str), uintptr(format)))
}

//export worksheet_set_row
func worksheet_set_row(worksheet C.ulong, row C.uint32_t, height C.double, format C.ulong) C.int {
	return C.int(implWorksheetSetRow(uintptr(worksheet), lxw.Row(row), float64(height), uintptr(format)))
}

//export worksheet_set_row_opt
func worksheet_set_row_opt(worksheet C.ulong, row C.uint32_t, height C.double, format C.ulong, options *C.lxw_row_col_options) C.int {
	return C.int(implWorksheetSetRowOpt(uintptr(worksheet), lxw.Row(row), float64(height), uintptr(format), goRowColOptions(options)))
}

//export worksheet_set_row_pixels
func worksheet_set_row_pixels(worksheet C.ulong, row C.uint32_t, pixels C.uint32_t, format C.ulong) C.int {
	return C.int(implWorksheetSetRowPixels(uintptr(worksheet), lxw.Row(row), uint32(pixels), uintptr(format)))
}

//export worksheet_set_row_pixels_opt
func worksheet_set_row_pixels_opt(worksheet C.ulong, row C.uint32_t, pixels C.uint32_t, format C.ulong, options *C.lxw_row_col_options) C.int {
	return C.int(implWorksheetSetRowPixelsOpt(uintptr(worksheet), lxw.Row(row), uint32(pixels), uintptr(format), goRowColOptions(options)))
}

//export worksheet_set_column
func worksheet_set_column(worksheet C.ulong, first_col, last_col C.uint16_t, width C.double, format C.ulong) C.int {
	return C.int(implWorksheetSetColumn(uintptr(worksheet), lxw.Col(first_col), lxw.Col(last_col), float64(width), uintptr(format)))
}

//export worksheet_set_column_opt
func worksheet_set_column_opt(worksheet C.ulong, first_col, last_col C.uint16_t, width C.double, format C.ulong, options *C.lxw_row_col_options) C.int {
	return C.int(implWorksheetSetColumnOpt(uintptr(worksheet), lxw.Col(first_col), lxw.Col(last_col), float64(width), uintptr(format), goRowColOptions(options)))
}

//export worksheet_set_column_pixels
func worksheet_set_column_pixels(worksheet C.ulong, first_col, last_col C.uint16_t, pixels C.uint32_t, format C.ulong) C.int {
	return C.int(implWorksheetSetColumnPixels(uintptr(worksheet), lxw.Col(first_col), lxw.Col(last_col), uint32(pixels), uintptr(format)))
}

//export worksheet_set_column_pixels_opt
func worksheet_set_column_pixels_opt(worksheet C.ulong, first_col, last_col C.uint16_t, pixels C.uint32_t, format C.ulong, options *C.lxw_row_col_options) C.int {
	return C.int(implWorksheetSetColumnPixelsOpt(uintptr(worksheet), lxw.Col(first_col), lxw.Col(last_col), uint32(pixels), uintptr(format), goRowColOptions(options)))
}

//export worksheet_insert_image
func worksheet_insert_image(worksheet C.ulong, row C.uint32_t, col C.uint16_t, filename *C.char) C.int {
	return C.int(implWorksheetInsertImage(uintptr(worksheet), lxw.Row(row), lxw.Col(col), gostr(filename)))
}

//export worksheet_insert_image_lv
func worksheet_insert_image_lv(worksheet C.ulong, row C.uint32_t, col C.uint16_t, filename *C.char) C.int {
	return C.int(implWorksheetInsertImage(uintptr(worksheet), lxw.Row(row), lxw.Col(col), lvstr(filename)))
}

//export worksheet_insert_image_opt
func worksheet_insert_image_opt(worksheet C.ulong, row C.uint32_t, col C.uint16_t, filename *C.char, options *C.lxw_image_options) C.int {
	return C.int(implWorksheetInsertImageOpt(uintptr(worksheet), lxw.Row(row), lxw.Col(col), gostr(filename), goImageOptions(options)))
}

//export worksheet_insert_image_opt_lv
func worksheet_insert_image_opt_lv(worksheet C.ulong, row C.uint32_t, col C.uint16_t, filename *C.char, options *C.lxw_image_options) C.int {
	return C.int(implWorksheetInsertImageOpt(uintptr(worksheet), lxw.Row(row), lxw.Col(col), lvstr(filename), goImageOptions(options)))
}

//export worksheet_insert_image_buffer
func worksheet_insert_image_buffer(worksheet C.ulong, row C.uint32_t, col C.uint16_t, image_buffer *C.uchar, image_size C.size_t) C.int {
	return C.int(implWorksheetInsertImageBuffer(uintptr(worksheet), lxw.Row(row), lxw.Col(col), goBytes(image_buffer, image_size)))
}

//export worksheet_insert_image_buffer_opt
func worksheet_insert_image_buffer_opt(worksheet C.ulong, row C.uint32_t, col C.uint16_t, image_buffer *C.uchar, image_size C.size_t, options *C.lxw_image_options) C.int {
	return C.int(implWorksheetInsertImageBufferOpt(uintptr(worksheet), lxw.Row(row), lxw.Col(col), goBytes(image_buffer, image_size), goImageOptions(options)))
}

//export worksheet_embed_image
func worksheet_embed_image(worksheet C.ulong, row C.uint32_t, col C.uint16_t, filename *C.char) C.int {
	return C.int(implWorksheetEmbedImage(uintptr(worksheet), lxw.Row(row), lxw.Col(col), gostr(filename)))
}

//export worksheet_embed_image_lv
func worksheet_embed_image_lv(worksheet C.ulong, row C.uint32_t, col C.uint16_t, filename *C.char) C.int {
	return C.int(implWorksheetEmbedImage(uintptr(worksheet), lxw.Row(row), lxw.Col(col), lvstr(filename)))
}

//export worksheet_embed_image_opt
func worksheet_embed_image_opt(worksheet C.ulong, row C.uint32_t, col C.uint16_t, filename *C.char, options *C.lxw_image_options) C.int {
	return C.int(implWorksheetEmbedImageOpt(uintptr(worksheet), lxw.Row(row), lxw.Col(col), gostr(filename), goImageOptions(options)))
}

//export worksheet_embed_image_opt_lv
func worksheet_embed_image_opt_lv(worksheet C.ulong, row C.uint32_t, col C.uint16_t, filename *C.char, options *C.lxw_image_options) C.int {
	return C.int(implWorksheetEmbedImageOpt(uintptr(worksheet), lxw.Row(row), lxw.Col(col), lvstr(filename), goImageOptions(options)))
}

//export worksheet_embed_image_buffer
func worksheet_embed_image_buffer(worksheet C.ulong, row C.uint32_t, col C.uint16_t, image_buffer *C.uchar, image_size C.size_t) C.int {
	return C.int(implWorksheetEmbedImageBuffer(uintptr(worksheet), lxw.Row(row), lxw.Col(col), goBytes(image_buffer, image_size)))
}

//export worksheet_embed_image_buffer_opt
func worksheet_embed_image_buffer_opt(worksheet C.ulong, row C.uint32_t, col C.uint16_t, image_buffer *C.uchar, image_size C.size_t, options *C.lxw_image_options) C.int {
	return C.int(implWorksheetEmbedImageBufferOpt(uintptr(worksheet), lxw.Row(row), lxw.Col(col), goBytes(image_buffer, image_size), goImageOptions(options)))
}

//export worksheet_insert_chart
func worksheet_insert_chart(worksheet C.ulong, row C.uint32_t, col C.uint16_t, chart C.ulong) C.int {
	return C.int(implWorksheetInsertChart(uintptr(worksheet), lxw.Row(row), lxw.Col(col), uintptr(chart)))
}

//export worksheet_insert_chart_opt
func worksheet_insert_chart_opt(worksheet C.ulong, row C.uint32_t, col C.uint16_t, chart C.ulong, options *C.lxw_chart_options) C.int {
	return C.int(implWorksheetInsertChartOpt(uintptr(worksheet), lxw.Row(row), lxw.Col(col), uintptr(chart), goChartOptions(options)))
}

//export worksheet_insert_checkbox
func worksheet_insert_checkbox(worksheet C.ulong, row C.uint32_t, col C.uint16_t, checked C.uint8_t) C.int {
	return C.int(implWorksheetInsertCheckbox(uintptr(worksheet), lxw.Row(row), lxw.Col(col), checked != 0))
}

//export worksheet_insert_button
func worksheet_insert_button(worksheet C.ulong, row C.uint32_t, col C.uint16_t, options *C.lxw_button_options) C.int {
	return C.int(implWorksheetInsertButton(uintptr(worksheet), lxw.Row(row), lxw.Col(col), goButtonOptions(options)))
}

//export worksheet_insert_textbox_lv
func worksheet_insert_textbox_lv(worksheet C.ulong, row C.uint32_t, col C.uint16_t, text *C.char) C.int {
	return C.int(implWorksheetInsertTextbox(uintptr(worksheet), lxw.Row(row), lxw.Col(col), lvstr(text)))
}

//export worksheet_insert_textbox_opt_lv
func worksheet_insert_textbox_opt_lv(worksheet C.ulong, row C.uint32_t, col C.uint16_t, text *C.char, options *C.lxw_textbox_options) C.int {
	return C.int(implWorksheetInsertTextboxOpt(uintptr(worksheet), lxw.Row(row), lxw.Col(col), lvstr(text), goTextboxOptions(options)))
}

//export worksheet_add_table
func worksheet_add_table(worksheet C.ulong, first_row C.uint32_t, first_col C.uint16_t, last_row C.uint32_t, last_col C.uint16_t, options C.ulong) C.int {
	if getWorksheet(uintptr(worksheet)) == nil {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	return C.int(lxw.ErrFeatureNotSupported)
}

//export worksheet_autofilter
func worksheet_autofilter(worksheet C.ulong, first_row C.uint32_t, first_col C.uint16_t, last_row C.uint32_t, last_col C.uint16_t) C.int {
	return C.int(implWorksheetAutofilter(uintptr(worksheet), lxw.Row(first_row), lxw.Col(first_col), lxw.Row(last_row), lxw.Col(last_col)))
}

//export worksheet_filter_column_lv
func worksheet_filter_column_lv(worksheet C.ulong, col C.uint16_t, criteria C.uint8_t, value_string *C.char, value C.double) C.int {
	rule := lxw.FilterRule{
		Criteria:    uint8(criteria),
		ValueString: lvstr(value_string),
		Value:       float64(value),
	}
	return C.int(implWorksheetFilterColumn(uintptr(worksheet), lxw.Col(col), rule))
}

//export worksheet_filter_column2_lv
func worksheet_filter_column2_lv(worksheet C.ulong, col C.uint16_t, criteria1 C.uint8_t, value_string1 *C.char, value1 C.double, criteria2 C.uint8_t, value_string2 *C.char, value2 C.double, and_or C.uint8_t) C.int {
	rule1 := lxw.FilterRule{
		Criteria:    uint8(criteria1),
		ValueString: lvstr(value_string1),
		Value:       float64(value1),
	}
	rule2 := lxw.FilterRule{
		Criteria:    uint8(criteria2),
		ValueString: lvstr(value_string2),
		Value:       float64(value2),
	}
	return C.int(implWorksheetFilterColumn2(uintptr(worksheet), lxw.Col(col), rule1, rule2, and_or != 0))
}

//export worksheet_data_validation_cell
func worksheet_data_validation_cell(worksheet C.ulong, row C.uint32_t, col C.uint16_t, validation C.ulong) C.int {
	if getWorksheet(uintptr(worksheet)) == nil {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	return C.int(lxw.ErrFeatureNotSupported)
}

//export worksheet_data_validation_range
func worksheet_data_validation_range(worksheet C.ulong, first_row C.uint32_t, first_col C.uint16_t, last_row C.uint32_t, last_col C.uint16_t, validation C.ulong) C.int {
	if getWorksheet(uintptr(worksheet)) == nil {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	return C.int(lxw.ErrFeatureNotSupported)
}

//export worksheet_conditional_format_cell
func worksheet_conditional_format_cell(worksheet C.ulong, row C.uint32_t, col C.uint16_t, conditional_format C.ulong) C.int {
	if getWorksheet(uintptr(worksheet)) == nil {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	return C.int(lxw.ErrFeatureNotSupported)
}

//export worksheet_conditional_format_range
func worksheet_conditional_format_range(worksheet C.ulong, first_row C.uint32_t, first_col C.uint16_t, last_row C.uint32_t, last_col C.uint16_t, conditional_format C.ulong) C.int {
	if getWorksheet(uintptr(worksheet)) == nil {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	return C.int(lxw.ErrFeatureNotSupported)
}

//export worksheet_activate
func worksheet_activate(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.Activate()
	}
}

//export worksheet_select
func worksheet_select(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.Select()
	}
}

//export worksheet_hide
func worksheet_hide(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.Hide()
	}
}

//export worksheet_set_first_sheet
func worksheet_set_first_sheet(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SetFirstSheet()
	}
}

//export worksheet_freeze_panes
func worksheet_freeze_panes(worksheet C.ulong, row C.uint32_t, col C.uint16_t) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.FreezePanes(lxw.Row(row), lxw.Col(col))
	}
}

//export worksheet_freeze_panes_opt
func worksheet_freeze_panes_opt(worksheet C.ulong, first_row C.uint32_t, first_col C.uint16_t, top_row C.uint32_t, left_col C.uint16_t, pane_type C.uint8_t) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.FreezePanesOpt(lxw.Row(first_row), lxw.Col(first_col), lxw.Row(top_row), lxw.Col(left_col), uint8(pane_type))
	}
}

//export worksheet_split_panes
func worksheet_split_panes(worksheet C.ulong, vertical, horizontal C.double) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SplitPanes(float64(vertical), float64(horizontal))
	}
}

//export worksheet_split_panes_opt
func worksheet_split_panes_opt(worksheet C.ulong, vertical, horizontal C.double, top_row C.uint32_t, left_col C.uint16_t) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SplitPanesOpt(float64(vertical), float64(horizontal), lxw.Row(top_row), lxw.Col(left_col))
	}
}

//export worksheet_set_selection
func worksheet_set_selection(worksheet C.ulong, first_row C.uint32_t, first_col C.uint16_t, last_row C.uint32_t, last_col C.uint16_t) C.int {
	return C.int(implWorksheetSetSelection(uintptr(worksheet), lxw.Row(first_row), lxw.Col(first_col), lxw.Row(last_row), lxw.Col(last_col)))
}

//export worksheet_set_top_left_cell
func worksheet_set_top_left_cell(worksheet C.ulong, row C.uint32_t, col C.uint16_t) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SetTopLeftCell(lxw.Row(row), lxw.Col(col))
	}
}

//export worksheet_set_landscape
func worksheet_set_landscape(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SetLandscape()
	}
}

//export worksheet_set_portrait
func worksheet_set_portrait(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SetPortrait()
	}
}

//export worksheet_set_page_view
func worksheet_set_page_view(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SetPageView()
	}
}

//export worksheet_set_paper
func worksheet_set_paper(worksheet C.ulong, paper_type C.uint8_t) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SetPaper(uint8(paper_type))
	}
}

//export worksheet_set_margins
func worksheet_set_margins(worksheet C.ulong, left, right, top, bottom C.double) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SetMargins(float64(left), float64(right), float64(top), float64(bottom))
	}
}

//export worksheet_set_header
func worksheet_set_header(worksheet C.ulong, header *C.char) C.int {
	ws := getWorksheet(uintptr(worksheet))
	if ws == nil {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	return C.int(code(ws.SetHeader(gostr(header))))
}

//export worksheet_set_header_lv
func worksheet_set_header_lv(worksheet C.ulong, header *C.char) C.int {
	ws := getWorksheet(uintptr(worksheet))
	if ws == nil {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	return C.int(code(ws.SetHeader(lvstr(header))))
}

//export worksheet_set_footer
func worksheet_set_footer(worksheet C.ulong, footer *C.char) C.int {
	ws := getWorksheet(uintptr(worksheet))
	if ws == nil {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	return C.int(code(ws.SetFooter(gostr(footer))))
}

//export worksheet_set_footer_lv
func worksheet_set_footer_lv(worksheet C.ulong, footer *C.char) C.int {
	ws := getWorksheet(uintptr(worksheet))
	if ws == nil {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	return C.int(code(ws.SetFooter(lvstr(footer))))
}

//export worksheet_set_header_opt
func worksheet_set_header_opt(worksheet C.ulong, str *C.char, options *C.lxw_header_footer_options) C.int {
	return C.int(implWorksheetSetHeader(uintptr(worksheet), gostr(str), goHeaderFooterOptions(options)))
}

//export worksheet_set_footer_opt
func worksheet_set_footer_opt(worksheet C.ulong, str *C.char, options *C.lxw_header_footer_options) C.int {
	return C.int(implWorksheetSetFooter(uintptr(worksheet), gostr(str), goHeaderFooterOptions(options)))
}

//export worksheet_set_h_pagebreaks
func worksheet_set_h_pagebreaks(worksheet C.ulong, breaks C.ulong) C.int {
	return C.int(implWorksheetSetHPagebreaks(uintptr(worksheet), rowsAt(uintptr(breaks))))
}

//export worksheet_set_v_pagebreaks
func worksheet_set_v_pagebreaks(worksheet C.ulong, breaks C.ulong) C.int {
	return C.int(implWorksheetSetVPagebreaks(uintptr(worksheet), colsAt(uintptr(breaks))))
}

//export worksheet_print_across
func worksheet_print_across(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.PrintAcross()
	}
}

//export worksheet_set_zoom
func worksheet_set_zoom(worksheet C.ulong, scale C.uint16_t) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SetZoom(uint16(scale))
	}
}

//export worksheet_gridlines
func worksheet_gridlines(worksheet C.ulong, option C.uint8_t) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.Gridlines(uint8(option))
	}
}

//export worksheet_center_horizontally
func worksheet_center_horizontally(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.CenterHorizontally()
	}
}

//export worksheet_center_vertically
func worksheet_center_vertically(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.CenterVertically()
	}
}

//export worksheet_print_row_col_headers
func worksheet_print_row_col_headers(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.PrintRowColHeaders()
	}
}

//export worksheet_repeat_rows
func worksheet_repeat_rows(worksheet C.ulong, first_row, last_row C.uint32_t) C.int {
	return C.int(implWorksheetRepeatRows(uintptr(worksheet), lxw.Row(first_row), lxw.Row(last_row)))
}

//export worksheet_repeat_columns
func worksheet_repeat_columns(worksheet C.ulong, first_col, last_col C.uint16_t) C.int {
	return C.int(implWorksheetRepeatColumns(uintptr(worksheet), lxw.Col(first_col), lxw.Col(last_col)))
}

//export worksheet_print_area
func worksheet_print_area(worksheet C.ulong, first_row C.uint32_t, first_col C.uint16_t, last_row C.uint32_t, last_col C.uint16_t) C.int {
	return C.int(implWorksheetPrintArea(uintptr(worksheet), lxw.Row(first_row), lxw.Col(first_col), lxw.Row(last_row), lxw.Col(last_col)))
}

//export worksheet_fit_to_pages
func worksheet_fit_to_pages(worksheet C.ulong, width, height C.uint16_t) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.FitToPages(uint16(width), uint16(height))
	}
}

//export worksheet_set_start_page
func worksheet_set_start_page(worksheet C.ulong, start_page C.uint16_t) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SetStartPage(uint16(start_page))
	}
}

//export worksheet_set_print_scale
func worksheet_set_print_scale(worksheet C.ulong, scale C.uint16_t) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SetPrintScale(uint16(scale))
	}
}

//export worksheet_print_black_and_white
func worksheet_print_black_and_white(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.PrintBlackAndWhite()
	}
}

//export worksheet_right_to_left
func worksheet_right_to_left(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.RightToLeft()
	}
}

//export worksheet_hide_zero
func worksheet_hide_zero(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.HideZero()
	}
}

//export worksheet_set_tab_color
func worksheet_set_tab_color(worksheet C.ulong, color C.uint32_t) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SetTabColor(lxw.Color(color))
	}
}

//export worksheet_protect
func worksheet_protect(worksheet C.ulong, password *C.char, options *C.lxw_protection) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.Protect(gostr(password), goProtection(options))
	}
}

//export worksheet_outline_settings
func worksheet_outline_settings(worksheet C.ulong, visible, symbols_below, symbols_right, auto_style C.uint8_t) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.OutlineSettings(visible != 0, symbols_below != 0, symbols_right != 0, auto_style != 0)
	}
}

//export worksheet_set_default_row
func worksheet_set_default_row(worksheet C.ulong, height C.double, hide_unused_rows C.uint8_t) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SetDefaultRow(float64(height), hide_unused_rows != 0)
	}
}

//export worksheet_set_vba_name
func worksheet_set_vba_name(worksheet C.ulong, name *C.char) C.int {
	return C.int(implWorksheetSetVBAName(uintptr(worksheet), gostr(name)))
}

//export worksheet_show_comments
func worksheet_show_comments(worksheet C.ulong) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.ShowComments()
	}
}

//export worksheet_set_comments_author_lv
func worksheet_set_comments_author_lv(worksheet C.ulong, author *C.char) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SetCommentsAuthor(lvstr(author))
	}
}

//export worksheet_ignore_errors
func worksheet_ignore_errors(worksheet C.ulong, err_type C.uint8_t, rng *C.char) C.int {
	return C.int(implWorksheetIgnoreErrors(uintptr(worksheet), uint8(err_type), gostr(rng)))
}

//export worksheet_set_background
func worksheet_set_background(worksheet C.ulong, filename *C.char) C.int {
	return C.int(implWorksheetSetBackground(uintptr(worksheet), gostr(filename)))
}

//export worksheet_set_background_lv
func worksheet_set_background_lv(worksheet C.ulong, filename *C.char) C.int {
	return C.int(implWorksheetSetBackground(uintptr(worksheet), lvstr(filename)))
}

//export worksheet_set_background_buffer
func worksheet_set_background_buffer(worksheet C.ulong, image_buffer *C.uchar, image_size C.size_t) C.int {
	return C.int(implWorksheetSetBackgroundBuffer(uintptr(worksheet), goBytes(image_buffer, image_size)))
}

//export worksheet_set_error_cell
func worksheet_set_error_cell(worksheet C.ulong, row C.uint32_t, col C.uint16_t) {
	if ws := getWorksheet(uintptr(worksheet)); ws != nil {
		ws.SetErrorCell(lxw.Row(row), lxw.Col(col))
	}
}
