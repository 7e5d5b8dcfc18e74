package main

/*
#include "clib.h"
*/
import "C"

//export workbook_new
func workbook_new(filename *C.char) C.ulong {
	return C.ulong(implWorkbookNew(gostr(filename)))
}

//export workbook_new_opt
func workbook_new_opt(filename *C.char, options *C.lxw_workbook_options) C.ulong {
	return C.ulong(implWorkbookNewOpt(gostr(filename), goWorkbookOptions(options)))
}

//export workbook_new_lv
func workbook_new_lv(filename *C.char) C.ulong {
	return C.ulong(implWorkbookNew(lvstr(filename)))
}

//export workbook_new_opt_lv
func workbook_new_opt_lv(filename *C.char, options *C.lxw_workbook_options) C.ulong {
	return C.ulong(implWorkbookNewOpt(lvstr(filename), goWorkbookOptions(options)))
}

//export workbook_add_worksheet_lv
func workbook_add_worksheet_lv(workbook C.ulong, sheetname *C.char) C.ulong {
	return C.ulong(implWorkbookAddWorksheet(uintptr(workbook), lvstr(sheetname)))
}

//export workbook_add_chartsheet_lv
func workbook_add_chartsheet_lv(workbook C.ulong, sheetname *C.char) C.ulong {
	return C.ulong(implWorkbookAddChartsheet(uintptr(workbook), lvstr(sheetname)))
}

//export workbook_add_format
func workbook_add_format(workbook C.ulong) C.ulong {
	return C.ulong(implWorkbookAddFormat(uintptr(workbook)))
}

//export workbook_get_default_url_format
func workbook_get_default_url_format(workbook C.ulong) C.ulong {
	return C.ulong(implWorkbookGetDefaultURLFormat(uintptr(workbook)))
}

//export workbook_add_chart
func workbook_add_chart(workbook C.ulong, chart_type C.uint8_t) C.ulong {
	return C.ulong(implWorkbookAddChart(uintptr(workbook), uint8(chart_type)))
}

//export workbook_close
func workbook_close(workbook C.ulong) C.int {
	return C.int(implWorkbookClose(uintptr(workbook)))
}

//export workbook_set_properties
func workbook_set_properties(workbook C.ulong, properties *C.lxw_doc_properties) C.int {
	return C.int(implWorkbookSetProperties(uintptr(workbook), goDocProperties(properties)))
}

//export workbook_set_custom_property_string_lv
func workbook_set_custom_property_string_lv(workbook C.ulong, name, value *C.char) C.int {
	return C.int(implWorkbookSetCustomPropertyString(uintptr(workbook), lvstr(name), lvstr(value)))
}

//export workbook_set_custom_property_number
func workbook_set_custom_property_number(workbook C.ulong, name *C.char, value C.double) C.int {
	return C.int(implWorkbookSetCustomPropertyNumber(uintptr(workbook), gostr(name), float64(value)))
}

//export workbook_set_custom_property_integer
func workbook_set_custom_property_integer(workbook C.ulong, name *C.char, value C.int32_t) C.int {
	return C.int(implWorkbookSetCustomPropertyInteger(uintptr(workbook), gostr(name), int32(value)))
}

//export workbook_set_custom_property_boolean
func workbook_set_custom_property_boolean(workbook C.ulong, name *C.char, value C.uint8_t) C.int {
	return C.int(implWorkbookSetCustomPropertyBoolean(uintptr(workbook), gostr(name), value != 0))
}

//export workbook_set_custom_property_datetime
func workbook_set_custom_property_datetime(workbook C.ulong, name *C.char, datetime *C.lxw_datetime) C.int {
	return C.int(implWorkbookSetCustomPropertyDatetime(uintptr(workbook), gostr(name), goDateTime(datetime)))
}

//export workbook_define_name_lv
func workbook_define_name_lv(workbook C.ulong, name, formula *C.char) C.int {
	return C.int(implWorkbookDefineName(uintptr(workbook), lvstr(name), lvstr(formula)))
}

//export workbook_get_worksheet_by_name_lv
func workbook_get_worksheet_by_name_lv(workbook C.ulong, name *C.char) C.ulong {
	return C.ulong(implWorkbookGetWorksheetByName(uintptr(workbook), lvstr(name)))
}

//export workbook_get_chartsheet_by_name_lv
func workbook_get_chartsheet_by_name_lv(workbook C.ulong, name *C.char) C.ulong {
	return C.ulong(implWorkbookGetChartsheetByName(uintptr(workbook), lvstr(name)))
}

//export workbook_validate_sheet_name_lv
func workbook_validate_sheet_name_lv(workbook C.ulong, sheetname *C.char) C.int {
	return C.int(implWorkbookValidateSheetName(uintptr(workbook), lvstr(sheetname)))
}

//export workbook_add_vba_project
func workbook_add_vba_project(workbook C.ulong, filename *C.char) C.int {
	return C.int(implWorkbookAddVBAProject(uintptr(workbook), gostr(filename)))
}

//export workbook_add_vba_project_lv
func workbook_add_vba_project_lv(workbook C.ulong, filename *C.char) C.int {
	return C.int(implWorkbookAddVBAProject(uintptr(workbook), lvstr(filename)))
}

//export workbook_add_signed_vba_project
func workbook_add_signed_vba_project(workbook C.ulong, vba_project, signature *C.char) C.int {
	return C.int(implWorkbookAddSignedVBAProject(uintptr(workbook), gostr(vba_project), gostr(signature)))
}

//export workbook_add_signed_vba_project_lv
func workbook_add_signed_vba_project_lv(workbook C.ulong, vba_project, signature *C.char) C.int {
	return C.int(implWorkbookAddSignedVBAProject(uintptr(workbook), lvstr(vba_project), lvstr(signature)))
}

//export workbook_set_vba_name
func workbook_set_vba_name(workbook C.ulong, name *C.char) C.int {
	return C.int(implWorkbookSetVBAName(uintptr(workbook), gostr(name)))
}

//export workbook_read_only_recommended
func workbook_read_only_recommended(workbook C.ulong) {
	if wb := getWorkbook(uintptr(workbook)); wb != nil {
		wb.ReadOnlyRecommended()
	}
}

//export workbook_use_1904_epoch
func workbook_use_1904_epoch(workbook C.ulong) {
	if wb := getWorkbook(uintptr(workbook)); wb != nil {
		wb.Use1904Epoch()
	}
}

//export workbook_set_size
func workbook_set_size(workbook C.ulong, width, height C.uint16_t) {
	if wb := getWorkbook(uintptr(workbook)); wb != nil {
		wb.SetSize(uint16(width), uint16(height))
	}
}
