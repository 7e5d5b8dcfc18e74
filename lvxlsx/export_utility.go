package main

/*
#include "clib.h"
*/
import "C"

import (
	"sync"

	"github.com/lvxlsx/lvxlsx/pkg/lxw"
)

//export lxw_parse_cell
func lxw_parse_cell(cell_str *C.char, row *C.uint32_t, col *C.uint16_t) {
	r, c := lxw.ParseCell(gostr(cell_str))
	if row != nil {
		*row = C.uint32_t(r)
	}
	if col != nil {
		*col = C.uint16_t(c)
	}
}

//export lxw_parse_cols
func lxw_parse_cols(cols_str *C.char, first_col, last_col *C.uint16_t) {
	first, last := lxw.ParseCols(gostr(cols_str))
	if first_col != nil {
		*first_col = C.uint16_t(first)
	}
	if last_col != nil {
		*last_col = C.uint16_t(last)
	}
}

//export lxw_parse_range
func lxw_parse_range(range_str *C.char, first_row *C.uint32_t, first_col *C.uint16_t, last_row *C.uint32_t, last_col *C.uint16_t) {
	fr, fc, lr, lc := lxw.ParseRange(gostr(range_str))
	if first_row != nil {
		*first_row = C.uint32_t(fr)
	}
	if first_col != nil {
		*first_col = C.uint16_t(fc)
	}
	if last_row != nil {
		*last_row = C.uint32_t(lr)
	}
	if last_col != nil {
		*last_col = C.uint16_t(lc)
	}
}

//export lxw_name_to_row
func lxw_name_to_row(row_str *C.char) C.uint32_t {
	return C.uint32_t(lxw.NameToRow(gostr(row_str)))
}

//export lxw_name_to_col
func lxw_name_to_col(col_str *C.char) C.uint16_t {
	return C.uint16_t(lxw.NameToCol(gostr(col_str)))
}

//export lxw_name_to_row_2
func lxw_name_to_row_2(row_str *C.char) C.uint32_t {
	return C.uint32_t(lxw.NameToRow2(gostr(row_str)))
}

//export lxw_name_to_col_2
func lxw_name_to_col_2(col_str *C.char) C.uint16_t {
	return C.uint16_t(lxw.NameToCol2(gostr(col_str)))
}

var versionC = C.CString(lxw.Version)

//export lxw_version
func lxw_version() *C.char {
	return versionC
}

//export lxw_version_id
func lxw_version_id() C.uint16_t {
	return C.uint16_t(lxw.VersionID)
}

// Error strings are allocated once per code and live for the process,
// matching the static strings of the original interface.
var (
	strerrMu sync.Mutex
	strerrs  = map[lxw.Error]*C.char{}
)

//export lxw_strerror
func lxw_strerror(error_num C.int) *C.char {
	code := lxw.Error(error_num)
	strerrMu.Lock()
	defer strerrMu.Unlock()
	if s, ok := strerrs[code]; ok {
		return s
	}
	s := C.CString(lxw.Strerror(code))
	strerrs[code] = s
	return s
}

//export lxw_datetime_to_excel_datetime
func lxw_datetime_to_excel_datetime(datetime *C.lxw_datetime) C.double {
	return C.double(lxw.DateTimeToExcel(goDateTime(datetime)))
}

//export lxw_unixtime_to_excel_date
func lxw_unixtime_to_excel_date(unixtime C.int64_t) C.int32_t {
	return C.int32_t(lxw.UnixTimeToExcelDate(int64(unixtime)))
}

//export lxw_unixtime_to_excel_date_epoch
func lxw_unixtime_to_excel_date_epoch(unixtime C.int64_t, is_date_1904 C.uint8_t) C.double {
	return C.double(lxw.UnixTimeToExcelDateEpoch(int64(unixtime), is_date_1904 != 0))
}
