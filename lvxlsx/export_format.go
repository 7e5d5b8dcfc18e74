package main

/*
#include "clib.h"
*/
import "C"

import (
	"github.com/lvxlsx/lvxlsx/pkg/lxw"
)

//export format_set_font_name_lv
func format_set_font_name_lv(format C.ulong, font_name *C.char) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetFontName(lvstr(font_name))
	}
}

//export format_set_font_size
func format_set_font_size(format C.ulong, size C.double) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetFontSize(float64(size))
	}
}

//export format_set_font_color
func format_set_font_color(format C.ulong, color C.uint32_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetFontColor(lxw.Color(color))
	}
}

//export format_set_bold
func format_set_bold(format C.ulong) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetBold()
	}
}

//export format_set_italic
func format_set_italic(format C.ulong) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetItalic()
	}
}

//export format_set_underline
func format_set_underline(format C.ulong, style C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetUnderline(uint8(style))
	}
}

//export format_set_font_strikeout
func format_set_font_strikeout(format C.ulong) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetFontStrikeout()
	}
}

//export format_set_font_script
func format_set_font_script(format C.ulong, style C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetFontScript(uint8(style))
	}
}

//export format_set_num_format_lv
func format_set_num_format_lv(format C.ulong, num_format *C.char) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetNumFormat(lvstr(num_format))
	}
}

//export format_set_num_format_index
func format_set_num_format_index(format C.ulong, index C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetNumFormatIndex(uint8(index))
	}
}

//export format_set_unlocked
func format_set_unlocked(format C.ulong) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetUnlocked()
	}
}

//export format_set_hidden
func format_set_hidden(format C.ulong) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetHidden()
	}
}

//export format_set_align
func format_set_align(format C.ulong, alignment C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetAlign(uint8(alignment))
	}
}

//export format_set_text_wrap
func format_set_text_wrap(format C.ulong) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetTextWrap()
	}
}

//export format_set_rotation
func format_set_rotation(format C.ulong, angle C.int16_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetRotation(int16(angle))
	}
}

//export format_set_indent
func format_set_indent(format C.ulong, level C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetIndent(uint8(level))
	}
}

//export format_set_shrink
func format_set_shrink(format C.ulong) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetShrink()
	}
}

//export format_set_pattern
func format_set_pattern(format C.ulong, pattern C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetPattern(uint8(pattern))
	}
}

//export format_set_bg_color
func format_set_bg_color(format C.ulong, color C.uint32_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetBgColor(lxw.Color(color))
	}
}

//export format_set_fg_color
func format_set_fg_color(format C.ulong, color C.uint32_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetFgColor(lxw.Color(color))
	}
}

//export format_set_border
func format_set_border(format C.ulong, style C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetBorder(uint8(style))
	}
}

//export format_set_bottom
func format_set_bottom(format C.ulong, style C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetBottom(uint8(style))
	}
}

//export format_set_top
func format_set_top(format C.ulong, style C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetTop(uint8(style))
	}
}

//export format_set_left
func format_set_left(format C.ulong, style C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetLeft(uint8(style))
	}
}

//export format_set_right
func format_set_right(format C.ulong, style C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetRight(uint8(style))
	}
}

//export format_set_border_color
func format_set_border_color(format C.ulong, color C.uint32_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetBorderColor(lxw.Color(color))
	}
}

//export format_set_bottom_color
func format_set_bottom_color(format C.ulong, color C.uint32_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetBottomColor(lxw.Color(color))
	}
}

//export format_set_top_color
func format_set_top_color(format C.ulong, color C.uint32_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetTopColor(lxw.Color(color))
	}
}

//export format_set_left_color
func format_set_left_color(format C.ulong, color C.uint32_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetLeftColor(lxw.Color(color))
	}
}

//export format_set_right_color
func format_set_right_color(format C.ulong, color C.uint32_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetRightColor(lxw.Color(color))
	}
}

//export format_set_diag_type
func format_set_diag_type(format C.ulong, value C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetDiagType(uint8(value))
	}
}

//export format_set_diag_border
func format_set_diag_border(format C.ulong, value C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetDiagBorder(uint8(value))
	}
}

//export format_set_diag_color
func format_set_diag_color(format C.ulong, color C.uint32_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetDiagColor(lxw.Color(color))
	}
}

//export format_set_font_family
func format_set_font_family(format C.ulong, value C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetFontFamily(uint8(value))
	}
}

//export format_set_font_scheme
func format_set_font_scheme(format C.ulong, font_scheme *C.char) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetFontScheme(gostr(font_scheme))
	}
}

//export format_set_reading_order
func format_set_reading_order(format C.ulong, value C.uint8_t) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetReadingOrder(uint8(value))
	}
}

//export format_set_hyperlink
func format_set_hyperlink(format C.ulong) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetHyperlink()
	}
}

//export format_set_quote_prefix
func format_set_quote_prefix(format C.ulong) {
	if f := getFormat(uintptr(format)); f != nil {
		f.SetQuotePrefix()
	}
}

// The remaining format attributes carry font metadata the engine's
// stylesheet writer has no slot for. The calls resolve the handle and
// accept the value so host code keeps working.

//export format_set_font_charset
func format_set_font_charset(format C.ulong, value C.uint8_t) {
	getFormat(uintptr(format))
}

//export format_set_font_outline
func format_set_font_outline(format C.ulong) {
	getFormat(uintptr(format))
}

//export format_set_font_shadow
func format_set_font_shadow(format C.ulong) {
	getFormat(uintptr(format))
}

//export format_set_font_condense
func format_set_font_condense(format C.ulong) {
	getFormat(uintptr(format))
}

//export format_set_font_extend
func format_set_font_extend(format C.ulong) {
	getFormat(uintptr(format))
}

//export format_set_theme
func format_set_theme(format C.ulong, value C.uint8_t) {
	getFormat(uintptr(format))
}

//export format_set_color_indexed
func format_set_color_indexed(format C.ulong, value C.uint8_t) {
	getFormat(uintptr(format))
}

//export format_set_font_only
func format_set_font_only(format C.ulong) {
	getFormat(uintptr(format))
}

//export format_set_checkbox
func format_set_checkbox(format C.ulong) {
	getFormat(uintptr(format))
}
