package main

/*
#include "clib.h"
*/
import "C"

import (
	"unsafe"

	"github.com/lvxlsx/lvxlsx/pkg/lxw"
)

//export chart_add_series_impl
func chart_add_series_impl(chart C.ulong, categories, values *C.char, y2_axis C.uint8_t) C.ulong {
	if y2_axis != 0 {
		return C.ulong(implChartAddSeriesY2(uintptr(chart), gostr(categories), gostr(values)))
	}
	return C.ulong(implChartAddSeries(uintptr(chart), gostr(categories), gostr(values)))
}

//export chart_add_series_lv
func chart_add_series_lv(chart C.ulong, categories, values *C.char, y2_axis C.uint8_t) C.ulong {
	if y2_axis != 0 {
		return C.ulong(implChartAddSeriesY2(uintptr(chart), lvstr(categories), lvstr(values)))
	}
	return C.ulong(implChartAddSeries(uintptr(chart), lvstr(categories), lvstr(values)))
}

//export chart_series_set_name_lv
func chart_series_set_name_lv(series C.ulong, name *C.char) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetName(lvstr(name))
	}
}

//export chart_series_set_name_range_lv
func chart_series_set_name_range_lv(series C.ulong, sheetname *C.char, row C.uint32_t, col C.uint16_t) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetNameRange(lvstr(sheetname), lxw.Row(row), lxw.Col(col))
	}
}

//export chart_series_set_categories_lv
func chart_series_set_categories_lv(series C.ulong, sheetname *C.char, first_row C.uint32_t, first_col C.uint16_t, last_row C.uint32_t, last_col C.uint16_t) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetCategories(lvstr(sheetname), lxw.Row(first_row), lxw.Col(first_col), lxw.Row(last_row), lxw.Col(last_col))
	}
}

//export chart_series_set_values_lv
func chart_series_set_values_lv(series C.ulong, sheetname *C.char, first_row C.uint32_t, first_col C.uint16_t, last_row C.uint32_t, last_col C.uint16_t) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetValues(lvstr(sheetname), lxw.Row(first_row), lxw.Col(first_col), lxw.Row(last_row), lxw.Col(last_col))
	}
}

//export chart_series_set_line
func chart_series_set_line(series C.ulong, line *C.lxw_chart_line) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetLine(goChartLine(line))
	}
}

//export chart_series_set_fill
func chart_series_set_fill(series C.ulong, fill *C.lxw_chart_fill) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetFill(goChartFill(fill))
	}
}

//export chart_series_set_invert_if_negative
func chart_series_set_invert_if_negative(series C.ulong) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetInvertIfNegative()
	}
}

//export chart_series_set_pattern
func chart_series_set_pattern(series C.ulong, pattern *C.lxw_chart_pattern) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetPattern(goChartPattern(pattern))
	}
}

//export chart_series_set_gradient
func chart_series_set_gradient(series C.ulong, gradient *C.lxw_chart_gradient_fill) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetGradient(goChartGradient(gradient))
	}
}

//export chart_series_set_marker_type
func chart_series_set_marker_type(series C.ulong, marker_type C.uint8_t) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetMarkerType(uint8(marker_type))
	}
}

//export chart_series_set_marker_size
func chart_series_set_marker_size(series C.ulong, size C.uint8_t) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetMarkerSize(uint8(size))
	}
}

//export chart_series_set_marker_line
func chart_series_set_marker_line(series C.ulong, line *C.lxw_chart_line) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetMarkerLine(goChartLine(line))
	}
}

//export chart_series_set_marker_fill
func chart_series_set_marker_fill(series C.ulong, fill *C.lxw_chart_fill) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetMarkerFill(goChartFill(fill))
	}
}

//export chart_series_set_marker_pattern
func chart_series_set_marker_pattern(series C.ulong, pattern *C.lxw_chart_pattern) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetMarkerPattern(goChartPattern(pattern))
	}
}

//export chart_series_set_points
func chart_series_set_points(series C.ulong, points C.ulong) C.int {
	if getSeries(uintptr(series)) == nil {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	return C.int(lxw.ErrFeatureNotSupported)
}

//export chart_series_set_smooth
func chart_series_set_smooth(series C.ulong, smooth C.uint8_t) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetSmooth(smooth != 0)
	}
}

//export chart_series_set_labels
func chart_series_set_labels(series C.ulong) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetLabels()
	}
}

//export chart_series_set_labels_options
func chart_series_set_labels_options(series C.ulong, show_name, show_category, show_value C.uint8_t) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetLabelsOptions(show_name != 0, show_category != 0, show_value != 0)
	}
}

// chart_series_set_labels_custom takes the address of a NULL
// terminated array of pointers to lxw_chart_data_label. Strings are
// taken as-is; the host is responsible for the encoding here.
//
//export chart_series_set_labels_custom
func chart_series_set_labels_custom(series C.ulong, data_labels C.ulong) C.int {
	s := getSeries(uintptr(series))
	if s == nil {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	addr := uintptr(data_labels)
	if addr == 0 {
		return C.int(lxw.ErrNullParameterIgnored)
	}
	var labels []lxw.DataLabel
	for {
		p := *(*uintptr)(unsafe.Pointer(addr))
		if p == 0 {
			break
		}
		dl := (*C.lxw_chart_data_label)(unsafe.Pointer(p))
		labels = append(labels, lxw.DataLabel{
			Value: goStringAt(uintptr(dl.value)),
			Hide:  dl.hide != 0,
		})
		addr += unsafe.Sizeof(uintptr(0))
	}
	return C.int(code(s.SetLabelsCustom(labels)))
}

//export chart_series_set_labels_custom_lv
func chart_series_set_labels_custom_lv(series C.ulong, values *C.uintptr_t, hide_flags *C.uint8_t, count C.uint16_t) C.int {
	n := int(count)
	var addrs []uintptr
	var hide []byte
	if values != nil && n > 0 {
		vs := unsafe.Slice(values, n)
		addrs = make([]uintptr, n)
		for i, v := range vs {
			addrs[i] = uintptr(v)
		}
	}
	if hide_flags != nil && n > 0 {
		hide = unsafe.Slice((*byte)(hide_flags), n)
	}
	return C.int(implChartSeriesSetLabelsCustom(uintptr(series), addrs, hide, lv))
}

//export chart_series_set_labels_separator
func chart_series_set_labels_separator(series C.ulong, separator C.uint8_t) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetLabelsSeparator(uint8(separator))
	}
}

//export chart_series_set_labels_position
func chart_series_set_labels_position(series C.ulong, position C.uint8_t) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetLabelsPosition(uint8(position))
	}
}

//export chart_series_set_labels_leader_line
func chart_series_set_labels_leader_line(series C.ulong) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetLabelsLeaderLine()
	}
}

//export chart_series_set_labels_legend
func chart_series_set_labels_legend(series C.ulong) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetLabelsLegend()
	}
}

//export chart_series_set_labels_percentage
func chart_series_set_labels_percentage(series C.ulong) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetLabelsPercentage()
	}
}

//export chart_series_set_labels_num_format_lv
func chart_series_set_labels_num_format_lv(series C.ulong, num_format *C.char) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetLabelsNumFormat(lvstr(num_format))
	}
}

//export chart_series_set_labels_font
func chart_series_set_labels_font(series C.ulong, font *C.lxw_chart_font) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetLabelsFont(goChartFont(font))
	}
}

//export chart_series_set_labels_line
func chart_series_set_labels_line(series C.ulong, line *C.lxw_chart_line) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetLabelsLine(goChartLine(line))
	}
}

//export chart_series_set_labels_fill
func chart_series_set_labels_fill(series C.ulong, fill *C.lxw_chart_fill) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetLabelsFill(goChartFill(fill))
	}
}

//export chart_series_set_labels_pattern
func chart_series_set_labels_pattern(series C.ulong, pattern *C.lxw_chart_pattern) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetLabelsPattern(goChartPattern(pattern))
	}
}

//export chart_series_set_trendline
func chart_series_set_trendline(series C.ulong, trend_type, value C.uint8_t) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetTrendline(uint8(trend_type), uint8(value))
	}
}

//export chart_series_set_trendline_forecast
func chart_series_set_trendline_forecast(series C.ulong, forward, backward C.double) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetTrendlineForecast(float64(forward), float64(backward))
	}
}

//export chart_series_set_trendline_equation
func chart_series_set_trendline_equation(series C.ulong) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetTrendlineEquation()
	}
}

//export chart_series_set_trendline_r_squared
func chart_series_set_trendline_r_squared(series C.ulong) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetTrendlineRSquared()
	}
}

//export chart_series_set_trendline_intercept
func chart_series_set_trendline_intercept(series C.ulong, intercept C.double) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetTrendlineIntercept(float64(intercept))
	}
}

//export chart_series_set_trendline_name_lv
func chart_series_set_trendline_name_lv(series C.ulong, name *C.char) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetTrendlineName(lvstr(name))
	}
}

//export chart_series_set_trendline_line
func chart_series_set_trendline_line(series C.ulong, line *C.lxw_chart_line) {
	if s := getSeries(uintptr(series)); s != nil {
		s.SetTrendlineLine(goChartLine(line))
	}
}

//export chart_series_get_error_bars
func chart_series_get_error_bars(series C.ulong, axis_type C.uint8_t) C.ulong {
	return C.ulong(implChartSeriesGetErrorBars(uintptr(series), uint8(axis_type)))
}

//export chart_series_set_error_bars
func chart_series_set_error_bars(error_bars C.ulong, bar_type C.uint8_t, value C.double) {
	if eb := getErrorBars(uintptr(error_bars)); eb != nil {
		eb.Set(uint8(bar_type), float64(value))
	}
}

//export chart_series_set_error_bars_direction
func chart_series_set_error_bars_direction(error_bars C.ulong, direction C.uint8_t) {
	if eb := getErrorBars(uintptr(error_bars)); eb != nil {
		eb.SetDirection(uint8(direction))
	}
}

//export chart_series_set_error_bars_endcap
func chart_series_set_error_bars_endcap(error_bars C.ulong, endcap C.uint8_t) {
	if eb := getErrorBars(uintptr(error_bars)); eb != nil {
		eb.SetEndcap(uint8(endcap))
	}
}

//export chart_series_set_error_bars_line
func chart_series_set_error_bars_line(error_bars C.ulong, line *C.lxw_chart_line) {
	if eb := getErrorBars(uintptr(error_bars)); eb != nil {
		eb.SetLine(goChartLine(line))
	}
}

//export chart_axis_get
func chart_axis_get(chart C.ulong, axis_type C.uint8_t) C.ulong {
	return C.ulong(implChartAxisGet(uintptr(chart), uint8(axis_type)))
}

//export chart_get_x_axis
func chart_get_x_axis(chart C.ulong) C.ulong {
	return C.ulong(implChartAxisGet(uintptr(chart), lxw.AxisTypeX))
}

//export chart_get_y_axis
func chart_get_y_axis(chart C.ulong) C.ulong {
	return C.ulong(implChartAxisGet(uintptr(chart), lxw.AxisTypeY))
}

//export chart_get_y2_axis
func chart_get_y2_axis(chart C.ulong) C.ulong {
	return C.ulong(implChartAxisGet(uintptr(chart), lxw.AxisTypeY2))
}

//export chart_axis_set_name_lv
func chart_axis_set_name_lv(axis C.ulong, name *C.char) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetName(lvstr(name))
	}
}

//export chart_axis_set_name_range_lv
func chart_axis_set_name_range_lv(axis C.ulong, sheetname *C.char, row C.uint32_t, col C.uint16_t) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetNameRange(lvstr(sheetname), lxw.Row(row), lxw.Col(col))
	}
}

//export chart_axis_set_name_layout
func chart_axis_set_name_layout(axis C.ulong, layout *C.lxw_chart_layout) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetNameLayout(goChartLayout(layout))
	}
}

//export chart_axis_set_name_font
func chart_axis_set_name_font(axis C.ulong, font *C.lxw_chart_font) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetNameFont(goChartFont(font))
	}
}

//export chart_axis_set_num_font
func chart_axis_set_num_font(axis C.ulong, font *C.lxw_chart_font) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetNumFont(goChartFont(font))
	}
}

//export chart_axis_set_num_format_lv
func chart_axis_set_num_format_lv(axis C.ulong, num_format *C.char) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetNumFormat(lvstr(num_format))
	}
}

//export chart_axis_set_line
func chart_axis_set_line(axis C.ulong, line *C.lxw_chart_line) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetLine(goChartLine(line))
	}
}

//export chart_axis_set_fill
func chart_axis_set_fill(axis C.ulong, fill *C.lxw_chart_fill) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetFill(goChartFill(fill))
	}
}

//export chart_axis_set_pattern
func chart_axis_set_pattern(axis C.ulong, pattern *C.lxw_chart_pattern) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetPattern(goChartPattern(pattern))
	}
}

//export chart_axis_set_reverse
func chart_axis_set_reverse(axis C.ulong) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetReverse()
	}
}

//export chart_axis_set_crossing
func chart_axis_set_crossing(axis C.ulong, value C.double) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetCrossing(float64(value))
	}
}

//export chart_axis_set_crossing_max
func chart_axis_set_crossing_max(axis C.ulong) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetCrossingMax()
	}
}

//export chart_axis_set_crossing_min
func chart_axis_set_crossing_min(axis C.ulong) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetCrossingMin()
	}
}

//export chart_axis_off
func chart_axis_off(axis C.ulong) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.Off()
	}
}

//export chart_axis_set_position
func chart_axis_set_position(axis C.ulong, position C.uint8_t) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetPosition(uint8(position))
	}
}

//export chart_axis_set_label_position
func chart_axis_set_label_position(axis C.ulong, position C.uint8_t) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetLabelPosition(uint8(position))
	}
}

//export chart_axis_set_label_align
func chart_axis_set_label_align(axis C.ulong, align C.uint8_t) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetLabelAlign(uint8(align))
	}
}

//export chart_axis_set_min
func chart_axis_set_min(axis C.ulong, min C.double) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetMin(float64(min))
	}
}

//export chart_axis_set_max
func chart_axis_set_max(axis C.ulong, max C.double) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetMax(float64(max))
	}
}

//export chart_axis_set_log_base
func chart_axis_set_log_base(axis C.ulong, log_base C.uint16_t) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetLogBase(uint16(log_base))
	}
}

//export chart_axis_set_major_tick_mark
func chart_axis_set_major_tick_mark(axis C.ulong, tick_type C.uint8_t) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetMajorTickMark(uint8(tick_type))
	}
}

//export chart_axis_set_minor_tick_mark
func chart_axis_set_minor_tick_mark(axis C.ulong, tick_type C.uint8_t) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetMinorTickMark(uint8(tick_type))
	}
}

//export chart_axis_set_interval_unit
func chart_axis_set_interval_unit(axis C.ulong, unit C.uint16_t) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetIntervalUnit(uint16(unit))
	}
}

//export chart_axis_set_interval_tick
func chart_axis_set_interval_tick(axis C.ulong, unit C.uint16_t) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetIntervalTick(uint16(unit))
	}
}

//export chart_axis_set_major_unit
func chart_axis_set_major_unit(axis C.ulong, unit C.double) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetMajorUnit(float64(unit))
	}
}

//export chart_axis_set_minor_unit
func chart_axis_set_minor_unit(axis C.ulong, unit C.double) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetMinorUnit(float64(unit))
	}
}

//export chart_axis_set_display_units
func chart_axis_set_display_units(axis C.ulong, units C.uint8_t) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetDisplayUnits(uint8(units))
	}
}

//export chart_axis_set_display_units_visible
func chart_axis_set_display_units_visible(axis C.ulong, visible C.uint8_t) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.SetDisplayUnitsVisible(visible != 0)
	}
}

//export chart_axis_major_gridlines_set_visible
func chart_axis_major_gridlines_set_visible(axis C.ulong, visible C.uint8_t) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.MajorGridlinesSetVisible(visible != 0)
	}
}

//export chart_axis_minor_gridlines_set_visible
func chart_axis_minor_gridlines_set_visible(axis C.ulong, visible C.uint8_t) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.MinorGridlinesSetVisible(visible != 0)
	}
}

//export chart_axis_major_gridlines_set_line
func chart_axis_major_gridlines_set_line(axis C.ulong, line *C.lxw_chart_line) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.MajorGridlinesSetLine(goChartLine(line))
	}
}

//export chart_axis_minor_gridlines_set_line
func chart_axis_minor_gridlines_set_line(axis C.ulong, line *C.lxw_chart_line) {
	if a := getAxis(uintptr(axis)); a != nil {
		a.MinorGridlinesSetLine(goChartLine(line))
	}
}

//export chart_title_set_name_lv
func chart_title_set_name_lv(chart C.ulong, name *C.char) {
	if c := getChart(uintptr(chart)); c != nil {
		c.TitleSetName(lvstr(name))
	}
}

//export chart_title_set_name_range_lv
func chart_title_set_name_range_lv(chart C.ulong, sheetname *C.char, row C.uint32_t, col C.uint16_t) {
	if c := getChart(uintptr(chart)); c != nil {
		c.TitleSetNameRange(lvstr(sheetname), lxw.Row(row), lxw.Col(col))
	}
}

//export chart_title_set_name_font
func chart_title_set_name_font(chart C.ulong, font *C.lxw_chart_font) {
	if c := getChart(uintptr(chart)); c != nil {
		c.TitleSetNameFont(goChartFont(font))
	}
}

//export chart_title_set_layout
func chart_title_set_layout(chart C.ulong, layout *C.lxw_chart_layout) {
	if c := getChart(uintptr(chart)); c != nil {
		c.TitleSetLayout(goChartLayout(layout))
	}
}

//export chart_title_set_overlay
func chart_title_set_overlay(chart C.ulong, overlay C.uint8_t) {
	if c := getChart(uintptr(chart)); c != nil {
		c.TitleSetOverlay(overlay != 0)
	}
}

//export chart_title_off
func chart_title_off(chart C.ulong) {
	if c := getChart(uintptr(chart)); c != nil {
		c.TitleOff()
	}
}

//export chart_legend_set_position
func chart_legend_set_position(chart C.ulong, position C.uint8_t) {
	if c := getChart(uintptr(chart)); c != nil {
		c.LegendSetPosition(uint8(position))
	}
}

//export chart_legend_set_font
func chart_legend_set_font(chart C.ulong, font *C.lxw_chart_font) {
	if c := getChart(uintptr(chart)); c != nil {
		c.LegendSetFont(goChartFont(font))
	}
}

//export chart_legend_set_layout
func chart_legend_set_layout(chart C.ulong, layout *C.lxw_chart_layout) {
	if c := getChart(uintptr(chart)); c != nil {
		c.LegendSetLayout(goChartLayout(layout))
	}
}

// chart_legend_delete_series takes the address of an int16_t array
// terminated by a negative value.
//
//export chart_legend_delete_series
func chart_legend_delete_series(chart C.ulong, delete_series C.ulong) C.int {
	var indexes []uint16
	addr := uintptr(delete_series)
	for addr != 0 {
		v := *(*int16)(unsafe.Pointer(addr))
		if v < 0 {
			break
		}
		indexes = append(indexes, uint16(v))
		addr += 2
	}
	return C.int(implChartLegendDeleteSeries(uintptr(chart), indexes))
}

//export chart_chartarea_set_line
func chart_chartarea_set_line(chart C.ulong, line *C.lxw_chart_line) {
	if c := getChart(uintptr(chart)); c != nil {
		c.ChartareaSetLine(goChartLine(line))
	}
}

//export chart_chartarea_set_fill
func chart_chartarea_set_fill(chart C.ulong, fill *C.lxw_chart_fill) {
	if c := getChart(uintptr(chart)); c != nil {
		c.ChartareaSetFill(goChartFill(fill))
	}
}

//export chart_chartarea_set_pattern
func chart_chartarea_set_pattern(chart C.ulong, pattern *C.lxw_chart_pattern) {
	if c := getChart(uintptr(chart)); c != nil {
		c.ChartareaSetPattern(goChartPattern(pattern))
	}
}

//export chart_chartarea_set_gradient
func chart_chartarea_set_gradient(chart C.ulong, gradient *C.lxw_chart_gradient_fill) {
	if c := getChart(uintptr(chart)); c != nil {
		c.ChartareaSetGradient(goChartGradient(gradient))
	}
}

//export chart_plotarea_set_line
func chart_plotarea_set_line(chart C.ulong, line *C.lxw_chart_line) {
	if c := getChart(uintptr(chart)); c != nil {
		c.PlotareaSetLine(goChartLine(line))
	}
}

//export chart_plotarea_set_fill
func chart_plotarea_set_fill(chart C.ulong, fill *C.lxw_chart_fill) {
	if c := getChart(uintptr(chart)); c != nil {
		c.PlotareaSetFill(goChartFill(fill))
	}
}

//export chart_plotarea_set_pattern
func chart_plotarea_set_pattern(chart C.ulong, pattern *C.lxw_chart_pattern) {
	if c := getChart(uintptr(chart)); c != nil {
		c.PlotareaSetPattern(goChartPattern(pattern))
	}
}

//export chart_plotarea_set_gradient
func chart_plotarea_set_gradient(chart C.ulong, gradient *C.lxw_chart_gradient_fill) {
	if c := getChart(uintptr(chart)); c != nil {
		c.PlotareaSetGradient(goChartGradient(gradient))
	}
}

//export chart_plotarea_set_layout
func chart_plotarea_set_layout(chart C.ulong, layout *C.lxw_chart_layout) {
	if c := getChart(uintptr(chart)); c != nil {
		c.PlotareaSetLayout(goChartLayout(layout))
	}
}

//export chart_combine
func chart_combine(chart, combined_chart C.ulong) {
	c := getChart(uintptr(chart))
	combined := getChart(uintptr(combined_chart))
	if c != nil && combined != nil {
		c.Combine(combined)
	}
}

//export chart_set_style
func chart_set_style(chart C.ulong, style_id C.uint8_t) {
	if c := getChart(uintptr(chart)); c != nil {
		c.SetStyle(uint8(style_id))
	}
}

//export chart_set_table
func chart_set_table(chart C.ulong) {
	if c := getChart(uintptr(chart)); c != nil {
		c.SetTable()
	}
}

//export chart_set_table_grid
func chart_set_table_grid(chart C.ulong, horizontal, vertical, outline, legend_keys C.uint8_t) {
	if c := getChart(uintptr(chart)); c != nil {
		c.SetTableGrid(horizontal != 0, vertical != 0, outline != 0, legend_keys != 0)
	}
}

//export chart_set_table_font
func chart_set_table_font(chart C.ulong, font *C.lxw_chart_font) {
	if c := getChart(uintptr(chart)); c != nil {
		c.SetTableFont(goChartFont(font))
	}
}

//export chart_set_up_down_bars
func chart_set_up_down_bars(chart C.ulong) {
	if c := getChart(uintptr(chart)); c != nil {
		c.SetUpDownBars()
	}
}

//export chart_set_up_down_bars_format
func chart_set_up_down_bars_format(chart C.ulong, up_bar_line *C.lxw_chart_line, up_bar_fill *C.lxw_chart_fill, down_bar_line *C.lxw_chart_line, down_bar_fill *C.lxw_chart_fill) {
	if c := getChart(uintptr(chart)); c != nil {
		c.SetUpDownBarsFormat(goChartLine(up_bar_line), goChartFill(up_bar_fill), goChartLine(down_bar_line), goChartFill(down_bar_fill))
	}
}

//export chart_set_drop_lines
func chart_set_drop_lines(chart C.ulong, line *C.lxw_chart_line) {
	if c := getChart(uintptr(chart)); c != nil {
		c.SetDropLines(goChartLine(line))
	}
}

//export chart_set_high_low_lines
func chart_set_high_low_lines(chart C.ulong, line *C.lxw_chart_line) {
	if c := getChart(uintptr(chart)); c != nil {
		c.SetHighLowLines(goChartLine(line))
	}
}

//export chart_set_series_overlap
func chart_set_series_overlap(chart C.ulong, overlap C.int8_t) {
	if c := getChart(uintptr(chart)); c != nil {
		c.SetSeriesOverlap(int8(overlap))
	}
}

//export chart_set_series_gap
func chart_set_series_gap(chart C.ulong, gap C.uint16_t) {
	if c := getChart(uintptr(chart)); c != nil {
		c.SetSeriesGap(uint16(gap))
	}
}

//export chart_set_series_overlap_y2
func chart_set_series_overlap_y2(chart C.ulong, overlap C.int8_t) {
	if c := getChart(uintptr(chart)); c != nil {
		c.SetSeriesOverlapY2(int8(overlap))
	}
}

//export chart_set_series_gap_y2
func chart_set_series_gap_y2(chart C.ulong, gap C.uint16_t) {
	if c := getChart(uintptr(chart)); c != nil {
		c.SetSeriesGapY2(uint16(gap))
	}
}

//export chart_show_blanks_as
func chart_show_blanks_as(chart C.ulong, option C.uint8_t) {
	if c := getChart(uintptr(chart)); c != nil {
		c.ShowBlanksAs(uint8(option))
	}
}

//export chart_show_hidden_data
func chart_show_hidden_data(chart C.ulong) {
	if c := getChart(uintptr(chart)); c != nil {
		c.ShowHiddenData()
	}
}

//export chart_set_rotation
func chart_set_rotation(chart C.ulong, rotation C.uint16_t) {
	if c := getChart(uintptr(chart)); c != nil {
		c.SetRotation(uint16(rotation))
	}
}

//export chart_set_hole_size
func chart_set_hole_size(chart C.ulong, size C.uint8_t) {
	if c := getChart(uintptr(chart)); c != nil {
		c.SetHoleSize(uint8(size))
	}
}
