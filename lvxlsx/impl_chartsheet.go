package main

import (
	"github.com/lvxlsx/lvxlsx/pkg/lxw"
)

func implChartsheetSetChart(csH, chartH uintptr) lxw.Error {
	cs := getChartsheet(csH)
	if cs == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(cs.SetChart(getChart(chartH)))
}

func implChartsheetSetChartOpt(csH, chartH uintptr, opts lxw.ChartOptions) lxw.Error {
	cs := getChartsheet(csH)
	if cs == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(cs.SetChartOpt(getChart(chartH), opts))
}

func implChartsheetSetHeader(csH uintptr, header string, opts lxw.HeaderFooterOptions) lxw.Error {
	cs := getChartsheet(csH)
	if cs == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(cs.SetHeaderOpt(header, opts))
}

func implChartsheetSetFooter(csH uintptr, footer string, opts lxw.HeaderFooterOptions) lxw.Error {
	cs := getChartsheet(csH)
	if cs == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(cs.SetFooterOpt(footer, opts))
}
