package main

import (
	"github.com/lvxlsx/lvxlsx/pkg/handle"
	"github.com/lvxlsx/lvxlsx/pkg/lxw"
)

// Axes and error bars are created lazily by the chart and returned on
// every get call. The handle issued on first resolution is reused so
// repeated gets do not grow the table.
var (
	axisHandles = map[*lxw.ChartAxis]uintptr{}
	ebHandles   = map[*lxw.ErrorBars]uintptr{}
)

func implChartAddSeries(chartH uintptr, categories, values string) uintptr {
	c := getChart(chartH)
	if c == nil {
		return 0
	}
	return adopt(chartH, putSeries(c.AddSeries(categories, values)))
}

func implChartAddSeriesY2(chartH uintptr, categories, values string) uintptr {
	c := getChart(chartH)
	if c == nil {
		return 0
	}
	return adopt(chartH, putSeries(c.AddSeriesY2(categories, values)))
}

func implChartAxisGet(chartH uintptr, axisType uint8) uintptr {
	c := getChart(chartH)
	if c == nil {
		return 0
	}
	a := c.AxisGet(axisType)
	ownersMu.Lock()
	h, ok := axisHandles[a]
	ownersMu.Unlock()
	if ok {
		return h
	}
	h = adopt(chartH, putAxis(a))
	ownersMu.Lock()
	axisHandles[a] = h
	ownersMu.Unlock()
	return h
}

func implChartSeriesGetErrorBars(seriesH uintptr, axisType uint8) uintptr {
	s := getSeries(seriesH)
	if s == nil {
		return 0
	}
	eb := s.GetErrorBars(axisType)
	ownersMu.Lock()
	h, ok := ebHandles[eb]
	ownersMu.Unlock()
	if ok {
		return h
	}
	h = adopt(seriesH, putErrorBars(eb))
	ownersMu.Lock()
	ebHandles[eb] = h
	ownersMu.Unlock()
	return h
}

// buildCustomLabels assembles the host's parallel label arrays into
// one slice. values holds raw C string addresses; address zero or an
// empty string means the point keeps its default label. The hide flag
// and the value are independent, so a hidden slot still carries its
// converted string. conv is applied to each decoded string and is
// identity for the UTF-8 entry point.
func buildCustomLabels(values []uintptr, hide []byte, conv func(string) string) []lxw.DataLabel {
	labels := make([]lxw.DataLabel, len(values))
	for i, addr := range values {
		if i < len(hide) && hide[i] != 0 {
			labels[i].Hide = true
		}
		text := goStringAt(addr)
		if text == "" {
			continue
		}
		labels[i].Value = conv(text)
	}
	return labels
}

// implChartSeriesSetLabelsCustom hands the assembled labels to the
// series in a single call and returns its result unchanged.
func implChartSeriesSetLabelsCustom(seriesH uintptr, values []uintptr, hide []byte, conv func(string) string) lxw.Error {
	s := getSeries(seriesH)
	if s == nil {
		return lxw.ErrNullParameterIgnored
	}
	if len(values) == 0 {
		return lxw.ErrNullParameterIgnored
	}
	return code(s.SetLabelsCustom(buildCustomLabels(values, hide, conv)))
}

func implChartLegendDeleteSeries(chartH uintptr, series []uint16) lxw.Error {
	c := getChart(chartH)
	if c == nil {
		return lxw.ErrNullParameterIgnored
	}
	return code(c.LegendDeleteSeries(series))
}

func releaseChartObjects() {
	for a, h := range axisHandles {
		if objects.Get(handle.KindAxis, h) == nil {
			delete(axisHandles, a)
		}
	}
	for eb, h := range ebHandles {
		if objects.Get(handle.KindErrorBars, h) == nil {
			delete(ebHandles, eb)
		}
	}
}
