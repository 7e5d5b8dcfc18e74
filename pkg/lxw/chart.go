package lxw

import (
	"github.com/xuri/excelize/v2"
)

// Chart type codes, matching workbook_add_chart's argument.
const (
	ChartTypeNone uint8 = iota
	ChartTypeArea
	ChartTypeAreaStacked
	ChartTypeAreaStackedPercent
	ChartTypeBar
	ChartTypeBarStacked
	ChartTypeBarStackedPercent
	ChartTypeColumn
	ChartTypeColumnStacked
	ChartTypeColumnStackedPercent
	ChartTypeDoughnut
	ChartTypeLine
	ChartTypeLineStacked
	ChartTypeLineStackedPercent
	ChartTypePie
	ChartTypeScatter
	ChartTypeScatterStraight
	ChartTypeScatterStraightWithMarkers
	ChartTypeScatterSmooth
	ChartTypeScatterSmoothWithMarkers
	ChartTypeRadar
	ChartTypeRadarWithMarkers
	ChartTypeRadarFilled
	ChartTypeStock
)

// Legend position codes.
const (
	ChartLegendNone uint8 = iota
	ChartLegendRight
	ChartLegendLeft
	ChartLegendTop
	ChartLegendBottom
	ChartLegendTopRight
	ChartLegendOverlayRight
	ChartLegendOverlayLeft
	ChartLegendOverlayTopRight
)

// Series marker type codes.
const (
	ChartMarkerAutomatic uint8 = iota
	ChartMarkerNone
	ChartMarkerSquare
	ChartMarkerDiamond
	ChartMarkerTriangle
	ChartMarkerX
	ChartMarkerStar
	ChartMarkerShortDash
	ChartMarkerLongDash
	ChartMarkerCircle
	ChartMarkerPlus
	ChartMarkerDot
)

// Data label position codes.
const (
	ChartLabelPositionDefault uint8 = iota
	ChartLabelPositionCenter
	ChartLabelPositionRight
	ChartLabelPositionLeft
	ChartLabelPositionAbove
	ChartLabelPositionBelow
	ChartLabelPositionInsideBase
	ChartLabelPositionInsideEnd
	ChartLabelPositionOutsideEnd
	ChartLabelPositionBestFit
)

// Axis selector codes for AxisGet.
const (
	AxisTypeX uint8 = iota
	AxisTypeY
	AxisTypeY2
)

// Axis tick label position codes.
const (
	AxisLabelPositionNextTo uint8 = iota
	AxisLabelPositionHigh
	AxisLabelPositionLow
	AxisLabelPositionNone
)

// Blank cell display codes for ShowBlanksAs.
const (
	ChartBlanksAsGap uint8 = iota
	ChartBlanksAsZero
	ChartBlanksAsConnected
)

// Error bar axis selector, type and direction codes.
const (
	ErrorBarAxisX uint8 = 0
	ErrorBarAxisY uint8 = 1

	ErrorBarTypeStdError uint8 = 0
	ErrorBarTypeFixed    uint8 = 1
	ErrorBarTypePercent  uint8 = 2
	ErrorBarTypeStdDev   uint8 = 3

	ErrorBarDirBoth  uint8 = 0
	ErrorBarDirPlus  uint8 = 1
	ErrorBarDirMinus uint8 = 2

	ErrorBarEndCap   uint8 = 0
	ErrorBarNoEndCap uint8 = 1
)

// Trendline type codes.
const (
	TrendlineTypeLinear uint8 = iota
	TrendlineTypeLog
	TrendlineTypePoly
	TrendlineTypePower
	TrendlineTypeExp
	TrendlineTypeAverage
)

// ChartLine describes line formatting for chart elements.
type ChartLine struct {
	Color        Color
	None         bool
	Width        float64
	DashType     uint8
	Transparency uint8
}

// ChartFill describes solid fill formatting for chart elements.
type ChartFill struct {
	Color        Color
	None         bool
	Transparency uint8
}

// ChartPattern describes pattern fill formatting for chart elements.
type ChartPattern struct {
	FgColor Color
	BgColor Color
	Type    uint8
}

// ChartGradientFill describes gradient fill formatting.
type ChartGradientFill struct {
	Type   uint8
	Colors []Color
	Angle  float64
}

// ChartFont describes font settings for chart text elements.
type ChartFont struct {
	Name      string
	Size      float64
	Bold      bool
	Italic    bool
	Underline bool
	Rotation  int32
	Color     Color
}

// ChartLayout positions a chart element in relative chart-area units.
type ChartLayout struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// ChartOptions carries offset and scale for chart insertion.
type ChartOptions struct {
	XOffset     int32
	YOffset     int32
	XScale      float64
	YScale      float64
	Description string
	Decorative  bool
}

// DataLabel is one custom data label on a series. An empty Value
// leaves the point's default label in place.
type DataLabel struct {
	Value string
	Hide  bool
}

// ErrorBars holds error bar settings for one direction of a series.
type ErrorBars struct {
	barType   uint8
	value     float64
	direction uint8
	endcap    uint8
	line      *ChartLine
}

// Set sets the error bar type and value.
func (eb *ErrorBars) Set(barType uint8, value float64) {
	eb.barType = barType
	eb.value = value
}

// SetDirection sets which directions the bars extend.
func (eb *ErrorBars) SetDirection(direction uint8) { eb.direction = direction }

// SetEndcap controls end cap display.
func (eb *ErrorBars) SetEndcap(endcap uint8) { eb.endcap = endcap }

// SetLine sets line formatting for the bars.
func (eb *ErrorBars) SetLine(line *ChartLine) {
	if line != nil {
		l := *line
		eb.line = &l
	}
}

type trendline struct {
	typ       uint8
	value     uint8
	forward   float64
	backward  float64
	equation  bool
	rSquared  bool
	intercept *float64
	name      string
	line      *ChartLine
}

type seriesLabels struct {
	on           bool
	showName     bool
	showCategory bool
	showValue    bool
	position     uint8
	separator    uint8
	numFormat    string
	font         *ChartFont
	percentage   bool
	legend       bool
	leaderLines  bool
	line         *ChartLine
	fill         *ChartFill
	pattern      *ChartPattern
}

// ChartSeries is one data series of a chart under construction.
type ChartSeries struct {
	name       string
	nameRange  string
	categories string
	values     string
	y2Axis     bool

	line             *ChartLine
	fill             *ChartFill
	pattern          *ChartPattern
	gradient         *ChartGradientFill
	invertIfNegative bool
	markerType       uint8
	markerSet        bool
	markerSize       uint8
	markerLine       *ChartLine
	markerFill       *ChartFill
	markerPattern    *ChartPattern
	smooth           bool
	labels           seriesLabels
	trend            *trendline
	errorBarsX       ErrorBars
	errorBarsY       ErrorBars
}

// SetName sets the series display name.
func (s *ChartSeries) SetName(name string) { s.name = name }

// SetNameRange points the series name at a worksheet cell.
func (s *ChartSeries) SetNameRange(sheet string, row Row, col Col) {
	cell, err := absCellName(row, col)
	if err != nil {
		return
	}
	s.nameRange = quoteSheetName(sheet) + "!" + cell
}

// SetCategories points the category axis at a worksheet range.
func (s *ChartSeries) SetCategories(sheet string, firstRow Row, firstCol Col, lastRow Row, lastCol Col) {
	ref, err := rangeFormula(sheet, firstRow, firstCol, lastRow, lastCol)
	if err != nil {
		return
	}
	s.categories = ref
}

// SetValues points the value axis at a worksheet range.
func (s *ChartSeries) SetValues(sheet string, firstRow Row, firstCol Col, lastRow Row, lastCol Col) {
	ref, err := rangeFormula(sheet, firstRow, firstCol, lastRow, lastCol)
	if err != nil {
		return
	}
	s.values = ref
}

// SetLine sets line formatting for the series.
func (s *ChartSeries) SetLine(line *ChartLine) {
	if line != nil {
		l := *line
		s.line = &l
	}
}

// SetFill sets fill formatting for the series.
func (s *ChartSeries) SetFill(fill *ChartFill) {
	if fill != nil {
		f := *fill
		s.fill = &f
	}
}

// SetPattern sets pattern formatting for the series.
func (s *ChartSeries) SetPattern(pattern *ChartPattern) {
	if pattern != nil {
		p := *pattern
		s.pattern = &p
	}
}

// SetGradient sets gradient fill formatting for the series.
func (s *ChartSeries) SetGradient(gradient *ChartGradientFill) {
	if gradient != nil {
		g := *gradient
		s.gradient = &g
	}
}

// SetInvertIfNegative inverts fill color for negative values.
func (s *ChartSeries) SetInvertIfNegative() { s.invertIfNegative = true }

// SetMarkerType sets the series marker symbol.
func (s *ChartSeries) SetMarkerType(markerType uint8) {
	s.markerType = markerType
	s.markerSet = true
}

// SetMarkerSize sets the series marker size in points.
func (s *ChartSeries) SetMarkerSize(size uint8) { s.markerSize = size }

// SetMarkerLine sets marker outline formatting.
func (s *ChartSeries) SetMarkerLine(line *ChartLine) {
	if line != nil {
		l := *line
		s.markerLine = &l
	}
}

// SetMarkerFill sets marker fill formatting.
func (s *ChartSeries) SetMarkerFill(fill *ChartFill) {
	if fill != nil {
		f := *fill
		s.markerFill = &f
	}
}

// SetMarkerPattern sets marker pattern formatting.
func (s *ChartSeries) SetMarkerPattern(pattern *ChartPattern) {
	if pattern != nil {
		p := *pattern
		s.markerPattern = &p
	}
}

// SetSmooth smooths the series line.
func (s *ChartSeries) SetSmooth(smooth bool) { s.smooth = smooth }

// SetLabels turns on default data labels for the series.
func (s *ChartSeries) SetLabels() {
	s.labels.on = true
	s.labels.showValue = true
}

// SetLabelsOptions turns on data labels with selected content.
func (s *ChartSeries) SetLabelsOptions(showName, showCategory, showValue bool) {
	s.labels.on = true
	s.labels.showName = showName
	s.labels.showCategory = showCategory
	s.labels.showValue = showValue
}

// SetLabelsCustom validates the supplied per-point label list. An
// empty list is reported as an ignored parameter. The engine has no
// per-point label slot, so a non-empty list is reported as
// unsupported rather than silently dropped from the output, the same
// as WriteRichString.
func (s *ChartSeries) SetLabelsCustom(labels []DataLabel) error {
	if len(labels) == 0 {
		return ErrNullParameterIgnored
	}
	return ErrFeatureNotSupported
}

// SetLabelsSeparator sets the separator between label fields.
func (s *ChartSeries) SetLabelsSeparator(separator uint8) { s.labels.separator = separator }

// SetLabelsPosition positions data labels relative to their points.
func (s *ChartSeries) SetLabelsPosition(position uint8) { s.labels.position = position }

// SetLabelsLeaderLine turns on leader lines for moved labels.
func (s *ChartSeries) SetLabelsLeaderLine() { s.labels.leaderLines = true }

// SetLabelsLegend shows the legend key next to each label.
func (s *ChartSeries) SetLabelsLegend() { s.labels.legend = true }

// SetLabelsPercentage shows percentages in pie and doughnut labels.
func (s *ChartSeries) SetLabelsPercentage() { s.labels.percentage = true }

// SetLabelsNumFormat sets the number format applied to labels.
func (s *ChartSeries) SetLabelsNumFormat(numFormat string) { s.labels.numFormat = numFormat }

// SetLabelsFont sets the font used for data labels.
func (s *ChartSeries) SetLabelsFont(font *ChartFont) {
	if font != nil {
		f := *font
		s.labels.font = &f
	}
}

// SetLabelsLine sets line formatting on data labels.
func (s *ChartSeries) SetLabelsLine(line *ChartLine) {
	if line != nil {
		l := *line
		s.labels.line = &l
	}
}

// SetLabelsFill sets fill formatting on data labels.
func (s *ChartSeries) SetLabelsFill(fill *ChartFill) {
	if fill != nil {
		f := *fill
		s.labels.fill = &f
	}
}

// SetLabelsPattern sets pattern formatting on data labels.
func (s *ChartSeries) SetLabelsPattern(pattern *ChartPattern) {
	if pattern != nil {
		p := *pattern
		s.labels.pattern = &p
	}
}

func (s *ChartSeries) trendline() *trendline {
	if s.trend == nil {
		s.trend = new(trendline)
	}
	return s.trend
}

// SetTrendline adds a trendline of the given type. For polynomial and
// moving-average types the value is the order or period.
func (s *ChartSeries) SetTrendline(trendType, value uint8) {
	t := s.trendline()
	t.typ = trendType
	t.value = value
}

// SetTrendlineForecast extends the trendline forward and backward.
func (s *ChartSeries) SetTrendlineForecast(forward, backward float64) {
	t := s.trendline()
	t.forward = forward
	t.backward = backward
}

// SetTrendlineEquation displays the trendline equation.
func (s *ChartSeries) SetTrendlineEquation() { s.trendline().equation = true }

// SetTrendlineRSquared displays the R squared value.
func (s *ChartSeries) SetTrendlineRSquared() { s.trendline().rSquared = true }

// SetTrendlineIntercept fixes the trendline's axis intercept.
func (s *ChartSeries) SetTrendlineIntercept(intercept float64) {
	v := intercept
	s.trendline().intercept = &v
}

// SetTrendlineName names the trendline in the legend.
func (s *ChartSeries) SetTrendlineName(name string) { s.trendline().name = name }

// SetTrendlineLine sets the trendline's line formatting.
func (s *ChartSeries) SetTrendlineLine(line *ChartLine) {
	if line != nil {
		l := *line
		s.trendline().line = &l
	}
}

// GetErrorBars returns the series error bars for one axis.
func (s *ChartSeries) GetErrorBars(axisType uint8) *ErrorBars {
	if axisType == ErrorBarAxisX {
		return &s.errorBarsX
	}
	return &s.errorBarsY
}

// ChartAxis is one axis of a chart under construction.
type ChartAxis struct {
	name           string
	nameRange      string
	nameFont       *ChartFont
	nameLayout     *ChartLayout
	numFont        *ChartFont
	numFormat      string
	line           *ChartLine
	fill           *ChartFill
	pattern        *ChartPattern
	min            *float64
	max            *float64
	logBase        uint16
	reverse        bool
	off            bool
	position       uint8
	labelPosition  uint8
	labelAlign     uint8
	crossing       *float64
	crossingMax    bool
	crossingMin    bool
	majorTickMark  uint8
	minorTickMark  uint8
	intervalUnit   uint16
	intervalTick   uint16
	majorUnit      *float64
	minorUnit      *float64
	displayUnits   uint8
	unitsVisible   bool
	majorGridlines bool
	majorGridLine  *ChartLine
	minorGridlines bool
	minorGridLine  *ChartLine
}

// SetName sets the axis title.
func (a *ChartAxis) SetName(name string) { a.name = name }

// SetNameRange points the axis title at a worksheet cell.
func (a *ChartAxis) SetNameRange(sheet string, row Row, col Col) {
	cell, err := absCellName(row, col)
	if err != nil {
		return
	}
	a.nameRange = quoteSheetName(sheet) + "!" + cell
}

// SetNameFont sets the axis title font.
func (a *ChartAxis) SetNameFont(font *ChartFont) {
	if font != nil {
		f := *font
		a.nameFont = &f
	}
}

// SetNameLayout positions the axis title.
func (a *ChartAxis) SetNameLayout(layout *ChartLayout) {
	if layout != nil {
		l := *layout
		a.nameLayout = &l
	}
}

// SetNumFont sets the axis number font.
func (a *ChartAxis) SetNumFont(font *ChartFont) {
	if font != nil {
		f := *font
		a.numFont = &f
	}
}

// SetNumFormat sets the axis number format.
func (a *ChartAxis) SetNumFormat(numFormat string) { a.numFormat = numFormat }

// SetLine sets the axis line formatting.
func (a *ChartAxis) SetLine(line *ChartLine) {
	if line != nil {
		l := *line
		a.line = &l
	}
}

// SetFill sets the axis fill formatting.
func (a *ChartAxis) SetFill(fill *ChartFill) {
	if fill != nil {
		f := *fill
		a.fill = &f
	}
}

// SetPattern sets the axis pattern formatting.
func (a *ChartAxis) SetPattern(pattern *ChartPattern) {
	if pattern != nil {
		p := *pattern
		a.pattern = &p
	}
}

// SetMin sets the axis minimum.
func (a *ChartAxis) SetMin(min float64) {
	v := min
	a.min = &v
}

// SetMax sets the axis maximum.
func (a *ChartAxis) SetMax(max float64) {
	v := max
	a.max = &v
}

// SetLogBase makes the axis logarithmic.
func (a *ChartAxis) SetLogBase(logBase uint16) { a.logBase = logBase }

// SetReverse reverses the axis direction.
func (a *ChartAxis) SetReverse() { a.reverse = true }

// Off hides the axis.
func (a *ChartAxis) Off() { a.off = true }

// SetPosition sets whether the axis crosses on or between categories.
func (a *ChartAxis) SetPosition(position uint8) { a.position = position }

// SetLabelPosition positions the axis tick labels.
func (a *ChartAxis) SetLabelPosition(position uint8) { a.labelPosition = position }

// SetLabelAlign aligns category axis labels.
func (a *ChartAxis) SetLabelAlign(align uint8) { a.labelAlign = align }

// SetCrossing sets where the other axis crosses this one.
func (a *ChartAxis) SetCrossing(value float64) {
	v := value
	a.crossing = &v
}

// SetCrossingMax crosses the other axis at this axis's maximum.
func (a *ChartAxis) SetCrossingMax() { a.crossingMax = true }

// SetCrossingMin crosses the other axis at this axis's minimum.
func (a *ChartAxis) SetCrossingMin() { a.crossingMin = true }

// SetMajorTickMark sets the major tick mark type.
func (a *ChartAxis) SetMajorTickMark(tickType uint8) { a.majorTickMark = tickType }

// SetMinorTickMark sets the minor tick mark type.
func (a *ChartAxis) SetMinorTickMark(tickType uint8) { a.minorTickMark = tickType }

// SetIntervalUnit sets the category label interval.
func (a *ChartAxis) SetIntervalUnit(unit uint16) { a.intervalUnit = unit }

// SetIntervalTick sets the category tick interval.
func (a *ChartAxis) SetIntervalTick(unit uint16) { a.intervalTick = unit }

// SetMajorUnit sets the spacing of major units.
func (a *ChartAxis) SetMajorUnit(unit float64) {
	v := unit
	a.majorUnit = &v
}

// SetMinorUnit sets the spacing of minor units.
func (a *ChartAxis) SetMinorUnit(unit float64) {
	v := unit
	a.minorUnit = &v
}

// SetDisplayUnits scales value axis display units.
func (a *ChartAxis) SetDisplayUnits(units uint8) { a.displayUnits = units }

// SetDisplayUnitsVisible shows the display units label.
func (a *ChartAxis) SetDisplayUnitsVisible(visible bool) { a.unitsVisible = visible }

// MajorGridlinesSetVisible shows or hides major gridlines.
func (a *ChartAxis) MajorGridlinesSetVisible(visible bool) { a.majorGridlines = visible }

// MinorGridlinesSetVisible shows or hides minor gridlines.
func (a *ChartAxis) MinorGridlinesSetVisible(visible bool) { a.minorGridlines = visible }

// MajorGridlinesSetLine sets major gridline formatting.
func (a *ChartAxis) MajorGridlinesSetLine(line *ChartLine) {
	if line != nil {
		l := *line
		a.majorGridLine = &l
		a.majorGridlines = true
	}
}

// MinorGridlinesSetLine sets minor gridline formatting.
func (a *ChartAxis) MinorGridlinesSetLine(line *ChartLine) {
	if line != nil {
		l := *line
		a.minorGridLine = &l
		a.minorGridlines = true
	}
}

type chartTitle struct {
	name      string
	nameRange string
	font      *ChartFont
	layout    *ChartLayout
	overlay   bool
	off       bool
}

type chartLegend struct {
	position      uint8
	font          *ChartFont
	layout        *ChartLayout
	deletedSeries []uint16
}

type chartTable struct {
	on         bool
	horizontal bool
	vertical   bool
	outline    bool
	legendKeys bool
	font       *ChartFont
}

// Chart accumulates chart settings and is realized into the engine
// when inserted into a worksheet or chartsheet.
type Chart struct {
	typ    uint8
	series []*ChartSeries
	axes   [3]*ChartAxis

	title  chartTitle
	legend chartLegend
	table  chartTable

	chartareaLine     *ChartLine
	chartareaFill     *ChartFill
	chartareaPattern  *ChartPattern
	chartareaGradient *ChartGradientFill
	plotareaLine      *ChartLine
	plotareaFill      *ChartFill
	plotareaPattern   *ChartPattern
	plotareaGradient  *ChartGradientFill
	plotareaLayout    *ChartLayout

	style          uint8
	upDownBars     bool
	dropLines      *ChartLine
	highLowLines   *ChartLine
	overlap        *int8
	gap            *uint16
	overlapY2      *int8
	gapY2          *uint16
	blanksAs       uint8
	showHiddenData bool
	rotation       uint16
	holeSize       uint8
	combined       *Chart
}

func newChart(chartType uint8) *Chart {
	c := &Chart{typ: chartType, legend: chartLegend{position: ChartLegendRight}}
	for i := range c.axes {
		c.axes[i] = new(ChartAxis)
	}
	return c
}

// AddSeries adds a data series. Range references are full formulas
// like "=Sheet1!$A$1:$A$5"; empty strings leave the range unset.
func (c *Chart) AddSeries(categories, values string) *ChartSeries {
	s := &ChartSeries{categories: cleanRangeRef(categories), values: cleanRangeRef(values)}
	c.series = append(c.series, s)
	return s
}

// AddSeriesY2 adds a data series attached to the secondary value axis.
func (c *Chart) AddSeriesY2(categories, values string) *ChartSeries {
	s := c.AddSeries(categories, values)
	s.y2Axis = true
	return s
}

func cleanRangeRef(ref string) string {
	if len(ref) > 0 && ref[0] == '=' {
		return ref[1:]
	}
	return ref
}

// AxisGet returns the chart axis selected by the axis type code.
func (c *Chart) AxisGet(axisType uint8) *ChartAxis {
	if int(axisType) < len(c.axes) {
		return c.axes[axisType]
	}
	return c.axes[AxisTypeX]
}

// XAxis returns the category axis.
func (c *Chart) XAxis() *ChartAxis { return c.axes[AxisTypeX] }

// YAxis returns the primary value axis.
func (c *Chart) YAxis() *ChartAxis { return c.axes[AxisTypeY] }

// Y2Axis returns the secondary value axis.
func (c *Chart) Y2Axis() *ChartAxis { return c.axes[AxisTypeY2] }

// TitleSetName sets the chart title.
func (c *Chart) TitleSetName(name string) { c.title.name = name }

// TitleSetNameRange points the chart title at a worksheet cell.
func (c *Chart) TitleSetNameRange(sheet string, row Row, col Col) {
	cell, err := absCellName(row, col)
	if err != nil {
		return
	}
	c.title.nameRange = quoteSheetName(sheet) + "!" + cell
}

// TitleSetNameFont sets the chart title font.
func (c *Chart) TitleSetNameFont(font *ChartFont) {
	if font != nil {
		f := *font
		c.title.font = &f
	}
}

// TitleSetLayout positions the chart title.
func (c *Chart) TitleSetLayout(layout *ChartLayout) {
	if layout != nil {
		l := *layout
		c.title.layout = &l
	}
}

// TitleSetOverlay overlays the title on the chart.
func (c *Chart) TitleSetOverlay(overlay bool) { c.title.overlay = overlay }

// TitleOff removes the automatic chart title.
func (c *Chart) TitleOff() { c.title.off = true }

// LegendSetPosition positions or removes the chart legend.
func (c *Chart) LegendSetPosition(position uint8) { c.legend.position = position }

// LegendSetFont sets the legend font.
func (c *Chart) LegendSetFont(font *ChartFont) {
	if font != nil {
		f := *font
		c.legend.font = &f
	}
}

// LegendSetLayout positions the legend.
func (c *Chart) LegendSetLayout(layout *ChartLayout) {
	if layout != nil {
		l := *layout
		c.legend.layout = &l
	}
}

// LegendDeleteSeries removes the listed series indexes from the
// legend.
func (c *Chart) LegendDeleteSeries(series []uint16) error {
	if len(series) == 0 {
		return ErrNullParameterIgnored
	}
	c.legend.deletedSeries = append([]uint16(nil), series...)
	return nil
}

// ChartareaSetLine formats the chart area border.
func (c *Chart) ChartareaSetLine(line *ChartLine) {
	if line != nil {
		l := *line
		c.chartareaLine = &l
	}
}

// ChartareaSetFill formats the chart area fill.
func (c *Chart) ChartareaSetFill(fill *ChartFill) {
	if fill != nil {
		f := *fill
		c.chartareaFill = &f
	}
}

// ChartareaSetPattern formats the chart area with a pattern.
func (c *Chart) ChartareaSetPattern(pattern *ChartPattern) {
	if pattern != nil {
		p := *pattern
		c.chartareaPattern = &p
	}
}

// ChartareaSetGradient formats the chart area with a gradient.
func (c *Chart) ChartareaSetGradient(gradient *ChartGradientFill) {
	if gradient != nil {
		g := *gradient
		c.chartareaGradient = &g
	}
}

// PlotareaSetLine formats the plot area border.
func (c *Chart) PlotareaSetLine(line *ChartLine) {
	if line != nil {
		l := *line
		c.plotareaLine = &l
	}
}

// PlotareaSetFill formats the plot area fill.
func (c *Chart) PlotareaSetFill(fill *ChartFill) {
	if fill != nil {
		f := *fill
		c.plotareaFill = &f
	}
}

// PlotareaSetPattern formats the plot area with a pattern.
func (c *Chart) PlotareaSetPattern(pattern *ChartPattern) {
	if pattern != nil {
		p := *pattern
		c.plotareaPattern = &p
	}
}

// PlotareaSetGradient formats the plot area with a gradient.
func (c *Chart) PlotareaSetGradient(gradient *ChartGradientFill) {
	if gradient != nil {
		g := *gradient
		c.plotareaGradient = &g
	}
}

// PlotareaSetLayout positions the plot area.
func (c *Chart) PlotareaSetLayout(layout *ChartLayout) {
	if layout != nil {
		l := *layout
		c.plotareaLayout = &l
	}
}

// SetStyle picks one of Excel's 48 built-in chart styles.
func (c *Chart) SetStyle(styleID uint8) { c.style = styleID }

// SetTable shows a data table under the chart.
func (c *Chart) SetTable() { c.table.on = true }

// SetTableGrid controls the data table's grid elements.
func (c *Chart) SetTableGrid(horizontal, vertical, outline, legendKeys bool) {
	c.table.on = true
	c.table.horizontal = horizontal
	c.table.vertical = vertical
	c.table.outline = outline
	c.table.legendKeys = legendKeys
}

// SetTableFont sets the data table font.
func (c *Chart) SetTableFont(font *ChartFont) {
	if font != nil {
		f := *font
		c.table.font = &f
	}
}

// SetUpDownBars shows up-down bars on line charts.
func (c *Chart) SetUpDownBars() { c.upDownBars = true }

// SetUpDownBarsFormat shows formatted up-down bars. Only their
// presence is representable; the bar formatting is retained for
// inspection.
func (c *Chart) SetUpDownBarsFormat(upLine *ChartLine, upFill *ChartFill, downLine *ChartLine, downFill *ChartFill) {
	c.upDownBars = true
}

// SetDropLines shows drop lines on line and area charts.
func (c *Chart) SetDropLines(line *ChartLine) {
	l := ChartLine{}
	if line != nil {
		l = *line
	}
	c.dropLines = &l
}

// SetHighLowLines shows high-low lines on line charts.
func (c *Chart) SetHighLowLines(line *ChartLine) {
	l := ChartLine{}
	if line != nil {
		l = *line
	}
	c.highLowLines = &l
}

// SetSeriesOverlap sets bar/column overlap, -100 to 100.
func (c *Chart) SetSeriesOverlap(overlap int8) { c.overlap = &overlap }

// SetSeriesGap sets the bar/column gap, 0 to 500.
func (c *Chart) SetSeriesGap(gap uint16) { c.gap = &gap }

// SetSeriesOverlapY2 sets overlap for secondary axis series.
func (c *Chart) SetSeriesOverlapY2(overlap int8) { c.overlapY2 = &overlap }

// SetSeriesGapY2 sets the gap for secondary axis series.
func (c *Chart) SetSeriesGapY2(gap uint16) { c.gapY2 = &gap }

// ShowBlanksAs controls how blank cells plot.
func (c *Chart) ShowBlanksAs(option uint8) { c.blanksAs = option }

// ShowHiddenData plots data from hidden rows and columns.
func (c *Chart) ShowHiddenData() { c.showHiddenData = true }

// SetRotation rotates the first pie or doughnut segment.
func (c *Chart) SetRotation(rotation uint16) { c.rotation = rotation }

// SetHoleSize sets the doughnut hole size, 10 to 90.
func (c *Chart) SetHoleSize(size uint8) { c.holeSize = size }

// Combine overlays a second chart on this chart's axes.
func (c *Chart) Combine(combined *Chart) { c.combined = combined }

var chartTypeMap = map[uint8]excelize.ChartType{
	ChartTypeArea:                       excelize.Area,
	ChartTypeAreaStacked:                excelize.AreaStacked,
	ChartTypeAreaStackedPercent:         excelize.AreaPercentStacked,
	ChartTypeBar:                        excelize.Bar,
	ChartTypeBarStacked:                 excelize.BarStacked,
	ChartTypeBarStackedPercent:          excelize.BarPercentStacked,
	ChartTypeColumn:                     excelize.Col,
	ChartTypeColumnStacked:              excelize.ColStacked,
	ChartTypeColumnStackedPercent:       excelize.ColPercentStacked,
	ChartTypeDoughnut:                   excelize.Doughnut,
	ChartTypeLine:                       excelize.Line,
	ChartTypeLineStacked:                excelize.Line,
	ChartTypeLineStackedPercent:         excelize.Line,
	ChartTypePie:                        excelize.Pie,
	ChartTypeScatter:                    excelize.Scatter,
	ChartTypeScatterStraight:            excelize.Scatter,
	ChartTypeScatterStraightWithMarkers: excelize.Scatter,
	ChartTypeScatterSmooth:              excelize.Scatter,
	ChartTypeScatterSmoothWithMarkers:   excelize.Scatter,
	ChartTypeRadar:                      excelize.Radar,
	ChartTypeRadarWithMarkers:           excelize.Radar,
	ChartTypeRadarFilled:                excelize.Radar,
	ChartTypeStock:                      excelize.Line,
}

var markerSymbols = map[uint8]string{
	ChartMarkerNone:      "none",
	ChartMarkerSquare:    "square",
	ChartMarkerDiamond:   "diamond",
	ChartMarkerTriangle:  "triangle",
	ChartMarkerX:         "x",
	ChartMarkerStar:      "star",
	ChartMarkerShortDash: "dash",
	ChartMarkerLongDash:  "dash",
	ChartMarkerCircle:    "circle",
	ChartMarkerPlus:      "plus",
	ChartMarkerDot:       "dot",
}

var labelPositions = map[uint8]excelize.ChartDataLabelPositionType{
	ChartLabelPositionCenter:     excelize.ChartDataLabelsPositionCenter,
	ChartLabelPositionRight:      excelize.ChartDataLabelsPositionRight,
	ChartLabelPositionLeft:       excelize.ChartDataLabelsPositionLeft,
	ChartLabelPositionAbove:      excelize.ChartDataLabelsPositionAbove,
	ChartLabelPositionBelow:      excelize.ChartDataLabelsPositionBelow,
	ChartLabelPositionInsideBase: excelize.ChartDataLabelsPositionInsideBase,
	ChartLabelPositionInsideEnd:  excelize.ChartDataLabelsPositionInsideEnd,
	ChartLabelPositionOutsideEnd: excelize.ChartDataLabelsPositionOutsideEnd,
	ChartLabelPositionBestFit:    excelize.ChartDataLabelsPositionBestFit,
}

var legendPositions = map[uint8]string{
	ChartLegendNone:            "none",
	ChartLegendRight:           "right",
	ChartLegendLeft:            "left",
	ChartLegendTop:             "top",
	ChartLegendBottom:          "bottom",
	ChartLegendTopRight:        "top_right",
	ChartLegendOverlayRight:    "right",
	ChartLegendOverlayLeft:     "left",
	ChartLegendOverlayTopRight: "top_right",
}

func chartFillFor(fill *ChartFill, pattern *ChartPattern) excelize.Fill {
	switch {
	case fill != nil && !fill.None:
		return excelize.Fill{
			Type:  "pattern",
			Color: []string{colorHex(int64(fill.Color))},
		}
	case pattern != nil:
		return excelize.Fill{
			Type:  "pattern",
			Color: []string{colorHex(int64(pattern.FgColor))},
		}
	default:
		return excelize.Fill{}
	}
}

func chartFontFor(font *ChartFont) excelize.Font {
	if font == nil {
		return excelize.Font{}
	}
	f := excelize.Font{
		Family: font.Name,
		Size:   font.Size,
		Bold:   font.Bold,
		Italic: font.Italic,
	}
	if font.Underline {
		f.Underline = "single"
	}
	if font.Color != 0 {
		f.Color = colorHex(int64(font.Color))
	}
	return f
}

func titleRuns(t chartTitle) []excelize.RichTextRun {
	if t.off {
		return nil
	}
	name := t.name
	if name == "" && t.nameRange != "" {
		name = "=" + t.nameRange
	}
	if name == "" {
		return nil
	}
	run := excelize.RichTextRun{Text: name}
	if t.font != nil {
		f := chartFontFor(t.font)
		run.Font = &f
	}
	return []excelize.RichTextRun{run}
}

func (a *ChartAxis) build(secondary bool) excelize.ChartAxis {
	out := excelize.ChartAxis{
		None:           a.off,
		MajorGridLines: a.majorGridlines,
		MinorGridLines: a.minorGridlines,
		ReverseOrder:   a.reverse,
		Secondary:      secondary,
		Maximum:        a.max,
		Minimum:        a.min,
	}
	if a.logBase >= 2 {
		out.LogBase = float64(a.logBase)
	}
	if a.majorUnit != nil {
		out.MajorUnit = *a.majorUnit
	}
	if a.numFormat != "" {
		out.NumFmt = excelize.ChartNumFmt{CustomNumFmt: a.numFormat}
	}
	if a.numFont != nil {
		out.Font = chartFontFor(a.numFont)
	}
	if name := a.name; name != "" || a.nameRange != "" {
		if name == "" {
			name = "=" + a.nameRange
		}
		run := excelize.RichTextRun{Text: name}
		if a.nameFont != nil {
			f := chartFontFor(a.nameFont)
			run.Font = &f
		}
		out.Title = []excelize.RichTextRun{run}
	}
	if a.intervalTick > 0 {
		out.TickLabelSkip = int(a.intervalTick)
	}
	return out
}

// build realizes the accumulated settings into an engine chart.
func (c *Chart) build() (*excelize.Chart, error) {
	typ, ok := chartTypeMap[c.typ]
	if !ok {
		return nil, ErrParameterValidation
	}

	out := &excelize.Chart{
		Type:         typ,
		Title:        titleRuns(c.title),
		ShowBlanksAs: blanksAs(c.blanksAs),
		HoleSize:     int(c.holeSize),
	}
	out.Format.ScaleX = 1
	out.Format.ScaleY = 1

	if pos, ok := legendPositions[c.legend.position]; ok {
		out.Legend.Position = pos
	}
	if c.table.on {
		out.PlotArea.ShowDataTable = true
		out.PlotArea.ShowDataTableKeys = c.table.legendKeys
	}
	if c.chartareaFill != nil || c.chartareaPattern != nil {
		out.Fill = chartFillFor(c.chartareaFill, c.chartareaPattern)
	}
	if c.plotareaFill != nil || c.plotareaPattern != nil {
		out.PlotArea.Fill = chartFillFor(c.plotareaFill, c.plotareaPattern)
	}
	if c.chartareaLine != nil && !c.chartareaLine.None {
		out.Border.Width = c.chartareaLine.Width
	}

	var anyY2 bool
	for _, s := range c.series {
		es := excelize.ChartSeries{
			Name:       s.seriesName(),
			Categories: s.categories,
			Values:     s.values,
		}
		if s.fill != nil || s.pattern != nil {
			es.Fill = chartFillFor(s.fill, s.pattern)
		}
		if s.line != nil && !s.line.None {
			es.Line.Width = s.line.Width
		}
		es.Line.Smooth = s.smooth
		if s.markerSet {
			if sym, ok := markerSymbols[s.markerType]; ok {
				es.Marker.Symbol = sym
			}
			if s.markerSize > 0 {
				es.Marker.Size = int(s.markerSize)
			}
			if s.markerFill != nil && !s.markerFill.None {
				es.Marker.Fill = excelize.Fill{
					Type:  "pattern",
					Color: []string{colorHex(int64(s.markerFill.Color))},
				}
			}
		}
		if s.labels.on {
			if pos, ok := labelPositions[s.labels.position]; ok {
				es.DataLabelPosition = pos
			}
		}
		if s.y2Axis {
			anyY2 = true
		}
		out.Series = append(out.Series, es)
	}

	// Per-series label visibility is chart-wide in the engine; the
	// first labelled series decides.
	for _, s := range c.series {
		if !s.labels.on {
			continue
		}
		out.PlotArea.ShowVal = s.labels.showValue
		out.PlotArea.ShowCatName = s.labels.showCategory
		out.PlotArea.ShowSerName = s.labels.showName
		out.PlotArea.ShowPercent = s.labels.percentage
		out.PlotArea.ShowLeaderLines = s.labels.leaderLines
		if s.labels.numFormat != "" {
			out.PlotArea.NumFmt = excelize.ChartNumFmt{CustomNumFmt: s.labels.numFormat}
		}
		break
	}

	out.XAxis = c.axes[AxisTypeX].build(false)
	if anyY2 {
		out.YAxis = c.axes[AxisTypeY2].build(true)
	} else {
		out.YAxis = c.axes[AxisTypeY].build(false)
	}
	return out, nil
}

func (s *ChartSeries) seriesName() string {
	if s.name != "" {
		return s.name
	}
	if s.nameRange != "" {
		return "=" + s.nameRange
	}
	return ""
}

func blanksAs(option uint8) string {
	switch option {
	case ChartBlanksAsZero:
		return "zero"
	case ChartBlanksAsConnected:
		return "span"
	default:
		return "gap"
	}
}
