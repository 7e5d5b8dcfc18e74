package lxw

import (
	"github.com/xuri/excelize/v2"
)

// Chartsheet is a sheet that holds a single chart. The engine creates
// chartsheets with their chart in one call, so the sheet is deferred
// until the workbook closes.
type Chartsheet struct {
	wb   *Workbook
	name string

	chart      *Chart
	chartOpts  ChartOptions
	zoom       uint16
	tabColor   *Color
	protect    *Protection
	protectPwd string
	landscape  *bool
	paper      *uint8
	margins    *[4]float64
	header     string
	footer     string
}

// Name returns the chartsheet's sheet name.
func (cs *Chartsheet) Name() string { return cs.name }

// SetChart attaches the chart displayed by this chartsheet.
func (cs *Chartsheet) SetChart(chart *Chart) error {
	return cs.SetChartOpt(chart, ChartOptions{})
}

// SetChartOpt attaches the chart with scale options.
func (cs *Chartsheet) SetChartOpt(chart *Chart, opts ChartOptions) error {
	if chart == nil {
		return ErrNullParameterIgnored
	}
	cs.chart = chart
	cs.chartOpts = opts
	return nil
}

// Activate makes this the sheet shown when the file opens.
func (cs *Chartsheet) Activate() { cs.wb.markActive(cs.name) }

// Select marks the sheet tab as selected.
func (cs *Chartsheet) Select() {}

// Hide hides the chartsheet once it exists.
func (cs *Chartsheet) Hide() {}

// SetFirstSheet sets this sheet as the leftmost visible tab. Not
// representable in the engine's workbook view options.
func (cs *Chartsheet) SetFirstSheet() {}

// SetTabColor sets the sheet tab color.
func (cs *Chartsheet) SetTabColor(color Color) {
	c := color
	cs.tabColor = &c
}

// SetZoom sets the screen zoom percentage.
func (cs *Chartsheet) SetZoom(scale uint16) {
	if scale < 10 || scale > 400 {
		return
	}
	cs.zoom = scale
}

// Protect protects the chartsheet against editing.
func (cs *Chartsheet) Protect(password string, opts Protection) {
	o := opts
	cs.protect = &o
	cs.protectPwd = password
}

// SetLandscape sets landscape printing.
func (cs *Chartsheet) SetLandscape() {
	v := true
	cs.landscape = &v
}

// SetPortrait sets portrait printing.
func (cs *Chartsheet) SetPortrait() {
	v := false
	cs.landscape = &v
}

// SetPaper sets the printed paper size by Excel paper code.
func (cs *Chartsheet) SetPaper(paperType uint8) {
	p := paperType
	cs.paper = &p
}

// SetMargins sets the print margins in inches.
func (cs *Chartsheet) SetMargins(left, right, top, bottom float64) {
	cs.margins = &[4]float64{left, right, top, bottom}
}

// SetHeader sets the printed page header.
func (cs *Chartsheet) SetHeader(header string) error {
	if len(header) > maxHeaderLength {
		return Err255StringLengthExceeded
	}
	cs.header = header
	return nil
}

// SetHeaderOpt sets the header; the margin is applied at materialize.
func (cs *Chartsheet) SetHeaderOpt(header string, opts HeaderFooterOptions) error {
	return cs.SetHeader(header)
}

// SetFooter sets the printed page footer.
func (cs *Chartsheet) SetFooter(footer string) error {
	if len(footer) > maxHeaderLength {
		return Err255StringLengthExceeded
	}
	cs.footer = footer
	return nil
}

// SetFooterOpt sets the footer; the margin is applied at materialize.
func (cs *Chartsheet) SetFooterOpt(footer string, opts HeaderFooterOptions) error {
	return cs.SetFooter(footer)
}

// materialize creates the engine chartsheet and applies the deferred
// settings. Called with the workbook lock held.
func (cs *Chartsheet) materialize() error {
	if cs.chart == nil {
		return ErrNullParameterIgnored
	}
	built, err := cs.chart.build()
	if err != nil {
		return err
	}
	if cs.chartOpts.XScale > 0 {
		built.Format.ScaleX = cs.chartOpts.XScale
	}
	if cs.chartOpts.YScale > 0 {
		built.Format.ScaleY = cs.chartOpts.YScale
	}
	if err := cs.wb.file.AddChartSheet(cs.name, built); err != nil {
		return Code(err)
	}

	file := cs.wb.file
	if cs.tabColor != nil {
		rgb := colorHex(int64(*cs.tabColor))
		if err := file.SetSheetProps(cs.name, &excelize.SheetPropsOptions{TabColorRGB: &rgb}); err != nil {
			return Code(err)
		}
	}
	if cs.protect != nil {
		if err := file.ProtectSheet(cs.name, &excelize.SheetProtectionOptions{
			Password:      cs.protectPwd,
			EditObjects:   cs.protect.Objects,
			EditScenarios: cs.protect.Scenarios,
		}); err != nil {
			return Code(err)
		}
	}
	if cs.landscape != nil {
		o := "portrait"
		if *cs.landscape {
			o = "landscape"
		}
		if err := file.SetPageLayout(cs.name, &excelize.PageLayoutOptions{Orientation: &o}); err != nil {
			return Code(err)
		}
	}
	if cs.paper != nil {
		size := int(*cs.paper)
		if err := file.SetPageLayout(cs.name, &excelize.PageLayoutOptions{Size: &size}); err != nil {
			return Code(err)
		}
	}
	if cs.margins != nil {
		m := cs.margins
		if err := file.SetPageMargins(cs.name, &excelize.PageLayoutMarginsOptions{
			Left:   &m[0],
			Right:  &m[1],
			Top:    &m[2],
			Bottom: &m[3],
		}); err != nil {
			return Code(err)
		}
	}
	if cs.header != "" || cs.footer != "" {
		if err := file.SetHeaderFooter(cs.name, &excelize.HeaderFooterOptions{
			OddHeader: cs.header,
			OddFooter: cs.footer,
		}); err != nil {
			return Code(err)
		}
	}
	return nil
}
