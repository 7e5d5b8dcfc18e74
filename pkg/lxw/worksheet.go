package lxw

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lvxlsx/lvxlsx/pkg/debug"
)

// Excel hard limits enforced locally so the boundary reports the
// original validation codes instead of engine-specific errors.
const (
	maxStringLength = 32767
	maxURLLength    = 2079
	maxURLCount     = 65530
	maxHeaderLength = 255
)

// Filter criteria codes for FilterColumn.
const (
	FilterCriteriaNone uint8 = iota
	FilterCriteriaEqualTo
	FilterCriteriaNotEqualTo
	FilterCriteriaGreaterThan
	FilterCriteriaLessThan
	FilterCriteriaGreaterThanOrEqualTo
	FilterCriteriaLessThanOrEqualTo
	FilterCriteriaBlanks
	FilterCriteriaNonBlanks
)

// FilterRule is one autofilter condition on a column.
type FilterRule struct {
	Criteria    uint8
	ValueString string
	Value       float64
}

// RowColOptions mirrors the boundary's row/column option cluster.
type RowColOptions struct {
	Hidden    bool
	Level     uint8
	Collapsed bool
}

// ImageOptions mirrors the boundary's image option cluster.
type ImageOptions struct {
	XOffset     int32
	YOffset     int32
	XScale      float64
	YScale      float64
	URL         string
	Tip         string
	Description string
	Decorative  bool
}

// Protection mirrors the boundary's sheet protection cluster.
type Protection struct {
	NoSelectLockedCells   bool
	NoSelectUnlockedCells bool
	FormatCells           bool
	FormatColumns         bool
	FormatRows            bool
	InsertColumns         bool
	InsertRows            bool
	InsertHyperlinks      bool
	DeleteColumns         bool
	DeleteRows            bool
	Sort                  bool
	Autofilter            bool
	PivotTables           bool
	Scenarios             bool
	Objects               bool
}

// HeaderFooterOptions mirrors the boundary's header/footer cluster.
// Only the margin is representable; header images are not.
type HeaderFooterOptions struct {
	Margin float64
}

// ButtonOptions mirrors the boundary's button option cluster.
type ButtonOptions struct {
	Caption string
	Macro   string
	Width   uint32
	Height  uint32
}

// Worksheet forwards cell and page-setup operations to its workbook's
// engine file under a fixed sheet name.
type Worksheet struct {
	wb   *Workbook
	name string

	commentsAuthor string
	filterRange    string
	filterRules    map[Col][]FilterRule
	urlCount       int
}

// Name returns the worksheet's sheet name.
func (ws *Worksheet) Name() string { return ws.name }

func (ws *Worksheet) cellStyle(row Row, col Col, f *Format) (string, error) {
	cell, err := cellName(row, col)
	if err != nil {
		return "", err
	}
	if f != nil {
		id, err := ws.wb.styleID(f)
		if err != nil {
			return "", err
		}
		if err := ws.wb.file.SetCellStyle(ws.name, cell, cell, id); err != nil {
			return "", Code(err)
		}
	}
	return cell, nil
}

// WriteString writes a string cell, mirroring worksheet_write_string.
func (ws *Worksheet) WriteString(row Row, col Col, s string, f *Format) error {
	if len(s) > maxStringLength {
		return ErrMaxStringLengthExceeded
	}
	cell, err := ws.cellStyle(row, col, f)
	if err != nil {
		return err
	}
	if err := ws.wb.file.SetCellStr(ws.name, cell, s); err != nil {
		return Code(err)
	}
	return nil
}

// WriteNumber writes a numeric cell.
func (ws *Worksheet) WriteNumber(row Row, col Col, number float64, f *Format) error {
	cell, err := ws.cellStyle(row, col, f)
	if err != nil {
		return err
	}
	if err := ws.wb.file.SetCellValue(ws.name, cell, number); err != nil {
		return Code(err)
	}
	return nil
}

// WriteBoolean writes a boolean cell.
func (ws *Worksheet) WriteBoolean(row Row, col Col, value bool, f *Format) error {
	cell, err := ws.cellStyle(row, col, f)
	if err != nil {
		return err
	}
	if err := ws.wb.file.SetCellBool(ws.name, cell, value); err != nil {
		return Code(err)
	}
	return nil
}

// WriteBlank writes a formatted blank. Unformatted blanks are ignored,
// as Excel itself would.
func (ws *Worksheet) WriteBlank(row Row, col Col, f *Format) error {
	if f == nil {
		return nil
	}
	_, err := ws.cellStyle(row, col, f)
	return err
}

// WriteFormula writes a formula cell. A leading "=" or "{=" wrapper is
// stripped for the engine.
func (ws *Worksheet) WriteFormula(row Row, col Col, formula string, f *Format) error {
	return ws.writeFormulaOpts(row, col, formula, f)
}

// WriteFormulaNum writes a formula with a precomputed result value.
// The engine recalculates on load, so the hint is accepted but not
// stored.
func (ws *Worksheet) WriteFormulaNum(row Row, col Col, formula string, f *Format, result float64) error {
	return ws.writeFormulaOpts(row, col, formula, f)
}

// WriteFormulaStr writes a formula with a precomputed string result.
func (ws *Worksheet) WriteFormulaStr(row Row, col Col, formula string, f *Format, result string) error {
	return ws.writeFormulaOpts(row, col, formula, f)
}

func (ws *Worksheet) writeFormulaOpts(row Row, col Col, formula string, f *Format) error {
	if formula == "" {
		return ErrNullParameterIgnored
	}
	cell, err := ws.cellStyle(row, col, f)
	if err != nil {
		return err
	}
	formula = strings.TrimPrefix(formula, "{")
	formula = strings.TrimSuffix(formula, "}")
	formula = strings.TrimPrefix(formula, "=")
	if err := ws.wb.file.SetCellFormula(ws.name, cell, formula); err != nil {
		return Code(err)
	}
	return nil
}

// WriteArrayFormula writes an array formula over a range.
func (ws *Worksheet) WriteArrayFormula(firstRow Row, firstCol Col, lastRow Row, lastCol Col, formula string, f *Format) error {
	if formula == "" {
		return ErrNullParameterIgnored
	}
	cell, err := ws.cellStyle(firstRow, firstCol, f)
	if err != nil {
		return err
	}
	rangeRef, err := cellName(lastRow, lastCol)
	if err != nil {
		return err
	}
	formula = strings.TrimPrefix(strings.TrimSuffix(strings.TrimPrefix(formula, "{"), "}"), "=")
	ref := cell + ":" + rangeRef
	typ := excelize.STCellFormulaTypeArray
	if err := ws.wb.file.SetCellFormula(ws.name, cell, formula,
		excelize.FormulaOpts{Type: &typ, Ref: &ref}); err != nil {
		return Code(err)
	}
	return nil
}

// WriteDynamicArrayFormula writes a dynamic array formula over a range.
func (ws *Worksheet) WriteDynamicArrayFormula(firstRow Row, firstCol Col, lastRow Row, lastCol Col, formula string, f *Format) error {
	return ws.WriteArrayFormula(firstRow, firstCol, lastRow, lastCol, formula, f)
}

// WriteDynamicFormula writes a single-cell dynamic formula.
func (ws *Worksheet) WriteDynamicFormula(row Row, col Col, formula string, f *Format) error {
	return ws.WriteArrayFormula(row, col, row, col, formula, f)
}

// WriteDatetime writes a date/time cell. Formatting comes from the
// supplied format's number format.
func (ws *Worksheet) WriteDatetime(row Row, col Col, dt DateTime, f *Format) error {
	cell, err := ws.cellStyle(row, col, f)
	if err != nil {
		return err
	}
	if err := ws.wb.file.SetCellValue(ws.name, cell, dt.Time()); err != nil {
		return Code(err)
	}
	return nil
}

// WriteUnixtime writes a Unix timestamp as a date cell.
func (ws *Worksheet) WriteUnixtime(row Row, col Col, unixtime int64, f *Format) error {
	cell, err := ws.cellStyle(row, col, f)
	if err != nil {
		return err
	}
	if err := ws.wb.file.SetCellValue(ws.name, cell, time.Unix(unixtime, 0).UTC()); err != nil {
		return Code(err)
	}
	return nil
}

// WriteURL writes a hyperlink with the URL as its display text.
func (ws *Worksheet) WriteURL(row Row, col Col, url string, f *Format) error {
	return ws.WriteURLOpt(row, col, url, f, "", "")
}

// WriteURLOpt writes a hyperlink with optional display text and
// tooltip, mirroring worksheet_write_url_opt.
func (ws *Worksheet) WriteURLOpt(row Row, col Col, url string, f *Format, text, tooltip string) error {
	if url == "" {
		return ErrNullParameterIgnored
	}
	if len(url) > maxURLLength || len(tooltip) > maxURLLength {
		return ErrMaxURLLengthExceeded
	}
	if ws.urlCount >= maxURLCount {
		return ErrMaxNumberURLsExceeded
	}
	cell, err := ws.cellStyle(row, col, f)
	if err != nil {
		return err
	}

	display := text
	if display == "" {
		display = url
	}
	link := url
	linkType := "External"
	if rest, ok := strings.CutPrefix(url, "internal:"); ok {
		link, linkType = rest, "Location"
	} else if rest, ok := strings.CutPrefix(url, "external:"); ok {
		link = rest
	}
	var opts []excelize.HyperlinkOpts
	if display != "" || tooltip != "" {
		o := excelize.HyperlinkOpts{}
		if display != "" {
			d := display
			o.Display = &d
		}
		if tooltip != "" {
			tip := tooltip
			o.Tooltip = &tip
		}
		opts = append(opts, o)
	}
	if err := ws.wb.file.SetCellHyperLink(ws.name, cell, link, linkType, opts...); err != nil {
		return Code(err)
	}
	if err := ws.wb.file.SetCellStr(ws.name, cell, display); err != nil {
		return Code(err)
	}
	ws.urlCount++
	return nil
}

// WriteComment attaches a comment to a cell.
func (ws *Worksheet) WriteComment(row Row, col Col, text string) error {
	if text == "" {
		return ErrNullParameterIgnored
	}
	cell, err := cellName(row, col)
	if err != nil {
		return err
	}
	author := ws.commentsAuthor
	if err := ws.wb.file.AddComment(ws.name, excelize.Comment{
		Cell:      cell,
		Author:    author,
		Paragraph: []excelize.RichTextRun{{Text: text}},
	}); err != nil {
		return Code(err)
	}
	return nil
}

// SetCommentsAuthor sets the author recorded on subsequent comments.
func (ws *Worksheet) SetCommentsAuthor(author string) {
	ws.commentsAuthor = author
}

// ShowComments makes comments visible by default. The engine renders
// comments closed; accepted for source compatibility.
func (ws *Worksheet) ShowComments() {}

// MergeRange merges a cell range and writes a string into its first
// cell, mirroring worksheet_merge_range.
func (ws *Worksheet) MergeRange(firstRow Row, firstCol Col, lastRow Row, lastCol Col, s string, f *Format) error {
	if firstRow == lastRow && firstCol == lastCol {
		return ErrParameterValidation
	}
	first, err := cellName(firstRow, firstCol)
	if err != nil {
		return err
	}
	last, err := cellName(lastRow, lastCol)
	if err != nil {
		return err
	}
	if err := ws.wb.file.MergeCell(ws.name, first, last); err != nil {
		return Code(err)
	}
	return ws.WriteString(firstRow, firstCol, s, f)
}

// SetRow sets a row's height and default format.
func (ws *Worksheet) SetRow(row Row, height float64, f *Format) error {
	return ws.SetRowOpt(row, height, f, RowColOptions{})
}

// SetRowOpt sets a row's height, format and visibility options.
func (ws *Worksheet) SetRowOpt(row Row, height float64, f *Format, opts RowColOptions) error {
	r := int(row) + 1
	if height >= 0 {
		if err := ws.wb.file.SetRowHeight(ws.name, r, height); err != nil {
			return Code(err)
		}
	}
	if f != nil {
		id, err := ws.wb.styleID(f)
		if err != nil {
			return err
		}
		if err := ws.wb.file.SetRowStyle(ws.name, r, r, id); err != nil {
			return Code(err)
		}
	}
	if opts.Hidden {
		if err := ws.wb.file.SetRowVisible(ws.name, r, false); err != nil {
			return Code(err)
		}
	}
	if opts.Level > 0 {
		if err := ws.wb.file.SetRowOutlineLevel(ws.name, r, opts.Level); err != nil {
			return Code(err)
		}
	}
	return nil
}

// SetRowPixels sets a row's height in pixels.
func (ws *Worksheet) SetRowPixels(row Row, pixels uint32, f *Format) error {
	return ws.SetRow(row, float64(pixels)*0.75, f)
}

// SetRowPixelsOpt sets a row's height in pixels with options.
func (ws *Worksheet) SetRowPixelsOpt(row Row, pixels uint32, f *Format, opts RowColOptions) error {
	return ws.SetRowOpt(row, float64(pixels)*0.75, f, opts)
}

// SetColumn sets the width and default format of a column range.
func (ws *Worksheet) SetColumn(firstCol, lastCol Col, width float64, f *Format) error {
	return ws.SetColumnOpt(firstCol, lastCol, width, f, RowColOptions{})
}

// SetColumnOpt sets column width, format and visibility options.
func (ws *Worksheet) SetColumnOpt(firstCol, lastCol Col, width float64, f *Format, opts RowColOptions) error {
	first, err := excelize.ColumnNumberToName(int(firstCol) + 1)
	if err != nil {
		return ErrWorksheetIndexOutOfRange
	}
	last, err := excelize.ColumnNumberToName(int(lastCol) + 1)
	if err != nil {
		return ErrWorksheetIndexOutOfRange
	}
	if width >= 0 {
		if err := ws.wb.file.SetColWidth(ws.name, first, last, width); err != nil {
			return Code(err)
		}
	}
	cols := first
	if first != last {
		cols = first + ":" + last
	}
	if f != nil {
		id, err := ws.wb.styleID(f)
		if err != nil {
			return err
		}
		if err := ws.wb.file.SetColStyle(ws.name, cols, id); err != nil {
			return Code(err)
		}
	}
	if opts.Hidden {
		if err := ws.wb.file.SetColVisible(ws.name, cols, false); err != nil {
			return Code(err)
		}
	}
	if opts.Level > 0 {
		if err := ws.wb.file.SetColOutlineLevel(ws.name, first, opts.Level); err != nil {
			return Code(err)
		}
	}
	return nil
}

// SetColumnPixels sets column widths in pixels.
func (ws *Worksheet) SetColumnPixels(firstCol, lastCol Col, pixels uint32, f *Format) error {
	return ws.SetColumn(firstCol, lastCol, pixelsToWidth(pixels), f)
}

// SetColumnPixelsOpt sets column widths in pixels with options.
func (ws *Worksheet) SetColumnPixelsOpt(firstCol, lastCol Col, pixels uint32, f *Format, opts RowColOptions) error {
	return ws.SetColumnOpt(firstCol, lastCol, pixelsToWidth(pixels), f, opts)
}

// pixelsToWidth converts pixels to Excel character-width units for the
// default Calibri 11 font.
func pixelsToWidth(pixels uint32) float64 {
	if pixels == 0 {
		return 0
	}
	return (float64(pixels) - 5) / 7
}

func graphicOptions(opts ImageOptions) *excelize.GraphicOptions {
	g := &excelize.GraphicOptions{
		OffsetX: int(opts.XOffset),
		OffsetY: int(opts.YOffset),
		ScaleX:  opts.XScale,
		ScaleY:  opts.YScale,
		AltText: opts.Description,
	}
	if g.ScaleX == 0 {
		g.ScaleX = 1
	}
	if g.ScaleY == 0 {
		g.ScaleY = 1
	}
	if opts.URL != "" {
		g.Hyperlink = opts.URL
		g.HyperlinkType = "External"
	}
	return g
}

// InsertImage inserts an image from a file at a cell anchor.
func (ws *Worksheet) InsertImage(row Row, col Col, filename string) error {
	return ws.InsertImageOpt(row, col, filename, ImageOptions{})
}

// InsertImageOpt inserts an image with offset, scaling and hyperlink
// options.
func (ws *Worksheet) InsertImageOpt(row Row, col Col, filename string, opts ImageOptions) error {
	if filename == "" {
		return ErrNullParameterIgnored
	}
	cell, err := cellName(row, col)
	if err != nil {
		return err
	}
	if err := ws.wb.file.AddPicture(ws.name, cell, filename, graphicOptions(opts)); err != nil {
		return Code(err)
	}
	return nil
}

// InsertImageBuffer inserts an image from an in-memory buffer.
func (ws *Worksheet) InsertImageBuffer(row Row, col Col, buf []byte, ext string) error {
	return ws.InsertImageBufferOpt(row, col, buf, ext, ImageOptions{})
}

// InsertImageBufferOpt inserts an in-memory image with options. The
// extension identifies the image type; callers at the boundary always
// provide PNG-compatible data per the original's contract.
func (ws *Worksheet) InsertImageBufferOpt(row Row, col Col, buf []byte, ext string, opts ImageOptions) error {
	if len(buf) == 0 {
		return ErrNullParameterIgnored
	}
	cell, err := cellName(row, col)
	if err != nil {
		return err
	}
	if ext == "" {
		ext = detectImageExt(buf)
	}
	if err := ws.wb.file.AddPictureFromBytes(ws.name, cell, &excelize.Picture{
		Extension: ext,
		File:      buf,
		Format:    graphicOptions(opts),
	}); err != nil {
		return Code(err)
	}
	return nil
}

// detectImageExt sniffs the image type from its magic bytes.
func detectImageExt(buf []byte) string {
	switch {
	case len(buf) >= 8 && string(buf[:8]) == "\x89PNG\r\n\x1a\n":
		return ".png"
	case len(buf) >= 3 && string(buf[:3]) == "\xff\xd8\xff":
		return ".jpg"
	case len(buf) >= 6 && (string(buf[:6]) == "GIF87a" || string(buf[:6]) == "GIF89a"):
		return ".gif"
	case len(buf) >= 2 && string(buf[:2]) == "BM":
		return ".bmp"
	default:
		return ".png"
	}
}

// EmbedImage places an image into a cell. The engine anchors images to
// cells rather than embedding cell values, which is the closest
// representation it offers.
func (ws *Worksheet) EmbedImage(row Row, col Col, filename string) error {
	return ws.InsertImage(row, col, filename)
}

// EmbedImageOpt places an image into a cell with options.
func (ws *Worksheet) EmbedImageOpt(row Row, col Col, filename string, opts ImageOptions) error {
	return ws.InsertImageOpt(row, col, filename, opts)
}

// EmbedImageBuffer places an in-memory image into a cell.
func (ws *Worksheet) EmbedImageBuffer(row Row, col Col, buf []byte) error {
	return ws.InsertImageBuffer(row, col, buf, "")
}

// EmbedImageBufferOpt places an in-memory image into a cell with
// options.
func (ws *Worksheet) EmbedImageBufferOpt(row Row, col Col, buf []byte, opts ImageOptions) error {
	return ws.InsertImageBufferOpt(row, col, buf, "", opts)
}

// SetBackground sets the sheet's background image from a file.
func (ws *Worksheet) SetBackground(filename string) error {
	if filename == "" {
		return ErrNullParameterIgnored
	}
	if err := ws.wb.file.SetSheetBackground(ws.name, filename); err != nil {
		return Code(err)
	}
	return nil
}

// SetBackgroundBuffer sets the sheet's background image from memory.
func (ws *Worksheet) SetBackgroundBuffer(buf []byte) error {
	if len(buf) == 0 {
		return ErrNullParameterIgnored
	}
	if err := ws.wb.file.SetSheetBackgroundFromBytes(ws.name, detectImageExt(buf), buf); err != nil {
		return Code(err)
	}
	return nil
}

// InsertChart inserts a chart built with Workbook.AddChart at a cell
// anchor.
func (ws *Worksheet) InsertChart(row Row, col Col, chart *Chart) error {
	return ws.InsertChartOpt(row, col, chart, ChartOptions{})
}

// InsertChartOpt inserts a chart with offset and scale options.
func (ws *Worksheet) InsertChartOpt(row Row, col Col, chart *Chart, opts ChartOptions) error {
	if chart == nil {
		return ErrNullParameterIgnored
	}
	cell, err := cellName(row, col)
	if err != nil {
		return err
	}
	built, err := chart.build()
	if err != nil {
		return err
	}
	built.Format.OffsetX = int(opts.XOffset)
	built.Format.OffsetY = int(opts.YOffset)
	if opts.XScale > 0 {
		built.Format.ScaleX = opts.XScale
	}
	if opts.YScale > 0 {
		built.Format.ScaleY = opts.YScale
	}
	var combo []*excelize.Chart
	if chart.combined != nil {
		c, err := chart.combined.build()
		if err != nil {
			return err
		}
		combo = append(combo, c)
	}
	if err := ws.wb.file.AddChart(ws.name, cell, built, combo...); err != nil {
		return Code(err)
	}
	return nil
}

// InsertCheckbox inserts a checkbox form control.
func (ws *Worksheet) InsertCheckbox(row Row, col Col, checked bool) error {
	cell, err := cellName(row, col)
	if err != nil {
		return err
	}
	if err := ws.wb.file.AddFormControl(ws.name, excelize.FormControl{
		Cell:    cell,
		Type:    excelize.FormControlCheckBox,
		Checked: checked,
	}); err != nil {
		return Code(err)
	}
	return nil
}

// InsertButton inserts a macro button form control.
func (ws *Worksheet) InsertButton(row Row, col Col, opts ButtonOptions) error {
	cell, err := cellName(row, col)
	if err != nil {
		return err
	}
	caption := opts.Caption
	if caption == "" {
		caption = "Button 1"
	}
	fc := excelize.FormControl{
		Cell:  cell,
		Type:  excelize.FormControlButton,
		Text:  caption,
		Macro: opts.Macro,
	}
	if opts.Width > 0 {
		fc.Width = uint(opts.Width)
	}
	if opts.Height > 0 {
		fc.Height = uint(opts.Height)
	}
	if err := ws.wb.file.AddFormControl(ws.name, fc); err != nil {
		return Code(err)
	}
	return nil
}

// Autofilter turns on filtering for a cell range.
func (ws *Worksheet) Autofilter(firstRow Row, firstCol Col, lastRow Row, lastCol Col) error {
	first, err := cellName(firstRow, firstCol)
	if err != nil {
		return err
	}
	last, err := cellName(lastRow, lastCol)
	if err != nil {
		return err
	}
	ws.filterRange = first + ":" + last
	ws.filterRules = map[Col][]FilterRule{}
	if err := ws.wb.file.AutoFilter(ws.name, ws.filterRange, nil); err != nil {
		return Code(err)
	}
	return nil
}

// FilterColumn applies a single filter rule to a column of the
// autofilter range.
func (ws *Worksheet) FilterColumn(col Col, rule FilterRule) error {
	return ws.applyFilters(col, []FilterRule{rule}, false)
}

// FilterColumn2 applies two filter rules joined by and/or.
func (ws *Worksheet) FilterColumn2(col Col, rule1, rule2 FilterRule, orJoin bool) error {
	return ws.applyFilters(col, []FilterRule{rule1, rule2}, orJoin)
}

func (ws *Worksheet) applyFilters(col Col, rules []FilterRule, orJoin bool) error {
	if ws.filterRange == "" {
		return ErrParameterValidation
	}
	ws.filterRules[col] = rules

	cols := make([]Col, 0, len(ws.filterRules))
	for c := range ws.filterRules {
		cols = append(cols, c)
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i] < cols[j] })

	var opts []excelize.AutoFilterOptions
	for _, c := range cols {
		name, err := excelize.ColumnNumberToName(int(c) + 1)
		if err != nil {
			return ErrWorksheetIndexOutOfRange
		}
		exprs := make([]string, 0, 2)
		for _, r := range ws.filterRules[c] {
			if e := filterExpression(r); e != "" {
				exprs = append(exprs, e)
			}
		}
		if len(exprs) == 0 {
			continue
		}
		join := " and "
		if orJoin {
			join = " or "
		}
		opts = append(opts, excelize.AutoFilterOptions{
			Column:     name,
			Expression: strings.Join(exprs, join),
		})
	}
	if err := ws.wb.file.AutoFilter(ws.name, ws.filterRange, opts); err != nil {
		return Code(err)
	}
	return nil
}

func filterExpression(r FilterRule) string {
	value := r.ValueString
	if value == "" {
		value = strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%f", r.Value), "000000"), ".")
	}
	switch r.Criteria {
	case FilterCriteriaEqualTo:
		return "x == " + value
	case FilterCriteriaNotEqualTo:
		return "x != " + value
	case FilterCriteriaGreaterThan:
		return "x > " + value
	case FilterCriteriaLessThan:
		return "x < " + value
	case FilterCriteriaGreaterThanOrEqualTo:
		return "x >= " + value
	case FilterCriteriaLessThanOrEqualTo:
		return "x <= " + value
	case FilterCriteriaBlanks:
		return "x == blanks"
	case FilterCriteriaNonBlanks:
		return "x == nonblanks"
	default:
		return ""
	}
}

// Activate makes this the sheet shown when the file opens.
func (ws *Worksheet) Activate() { ws.wb.markActive(ws.name) }

// Select marks the sheet tab as selected. Tab selection state beyond
// the active sheet is not representable; Activate covers the common
// case.
func (ws *Worksheet) Select() {}

// Hide hides the worksheet.
func (ws *Worksheet) Hide() {
	_ = ws.wb.file.SetSheetVisible(ws.name, false)
}

// SetFirstSheet sets this sheet as the leftmost visible tab. Not
// representable in the engine's workbook view options.
func (ws *Worksheet) SetFirstSheet() {}

// FreezePanes freezes rows above and columns left of a cell.
func (ws *Worksheet) FreezePanes(row Row, col Col) {
	ws.FreezePanesOpt(row, col, row, col, 0)
}

// FreezePanesOpt freezes panes with an explicit top-left visible cell.
func (ws *Worksheet) FreezePanesOpt(firstRow Row, firstCol Col, topRow Row, leftCol Col, paneType uint8) {
	cell, err := cellName(topRow, leftCol)
	if err != nil {
		return
	}
	_ = ws.wb.file.SetPanes(ws.name, &excelize.Panes{
		Freeze:      true,
		XSplit:      int(firstCol),
		YSplit:      int(firstRow),
		TopLeftCell: cell,
		ActivePane:  "bottomRight",
	})
}

// SplitPanes splits the view at positions given in points.
func (ws *Worksheet) SplitPanes(vertical, horizontal float64) {
	ws.SplitPanesOpt(vertical, horizontal, 0, 0)
}

// SplitPanesOpt splits the view with an explicit top row and left
// column for the lower-right pane.
func (ws *Worksheet) SplitPanesOpt(vertical, horizontal float64, topRow Row, leftCol Col) {
	cell, err := cellName(topRow, leftCol)
	if err != nil {
		return
	}
	// Split positions are stored in twentieths of a point.
	_ = ws.wb.file.SetPanes(ws.name, &excelize.Panes{
		Split:       true,
		XSplit:      int(horizontal * 20),
		YSplit:      int(vertical * 20),
		TopLeftCell: cell,
		ActivePane:  "bottomRight",
	})
}

// SetSelection selects a cell range.
func (ws *Worksheet) SetSelection(firstRow Row, firstCol Col, lastRow Row, lastCol Col) error {
	cell, err := cellName(firstRow, firstCol)
	if err != nil {
		return err
	}
	return ws.setView(func(v *excelize.ViewOptions) { v.TopLeftCell = &cell })
}

// SetTopLeftCell scrolls the sheet so the given cell is top left.
func (ws *Worksheet) SetTopLeftCell(row Row, col Col) {
	cell, err := cellName(row, col)
	if err != nil {
		return
	}
	_ = ws.setView(func(v *excelize.ViewOptions) { v.TopLeftCell = &cell })
}

func (ws *Worksheet) setView(mutate func(*excelize.ViewOptions)) error {
	var v excelize.ViewOptions
	mutate(&v)
	if err := ws.wb.file.SetSheetView(ws.name, 0, &v); err != nil {
		return Code(err)
	}
	return nil
}

func (ws *Worksheet) setPageLayout(mutate func(*excelize.PageLayoutOptions)) {
	var o excelize.PageLayoutOptions
	mutate(&o)
	if err := ws.wb.file.SetPageLayout(ws.name, &o); err != nil {
		debug.Warnf("page layout on %q: %v", ws.name, err)
	}
}

// SetLandscape sets landscape printing.
func (ws *Worksheet) SetLandscape() {
	o := "landscape"
	ws.setPageLayout(func(p *excelize.PageLayoutOptions) { p.Orientation = &o })
}

// SetPortrait sets portrait printing.
func (ws *Worksheet) SetPortrait() {
	o := "portrait"
	ws.setPageLayout(func(p *excelize.PageLayoutOptions) { p.Orientation = &o })
}

// SetPageView sets page layout view mode.
func (ws *Worksheet) SetPageView() {
	view := "pageLayout"
	_ = ws.setView(func(v *excelize.ViewOptions) { v.View = &view })
}

// SetPaper sets the printed paper size by Excel paper code.
func (ws *Worksheet) SetPaper(paperType uint8) {
	size := int(paperType)
	ws.setPageLayout(func(p *excelize.PageLayoutOptions) { p.Size = &size })
}

// SetMargins sets the print margins in inches.
func (ws *Worksheet) SetMargins(left, right, top, bottom float64) {
	_ = ws.wb.file.SetPageMargins(ws.name, &excelize.PageLayoutMarginsOptions{
		Left:   &left,
		Right:  &right,
		Top:    &top,
		Bottom: &bottom,
	})
}

// SetHeader sets the printed page header.
func (ws *Worksheet) SetHeader(header string) error {
	return ws.SetHeaderOpt(header, HeaderFooterOptions{})
}

// SetHeaderOpt sets the header with margin options.
func (ws *Worksheet) SetHeaderOpt(header string, opts HeaderFooterOptions) error {
	if len(header) > maxHeaderLength {
		return Err255StringLengthExceeded
	}
	if err := ws.wb.file.SetHeaderFooter(ws.name, &excelize.HeaderFooterOptions{
		OddHeader: header,
	}); err != nil {
		return Code(err)
	}
	if opts.Margin > 0 {
		if err := ws.wb.file.SetPageMargins(ws.name, &excelize.PageLayoutMarginsOptions{
			Header: &opts.Margin,
		}); err != nil {
			return Code(err)
		}
	}
	return nil
}

// SetFooter sets the printed page footer.
func (ws *Worksheet) SetFooter(footer string) error {
	return ws.SetFooterOpt(footer, HeaderFooterOptions{})
}

// SetFooterOpt sets the footer with margin options.
func (ws *Worksheet) SetFooterOpt(footer string, opts HeaderFooterOptions) error {
	if len(footer) > maxHeaderLength {
		return Err255StringLengthExceeded
	}
	if err := ws.wb.file.SetHeaderFooter(ws.name, &excelize.HeaderFooterOptions{
		OddFooter: footer,
	}); err != nil {
		return Code(err)
	}
	if opts.Margin > 0 {
		if err := ws.wb.file.SetPageMargins(ws.name, &excelize.PageLayoutMarginsOptions{
			Footer: &opts.Margin,
		}); err != nil {
			return Code(err)
		}
	}
	return nil
}

// SetHPagebreaks adds horizontal page breaks above the listed rows.
func (ws *Worksheet) SetHPagebreaks(rows []Row) error {
	if len(rows) == 0 {
		return ErrNullParameterIgnored
	}
	for _, row := range rows {
		cell, err := cellName(row, 0)
		if err != nil {
			return err
		}
		if err := ws.wb.file.InsertPageBreak(ws.name, cell); err != nil {
			return Code(err)
		}
	}
	return nil
}

// SetVPagebreaks adds vertical page breaks left of the listed columns.
func (ws *Worksheet) SetVPagebreaks(cols []Col) error {
	if len(cols) == 0 {
		return ErrNullParameterIgnored
	}
	for _, col := range cols {
		cell, err := cellName(0, col)
		if err != nil {
			return err
		}
		if err := ws.wb.file.InsertPageBreak(ws.name, cell); err != nil {
			return Code(err)
		}
	}
	return nil
}

// PrintAcross orders printed pages left to right, then down. Not
// representable in the engine's page setup writer.
func (ws *Worksheet) PrintAcross() {}

// SetZoom sets the screen zoom percentage, clamped to Excel's 10-400
// range.
func (ws *Worksheet) SetZoom(scale uint16) {
	if scale < 10 || scale > 400 {
		return
	}
	z := float64(scale)
	_ = ws.setView(func(v *excelize.ViewOptions) { v.ZoomScale = &z })
}

// Gridlines controls screen gridline display. Option 0 hides them.
func (ws *Worksheet) Gridlines(option uint8) {
	show := option != 0
	_ = ws.setView(func(v *excelize.ViewOptions) { v.ShowGridLines = &show })
}

// CenterHorizontally centers printed output horizontally.
func (ws *Worksheet) CenterHorizontally() {
	h := true
	_ = ws.wb.file.SetPageMargins(ws.name, &excelize.PageLayoutMarginsOptions{Horizontally: &h})
}

// CenterVertically centers printed output vertically.
func (ws *Worksheet) CenterVertically() {
	v := true
	_ = ws.wb.file.SetPageMargins(ws.name, &excelize.PageLayoutMarginsOptions{Vertically: &v})
}

// PrintRowColHeaders prints the row and column headers. Not
// representable in the engine's page setup writer.
func (ws *Worksheet) PrintRowColHeaders() {}

// RepeatRows repeats a row range at the top of each printed page.
func (ws *Worksheet) RepeatRows(firstRow, lastRow Row) error {
	refersTo := fmt.Sprintf("%s!$%d:$%d", quoteSheetName(ws.name), firstRow+1, lastRow+1)
	return ws.printTitles(refersTo)
}

// RepeatColumns repeats a column range at the left of each printed
// page.
func (ws *Worksheet) RepeatColumns(firstCol, lastCol Col) error {
	first, err1 := excelize.ColumnNumberToName(int(firstCol) + 1)
	last, err2 := excelize.ColumnNumberToName(int(lastCol) + 1)
	if err1 != nil || err2 != nil {
		return ErrWorksheetIndexOutOfRange
	}
	refersTo := fmt.Sprintf("%s!$%s:$%s", quoteSheetName(ws.name), first, last)
	return ws.printTitles(refersTo)
}

func (ws *Worksheet) printTitles(refersTo string) error {
	if err := ws.wb.file.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Titles",
		RefersTo: refersTo,
		Scope:    ws.name,
	}); err != nil {
		return Code(err)
	}
	return nil
}

// PrintArea restricts printing to a cell range.
func (ws *Worksheet) PrintArea(firstRow Row, firstCol Col, lastRow Row, lastCol Col) error {
	ref, err := rangeFormula(ws.name, firstRow, firstCol, lastRow, lastCol)
	if err != nil {
		return err
	}
	_, area, _ := strings.Cut(ref, "!")
	if err := ws.wb.file.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("%s!%s", quoteSheetName(ws.name), area),
		Scope:    ws.name,
	}); err != nil {
		return Code(err)
	}
	return nil
}

// FitToPages scales printing to fit a page count.
func (ws *Worksheet) FitToPages(width, height uint16) {
	fit := true
	_ = ws.wb.file.SetSheetProps(ws.name, &excelize.SheetPropsOptions{FitToPage: &fit})
	w, h := int(width), int(height)
	ws.setPageLayout(func(p *excelize.PageLayoutOptions) {
		p.FitToWidth = &w
		p.FitToHeight = &h
	})
}

// SetStartPage sets the first printed page number.
func (ws *Worksheet) SetStartPage(startPage uint16) {
	n := uint(startPage)
	ws.setPageLayout(func(p *excelize.PageLayoutOptions) { p.FirstPageNumber = &n })
}

// SetPrintScale sets the print scale percentage, 10-400.
func (ws *Worksheet) SetPrintScale(scale uint16) {
	if scale < 10 || scale > 400 {
		return
	}
	n := uint(scale)
	ws.setPageLayout(func(p *excelize.PageLayoutOptions) { p.AdjustTo = &n })
}

// PrintBlackAndWhite prints in black and white.
func (ws *Worksheet) PrintBlackAndWhite() {
	bw := true
	ws.setPageLayout(func(p *excelize.PageLayoutOptions) { p.BlackAndWhite = &bw })
}

// RightToLeft displays the sheet right to left.
func (ws *Worksheet) RightToLeft() {
	rtl := true
	_ = ws.setView(func(v *excelize.ViewOptions) { v.RightToLeft = &rtl })
}

// HideZero hides zero values on screen.
func (ws *Worksheet) HideZero() {
	show := false
	_ = ws.setView(func(v *excelize.ViewOptions) { v.ShowZeros = &show })
}

// SetTabColor sets the sheet tab color.
func (ws *Worksheet) SetTabColor(color Color) {
	rgb := colorHex(int64(color))
	_ = ws.wb.file.SetSheetProps(ws.name, &excelize.SheetPropsOptions{TabColorRGB: &rgb})
}

// Protect protects the worksheet against editing.
func (ws *Worksheet) Protect(password string, opts Protection) {
	_ = ws.wb.file.ProtectSheet(ws.name, &excelize.SheetProtectionOptions{
		Password:            password,
		SelectLockedCells:   !opts.NoSelectLockedCells,
		SelectUnlockedCells: !opts.NoSelectUnlockedCells,
		FormatCells:         opts.FormatCells,
		FormatColumns:       opts.FormatColumns,
		FormatRows:          opts.FormatRows,
		InsertColumns:       opts.InsertColumns,
		InsertRows:          opts.InsertRows,
		InsertHyperlinks:    opts.InsertHyperlinks,
		DeleteColumns:       opts.DeleteColumns,
		DeleteRows:          opts.DeleteRows,
		Sort:                opts.Sort,
		AutoFilter:          opts.Autofilter,
		PivotTables:         opts.PivotTables,
		EditScenarios:       opts.Scenarios,
		EditObjects:         opts.Objects,
	})
}

// OutlineSettings controls outline display behavior.
func (ws *Worksheet) OutlineSettings(visible, symbolsBelow, symbolsRight, autoStyle bool) {
	below, right := symbolsBelow, symbolsRight
	_ = ws.wb.file.SetSheetProps(ws.name, &excelize.SheetPropsOptions{
		OutlineSummaryBelow: &below,
		OutlineSummaryRight: &right,
	})
}

// SetDefaultRow sets the default row height and whether unused rows
// are hidden.
func (ws *Worksheet) SetDefaultRow(height float64, hideUnusedRows bool) {
	h := height
	hide := hideUnusedRows
	_ = ws.wb.file.SetSheetProps(ws.name, &excelize.SheetPropsOptions{
		DefaultRowHeight: &h,
		ZeroHeight:       &hide,
	})
}

// SetVBAName sets the worksheet's VBA code name.
func (ws *Worksheet) SetVBAName(name string) error {
	if name == "" {
		return ErrNullParameterIgnored
	}
	code := name
	if err := ws.wb.file.SetSheetProps(ws.name, &excelize.SheetPropsOptions{CodeName: &code}); err != nil {
		return Code(err)
	}
	return nil
}

// IgnoreErrors suppresses worksheet error indicators. The engine has
// no writer for the ignoredErrors element.
func (ws *Worksheet) IgnoreErrors(errType uint8, rangeRef string) error {
	if rangeRef == "" {
		return ErrNullParameterIgnored
	}
	return ErrFeatureNotSupported
}

// SetErrorCell writes an #N/A error into a cell.
func (ws *Worksheet) SetErrorCell(row Row, col Col) {
	cell, err := cellName(row, col)
	if err != nil {
		return
	}
	_ = ws.wb.file.SetCellFormula(ws.name, cell, "NA()")
}

// InsertTextbox is not representable by the engine's drawing writer.
func (ws *Worksheet) InsertTextbox(row Row, col Col, text string) error {
	return ws.InsertTextboxOpt(row, col, text, TextboxOptions{})
}

// TextboxOptions mirrors the boundary's textbox option cluster.
type TextboxOptions struct {
	Width       uint32
	Height      uint32
	XOffset     int32
	YOffset     int32
	XScale      float64
	YScale      float64
	Description string
}

// InsertTextboxOpt is not representable by the engine's drawing
// writer and reports the feature code.
func (ws *Worksheet) InsertTextboxOpt(row Row, col Col, text string, opts TextboxOptions) error {
	if _, err := cellName(row, col); err != nil {
		return err
	}
	return ErrFeatureNotSupported
}
