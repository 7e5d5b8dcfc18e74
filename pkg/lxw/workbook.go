package lxw

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/lvxlsx/lvxlsx/pkg/debug"
)

// WorkbookOptions mirrors the boundary's workbook option cluster.
type WorkbookOptions struct {
	// ConstantMemory is accepted for source compatibility. The engine
	// manages cell storage itself, so the flag changes nothing here.
	ConstantMemory bool
	Tmpdir         string
	UseZip64       bool
}

// DocProperties carries the standard document metadata cluster.
type DocProperties struct {
	Title         string
	Subject       string
	Author        string
	Manager       string
	Company       string
	Category      string
	Keywords      string
	Comments      string
	Status        string
	HyperlinkBase string
	Created       int64
}

// defaultSheet is the sheet excelize seeds a new file with. The first
// added worksheet takes it over instead of creating a second sheet.
const defaultSheet = "Sheet1"

// Workbook owns an output file and every object created under it.
// All real spreadsheet work is forwarded to the embedded engine file.
type Workbook struct {
	mu   sync.Mutex
	file *excelize.File
	path string
	opts WorkbookOptions

	sheets      []*Worksheet
	chartsheets []*Chartsheet
	sheetNames  map[string]bool

	formats []*Format
	charts  []*Chart

	defaultTaken bool
	activeSheet  string
	closed       bool
}

// NewWorkbook creates a workbook that will be written to path when
// Close is called. Creation itself performs no I/O.
func NewWorkbook(path string) *Workbook {
	return NewWorkbookOpt(path, WorkbookOptions{})
}

// NewWorkbookOpt creates a workbook with explicit options.
func NewWorkbookOpt(path string, opts WorkbookOptions) *Workbook {
	debug.Tracef("workbook_new %q", path)
	return &Workbook{
		file:       excelize.NewFile(),
		path:       path,
		opts:       opts,
		sheetNames: map[string]bool{},
	}
}

// File exposes the underlying engine file. Intended for tests and the
// examples; boundary code never touches it.
func (wb *Workbook) File() *excelize.File { return wb.file }

// ValidateSheetName checks a name against Excel's rules and this
// workbook's existing sheets, mirroring workbook_validate_sheet_name.
func (wb *Workbook) ValidateSheetName(name string) error {
	if name == "" {
		return ErrNullParameterIgnored
	}
	if utf8.RuneCountInString(name) > 31 {
		return ErrSheetnameLengthExceeded
	}
	if strings.ContainsAny(name, "[]:*?/\\") {
		return ErrInvalidSheetnameCharacter
	}
	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return ErrSheetnameStartEndApostrophe
	}
	wb.mu.Lock()
	defer wb.mu.Unlock()
	if wb.sheetNames[strings.ToLower(name)] {
		return ErrSheetnameAlreadyUsed
	}
	return nil
}

// reserveSheetName validates name, or generates "Sheet<N>" when name
// is empty, and claims it.
func (wb *Workbook) reserveSheetName(name string) (string, error) {
	if name == "" {
		name = fmt.Sprintf("Sheet%d", len(wb.sheets)+len(wb.chartsheets)+1)
	}
	if err := wb.ValidateSheetName(name); err != nil {
		return "", err
	}
	wb.mu.Lock()
	wb.sheetNames[strings.ToLower(name)] = true
	wb.mu.Unlock()
	return name, nil
}

// AddWorksheet adds a worksheet. An empty name picks the next default
// "Sheet<N>" name.
func (wb *Workbook) AddWorksheet(name string) (*Worksheet, error) {
	name, err := wb.reserveSheetName(name)
	if err != nil {
		return nil, err
	}

	wb.mu.Lock()
	defer wb.mu.Unlock()
	if !wb.defaultTaken {
		wb.defaultTaken = true
		if name != defaultSheet {
			if err := wb.file.SetSheetName(defaultSheet, name); err != nil {
				return nil, Code(err)
			}
		}
	} else {
		if _, err := wb.file.NewSheet(name); err != nil {
			return nil, Code(err)
		}
	}

	ws := &Worksheet{wb: wb, name: name}
	wb.sheets = append(wb.sheets, ws)
	debug.Tracef("add_worksheet %q", name)
	return ws, nil
}

// AddChartsheet adds a chartsheet. The engine materializes chartsheets
// at Close, because it needs the chart before creating the sheet.
func (wb *Workbook) AddChartsheet(name string) (*Chartsheet, error) {
	if name == "" {
		name = fmt.Sprintf("Chart%d", len(wb.chartsheets)+1)
	}
	name, err := wb.reserveSheetName(name)
	if err != nil {
		return nil, err
	}

	wb.mu.Lock()
	defer wb.mu.Unlock()
	cs := &Chartsheet{wb: wb, name: name}
	wb.chartsheets = append(wb.chartsheets, cs)
	debug.Tracef("add_chartsheet %q", name)
	return cs, nil
}

// AddFormat creates a new cell format owned by this workbook.
func (wb *Workbook) AddFormat() *Format {
	f := newFormat(wb)
	wb.mu.Lock()
	wb.formats = append(wb.formats, f)
	wb.mu.Unlock()
	return f
}

// DefaultURLFormat returns the implicit hyperlink format.
func (wb *Workbook) DefaultURLFormat() *Format {
	f := wb.AddFormat()
	f.SetHyperlink()
	return f
}

// AddChart creates a chart builder of the given type.
func (wb *Workbook) AddChart(chartType uint8) *Chart {
	c := newChart(chartType)
	wb.mu.Lock()
	wb.charts = append(wb.charts, c)
	wb.mu.Unlock()
	return c
}

// GetWorksheetByName returns the named worksheet, or nil.
func (wb *Workbook) GetWorksheetByName(name string) *Worksheet {
	wb.mu.Lock()
	defer wb.mu.Unlock()
	for _, ws := range wb.sheets {
		if ws.name == name {
			return ws
		}
	}
	return nil
}

// GetChartsheetByName returns the named chartsheet, or nil.
func (wb *Workbook) GetChartsheetByName(name string) *Chartsheet {
	wb.mu.Lock()
	defer wb.mu.Unlock()
	for _, cs := range wb.chartsheets {
		if cs.name == name {
			return cs
		}
	}
	return nil
}

// DefineName adds a defined name such as "Exchange_rate" referring to
// a formula or range.
func (wb *Workbook) DefineName(name, formula string) error {
	if name == "" || formula == "" {
		return ErrNullParameterIgnored
	}
	dn := &excelize.DefinedName{Name: name, RefersTo: strings.TrimPrefix(formula, "=")}
	// "Sheet1!name" scopes the definition to a sheet.
	if sheet, local, found := strings.Cut(name, "!"); found {
		dn.Name = local
		dn.Scope = strings.Trim(sheet, "'")
	}
	if err := wb.file.SetDefinedName(dn); err != nil {
		return Code(err)
	}
	return nil
}

// SetProperties sets the standard document properties.
func (wb *Workbook) SetProperties(p DocProperties) error {
	doc := &excelize.DocProperties{
		Title:    p.Title,
		Subject:  p.Subject,
		Creator:  p.Author,
		Category: p.Category,
		Keywords: p.Keywords,
		// The boundary's "comments" property is docProps description.
		Description:   p.Comments,
		ContentStatus: p.Status,
	}
	if err := wb.file.SetDocProps(doc); err != nil {
		return Code(err)
	}
	if p.Company != "" {
		if err := wb.file.SetAppProps(&excelize.AppProperties{Company: p.Company}); err != nil {
			return Code(err)
		}
	}
	return nil
}

// Custom document properties are not currently supported by the
// engine's writer; the closed feature code reports that honestly
// instead of silently dropping the value.

// SetCustomPropertyString sets a custom text property.
func (wb *Workbook) SetCustomPropertyString(name, value string) error {
	if name == "" {
		return ErrNullParameterIgnored
	}
	return ErrFeatureNotSupported
}

// SetCustomPropertyNumber sets a custom numeric property.
func (wb *Workbook) SetCustomPropertyNumber(name string, value float64) error {
	if name == "" {
		return ErrNullParameterIgnored
	}
	return ErrFeatureNotSupported
}

// SetCustomPropertyInteger sets a custom integer property.
func (wb *Workbook) SetCustomPropertyInteger(name string, value int32) error {
	return wb.SetCustomPropertyNumber(name, float64(value))
}

// SetCustomPropertyBoolean sets a custom boolean property.
func (wb *Workbook) SetCustomPropertyBoolean(name string, value bool) error {
	if name == "" {
		return ErrNullParameterIgnored
	}
	return ErrFeatureNotSupported
}

// SetCustomPropertyDateTime sets a custom date property.
func (wb *Workbook) SetCustomPropertyDateTime(name string, dt DateTime) error {
	if name == "" {
		return ErrNullParameterIgnored
	}
	return ErrFeatureNotSupported
}

// AddVBAProject embeds a vbaProject.bin into the workbook, making the
// output an .xlsm file.
func (wb *Workbook) AddVBAProject(filename string) error {
	if filename == "" {
		return ErrNullParameterIgnored
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return Code(err)
	}
	if err := wb.file.AddVBAProject(data); err != nil {
		return Code(err)
	}
	return nil
}

// AddSignedVBAProject embeds a VBA project. The engine cannot carry a
// detached signature, so the signature file is ignored.
func (wb *Workbook) AddSignedVBAProject(vbaProject, signature string) error {
	if signature != "" {
		debug.Warnf("vba signature %q ignored: not supported by engine", signature)
	}
	return wb.AddVBAProject(vbaProject)
}

// SetVBAName sets the workbook's VBA code name.
func (wb *Workbook) SetVBAName(name string) error {
	if name == "" {
		return ErrNullParameterIgnored
	}
	codeName := name
	if err := wb.file.SetWorkbookProps(&excelize.WorkbookPropsOptions{CodeName: &codeName}); err != nil {
		return Code(err)
	}
	return nil
}

// Use1904Epoch switches serial dates to the 1904 date system.
func (wb *Workbook) Use1904Epoch() {
	date1904 := true
	_ = wb.file.SetWorkbookProps(&excelize.WorkbookPropsOptions{Date1904: &date1904})
}

// ReadOnlyRecommended marks the file read-only recommended. The
// engine has no writer for the fileVersion flag, so this is recorded
// only for diagnostic purposes.
func (wb *Workbook) ReadOnlyRecommended() {
	debug.Warnf("read_only_recommended has no effect with this engine")
}

// SetSize sets the workbook window size. Not representable in the
// engine; accepted for source compatibility.
func (wb *Workbook) SetSize(width, height uint16) {}

// styleID realizes a format into an engine style, caching the result
// until the format changes again. A nil format maps to style 0,
// meaning no explicit style.
func (wb *Workbook) styleID(f *Format) (int, error) {
	if f == nil {
		return 0, nil
	}
	if !f.dirty {
		return f.styleID, nil
	}
	id, err := wb.file.NewStyle(f.style())
	if err != nil {
		return 0, Code(err)
	}
	f.styleID = id
	f.dirty = false
	return id, nil
}

// markActive records which sheet should be selected when the file is
// written.
func (wb *Workbook) markActive(name string) {
	wb.mu.Lock()
	wb.activeSheet = name
	wb.mu.Unlock()
}

// Close materializes deferred objects and writes the file, mirroring
// workbook_close. The workbook is unusable afterwards.
func (wb *Workbook) Close() error {
	wb.mu.Lock()
	defer wb.mu.Unlock()
	if wb.closed {
		return ErrNullParameterIgnored
	}
	wb.closed = true

	for _, cs := range wb.chartsheets {
		if err := cs.materialize(); err != nil {
			return err
		}
	}

	// When only chartsheets were added the seed sheet is dead weight.
	if !wb.defaultTaken && len(wb.chartsheets) > 0 {
		_ = wb.file.DeleteSheet(defaultSheet)
	}

	if wb.activeSheet != "" {
		if idx, err := wb.file.GetSheetIndex(wb.activeSheet); err == nil && idx >= 0 {
			wb.file.SetActiveSheet(idx)
		}
	}

	if err := wb.file.SaveAs(wb.path); err != nil {
		debug.Errorf("workbook_close %q: %v", wb.path, err)
		_ = wb.file.Close()
		return ErrCreatingXlsxFile
	}
	if err := wb.file.Close(); err != nil {
		return Code(err)
	}
	debug.Tracef("workbook_close %q ok", wb.path)
	return nil
}
