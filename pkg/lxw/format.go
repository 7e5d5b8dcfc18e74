package lxw

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Color is a 24-bit RGB value, 0xRRGGBB.
type Color = uint32

// colorUnset marks color fields that were never assigned; 0 is a
// valid color (black), so a sentinel outside the 24-bit range is used.
const colorUnset int64 = -1

// Underline styles.
const (
	UnderlineNone uint8 = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineSingleAccounting
	UnderlineDoubleAccounting
)

// Font script styles.
const (
	FontSuperscript uint8 = 1
	FontSubscript   uint8 = 2
)

// Alignment values. Values up to AlignDistributed are horizontal, the
// rest vertical; SetAlign dispatches on the range like the original.
const (
	AlignNone uint8 = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignFill
	AlignJustify
	AlignCenterAcross
	AlignDistributed
	AlignVerticalTop
	AlignVerticalBottom
	AlignVerticalCenter
	AlignVerticalJustify
	AlignVerticalDistributed
)

// Diagonal border directions.
// Border styles. The values match the engine's border style indexes
// directly.
const (
	BorderNone uint8 = iota
	BorderThin
	BorderMedium
	BorderDashed
	BorderDotted
	BorderThick
	BorderDouble
	BorderHair
	BorderMediumDashed
	BorderDashDot
	BorderMediumDashDot
	BorderDashDotDot
	BorderMediumDashDotDot
	BorderSlantDashDot
)

const (
	DiagonalBorderUp     uint8 = 1
	DiagonalBorderDown   uint8 = 2
	DiagonalBorderUpDown uint8 = 3
)

// Format accumulates cell formatting and is realized into an engine
// style the first time it is used in a write. Setters after first use
// take effect on subsequent writes.
type Format struct {
	wb *Workbook

	fontName   string
	fontSize   float64
	fontColor  int64
	bold       bool
	italic     bool
	underline  uint8
	strikeout  bool
	script     uint8
	fontFamily uint8
	fontScheme string

	numFormat      string
	numFormatIndex uint8

	unlocked bool
	hidden   bool

	align        uint8
	valign       uint8
	textWrap     bool
	rotation     int16
	indent       uint8
	shrink       bool
	readingOrder uint8

	pattern int16
	bgColor int64
	fgColor int64

	borderLeft   uint8
	borderRight  uint8
	borderTop    uint8
	borderBottom uint8
	colorLeft    int64
	colorRight   int64
	colorTop     int64
	colorBottom  int64
	diagType     uint8
	diagBorder   uint8
	diagColor    int64

	quotePrefix bool
	hyperlink   bool

	// Realized engine style; recomputed when dirty.
	styleID int
	dirty   bool
}

func newFormat(wb *Workbook) *Format {
	return &Format{
		wb:        wb,
		pattern:   -1,
		fontColor: colorUnset,
		bgColor:   colorUnset,
		fgColor:   colorUnset,
		colorLeft: colorUnset, colorRight: colorUnset,
		colorTop: colorUnset, colorBottom: colorUnset,
		diagColor: colorUnset,
		dirty:     true,
	}
}

func (f *Format) touch() { f.dirty = true }

// SetFontName sets the font. The default is Calibri.
func (f *Format) SetFontName(name string) { f.fontName = name; f.touch() }

// SetFontSize sets the font size in points.
func (f *Format) SetFontSize(size float64) { f.fontSize = size; f.touch() }

// SetFontColor sets the font color.
func (f *Format) SetFontColor(c Color) { f.fontColor = int64(c); f.touch() }

// SetBold turns on bold text.
func (f *Format) SetBold() { f.bold = true; f.touch() }

// SetItalic turns on italic text.
func (f *Format) SetItalic() { f.italic = true; f.touch() }

// SetUnderline sets the underline style.
func (f *Format) SetUnderline(style uint8) { f.underline = style; f.touch() }

// SetFontStrikeout turns on strikeout text.
func (f *Format) SetFontStrikeout() { f.strikeout = true; f.touch() }

// SetFontScript sets superscript or subscript.
func (f *Format) SetFontScript(style uint8) { f.script = style; f.touch() }

// SetFontFamily sets the font family index.
func (f *Format) SetFontFamily(v uint8) { f.fontFamily = v; f.touch() }

// SetFontScheme sets the font scheme.
func (f *Format) SetFontScheme(scheme string) { f.fontScheme = scheme; f.touch() }

// SetNumFormat sets a number format string such as "0.00".
func (f *Format) SetNumFormat(numFormat string) { f.numFormat = numFormat; f.touch() }

// SetNumFormatIndex selects one of Excel's built-in number formats.
func (f *Format) SetNumFormatIndex(index uint8) { f.numFormatIndex = index; f.touch() }

// SetUnlocked marks cells as editable in a protected sheet.
func (f *Format) SetUnlocked() { f.unlocked = true; f.touch() }

// SetHidden hides formulas in a protected sheet.
func (f *Format) SetHidden() { f.hidden = true; f.touch() }

// SetAlign sets horizontal or vertical alignment depending on the
// value's range, matching the single-parameter original.
func (f *Format) SetAlign(alignment uint8) {
	if alignment <= AlignDistributed {
		f.align = alignment
	} else {
		f.valign = alignment
	}
	f.touch()
}

// SetTextWrap turns on text wrapping.
func (f *Format) SetTextWrap() { f.textWrap = true; f.touch() }

// SetRotation sets text rotation between -90 and 90 degrees, or 270
// for stacked text.
func (f *Format) SetRotation(angle int16) { f.rotation = angle; f.touch() }

// SetIndent sets the indentation level.
func (f *Format) SetIndent(level uint8) { f.indent = level; f.touch() }

// SetShrink shrinks text to fit the cell.
func (f *Format) SetShrink() { f.shrink = true; f.touch() }

// SetReadingOrder sets left-to-right (1) or right-to-left (2) order.
func (f *Format) SetReadingOrder(v uint8) { f.readingOrder = v; f.touch() }

// SetPattern sets the fill pattern; 1 is a solid fill.
func (f *Format) SetPattern(pattern uint8) { f.pattern = int16(pattern); f.touch() }

// SetBgColor sets the fill background color.
func (f *Format) SetBgColor(c Color) {
	f.bgColor = int64(c)
	if f.pattern < 0 {
		f.pattern = 1
	}
	f.touch()
}

// SetFgColor sets the fill foreground (pattern) color.
func (f *Format) SetFgColor(c Color) { f.fgColor = int64(c); f.touch() }

// SetBorder sets all four borders to the same style.
func (f *Format) SetBorder(style uint8) {
	f.borderLeft, f.borderRight, f.borderTop, f.borderBottom = style, style, style, style
	f.touch()
}

// SetBottom sets the bottom border style.
func (f *Format) SetBottom(style uint8) { f.borderBottom = style; f.touch() }

// SetTop sets the top border style.
func (f *Format) SetTop(style uint8) { f.borderTop = style; f.touch() }

// SetLeft sets the left border style.
func (f *Format) SetLeft(style uint8) { f.borderLeft = style; f.touch() }

// SetRight sets the right border style.
func (f *Format) SetRight(style uint8) { f.borderRight = style; f.touch() }

// SetBorderColor sets all four border colors.
func (f *Format) SetBorderColor(c Color) {
	v := int64(c)
	f.colorLeft, f.colorRight, f.colorTop, f.colorBottom = v, v, v, v
	f.touch()
}

// SetBottomColor sets the bottom border color.
func (f *Format) SetBottomColor(c Color) { f.colorBottom = int64(c); f.touch() }

// SetTopColor sets the top border color.
func (f *Format) SetTopColor(c Color) { f.colorTop = int64(c); f.touch() }

// SetLeftColor sets the left border color.
func (f *Format) SetLeftColor(c Color) { f.colorLeft = int64(c); f.touch() }

// SetRightColor sets the right border color.
func (f *Format) SetRightColor(c Color) { f.colorRight = int64(c); f.touch() }

// SetDiagType sets the diagonal border direction.
func (f *Format) SetDiagType(v uint8) { f.diagType = v; f.touch() }

// SetDiagBorder sets the diagonal border style.
func (f *Format) SetDiagBorder(v uint8) { f.diagBorder = v; f.touch() }

// SetDiagColor sets the diagonal border color.
func (f *Format) SetDiagColor(c Color) { f.diagColor = int64(c); f.touch() }

// SetQuotePrefix prefixes the cell content with an apostrophe.
func (f *Format) SetQuotePrefix() { f.quotePrefix = true; f.touch() }

// SetHyperlink applies Excel's implicit hyperlink style.
func (f *Format) SetHyperlink() {
	f.underline = UnderlineSingle
	f.fontColor = 0x0563C1
	f.hyperlink = true
	f.touch()
}

func colorHex(c int64) string {
	return fmt.Sprintf("%06X", uint32(c)&0xFFFFFF)
}

// style builds the excelize style for the accumulated properties.
func (f *Format) style() *excelize.Style {
	s := &excelize.Style{}

	font := &excelize.Font{
		Bold:   f.bold,
		Italic: f.italic,
		Strike: f.strikeout,
		Family: f.fontName,
		Size:   f.fontSize,
	}
	switch f.underline {
	case UnderlineSingle, UnderlineSingleAccounting:
		font.Underline = "single"
	case UnderlineDouble, UnderlineDoubleAccounting:
		font.Underline = "double"
	}
	switch f.script {
	case FontSuperscript:
		font.VertAlign = "superscript"
	case FontSubscript:
		font.VertAlign = "subscript"
	}
	if f.fontColor != colorUnset {
		font.Color = colorHex(f.fontColor)
	}
	s.Font = font

	if f.numFormat != "" {
		nf := f.numFormat
		s.CustomNumFmt = &nf
	} else if f.numFormatIndex != 0 {
		s.NumFmt = int(f.numFormatIndex)
	}

	if f.align != AlignNone || f.valign != AlignNone || f.textWrap ||
		f.rotation != 0 || f.indent != 0 || f.shrink || f.readingOrder != 0 {
		s.Alignment = &excelize.Alignment{
			Horizontal:   horizontalAlign(f.align),
			Vertical:     verticalAlign(f.valign),
			WrapText:     f.textWrap,
			TextRotation: int(f.rotation),
			Indent:       int(f.indent),
			ShrinkToFit:  f.shrink,
			ReadingOrder: uint64(f.readingOrder),
		}
	}

	if f.pattern >= 0 {
		fill := excelize.Fill{Type: "pattern", Pattern: int(f.pattern)}
		// A solid fill shows the background color; patterned fills
		// show the foreground color over the background.
		switch {
		case f.pattern == 1 && f.bgColor != colorUnset:
			fill.Color = []string{colorHex(f.bgColor)}
		case f.fgColor != colorUnset:
			fill.Color = []string{colorHex(f.fgColor)}
		case f.bgColor != colorUnset:
			fill.Color = []string{colorHex(f.bgColor)}
		}
		s.Fill = fill
	}

	s.Border = f.borders()

	if f.unlocked || f.hidden {
		s.Protection = &excelize.Protection{
			Locked: !f.unlocked,
			Hidden: f.hidden,
		}
	}

	return s
}

func horizontalAlign(v uint8) string {
	switch v {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignFill:
		return "fill"
	case AlignJustify:
		return "justify"
	case AlignCenterAcross:
		return "centerContinuous"
	case AlignDistributed:
		return "distributed"
	default:
		return ""
	}
}

func verticalAlign(v uint8) string {
	switch v {
	case AlignVerticalTop:
		return "top"
	case AlignVerticalCenter:
		return "center"
	case AlignVerticalJustify:
		return "justify"
	case AlignVerticalDistributed:
		return "distributed"
	default:
		// Bottom is Excel's default and needs no attribute.
		return ""
	}
}

func (f *Format) borders() []excelize.Border {
	var out []excelize.Border
	add := func(typ string, style uint8, color int64) {
		if style == 0 {
			return
		}
		b := excelize.Border{Type: typ, Style: int(style)}
		if color != colorUnset {
			b.Color = colorHex(color)
		} else {
			b.Color = "000000"
		}
		out = append(out, b)
	}
	add("left", f.borderLeft, f.colorLeft)
	add("right", f.borderRight, f.colorRight)
	add("top", f.borderTop, f.colorTop)
	add("bottom", f.borderBottom, f.colorBottom)
	if f.diagBorder != 0 && f.diagType != 0 {
		if f.diagType&DiagonalBorderUp != 0 {
			add("diagonalUp", f.diagBorder, f.diagColor)
		}
		if f.diagType&DiagonalBorderDown != 0 {
			add("diagonalDown", f.diagBorder, f.diagColor)
		}
	}
	return out
}
