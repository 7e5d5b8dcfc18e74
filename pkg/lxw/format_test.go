package lxw

import "testing"

func TestFormatStyleFont(t *testing.T) {
	wb := tempWorkbook(t)
	f := wb.AddFormat()
	f.SetBold()
	f.SetItalic()
	f.SetFontName("Arial")
	f.SetFontSize(14)
	f.SetFontColor(0xFF0000)

	style := f.style()
	if style.Font == nil {
		t.Fatal("style.Font is nil")
	}
	if !style.Font.Bold || !style.Font.Italic {
		t.Error("bold/italic not carried into style")
	}
	if style.Font.Family != "Arial" {
		t.Errorf("font family = %q, want Arial", style.Font.Family)
	}
	if style.Font.Size != 14 {
		t.Errorf("font size = %v, want 14", style.Font.Size)
	}
	if style.Font.Color != "FF0000" {
		t.Errorf("font color = %q, want FF0000", style.Font.Color)
	}
}

func TestFormatNumFormat(t *testing.T) {
	wb := tempWorkbook(t)
	f := wb.AddFormat()
	f.SetNumFormat("#,##0.00")

	style := f.style()
	if style.CustomNumFmt == nil || *style.CustomNumFmt != "#,##0.00" {
		t.Errorf("custom num fmt = %v, want #,##0.00", style.CustomNumFmt)
	}

	f2 := wb.AddFormat()
	f2.SetNumFormatIndex(10)
	style2 := f2.style()
	if style2.NumFmt != 10 {
		t.Errorf("num fmt index = %d, want 10", style2.NumFmt)
	}
}

func TestFormatBgColorImpliesSolidPattern(t *testing.T) {
	wb := tempWorkbook(t)
	f := wb.AddFormat()
	f.SetBgColor(0x00FF00)

	style := f.style()
	if style.Fill.Type != "pattern" || style.Fill.Pattern != 1 {
		t.Errorf("fill = %+v, want solid pattern", style.Fill)
	}
	if len(style.Fill.Color) != 1 || style.Fill.Color[0] != "00FF00" {
		t.Errorf("fill color = %v, want [00FF00]", style.Fill.Color)
	}
}

func TestFormatBorders(t *testing.T) {
	wb := tempWorkbook(t)
	f := wb.AddFormat()
	f.SetBorder(BorderThin)
	f.SetBorderColor(0x0000FF)

	style := f.style()
	if len(style.Border) != 4 {
		t.Fatalf("border count = %d, want 4", len(style.Border))
	}
	for _, b := range style.Border {
		if b.Style != int(BorderThin) {
			t.Errorf("border %s style = %d, want %d", b.Type, b.Style, BorderThin)
		}
		if b.Color != "0000FF" {
			t.Errorf("border %s color = %q, want 0000FF", b.Type, b.Color)
		}
	}
}

func TestFormatAlign(t *testing.T) {
	wb := tempWorkbook(t)
	f := wb.AddFormat()
	f.SetAlign(AlignCenter)
	f.SetAlign(AlignVerticalCenter)

	style := f.style()
	if style.Alignment == nil {
		t.Fatal("style.Alignment is nil")
	}
	if style.Alignment.Horizontal != "center" {
		t.Errorf("horizontal = %q, want center", style.Alignment.Horizontal)
	}
	if style.Alignment.Vertical != "center" {
		t.Errorf("vertical = %q, want center", style.Alignment.Vertical)
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		color int64
		want  string
	}{
		{0x000000, "000000"},
		{0xFF6600, "FF6600"},
		{0xFFFFFF, "FFFFFF"},
	}
	for _, tt := range tests {
		if got := colorHex(tt.color); got != tt.want {
			t.Errorf("colorHex(%#x) = %q, want %q", tt.color, got, tt.want)
		}
	}
}
