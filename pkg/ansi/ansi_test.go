//go:build !windows

package ansi

import "testing"

func TestToUTF8EmptyInput(t *testing.T) {
	if out, ok := ToUTF8(""); ok || out != "" {
		t.Errorf("ToUTF8(\"\") = (%q, %v), want (\"\", false)", out, ok)
	}
}

func TestToUTF8IdentityCopy(t *testing.T) {
	SetCodePage(0)
	defer SetCodePage(0)

	in := "plain ascii"
	out, ok := ToUTF8(in)
	if !ok {
		t.Fatal("ToUTF8 reported no conversion for non-empty input")
	}
	if out != in {
		t.Errorf("ToUTF8(%q) = %q, want identical content", in, out)
	}
}

func TestToUTF8ConfiguredCodepage(t *testing.T) {
	SetCodePage(1252)
	defer SetCodePage(0)

	// 0xE9 is é in Windows-1252, 0x80 is the euro sign.
	in := "caf\xe9 \x80"
	out, ok := ToUTF8(in)
	if !ok {
		t.Fatal("ToUTF8 reported no conversion")
	}
	if out != "café €" {
		t.Errorf("ToUTF8(%q) = %q, want %q", in, out, "café €")
	}
}

func TestToUTF8CyrillicCodepage(t *testing.T) {
	SetCodePage(1251)
	defer SetCodePage(0)

	// "Да" in Windows-1251.
	out, ok := ToUTF8("\xc4\xe0")
	if !ok || out != "Да" {
		t.Errorf("ToUTF8 = (%q, %v), want (\"Да\", true)", out, ok)
	}
}

func TestToUTF8UnknownCodepageFallsBack(t *testing.T) {
	SetCodePage(9999)
	defer SetCodePage(0)

	if out, ok := ToUTF8("data"); ok || out != "" {
		t.Errorf("ToUTF8 with unknown codepage = (%q, %v), want (\"\", false)", out, ok)
	}
}

func TestToUTF8FailureReportsNoConversion(t *testing.T) {
	orig := legacyConvert
	legacyConvert = func(string) (string, bool) { return "", false }
	defer func() { legacyConvert = orig }()

	if out, ok := ToUTF8("anything"); ok || out != "" {
		t.Errorf("ToUTF8 with failing stage = (%q, %v), want (\"\", false)", out, ok)
	}
}

func TestCharmapFor(t *testing.T) {
	tests := []struct {
		cp    int
		known bool
	}{
		{1250, true},
		{1252, true},
		{28591, true},
		{437, true},
		{0, false},
		{65001, false},
	}
	for _, tt := range tests {
		got := charmapFor(tt.cp)
		if (got != nil) != tt.known {
			t.Errorf("charmapFor(%d) known = %v, want %v", tt.cp, got != nil, tt.known)
		}
	}
}
