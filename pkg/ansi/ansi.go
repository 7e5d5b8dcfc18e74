// Package ansi converts legacy-codepage ("ANSI") encoded strings to
// UTF-8 at the library boundary. LabVIEW hands strings to a DLL in the
// platform's active codepage; the spreadsheet engine requires UTF-8.
//
// Conversion is best effort: when a string cannot be converted the
// caller is expected to fall back to the original bytes rather than
// fail the operation.
package ansi

import (
	"os"
	"strconv"
	"sync/atomic"

	"golang.org/x/text/encoding/charmap"
)

// legacyConvert is the platform conversion stage, selected at build
// time. Replaceable in tests to exercise the failure path.
var legacyConvert = convertLegacy

// codePage is an explicit codepage override for platforms without a
// system ANSI codepage. Zero means unset.
var codePage atomic.Int32

func init() {
	if v := os.Getenv("LVXLSX_CODEPAGE"); v != "" {
		if cp, err := strconv.Atoi(v); err == nil {
			SetCodePage(cp)
		}
	}
}

// SetCodePage selects the legacy codepage assumed for input strings on
// platforms where the system does not define one. On Windows the
// system ANSI codepage is always used and this setting is ignored.
func SetCodePage(cp int) {
	codePage.Store(int32(cp))
}

// ToUTF8 converts a possibly legacy-encoded string to UTF-8.
//
// It returns ("", false) for empty input or when conversion fails; the
// caller must then use the original string unchanged. On success the
// returned string is always an independent copy, so the contract is
// uniform across platforms.
func ToUTF8(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	return legacyConvert(s)
}

// charmapFor maps a Windows codepage number to its character map.
// Returns nil for codepages without a single-byte table.
func charmapFor(cp int) *charmap.Charmap {
	switch cp {
	case 437:
		return charmap.CodePage437
	case 850:
		return charmap.CodePage850
	case 852:
		return charmap.CodePage852
	case 866:
		return charmap.CodePage866
	case 874:
		return charmap.Windows874
	case 1250:
		return charmap.Windows1250
	case 1251:
		return charmap.Windows1251
	case 1252:
		return charmap.Windows1252
	case 1253:
		return charmap.Windows1253
	case 1254:
		return charmap.Windows1254
	case 1255:
		return charmap.Windows1255
	case 1256:
		return charmap.Windows1256
	case 1257:
		return charmap.Windows1257
	case 1258:
		return charmap.Windows1258
	case 28591:
		return charmap.ISO8859_1
	case 28592:
		return charmap.ISO8859_2
	case 28595:
		return charmap.ISO8859_5
	case 28599:
		return charmap.ISO8859_9
	case 28605:
		return charmap.ISO8859_15
	default:
		return nil
	}
}
