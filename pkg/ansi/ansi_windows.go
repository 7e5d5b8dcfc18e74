//go:build windows

package ansi

import (
	"unicode/utf16"

	"golang.org/x/sys/windows"
)

// CP_ACP, the system default ANSI codepage.
const cpACP = 0

// convertLegacy performs the two-stage Windows conversion: ANSI to
// UTF-16 through MultiByteToWideChar, then UTF-16 to UTF-8 in Go. Each
// stage is queried for the required length before converting into a
// sized buffer, and a failure at either stage reports no conversion so
// the caller falls back to the original bytes.
func convertLegacy(s string) (string, bool) {
	b := []byte(s)

	n, err := windows.MultiByteToWideChar(cpACP, 0, &b[0], int32(len(b)), nil, 0)
	if err != nil || n == 0 {
		return "", false
	}

	wide := make([]uint16, n)
	n, err = windows.MultiByteToWideChar(cpACP, 0, &b[0], int32(len(b)), &wide[0], n)
	if err != nil || n == 0 {
		return "", false
	}

	return string(utf16.Decode(wide[:n])), true
}
