//go:build !windows

package ansi

import "strings"

// convertLegacy on non-Windows platforms. Native strings are normally
// UTF-8 already, so the default is an identity copy. When a codepage
// has been configured explicitly the string is decoded through the
// matching character map instead, which keeps LabVIEW-sourced files
// readable when generated off Windows.
func convertLegacy(s string) (string, bool) {
	if cp := int(codePage.Load()); cp != 0 {
		cm := charmapFor(cp)
		if cm == nil {
			return "", false
		}
		out, err := cm.NewDecoder().String(s)
		if err != nil {
			return "", false
		}
		return out, true
	}
	return strings.Clone(s), true
}
