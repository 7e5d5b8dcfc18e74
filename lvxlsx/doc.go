// Package main exports the xlsx writer as a C library for LabVIEW.
//
// Build a shared library like this:
//
//	go build -buildmode=c-shared -o lvxlsx.dll github.com/lvxlsx/lvxlsx/lvxlsx
//
// The build also generates a lvxlsx.h header; the hand-maintained
// include/libxlsxwriter_lv.h carries the same surface with the flat
// types LabVIEW's Import Shared Library wizard understands.
//
// Objects never cross the boundary as pointers. Every workbook,
// worksheet, chart, series, axis and format is registered in a handle
// table and addressed by an integer token, so a caller holding a
// stale or fabricated handle gets an error code instead of a crash.
//
// Two families of string-taking entry points are exported. The plain
// family expects UTF-8. The -lv family converts each incoming string
// from the host's ANSI code page first and falls back to the original
// bytes when conversion fails, so text reaches the file either
// correctly decoded or exactly as the host sent it.
package main

func main() {}
