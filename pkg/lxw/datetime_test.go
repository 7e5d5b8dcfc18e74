package lxw

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDateTimeToExcel(t *testing.T) {
	tests := []struct {
		name string
		dt   DateTime
		want float64
	}{
		{"first serial day", DateTime{Year: 1900, Month: 1, Day: 1}, 1},
		{"before leap bug", DateTime{Year: 1900, Month: 2, Day: 28}, 59},
		{"after leap bug", DateTime{Year: 1900, Month: 3, Day: 1}, 61},
		{"y2k", DateTime{Year: 2000, Month: 1, Day: 1}, 36526},
		{"with time", DateTime{Year: 2000, Month: 1, Day: 1, Hour: 12}, 36526.5},
		{"time only", DateTime{Hour: 6}, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateTimeToExcel(tt.dt); !almostEqual(got, tt.want) {
				t.Errorf("DateTimeToExcel(%+v) = %v, want %v", tt.dt, got, tt.want)
			}
		})
	}
}

func TestUnixTimeToExcelDate(t *testing.T) {
	// 2000-01-01T00:00:00Z
	if got := UnixTimeToExcelDate(946684800); got != 36526 {
		t.Errorf("UnixTimeToExcelDate(946684800) = %d, want 36526", got)
	}
	// The Unix epoch itself.
	if got := UnixTimeToExcelDate(0); got != 25569 {
		t.Errorf("UnixTimeToExcelDate(0) = %d, want 25569", got)
	}
}

func TestUnixTimeToExcelDateEpoch(t *testing.T) {
	// 1904 date system serials sit 1462 days behind the 1900 system.
	got1900 := UnixTimeToExcelDateEpoch(946684800, false)
	got1904 := UnixTimeToExcelDateEpoch(946684800, true)
	if !almostEqual(got1900-got1904, 1462) {
		t.Errorf("1900/1904 serial difference = %v, want 1462", got1900-got1904)
	}
}
