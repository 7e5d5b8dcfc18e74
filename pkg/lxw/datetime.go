package lxw

import "time"

// DateTime mirrors the boundary's date/time cluster. Fields are
// calendar values, not offsets; Sec may carry fractional seconds.
type DateTime struct {
	Year  int32
	Month int32
	Day   int32
	Hour  int32
	Min   int32
	Sec   float64
}

// Time converts the cluster to a time.Time in UTC. A zero date
// (0-0-0) represents a time-only value on Excel's day zero.
func (dt DateTime) Time() time.Time {
	year, month, day := int(dt.Year), time.Month(dt.Month), int(dt.Day)
	if dt.Year == 0 && dt.Month == 0 && dt.Day == 0 {
		year, month, day = 1899, 12, 31
	}
	sec := int(dt.Sec)
	nsec := int((dt.Sec - float64(sec)) * 1e9)
	return time.Date(year, month, day, int(dt.Hour), int(dt.Min), sec, nsec, time.UTC)
}

// Excel serial date epochs. The 1900 epoch base is 1899-12-30 so that
// serial 1 is 1900-01-01 and Excel's fictitious 1900-02-29 is
// absorbed for dates from March 1900 on.
var (
	epoch1900 = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	epoch1904 = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// DateTimeToExcel converts a date/time cluster to an Excel serial
// number in the 1900 date system, mirroring
// lxw_datetime_to_excel_datetime.
func DateTimeToExcel(dt DateTime) float64 {
	return serialFrom(dt.Time(), false)
}

// UnixTimeToExcelDate converts seconds since the Unix epoch to a whole
// Excel serial date in the 1900 system.
func UnixTimeToExcelDate(unixtime int64) int32 {
	return int32(serialFrom(time.Unix(unixtime, 0).UTC(), false))
}

// UnixTimeToExcelDateEpoch converts seconds since the Unix epoch to an
// Excel serial number in either date system.
func UnixTimeToExcelDateEpoch(unixtime int64, is1904 bool) float64 {
	return serialFrom(time.Unix(unixtime, 0).UTC(), is1904)
}

func serialFrom(t time.Time, is1904 bool) float64 {
	epoch := epoch1900
	if is1904 {
		epoch = epoch1904
	}
	days := t.Sub(epoch).Hours() / 24
	if !is1904 && days < 61 {
		// Dates before 1900-03-01 sit one short of Excel's buggy
		// serial sequence.
		days--
	}
	return days
}
