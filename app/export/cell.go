package export

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// excelEpoch is the base of Excel's 1900 date system. Day 1 is 1900-01-01,
// and the off-by-two accounts for the fictional 1900-02-29.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// serialDateMin/Max bound the serial-number window that is treated as a date.
// 30000 is mid-1982, 70000 is year 2091; anything outside is a plain number.
const (
	serialDateMin = 30000.0
	serialDateMax = 70000.0
)

// formatCellValue renders a raw cell value the way the exported JSON expects
// it. Raw numeric values inside the date window become dates (with a time
// part when the serial has a fractional day), other integral numbers lose
// their decimal point, and everything else passes through verbatim.
func formatCellValue(raw string) string {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}

	if f > serialDateMin && f < serialDateMax {
		days := math.Trunc(f)
		seconds := math.Round((f - days) * 86400)
		t := excelEpoch.Add(time.Duration(days)*24*time.Hour + time.Duration(seconds)*time.Second)
		if seconds == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04:05")
	}

	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return fmt.Sprintf("%v", f)
}
