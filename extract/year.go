package extract

import (
	"math"
	"strconv"
	"strings"

	"github.com/camilacod/DataVizVastProject/errors"
)

// ParseYear coerces a raw date attribute to a number the way a lenient
// to-numeric conversion does. Missing or non-numeric values return an
// error wrapping errors.ErrDataQuality; callers exclude the record.
func ParseYear(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errors.NewDataQualityError("missing year")
	}
	// ParseFloat also takes hex floats ("0x7D0p0"), which are not decimal years
	if strings.ContainsAny(s, "xXpP") {
		return 0, errors.NewDataQualityError("year %q is not numeric", raw)
	}
	year, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(year) || math.IsInf(year, 0) {
		return 0, errors.NewDataQualityError("year %q is not numeric", raw)
	}
	return year, nil
}

// Decade buckets a year as floor(year/10)*10
func Decade(year float64) int {
	return int(math.Floor(year/10)) * 10
}
