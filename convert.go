package typedio

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// Conversion functions for Read and ReadFunc. Each one turns the content of
// a single line into a value or reports an error marked with ErrConversion.

// ParseInt parses a base-10 32-bit signed integer.
func ParseInt(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, conversionError("int", s, err)
	}
	return int32(n), nil
}

// ParseLong parses a base-10 64-bit signed integer.
func ParseLong(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, conversionError("long", s, err)
	}
	return n, nil
}

// ParseInt8 parses a base-10 8-bit signed integer.
func ParseInt8(s string) (int8, error) {
	n, err := strconv.ParseInt(s, 10, 8)
	if err != nil {
		return 0, conversionError("int8", s, err)
	}
	return int8(n), nil
}

// ParseInt16 parses a base-10 16-bit signed integer.
func ParseInt16(s string) (int16, error) {
	n, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, conversionError("int16", s, err)
	}
	return int16(n), nil
}

// ParseBigInt parses a base-10 integer of any magnitude.
func ParseBigInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, conversionError("bigint", s, nil)
	}
	return n, nil
}

// ParseBigDecimal parses an exact decimal number and keeps its scale, so
// that Text('f') reproduces the input: "-10000000.0000000" stays
// "-10000000.0000000". NaN and infinities are rejected.
func ParseBigDecimal(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, conversionError("decimal", s, err)
	}
	if d.Form != apd.Finite {
		return nil, conversionError("decimal", s, errors.New("not a finite number"))
	}
	if d.IsZero() {
		// Zero has no sign: "-0.0" reads as "0.0".
		d.Negative = false
	}
	return d, nil
}

// ParseDouble parses a decimal or scientific floating-point number.
// Surrounding whitespace is ignored, a trailing d or f type suffix is
// dropped and values beyond the float64 range become infinities. Special
// values are spelled "NaN" and "Infinity", optionally signed.
func ParseDouble(s string) (float64, error) {
	f, err := parseFloat(s, 64)
	if err != nil {
		return 0, conversionError("double", s, err)
	}
	return f, nil
}

// ParseFloat parses a decimal or scientific floating-point number with
// float32 precision, with the same rules as ParseDouble.
func ParseFloat(s string) (float32, error) {
	f, err := parseFloat(s, 32)
	if err != nil {
		return 0, conversionError("float", s, err)
	}
	return float32(f), nil
}

func parseFloat(s string, bitSize int) (float64, error) {
	s = strings.TrimSpace(s)
	if n := len(s); n > 1 && strings.ContainsRune("dDfF", rune(s[n-1])) && strings.ContainsRune("0123456789.", rune(s[n-2])) {
		s = s[:n-1]
	}

	f, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		if unsigned := strings.TrimLeft(s, "+-"); unsigned != "Infinity" && unsigned != "NaN" {
			return 0, errors.Newf("unsupported spelling %q", s)
		}
	}
	return f, nil
}

// ParseBool reports whether s equals "true", ignoring case. Any other text
// is false; it never fails.
func ParseBool(s string) (bool, error) {
	return strings.EqualFold(s, "true"), nil
}

// ParseString returns the line unchanged.
func ParseString(s string) (string, error) {
	return s, nil
}

var (
	defaultDateParser     = DateParser(DefaultDatePattern)
	defaultDateTimeParser = DateTimeParser(DefaultDateTimePattern)
)

// ParseDate parses a calendar date in DefaultDatePattern.
func ParseDate(s string) (time.Time, error) {
	return defaultDateParser(s)
}

// ParseDateTime parses a date and time in DefaultDateTimePattern.
func ParseDateTime(s string) (time.Time, error) {
	return defaultDateTimeParser(s)
}

// DateParser returns a conversion for calendar dates in the given
// day/month/year pattern. The result is midnight UTC of that date.
//
// An invalid pattern is not reported here: every conversion fails with
// ErrPattern instead.
func DateParser(pattern string) func(string) (time.Time, error) {
	layout, err := compilePattern(pattern)
	return func(s string) (time.Time, error) {
		if err != nil {
			return time.Time{}, err
		}
		t, perr := layout.parse(s)
		if perr != nil {
			return time.Time{}, conversionError("date", s, perr)
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
}

// DateTimeParser returns a conversion for date-times in the given pattern.
// The pattern must contain an hour field. Results are in UTC.
func DateTimeParser(pattern string) func(string) (time.Time, error) {
	layout, err := compilePattern(pattern)
	if err == nil && !layout.hasTime {
		err = errors.Mark(errors.Newf("pattern %q has no hour field", pattern), ErrPattern)
	}
	return func(s string) (time.Time, error) {
		if err != nil {
			return time.Time{}, err
		}
		t, perr := layout.parse(s)
		if perr != nil {
			return time.Time{}, conversionError("datetime", s, perr)
		}
		return t, nil
	}
}

func conversionError(kind, input string, cause error) error {
	if cause == nil {
		return errors.Mark(errors.Newf("cannot parse %q as %s", input, kind), ErrConversion)
	}
	return errors.Mark(errors.Wrapf(cause, "cannot parse %q as %s", input, kind), ErrConversion)
}
