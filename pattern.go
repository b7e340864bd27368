package typedio

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// compiledPattern is a day/month/year pattern translated to a Go layout.
//
// shape matches the text the pattern accepts, field widths included. It
// enforces widths the Go layout is lenient about, such as the two digits of
// HH, and locates the day of month for clamping.
type compiledPattern struct {
	goLayout string
	hasTime  bool
	shape    *regexp.Regexp
}

// dayGroup names the day-of-month field in compiledPattern.shape.
const dayGroup = "day"

// patternFields maps pattern letters, by repeat count, to Go layout elements.
// A count missing from a letter's table falls back to the largest count
// below it.
var patternFields = map[rune]map[int]string{
	'd': {1: "2", 2: "02"},
	'M': {1: "1", 2: "01", 3: "Jan", 4: "January"},
	'L': {1: "1", 2: "01", 3: "Jan", 4: "January"},
	'y': {1: "2006", 2: "06", 3: "2006"},
	'u': {1: "2006", 2: "06", 3: "2006"},
	'H': {1: "15", 2: "15"},
	'h': {1: "3", 2: "03"},
	'm': {1: "4", 2: "04"},
	's': {1: "5", 2: "05"},
	'a': {1: "PM"},
	'E': {1: "Mon", 4: "Monday"},
}

// timeLetters are the pattern letters that carry a time of day.
const timeLetters = "Hhmsa"

// layoutCollisions are literal fragments Go's time package would read as
// layout elements.
var layoutCollisions = []string{"Jan", "Mon", "MST", "PM", "pm", "Z07"}

// compilePattern translates a day/month/year pattern such as "dd/MM/yyyy"
// into a Go reference layout. Letters must be quoted to be used literally;
// '' is a single quote.
func compilePattern(pattern string) (compiledPattern, error) {
	var (
		layout  strings.Builder
		shape   strings.Builder
		literal strings.Builder
		result  compiledPattern
		hasDay  bool
	)
	runes := []rune(pattern)

	flush := func() error {
		text := literal.String()
		literal.Reset()
		if strings.ContainsAny(text, "0123456789") {
			return patternError(pattern, "digits in literal text %q", text)
		}
		for _, c := range layoutCollisions {
			if strings.Contains(text, c) {
				return patternError(pattern, "literal text %q is a layout element", text)
			}
		}
		layout.WriteString(text)
		shape.WriteString(regexp.QuoteMeta(text))
		return nil
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			end := i + 1
			if end < len(runes) && runes[end] == '\'' {
				literal.WriteRune('\'')
				i += 2
				continue
			}
			for end < len(runes) {
				if runes[end] == '\'' {
					if end+1 < len(runes) && runes[end+1] == '\'' {
						literal.WriteRune('\'')
						end += 2
						continue
					}
					break
				}
				literal.WriteRune(runes[end])
				end++
			}
			if end >= len(runes) {
				return compiledPattern{}, patternError(pattern, "unterminated quote")
			}
			i = end + 1
		case isPatternLetter(r):
			count := 1
			for i+count < len(runes) && runes[i+count] == r {
				count++
			}
			if err := flush(); err != nil {
				return compiledPattern{}, err
			}
			element, err := layoutElement(pattern, r, count, layout.String())
			if err != nil {
				return compiledPattern{}, err
			}
			layout.WriteString(element)
			fragment := elementShape(element, r, count)
			if r == 'd' && !hasDay {
				fragment = "(?P<" + dayGroup + ">" + fragment + ")"
				hasDay = true
			}
			shape.WriteString(fragment)
			if strings.ContainsRune(timeLetters, r) {
				result.hasTime = true
			}
			i += count
		default:
			literal.WriteRune(r)
			i++
		}
	}
	if err := flush(); err != nil {
		return compiledPattern{}, err
	}

	re, err := regexp.Compile("^" + shape.String() + "$")
	if err != nil {
		return compiledPattern{}, patternError(pattern, "%v", err)
	}
	result.goLayout = layout.String()
	result.shape = re
	return result, nil
}

// elementShape returns the regular expression for the text a layout element
// accepts.
func elementShape(element string, letter rune, count int) string {
	switch {
	case letter == 'H' && count >= 2:
		return `\d{2}`
	case element == "2006":
		return `\d{4}`
	case element == "PM":
		return `[A-Za-z]{2}`
	case strings.Trim(element, "0") == "":
		return `\d{` + strconv.Itoa(len(element)) + `}`
	case len(element) == 2 && element[0] == '0', element == "06":
		return `\d{2}`
	case len(element) <= 2:
		return `\d{1,2}`
	default:
		return `[A-Za-z]+`
	}
}

// parse parses s with the pattern.
//
// A day past the end of its month, up to 31, resolves to the last day of
// that month: 30/02/2000 is 29 February 2000 and 31/04/2021 is 30 April 2021.
func (p compiledPattern) parse(s string) (time.Time, error) {
	if !p.shape.MatchString(s) {
		return time.Time{}, errors.Newf("text does not match layout %q", p.goLayout)
	}
	t, err := time.Parse(p.goLayout, s)
	if err == nil {
		return t, nil
	}
	if clamped, ok := p.clampDay(s, err); ok {
		return clamped, nil
	}
	return time.Time{}, err
}

func (p compiledPattern) clampDay(s string, parseErr error) (time.Time, bool) {
	var perr *time.ParseError
	if !errors.As(parseErr, &perr) || perr.Message != ": day out of range" {
		return time.Time{}, false
	}
	group := p.shape.SubexpIndex(dayGroup)
	match := p.shape.FindStringSubmatchIndex(s)
	if group < 0 || match == nil || match[2*group] < 0 {
		return time.Time{}, false
	}
	start, end := match[2*group], match[2*group+1]
	day, err := strconv.Atoi(s[start:end])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}

	// Parse again on the first of the month to learn the month and year.
	first := s[:start] + strings.Repeat("0", end-start-1) + "1" + s[end:]
	t, err := time.Parse(p.goLayout, first)
	if err != nil {
		return time.Time{}, false
	}
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day <= last {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), last, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()), true
}

func layoutElement(pattern string, letter rune, count int, before string) (string, error) {
	if letter == 'S' {
		if !strings.HasSuffix(before, ".") && !strings.HasSuffix(before, ",") {
			return "", patternError(pattern, "fraction of second must follow '.' or ','")
		}
		if count > 9 {
			return "", patternError(pattern, "more than 9 fraction digits")
		}
		return strings.Repeat("0", count), nil
	}

	widths, ok := patternFields[letter]
	if !ok {
		return "", patternError(pattern, "unsupported pattern letter %q", letter)
	}
	for n := count; n > 0; n-- {
		if element, ok := widths[n]; ok {
			if n != count && count > 4 {
				break
			}
			return element, nil
		}
	}
	return "", patternError(pattern, "unsupported width %d for pattern letter %q", count, letter)
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func patternError(pattern, format string, args ...any) error {
	return errors.Mark(
		errors.Wrapf(errors.Newf(format, args...), "pattern %q", pattern),
		ErrPattern)
}
