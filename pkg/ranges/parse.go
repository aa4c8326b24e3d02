package ranges

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/henderiw/contrange/pkg/value"
)

// Parse builds a Range from the textual notation, e.g. "[0, 5)" or
// "(-inf, 3]". Both endpoints are parsed as integers when possible,
// as floats otherwise; "inf" and "-inf" leave a side unbounded. The
// result is indistinguishable from direct construction.
func Parse(s string) (Range, error) {
	var r Range
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return r, fmt.Errorf("invalid range notation %q", s)
	}
	var startInc, endInc bool
	switch s[0] {
	case '[':
		startInc = true
	case '(':
	default:
		return r, fmt.Errorf("invalid lower bound in range %q", s)
	}
	switch s[len(s)-1] {
	case ']':
		endInc = true
	case ')':
	default:
		return r, fmt.Errorf("invalid upper bound in range %q", s)
	}
	body := s[1 : len(s)-1]
	h := strings.IndexByte(body, ',')
	if h == -1 {
		return r, fmt.Errorf("no comma in range %q", s)
	}
	start, end, err := parseEndpoints(strings.TrimSpace(body[:h]), strings.TrimSpace(body[h+1:]))
	if err != nil {
		return r, fmt.Errorf("invalid endpoint in range %q: %w", s, err)
	}
	return NewBounds(start, end, startInc, endInc), nil
}

// MustParse is Parse for static notation, panicking on invalid input.
func MustParse(s string) Range {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// parseEndpoints resolves both endpoints together so "[0, 5.5)" puts
// both sides in the float domain rather than mixing domains.
func parseEndpoints(from, to string) (value.Value, value.Value, error) {
	start, sentStart := parseSentinel(from)
	end, sentEnd := parseSentinel(to)
	if sentStart && sentEnd {
		return start, end, nil
	}
	si, errSI := strconv.ParseInt(from, 10, 64)
	ei, errEI := strconv.ParseInt(to, 10, 64)
	if (sentStart || errSI == nil) && (sentEnd || errEI == nil) {
		if !sentStart {
			start = value.Int(si)
		}
		if !sentEnd {
			end = value.Int(ei)
		}
		return start, end, nil
	}
	sf, errSF := strconv.ParseFloat(from, 64)
	ef, errEF := strconv.ParseFloat(to, 64)
	if (sentStart || errSF == nil) && (sentEnd || errEF == nil) {
		if !sentStart {
			start = value.Float(sf)
		}
		if !sentEnd {
			end = value.Float(ef)
		}
		return start, end, nil
	}
	return nil, nil, fmt.Errorf("cannot parse %q, %q", from, to)
}

func parseSentinel(s string) (value.Value, bool) {
	switch s {
	case "-inf":
		return value.NegInf, true
	case "inf", "+inf":
		return value.Inf, true
	}
	return nil, false
}

// IntRange returns [start, end) over the integer domain.
func IntRange(start, end int64) Range {
	return New(value.Int(start), value.Int(end))
}

// FloatRange returns [start, end) over the float domain.
func FloatRange(start, end float64) Range {
	return New(value.Float(start), value.Float(end))
}
