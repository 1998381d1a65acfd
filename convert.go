// File: argsparser/convert.go

package argsparser

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	trueValue  = "true"
	falseValue = "false"
)

// Char is a single character value. It is distinct from rune and byte so that
// numeric values and characters convert differently.
type Char rune

// Scalar lists every type a value can be converted to or from.
// Slices are intentionally absent, so a list can never be a default.
type Scalar interface {
	string | bool | Char |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

type signed interface {
	int | int8 | int16 | int32 | int64
}

type unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64
}

type float interface {
	float32 | float64
}

// FormatValue returns the canonical string form of v.
// Numbers use a locale independent decimal form that ParseValue reads back exactly.
func FormatValue[T Scalar](v T) string {
	switch x := any(v).(type) {
	case string:
		return x
	case bool:
		if x {
			return trueValue
		}
		return falseValue
	case Char:
		// Surrogates and out of range values have no UTF-8 form
		if !utf8.ValidRune(rune(x)) {
			return ""
		}
		return string(rune(x))
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	}
	// Unreachable: Scalar is a closed set.
	return ""
}

// ParseValue converts s to T. The whole of s must be consumed; surrounding
// whitespace is not tolerated. Failures wrap ErrConversion and quote s.
func ParseValue[T Scalar](s string) (T, error) {
	var zero T
	var (
		out any
		err error
	)

	switch any(zero).(type) {
	case string:
		out = s
	case bool:
		out, err = parseBool(s)
	case Char:
		out, err = parseChar(s)
	case int:
		out, err = parseSigned[int](s, strconv.IntSize)
	case int8:
		out, err = parseSigned[int8](s, 8)
	case int16:
		out, err = parseSigned[int16](s, 16)
	case int32:
		out, err = parseSigned[int32](s, 32)
	case int64:
		out, err = parseSigned[int64](s, 64)
	case uint:
		out, err = parseUnsigned[uint](s, strconv.IntSize)
	case uint8:
		out, err = parseUnsigned[uint8](s, 8)
	case uint16:
		out, err = parseUnsigned[uint16](s, 16)
	case uint32:
		out, err = parseUnsigned[uint32](s, 32)
	case uint64:
		out, err = parseUnsigned[uint64](s, 64)
	case float32:
		out, err = parseFloat[float32](s, 32)
	case float64:
		out, err = parseFloat[float64](s, 64)
	}

	if err != nil {
		return zero, err
	}
	return out.(T), nil
}

// formatFloat renders +Inf as "Inf", since a leading '+' does not parse back.
func formatFloat(f float64, bitSize int) string {
	return strings.TrimPrefix(strconv.FormatFloat(f, 'g', -1, bitSize), "+")
}

func parseBool(s string) (bool, error) {
	switch s {
	case trueValue:
		return true, nil
	case falseValue:
		return false, nil
	}
	return false, newError(ErrConversion,
		"Invalid value [%s] to parse to bool, expected values:[%s / %s].", s, trueValue, falseValue)
}

func parseChar(s string) (Char, error) {
	if !utf8.ValidString(s) {
		return 0, newError(ErrConversion, "Can't convert [%s], invalid UTF-8 to char", s)
	}
	if n := utf8.RuneCountInString(s); n != 1 {
		return 0, newError(ErrConversion, "Can't convert [%s], size: [%d] to char", s, n)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Char(r), nil
}

func parseSigned[N signed](s string, bitSize int) (N, error) {
	if !plainNumber(s) {
		return 0, numericError(s)
	}
	i, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return 0, numericError(s)
	}
	return N(i), nil
}

func parseUnsigned[N unsigned](s string, bitSize int) (N, error) {
	if !plainNumber(s) {
		return 0, numericError(s)
	}
	u, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, numericError(s)
	}
	return N(u), nil
}

func parseFloat[N float](s string, bitSize int) (N, error) {
	if !plainNumber(s) || strings.ContainsAny(s, "xX_") {
		return 0, numericError(s)
	}
	f, err := strconv.ParseFloat(s, bitSize)
	if err != nil || (f == 0 && underflows(s)) {
		return 0, numericError(s)
	}
	return N(f), nil
}

// underflows reports whether s has a non-zero mantissa, so a zero result means
// the value was too small for the target and got flushed.
func underflows(s string) bool {
	mantissa := s
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]
	}
	return strings.ContainsAny(mantissa, "123456789")
}

// plainNumber rejects input strconv would accept but a strict decimal parse does not.
func plainNumber(s string) bool {
	return s != "" && s[0] != '+'
}

func numericError(s string) error {
	return newError(ErrConversion, "Invalid string [%s] to convert to numeric type", s)
}
