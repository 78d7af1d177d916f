// SPDX-License-Identifier: MIT

package dual

import (
	"math"
	"strconv"
	"strings"
)

// Parse reads the primal value of a constant Dual from s in the given radix.
//
// Radix 10 delegates to strconv.ParseFloat for plain decimal syntax
// (optional exponent, "inf", "infinity", "nan"). Go literal extensions that
// ParseFloat would otherwise accept, hexadecimal floats ("0x1p-2") and digit
// separators ("1_000"), are rejected with strconv.ErrSyntax. Radix 2..36
// accepts
//
//	[+-]digits[.digits] | [+-]inf | [+-]infinity | nan
//
// with digits 0-9a-z (case-insensitive); there is no exponent form. The
// inf/nan spellings win over digits in radices where they would be numbers.
//
// Errors:
//   - The scalar parser's *strconv.NumError, returned unchanged.
//   - A *strconv.NumError wrapping strconv.ErrSyntax for Go-only literal forms.
//   - ErrInvalidRadix for a radix outside [2, 36].
func Parse[T Scalar, D Dim](s string, radix int) (Dual[T, D], error) {
	v, err := parseScalar[T](s, radix)
	if err != nil {
		return Dual[T, D]{}, err
	}

	return NewConst[T, D](v), nil
}

// ParseHyper is Parse for HyperDual.
func ParseHyper[T Scalar, D Dim](s string, radix int) (HyperDual[T, D], error) {
	v, err := parseScalar[T](s, radix)
	if err != nil {
		return HyperDual[T, D]{}, err
	}

	return NewHyperConst[T, D](v), nil
}

func parseScalar[T Scalar](s string, radix int) (T, error) {
	if radix < 2 || radix > 36 {
		return 0, dualErrorf("Parse", ErrInvalidRadix)
	}
	if radix == 10 {
		if goLiteralOnly(s) {
			return 0, syntaxError(s)
		}
		v, err := strconv.ParseFloat(s, bitSize[T]())
		if err != nil {
			return 0, err
		}
		return T(v), nil
	}

	return parseRadix[T](s, radix)
}

// parseRadix parses a sign, an integer part and an optional fraction in
// radix r. Failures are reported the way strconv.ParseFloat reports them.
func parseRadix[T Scalar](s string, r int) (T, error) {
	body, neg := s, false
	if body != "" && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}
	switch strings.ToLower(body) {
	case "inf", "infinity":
		if neg {
			return T(math.Inf(-1)), nil
		}
		return T(math.Inf(1)), nil
	case "nan":
		if s != body { // signed NaN is not accepted
			return 0, syntaxError(s)
		}
		return T(math.NaN()), nil
	}

	intPart, fracPart, hasDot := strings.Cut(body, ".")
	if intPart == "" && fracPart == "" {
		return 0, syntaxError(s)
	}

	var (
		v     float64
		d     int
		ok    bool
		scale = 1.0
	)
	for i := 0; i < len(intPart); i++ {
		if d, ok = digitValue(intPart[i], r); !ok {
			return 0, syntaxError(s)
		}
		v = v*float64(r) + float64(d)
	}
	if hasDot {
		for i := 0; i < len(fracPart); i++ {
			if d, ok = digitValue(fracPart[i], r); !ok {
				return 0, syntaxError(s)
			}
			scale /= float64(r)
			v += float64(d) * scale
		}
	}
	if neg {
		v = -v
	}

	out := T(v)
	if math.IsInf(float64(out), 0) {
		return out, &strconv.NumError{Func: "ParseFloat", Num: strings.Clone(s), Err: strconv.ErrRange}
	}

	return out, nil
}

// goLiteralOnly reports syntax that strconv.ParseFloat accepts only because
// it is valid in Go source: a 0x/0X prefix or an underscore separator.
func goLiteralOnly(s string) bool {
	body := strings.TrimLeft(s, "+-")
	if len(body) >= 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		return true
	}

	return strings.IndexByte(s, '_') >= 0
}

// syntaxError reports s the way strconv.ParseFloat reports malformed input.
func syntaxError(s string) error {
	return &strconv.NumError{Func: "ParseFloat", Num: strings.Clone(s), Err: strconv.ErrSyntax}
}

// digitValue maps c to its value in radix r.
func digitValue(c byte, r int) (int, bool) {
	var d int
	switch {
	case '0' <= c && c <= '9':
		d = int(c - '0')
	case 'a' <= c && c <= 'z':
		d = int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	if d >= r {
		return 0, false
	}

	return d, true
}
