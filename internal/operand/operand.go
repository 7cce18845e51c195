// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package operand converts operator text into numeric operands and renders
// numbers back into their natural text form.
//
// Accepted literals: optionally signed integers and decimals, exponent
// notation, inf/infinity/nan in any case, and single underscores between
// digits. Rendering uses the shortest round-trip digits, fixed notation for
// decimal exponents in [-4, 16) and scientific notation otherwise.
package operand

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidNumericInput reports operator text that is not a numeric literal.
var ErrInvalidNumericInput = errors.New("invalid numeric input")

const (
	minFixedExp = -4
	maxFixedExp = 16
)

// Parse converts text into a float64. Surrounding whitespace is ignored.
// Literals beyond the float64 range parse to ±Inf without error.
func Parse(text string) (float64, error) {
	lit, ok := normalize(strings.TrimSpace(text))
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumericInput, text)
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumericInput, text)
	}
	return f, nil
}

// normalize rewrites s into a literal strconv.ParseFloat accepts, rejecting
// the forms ParseFloat allows but operators should not use.
func normalize(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	sign, body := "", s
	if body[0] == '+' || body[0] == '-' {
		sign, body = body[:1], body[1:]
	}

	// ParseFloat does not accept a sign on nan.
	if strings.EqualFold(body, "nan") {
		return "nan", true
	}

	if len(body) > 1 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		return "", false
	}

	if strings.IndexByte(body, '_') >= 0 {
		for i := 0; i < len(body); i++ {
			if body[i] != '_' {
				continue
			}
			if i == 0 || i == len(body)-1 || !isDigit(body[i-1]) || !isDigit(body[i+1]) {
				return "", false
			}
		}
		body = strings.ReplaceAll(body, "_", "")
	}

	return sign + body, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Format renders f in its natural numeric text form: 3 is "3.0", 1e16 is
// "1e+16", 0.00001 is "1e-05", and the special values are "inf", "-inf" and
// "nan".
func Format(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < minFixedExp || exp >= maxFixedExp {
		return sci
	}

	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(fixed, '.') {
		fixed += ".0"
	}
	return fixed
}
