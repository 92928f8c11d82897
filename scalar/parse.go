package scalar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseReal parses a finite decimal literal such as "3", "-2.5" or "1e-3".
func ParseReal(s string) (Real, error) {
	v, err := parseFinite(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	return Real(v), nil
}

// ParseComplex parses a complex literal made of at most one real term and
// at most one imaginary term, in either order. Whitespace is ignored.
// The imaginary unit may stand before or after its coefficient:
//
//	"3"  "i"  "-i"  "2i"  "i2"  "1 + i"  "1 - 2i"  "-i3 + 4"  "1e3-i"
//
// A bare "i" has coefficient 1.
func ParseComplex(s string) (Complex, error) {
	compact := strings.Join(strings.Fields(s), "")
	if compact == "" {
		return Complex{}, fmt.Errorf("%w: empty", ErrSyntax)
	}

	var (
		out          Complex
		seenR, seenC bool
	)
	for _, term := range splitTerms(compact) {
		imag, coef, ok := imaginaryCoefficient(term)
		if !ok {
			return Complex{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		if imag {
			if seenC {
				return Complex{}, fmt.Errorf("%w: %q: repeated imaginary term", ErrSyntax, s)
			}
			seenC = true
			out.C = coef
			continue
		}
		if seenR {
			return Complex{}, fmt.Errorf("%w: %q: repeated real term", ErrSyntax, s)
		}
		seenR = true
		out.R = coef
	}

	return out, nil
}

// splitTerms cuts s before every '+' or '-' that is not the leading sign and
// not the sign of an exponent ("1e-3").
func splitTerms(s string) []string {
	var terms []string
	start := 0
	for k := 1; k < len(s); k++ {
		if s[k] != '+' && s[k] != '-' {
			continue
		}
		if prev := s[k-1]; prev == 'e' || prev == 'E' {
			continue
		}
		terms = append(terms, s[start:k])
		start = k
	}

	return append(terms, s[start:])
}

// imaginaryCoefficient classifies a single signed term.
// It returns imag=true when the term carries the unit 'i', and the numeric
// coefficient (with sign) in both cases.
func imaginaryCoefficient(term string) (imag bool, coef float64, ok bool) {
	sign := 1.0
	body := term
	if body != "" && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = -1
		}
		body = body[1:]
	}
	if body == "" {
		return false, 0, false
	}

	switch strings.Count(body, "i") {
	case 0:
		v, err := parseFinite(body)
		if err != nil {
			return false, 0, false
		}
		return false, sign * v, true
	case 1:
	default:
		return false, 0, false
	}

	var digits string
	switch {
	case body[0] == 'i':
		digits = body[1:]
	case body[len(body)-1] == 'i':
		digits = body[:len(body)-1]
	default:
		return false, 0, false
	}
	if digits == "" {
		return true, sign, true
	}
	if digits[0] == '+' || digits[0] == '-' {
		return false, 0, false
	}
	v, err := parseFinite(digits)
	if err != nil {
		return false, 0, false
	}

	return true, sign * v, true
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}

	return v, nil
}
