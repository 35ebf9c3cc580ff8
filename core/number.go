package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseFloat decodes a floating-point number at the start of s, after any
// leading whitespace. It accepts an optional sign, decimal digits with an
// optional fraction and exponent, hexadecimal digits after 0x with an
// optional fraction and binary p exponent, and the words inf, infinity and
// nan in any case. It returns the value and the number of bytes consumed. When no
// number can be decoded it returns 0, 0 and the leading whitespace is not
// counted as consumed. Values too large for float32 become ±Inf.
func ParseFloat(s string) (float32, int) {
	i := skipSpace(s, 0)
	start := i

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	// Special values
	if n := matchWord(s[i:], "infinity"); n > 0 {
		return specialInf(neg), i + n
	}
	if n := matchWord(s[i:], "inf"); n > 0 {
		return specialInf(neg), i + n
	}
	if n := matchWord(s[i:], "nan"); n > 0 {
		return float32(math.NaN()), i + n
	}

	if end, exp := scanHex(s, i); end > i {
		lit := s[start:end]
		if !exp {
			lit += "p0"
		}
		v, _ := strconv.ParseFloat(lit, 32)
		return float32(v), end
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0, 0
	}

	// Exponent only counts when at least one digit follows
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	// A range error still carries the correctly rounded ±Inf or 0
	v, _ := strconv.ParseFloat(s[start:i], 32)
	return float32(v), i
}

// scanHex returns the end of a hexadecimal float starting at i and whether
// it carries a p exponent. It returns i when s[i:] does not start with 0x
// followed by at least one hex digit.
func scanHex(s string, i int) (int, bool) {
	if i+1 >= len(s) || s[i] != '0' || (s[i+1] != 'x' && s[i+1] != 'X') {
		return i, false
	}

	j := i + 2
	digits := 0
	for j < len(s) && isHexDigit(s[j]) {
		j++
		digits++
	}
	if j < len(s) && s[j] == '.' {
		k := j + 1
		frac := 0
		for k < len(s) && isHexDigit(s[k]) {
			k++
			frac++
		}
		if digits+frac > 0 {
			j = k
			digits += frac
		}
	}
	if digits == 0 {
		return i, false
	}

	if j < len(s) && (s[j] == 'p' || s[j] == 'P') {
		k := j + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		if k < len(s) && isDigit(s[k]) {
			for k < len(s) && isDigit(s[k]) {
				k++
			}
			return k, true
		}
	}
	return j, false
}

// ParseInt decodes a base-10 signed integer at the start of s, after any
// leading whitespace. It returns the value and the number of bytes
// consumed, or 0, 0 when no digit is found. Out-of-range values clamp to
// math.MaxInt64 or math.MinInt64.
func ParseInt(s string) (int64, int) {
	i := skipSpace(s, 0)

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	var v uint64
	overflow := false
	for i < len(s) && isDigit(s[i]) {
		d := uint64(s[i] - '0')
		if !overflow {
			if v > (math.MaxUint64-d)/10 {
				overflow = true
			} else {
				v = v*10 + d
			}
		}
		i++
	}
	if i == start {
		return 0, 0
	}

	if neg {
		if overflow || v >= 1<<63 {
			return math.MinInt64, i
		}
		return -int64(v), i
	}
	if overflow || v > math.MaxInt64 {
		return math.MaxInt64, i
	}
	return int64(v), i
}

// skipSpace returns the index of the first non-space byte at or after i
func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// matchWord reports the length of word if s starts with it, ignoring case
func matchWord(s, word string) int {
	if len(s) < len(word) || !strings.EqualFold(s[:len(word)], word) {
		return 0
	}
	return len(word)
}

func specialInf(neg bool) float32 {
	if neg {
		return float32(math.Inf(-1))
	}
	return float32(math.Inf(1))
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
