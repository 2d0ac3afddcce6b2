package grammar

import "github.com/urikit/urikit/internal/constraints"

const upperhex = "0123456789ABCDEF"

// IsCharUnreserved reports whether c is an unreserved URI character:
// alphanumeric or one of the mark characters "-_.!~*'()".
func IsCharUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// Escape percent-encodes every byte of s for which shouldEscape returns true.
// A nil shouldEscape encodes all non-unreserved bytes. "%" is passed through
// so that already-encoded input survives a second pass.
func Escape[T constraints.Byteseq](s T, shouldEscape func(byte) bool) T {
	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsCharUnreserved(c) }
	}

	var cnt int
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '%' && shouldEscape(c) {
			cnt++
		}
	}
	if cnt == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*cnt)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' || !shouldEscape(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', upperhex[c>>4], upperhex[c&0xf])
	}
	return T(buf)
}

// Unescape decodes every valid %XX triplet in s. Stray "%" bytes and
// incomplete triplets are left as is.
func Unescape[T constraints.Byteseq](s T) T {
	var cnt int
	for i := 0; i+2 < len(s); i++ {
		if s[i] == '%' && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			cnt++
			i += 2
		}
	}
	if cnt == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)-2*cnt)
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		buf = append(buf, s[i])
	}
	return T(buf)
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
