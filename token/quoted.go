package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote returns v in double quotes with '"', '\' and control characters
// escaped.  The result is a valid JSON string.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// QuoteVerbatim returns v in double quotes with nothing escaped.  A value
// containing '"' cannot be read back from the result.
func QuoteVerbatim(v string) string {
	return `"` + v + `"`
}

// NeedsEscape reports whether Quote and QuoteVerbatim differ on v.
func NeedsEscape(v string) bool {
	for _, r := range v {
		if r == '"' || r == '\\' || unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// Unquote returns the string denoted by the quoted text v.  v must consist
// of exactly one quoted string.
func Unquote(v string) (string, error) {
	b := []byte(v)
	n, err := scanQuoted(b)
	if err != nil {
		return "", err
	}
	if n != len(b) {
		return "", ErrUnterminated
	}
	return QuotedToString(b), nil
}

// scanQuoted returns the length of the quoted string starting at d[0].
func scanQuoted(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, ErrLiteral
	}
	escaped := false
	i := 1
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return i, ErrBadUTF8
		}
		i += sz
		if escaped {
			escaped = false
			switch r {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				if i+4 > n {
					return i, ErrUnterminated
				}
				if !allHex(d[i : i+4]) {
					return i, ErrBadUnicode
				}
				i += 4
			default:
				return i - sz, ErrBadEscape
			}
			continue
		}
		switch r {
		case '"':
			return i, nil
		case '\\':
			escaped = true
		default:
			if r < 0x20 {
				return i - sz, ErrUnicodeControl
			}
		}
	}
	return i, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// QuotedToString decodes the escapes of a quoted string which has already
// been checked by the tokenizer.  UTF-16 surrogate pairs written as two
// \u escapes are combined.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	i := 1
	n := len(d) - 1
	for i < n {
		c := d[i]
		if c != '\\' {
			r, sz := utf8.DecodeRune(d[i:n])
			b.WriteRune(r)
			i += sz
			continue
		}
		i++
		if i >= n {
			break
		}
		c = d[i]
		i++
		switch c {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'u':
			r, ok := hex4(d, i, n)
			if !ok {
				b.WriteRune(utf8.RuneError)
				return b.String()
			}
			i += 4
			if utf16.IsSurrogate(r) {
				if i+6 <= n && d[i] == '\\' && d[i+1] == 'u' {
					if r2, ok := hex4(d, i+2, n); ok {
						if dr := utf16.DecodeRune(r, r2); dr != utf8.RuneError {
							b.WriteRune(dr)
							i += 6
							continue
						}
					}
				}
				r = utf8.RuneError
			}
			b.WriteRune(r)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func hex4(d []byte, i, n int) (rune, bool) {
	if i+4 > n {
		return 0, false
	}
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, d[i:i+4]); err != nil {
		return 0, false
	}
	return rune(dst[0])<<8 | rune(dst[1]), true
}
