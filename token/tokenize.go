package token

// Tokenize appends the tokens of src to dst.  Whitespace between tokens is
// skipped.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	posDoc := NewPosDoc(src)
	i := 0
	n := len(src)
	for i < n {
		c := src[i]
		var tt TokenType
		switch c {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		case '{':
			tt = TLCurl
		case '}':
			tt = TRCurl
		case ':':
			tt = TColon
		case ',':
			tt = TComma
		case '"':
			sz, err := scanQuoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i+sz))
			}
			dst = append(dst, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: src[i : i+sz]})
			i += sz
			continue
		default:
			if !opt.format.IsJSON() || !isLiteralByte(c) {
				return nil, NewTokenizeErr(ErrBareLiteral, posDoc.Pos(i))
			}
			j := i + 1
			for j < n && isLiteralByte(src[j]) {
				j++
			}
			dst = append(dst, Token{Type: TLiteral, Pos: posDoc.Pos(i), Bytes: src[i:j]})
			i = j
			continue
		}
		dst = append(dst, Token{Type: tt, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
		i++
	}
	return dst, nil
}

func isLiteralByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	}
	switch c {
	case '-', '+', '.', '_':
		return true
	}
	return false
}
