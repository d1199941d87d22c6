package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tokenTypes(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []TokenOpt
		want []TokenType
	}{
		{
			name: "empty",
			in:   "",
			want: []TokenType{},
		},
		{
			name: "structure",
			in:   `{"identifier":"Point","x":"0"}`,
			want: []TokenType{TLCurl, TString, TColon, TString, TComma, TString, TColon, TString, TRCurl},
		},
		{
			name: "whitespace",
			in:   "{ \"identifier\" :\n\t\"P\" }\r\n",
			want: []TokenType{TLCurl, TString, TColon, TString, TRCurl},
		},
		{
			name: "json literals",
			in:   `{"x":-1.5e3,"ok":true}`,
			opts: []TokenOpt{TokenJSON()},
			want: []TokenType{TLCurl, TString, TColon, TLiteral, TComma, TString, TColon, TLiteral, TRCurl},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize([]Token{}, []byte(tt.in), tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, tokenTypes(toks)); diff != "" {
				t.Errorf("token types mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		opts    []TokenOpt
		wantErr error
		wantOff int
	}{
		{name: "bare in text", in: `{"x":1}`, wantErr: ErrBareLiteral, wantOff: 5},
		{name: "unterminated", in: `{"x`, wantErr: ErrUnterminated, wantOff: 3},
		{name: "bad escape", in: `"a\qb"`, wantErr: ErrBadEscape, wantOff: 3},
		{name: "bad unicode", in: `"\u12G4"`, wantErr: ErrBadUnicode, wantOff: 3},
		{name: "raw newline", in: "\"a\nb\"", wantErr: ErrUnicodeControl, wantOff: 2},
		{name: "bad utf8", in: "\"a\xffb\"", wantErr: ErrBadUTF8, wantOff: 2},
		{name: "json punct", in: `[1]`, opts: []TokenOpt{TokenJSON()}, wantErr: ErrBareLiteral, wantOff: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(nil, []byte(tt.in), tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
			var te *TokenizeErr
			if !errors.As(err, &te) {
				t.Fatalf("error %T is not a *TokenizeErr", err)
			}
			if te.Pos.I != tt.wantOff {
				t.Errorf("offset = %d, want %d", te.Pos.I, tt.wantOff)
			}
		})
	}
}

func TestPosLineCol(t *testing.T) {
	d := []byte("{\n  \"a\"\n}")
	pd := NewPosDoc(d)
	l, c := pd.Pos(4).LineCol()
	if l != 1 || c != 2 {
		t.Errorf("LineCol(4) = %d,%d want 1,2", l, c)
	}
	l, c = pd.End().LineCol()
	if l != 2 || c != 1 {
		t.Errorf("End LineCol = %d,%d want 2,1", l, c)
	}
}
