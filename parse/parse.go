package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/adk-format/adk/debug"
	"github.com/adk-format/adk/format"
	"github.com/adk-format/adk/ir"
	"github.com/adk-format/adk/token"

	"github.com/goccy/go-yaml"
)

var (
	ErrParse      = errors.New("parse error")
	ErrDepth      = errors.New("nesting too deep")
	ErrIdentifier = errors.New("missing identifier")
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.TextFormat, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		res *ir.Node
		err error
	)
	switch pOpts.format {
	case format.TextFormat, format.JSONFormat:
		res, err = parseTokens(d, pOpts)
	case format.YAMLFormat:
		res, err = parseYAML(d, pOpts)
	case format.IRFormat:
		res, err = parseIR(d)
	default:
		err = fmt.Errorf("%w: %s", format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Parse() {
		debug.Logf("parsed %s document: %s\n", pOpts.format, res)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	toks []token.Token
	i    int
	end  *token.Pos
	opts *parseOpts
}

func parseTokens(d []byte, opts *parseOpts) (*ir.Node, error) {
	toks, err := token.Tokenize(nil, d, opts.TokenizeOpts()...)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, end: token.NewPosDoc(d).End(), opts: opts}
	if len(toks) == 0 {
		return nil, token.NewTokenizeErr(token.ErrEmptyDoc, p.end)
	}
	var res *ir.Node
	if len(toks) > 1 && toks[0].Type == token.TString && toks[1].Type == token.TColon {
		// a single field, as written for a node which is not a root
		name := toks[0].String()
		p.i = 2
		res, err = p.value(0)
		if err != nil {
			return nil, err
		}
		res.Name = name
	} else {
		res, err = p.value(0)
		if err != nil {
			return nil, err
		}
		res.AsRoot()
	}
	if p.i < len(toks) {
		tok := &toks[p.i]
		return nil, token.UnexpectedErr("trailing "+tok.Type.String(), tok.Pos)
	}
	return res, nil
}

func (p *parser) next() (*token.Token, error) {
	if p.i >= len(p.toks) {
		return nil, token.NewTokenizeErr(token.ErrUnterminated, p.end)
	}
	tok := &p.toks[p.i]
	p.i++
	return tok, nil
}

func (p *parser) expect(tt token.TokenType, what string) (*token.Token, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Type != tt {
		return nil, token.ExpectedErr(what, tok.Pos)
	}
	return tok, nil
}

func (p *parser) track(node *ir.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[node] = pos
	}
}

func (p *parser) value(depth int) (*ir.Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.TString:
		res := ir.FromLeaf("", tok.String())
		p.track(res, tok.Pos)
		return res, nil
	case token.TLiteral:
		if string(tok.Bytes) == "null" {
			return nil, token.UnexpectedErr("null", tok.Pos)
		}
		res := ir.FromLeaf("", string(tok.Bytes))
		p.track(res, tok.Pos)
		return res, nil
	case token.TLCurl:
		return p.structure(tok, depth+1)
	default:
		return nil, token.UnexpectedErr(tok.Type.String(), tok.Pos)
	}
}

func (p *parser) structure(open *token.Token, depth int) (*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, token.NewTokenizeErr(fmt.Errorf("%w: more than %d levels", ErrDepth, p.opts.maxDepth), open.Pos)
	}
	res := ir.NewStruct("", "")
	p.track(res, open.Pos)
	strict := p.opts.format.IsText()
	hasIdent := false
	first := true
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.TRCurl {
			if first {
				break
			}
			return nil, token.ExpectedErr("field after ','", tok.Pos)
		}
		if tok.Type != token.TString {
			return nil, token.ExpectedErr("quoted field name", tok.Pos)
		}
		key := tok.String()
		if strict && first && key != "identifier" {
			return nil, token.NewTokenizeErr(fmt.Errorf("%w: first field is %q", ErrIdentifier, key), tok.Pos)
		}
		if _, err := p.expect(token.TColon, "':'"); err != nil {
			return nil, err
		}
		if key == "identifier" && !hasIdent && (first || !strict) {
			vt, err := p.expect(token.TString, "quoted identifier")
			if err != nil {
				return nil, err
			}
			res.Identifier = vt.String()
			hasIdent = true
		} else {
			child, err := p.value(depth)
			if err != nil {
				return nil, err
			}
			child.Name = key
			if err := res.Append(child); err != nil {
				return nil, token.NewTokenizeErr(err, tok.Pos)
			}
		}
		first = false
		sep, err := p.next()
		if err != nil {
			return nil, err
		}
		if sep.Type == token.TRCurl {
			break
		}
		if sep.Type != token.TComma {
			return nil, token.ExpectedErr("',' or '}'", sep.Pos)
		}
	}
	if !hasIdent {
		return nil, token.NewTokenizeErr(ErrIdentifier, open.Pos)
	}
	return res, nil
}

func parseYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, token.ErrEmptyDoc
	}
	res, err := fromYAML(v, 0, opts)
	if err != nil {
		return nil, err
	}
	return res.AsRoot(), nil
}

func fromYAML(v any, depth int, opts *parseOpts) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		if depth+1 > opts.maxDepth {
			return nil, fmt.Errorf("%w: more than %d levels", ErrDepth, opts.maxDepth)
		}
		return structFromYAML(x, depth+1, opts)
	case nil:
		return nil, fmt.Errorf("unexpected null")
	}
	s, err := yamlScalar(v)
	if err != nil {
		return nil, err
	}
	return ir.FromLeaf("", s), nil
}

func structFromYAML(m yaml.MapSlice, depth int, opts *parseOpts) (*ir.Node, error) {
	res := ir.NewStruct("", "")
	hasIdent := false
	for _, item := range m {
		key, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("non string key %v", item.Key)
		}
		if key == "identifier" && !hasIdent {
			ident, ok := item.Value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: identifier is %T", ErrIdentifier, item.Value)
			}
			res.Identifier = ident
			hasIdent = true
			continue
		}
		child, err := fromYAML(item.Value, depth, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		child.Name = key
		if err := res.Append(child); err != nil {
			return nil, err
		}
	}
	if !hasIdent {
		return nil, ErrIdentifier
	}
	return res, nil
}

func yamlScalar(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	default:
		return "", fmt.Errorf("unsupported yaml value %T", v)
	}
}

func parseIR(d []byte) (*ir.Node, error) {
	res := &ir.Node{}
	if err := json.Unmarshal(d, res); err != nil {
		return nil, err
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}
