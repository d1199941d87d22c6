package codegen

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/packages"
)

const (
	ReflectDirective = "adk:reflect"
	EnumDirective    = "adk:enum"

	metaPath = "github.com/adk-format/adk/meta"
)

// Collect gathers the annotated types of a loaded package.  Types and
// constants are taken in declaration order, files in name order.
func Collect(pkg *packages.Package, fn string) (*Package, error) {
	if pkg.Types == nil || pkg.TypesInfo == nil {
		return nil, fmt.Errorf("package %q has no type information", pkg.PkgPath)
	}
	res := &Package{Name: pkg.Name, Path: pkg.PkgPath, Func: fn}
	im := newImporter(pkg.Types)
	files := sortedFiles(pkg)
	enums := map[*types.TypeName]*Enum{}

	for _, file := range files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				dir, name, err := findDirective(doc)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", pkg.Fset.Position(ts.Pos()), err)
				}
				if dir == "" {
					continue
				}
				if ts.TypeParams != nil || ts.Assign.IsValid() {
					return nil, fmt.Errorf("%s: //%s on generic type or alias %s", pkg.Fset.Position(ts.Pos()), dir, ts.Name.Name)
				}
				obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					return nil, fmt.Errorf("%s: no type information for %s", pkg.Fset.Position(ts.Pos()), ts.Name.Name)
				}
				if name == "" {
					name = obj.Name()
				}
				switch dir {
				case ReflectDirective:
					s, err := collectStruct(obj, name, im.qualifier)
					if err != nil {
						return nil, fmt.Errorf("%s: %w", pkg.Fset.Position(ts.Pos()), err)
					}
					res.Structs = append(res.Structs, s)
				case EnumDirective:
					if !isInteger(obj.Type()) {
						return nil, fmt.Errorf("%s: //%s on %s: not an integer type", pkg.Fset.Position(ts.Pos()), dir, obj.Name())
					}
					e := &Enum{GoName: obj.Name(), Name: name}
					enums[obj] = e
					res.Enums = append(res.Enums, e)
				}
			}
		}
	}
	if err := collectItems(pkg, files, enums); err != nil {
		return nil, err
	}
	res.Imports = im.specs()
	return res, nil
}

func sortedFiles(pkg *packages.Package) []*ast.File {
	files := slices.Clone(pkg.Syntax)
	slices.SortFunc(files, func(a, b *ast.File) int {
		return strings.Compare(pkg.Fset.File(a.Pos()).Name(), pkg.Fset.File(b.Pos()).Name())
	})
	return files
}

// findDirective returns the directive in doc with its name argument.
func findDirective(doc *ast.CommentGroup) (string, string, error) {
	if doc == nil {
		return "", "", nil
	}
	var dir, name string
	for _, c := range doc.List {
		if !strings.HasPrefix(c.Text, "//adk:") {
			continue
		}
		fields := strings.Fields(c.Text[2:])
		switch fields[0] {
		case ReflectDirective, EnumDirective:
		default:
			return "", "", fmt.Errorf("unknown directive //%s", fields[0])
		}
		if dir != "" {
			return "", "", fmt.Errorf("more than one directive: //%s and //%s", dir, fields[0])
		}
		dir = fields[0]
		for _, arg := range fields[1:] {
			k, v, ok := strings.Cut(arg, "=")
			if !ok || k != "name" || v == "" {
				return "", "", fmt.Errorf("//%s: bad argument %q", dir, arg)
			}
			name = v
		}
	}
	return dir, name, nil
}

func collectStruct(obj *types.TypeName, name string, q types.Qualifier) (*Struct, error) {
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("//%s on %s: not a struct type", ReflectDirective, obj.Name())
	}
	res := &Struct{GoName: obj.Name(), Name: name}
	seen := map[string]string{}
	for i := range st.NumFields() {
		f := st.Field(i)
		if f.Name() == "_" {
			continue
		}
		tag, err := parseTag(f.Name(), st.Tag(i))
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", obj.Name(), f.Name(), err)
		}
		if tag.skip {
			continue
		}
		if f.Embedded() {
			return nil, fmt.Errorf("%s.%s: embedded fields are not supported", obj.Name(), f.Name())
		}
		if err := checkFieldType(f.Type(), tag.char); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", obj.Name(), f.Name(), err)
		}
		if other, ok := seen[tag.name]; ok {
			return nil, fmt.Errorf("%s: fields %s and %s are both named %q", obj.Name(), other, f.Name(), tag.name)
		}
		seen[tag.name] = f.Name()
		res.Fields = append(res.Fields, &Field{
			GoName: f.Name(),
			Name:   tag.name,
			Type:   types.TypeString(f.Type(), q),
			Char:   tag.char,
		})
	}
	return res, nil
}

type fieldTag struct {
	name string
	skip bool
	char bool
}

func parseTag(goName, tag string) (fieldTag, error) {
	v := reflect.StructTag(tag).Get("adk")
	if v == "-" {
		return fieldTag{skip: true}, nil
	}
	name, opts, _ := strings.Cut(v, ",")
	res := fieldTag{name: name}
	if res.name == "" {
		res.name = lowerFirst(goName)
	}
	if opts == "" {
		return res, nil
	}
	for _, o := range strings.Split(opts, ",") {
		switch o {
		case "char":
			res.char = true
		default:
			return fieldTag{}, fmt.Errorf("unknown tag option %q", o)
		}
	}
	return res, nil
}

func lowerFirst(s string) string {
	r, sz := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[sz:]
}

func checkFieldType(t types.Type, char bool) error {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		if u.Kind() == types.Uintptr || u.Info()&(types.IsBoolean|types.IsInteger|types.IsFloat|types.IsString) == 0 {
			return fmt.Errorf("unsupported type %s", t)
		}
		if char && u.Kind() != types.Int32 && u.Kind() != types.Uint8 {
			return fmt.Errorf("char option on %s, want rune or byte", t)
		}
		return nil
	case *types.Struct:
		if _, ok := t.(*types.Named); !ok {
			return fmt.Errorf("unsupported anonymous struct")
		}
		if char {
			return fmt.Errorf("char option on %s, want rune or byte", t)
		}
		return nil
	}
	return fmt.Errorf("unsupported type %s", t)
}

func isInteger(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Kind() != types.Uintptr && b.Info()&types.IsInteger != 0
}

func collectItems(pkg *packages.Package, files []*ast.File, enums map[*types.TypeName]*Enum) error {
	if len(enums) == 0 {
		return nil
	}
	values := map[*Enum]map[string]string{}
	for _, file := range files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}
			for _, spec := range gd.Specs {
				for _, id := range spec.(*ast.ValueSpec).Names {
					c, ok := pkg.TypesInfo.Defs[id].(*types.Const)
					if !ok || id.Name == "_" {
						continue
					}
					named, ok := c.Type().(*types.Named)
					if !ok {
						continue
					}
					e := enums[named.Obj()]
					if e == nil {
						continue
					}
					if values[e] == nil {
						values[e] = map[string]string{}
					}
					v := c.Val().ExactString()
					if other, ok := values[e][v]; ok {
						return fmt.Errorf("%s: %s has the value of %s", pkg.Fset.Position(id.Pos()), id.Name, other)
					}
					values[e][v] = id.Name
					e.Items = append(e.Items, &Item{Name: id.Name, Const: id.Name})
				}
			}
		}
	}
	return nil
}

type importer struct {
	self   *types.Package
	byPath map[string]string
	byName map[string]string
}

func newImporter(self *types.Package) *importer {
	im := &importer{
		self:   self,
		byPath: map[string]string{},
		byName: map[string]string{},
	}
	im.add(metaPath, "meta")
	return im
}

func (im *importer) add(path, name string) string {
	if n, ok := im.byPath[path]; ok {
		return n
	}
	base := name
	for i := 2; ; i++ {
		if _, taken := im.byName[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s%d", base, i)
	}
	im.byPath[path] = name
	im.byName[name] = path
	return name
}

func (im *importer) qualifier(p *types.Package) string {
	if p == im.self {
		return ""
	}
	return im.add(p.Path(), p.Name())
}

func (im *importer) specs() []string {
	paths := make([]string, 0, len(im.byPath))
	for p := range im.byPath {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	res := make([]string, len(paths))
	for i, p := range paths {
		name := im.byPath[p]
		if name == p[strings.LastIndex(p, "/")+1:] {
			res[i] = fmt.Sprintf("%q", p)
		} else {
			res[i] = fmt.Sprintf("%s %q", name, p)
		}
	}
	return res
}
