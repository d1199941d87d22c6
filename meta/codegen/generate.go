package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

var fileTemplate = template.Must(template.New("adk_gen").Parse(`// Code generated by adk-codegen. DO NOT EDIT.

package {{.Name}}

import (
{{- range .Imports}}
	{{.}}
{{- end}}
)

func init() {
	if err := {{.Func}}(meta.Default); err != nil {
		panic(err)
	}
}

// {{.Func}} registers the reflected types of package {{.Name}} with r.
func {{.Func}}(r *meta.Registry) error {
{{- range .Enums}}
	if _, err := meta.RegisterEnum[{{.GoName}}](r, {{printf "%q" .Name}},
{{- range .Items}}
		meta.Item({{printf "%q" .Name}}, {{.Const}}),
{{- end}}
	); err != nil {
		return err
	}
{{- end}}
{{- range $s := .Structs}}
	if _, err := meta.Register[{{$s.GoName}}](r, {{printf "%q" $s.Name}},
{{- range $s.Fields}}
		meta.Field({{printf "%q" .Name}}, func(v *{{$s.GoName}}) *{{.Type}} { return &v.{{.GoName}} }{{if .Char}}, meta.AsChar(){{end}}),
{{- end}}
	); err != nil {
		return err
	}
{{- end}}
	return r.Check()
}
`))

// Generate returns the gofmt'ed source of the registration file for p.
func Generate(p *Package) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, p); err != nil {
		return nil, err
	}
	res, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code for %s does not parse: %w", p.Path, err)
	}
	return res, nil
}
