package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/tools/go/packages"
)

const (
	DefaultOutput = "adk_gen.go"
	DefaultFunc   = "Register"
)

// Config selects the package to generate code for.
type Config struct {
	// Dir is the package directory, "." when empty.
	Dir string
	// Output is the generated file, relative to Dir.  It defaults to
	// DefaultOutput.
	Output string
	// Func names the registration function.  It defaults to DefaultFunc.
	Func string
}

func (c *Config) dir() (string, error) {
	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Abs(dir)
}

// OutputPath returns the absolute path of the generated file.
func (c *Config) OutputPath() (string, error) {
	dir, err := c.dir()
	if err != nil {
		return "", err
	}
	out := c.Output
	if out == "" {
		out = DefaultOutput
	}
	if filepath.IsAbs(out) {
		return out, nil
	}
	return filepath.Join(dir, out), nil
}

// Load loads the package in cfg.Dir and collects its annotated types.
// Errors located in the output file are ignored, so stale generated code
// can be replaced.
func Load(cfg *Config) (*Package, error) {
	dir, err := cfg.dir()
	if err != nil {
		return nil, err
	}
	outPath, err := cfg.OutputPath()
	if err != nil {
		return nil, err
	}
	pCfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:  dir,
	}
	pkgs, err := packages.Load(pCfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %q: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("found %d packages in %q", len(pkgs), dir)
	}
	pkg := pkgs[0]
	var errs error
	for _, e := range pkg.Errors {
		if strings.HasPrefix(e.Pos, outPath+":") {
			continue
		}
		errs = multierr.Append(errs, e)
	}
	if errs != nil {
		return nil, fmt.Errorf("failed to load package %q: %w", pkg.PkgPath, errs)
	}
	fn := cfg.Func
	if fn == "" {
		fn = DefaultFunc
	}
	res, err := Collect(pkg, fn)
	if err != nil {
		return nil, err
	}
	res.Dir = dir
	return res, nil
}

// Run loads the package, generates its registration code and writes it to
// the output file.  It returns the path written, or "" when the package
// has no annotated types.
func Run(cfg *Config) (string, error) {
	p, err := Load(cfg)
	if err != nil {
		return "", err
	}
	if len(p.Enums) == 0 && len(p.Structs) == 0 {
		return "", nil
	}
	d, err := Generate(p)
	if err != nil {
		return "", err
	}
	outPath, err := cfg.OutputPath()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outPath, d, 0644); err != nil {
		return "", err
	}
	return outPath, nil
}
