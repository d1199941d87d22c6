package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/adk-format/adk/encode"
	"github.com/adk-format/adk/ir"
	"github.com/adk-format/adk/parse"

	"github.com/scott-cotton/cli"
)

// documents in a stream are separated by a line holding ---
const docSep = "---\n"

func readInput(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cc.In)
	}
	return os.ReadFile(file)
}

func splitDocs(d []byte) [][]byte {
	var res [][]byte
	for _, doc := range bytes.Split(d, []byte("\n"+docSep)) {
		doc = bytes.TrimPrefix(doc, []byte(docSep))
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}
		res = append(res, doc)
	}
	return res
}

// eachDoc calls f on every document of files, or of stdin when files is
// empty.
func eachDoc(cc *cli.Context, files []string, opts []parse.ParseOption, f func(file string, node *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		d, err := readInput(cc, file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		for i, doc := range splitDocs(d) {
			node, err := parse.Parse(doc, opts...)
			if err != nil {
				return fmt.Errorf("error decoding %s document %d: %w", file, i, err)
			}
			if err := f(file, node); err != nil {
				return fmt.Errorf("%s document %d: %w", file, i, err)
			}
		}
	}
	return nil
}

func readOne(cc *cli.Context, file string, opts []parse.ParseOption) (*ir.Node, error) {
	d, err := readInput(cc, file)
	if err != nil {
		return nil, err
	}
	docs := splitDocs(d)
	if len(docs) != 1 {
		return nil, fmt.Errorf("%s: expected one document, got %d", file, len(docs))
	}
	return parse.Parse(docs[0], opts...)
}

type docWriter struct {
	cfg *MainConfig
	w   io.Writer
	n   int
}

func newDocWriter(cfg *MainConfig, w io.Writer) *docWriter {
	return &docWriter{cfg: cfg, w: w}
}

func (dw *docWriter) write(node *ir.Node) error {
	var buf bytes.Buffer
	if dw.n > 0 {
		buf.WriteString(docSep)
	}
	if err := encode.Encode(node, &buf, dw.cfg.encOpts(dw.w)...); err != nil {
		return err
	}
	dw.n++
	_, err := dw.w.Write(buf.Bytes())
	return err
}
