package debug

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/adk-format/adk/encode"
	"github.com/adk-format/adk/ir"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelDebug,
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	},
}))

// SetLogger replaces the logger debug output is written to.
func SetLogger(l *slog.Logger) {
	logger = l
}

type Text struct{ *ir.Node }

func (y Text) String() string {
	x := y.Node
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return buf.String()
}

// Logf formats msg with args and writes it at debug level.  *ir.Node
// arguments are rendered in text format.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok && x != nil {
			args[i] = Text{x}.String()
		}
	}
	logger.Debug(strings.TrimRight(fmt.Sprintf(msg, args...), "\n"))
}
