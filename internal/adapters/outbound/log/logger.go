package log

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"-"`
	out    io.Writer
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(newLogger(il.out, il.Prefix))
	return ctx, nil
}

// newLogger builds the application logger. A "-" prefix means no prefix.
func newLogger(out io.Writer, prefix string) *log.Logger {
	if out == nil {
		out = os.Stdout
	}
	if prefix == "-" {
		prefix = ""
	}
	return log.New(out, prefix, log.Lmsgprefix)
}
