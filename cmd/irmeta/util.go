package main

import (
	"errors"
	"io"
	"os"

	"github.com/deepnoodle-ai/irmeta/errz"
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// useColor reports whether output written to w should be colored. Only
// terminals are colored.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && !color.NoColor && !viper.GetBool("no-color") && isTerminal(f)
}

func newLogger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return zerolog.Nop(), errz.Newf(errz.ErrConfig, "invalid log level %q", viper.GetString("log-level")).WithCause(err)
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// readModule decodes the module stored at path. An empty path or "-"
// reads standard input.
func readModule(path string, stdin io.Reader) (*ir.ModuleFragment, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	m, err := ir.UnmarshalModule(data)
	if err != nil {
		var se *errz.StructuredError
		if errors.As(err, &se) && path != "" && path != "-" {
			se.Location.File = path
		}
		return nil, err
	}
	return m, nil
}

// formatJSON renders the module as indented JSON, colorized if requested.
func formatJSON(m *ir.ModuleFragment, colorize bool) ([]byte, error) {
	if !colorize {
		return ir.MarshalIndent(m, "", "  ")
	}
	data, err := ir.Marshal(m)
	if err != nil {
		return nil, err
	}
	return prettyjson.Format(data)
}
