package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/deepnoodle-ai/irmeta/dump"
	"github.com/deepnoodle-ai/irmeta/errz"
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print an IR module as a tree, source-like text or JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  dumpHandler,
	}
	flags := cmd.Flags()
	flags.StringP("output", "o", "tree", "output format (tree, readable, json)")
	flags.BoolP("watch", "w", false, "re-print whenever the file changes")
	addReadableFlags(flags)
	return cmd
}

// addReadableFlags registers the options of the readable output format.
func addReadableFlags(flags *pflag.FlagSet) {
	flags.Bool("regions", false, "readable: wrap each file in region comments")
	flags.Bool("verbose-errors", false, "readable: print the type of error expressions")
	flags.Bool("nested-type-params", false, "readable: print type parameters of nested classes")
	flags.Bool("implicit-casts", false, "readable: show implicit casts")
	flags.Bool("synthetic-names", false, "readable: print synthetic names verbatim")
}

func dumpOptions(cmd *cobra.Command) dump.Options {
	flag := func(name string) bool {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}
	return dump.Options{
		PrintRegionsPerFile:                    flag("regions"),
		VerboseErrorTypes:                      flag("verbose-errors"),
		PrintTypeParametersInAssociatedObjects: flag("nested-type-params"),
		ShowImplicitCasts:                      flag("implicit-casts"),
		PrintSyntheticNames:                    flag("synthetic-names"),
	}
}

func dumpHandler(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	format, _ := cmd.Flags().GetString("output")
	watch, _ := cmd.Flags().GetBool("watch")
	opts := dumpOptions(cmd)
	out := cmd.OutOrStdout()
	colorize := useColor(out)

	show := func() error {
		m, err := readModule(path, cmd.InOrStdin())
		if err != nil {
			return err
		}
		text, err := render(m, format, opts, colorize)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, text)
		return err
	}
	if !watch {
		return show()
	}
	if path == "" || path == "-" {
		return errz.New(errz.ErrConfig, "--watch requires a file argument")
	}

	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if err := show(); err != nil {
		logger.Error().Err(err).Str("file", path).Msg("dump failed")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchFile(ctx, path, logger, func() {
		if err := show(); err != nil {
			logger.Error().Err(err).Str("file", path).Msg("dump failed")
		}
	})
}

// render formats m according to format.
func render(m *ir.ModuleFragment, format string, opts dump.Options, colorize bool) (string, error) {
	switch format {
	case "", "tree":
		if !colorize {
			return dump.Tree(m), nil
		}
		tag := color.New(color.FgCyan, color.Bold).SprintFunc()
		return dump.TreeStyled(m, func(s string) string { return tag(s) }), nil
	case "readable":
		return dump.Readable(m, opts), nil
	case "json":
		data, err := formatJSON(m, colorize)
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	default:
		return "", errz.Newf(errz.ErrConfig, "unknown output format: %s", format)
	}
}

func kindSummary(m *ir.ModuleFragment) string {
	counts := map[ir.Kind]int{}
	ir.Inspect(m, func(e ir.Element) bool {
		counts[e.Kind()]++
		return true
	})
	var out string
	for _, k := range ir.Kinds() {
		if counts[k] > 0 {
			out += fmt.Sprintf("%s=%d ", k.Tag(), counts[k])
		}
	}
	if out == "" {
		return out
	}
	return out[:len(out)-1]
}
