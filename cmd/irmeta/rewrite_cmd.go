package main

import (
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/deepnoodle-ai/irmeta/errz"
	"github.com/deepnoodle-ai/irmeta/host"
	"github.com/deepnoodle-ai/irmeta/plugin"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRewriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite [file]",
		Short: "Run built-in rewrite passes over an IR module",
		Long: `rewrite decodes an IR module, runs the selected passes in order and
prints the result. Each pass sees the output of the previous one.

Passes can also be listed under "passes" in the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: rewriteHandler,
	}
	flags := cmd.Flags()
	flags.StringSliceP("pass", "p", nil, "pass to run; repeatable")
	flags.StringP("output", "o", "json", "output format (tree, readable, json)")
	flags.Bool("list", false, "list the available passes")
	addReadableFlags(flags)
	if err := viper.BindPFlag("passes", flags.Lookup("pass")); err != nil {
		fatal(err)
	}
	return cmd
}

func rewriteHandler(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if list, _ := cmd.Flags().GetBool("list"); list {
		for _, name := range passNames() {
			fmt.Fprintf(out, "%-14s %s\n", name, passes[name].help)
		}
		return nil
	}
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	m, err := readModule(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	runner, err := newRunner(logger, viper.GetString("host-version"), viper.GetStringSlice("passes"))
	if err != nil {
		return err
	}

	result, runErr := runner.RunIR(cmd.Context(), m)
	printMessages(cmd.ErrOrStderr(), result.Messages)

	format, _ := cmd.Flags().GetString("output")
	text, err := render(result.Root, format, dumpOptions(cmd), useColor(out))
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, text); err != nil {
		return err
	}
	return runErr
}

// newRunner registers the named passes, in order, with a runner for the
// given host version.
func newRunner(logger zerolog.Logger, hostVersion string, names []string) (*plugin.Runner, error) {
	v, err := semver.NewVersion(hostVersion)
	if err != nil {
		return nil, errz.Newf(errz.ErrConfig, "invalid host version %q", hostVersion).WithCause(err)
	}
	runner := plugin.NewRunner(
		plugin.WithLogger(logger),
		plugin.WithHostVersion(v),
		plugin.WithConfiguration(viper.GetStringMap("configuration")),
	)
	plugins := make([]*plugin.Plugin, 0, len(names))
	for _, name := range names {
		p, ok := passes[name]
		if !ok {
			return nil, errz.Newf(errz.ErrConfig, "unknown pass %q", name)
		}
		plugins = append(plugins, p.build())
	}
	if err := runner.Register(plugins...); err != nil {
		return nil, err
	}
	return runner, nil
}

func printMessages(w io.Writer, messages []host.Message) {
	for _, m := range messages {
		text := m.String()
		switch m.Severity {
		case host.Error:
			text = red("%s", text)
		case host.Warning:
			text = color.YellowString("%s", text)
		}
		fmt.Fprintln(w, text)
	}
}
