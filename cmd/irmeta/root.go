package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultHostVersion = "2.0.0"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "irmeta",
		Short: "Inspect and rewrite compiler IR trees",
		Long: `irmeta reads IR module fragments encoded as JSON, prints them as
trees or source-like text, and runs the built-in rewrite passes over them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(viper.GetViper()); err != nil {
				return err
			}
			processGlobalFlags()
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.irmeta.yaml)")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("host-version", defaultHostVersion, "host compiler version checked against plugin requirements")
	for _, name := range []string{"config", "no-color", "log-level", "host-version"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			fatal(err)
		}
	}

	cmd.AddCommand(
		newDumpCmd(),
		newRewriteCmd(),
		newKindsCmd(),
		newVersionCmd(),
	)
	return cmd
}

// initConfig reads the config file and IRMETA_ environment variables into v.
// A missing default config file is not an error.
func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix("irmeta")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
		return nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigType("yaml")
	v.SetConfigName(".irmeta")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") {
		color.NoColor = true
	}
}

func fatal(msg any) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintln(os.Stderr, red("%s", s))
	os.Exit(1)
}
