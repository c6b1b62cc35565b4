// Command hdlcalc evaluates nine-valued logic expressions and vector slices
// from the command line.
//
// Usage:
//
//	hdlcalc table and
//	hdlcalc eval xor 01XZ 0110
//	hdlcalc reduce and 1H1L
//	hdlcalc resolve 0 Z L
//	hdlcalc --config hdlcalc.yaml slice 10UX01ZW 3 6
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type app struct {
	cfgFile  string
	logLevel string
	cfg      Config
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), log: slog.Default()}

	root := &cobra.Command{
		Use:           "hdlcalc",
		Short:         "Evaluate nine-valued logic and HDL vector slices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(
		a.tableCmd(),
		a.evalCmd(),
		a.reduceCmd(),
		a.resolveCmd(),
		a.sliceCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("config loaded", "file", a.cfgFile, "direction", cfg.Direction)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hdlcalc: %v\n", err)
		os.Exit(1)
	}
}
