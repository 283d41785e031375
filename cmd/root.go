/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vipcxj/num/internal/config"
	"github.com/vipcxj/num/internal/logger"
)

// app carries what the subcommands share once the root command has loaded the configuration.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	cfg    *config.Config
}

func newRootCmd(a *app) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "num",
		Short: "Work with numbers bounded to [1,10]",
		Long: `num creates and checks bounded numbers: real values that must lie in [1,10].

Construction fails with "Not a Number" for anything that is not a finite number
and with "Out of range" for numbers outside the bounds.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Options{
				File:  configFile,
				Flags: []*pflag.FlagSet{cmd.Flags()},
			})
			if err != nil {
				return err
			}
			if _, err := logger.Setup(cfg.Log, a.errOut); err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	rootCmd.AddCommand(
		newNewCmd(a),
		newEvalCmd(a),
		newBoundsCmd(a),
		newTestCmd(a),
		newConsoleCmd(a),
		newExportCmd(a),
	)
	return rootCmd
}

// Execute runs the command line in os.Args against the process's standard streams
// and returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.errOut, "Error: %s\n", err)
		return 1
	}
	return 0
}
