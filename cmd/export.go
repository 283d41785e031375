/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vipcxj/num/internal/num"
	"github.com/vipcxj/num/internal/shellenv"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		shell  shellenv.ShellType
		export bool
	)

	exportCmd := &cobra.Command{
		Use:   "export NAME VALUE",
		Short: "Print a shell assignment of a validated value",
		Long: `Validate VALUE as a bounded number and print an assignment of it to the
environment variable NAME for the user's shell, ready to be evaluated:

  eval "$(num export limit 7)"               # sh, bash, zsh
  num export limit 7 | Invoke-Expression     # PowerShell

NAME is upper-cased, dashes become underscores and the configured prefix is
prepended.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := num.Parse(args[1])
			if err != nil {
				return err
			}
			configured, err := shellenv.ShellTypeString(a.cfg.Export.Shell)
			if err != nil {
				return err
			}
			target, err := shellenv.Resolve(configured)
			if err != nil {
				return err
			}
			name := shellenv.EnvName(a.cfg.Export.Prefix, args[0])
			line, err := shellenv.Assignment(target, name, n.String(), export)
			if err != nil {
				return err
			}
			slog.Info("export", "name", name, "value", n.String(), "shell", target)
			_, err = fmt.Fprintln(a.out, line)
			return err
		},
	}
	exportCmd.Flags().Var(&shell, "shell", "target shell: auto, sh, powershell or cmd")
	exportCmd.Flags().BoolVar(&export, "export", false, "export the variable (sh) or persist it for the user (powershell, cmd)")
	exportCmd.Flags().String("prefix", "", "prefix prepended to NAME")
	return exportCmd
}
