/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/num/internal/console"
)

func newConsoleCmd(a *app) *cobra.Command {
	consoleCmd := &cobra.Command{
		Use:   "console",
		Short: "Start the interactive terminal",
		Long: `Start the interactive terminal on standard input and output.

Type 'help' inside the terminal for the available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := console.New(a.in, a.out,
				console.WithPrompt(a.cfg.Console.Prompt),
				console.WithBanner(a.cfg.Console.Banner),
			)
			return c.Run(cmd.Context())
		},
	}
	consoleCmd.Flags().String("prompt", "$ ", "text written before each input line, empty for none")
	consoleCmd.Flags().Bool("banner", true, "print the banner on start")
	return consoleCmd
}
