/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/num/internal/num"
)

func newNewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new VALUE",
		Short: "Create a bounded number and print it",
		Long: `Create a bounded number from VALUE and print its string form.

Use -- before negative values so they are not read as flags: num new -- -5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := num.Parse(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, n)
			return err
		},
	}
}
