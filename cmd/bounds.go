/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/num/internal/num"
)

func newBoundsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds",
		Short: "Print the accepted interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(a.out, num.Bounds)
			return err
		},
	}
}
