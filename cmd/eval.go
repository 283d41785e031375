/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vipcxj/num/internal/calc"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate an expression over bounded numbers",
		Long: `Evaluate "a op b" where both operands must be valid bounded numbers and op is
one of + - * / // % ** < > <= >= == !=. The arguments are joined with spaces.`,
		Example: "  num eval 3 + 4\n  num eval '3<4'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := calc.Eval(strings.Join(args, " "), nil)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, v)
			return err
		},
	}
}
