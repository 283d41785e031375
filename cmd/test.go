/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vipcxj/num/internal/suite"
)

func newTestCmd(a *app) *cobra.Command {
	var file string

	testCmd := &cobra.Command{
		Use:   "test",
		Short: "Run the built-in test suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSuite(file)
			if err != nil {
				return err
			}
			rep := s.Run()
			if err := rep.Write(a.out); err != nil {
				return err
			}
			if !rep.OK() {
				return fmt.Errorf("%d of %d tests failed", rep.Failed, rep.Total())
			}
			return nil
		},
	}
	testCmd.Flags().StringVarP(&file, "file", "f", "", "run the cases of this YAML file instead of the built-in suite")
	return testCmd
}

func loadSuite(file string) (*suite.Suite, error) {
	if file == "" {
		return suite.Default()
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return suite.Load(f)
}
