package main

import (
	"fmt"

	"github.com/philipparndt/gorim/pkg/sphere"
	"github.com/spf13/cobra"
)

var fixturesOutput string

var fixturesCmd = &cobra.Command{
	Use:   "fixtures [name]",
	Short: "List the built-in sphere sets or dump one of them",
	Long: `Without a name, list the built-in sphere sets. With a name, print the set
as YAML or write it to the file given by --output (.yaml, .yml or .toml).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFixtures,
}

func init() {
	fixturesCmd.Flags().StringVarP(&fixturesOutput, "output", "o", "", "write the fixture to a file")
	rootCmd.AddCommand(fixturesCmd)
}

func runFixtures(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, name := range sphere.FixtureNames() {
			fmt.Fprintf(out, "%-16s %s\n", name, sphere.FixtureDescription(name))
		}
		return nil
	}

	set, err := sphere.Fixture(args[0])
	if err != nil {
		return err
	}
	if fixturesOutput != "" {
		return set.Save(fixturesOutput)
	}
	data, err := sphere.Encode(set, sphere.FormatYAML)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
