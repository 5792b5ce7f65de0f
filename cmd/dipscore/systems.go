package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dipscore/scoring"
)

var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "List the registered scoring systems",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Game scoring systems:")
		for _, name := range scoring.GameSystemNames() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		fmt.Fprintln(out, "Round scoring systems:")
		for _, name := range scoring.RoundSystemNames() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		fmt.Fprintln(out, "Tournament scoring systems:")
		for _, name := range scoring.TournamentSystemNames() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}
