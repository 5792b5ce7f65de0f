package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dipscore/models/storm"
	"dipscore/scoring"
)

var (
	rankColor   = color.New(color.FgYellow, color.Bold)
	playerColor = color.New(color.FgGreen)
	scoreColor  = color.New(color.FgBlue)
)

var standingsCmd = &cobra.Command{
	Use:   "standings <tournament>",
	Short: "Print the current standings of a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		engine, err := storm.NewStorageEngine(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer engine.Close()

		tournament, err := engine.GetTournament(args[0])
		if err != nil {
			return fmt.Errorf("tournament %q: %w", args[0], err)
		}
		state, err := tournament.State()
		if err != nil {
			return err
		}
		standings, err := scoring.ComputeStandings(state)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s, %s)\n", state.Name,
			state.RoundScoringSystem, state.TournamentScoringSystem)
		for _, s := range standings.Players {
			rank := rankColor.Sprintf("%4d", s.Rank)
			if s.Unranked {
				rank = rankColor.Sprint("   -")
			}
			fmt.Fprintf(out, "%s  %s  %s\n",
				rank,
				playerColor.Sprintf("%-30s", s.Player),
				scoreColor.Sprintf("%8.2f", s.Score))
		}
		return nil
	},
}
