package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Statistics commands",
	}

	cmd.AddCommand(newStatsPlayerCmd())
	cmd.AddCommand(newStatsDistributionCmd())

	return cmd
}

func newStatsPlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <id>",
		Short: "Show aggregate statistics for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerStats
			if err := client.Get("/api/v1/stats/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsDistributionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distribution",
		Short: "Show the breakdown of games by player count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Distribution
			if err := client.Get("/api/v1/stats/distribution", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
