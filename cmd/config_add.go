package cmd

import (
	"fmt"

	"github.com/liammcnabb/spider-man-villain-viz/internal/config"

	"github.com/spf13/cobra"
)

var addSeries string

var configAddCmd = &cobra.Command{
	Use:   "add <label>",
	Short: "Create a new config profile, typically one per series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := args[0]

		cfg := config.DefaultConfig()
		if addSeries != "" {
			cfg.Series = addSeries
		}

		path, err := config.CreateConfig(label, cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Created new config: %s\n", path)
		fmt.Printf("Activate it with `villainviz config switch %s`\n", label)
		return nil
	},
}

func init() {
	configAddCmd.Flags().StringVar(&addSeries, "series", "", "series title for the new profile")
	configCmd.AddCommand(configAddCmd)
}
