package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liammcnabb/spider-man-villain-viz/internal/chart"
	"github.com/liammcnabb/spider-man-villain-viz/internal/config"
	"github.com/liammcnabb/spider-man-villain-viz/internal/dataset"
)

var (
	flagChartIn  string
	flagChartOut string
)

func init() {
	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Rebuild the chart config from an existing villain dataset",
		RunE:  runChart,
	}

	chartCmd.Flags().StringVar(&flagChartIn, "input", "", "villain dataset JSON to read")
	chartCmd.Flags().StringVar(&flagChartOut, "output", "", "output path for the chart config JSON")

	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	cfg, _, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Output:       flagChartIn,
		ChartOutput:  flagChartOut,
	})
	if err != nil {
		return err
	}

	ds, err := dataset.Load(cfg.Output)
	if err != nil {
		return fmt.Errorf("cannot load dataset: %w", err)
	}

	if err := chart.Build(ds).Write(cfg.ChartOutput); err != nil {
		return err
	}

	fmt.Printf("Chart config written to %s (%d issues, %d villains)\n",
		cfg.ChartOutput, len(ds.Timeline), ds.Stats.TotalVillains)

	return nil
}
