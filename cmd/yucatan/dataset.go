package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yucatanweather/app/internal/domain/dataset"
	"github.com/yucatanweather/app/internal/infra/power"
	"github.com/yucatanweather/app/pkg/logger"
)

func datasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Build the training dataset",
	}

	var output string
	fetch := &cobra.Command{
		Use:   "fetch",
		Short: "Download daily point data for the configured grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := cfg.Dataset
			if output == "" {
				output = ds.Output
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer f.Close()

			client := power.NewClient(ds.BaseURL, ds.Username, ds.Password, ds.Timeout)
			fetcher := dataset.NewFetcher(dataset.FetchConfig{
				Grid: dataset.Grid{
					LatMin: ds.LatMin, LatMax: ds.LatMax,
					LngMin: ds.LngMin, LngMax: ds.LngMax,
					Step: ds.Step,
				},
				StartYear: ds.StartYear,
				EndYear:   ds.EndYear,
			}, client, logger.NewWithWriter(cmd.ErrOrStderr(), "yucatan-dataset"))

			stats, err := fetcher.Run(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d points, %d skipped, %d rows -> %s\n",
				color.GreenString("✓"), stats.Points, stats.Skipped, stats.Rows, output)
			return nil
		},
	}
	fetch.Flags().StringVarP(&output, "output", "o", "", "CSV destination (default from config)")

	var input, labeled string
	label := &cobra.Command{
		Use:   "label",
		Short: "Add the climate label column to a downloaded CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				input = cfg.Dataset.Output
			}
			if labeled == "" {
				labeled = cfg.Dataset.Labeled
			}
			in, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("open %s: %w", input, err)
			}
			defer in.Close()
			out, err := os.Create(labeled)
			if err != nil {
				return fmt.Errorf("create %s: %w", labeled, err)
			}
			defer out.Close()

			stats, err := dataset.Label(in, out)
			if err != nil {
				return err
			}
			printLabelStats(cmd, stats, labeled)
			return nil
		},
	}
	label.Flags().StringVarP(&input, "input", "i", "", "Downloaded CSV (default from config)")
	label.Flags().StringVarP(&labeled, "output", "o", "", "Labeled CSV destination (default from config)")

	cmd.AddCommand(fetch, label)
	return cmd
}

func printLabelStats(cmd *cobra.Command, stats dataset.LabelStats, path string) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s %d rows labeled -> %s\n", color.GreenString("✓"), stats.Rows, path)
	for _, code := range []dataset.ClimateCode{dataset.CodeSunny, dataset.CodeCloudy, dataset.CodeWindy, dataset.CodeRainy} {
		fmt.Fprintf(w, "  %-7s %d\n", code.Tag(), stats.ByCode[code])
	}
}
