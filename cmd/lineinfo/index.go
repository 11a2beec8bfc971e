package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/LHMTR/haruto-information/internal/catalog"
)

var indexExclude []string

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild index.json from the per-line documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		manager := catalog.NewManager(catalog.Config{Source: cfg.DataSource}, logger)
		if manager.IsRemote() {
			return fmt.Errorf("index needs a local directory, got %s", cfg.DataSource)
		}

		result, err := catalog.RebuildIndex(cfg.DataSource, catalog.IndexOptions{Exclude: indexExclude}, logger)
		if err != nil {
			return err
		}
		for _, name := range result.Skipped {
			logger.Warn("skipped file without line_code", slog.String("file", name))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "indexed %d lines in %s\n", len(result.Lines), cfg.DataSource)
		return nil
	},
}

func init() {
	indexCmd.Flags().StringSliceVar(&indexExclude, "exclude", nil, "file name patterns to leave out (doublestar syntax)")
	rootCmd.AddCommand(indexCmd)
}
