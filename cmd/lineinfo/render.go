package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LHMTR/haruto-information/internal/app"
	"github.com/LHMTR/haruto-information/internal/sitegen"
	"github.com/LHMTR/haruto-information/internal/webui"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the line list and every line page as static HTML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("out") {
			cfg.OutputDir = renderOut
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		application, err := app.New(cfg, logger)
		if err != nil {
			return fmt.Errorf("initializing application: %w", err)
		}

		renderer, err := webui.NewRenderer(application.Messages)
		if err != nil {
			return fmt.Errorf("loading templates: %w", err)
		}

		generator := sitegen.NewGenerator(application.Catalog, renderer, cfg.Language(), logger)
		result, err := generator.Generate(cmd.Context(), cfg.OutputDir)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d pages to %s (%d lines skipped)\n",
			result.Pages, cfg.OutputDir, len(result.Skipped))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderOut, "out", "public", "output directory")
	rootCmd.AddCommand(renderCmd)
}
