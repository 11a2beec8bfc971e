package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LHMTR/haruto-information/internal/gtfsimport"
	"github.com/LHMTR/haruto-information/internal/multilingual"
)

var importLang string

var importGtfsCmd = &cobra.Command{
	Use:   "import-gtfs <file-or-url>",
	Short: "Convert a GTFS static feed into line documents",
	Long: `import-gtfs reads a GTFS zip from a local path or an http(s) URL, writes
one <route_id>.json per route into the data directory and rebuilds
index.json. Feed text goes into the agency_lang slot of each field, or
the --lang slot when the agency declares none.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		lang, ok := multilingual.ParseLanguage(importLang)
		if !ok {
			return fmt.Errorf("unsupported language %q", importLang)
		}

		result, err := gtfsimport.Import(cmd.Context(), args[0], cfg.DataSource, gtfsimport.Options{Language: lang}, logger)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %d lines into %s (%d routes skipped)\n",
			len(result.Lines), cfg.DataSource, len(result.Skipped))
		return nil
	},
}

func init() {
	importGtfsCmd.Flags().StringVar(&importLang, "lang", multilingual.English.Code(), "language of feeds without agency_lang")
	rootCmd.AddCommand(importGtfsCmd)
}
