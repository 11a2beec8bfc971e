package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/LHMTR/haruto-information/internal/appconf"
	"github.com/LHMTR/haruto-information/internal/logging"
)

var (
	cfgFile  string
	dataDir  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "lineinfo",
	Short: "Multilingual railway line information pages",
	Long: `lineinfo serves and renders railway line pages from a directory or
URL of per-line JSON documents. Every text field carries Simplified
Chinese, Traditional Chinese, English, Japanese and Korean variants.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "lineinfo.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "directory or base URL of the line documents")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error)")
}

// loadConfig reads the config file and environment, then applies the
// persistent flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (appconf.Config, error) {
	cfg, err := appconf.Load(cfgFile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataSource = dataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func newLogger(cfg appconf.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return logging.NewStructuredLogger(os.Stdout, level), nil
}
