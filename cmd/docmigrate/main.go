// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docmigrate CLI.
// docmigrate recovers tasks, sprints, user stories, components, and ADRs
// from a project's markdown documentation and stores them as typed records.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docmigrate/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Config keys shared by viper, the environment (DOCMIGRATE_*), and flags.
const (
	keyDocsDir      = "docs_dir"
	keyDatabase     = "database"
	keyLogLevel     = "log.level"
	keyLogFile      = "log.file"
	keyExportDir    = "export.dir"
	keyExportFormat = "export.format"
)

// logFile is the open log.file target, closed after the command runs.
var logFile *os.File

// rootCmd is the base command for the docmigrate CLI.
var rootCmd = &cobra.Command{
	Use:   "docmigrate",
	Short: "Migrate markdown project documentation into typed records",
	Long: `docmigrate reads a project's documentation tree (agile/tasks.md,
agile/user-stories.md, agile/sprints/, components/, architecture/) and
stores every task, sprint, user story, component, and ADR it finds as a
typed record in a local SQLite database.

Records can then be listed, shown, or exported as YAML or JSON.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		return setupLogging(loadConfig().Log, verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docmigrate.yaml or ~/.config/docmigrate/docmigrate.yaml)")
	rootCmd.PersistentFlags().String("docs-dir", "", "documentation root (default docs)")
	rootCmd.PersistentFlags().String("database", "", "SQLite database path (default .docmigrate/docmigrate.db)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log at debug level")

	viper.BindPFlag(keyDocsDir, rootCmd.PersistentFlags().Lookup("docs-dir"))
	viper.BindPFlag(keyDatabase, rootCmd.PersistentFlags().Lookup("database"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docmigrate")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docmigrate"))
		}
	}

	viper.SetDefault(keyDocsDir, "docs")
	viper.SetDefault(keyDatabase, filepath.Join(".docmigrate", "docmigrate.db"))
	viper.SetDefault(keyLogLevel, "info")
	viper.SetDefault(keyExportDir, "exports")
	viper.SetDefault(keyExportFormat, string(types.ExportYAML))

	viper.SetEnvPrefix("DOCMIGRATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the effective configuration. Flags bound to viper
// keys override the config file, which overrides defaults.
func loadConfig() types.Config {
	return types.Config{
		Migration: types.MigrationConfig{
			DocsDir: viper.GetString(keyDocsDir),
		},
		Store: types.StoreConfig{
			Path: viper.GetString(keyDatabase),
		},
		Log: types.LogConfig{
			Level: viper.GetString(keyLogLevel),
			File:  viper.GetString(keyLogFile),
		},
		Export: types.ExportConfig{
			Dir:    viper.GetString(keyExportDir),
			Format: types.ExportFormat(viper.GetString(keyExportFormat)),
		},
	}
}

// setupLogging installs the default slog logger: text on stderr, plus the
// configured log file when one is set.
func setupLogging(cfg types.LogConfig, verbose bool) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logFile = f
		w = io.MultiWriter(os.Stderr, f)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
