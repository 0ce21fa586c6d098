// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docmigrate/internal/migrate"
	"github.com/pdiddy/docmigrate/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Extract records from the documentation tree and store them",
	Long: `Migrate reads tasks, sprints, user stories, components, and ADRs from
the documentation root, in that order, and stores each record. Records that
already exist are overwritten.

Categories whose files are missing are skipped with a warning. Records that
cannot be parsed or stored are listed in the report; the run continues.
Migrate exits nonzero only when a source file exists but cannot be read.

With --dry-run every record is extracted and previewed but nothing is
written and the database is not opened.`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unsupported format %q: use text or json", format)
	}

	cfg := loadConfig()
	cfg.Migration.DryRun = dryRun

	opts := migrate.Options{
		DocsDir: cfg.Migration.DocsDir,
		DryRun:  cfg.Migration.DryRun,
		Out:     cmd.OutOrStdout(),
		Logger:  slog.Default(),
	}
	if format == "json" {
		opts.Out = nil
	}

	var m *migrate.Migrator
	if dryRun {
		m = migrate.New(nil, opts)
	} else {
		st, err := store.Open(cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()
		m = migrate.New(st, opts)
	}

	stats, err := m.Run(cmd.Context())
	if err != nil {
		return err
	}

	if format == "json" {
		return migrate.WriteReportJSON(cmd.OutOrStdout(), stats)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return migrate.WriteReport(cmd.OutOrStdout(), stats)
}

func init() {
	migrateCmd.Flags().Bool("dry-run", false, "extract and preview records without writing them")
	migrateCmd.Flags().String("format", "text", "report format: text or json")

	rootCmd.AddCommand(migrateCmd)
}
