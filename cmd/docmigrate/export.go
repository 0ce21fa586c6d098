// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docmigrate/internal/store"
	"github.com/pdiddy/docmigrate/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [category...]",
	Short: "Export migrated records to YAML or JSON files",
	Long: `Export writes one file per category (task.yaml, sprint.yaml, ...) to
the export directory. With no arguments every category is exported.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	switch cfg.Export.Format {
	case types.ExportYAML, types.ExportJSON:
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", cfg.Export.Format)
	}

	categories := make([]types.Category, 0, len(args))
	for _, a := range args {
		c, err := types.ParseCategory(a)
		if err != nil {
			return err
		}
		categories = append(categories, c)
	}

	st, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	paths, err := st.Export(cmd.Context(), cfg.Export.Dir, cfg.Export.Format, categories...)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", p)
	}
	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("dir", "exports", "directory export files are written to")

	viper.BindPFlag(keyExportFormat, exportCmd.Flags().Lookup("format"))
	viper.BindPFlag(keyExportDir, exportCmd.Flags().Lookup("dir"))

	rootCmd.AddCommand(exportCmd)
}
