// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docmigrate/internal/extract"
	"github.com/pdiddy/docmigrate/internal/store"
)

const configFile = "docmigrate.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the documentation layout, config file, and database",
	Long: `Init creates the directories migrate reads under the documentation
root, writes docmigrate.yaml with the current settings unless one exists,
and creates the database. Existing files are left alone.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	out := cmd.OutOrStdout()

	for _, dir := range extract.Layout {
		path := filepath.Join(cfg.Migration.DocsDir, dir)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		fmt.Fprintf(out, "ok      %s/\n", path)
	}

	if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		if err := os.WriteFile(configFile, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", configFile, err)
		}
		fmt.Fprintf(out, "created %s\n", configFile)
	} else {
		fmt.Fprintf(out, "exists  %s\n", configFile)
	}

	st, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "ok      %s\n", cfg.Store.Path)
	return st.Close()
}

func init() {
	rootCmd.AddCommand(initCmd)
}
