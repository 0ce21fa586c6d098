// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LogConfig holds structured logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// File, when set, receives a copy of every log record.
	File string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
}

// ExportFormat selects the serialization used when exporting records.
type ExportFormat string

const (
	ExportYAML ExportFormat = "yaml"
	ExportJSON ExportFormat = "json"
)

// ExportConfig holds settings for the export command.
type ExportConfig struct {
	// Dir is the directory export files are written to (default "exports").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// Format is yaml or json (default yaml).
	Format ExportFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// StoreConfig holds settings for the record store.
type StoreConfig struct {
	// Path is the SQLite database file. Parent directories are created on open.
	Path string `json:"database" yaml:"database" mapstructure:"database"`
}

// MigrationConfig holds settings for one migration invocation.
type MigrationConfig struct {
	// DocsDir is the document root holding agile/, components/, and architecture/.
	DocsDir string `json:"docs_dir" yaml:"docs_dir" mapstructure:"docs_dir"`

	// DryRun performs every step except the store writes.
	DryRun bool `json:"dry_run" yaml:"-" mapstructure:"-"`
}

// Config groups every setting read from docmigrate.yaml, the environment,
// and command flags. docs_dir and database sit at the top level of the file.
type Config struct {
	Migration MigrationConfig `json:"migration" yaml:",inline" mapstructure:",squash"`
	Store     StoreConfig     `json:"store" yaml:",inline" mapstructure:",squash"`
	Log       LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
	Export    ExportConfig    `json:"export" yaml:"export" mapstructure:"export"`
}
