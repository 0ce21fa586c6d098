// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docmigrate/pkg/types"
)

// Export writes one file per category to dir, named after the category
// (task.yaml, sprint.json, ...). Each file holds the category's records in
// id order. An empty categories list exports all of them. Files are replaced
// atomically. Export returns the paths it wrote.
func (s *Store) Export(ctx context.Context, dir string, format types.ExportFormat, categories ...types.Category) ([]string, error) {
	if len(categories) == 0 {
		categories = types.Categories
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	var paths []string
	for _, c := range categories {
		recs, err := s.List(ctx, c)
		if err != nil {
			return paths, fmt.Errorf("querying for export: %w", err)
		}
		if recs == nil {
			recs = []types.Record{}
		}

		data, err := Encode(format, recs)
		if err != nil {
			return paths, fmt.Errorf("encoding %s export: %w", c, err)
		}
		path := filepath.Join(dir, string(c)+"."+string(format))
		if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
			return paths, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Encode renders v as YAML or indented JSON.
func Encode(format types.ExportFormat, v any) ([]byte, error) {
	switch format {
	case types.ExportYAML:
		return yaml.Marshal(v)
	case types.ExportJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("unknown export format %q: use yaml or json", format)
}
