// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/docmigrate/internal/markdown"
	"github.com/pdiddy/docmigrate/internal/vocab"
	"github.com/pdiddy/docmigrate/pkg/types"
)

// ComponentExtractor reads components/*.md, one component per file.
type ComponentExtractor struct {
	Now func() time.Time
}

func (x *ComponentExtractor) Category() types.Category { return types.CategoryComponent }

func (x *ComponentExtractor) Sources(root string) ([]Source, error) {
	dir, err := requireFile(root, componentsDir)
	if err != nil {
		return nil, err
	}
	paths, err := markdownFiles(dir, nil)
	if err != nil {
		return nil, err
	}
	sources := make([]Source, len(paths))
	for i, p := range paths {
		sources[i] = Source{Path: p}
	}
	return sources, nil
}

func (x *ComponentExtractor) Spans(src Source, text string) []Span {
	return []Span{{Source: src, Text: text}}
}

// ComponentID derives a component id from its file: "api_gateway.md" is
// "comp-api-gateway".
func ComponentID(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return "comp-" + strings.ReplaceAll(stem, "_", "-")
}

func (x *ComponentExtractor) Parse(span Span) (types.Record, error) {
	now := stamp(x.Now)
	text := span.Text
	id := ComponentID(span.Source.Path)
	comp := &types.Component{
		ID:           id,
		Name:         id,
		Type:         types.ComponentModule,
		Dependencies: []string{},
		Interfaces:   []string{},
		TechStack:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if name, ok := markdown.FirstHeading(text, 1); ok {
		comp.Name = name
	}
	if v, ok := markdown.Field(text, "Type"); ok {
		comp.Type = vocab.ComponentType.Normalize(v)
	}
	if v, ok := markdown.FirstSection(text, "Overview", "Purpose"); ok {
		comp.Description = v
	}
	if v, ok := markdown.Section(text, "Dependencies"); ok {
		comp.Dependencies = markdown.Items(v)
	}
	if v, ok := markdown.FirstSection(text, "Interfaces", "API"); ok {
		comp.Interfaces = markdown.Items(v)
	}
	if v, ok := markdown.FirstSection(text, "Tech Stack", "Technology Stack", "Technologies"); ok {
		comp.TechStack = markdown.Items(v)
	}
	comp.Owner = optional(markdown.Field(text, "Owner"))
	comp.DocumentationURL = optional(markdown.Field(text, "Documentation"))
	comp.RepositoryURL = optional(markdown.Field(text, "Repository"))

	return comp, nil
}
