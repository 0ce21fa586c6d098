// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/pdiddy/docmigrate/pkg/types"
)

var (
	// ErrSourceMissing marks a category whose conventional path is absent.
	// The category is skipped; it is not a failure.
	ErrSourceMissing = errors.New("source not found")

	// ErrMissingIdentifier marks a span that cannot yield a record id.
	ErrMissingIdentifier = errors.New("missing identifier")
)

// ExtractionError is a per-record failure. It is collected and reported;
// it never stops the category.
type ExtractionError struct {
	Category types.Category
	Source   string
	// ID is the record id when one could be determined.
	ID  string
	Err error
}

func (e *ExtractionError) Error() string {
	what := e.ID
	if what == "" {
		what = filepath.Base(e.Source)
	}
	return fmt.Sprintf("failed to parse %s %s: %v", e.Category.Noun(), what, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func wrapParseError(c types.Category, span Span, err error) error {
	var xe *ExtractionError
	if errors.As(err, &xe) {
		if xe.Category == "" {
			xe.Category = c
		}
		if xe.Source == "" {
			xe.Source = span.Source.Path
		}
		return xe
	}
	return &ExtractionError{Category: c, Source: span.Source.Path, Err: err}
}
