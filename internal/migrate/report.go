// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package migrate

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteReport renders s as plain text: one line per category, the totals,
// and the numbered error list.
func WriteReport(w io.Writer, s *Stats) error {
	var b strings.Builder

	b.WriteString("Migration report")
	if s.DryRun {
		b.WriteString(" (dry run)")
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")

	for _, cs := range s.Categories {
		fmt.Fprintf(&b, "%s: %d found, %d migrated", cs.Category.Label(), cs.Found, cs.Migrated)
		if cs.Skipped {
			b.WriteString(" (skipped: source not found)")
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nTotal: %d found, %d migrated\n", s.TotalFound(), s.TotalMigrated())

	if len(s.Errors) > 0 {
		fmt.Fprintf(&b, "\nErrors (%d):\n", len(s.Errors))
		for i, e := range s.Errors {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, e)
		}
	}

	if s.DryRun {
		b.WriteString("\nDry run: no records were written. Run without --dry-run to migrate.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteReportJSON renders s as indented JSON. Errors is always an array.
func WriteReportJSON(w io.Writer, s *Stats) error {
	out := *s
	if out.Errors == nil {
		out.Errors = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
