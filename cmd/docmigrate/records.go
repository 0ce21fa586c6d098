// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pdiddy/docmigrate/internal/store"
	"github.com/pdiddy/docmigrate/pkg/types"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Inspect migrated records",
	Long: `Records reads the database written by migrate. Categories are task,
sprint, user_story, component, and adr (plural forms are accepted).`,
}

var recordsListCmd = &cobra.Command{
	Use:   "list <category>",
	Short: "List the records of one category",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsList,
}

var recordsShowCmd = &cobra.Command{
	Use:   "show <category> <id>",
	Short: "Print one record as YAML or JSON",
	Args:  cobra.ExactArgs(2),
	RunE:  runRecordsShow,
}

func runRecordsList(cmd *cobra.Command, args []string) error {
	category, err := types.ParseCategory(args[0])
	if err != nil {
		return err
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	st, err := store.Open(loadConfig().Store)
	if err != nil {
		return err
	}
	defer st.Close()

	recs, err := st.List(cmd.Context(), category)
	if err != nil {
		return err
	}
	return formatRecordList(cmd.OutOrStdout(), category, recs, jsonOutput)
}

func formatRecordList(w io.Writer, category types.Category, recs []types.Record, jsonOutput bool) error {
	if jsonOutput {
		if recs == nil {
			recs = []types.Record{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	if len(recs) == 0 {
		fmt.Fprintf(w, "No %s records found.\n", category.Noun())
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"ID", "Name", "Status"})
	for _, r := range recs {
		tw.AppendRow(table.Row{r.RecordID(), truncate(r.DisplayName(), 60), recordStatus(r)})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d %s", len(recs), category.Label()), ""})
	tw.Render()
	return nil
}

// recordStatus is the status-like column of a record, empty for components.
func recordStatus(r types.Record) string {
	switch v := r.(type) {
	case *types.Task:
		return string(v.Status)
	case *types.Sprint:
		return string(v.Status)
	case *types.ADR:
		return string(v.Status)
	case *types.Component:
		return string(v.Type)
	case *types.UserStory:
		return string(v.Priority)
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func runRecordsShow(cmd *cobra.Command, args []string) error {
	category, err := types.ParseCategory(args[0])
	if err != nil {
		return err
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	st, err := store.Open(loadConfig().Store)
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := st.Get(cmd.Context(), category, args[1])
	if err != nil {
		return err
	}

	format := types.ExportYAML
	if jsonOutput {
		format = types.ExportJSON
	}
	data, err := store.Encode(format, rec)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func init() {
	recordsListCmd.Flags().Bool("json", false, "output records as JSON")
	recordsShowCmd.Flags().Bool("json", false, "output the record as JSON instead of YAML")

	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsShowCmd)

	rootCmd.AddCommand(recordsCmd)
}
