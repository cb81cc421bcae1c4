package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/ebkarlson404/StarFieldMiner/internal/common"
	"github.com/ebkarlson404/StarFieldMiner/internal/match"
	"github.com/ebkarlson404/StarFieldMiner/internal/record"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func newInspectCmd() *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect [files...]",
		Short: "Dump one record by form id or editor id",
		RunE:  runInspect,
	}

	f := inspectCmd.Flags()
	f.String("form-id", "", "Form id, raw (0001ABCD) or decorated (Name[WEAP:0001ABCD])")
	f.String("editor-id", "", "Editor id")
	f.Int("suggestions", match.DefaultLimit, "Number of similar editor ids to show on a miss")
	inspectCmd.MarkFlagsOneRequired("form-id", "editor-id")
	inspectCmd.MarkFlagsMutuallyExclusive("form-id", "editor-id")

	return inspectCmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	reg, _, err := loadRegistry(cfg, args, log)
	if err != nil {
		return err
	}

	formID, _ := cmd.Flags().GetString("form-id")
	editorID, _ := cmd.Flags().GetString("editor-id")
	limit, _ := cmd.Flags().GetInt("suggestions")
	out := cmd.OutOrStdout()

	var (
		rec record.Record
		ok  bool
	)

	if formID != "" {
		rec, ok = record.FindRef[record.Record](reg, formID)
		if !ok {
			return fmt.Errorf("no record with form id %q", formID)
		}
	} else {
		rec, ok = record.FindByEditor[record.Record](reg, editorID)
		if !ok {
			printSuggestions(out, editorID, reg.EditorIDs(), limit)
			return fmt.Errorf("no record with editor id %q", editorID)
		}
	}

	return dumpRecord(out, rec)
}

func dumpRecord(w io.Writer, rec record.Record) error {
	if rec == nil {
		return errors.New("nil record")
	}

	if _, err := fmt.Fprintln(w, rec.String()); err != nil {
		return err
	}

	dumper.Fdump(w, rec.Payload().Interface())

	return nil
}

func printSuggestions(w io.Writer, query string, editorIDs []string, limit int) {
	suggestions := match.Suggest(query, editorIDs, limit)
	if common.IsEmpty(suggestions) {
		return
	}

	fmt.Fprintln(w, "did you mean:")

	for _, s := range suggestions {
		fmt.Fprintf(w, "  %s\n", s.EditorID)
	}
}
