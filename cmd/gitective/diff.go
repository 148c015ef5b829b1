package main

import (
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/spf13/cobra"

	"github.com/gargdeendayal/gitective/blob"
)

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Show the line edits between two blob versions",
		Long: `Show the line edits transforming one blob into another.

Each side is a full object id, rev:path, or "-" for absent content.
Binary content produces no edits.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			oldID, err := resolveBlob(r, args[0])
			if err != nil {
				return err
			}
			newID, err := resolveBlob(r, args[1])
			if err != nil {
				return err
			}

			edits, err := blob.Diff(r.Storer, oldID, newID)
			if err != nil {
				return err
			}
			if len(edits) == 0 {
				clog.FromContext(cmd.Context()).Info("no differences to show",
					"old", oldID, "new", newID)
				return nil
			}

			oldLines, err := sideLines(r, oldID)
			if err != nil {
				return err
			}
			newLines, err := sideLines(r, newID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range edits {
				fmt.Fprintf(out, "@@ -%d,%d +%d,%d @@ %s\n",
					e.BeginA+1, e.EndA-e.BeginA, e.BeginB+1, e.EndB-e.BeginB, e.Kind)
				for _, l := range oldLines[e.BeginA:e.EndA] {
					fmt.Fprintf(out, "-%s\n", l)
				}
				for _, l := range newLines[e.BeginB:e.EndB] {
					fmt.Fprintf(out, "+%s\n", l)
				}
			}
			return nil
		},
	}
}

func sideLines(r *git.Repository, id plumbing.Hash) ([]string, error) {
	if id.IsZero() {
		return nil, nil
	}
	content, err := blob.Content(r.Storer, id)
	if err != nil {
		return nil, err
	}
	return blob.Lines(content), nil
}
