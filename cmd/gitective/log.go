package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/cobra"

	"github.com/gargdeendayal/gitective/finder"
)

func logCmd() *cobra.Command {
	var (
		max    int
		author string
		grep   string
		paths  []string
	)
	cmd := &cobra.Command{
		Use:   "log",
		Short: "List commits selected by filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}

			var filters []finder.Filter
			if author != "" {
				re, err := regexp.Compile(author)
				if err != nil {
					return fmt.Errorf("bad --author pattern: %w", err)
				}
				filters = append(filters, finder.Author(re))
			}
			if grep != "" {
				re, err := regexp.Compile(grep)
				if err != nil {
					return fmt.Errorf("bad --grep pattern: %w", err)
				}
				filters = append(filters, finder.Message(re))
			}
			if len(paths) > 0 {
				filters = append(filters, finder.Paths(paths...))
			}
			if max > 0 {
				filters = append(filters, finder.Limit(max))
			}

			out := cmd.OutOrStdout()
			filters = append(filters, finder.FilterFunc(func(c *object.Commit) (bool, error) {
				summary, _, _ := strings.Cut(c.Message, "\n")
				_, err := fmt.Fprintf(out, "%s %s\n", c.Hash, summary)
				return true, err
			}))
			return finder.New(r).SetFilter(filters...).Find(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&max, "max", 0, "stop after this many commits (0 means no limit)")
	cmd.Flags().StringVar(&author, "author", "", "only commits whose author matches this pattern")
	cmd.Flags().StringVar(&grep, "grep", "", "only commits whose message matches this pattern")
	cmd.Flags().StringArrayVar(&paths, "path", nil, "only commits touching a path matching this glob")
	return cmd
}
