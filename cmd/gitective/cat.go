package main

import (
	"github.com/spf13/cobra"

	"github.com/gargdeendayal/gitective/blob"
)

func catCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <object>",
		Short: "Print the content of a blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			h, err := resolveBlob(r, args[0])
			if err != nil {
				return err
			}
			content, err := blob.Content(r.Storer, h)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}
}
