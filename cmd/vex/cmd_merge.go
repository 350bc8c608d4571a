package main

import (
	"fmt"

	"github.com/mkerring/vex/pkg/repo"
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <branch>",
		Short: "Report the common ancestor of HEAD and a branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			defer r.Close()

			head, err := r.Head()
			if err != nil {
				return err
			}
			target, err := r.ResolveTarget(args[0])
			if err != nil {
				return err
			}

			base, err := r.MergeBase(head, target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if base == "" {
				fmt.Fprintf(out, "no common ancestor between HEAD and '%s'\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "merge base of HEAD and '%s' is %s\n", args[0], base)
			fmt.Fprintln(out, "note: automatic file merging is not supported; resolve changes manually")
			return nil
		},
	}
}
