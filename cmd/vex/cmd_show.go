package main

import (
	"fmt"

	"github.com/mkerring/vex/pkg/diff"
	"github.com/mkerring/vex/pkg/object"
	"github.com/mkerring/vex/pkg/repo"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var unified bool

	cmd := &cobra.Command{
		Use:   "show <commit>",
		Short: "Show a commit and its changes against the parent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			defer r.Close()

			c, diffs, err := r.CommitDiffs(object.Hash(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "commit %s\n", args[0])
			fmt.Fprintf(out, "Date:   %s\n", c.TimeStamp.Format("2006-01-02 15:04:05"))
			fmt.Fprintln(out)
			fmt.Fprintf(out, "    %s\n", c.Message)
			fmt.Fprintln(out)

			for _, fd := range diffs {
				if unified {
					text, err := diff.FormatUnified(fd.Path, fd.Old, fd.New, r.Config.Diff.Context)
					if err != nil {
						return err
					}
					fmt.Fprint(out, text)
					continue
				}

				fmt.Fprintf(out, "%s:\n", fd.Path)
				fmt.Fprint(out, diff.Format(diff.Compute(fd.Old, fd.New)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&unified, "unified", "u", false, "render unified diffs")

	return cmd
}
