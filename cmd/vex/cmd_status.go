package main

import (
	"fmt"

	"github.com/mkerring/vex/pkg/repo"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show staged and unstaged changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			defer r.Close()

			st, err := r.ComputeStatus()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if st.Clean() {
				fmt.Fprintln(out, "nothing to commit, working tree clean")
				return nil
			}

			if len(st.ToCommit) > 0 {
				fmt.Fprintln(out, "changes to be committed:")
				for _, fe := range st.ToCommit {
					fmt.Fprintf(out, "  %s\n", fe.Path)
				}
			}
			if len(st.NotStaged) > 0 {
				fmt.Fprintln(out, "changes not staged for commit:")
				for _, path := range st.NotStaged {
					fmt.Fprintf(out, "  %s\n", path)
				}
			}
			return nil
		},
	}
}
