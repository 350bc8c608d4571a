package main

import (
	"fmt"

	"github.com/mkerring/vex/pkg/repo"
	"github.com/spf13/cobra"
)

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <target>",
		Short: "Switch the repository to a branch snapshot or commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			defer r.Close()

			if err := r.Checkout(args[0]); err != nil {
				return err
			}

			head, err := r.Head()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "HEAD is now at %s\n", head)
			return nil
		},
	}
}
