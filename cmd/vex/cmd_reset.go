package main

import (
	"fmt"

	"github.com/mkerring/vex/pkg/object"
	"github.com/mkerring/vex/pkg/repo"
	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <commit> [soft|hard]",
		Short: "Move HEAD to a commit, optionally restoring files and index",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := repo.ResetSoft
			if len(args) == 2 {
				switch args[1] {
				case "soft":
					mode = repo.ResetSoft
				case "hard":
					mode = repo.ResetHard
				default:
					return fmt.Errorf("unknown reset mode %q (want soft or hard)", args[1])
				}
			}

			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			defer r.Close()

			if err := r.Reset(object.Hash(args[0]), mode); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "HEAD is now at %s\n", args[0])
			return nil
		},
	}
}
