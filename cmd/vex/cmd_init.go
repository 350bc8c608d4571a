package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkerring/vex/pkg/repo"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Create an empty vex repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			if err := os.MkdirAll(abs, 0o755); err != nil {
				return fmt.Errorf("create directory: %w", err)
			}

			r, outcome, err := repo.Init(abs)
			if err != nil {
				return err
			}
			defer r.Close()

			out := cmd.OutOrStdout()
			if outcome == repo.InitExists {
				fmt.Fprintf(out, "vex repository already exists in %s\n", r.VexDir)
				return nil
			}
			fmt.Fprintf(out, "initialized empty vex repository in %s\n", r.VexDir)
			return nil
		},
	}
}
