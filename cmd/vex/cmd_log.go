package main

import (
	"fmt"

	"github.com/mkerring/vex/pkg/repo"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	var oneline bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show commit history",
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

			entries, err := r.Log(head)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "no commits yet")
				return nil
			}

			for _, e := range entries {
				if oneline {
					short := string(e.Hash)
					if len(short) > 8 {
						short = short[:8]
					}
					fmt.Fprintf(out, "%s %s\n", short, e.Commit.Message)
					continue
				}

				if e.Hash == head {
					fmt.Fprintf(out, "commit %s (HEAD)\n", e.Hash)
				} else {
					fmt.Fprintf(out, "commit %s\n", e.Hash)
				}
				fmt.Fprintf(out, "Date:   %s\n", e.Commit.TimeStamp.Format("2006-01-02 15:04:05"))
				fmt.Fprintln(out)
				fmt.Fprintf(out, "    %s\n", e.Commit.Message)
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&oneline, "oneline", false, "compact one-line format")

	return cmd
}
