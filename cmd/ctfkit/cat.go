package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ctfkit/ctf"
	"ctfkit/ctf/replay"
)

var catLimit int

func init() {
	catCmd.Flags().IntVar(&catLimit, "limit", 0, "stop after printing this many events (0 = all)")
}

var catCmd = &cobra.Command{
	Use:   "cat <trace-root>",
	Short: "Print every event of a recorded trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configureColor(cmd); err != nil {
			return err
		}

		trace, err := ctf.Open(args[0], replay.New())
		if err != nil {
			return err
		}
		defer trace.Close()

		out := cmd.OutOrStdout()
		printed := 0
		err = trace.ForEachEvent(func(ev *ctf.Event) ctf.Verdict {
			fmt.Fprintln(out, ev)
			printed++
			if catLimit > 0 && printed >= catLimit {
				return ctf.VerdictStop
			}
			return ctf.VerdictOK
		})
		if err != nil {
			return err
		}
		if !quietEnabled(cmd) {
			fmt.Fprintf(out, "%d events\n", printed)
		}
		return nil
	},
}
