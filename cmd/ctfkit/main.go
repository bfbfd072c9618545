package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ctfkit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ctfkit",
	Short: "CTF trace recording and inspection toolkit",
	Long:  `ctfkit records LTTng traces and reads back recorded events`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(statCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
