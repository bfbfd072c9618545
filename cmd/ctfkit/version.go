package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"ctfkit/ctf"
	"ctfkit/ctf/replay"
	"ctfkit/internal/version"
)

// buildInfo is everything the version command reports: build metadata baked
// in via -ldflags plus the trace format this binary understands.
type buildInfo struct {
	Version        string   `json:"version"`
	GitCommit      string   `json:"git_commit,omitempty"`
	GitMessage     string   `json:"git_message,omitempty"`
	BuildDate      string   `json:"build_date,omitempty"`
	SnapshotSchema uint16   `json:"snapshot_schema"`
	Scopes         []string `json:"scopes"`
}

var versionAsJSON bool

func init() {
	versionCmd.Flags().BoolVar(&versionAsJSON, "json", false, "emit machine-readable output")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the ctfkit version and supported trace format",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := collectBuildInfo()
		if versionAsJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}
		renderBuildInfo(cmd.OutOrStdout(), info)
		return nil
	},
}

func collectBuildInfo() buildInfo {
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}
	scopes := ctf.Scopes()
	names := make([]string, len(scopes))
	for i, s := range scopes {
		names[i] = s.String()
	}
	return buildInfo{
		Version:        v,
		GitCommit:      strings.TrimSpace(version.GitCommit),
		GitMessage:     strings.TrimSpace(version.GitMessage),
		BuildDate:      strings.TrimSpace(version.BuildDate),
		SnapshotSchema: replay.SchemaVersion,
		Scopes:         names,
	}
}

func renderBuildInfo(out io.Writer, info buildInfo) {
	fmt.Fprintf(out, "ctfkit %s\n", info.Version)
	if info.GitCommit != "" {
		fmt.Fprintf(out, "commit:          %s", info.GitCommit)
		if info.GitMessage != "" {
			fmt.Fprintf(out, " (%s)", info.GitMessage)
		}
		fmt.Fprintln(out)
	}
	if info.BuildDate != "" {
		fmt.Fprintf(out, "built:           %s\n", info.BuildDate)
	}
	fmt.Fprintf(out, "snapshot schema: v%d\n", info.SnapshotSchema)
	fmt.Fprintf(out, "scopes:          %s\n", strings.Join(info.Scopes, " "))
}
