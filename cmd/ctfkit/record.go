package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"ctfkit/lttng"
)

var recordCmd = &cobra.Command{
	Use:   "record [dir]",
	Short: "Record a trace described by ctfkit.toml",
	Long: `record walks up from the given directory (default: the working
directory) to a ctfkit.toml manifest, creates the LTTng session it
describes, and records until the configured duration elapses or the
process is interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configureColor(cmd); err != nil {
			return err
		}
		startDir := "."
		if len(args) == 1 {
			startDir = args[0]
		}
		manifest, ok, err := loadRecordManifest(startDir)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New(noCtfkitTomlMessage)
		}
		return runRecord(cmd, manifest)
	},
}

func runRecord(cmd *cobra.Command, manifest *recordManifest) (err error) {
	cfg := manifest.Config

	domain, err := lttng.ParseDomain(cfg.Session.Domain)
	if err != nil {
		return fmt.Errorf("%s: %w", manifest.Path, err)
	}
	contexts := make([]lttng.Context, 0, len(cfg.Record.Contexts))
	for _, name := range cfg.Record.Contexts {
		ctx, err := lttng.ParseContext(name)
		if err != nil {
			return fmt.Errorf("%s: %w", manifest.Path, err)
		}
		contexts = append(contexts, ctx)
	}
	events := cfg.Record.Events
	if len(events) == 0 {
		events = []string{lttng.UserspaceAll}
	}

	consumer, err := lttng.NewFileSystemConsumer(resolveOutputDir(manifest))
	if err != nil {
		return err
	}
	session, err := lttng.NewTracer(domain).CreateSession(cfg.Session.Name, consumer)
	if err != nil {
		return err
	}
	defer func() {
		if derr := session.Destroy(); derr != nil && err == nil {
			err = derr
		}
	}()

	for _, ctx := range contexts {
		if err := session.AddContext(ctx); err != nil {
			return err
		}
	}
	for _, pattern := range events {
		if err := session.EnableEvent(pattern); err != nil {
			return err
		}
	}
	if err := session.Start(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !quietEnabled(cmd) {
		fmt.Fprintf(out, "recording session %q to %s\n", session.Name(), consumer.Path())
	}
	if err := waitRecording(cmd, cfg.Record.Duration); err != nil {
		return err
	}
	if err := session.Stop(); err != nil {
		return err
	}
	if !quietEnabled(cmd) {
		fmt.Fprintf(out, "trace written to %s\n", consumer.Path())
	}
	return nil
}

// waitRecording blocks for the configured duration, or until interrupted
// when no duration is set. An interrupt during a timed recording stops it
// early without error.
func waitRecording(cmd *cobra.Command, duration string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if duration == "" {
		<-ctx.Done()
		return nil
	}
	d, err := time.ParseDuration(duration)
	if err != nil {
		return err
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
	return nil
}
