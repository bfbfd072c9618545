package main

import (
	"fmt"
	"runtime"

	"fortio.org/safecast"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"ctfkit/ctf"
	"ctfkit/ctf/replay"
	"ctfkit/internal/observ"
)

var (
	statScope   string
	statField   string
	statJobs    int
	statTimings bool
)

func init() {
	statCmd.Flags().StringVar(&statScope, "scope", ctf.ScopeEventFields.String(), "scope the field lives in")
	statCmd.Flags().StringVar(&statField, "field", "size", "integer field to aggregate")
	statCmd.Flags().IntVar(&statJobs, "jobs", 0, "traces decoded in parallel (0 = GOMAXPROCS)")
	statCmd.Flags().BoolVar(&statTimings, "timings", false, "show timing information")
}

var statCmd = &cobra.Command{
	Use:   "stat <trace-root>...",
	Short: "Aggregate an integer field across recorded traces",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configureColor(cmd); err != nil {
			return err
		}

		scope, err := ctf.ParseScope(statScope)
		if err != nil {
			return err
		}
		spec := ctf.IntegerSpec(scope, statField)

		timer := observ.NewTimer()
		stopDecode := timer.Phase("decode")

		jobs := statJobs
		if jobs <= 0 {
			jobs = runtime.GOMAXPROCS(0)
		}

		// Independent traces, one goroutine each. Result slots are indexed
		// per trace, no mutex needed.
		results := make([]fieldStats, len(args))
		g, gctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(min(jobs, len(args)))
		for i, root := range args {
			i, root := i, root
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				st, err := collectFieldStats(root, spec)
				if err != nil {
					return fmt.Errorf("%s: %w", root, err)
				}
				results[i] = st
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		stopDecode(fmt.Sprintf("%d traces", len(args)))

		out := cmd.OutOrStdout()
		renderStatsTable(out, spec, results)
		if statTimings {
			fmt.Fprint(out, timer.Summary())
		}
		return nil
	},
}

// fieldStats accumulates one trace's integer field samples.
type fieldStats struct {
	Root  string
	Count uint64
	Min   uint64
	Max   uint64
	Sum   uint64
}

func (s *fieldStats) add(v uint64) {
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if v > s.Max {
		s.Max = v
	}
	s.Sum += v
	s.Count++
}

func (s *fieldStats) mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Sum) / float64(s.Count)
}

func collectFieldStats(root string, spec ctf.FieldSpec[ctf.Integer]) (fieldStats, error) {
	trace, err := ctf.Open(root, replay.New())
	if err != nil {
		return fieldStats{}, err
	}
	defer trace.Close()

	stats := fieldStats{Root: root}
	err = trace.ForEachEvent(func(ev *ctf.Event) ctf.Verdict {
		n, ok := spec.Interpret(ev)
		if !ok {
			// The field is absent or has the wrong shape in this event.
			return ctf.VerdictOK
		}
		v, ok := integerAsUint64(n)
		if !ok {
			return ctf.VerdictContinueWithError
		}
		stats.add(v)
		return ctf.VerdictOK
	})
	if err != nil {
		return fieldStats{}, err
	}
	return stats, nil
}

// integerAsUint64 widens the sample to an unsigned accumulator. Negative
// signed samples are rejected rather than wrapped.
func integerAsUint64(n ctf.Integer) (uint64, bool) {
	if u, err := n.Uint64(); err == nil {
		return u, true
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	u, err := safecast.Conv[uint64](i)
	if err != nil {
		return 0, false
	}
	return u, true
}
