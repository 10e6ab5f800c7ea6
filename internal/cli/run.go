package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/loom"
	"github.com/aretw0/loom/internal/metrics"
	"github.com/aretw0/loom/internal/presentation/tui"
	"github.com/aretw0/loom/pkg/machine"
)

// RunOptions configure one simulation session.
type RunOptions struct {
	Trace    bool
	Stats    bool
	MaxSteps int
	Logger   *slog.Logger
}

// RunSession drives the machine on the input, prints the outcome line,
// and optionally the per-step frames and the metrics dump. A rejected
// or halted input is not an error; only infrastructure failures are.
func RunSession(m *machine.Machine, input string, opts RunOptions) error {
	runnerOpts := []loom.Option{}
	if opts.Logger != nil {
		runnerOpts = append(runnerOpts, loom.WithLogger(opts.Logger))
	}
	if opts.MaxSteps > 0 {
		runnerOpts = append(runnerOpts, loom.WithMaxSteps(opts.MaxSteps))
	}
	if opts.Trace {
		runnerOpts = append(runnerOpts,
			loom.WithOutput(os.Stdout),
			loom.WithRenderer(tui.NewFrameRenderer()),
		)
	}

	var collector *metrics.Collector
	if opts.Stats {
		collector = metrics.New()
		runnerOpts = append(runnerOpts, loom.WithCollector(collector))
	}

	runner := loom.NewRunner(runnerOpts...)
	status, err := runner.Run(m, input)
	if err != nil {
		if errors.Is(err, loom.ErrStepLimit) {
			fmt.Println(err)
			return nil
		}
		return err
	}

	fmt.Println(status.Message())

	if collector != nil {
		fmt.Println()
		if err := collector.Dump(os.Stdout); err != nil {
			return err
		}
	}
	return nil
}
