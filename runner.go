package loom

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/loom/pkg/machine"
)

// DefaultMaxSteps bounds a run before it is declared stuck.
const DefaultMaxSteps = 1 << 20

// ErrStepLimit is returned when a run reaches the step bound without a
// terminal status.
var ErrStepLimit = errors.New("loom: step limit reached")

// Runner drives a machine from loaded input to a terminal status. It
// owns the ambient concerns of a run — logging, lifecycle hooks,
// metrics and frame rendering — so the machine package stays pure.
type Runner struct {
	logger    *slog.Logger
	hooks     LifecycleHooks
	maxSteps  int
	renderer  FrameRenderer
	output    io.Writer
	collector Collector
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithHooks registers lifecycle hooks.
func WithHooks(hooks LifecycleHooks) Option {
	return func(r *Runner) { r.hooks = hooks }
}

// WithMaxSteps overrides the step bound.
func WithMaxSteps(n int) Option {
	return func(r *Runner) { r.maxSteps = n }
}

// WithRenderer sets the frame renderer used when an output writer is
// configured.
func WithRenderer(renderer FrameRenderer) Option {
	return func(r *Runner) { r.renderer = renderer }
}

// WithOutput sets the writer frames are printed to. Without it the run
// is silent.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.output = w }
}

// WithCollector plugs in a metrics collector.
func WithCollector(c Collector) Option {
	return func(r *Runner) { r.collector = c }
}

// NewRunner builds a Runner. By default it is silent, unbounded by
// anything but DefaultMaxSteps, and logs nowhere.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger:   slog.New(slog.DiscardHandler),
		maxSteps: DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run loads input into the machine and steps it to a terminal status.
// The machine's run-state is mutated; its transition table is not. Run
// returns ErrStepLimit if the bound elapses first.
func (r *Runner) Run(m *machine.Machine, input string) (machine.Status, error) {
	m.LoadInput(input)

	r.logger.Debug("input loaded", "title", m.Title(), "len", len(input))
	if r.hooks.OnLoad != nil {
		r.hooks.OnLoad(RunEvent{Title: m.Title(), Input: input})
	}
	if r.collector != nil {
		r.collector.RunStarted()
	}
	r.renderFrame(m)

	for step := 1; step <= r.maxSteps; step++ {
		status := m.Step()
		if r.collector != nil {
			r.collector.StepTaken()
		}
		r.renderFrame(m)

		event := StepEvent{Index: step, Status: status, State: m.Current()}
		if r.hooks.OnStep != nil {
			r.hooks.OnStep(event)
		}

		if status.Terminal() {
			r.logger.Info("run finished",
				"title", m.Title(), "status", status.String(), "steps", step)
			if r.hooks.OnTerminal != nil {
				r.hooks.OnTerminal(event)
			}
			if r.collector != nil {
				r.collector.RunFinished(status, step, m.TapeLen())
			}
			return status, nil
		}
	}

	r.logger.Warn("step limit reached", "title", m.Title(), "max_steps", r.maxSteps)
	return machine.Running, fmt.Errorf("%w after %d steps", ErrStepLimit, r.maxSteps)
}

func (r *Runner) renderFrame(m *machine.Machine) {
	if r.output == nil {
		return
	}
	head, tape := m.Head(), m.Tape()
	if r.renderer != nil {
		fmt.Fprintln(r.output, r.renderer(head, tape))
		return
	}
	fmt.Fprintf(r.output, "%s\n%s\n\n", head, tape)
}
