package loom

import "github.com/aretw0/loom/pkg/machine"

// Version of the loom library.
const Version = "0.1.0"

// RunEvent describes a run about to start.
type RunEvent struct {
	Title string
	Input string
}

// StepEvent describes one completed step.
type StepEvent struct {
	// Index is 1-based: the first step is 1.
	Index  int
	Status machine.Status
	State  string
}

// LifecycleHooks are observability callbacks fired by the Runner. Any
// nil hook is skipped.
type LifecycleHooks struct {
	OnLoad     func(RunEvent)
	OnStep     func(StepEvent)
	OnTerminal func(StepEvent)
}

// FrameRenderer turns a head line and a tape line into one display
// frame. The Runner calls it once after load and once per step when an
// output writer is configured.
type FrameRenderer func(head, tape string) string

// Collector receives run accounting, typically backed by a metrics
// registry.
type Collector interface {
	RunStarted()
	StepTaken()
	RunFinished(status machine.Status, steps, tapeCells int)
}
