package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/adharris/fvswalk/pkg/observability"
)

// cliSolveHooks implements observability.SolveHooks by forwarding every
// event to a charmbracelet/log logger. It is the channel through which
// pkg/traffic and pkg/reduce's progress callbacks reach the CLI's logger
// without either package importing charmbracelet/log directly.
type cliSolveHooks struct {
	logger *log.Logger
}

// newCLISolveHooks returns hooks that log through l. Pass it to
// observability.SetSolveHooks before running the solver.
func newCLISolveHooks(l *log.Logger) *cliSolveHooks {
	return &cliSolveHooks{logger: l}
}

func (h *cliSolveHooks) OnSCCSplit(_ context.Context, total, nonTrivial int) {
	h.logger.Infof("Split into %d components, %d non-trivial", total, nonTrivial)
}

func (h *cliSolveHooks) OnComponentStart(_ context.Context, index, total, size int) {
	h.logger.Debugf("Component %d/%d: simulating %d vertices", index, total, size)
}

func (h *cliSolveHooks) OnBatch(_ context.Context, batchIndex int, delta float64) {
	h.logger.Debugf("Batch %d: traffic delta %.5f", batchIndex, delta)
}

func (h *cliSolveHooks) OnVertex(_ context.Context, processed, total int) {
	h.logger.Debugf("Reduction: processed %d/%d vertices", processed, total)
}

func (h *cliSolveHooks) OnComponentDone(_ context.Context, index, total, cutSize int) {
	h.logger.Debugf("Component %d/%d: cut %d vertices", index, total, cutSize)
}

var _ observability.SolveHooks = (*cliSolveHooks)(nil)
