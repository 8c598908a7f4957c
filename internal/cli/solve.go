package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adharris/fvswalk/pkg/config"
	"github.com/adharris/fvswalk/pkg/digraph"
	"github.com/adharris/fvswalk/pkg/errors"
	"github.com/adharris/fvswalk/pkg/iotext"
	"github.com/adharris/fvswalk/pkg/observability"
	"github.com/adharris/fvswalk/pkg/reduce"
	"github.com/adharris/fvswalk/pkg/rng"
	"github.com/adharris/fvswalk/pkg/traffic"
)

// solveFlags holds the flag values for the solve command, resolved against
// a loaded config file and the built-in defaults by resolveParams.
type solveFlags struct {
	agents          uint
	steps           uint
	batches         uint
	changeThreshold float64
	seed            uint32
	seedSet         bool
	configPath      string
}

// newSolveCmd builds the command that is both the root of fvssolve and,
// conceptually, the "solve" operation: it takes <input> <output> directly,
// per §6.3 of the interface spec.
func newSolveCmd() *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Short: "Compute a feedback vertex set via random-walk traffic simulation",
		Long:  `fvssolve reads a directed graph, decomposes it into strongly connected components, simulates random-walk traffic within each, and greedily removes the least-traveled vertices until the component is acyclic.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), args[0], args[1], flags)
		},
	}

	cmd.Flags().UintVar(&flags.agents, "agents", 0, "number of random-walk agents per simulation batch (default from config or 1000)")
	cmd.Flags().UintVar(&flags.steps, "steps", 0, "number of steps each agent walks per batch (default from config or 1000)")
	cmd.Flags().UintVar(&flags.batches, "batches", 0, "maximum number of simulation batches per component (default from config or 250)")
	cmd.Flags().Float64Var(&flags.changeThreshold, "change-threshold", -1, "stop simulating a component once traffic stabilizes below this delta (default from config or 0.001)")
	cmd.Flags().Uint32Var(&flags.seed, "seed", 0, "PRNG seed (default 0)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "optional TOML file supplying any of the above defaults")

	originalRunE := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		flags.seedSet = cmd.Flags().Changed("seed")
		return originalRunE(cmd, args)
	}

	return cmd
}

// resolveParams applies flags > config file > built-in defaults, per §4.J.
func resolveParams(flags *solveFlags) (traffic.Params, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.LoadConfig(flags.configPath)
		if err != nil {
			return traffic.Params{}, err
		}
		cfg = loaded
	}

	params := traffic.Params{
		Agents:          int(cfg.Agents),
		Steps:           int(cfg.Steps),
		Batches:         int(cfg.Batches),
		ChangeThreshold: cfg.ChangeThreshold,
	}
	if flags.agents != 0 {
		params.Agents = int(flags.agents)
	}
	if flags.steps != 0 {
		params.Steps = int(flags.steps)
	}
	if flags.batches != 0 {
		params.Batches = int(flags.batches)
	}
	if flags.changeThreshold >= 0 {
		params.ChangeThreshold = flags.changeThreshold
	}

	if err := errors.ValidateAgents(params.Agents); err != nil {
		return traffic.Params{}, err
	}
	if err := errors.ValidateSteps(params.Steps); err != nil {
		return traffic.Params{}, err
	}
	if err := errors.ValidateBatches(params.Batches); err != nil {
		return traffic.Params{}, err
	}
	if err := errors.ValidateChangeThreshold(params.ChangeThreshold); err != nil {
		return traffic.Params{}, err
	}

	return params, nil
}

func runSolve(ctx context.Context, inputPath, outputPath string, flags *solveFlags) error {
	logger := loggerFromContext(ctx)

	params, err := resolveParams(flags)
	if err != nil {
		return err
	}

	gen := rng.Default()
	if flags.seedSet {
		gen = rng.New(flags.seed)
	}

	observability.SetSolveHooks(newCLISolveHooks(logger))
	defer observability.Reset()

	p := newProgress(logger)
	g, err := iotext.ImportGraph(inputPath)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Decoded %d vertices, %d edges", g.NumVertices(), g.NumEdges()))

	sccs := digraph.Split(g)
	nonTrivial := 0
	for _, sub := range sccs {
		if !isTrivialComponent(sub) {
			nonTrivial++
		}
	}
	observability.Solve().OnSCCSplit(ctx, len(sccs), nonTrivial)

	var cut []int
	index := 0
	for _, sub := range sccs {
		if isTrivialComponent(sub) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		index++
		observability.Solve().OnComponentStart(ctx, index, nonTrivial, sub.NumVertices())

		traf, err := traffic.Simulate(sub, gen, params, func(batchIndex int, delta float64) {
			observability.Solve().OnBatch(ctx, batchIndex, delta)
		})
		if err != nil {
			return err
		}

		componentCut := reduce.Greedy(sub, traf, func(processed, total int) {
			observability.Solve().OnVertex(ctx, processed, total)
		})
		cut = append(cut, componentCut...)

		observability.Solve().OnComponentDone(ctx, index, nonTrivial, len(componentCut))
	}

	if err := iotext.ExportCutSet(cut, outputPath); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Wrote cut set of %d vertices", len(cut)))

	printStats(g.NumVertices(), g.NumEdges(), len(sccs), len(cut))
	return nil
}

// isTrivialComponent reports whether an SCC needs no simulation: a
// singleton with no edges at all. A singleton with a self-loop is NOT
// trivial - digraph.Split keeps the self-loop edge in its induced
// subgraph, so checking NumEdges rather than NumVertices is what
// distinguishes the two. A self-loop vertex still must run through
// traffic.Simulate/reduce.Greedy so it ends up in the cut set; skipping it
// here would leave it in the output graph, where it forms an uncut cycle
// all by itself.
func isTrivialComponent(sub *digraph.Graph) bool {
	return sub.NumEdges() == 0
}
