package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adharris/fvswalk/pkg/digraph"
	"github.com/adharris/fvswalk/pkg/iotext"
	"github.com/adharris/fvswalk/pkg/render/nodelink"
)

// newInspectCmd builds the hidden debug subcommand described in §4.M. It
// performs no part of the solve: it only renders the SCC decomposition (and
// optionally a cut set) as an SVG for visual auditing.
func newInspectCmd() *cobra.Command {
	var cutPath string
	var outPath string

	cmd := &cobra.Command{
		Use:    "inspect <input>",
		Short:  "Render the SCC decomposition of a graph as SVG (debug)",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0], cutPath, outPath)
		},
	}

	cmd.Flags().StringVar(&cutPath, "cut", "", "cut-set file to shade red")
	cmd.Flags().StringVar(&outPath, "out", "inspect.svg", "output SVG path")

	return cmd
}

func runInspect(inputPath, cutPath, outPath string) error {
	g, err := iotext.ImportGraph(inputPath)
	if err != nil {
		return err
	}

	var cut []int
	if cutPath != "" {
		cut, err = iotext.ImportCutSet(cutPath)
		if err != nil {
			return err
		}
	}

	sccs := digraph.Split(g)
	dot := nodelink.ToDOT(g, sccs, nodelink.Options{Cut: cut})

	svg, err := nodelink.RenderSVG(dot)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	printFile(outPath)
	return nil
}
