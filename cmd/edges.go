package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/philipparndt/scaffoldview/pkg/analysis"
)

type edgesOptions struct {
	count     int
	part      string
	longest   bool
	shortest  bool
	minLength float64
	maxLength float64
}

func newEdgesCommand(opts *options) *cobra.Command {
	edgeOpts := &edgesOptions{}

	edgesCmd := &cobra.Command{
		Use:   "edges <file>",
		Short: "List the wireframe edges of a scaffold file",
		Long:  "List transformed edges, optionally limited to one part name or sorted by length.",
		Args:  exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdges(cmd, opts, edgeOpts, args[0])
		},
	}

	edgesCmd.Flags().IntVarP(&edgeOpts.count, "count", "n", 12, "Number of edges to display")
	edgesCmd.Flags().StringVar(&edgeOpts.part, "part", "", "Only edges of parts with this exact name")
	edgesCmd.Flags().BoolVarP(&edgeOpts.longest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgeOpts.shortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().Float64Var(&edgeOpts.minLength, "min", 0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgeOpts.maxLength, "max", 0, "Maximum edge length filter")

	return edgesCmd
}

func runEdges(cmd *cobra.Command, opts *options, edgeOpts *edgesOptions, filename string) error {
	if edgeOpts.longest && edgeOpts.shortest {
		return usageErrorf("--longest and --shortest cannot be combined")
	}

	flags := cmd.Flags()
	lengthFilter := flags.Changed("min") || flags.Changed("max")
	if lengthFilter && !flags.Changed("max") {
		edgeOpts.maxLength = math.Inf(1)
	}
	if edgeOpts.minLength > edgeOpts.maxLength {
		return usageErrorf("--min %g is greater than --max %g", edgeOpts.minLength, edgeOpts.maxLength)
	}

	styles, err := opts.cfg.Style.Styles()
	if err != nil {
		return err
	}

	_, frame, err := loadScene(filename, opts.sceneOptions(cmd), styles)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeFrame(frame)

	edges := result.AllEdges
	scope := "all parts"
	if flags.Changed("part") {
		edges = analysis.FindEdgesByPart(result, edgeOpts.part)
		scope = fmt.Sprintf("part %q", edgeOpts.part)
	}
	if lengthFilter {
		edges = analysis.FindEdgesByLength(edges, edgeOpts.minLength, edgeOpts.maxLength)
		scope += fmt.Sprintf(", length %g to %g", edgeOpts.minLength, edgeOpts.maxLength)
	}

	var title string
	switch {
	case edgeOpts.longest:
		edges = analysis.FindLongestEdges(edges, edgeOpts.count)
		title = fmt.Sprintf("Top %d Longest Edges (%s)", len(edges), scope)
	case edgeOpts.shortest:
		edges = analysis.FindShortestEdges(edges, edgeOpts.count)
		title = fmt.Sprintf("Top %d Shortest Edges (%s)", len(edges), scope)
	default:
		total := len(edges)
		if edgeOpts.count >= 0 && len(edges) > edgeOpts.count {
			edges = edges[:edgeOpts.count]
		}
		title = fmt.Sprintf("Edges of %s (showing %d of %d)", scope, len(edges), total)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total edges in scene: %d\n\n", result.EdgeCount)

	if len(edges) == 0 {
		fmt.Fprintln(out, "No edges found matching the criteria.")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-20s %-35s %-35s %-15s\n", "Index", "Part", "Start", "End", "Length")
	fmt.Fprintln(out, "----------------------------------------------------------------------------------------------------------------")
	for i, edge := range edges {
		name := edge.Name
		if edge.Highlighted {
			name += " *"
		}
		fmt.Fprintf(out, "%-6d %-20s %-35s %-35s %-15.6f\n",
			i+1,
			name,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length)
	}

	return nil
}
