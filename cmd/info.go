package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/scaffoldview/pkg/analysis"
	"github.com/philipparndt/scaffoldview/pkg/scene"
)

func newInfoCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Display information about a scaffold file",
		Long:  "Show part and edge counts, bounding box, dimensions and edge statistics after the scene transform.",
		Args:  exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, opts, args[0])
		},
	}
}

func exactlyOneFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageErrorf("%s expects exactly one input file, received %d", cmd.Name(), len(args))
	}
	return nil
}

func runInfo(cmd *cobra.Command, opts *options, filename string) error {
	styles, err := opts.cfg.Style.Styles()
	if err != nil {
		return err
	}

	sceneOpts := opts.sceneOptions(cmd)
	model, frame, err := loadScene(filename, sceneOpts, styles)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeFrame(frame)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Scaffold File Information")
	fmt.Fprintln(out, "=========================")
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Scene:")
	fmt.Fprintf(out, "  Parts: %d\n", result.PartCount)
	fmt.Fprintf(out, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "  Highlighted parts: %d\n", result.HighlightedParts)
	if sceneOpts.Highlight != nil {
		fmt.Fprintf(out, "  Highlighted indices: %v\n", model.Named(*sceneOpts.Highlight))
	}
	fmt.Fprintf(out, "  View: %s\n\n", describeView(frame.View))

	if result.PartCount == 0 {
		fmt.Fprintln(out, "No parts.")
		return nil
	}

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %s\n", analysis.FormatMeasurement(result.Dimensions.X, ""))
	fmt.Fprintf(out, "  Depth (Y): %s\n", analysis.FormatMeasurement(result.Dimensions.Y, ""))
	fmt.Fprintf(out, "  Height (Z): %s\n", analysis.FormatMeasurement(result.Dimensions.Z, ""))
	fmt.Fprintf(out, "  Diagonal: %s\n\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), ""))

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, ""))
	fmt.Fprintf(out, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, ""))
	fmt.Fprintf(out, "  Average: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, ""))

	return nil
}

func describeView(v scene.View) string {
	projection := "perspective"
	if v.Orthographic {
		projection = "orthographic"
	}
	return fmt.Sprintf("%s, elevation %.0f°, azimuth %.0f°", projection, v.Elevation, v.Azimuth)
}
