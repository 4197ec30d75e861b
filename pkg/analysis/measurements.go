package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/scaffoldview/pkg/geometry"
	"github.com/philipparndt/scaffoldview/pkg/scene"
)

// EdgeInfo contains information about a wireframe edge
type EdgeInfo struct {
	Start       geometry.Vector3
	End         geometry.Vector3
	Length      float64
	Part        int
	Name        string
	Highlighted bool
}

// MeasurementResult contains various measurements of a scene frame
type MeasurementResult struct {
	BoundingBox      geometry.BoundingBox
	Dimensions       geometry.Vector3
	PartCount        int
	HighlightedParts int
	EdgeCount        int
	MinEdgeLength    float64
	MaxEdgeLength    float64
	AvgEdgeLength    float64
	AllEdges         []EdgeInfo
}

// AnalyzeFrame measures every segment of a frame in display space
func AnalyzeFrame(frame *scene.Frame) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:      frame.Bounds,
		PartCount:        frame.Parts,
		HighlightedParts: frame.HighlightedParts(),
		AllEdges:         make([]EdgeInfo, 0, len(frame.Segments)),
	}

	if !frame.Bounds.IsEmpty() {
		result.Dimensions = frame.Bounds.Size()
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, segment := range frame.Segments {
		length := segment.Length()

		result.AllEdges = append(result.AllEdges, EdgeInfo{
			Start:       segment.Start,
			End:         segment.End,
			Length:      length,
			Part:        segment.Part,
			Name:        segment.Name,
			Highlighted: segment.Highlighted,
		})

		totalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(edges []EdgeInfo, minLength, maxLength float64) []EdgeInfo {
	var found []EdgeInfo
	for _, edge := range edges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			found = append(found, edge)
		}
	}
	return found
}

// FindEdgesByPart returns the edges of every part with the given name
func FindEdgesByPart(result *MeasurementResult, name string) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Name == name {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(edges []EdgeInfo, count int) []EdgeInfo {
	return topEdges(edges, count, func(a, b EdgeInfo) bool {
		return a.Length > b.Length
	})
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(edges []EdgeInfo, count int) []EdgeInfo {
	return topEdges(edges, count, func(a, b EdgeInfo) bool {
		return a.Length < b.Length
	})
}

func topEdges(edges []EdgeInfo, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	sorted := make([]EdgeInfo, len(edges))
	copy(sorted, edges)

	// Stable keeps input order among equal lengths, which boxes have plenty of
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	if count < 0 || count > len(sorted) {
		count = len(sorted)
	}

	return sorted[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
