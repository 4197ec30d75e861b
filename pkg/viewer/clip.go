package viewer

import "math"

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// clipLine clips a screen-space segment to the viewport grown by margin on
// every side (Liang-Barsky). It reports false when nothing of the segment is
// inside or when a coordinate is not finite.
func clipLine(x1, y1, x2, y2, width, height, margin float64) (float64, float64, float64, float64, bool) {
	if !finite(x1, y1, x2, y2) {
		return 0, 0, 0, 0, false
	}

	dx := x2 - x1
	dy := y2 - y1
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x1 + margin, width + margin - x1, y1 + margin, height + margin - y1}

	t0, t1 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}

		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}

	cx1, cy1 := x1+t0*dx, y1+t0*dy
	cx2, cy2 := x1+t1*dx, y1+t1*dy
	if !finite(cx1, cy1, cx2, cy2) {
		return 0, 0, 0, 0, false
	}
	return cx1, cy1, cx2, cy2, true
}
