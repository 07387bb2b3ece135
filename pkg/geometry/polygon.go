package geometry

import "math"

// PolygonArea returns the area of the polygon described by the ordered
// vertex sequence, using fan triangulation from the first vertex: the sum of
// the triangle areas (points[0], points[i], points[i+1]).
//
// This is exact for planar convex and most simple polygons in 3D. It is not
// guaranteed correct for self-intersecting polygons; that is a documented
// limitation, not a special case.
//
// Fewer than 3 points describe no polygon and yield an area of 0.
func PolygonArea(points []Vector3) float64 {
	if len(points) < 3 {
		return 0
	}

	area := 0.0
	for i := 1; i < len(points)-1; i++ {
		e1 := points[i].Sub(points[0])
		e2 := points[i+1].Sub(points[0])
		area += e1.Cross(e2).Length() / 2.0
	}
	return area
}

// PolygonCentroid returns the arithmetic mean of the vertices. This is the
// vertex centroid, not the area-weighted centroid; it is intended for label
// placement, not for center-of-mass calculations.
func PolygonCentroid(points []Vector3) Vector3 {
	if len(points) == 0 {
		return Vector3{}
	}

	sum := Vector3{}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(points)))
}

// PolygonPerimeter returns the total length of the consecutive edges of the
// vertex sequence. If closed is true the implicit edge from the last vertex
// back to the first is included. Fewer than 2 points have perimeter 0.
func PolygonPerimeter(points []Vector3, closed bool) float64 {
	if len(points) < 2 {
		return 0
	}

	total := 0.0
	for i := 0; i < len(points)-1; i++ {
		total += points[i].Distance(points[i+1])
	}
	if closed {
		total += points[len(points)-1].Distance(points[0])
	}
	return total
}

// PointInPolygonXZ reports whether the point lies inside the polygon when
// both are projected onto the horizontal (x,z) plane. The y coordinates are
// ignored entirely, so the test is only meaningful for polygons that are
// roughly planar in y; a point far above or below the polygon but within its
// horizontal footprint is still reported inside.
//
// Uses the standard ray-casting parity test. Fewer than 3 vertices return
// false.
func PointInPolygonXZ(point Vector3, polygon []Vector3) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		xi, zi := polygon[i].X, polygon[i].Z
		xj, zj := polygon[j].X, polygon[j].Z

		if (zi > point.Z) != (zj > point.Z) &&
			point.X < (xj-xi)*(point.Z-zi)/(zj-zi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// DistancePointToSegment returns the shortest distance from a point to the
// segment between segStart and segEnd, clamping the projection to the
// segment's endpoints. A degenerate zero-length segment behaves as a point.
func DistancePointToSegment(point, segStart, segEnd Vector3) float64 {
	seg := segEnd.Sub(segStart)
	lenSq := seg.Dot(seg)
	if lenSq == 0 {
		return point.Distance(segStart)
	}

	t := point.Sub(segStart).Dot(seg) / lenSq
	t = math.Max(0, math.Min(1, t))

	closest := segStart.Add(seg.Mul(t))
	return point.Distance(closest)
}
