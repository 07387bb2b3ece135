package inspect

import "github.com/fieldscan/surveyor/pkg/geometry"

// nearestPoint returns the index of the point closest to position within
// maxDistance. Ties keep the earlier index; a strictly closer point always
// wins. Returns ok false when nothing is within range.
func nearestPoint(points []geometry.Vector3, position geometry.Vector3, maxDistance float64) (index int, distance float64, ok bool) {
	index = -1
	distance = maxDistance

	for i, p := range points {
		d := position.Distance(p)
		if d > distance || (ok && d == distance) {
			continue
		}
		index = i
		distance = d
		ok = true
	}
	return index, distance, ok
}
