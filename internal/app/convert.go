package app

import (
	"math"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fieldscan/surveyor/pkg/geometry"
)

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func maxDimension(size geometry.Vector3) float64 {
	return math.Max(size.X, math.Max(size.Y, size.Z))
}

// hexToColor parses a "#rrggbb" color string. Unparseable strings come back
// white so a bad palette entry is visible instead of invisible.
func hexToColor(s string) rl.Color {
	if len(s) != 7 || s[0] != '#' {
		return rl.White
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return rl.White
	}
	return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255)
}
