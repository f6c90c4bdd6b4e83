// Package coords implements the CORSIKA to kascade reference frame
// conversion.
//
// CORSIKA uses a right-handed frame with x to north, y to west and z
// upwards, azimuth measured counterclockwise. kascade (and the GrISU
// detector simulation reading our output) uses x to east, y to south and z
// downwards, azimuth measured clockwise. The same transform is applied to
// shower core positions and to photon direction vectors.
package coords

import "math"

const twoPi = 2 * math.Pi

// Reduce maps an arbitrary angle in radians into [0, 2*pi). Exact multiples
// of 2*pi reduce to 0, including negative ones.
func Reduce(angle float64) float64 {
	a := math.Mod(angle, twoPi)
	if a < 0 {
		a += twoPi
	}
	// Adding 2*pi to a tiny negative remainder can round up to exactly
	// 2*pi, which is outside the interval. Fold the boundary (and a
	// possible negative zero) back to 0.
	if a >= twoPi || a == 0 {
		return 0
	}
	return a
}

// Transform converts an azimuth (radians) and a coordinate pair from the
// CORSIKA frame to the kascade frame. The 1.5*pi offset re-anchors the
// azimuth origin, the swap-and-negate of x and y reflects the handedness
// change. Pure function, safe for concurrent use.
func Transform(az, x, y float64) (float64, float64, float64) {
	return Reduce(1.5*math.Pi - Reduce(az)), -y, -x
}
