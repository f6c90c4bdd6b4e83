// Package units provides shared conversion constants for the quantities
// carried by CORSIKA records.
package units

import "math"

// DegPerRad converts radians to degrees when multiplied, degrees to radians
// when divided.
const DegPerRad = 180. / math.Pi

// GeVToTeV converts an energy from GeV to TeV.
func GeVToTeV(energyGeV float64) float64 {
	return energyGeV / 1.e3
}

// CmToM converts a length from centimetres to metres. CORSIKA stores
// heights in cm; the GrISU header wants metres.
func CmToM(lengthCm float64) float64 {
	return lengthCm * 0.01
}

// MToCm converts a length from metres to centimetres.
func MToCm(lengthM float64) float64 {
	return lengthM * 100.
}

// DegToRad converts an angle from degrees to radians.
func DegToRad(angleDeg float64) float64 {
	return angleDeg / DegPerRad
}

// RadToDeg converts an angle from radians to degrees.
func RadToDeg(angleRad float64) float64 {
	return angleRad * DegPerRad
}
