// Package atmosphere provides the atmospheric overburden model consulted
// for slant depth values. The model is an explicit object owned by the
// caller: constructed once, queried read-only afterwards. Concurrent
// queries against one model need external serialization.
package atmosphere

import (
	"fmt"
	"math"
)

// DefaultObservationLevelM is used when a model carries no observation
// level of its own.
const DefaultObservationLevelM = 100.

// Model answers vertical atmospheric thickness (overburden) queries. It is
// either the built-in 5-layer parametrization or a tabulated profile
// loaded with NewFromProfile.
type Model struct {
	id       int
	obsLevel float64 // m
	profile  *profile
}

// Linsley parametrization of the US standard atmosphere, the CORSIKA
// default (MODATM 1). Thickness above height h is a+b*exp(-h/c) in the
// four lower layers and linear in the top layer. Heights in cm,
// thicknesses in g/cm^2.
var (
	linsleyBounds = [5]float64{0, 4.e5, 1.e6, 4.e6, 1.e7}
	linsleyA      = [5]float64{-186.555305, -94.919, 0.61289, 0.0, 0.01128292}
	linsleyB      = [5]float64{1222.6562, 1144.9069, 1305.5948, 540.1778, 1.}
	linsleyC      = [5]float64{994186.38, 878153.55, 636143.04, 772170.16, 1.e9}

	// Height at which the linear top layer reaches zero thickness.
	linsleyTop = 1.128292e7 // cm
)

// New returns the built-in model for the given CORSIKA atmosphere id.
// Only the US standard atmosphere (id 1) is built in; tabulated profiles
// cover everything else via NewFromProfile.
func New(id int) (*Model, error) {
	if id != 1 {
		return nil, fmt.Errorf("no built-in atmosphere model with id %d (only 1, US standard)", id)
	}
	return &Model{id: id, obsLevel: DefaultObservationLevelM}, nil
}

// ID returns the atmosphere model identifier.
func (m *Model) ID() int {
	return m.id
}

// ObservationLevel returns the observation level in metres supplied by the
// model.
func (m *Model) ObservationLevel() float64 {
	return m.obsLevel
}

// Thickness returns the vertical atmospheric overburden in g/cm^2 above
// the given height in cm. Heights above the top of the atmosphere return 0.
func (m *Model) Thickness(heightCm float64) float64 {
	if m.profile != nil {
		return m.profile.thickness(heightCm)
	}
	return linsleyThickness(heightCm)
}

func linsleyThickness(heightCm float64) float64 {
	if heightCm >= linsleyTop {
		return 0
	}
	layer := 0
	for i := 1; i < len(linsleyBounds); i++ {
		if heightCm >= linsleyBounds[i] {
			layer = i
		}
	}
	if layer == 4 {
		return linsleyA[4] - linsleyB[4]*heightCm/linsleyC[4]
	}
	return linsleyA[layer] + linsleyB[layer]*math.Exp(-heightCm/linsleyC[layer])
}
