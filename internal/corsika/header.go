package corsika

import "fmt"

// Positions of the documented physical quantities within the positional
// CORSIKA run header block (the RUNH sub-block, 273 words).
const (
	posPrimaryID   = 2
	posZenith      = 10
	posAzimuth     = 11
	posRunNumber   = 43
	posDate        = 44
	posVersion     = 45
	posObsHeight   = 47
	posSlope       = 57
	posEnergyMin   = 58
	posEnergyMax   = 59
	posCutHadron   = 60
	posCutMuon     = 61
	posCutElectron = 62
	posCutPhoton   = 63
	posMagneticX   = 70
	posMagneticZ   = 71

	// minBlockLen is the smallest buffer that covers every field above.
	minBlockLen = 72
)

// RunHeader names the run-level metadata of one CORSIKA run. It replaces
// index-based access into the raw positional buffer with one field per
// documented quantity. The converter never mutates it and performs no
// plausibility checks on the values.
type RunHeader struct {
	RunNumber int
	Date      int
	Version   float64
	PrimaryID int

	Zenith  float64 // rad
	Azimuth float64 // rad

	EnergyMin float64 // GeV
	EnergyMax float64 // GeV
	Slope     float64

	MagneticX float64
	MagneticZ float64

	ObsHeightCm float64

	// Energy cuts in GeV: hadron, muon, electron, photon.
	CutHadron   float64
	CutMuon     float64
	CutElectron float64
	CutPhoton   float64
}

// RunHeaderFromBlock maps the raw positional buffer onto the named record.
// Field semantics beyond the documented positions are not checked; a buffer
// whose layout does not match the expected one produces silently wrong
// output rather than an error.
func RunHeaderFromBlock(block []float64) (*RunHeader, error) {
	if len(block) < minBlockLen {
		return nil, fmt.Errorf("run header block too short: %d words, need %d", len(block), minBlockLen)
	}
	return &RunHeader{
		RunNumber:   int(block[posRunNumber]),
		Date:        int(block[posDate]),
		Version:     block[posVersion],
		PrimaryID:   int(block[posPrimaryID]),
		Zenith:      block[posZenith],
		Azimuth:     block[posAzimuth],
		EnergyMin:   block[posEnergyMin],
		EnergyMax:   block[posEnergyMax],
		Slope:       block[posSlope],
		MagneticX:   block[posMagneticX],
		MagneticZ:   block[posMagneticZ],
		ObsHeightCm: block[posObsHeight],
		CutHadron:   block[posCutHadron],
		CutMuon:     block[posCutMuon],
		CutElectron: block[posCutElectron],
		CutPhoton:   block[posCutPhoton],
	}, nil
}
