package link

import (
	"math"

	"github.com/de-tools/dipole-link/pkg/models/domain"
)

const (
	// hertzianMaxRatio is the exclusive upper bound of l/λ for an
	// electrically short dipole.
	hertzianMaxRatio = 1.0 / 50
	// halfWaveTolerance is the absolute tolerance, in metres, on |2l - λ|.
	halfWaveTolerance = 1e-4
)

// Classify returns the kind of a dipole of length l at wavelength lambda.
// The Hertzian test runs first, so a length satisfying both tests is Hertzian.
func Classify(l, lambda float64) domain.AntennaKind {
	ratio := l / lambda
	switch {
	case ratio > 0 && ratio < hertzianMaxRatio:
		return domain.AntennaHertzian
	case math.Abs(2*l-lambda) < halfWaveTolerance:
		return domain.AntennaHalfWave
	default:
		return domain.AntennaUnsupported
	}
}

type kindPair struct {
	tx domain.AntennaKind
	rx domain.AntennaKind
}

var casesByKinds = map[kindPair]domain.LinkCase{
	{domain.AntennaHertzian, domain.AntennaHertzian}: domain.CaseHertzianHertzian,
	{domain.AntennaHertzian, domain.AntennaHalfWave}: domain.CaseHertzianHalfWave,
	{domain.AntennaHalfWave, domain.AntennaHertzian}: domain.CaseHalfWaveHertzian,
	{domain.AntennaHalfWave, domain.AntennaHalfWave}: domain.CaseHalfWaveHalfWave,
}

// CaseOf combines two independently classified antennas into a link case.
// Any pair with an unsupported antenna is CaseUnsupported.
func CaseOf(tx, rx domain.AntennaKind) domain.LinkCase {
	if c, ok := casesByKinds[kindPair{tx, rx}]; ok {
		return c
	}
	return domain.CaseUnsupported
}

// ClassifyPair classifies both antennas of the link at wavelength lambda.
func ClassifyPair(in domain.LinkInputs, lambda float64) domain.LinkCase {
	return CaseOf(Classify(in.TxLength, lambda), Classify(in.RxLength, lambda))
}
