package link

import "github.com/de-tools/dipole-link/pkg/models/domain"

type pipelines struct {
	transmit func(Engine) domain.TransmitProfile
	receive  func(Engine) domain.AntennaProfile
}

func transmitAs(kind domain.AntennaKind) func(Engine) domain.TransmitProfile {
	return func(e Engine) domain.TransmitProfile { return e.Transmit(kind) }
}

func receiveAs(kind domain.AntennaKind) func(Engine) domain.AntennaProfile {
	return func(e Engine) domain.AntennaProfile { return e.Receive(kind) }
}

// pipelinesByCase holds an entry for every supported case and none for
// CaseUnsupported.
var pipelinesByCase = map[domain.LinkCase]pipelines{
	domain.CaseHertzianHertzian: {transmitAs(domain.AntennaHertzian), receiveAs(domain.AntennaHertzian)},
	domain.CaseHertzianHalfWave: {transmitAs(domain.AntennaHertzian), receiveAs(domain.AntennaHalfWave)},
	domain.CaseHalfWaveHertzian: {transmitAs(domain.AntennaHalfWave), receiveAs(domain.AntennaHertzian)},
	domain.CaseHalfWaveHalfWave: {transmitAs(domain.AntennaHalfWave), receiveAs(domain.AntennaHalfWave)},
}

// Evaluate runs the transmit and receive pipelines selected by c and combines
// them into a link result. ok is false for CaseUnsupported.
func (e Engine) Evaluate(c domain.LinkCase) (domain.LinkResult, bool) {
	p, ok := pipelinesByCase[c]
	if !ok {
		return domain.LinkResult{}, false
	}

	tx := p.transmit(e)
	rx := p.receive(e)
	pr := e.Prec(tx.TransmittedPower, tx.Gain, rx.Gain)

	return domain.LinkResult{
		Case:          c,
		Inputs:        e.in,
		Wavelength:    e.lambda,
		Transmitter:   tx,
		Receiver:      rx,
		ReceivedPower: pr,
		Pattern:       tx.Kind.PowerPattern(),
		Summary:       e.SummaryDB(tx, rx, pr),
	}, true
}
