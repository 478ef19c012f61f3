package adapters

import (
	"github.com/de-tools/dipole-link/pkg/models/api"
	"github.com/de-tools/dipole-link/pkg/models/domain"
)

func MapAPILinkRequestToDomainInputs(req api.LinkRequest) domain.LinkInputs {
	return domain.LinkInputs{
		Current:   req.Current,
		Frequency: req.Frequency,
		Distance:  req.Distance,
		TxRadius:  req.TxRadius,
		TxLength:  req.TxLength,
		RxRadius:  req.RxRadius,
		RxLength:  req.RxLength,
	}
}

func MapDomainAntennaProfileToAPI(p domain.AntennaProfile) api.AntennaProfile {
	return api.AntennaProfile{
		Kind:                p.Kind.String(),
		RadiationResistance: p.RadiationResistance,
		LossResistance:      p.LossResistance,
		Efficiency:          p.Efficiency,
		Directivity:         p.Directivity,
		Gain:                p.Gain,
		EffectiveArea:       p.EffectiveArea,
	}
}

func MapDomainLinkResultToAPI(r domain.LinkResult) api.LinkResponse {
	return api.LinkResponse{
		Case:           r.Case.String(),
		Classification: r.Case.Description(),
		Wavelength:     r.Wavelength,
		PowerDensity:   r.Pattern,
		Transmitter: api.TransmitProfile{
			AntennaProfile:   MapDomainAntennaProfileToAPI(r.Transmitter.AntennaProfile),
			MaxPowerDensity:  r.Transmitter.MaxPowerDensity,
			RadiatedPower:    r.Transmitter.RadiatedPower,
			TransmittedPower: r.Transmitter.TransmittedPower,
		},
		Receiver:      MapDomainAntennaProfileToAPI(r.Receiver),
		ReceivedPower: r.ReceivedPower,
		Summary: api.LinkSummaryDB{
			TransmittedPowerDBm: r.Summary.TransmittedPowerDBm,
			TxGainDBi:           r.Summary.TxGainDBi,
			RxGainDBi:           r.Summary.RxGainDBi,
			PathLossDB:          r.Summary.PathLossDB,
			ReceivedPowerDBm:    r.Summary.ReceivedPowerDBm,
		},
	}
}
