package adapters

import "github.com/de-tools/dipole-link/pkg/models/domain"

func antennaDetails(p domain.AntennaProfile) []domain.ReportDetail {
	return []domain.ReportDetail{
		{Name: "Radiation resistance", Value: p.RadiationResistance, Unit: "Ohm", Description: "Rrad"},
		{Name: "Loss resistance", Value: p.LossResistance, Unit: "Ohm", Description: "Rloss, ohmic conductor loss"},
		{Name: "Efficiency", Value: p.Efficiency, Description: "Rrad / (Rrad + Rloss)"},
		{Name: "Directivity", Value: p.Directivity, Description: "fixed for the dipole kind"},
		{Name: "Gain", Value: p.Gain, Description: "efficiency * directivity"},
		{Name: "Effective area", Value: p.EffectiveArea, Unit: "m^2", Description: "lambda^2 * D / (4 pi)"},
	}
}

// MapDomainLinkResultToReport lays a link result out as report sections.
func MapDomainLinkResultToReport(r domain.LinkResult) *domain.Report {
	tx := r.Transmitter

	txDetails := []domain.ReportDetail{
		{Name: "Maximum power density", Value: tx.MaxPowerDensity, Unit: "W/m^2", Description: "Smax at distance R"},
		{Name: "Radiated power", Value: tx.RadiatedPower, Unit: "W", Description: "Prad"},
		{Name: "Transmitted power", Value: tx.TransmittedPower, Unit: "W", Description: "Pt = I^2 (Rrad + Rloss) / 2"},
	}
	txDetails = append(txDetails, antennaDetails(tx.AntennaProfile)...)

	return &domain.Report{
		Title:      r.Case.Description(),
		Case:       r.Case,
		Wavelength: r.Wavelength,
		Pattern:    r.Pattern,
		Sections: []domain.ReportSection{
			{
				Title:   "Transmitting antenna",
				Summary: map[string]interface{}{"Kind": tx.Kind.String()},
				Details: txDetails,
			},
			{
				Title:   "Receiving antenna",
				Summary: map[string]interface{}{"Kind": r.Receiver.Kind.String()},
				Details: antennaDetails(r.Receiver),
			},
			{
				Title: "Link",
				Details: []domain.ReportDetail{
					{Name: "Wavelength", Value: r.Wavelength, Unit: "m", Description: "c / f"},
					{Name: "Received power", Value: r.ReceivedPower, Unit: "W", Description: "Pr, antennas aligned for maximum power"},
					{Name: "Transmitted power (dB)", Value: r.Summary.TransmittedPowerDBm, Unit: "dBm"},
					{Name: "Transmitter gain (dB)", Value: r.Summary.TxGainDBi, Unit: "dBi"},
					{Name: "Receiver gain (dB)", Value: r.Summary.RxGainDBi, Unit: "dBi"},
					{Name: "Free-space path loss", Value: r.Summary.PathLossDB, Unit: "dB", Description: "20 log10(4 pi R / lambda)"},
					{Name: "Received power (dB)", Value: r.Summary.ReceivedPowerDBm, Unit: "dBm"},
				},
			},
		},
	}
}
