package link

import (
	"math"

	"github.com/de-tools/dipole-link/pkg/models/domain"
)

// ToDB converts a linear power ratio to decibels.
func ToDB(ratio float64) float64 {
	return 10 * math.Log10(ratio)
}

// WattsToDBm converts a power in watts to dBm.
func WattsToDBm(watts float64) float64 {
	return ToDB(watts * 1000)
}

// PathLossDB is the free-space path loss 20·log10(4πR/λ), the inverse of the
// (λ/(4πR))² factor applied in Prec.
func (e Engine) PathLossDB() float64 {
	return 20 * math.Log10(4*pi*e.in.Distance/e.lambda)
}

// SummaryDB restates a computed link in logarithmic units.
func (e Engine) SummaryDB(tx domain.TransmitProfile, rx domain.AntennaProfile, pr float64) domain.LinkSummaryDB {
	return domain.LinkSummaryDB{
		TransmittedPowerDBm: WattsToDBm(tx.TransmittedPower),
		TxGainDBi:           ToDB(tx.Gain),
		RxGainDBi:           ToDB(rx.Gain),
		PathLossDB:          e.PathLossDB(),
		ReceivedPowerDBm:    WattsToDBm(pr),
	}
}
