package link

import (
	"math"

	"github.com/de-tools/dipole-link/pkg/models/domain"
)

// pi is a variable so products with it are rounded in float64 at run time
// instead of being folded exactly by the compiler.
var pi = math.Pi

// Engine evaluates the closed-form dipole formulas for a single run.
// All values are SI.
type Engine struct {
	constants domain.PhysicalConstants
	in        domain.LinkInputs
	lambda    float64
}

// NewEngine derives the wavelength once and binds it to the run.
func NewEngine(constants domain.PhysicalConstants, in domain.LinkInputs) Engine {
	return Engine{
		constants: constants,
		in:        in,
		lambda:    in.Wavelength(constants.SpeedOfLight),
	}
}

func (e Engine) Wavelength() float64 {
	return e.lambda
}

// SmaxHertzian is the maximum power density of a Hertzian dipole at distance R.
func (e Engine) SmaxHertzian(l float64) float64 {
	i, r := e.in.Current, e.in.Distance
	return 15 * pi * (i * i) * (l * l) / ((r * r) * (e.lambda * e.lambda))
}

// PradHertzian is the total power radiated by a Hertzian dipole.
func (e Engine) PradHertzian(l float64) float64 {
	i := e.in.Current
	return 40 * (pi * pi) * (i * i) * (l * l) / (e.lambda * e.lambda)
}

func (e Engine) RradHertzian(l float64) float64 {
	ratio := l / e.lambda
	return 80 * (pi * pi) * (ratio * ratio)
}

// SmaxHalfWave is the maximum power density of a half-wave dipole at distance R.
func (e Engine) SmaxHalfWave() float64 {
	i, r := e.in.Current, e.in.Distance
	return 15 * (i * i) / (pi * (r * r))
}

// PradHalfWave is the total power radiated by a half-wave dipole.
func (e Engine) PradHalfWave() float64 {
	i := e.in.Current
	return 36.6 * i * i
}

func (e Engine) RradHalfWave() float64 {
	return e.constants.RadiationResistanceHalfWave
}

// Rloss is the ohmic loss resistance of a wire of length l and radius a.
func (e Engine) Rloss(l, a float64) float64 {
	c := e.constants
	return (l / (2 * pi * a)) * math.Sqrt(pi*c.Permeability*e.in.Frequency/c.Conductivity)
}

func Efficiency(rrad, rloss float64) float64 {
	return rrad / (rrad + rloss)
}

func Gain(efficiency, directivity float64) float64 {
	return efficiency * directivity
}

// EffectiveArea is the capture area of an antenna with directivity d.
func (e Engine) EffectiveArea(d float64) float64 {
	return (e.lambda * e.lambda) * d / (4 * pi)
}

// Ptrans is the power delivered to the transmitting antenna terminals.
func (e Engine) Ptrans(rrad, rloss float64) float64 {
	i := e.in.Current
	return 0.5 * i * i * (rrad + rloss)
}

// Prec is the Friis received power for the given transmitted power and gains.
func (e Engine) Prec(pt, gt, gr float64) float64 {
	f := e.lambda / (4 * pi * e.in.Distance)
	return pt * gt * gr * f * f
}

// Rrad returns the radiation resistance for a dipole of the given kind.
func (e Engine) Rrad(kind domain.AntennaKind, l float64) float64 {
	if kind == domain.AntennaHalfWave {
		return e.RradHalfWave()
	}
	return e.RradHertzian(l)
}

func (e Engine) profile(kind domain.AntennaKind, l, a float64) domain.AntennaProfile {
	rloss := e.Rloss(l, a)
	rrad := e.Rrad(kind, l)
	eff := Efficiency(rrad, rloss)
	d := e.constants.Directivity(kind)
	return domain.AntennaProfile{
		Kind:                kind,
		RadiationResistance: rrad,
		LossResistance:      rloss,
		Efficiency:          eff,
		Directivity:         d,
		Gain:                Gain(eff, d),
		EffectiveArea:       e.EffectiveArea(d),
	}
}

// Transmit runs the transmitting pipeline for the antenna (l1, a1).
func (e Engine) Transmit(kind domain.AntennaKind) domain.TransmitProfile {
	l, a := e.in.TxLength, e.in.TxRadius
	p := domain.TransmitProfile{AntennaProfile: e.profile(kind, l, a)}
	if kind == domain.AntennaHalfWave {
		p.MaxPowerDensity = e.SmaxHalfWave()
		p.RadiatedPower = e.PradHalfWave()
	} else {
		p.MaxPowerDensity = e.SmaxHertzian(l)
		p.RadiatedPower = e.PradHertzian(l)
	}
	p.TransmittedPower = e.Ptrans(p.RadiationResistance, p.LossResistance)
	return p
}

// Receive runs the receiving pipeline for the antenna (l2, a2).
func (e Engine) Receive(kind domain.AntennaKind) domain.AntennaProfile {
	return e.profile(kind, e.in.RxLength, e.in.RxRadius)
}
