package domain

import "math"

// PhysicalConstants holds the fixed physical and antenna constants used by the
// link calculation. It is built once at startup and passed around by value.
type PhysicalConstants struct {
	// SpeedOfLight in m/s.
	SpeedOfLight float64 `mapstructure:"speed_of_light" validate:"gt=0"`
	// Permeability of the conductor in H/m (copper, equal to vacuum).
	Permeability float64 `mapstructure:"permeability" validate:"gt=0"`
	// Conductivity of the conductor in S/m.
	Conductivity float64 `mapstructure:"conductivity" validate:"gt=0"`

	DirectivityHertzian float64 `mapstructure:"directivity_hertzian" validate:"gt=0"`
	DirectivityHalfWave float64 `mapstructure:"directivity_halfwave" validate:"gt=0"`
	// RadiationResistanceHalfWave in Ohm.
	RadiationResistanceHalfWave float64 `mapstructure:"radiation_resistance_halfwave" validate:"gt=0"`
}

// DefaultConstants returns the constants for copper dipoles in free space.
func DefaultConstants() PhysicalConstants {
	return PhysicalConstants{
		SpeedOfLight:                3e8,
		Permeability:                4 * math.Pi * 1e-7,
		Conductivity:                5.8e7,
		DirectivityHertzian:         1.5,
		DirectivityHalfWave:         1.64,
		RadiationResistanceHalfWave: 73,
	}
}

// Directivity returns the fixed directivity for the given antenna kind.
// Unsupported antennas have no directivity.
func (c PhysicalConstants) Directivity(kind AntennaKind) float64 {
	switch kind {
	case AntennaHertzian:
		return c.DirectivityHertzian
	case AntennaHalfWave:
		return c.DirectivityHalfWave
	default:
		return 0
	}
}
