package domain

// AntennaKind is the electrical category of a single dipole.
type AntennaKind int

const (
	AntennaUnsupported AntennaKind = iota
	AntennaHertzian
	AntennaHalfWave
)

func (k AntennaKind) String() string {
	switch k {
	case AntennaHertzian:
		return "hertzian"
	case AntennaHalfWave:
		return "half-wave"
	default:
		return "unsupported"
	}
}

// PowerPattern describes the angular dependence of the power density radiated
// by an antenna of this kind, relative to its maximum.
func (k AntennaKind) PowerPattern() string {
	switch k {
	case AntennaHertzian:
		return "sin(theta)^2"
	case AntennaHalfWave:
		return "cos[pi/2 * cos(theta)]^2 / sin(theta)^2"
	default:
		return ""
	}
}

// LinkInputs are the user supplied parameters of one calculation, in SI units.
type LinkInputs struct {
	Current   float64 `validate:"gt=0"` // I, A
	Frequency float64 `validate:"gt=0"` // f, Hz
	Distance  float64 `validate:"gt=0"` // R, m
	TxRadius  float64 `validate:"gt=0"` // a1, m
	TxLength  float64 `validate:"gt=0"` // l1, m
	RxRadius  float64 `validate:"gt=0"` // a2, m
	RxLength  float64 `validate:"gt=0"` // l2, m
}

// Wavelength returns c / f.
func (in LinkInputs) Wavelength(speedOfLight float64) float64 {
	return speedOfLight / in.Frequency
}

// AntennaProfile is the electrical profile shared by both link roles.
type AntennaProfile struct {
	Kind                AntennaKind
	RadiationResistance float64 // Ohm
	LossResistance      float64 // Ohm
	Efficiency          float64
	Directivity         float64
	Gain                float64
	EffectiveArea       float64 // m^2
}

// TransmitProfile extends AntennaProfile with the quantities that only make
// sense for the radiating antenna.
type TransmitProfile struct {
	AntennaProfile
	MaxPowerDensity  float64 // Smax, W/m^2
	RadiatedPower    float64 // Prad, W
	TransmittedPower float64 // Pt, W
}

// LinkSummaryDB expresses the link budget in logarithmic units.
type LinkSummaryDB struct {
	TransmittedPowerDBm float64
	TxGainDBi           float64
	RxGainDBi           float64
	PathLossDB          float64
	ReceivedPowerDBm    float64
}

// LinkResult is the outcome of one supported link calculation.
type LinkResult struct {
	Case          LinkCase
	Inputs        LinkInputs
	Wavelength    float64 // m
	Transmitter   TransmitProfile
	Receiver      AntennaProfile
	ReceivedPower float64 // Pr, W
	Pattern       string
	Summary       LinkSummaryDB
}
