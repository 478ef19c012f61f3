package domain

// LinkCase enumerates the supported transmitter/receiver combinations.
type LinkCase int

const (
	CaseUnsupported LinkCase = iota
	CaseHertzianHertzian
	CaseHertzianHalfWave
	CaseHalfWaveHertzian
	CaseHalfWaveHalfWave
)

var linkCaseNames = map[LinkCase]string{
	CaseUnsupported:      "unsupported",
	CaseHertzianHertzian: "hertzian/hertzian",
	CaseHertzianHalfWave: "hertzian/half-wave",
	CaseHalfWaveHertzian: "half-wave/hertzian",
	CaseHalfWaveHalfWave: "half-wave/half-wave",
}

func (c LinkCase) String() string {
	if name, ok := linkCaseNames[c]; ok {
		return name
	}
	return linkCaseNames[CaseUnsupported]
}

// Supported reports whether numeric results exist for this case.
func (c LinkCase) Supported() bool {
	return c != CaseUnsupported
}

var linkCaseDescriptions = map[LinkCase]string{
	CaseHertzianHertzian: "Both antennas are Hertzian dipoles.",
	CaseHertzianHalfWave: "Transmitting antenna is a Hertzian dipole. Receiving antenna is a half-wave length dipole.",
	CaseHalfWaveHertzian: "Transmitting antenna is a half-wave length dipole. Receiving antenna is a Hertzian dipole.",
	CaseHalfWaveHalfWave: "Both antennas are half-wave length dipoles.",
}

// Description is the one-sentence classification summary of a supported case.
func (c LinkCase) Description() string {
	return linkCaseDescriptions[c]
}
