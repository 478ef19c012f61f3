package api

type LinkRequest struct {
	Current   float64 `json:"current"`
	Frequency float64 `json:"frequency"`
	Distance  float64 `json:"distance"`
	TxRadius  float64 `json:"tx_radius"`
	TxLength  float64 `json:"tx_length"`
	RxRadius  float64 `json:"rx_radius"`
	RxLength  float64 `json:"rx_length"`
}

type AntennaProfile struct {
	Kind                string  `json:"kind"`
	RadiationResistance float64 `json:"radiation_resistance_ohm"`
	LossResistance      float64 `json:"loss_resistance_ohm"`
	Efficiency          float64 `json:"efficiency"`
	Directivity         float64 `json:"directivity"`
	Gain                float64 `json:"gain"`
	EffectiveArea       float64 `json:"effective_area_m2"`
}

type TransmitProfile struct {
	AntennaProfile
	MaxPowerDensity  float64 `json:"max_power_density_w_m2"`
	RadiatedPower    float64 `json:"radiated_power_w"`
	TransmittedPower float64 `json:"transmitted_power_w"`
}

type LinkSummaryDB struct {
	TransmittedPowerDBm float64 `json:"transmitted_power_dbm"`
	TxGainDBi           float64 `json:"tx_gain_dbi"`
	RxGainDBi           float64 `json:"rx_gain_dbi"`
	PathLossDB          float64 `json:"path_loss_db"`
	ReceivedPowerDBm    float64 `json:"received_power_dbm"`
}

type LinkResponse struct {
	Case           string          `json:"case"`
	Classification string          `json:"classification"`
	Wavelength     float64         `json:"wavelength_m"`
	PowerDensity   string          `json:"power_density"`
	Transmitter    TransmitProfile `json:"transmitter"`
	Receiver       AntennaProfile  `json:"receiver"`
	ReceivedPower  float64         `json:"received_power_w"`
	Summary        LinkSummaryDB   `json:"summary_db"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Profile struct {
	Name string `json:"name"`
}
