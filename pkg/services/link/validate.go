package link

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/de-tools/dipole-link/pkg/models/domain"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidInput is returned when a link parameter is not a finite
	// positive number.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNonFiniteResult is returned when valid inputs drive a computed
	// quantity out of float64 range.
	ErrNonFiniteResult = errors.New("non-finite result")

	validate = validator.New()
)

// ValidateInputs checks that every parameter is finite and strictly positive.
// The offending fields are listed in input order.
func ValidateInputs(in domain.LinkInputs) error {
	failed := make(map[string]bool)
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		for _, fe := range verrs {
			failed[fe.Field()] = true
		}
	}

	var fields []string
	for _, f := range []namedValue{
		{"Current", in.Current},
		{"Frequency", in.Frequency},
		{"Distance", in.Distance},
		{"TxRadius", in.TxRadius},
		{"TxLength", in.TxLength},
		{"RxRadius", in.RxRadius},
		{"RxLength", in.RxLength},
	} {
		// gt=0 accepts +Inf
		if failed[f.name] || math.IsInf(f.value, 0) {
			fields = append(fields, f.name)
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s must be finite and greater than zero", ErrInvalidInput, strings.Join(fields, ", "))
}

type namedValue struct {
	name  string
	value float64
}

// ValidateResult checks that every computed quantity is finite. The offending
// quantities are listed in report order.
func ValidateResult(r domain.LinkResult) error {
	values := []namedValue{{"Wavelength", r.Wavelength}}
	values = append(values, profileValues("Transmitter", r.Transmitter.AntennaProfile)...)
	values = append(values,
		namedValue{"Transmitter.MaxPowerDensity", r.Transmitter.MaxPowerDensity},
		namedValue{"Transmitter.RadiatedPower", r.Transmitter.RadiatedPower},
		namedValue{"Transmitter.TransmittedPower", r.Transmitter.TransmittedPower},
	)
	values = append(values, profileValues("Receiver", r.Receiver)...)
	values = append(values,
		namedValue{"ReceivedPower", r.ReceivedPower},
		namedValue{"Summary.TransmittedPowerDBm", r.Summary.TransmittedPowerDBm},
		namedValue{"Summary.TxGainDBi", r.Summary.TxGainDBi},
		namedValue{"Summary.RxGainDBi", r.Summary.RxGainDBi},
		namedValue{"Summary.PathLossDB", r.Summary.PathLossDB},
		namedValue{"Summary.ReceivedPowerDBm", r.Summary.ReceivedPowerDBm},
	)

	var fields []string
	for _, v := range values {
		if math.IsInf(v.value, 0) || math.IsNaN(v.value) {
			fields = append(fields, v.name)
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s out of range", ErrNonFiniteResult, strings.Join(fields, ", "))
}

func profileValues(prefix string, p domain.AntennaProfile) []namedValue {
	return []namedValue{
		{prefix + ".RadiationResistance", p.RadiationResistance},
		{prefix + ".LossResistance", p.LossResistance},
		{prefix + ".Efficiency", p.Efficiency},
		{prefix + ".Directivity", p.Directivity},
		{prefix + ".Gain", p.Gain},
		{prefix + ".EffectiveArea", p.EffectiveArea},
	}
}

// ValidateConstants checks that every constant is positive.
func ValidateConstants(c domain.PhysicalConstants) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid constants: %w", err)
	}
	return nil
}
