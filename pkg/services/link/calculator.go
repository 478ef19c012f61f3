package link

import (
	"context"
	"errors"

	"github.com/de-tools/dipole-link/pkg/models/domain"
	"github.com/rs/zerolog"
)

// UnsupportedDiagnostic is the message shown to users when no numeric report
// can be produced for the antenna pair.
const UnsupportedDiagnostic = "Please check the length of antennas as some requirements " +
	"for Hertzian and Half-wave length antenna are not met."

// ErrUnsupportedAntennas is returned when the antenna pair is not one of the
// four supported Hertzian/half-wave combinations.
var ErrUnsupportedAntennas = errors.New("unsupported antenna pair")

// Calculator computes the link budget between two dipoles.
type Calculator interface {
	Calculate(ctx context.Context, in domain.LinkInputs) (*domain.LinkResult, error)
}

type calculator struct {
	constants domain.PhysicalConstants
}

// NewCalculator creates a calculator bound to the given constants.
func NewCalculator(constants domain.PhysicalConstants) (Calculator, error) {
	if err := ValidateConstants(constants); err != nil {
		return nil, err
	}
	return &calculator{constants: constants}, nil
}

func (c *calculator) Calculate(ctx context.Context, in domain.LinkInputs) (*domain.LinkResult, error) {
	logger := zerolog.Ctx(ctx)

	if err := ValidateInputs(in); err != nil {
		return nil, err
	}

	engine := NewEngine(c.constants, in)
	lambda := engine.Wavelength()
	txKind := Classify(in.TxLength, lambda)
	rxKind := Classify(in.RxLength, lambda)
	linkCase := CaseOf(txKind, rxKind)

	logger.Debug().
		Float64("wavelength", lambda).
		Stringer("tx_kind", txKind).
		Stringer("rx_kind", rxKind).
		Stringer("case", linkCase).
		Msg("classified antennas")

	result, ok := engine.Evaluate(linkCase)
	if !ok {
		return nil, ErrUnsupportedAntennas
	}
	if err := ValidateResult(result); err != nil {
		return nil, err
	}

	logger.Debug().
		Float64("received_power", result.ReceivedPower).
		Msg("link budget computed")

	return &result, nil
}
