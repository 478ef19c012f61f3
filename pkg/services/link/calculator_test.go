package link

import (
	"context"
	"math"
	"testing"

	"github.com/de-tools/dipole-link/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator(t *testing.T) (Calculator, context.Context) {
	t.Helper()
	calc, err := NewCalculator(domain.DefaultConstants())
	require.NoError(t, err)

	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return calc, logger.WithContext(context.Background())
}

func TestCalculator_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*domain.LinkInputs)
		wantCase    domain.LinkCase
		wantPattern string
		check       func(t *testing.T, r *domain.LinkResult)
	}{
		{
			name:        "both hertzian",
			modify:      func(*domain.LinkInputs) {},
			wantCase:    domain.CaseHertzianHertzian,
			wantPattern: "sin(theta)^2",
			check: func(t *testing.T, r *domain.LinkResult) {
				assert.InDelta(t, 0.03948, r.Transmitter.RadiatedPower, 1e-5)
			},
		},
		{
			name:        "half-wave transmitter, hertzian receiver",
			modify:      func(in *domain.LinkInputs) { in.TxLength = 0.5 },
			wantCase:    domain.CaseHalfWaveHertzian,
			wantPattern: "cos[pi/2 * cos(theta)]^2 / sin(theta)^2",
			check: func(t *testing.T, r *domain.LinkResult) {
				assert.Equal(t, 73.0, r.Transmitter.RadiationResistance)
				assert.InDelta(t, 36.6, r.Transmitter.RadiatedPower, 1e-12)
			},
		},
		{
			name:        "hertzian transmitter, half-wave receiver",
			modify:      func(in *domain.LinkInputs) { in.RxLength = 0.5 },
			wantCase:    domain.CaseHertzianHalfWave,
			wantPattern: "sin(theta)^2",
			check: func(t *testing.T, r *domain.LinkResult) {
				assert.Equal(t, 1.64, r.Receiver.Directivity)
			},
		},
		{
			name: "both half-wave",
			modify: func(in *domain.LinkInputs) {
				in.TxLength = 0.5
				in.RxLength = 0.5
			},
			wantCase:    domain.CaseHalfWaveHalfWave,
			wantPattern: "cos[pi/2 * cos(theta)]^2 / sin(theta)^2",
			check: func(t *testing.T, r *domain.LinkResult) {
				assert.InDelta(t, r.Transmitter.Gain, r.Receiver.Gain, 1e-15)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			calc, ctx := newTestCalculator(t)
			in := hertzianPair()
			tc.modify(&in)

			result, err := calc.Calculate(ctx, in)
			require.NoError(t, err)

			assert.Equal(t, tc.wantCase, result.Case)
			assert.Equal(t, tc.wantPattern, result.Pattern)
			assert.Equal(t, 1.0, result.Wavelength)
			assert.Greater(t, result.ReceivedPower, 0.0)
			tc.check(t, result)
		})
	}
}

func TestCalculator_Unsupported(t *testing.T) {
	calc, ctx := newTestCalculator(t)

	for _, rx := range []float64{0.01, 0.5, 0.3} {
		in := hertzianPair()
		in.TxLength = 0.3
		in.RxLength = rx

		result, err := calc.Calculate(ctx, in)
		assert.ErrorIs(t, err, ErrUnsupportedAntennas)
		assert.Nil(t, result)
	}
}

func TestCalculator_InvalidInputs(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*domain.LinkInputs)
		message string
	}{
		{
			name:    "zero frequency",
			modify:  func(in *domain.LinkInputs) { in.Frequency = 0 },
			message: "invalid input: Frequency must be finite and greater than zero",
		},
		{
			name: "zero distance and negative radius",
			modify: func(in *domain.LinkInputs) {
				in.Distance = 0
				in.RxRadius = -0.001
			},
			message: "invalid input: Distance, RxRadius must be finite and greater than zero",
		},
		{
			name:    "infinite current",
			modify:  func(in *domain.LinkInputs) { in.Current = math.Inf(1) },
			message: "invalid input: Current must be finite and greater than zero",
		},
		{
			name:    "NaN length",
			modify:  func(in *domain.LinkInputs) { in.TxLength = math.NaN() },
			message: "invalid input: TxLength must be finite and greater than zero",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			calc, ctx := newTestCalculator(t)
			in := hertzianPair()
			tc.modify(&in)

			_, err := calc.Calculate(ctx, in)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.EqualError(t, err, tc.message)
		})
	}
}

func TestCalculator_RejectsNonFiniteResults(t *testing.T) {
	calc, ctx := newTestCalculator(t)
	in := hertzianPair()
	in.Current = 1e200

	result, err := calc.Calculate(ctx, in)
	require.ErrorIs(t, err, ErrNonFiniteResult)
	assert.Nil(t, result)
	assert.EqualError(t, err, "non-finite result: Transmitter.MaxPowerDensity, "+
		"Transmitter.RadiatedPower, Transmitter.TransmittedPower, ReceivedPower, "+
		"Summary.TransmittedPowerDBm, Summary.ReceivedPowerDBm out of range")
}

func TestValidateResult_NaN(t *testing.T) {
	r := domain.LinkResult{Wavelength: 1, ReceivedPower: math.NaN()}
	assert.EqualError(t, ValidateResult(r), "non-finite result: ReceivedPower out of range")
	assert.NoError(t, ValidateResult(domain.LinkResult{Wavelength: 1}))
}

func TestCalculator_WithoutContextLogger(t *testing.T) {
	calc, err := NewCalculator(domain.DefaultConstants())
	require.NoError(t, err)

	_, err = calc.Calculate(context.Background(), hertzianPair())
	assert.NoError(t, err)
}

func TestNewCalculator_RejectsInvalidConstants(t *testing.T) {
	c := domain.DefaultConstants()
	c.Conductivity = 0

	_, err := NewCalculator(c)
	assert.Error(t, err)
}
