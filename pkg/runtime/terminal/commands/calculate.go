package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/de-tools/dipole-link/pkg/models/domain"
	"github.com/de-tools/dipole-link/pkg/runtime/terminal/prompt"
	"github.com/de-tools/dipole-link/pkg/services/config"
	"github.com/de-tools/dipole-link/pkg/services/link"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Reporter renders a link result or the diagnostic that replaces it.
type Reporter interface {
	Handle(result *domain.LinkResult) error
	Diagnostic(message string) error
}

// CalculatorProvider builds the calculator once flags have been parsed.
type CalculatorProvider func() (link.Calculator, error)

type CalculateCmd struct {
	profilesPath string
	profile      string
	format       string
	inputs       domain.LinkInputs
	calculator   CalculatorProvider
	reporters    ReporterRegistry
}

var inputFlags = []string{"current", "frequency", "distance", "tx-radius", "tx-length", "rx-radius", "rx-length"}

func NewCalculateCmd(calculator CalculatorProvider, reporters ReporterRegistry) *cobra.Command {
	cc := &CalculateCmd{calculator: calculator, reporters: reporters}
	cmd := &cobra.Command{
		Use:     "calculate",
		Aliases: []string{"calc"},
		Short:   "Compute the link budget between two dipole antennas",
		Long: `Compute the link budget between a transmitting and a receiving dipole.

Inputs are taken from flags when all seven are set, from an INI profile when
--profile is given, and are prompted for on stdin otherwise. All values are SI.`,
		RunE: cc.run,
	}

	cmd.Flags().Float64Var(&cc.inputs.Current, "current", 0, "Current amplitude I in A")
	cmd.Flags().Float64Var(&cc.inputs.Frequency, "frequency", 0, "Frequency f in Hz")
	cmd.Flags().Float64Var(&cc.inputs.Distance, "distance", 0, "Distance R between the antennas in m")
	cmd.Flags().Float64Var(&cc.inputs.TxRadius, "tx-radius", 0, "Radius a1 of the transmitting antenna in m")
	cmd.Flags().Float64Var(&cc.inputs.TxLength, "tx-length", 0, "Length l1 of the transmitting antenna in m")
	cmd.Flags().Float64Var(&cc.inputs.RxRadius, "rx-radius", 0, "Radius a2 of the receiving antenna in m")
	cmd.Flags().Float64Var(&cc.inputs.RxLength, "rx-length", 0, "Length l2 of the receiving antenna in m")
	cmd.Flags().StringVar(&cc.profilesPath, "profiles", "", "Path to an INI file with link profiles")
	cmd.Flags().StringVar(&cc.profile, "profile", "", "Name of the link profile to use")
	cmd.Flags().StringVar(&cc.format, "format", "text",
		fmt.Sprintf("Output format (%s)", strings.Join(reporters.ListFormats(), ", ")))

	cmd.MarkFlagsRequiredTogether(inputFlags...)
	cmd.MarkFlagsRequiredTogether("profiles", "profile")
	cmd.MarkFlagsMutuallyExclusive("current", "profile")

	return cmd
}

func (cc *CalculateCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	reporter, err := cc.reporters.Create(cc.format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	calc, err := cc.calculator()
	if err != nil {
		return fmt.Errorf("failed to create calculator: %w", err)
	}

	in, err := cc.resolveInputs(cmd)
	if err != nil {
		return err
	}

	result, err := calc.Calculate(ctx, in)
	if errors.Is(err, link.ErrUnsupportedAntennas) {
		logger.Info().
			Float64("tx_length", in.TxLength).
			Float64("rx_length", in.RxLength).
			Msg("antenna pair not supported")
		return reporter.Diagnostic(link.UnsupportedDiagnostic)
	}
	if err != nil {
		return fmt.Errorf("failed to calculate link budget: %w", err)
	}

	return reporter.Handle(result)
}

func (cc *CalculateCmd) resolveInputs(cmd *cobra.Command) (domain.LinkInputs, error) {
	if cmd.Flags().Changed("current") {
		return cc.inputs, nil
	}

	if cc.profile != "" {
		registry, err := config.NewProfileRegistry(cc.profilesPath)
		if err != nil {
			return domain.LinkInputs{}, err
		}
		in, err := registry.GetInputs(cmd.Context(), cc.profile)
		if err != nil {
			return domain.LinkInputs{}, fmt.Errorf("failed to load profile: %w", err)
		}
		return in, nil
	}

	return prompt.ReadInputs(cmd.InOrStdin(), cmd.OutOrStdout())
}
