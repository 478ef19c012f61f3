package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/de-tools/dipole-link/pkg/models/domain"
)

// ErrParseInput is returned when a prompted value is not a real number.
var ErrParseInput = errors.New("could not parse input")

type prompt struct {
	label string
	dst   func(in *domain.LinkInputs) *float64
}

var prompts = []prompt{
	{"Current amplitude I (in Ampere): I = ", func(in *domain.LinkInputs) *float64 { return &in.Current }},
	{"Frequency (in Hertz): ", func(in *domain.LinkInputs) *float64 { return &in.Frequency }},
	{"Distance R between 2 antennas (in meter): R = ", func(in *domain.LinkInputs) *float64 { return &in.Distance }},
	{"Radius a1 of transmitting antenna (in meter): a1 = ", func(in *domain.LinkInputs) *float64 { return &in.TxRadius }},
	{"Length l1 of transmitting antenna (in meter): l1 = ", func(in *domain.LinkInputs) *float64 { return &in.TxLength }},
	{"Radius a2 of receiving antenna (in meter): a2 = ", func(in *domain.LinkInputs) *float64 { return &in.RxRadius }},
	{"Length l2 of receiving antenna (in meter): l2 = ", func(in *domain.LinkInputs) *float64 { return &in.RxLength }},
}

// ReadInputs prompts for the seven link parameters on w and reads one value
// per line from r. The first value that does not parse aborts the read.
func ReadInputs(r io.Reader, w io.Writer) (domain.LinkInputs, error) {
	var in domain.LinkInputs
	scanner := bufio.NewScanner(r)

	fmt.Fprint(w, "**** Please input parameters in SI units ****\n\n")
	fmt.Fprintln(w, "---INPUT SECTION---")

	for _, p := range prompts {
		fmt.Fprint(w, p.label)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return domain.LinkInputs{}, fmt.Errorf("failed to read input: %w", err)
			}
			return domain.LinkInputs{}, fmt.Errorf("%w: unexpected end of input at %q", ErrParseInput, strings.TrimSpace(p.label))
		}

		text := strings.TrimSpace(scanner.Text())
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return domain.LinkInputs{}, fmt.Errorf("%w: %q for %q", ErrParseInput, text, strings.TrimSpace(p.label))
		}
		*p.dst(&in) = v
	}

	fmt.Fprintln(w, "---OUTPUT SECTION---")
	return in, nil
}
