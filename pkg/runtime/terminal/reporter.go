package terminal

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/template"

	"github.com/de-tools/dipole-link/pkg/models/domain"
)

const reportTemplate = `{{.Case.Description}}
Power density: {{num .Transmitter.MaxPowerDensity}} * {{.Pattern}} (W/m^2)
Maximum power density: {{num .Transmitter.MaxPowerDensity}} (W/m^2)

****Assume two antennas are oriented in the direction of maximum power.****
Radiation power: {{num .Transmitter.RadiatedPower}} (W)
Efficiency of transmitting antenna: {{num .Transmitter.Efficiency}}
Directivity of transmitting antenna: {{num .Transmitter.Directivity}}
Gain of transmitting antenna: {{num .Transmitter.Gain}}

Efficiency of receiving antenna: {{num .Receiver.Efficiency}}
Directivity of receiving antenna: {{num .Receiver.Directivity}}
Gain of receiving antenna: {{num .Receiver.Gain}}

Receiving power: {{num .ReceivedPower}} (W)
`

var funcMap = template.FuncMap{
	"num": FormatFloat,
}

// FormatFloat prints v with the fewest digits that round-trip.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Reporter outputs link budgets to the console in plain text form
type Reporter struct {
	writer io.Writer
	tmpl   *template.Template
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		tmpl:   template.Must(template.New("report").Funcs(funcMap).Parse(reportTemplate)),
	}
}

func (c *Reporter) Handle(result *domain.LinkResult) error {
	if err := c.tmpl.Execute(c.writer, result); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// Diagnostic writes a single-line message in place of a report.
func (c *Reporter) Diagnostic(message string) error {
	_, err := fmt.Fprintln(c.writer, message)
	return err
}
