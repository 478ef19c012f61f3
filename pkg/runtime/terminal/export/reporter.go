package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/de-tools/dipole-link/pkg/adapters"
	"github.com/de-tools/dipole-link/pkg/models/domain"
)

type TableConfig struct {
	NameWidth        int
	ValueWidth       int
	UnitWidth        int
	DescriptionWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:        24,
		ValueWidth:       24,
		UnitWidth:        6,
		DescriptionWidth: 40,
	}
}

const tableTemplate = `
{{.Title}}
Wavelength: {{num .Wavelength}} m
Power density: {{.Pattern}} (relative to maximum)
{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}{{separator}}
{{formatRow "Name" "Value" "Unit" "Description"}}
{{separator}}
{{range .Details}}{{formatRow .Name .Value .Unit .Description}}
{{end}}{{separator}}
{{end}}`

type Reporter struct {
	writer io.Writer
	config TableConfig
	tmpl   *template.Template
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	r := &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
	r.tmpl = template.Must(template.New("table").Funcs(r.funcMap()).Parse(tableTemplate))
	return r
}

func (c *Reporter) funcMap() template.FuncMap {
	return template.FuncMap{
		"num": func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		},
		"formatRow": func(name string, value interface{}, unit string, desc string) string {
			if v, ok := value.(float64); ok {
				value = strconv.FormatFloat(v, 'g', 8, 64)
			}
			return fmt.Sprintf("| %-*s | %-*v | %-*s | %-*s |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value,
				c.config.UnitWidth, unit,
				c.config.DescriptionWidth, desc)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.UnitWidth+2),
				strings.Repeat("-", c.config.DescriptionWidth+2))
		},
	}
}

func (c *Reporter) Handle(result *domain.LinkResult) error {
	report := adapters.MapDomainLinkResultToReport(*result)
	if err := c.tmpl.Execute(c.writer, report); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func (c *Reporter) Diagnostic(message string) error {
	_, err := fmt.Fprintln(c.writer, message)
	return err
}
