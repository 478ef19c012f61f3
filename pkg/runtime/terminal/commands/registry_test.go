package commands

import (
	"bytes"
	"io"
	"testing"

	"github.com/de-tools/dipole-link/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReporter struct {
	w io.Writer
}

func (s stubReporter) Handle(*domain.LinkResult) error { return nil }

func (s stubReporter) Diagnostic(message string) error {
	_, err := io.WriteString(s.w, message)
	return err
}

func stubFactory(w io.Writer) Reporter { return stubReporter{w: w} }

func TestReporterRegistry(t *testing.T) {
	r := NewReporterRegistry(map[string]ReporterFactory{
		"text":  stubFactory,
		"table": stubFactory,
		"":      stubFactory,
		"json":  nil,
	})

	assert.Equal(t, []string{"table", "text"}, r.ListFormats())

	var out bytes.Buffer
	rep, err := r.Create("table", &out)
	require.NoError(t, err)
	require.NoError(t, rep.Diagnostic("hello"))
	assert.Equal(t, "hello", out.String())

	_, err = r.Create("xml", &out)
	assert.EqualError(t, err, `unsupported output format "xml"`)
}
