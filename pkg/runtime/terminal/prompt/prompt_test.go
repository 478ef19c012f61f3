package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/de-tools/dipole-link/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInputs(t *testing.T) {
	var out bytes.Buffer
	in, err := ReadInputs(strings.NewReader("1\n3e8\n1000\n0.001\n 0.5 \n0.001\n0.01\n"), &out)

	require.NoError(t, err)
	assert.Equal(t, domain.LinkInputs{
		Current:   1,
		Frequency: 3e8,
		Distance:  1000,
		TxRadius:  0.001,
		TxLength:  0.5,
		RxRadius:  0.001,
		RxLength:  0.01,
	}, in)
	assert.Contains(t, out.String(), "---INPUT SECTION---")
	assert.Contains(t, out.String(), "Length l2 of receiving antenna (in meter): l2 = ")
	assert.True(t, strings.HasSuffix(out.String(), "---OUTPUT SECTION---\n"))
}

func TestReadInputs_ParseFailureAborts(t *testing.T) {
	var out bytes.Buffer
	_, err := ReadInputs(strings.NewReader("1\nthree hundred MHz\n1000\n"), &out)

	require.ErrorIs(t, err, ErrParseInput)
	assert.Contains(t, err.Error(), `"three hundred MHz"`)
	assert.NotContains(t, out.String(), "Distance R")
}

func TestReadInputs_EndOfInput(t *testing.T) {
	_, err := ReadInputs(strings.NewReader("1\n3e8\n"), &bytes.Buffer{})

	assert.ErrorIs(t, err, ErrParseInput)
}
