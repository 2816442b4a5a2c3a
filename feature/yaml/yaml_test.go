package yaml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const horseMetadata = `
features: [K, Na, Cl, Hco3, Endotoxin, Aniongap, Pla2, Sdh, Gldh, Tpp, BreathRate, Pcv, PulseRate, Fibrinogen, Dimer, FibPerDim]
label:
  positive: ["colic."]
`

func TestReadMetadata(t *testing.T) {
	m, err := ReadMetadata([]byte(horseMetadata))
	require.NoError(t, err)
	assert.Equal(t, 16, m.Schema.Len())
	assert.Equal(t, "K", m.Schema.Names()[0])
	assert.Equal(t, "FibPerDim", m.Schema.Names()[15])
	assert.Equal(t, []string{"colic."}, m.Label.Positive)
	assert.False(t, m.Header)
	assert.Equal(t, ',', m.Delimiter)
}

func TestReadMetadataOptions(t *testing.T) {
	m, err := ReadMetadata([]byte(`
features:
  - school
  - sex
label:
  negative: ["0"]
header: true
delimiter: ";"
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"school", "sex"}, m.Schema.Names())
	assert.Equal(t, []string{"0"}, m.Label.Negative)
	assert.True(t, m.Header)
	assert.Equal(t, ';', m.Delimiter)
}

func TestReadMetadataErrors(t *testing.T) {
	tests := map[string]string{
		"invalid-yaml":       "features: [",
		"no-features":        "header: true",
		"duplicated-feature": "features: [a, a]",
		"ambiguous-label":    "features: [a]\nlabel:\n  positive: [x]\n  negative: [y]",
		"long-delimiter":     "features: [a]\ndelimiter: ';;'",
	}
	for name, md := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadMetadata([]byte(md))
			assert.Error(t, err)
		})
	}
}

func TestReadFeatures(t *testing.T) {
	s, err := ReadFeatures([]byte("features: [x, y]"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, s.Names())
}

func TestReadMetadataFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "horse.yml")
	require.NoError(t, os.WriteFile(path, []byte(horseMetadata), 0600))
	m, err := ReadMetadataFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 16, m.Schema.Len())

	_, err = ReadMetadataFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
