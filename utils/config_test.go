package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	config, err := NewConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, "8000", config.Relay.Port)
	assert.Equal(t, float64(5), config.Annotate.Tolerance)
	assert.Equal(t, 600, config.Annotate.DisplayWidth)
	assert.Contains(t, config.Annotate.Locations, "Torcula")
	assert.Contains(t, config.Annotate.SideRequired, "Sigmoid sinus")
	assert.Equal(t, "X", config.Annotate.SentinelValues["Stenosis"])
	assert.Equal(t, []string{"Stenosis"}, config.Annotate.ExcludeFromSummary)
	assert.Equal(t, float64(40), config.Render.FontSize)
}

func TestNewConfigFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := `
server:
  port: "9090"
relay:
  api_key: "8fc1b4fd80f5cb3c6e705a1428342c02"
annotate:
  tolerance: 3
  locations: ["Torcula", "Occlusion"]
  sentinel_values: {"Occlusion": "OCL"}
  exclude_from_summary: ["Occlusion"]
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	config, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "8fc1b4fd80f5cb3c6e705a1428342c02", config.Relay.APIKey)
	assert.Equal(t, float64(3), config.Annotate.Tolerance)

	vocab := config.Vocabulary()
	assert.Equal(t, []string{"Torcula", "Occlusion"}, vocab.Locations)
	token, ok := vocab.ForcedValue("Occlusion")
	assert.True(t, ok)
	assert.Equal(t, "OCL", token)
	assert.True(t, vocab.ExcludedFromSummary("Occlusion"))

	// Untouched sections keep their defaults.
	assert.Equal(t, 600, config.Annotate.DisplayWidth)
}

func TestNewConfigRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bad_tolerance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("annotate:\n  tolerance: -1\n"), 0o644))
	_, err := NewConfig(path)
	assert.Error(t, err)

	path = filepath.Join(dir, "bad_yaml.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - ["), 0o644))
	_, err = NewConfig(path)
	assert.Error(t, err)

	_, err = NewConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
