package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		NgappPort:           38412,
		SctpGrpcPort:        9000,
		SbiPort:             29518,
		NrfURL:              "http://nrf:29510",
		AmfURL:              "amf.core.svc.cluster.local",
		DefaultDatabaseName: "free5gc",
		AmfDatabaseName:     "sdcore_amf",
		DatabaseURL:         "mongodb://mongo:27017",
		FullNetworkName:     "SDCORE5G",
		ShortNetworkName:    "SDCORE",
	}
}

func TestRenderInterpolatesAllValues(t *testing.T) {
	content, err := testConfig().Render()
	require.NoError(t, err)

	assert.Contains(t, content, "ngappPort: 38412")
	assert.Contains(t, content, "sctpGrpcPort: 9000")
	assert.Contains(t, content, "port: 29518")
	assert.Contains(t, content, "nrfUri: http://nrf:29510")
	assert.Contains(t, content, "registerIPv4: amf.core.svc.cluster.local")
	assert.Contains(t, content, "amfDBName: sdcore_amf")
	assert.Contains(t, content, "name: free5gc")
	assert.Contains(t, content, "url: mongodb://mongo:27017")
	assert.Contains(t, content, "full: SDCORE5G")
	assert.Contains(t, content, "short: SDCORE")
}

func TestRenderIsDeterministic(t *testing.T) {
	first, err := testConfig().Render()
	require.NoError(t, err)

	second, err := testConfig().Render()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderDiffersWhenInputsDiffer(t *testing.T) {
	base, err := testConfig().Render()
	require.NoError(t, err)

	changed := testConfig()
	changed.NrfURL = "http://nrf-2:29510"

	other, err := changed.Render()
	require.NoError(t, err)

	assert.NotEqual(t, base, other)
}
