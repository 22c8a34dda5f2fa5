package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	URL     string  `env:"BACKEND_URL"`
	Token   string  `env:"TOKEN,required"`
	TopK    int     `env:"TOP_K"`
	Temp    float64 `env:"TEMPERATURE"`
	Enabled bool    `env:"ENABLED"`
	Skipped string
}

func TestMarshalEnv(t *testing.T) {
	cfg := &testConfig{
		URL:     "http://localhost:50505",
		Token:   "secret",
		TopK:    3,
		Temp:    0.3,
		Enabled: true,
		Skipped: "never written",
	}

	out, err := MarshalEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "BACKEND_URL=http://localhost:50505\nTOKEN=secret\nTOP_K=3\nTEMPERATURE=0.3\nENABLED=true\n", out)
	assert.NotContains(t, out, "never written")
}

func TestMarshalEnv_SkipsZeroValues(t *testing.T) {
	out, err := MarshalEnv(&testConfig{URL: "http://host"})
	require.NoError(t, err)
	assert.Equal(t, "BACKEND_URL=http://host\n", out)
}

func TestMarshalEnv_EmptyStruct(t *testing.T) {
	out, err := MarshalEnv(&testConfig{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMarshalEnv_RejectsNonPointer(t *testing.T) {
	_, err := MarshalEnv(testConfig{})
	assert.Error(t, err)

	_, err = MarshalEnv("nope")
	assert.Error(t, err)
}
