package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlphabet(t *testing.T) {
	for _, name := range []string{"standard", "url", "URL", "mime"} {
		cfg, err := ParseAlphabet(name, false)
		require.NoError(t, err)
		assert.NotNil(t, cfg)
	}

	_, err := ParseAlphabet("base91", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown alphabet")
}

func TestParseAlphabetNoPadding(t *testing.T) {
	cfg, err := ParseAlphabet("standard", true)
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.Padding().String())
	assert.Equal(t, "TWE", cfg.EncodeToString([]byte("Ma")))
}
