package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, i, len(String(i)))
	}
}

func TestBytes(t *testing.T) {
	for i := 0; i < 100; i++ {
		b, err := Bytes(i)
		require.NoError(t, err)
		assert.Equal(t, i, len(b))
	}
}
