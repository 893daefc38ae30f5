package base64

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountTrailingPadding(t *testing.T) {
	std := Standard()
	for _, tc := range []struct {
		in   string
		want int
	}{
		{"", 0},
		{"AAAA", 0},
		{"AAA=", 1},
		{"AA==", 2},
		{"A===", 3},
		{"====", 3}, // look-back stops after 3 positions
	} {
		assert.Equal(t, tc.want, std.countTrailingPadding([]byte(tc.in)), "input %q", tc.in)
	}

	raw := mustNew(Standard().Ranges(), NoPadding)
	assert.Equal(t, 0, raw.countTrailingPadding([]byte("AA==")))
}

func TestValidateEncoded(t *testing.T) {
	std := Standard()
	mime := MIME()

	unpadded, err := std.validateEncoded([]byte("SGVsbG8sIFdvcmxkIQ=="))
	require.NoError(t, err)
	assert.Equal(t, 18, unpadded)

	unpadded, err = std.validateEncoded([]byte("SGVsbG8sIFdvcmxkIQ"))
	require.NoError(t, err)
	assert.Equal(t, 18, unpadded)

	// padding-count sanity comes first, even though the rest of the
	// buffer is fine
	_, err = std.validateEncoded([]byte("AAAA==="))
	var excessErr ExcessPaddingError
	require.True(t, errors.As(err, &excessErr))
	assert.Equal(t, 3, excessErr.Count)

	// character membership is checked before the length rules
	_, err = mime.validateEncoded([]byte("AA!"))
	var charErr InvalidCharacterError
	require.True(t, errors.As(err, &charErr))
	assert.Equal(t, byte('!'), charErr.Char)

	_, err = mime.validateEncoded([]byte("AA"))
	var lenErr InvalidLengthError
	require.True(t, errors.As(err, &lenErr))
	assert.Equal(t, 2, lenErr.Length)
	assert.Equal(t, byte('='), lenErr.PadChar)

	_, err = std.validateEncoded([]byte("AA="))
	var padLenErr PaddedLengthError
	require.True(t, errors.As(err, &padLenErr))
	assert.Equal(t, 3, padLenErr.Length)

	// no padding at all makes an unaligned length fine under an
	// optional policy
	unpadded, err = std.validateEncoded([]byte("AA"))
	require.NoError(t, err)
	assert.Equal(t, 2, unpadded)
}
