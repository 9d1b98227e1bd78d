package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatParseRoundTrip(t *testing.T) {
	in := "2025-11-30 18:45:07"
	parsed, err := ParseDateTime(in)
	require.NoError(t, err)
	assert.Equal(t, in, FormatDateTime(parsed))
	assert.Equal(t, time.UTC, parsed.Location())
}

func TestParseDateTimeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "not a date", "2025-11-30T18:45:07Z", "2025-13-01 00:00:00"} {
		_, err := ParseDateTime(in)
		assert.ErrorIs(t, err, ErrInvalidDateTime, "input %q", in)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	orig := time.Date(2025, time.November, 30, 18, 45, 7, 0, time.UTC)
	raw := EncodeBinaryDateTime(orig)
	require.Len(t, raw, 7)

	decoded, err := DecodeBinaryDateTime(raw)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(orig))
}

func TestDecodeBinaryDateTimeYearBytes(t *testing.T) {
	// 2025 = 0x07E9: low byte first, conventional 8-bit shift for the
	// second byte.
	raw := []byte{0xE9, 0x07, 12, 31, 23, 59, 58}
	decoded, err := DecodeBinaryDateTime(raw)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31 23:59:58", FormatDateTime(decoded))
}

func TestDecodeBinaryDateTimeRejectsBadInput(t *testing.T) {
	_, err := DecodeBinaryDateTime([]byte{0xE9, 0x07, 12})
	assert.ErrorIs(t, err, ErrInvalidDateTime)

	// month 13 does not normalize silently
	_, err = DecodeBinaryDateTime([]byte{0xE9, 0x07, 13, 1, 0, 0, 0})
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestDecodeDateTimeHandlesBothForms(t *testing.T) {
	orig := time.Date(2030, time.January, 2, 3, 4, 5, 0, time.UTC)

	fromBinary, err := DecodeDateTime(EncodeBinaryDateTime(orig))
	require.NoError(t, err)
	assert.True(t, fromBinary.Equal(orig))

	fromString, err := DecodeDateTime([]byte("2030-01-02 03:04:05"))
	require.NoError(t, err)
	assert.True(t, fromString.Equal(orig))
}
