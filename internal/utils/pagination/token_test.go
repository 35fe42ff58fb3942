package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	date := time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)
	token := EncodeToken(date, "entry-123")

	decodedDate, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, date.Equal(decodedDate))
	assert.Equal(t, "entry-123", decodedID)
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := DecodeToken("not-valid-base64!!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := "bm8tc2VwYXJhdG9yLWhlcmU=" // "no-separator-here"
	_, _, err := DecodeToken(token)
	assert.Error(t, err)
}
