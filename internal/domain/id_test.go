package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserID(t *testing.T) {
	id, err := ParseUserID("8b9d6a60-3c3b-4d26-9f2d-5a4f2a1c9e01")
	require.NoError(t, err)
	assert.Equal(t, "8b9d6a60-3c3b-4d26-9f2d-5a4f2a1c9e01", id.String())

	for _, raw := range []string{"", "not-a-uuid", "12345", "8b9d6a60-3c3b-4d26-9f2d"} {
		_, err := ParseUserID(raw)
		assert.ErrorIs(t, err, ErrInvalidID, "input %q", raw)
	}
}

func TestParseChallengeID(t *testing.T) {
	id, err := ParseChallengeID("0a4e1c52-77f1-43e9-a3cf-92d4a8a1b7c3")
	require.NoError(t, err)
	assert.Equal(t, "0a4e1c52-77f1-43e9-a3cf-92d4a8a1b7c3", id.String())

	_, err = ParseChallengeID("bogus")
	assert.ErrorIs(t, err, ErrInvalidID)
}
