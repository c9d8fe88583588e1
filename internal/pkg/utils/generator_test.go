package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionID(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{13,}-[0-9a-z]{5}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateSessionID()
		require.NoError(t, err)
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "session ids must not repeat")
		seen[id] = true
	}
}

func TestGenerateRequestID(t *testing.T) {
	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
}
