package idgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id, err := NewID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "mm_"))
	assert.Len(t, id, len("mm_")+32)
	assert.Equal(t, strings.ToLower(id), id)
}

func TestNewToken(t *testing.T) {
	token, err := NewToken()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(token, "token_"))
	assert.Len(t, token, len("token_")+64)
	assert.Equal(t, strings.ToLower(token), token)
}

func TestUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := NewID()
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}
