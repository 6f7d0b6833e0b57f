package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_UUIDGenerator_NewId(t *testing.T) {
	generator := NewUUIDGenerator()

	first := generator.NewId()
	second := generator.NewId()

	parsed, err := uuid.Parse(string(first))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.NotEqual(t, first, second)
}
