package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULIDUniqueUnderBurst(t *testing.T) {
	g := NewULID()
	seen := make(map[string]struct{}, 1000)
	prev := ""
	for i := 0; i < 1000; i++ {
		id := g.NewID()
		require.Len(t, id, 26)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence("plant")
	assert.Equal(t, "plant-1", s.NewID())
	assert.Equal(t, "plant-2", s.NewID())
}
