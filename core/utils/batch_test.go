package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	t.Run("even split", func(t *testing.T) {
		chunks := Chunk([]int{1, 2, 3, 4}, 2)
		assert.Len(t, chunks, 2)
		assert.Equal(t, []int{1, 2}, chunks[0])
		assert.Equal(t, []int{3, 4}, chunks[1])
	})

	t.Run("remainder chunk", func(t *testing.T) {
		chunks := Chunk([]int{1, 2, 3, 4, 5}, 2)
		assert.Len(t, chunks, 3)
		assert.Equal(t, []int{5}, chunks[2])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Chunk([]int{}, 2))
	})

	t.Run("non-positive size keeps one chunk", func(t *testing.T) {
		chunks := Chunk([]string{"a", "b"}, 0)
		assert.Len(t, chunks, 1)
		assert.Equal(t, []string{"a", "b"}, chunks[0])
	})
}

func TestTruncateStr(t *testing.T) {
	assert.Equal(t, "abc", TruncateStr("abc", 10))
	assert.Equal(t, "ab", TruncateStr("abcdef", 2))
}
