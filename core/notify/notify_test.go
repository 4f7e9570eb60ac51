package notify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNotifier_Push(t *testing.T) {
	n := New(zap.NewNop(), 3)

	first := n.Push(LevelInfo, "content tree hydrated")
	second := n.Push(LevelError, "save failed")

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	recent := n.Recent()
	assert.Len(t, recent, 2)
	assert.Equal(t, LevelInfo, recent[0].Level)
	assert.Equal(t, "save failed", recent[1].Message)
}

func TestNotifier_Bounded(t *testing.T) {
	n := New(zap.NewNop(), 2)
	for i := 0; i < 5; i++ {
		n.Push(LevelInfo, fmt.Sprintf("message %d", i))
	}

	recent := n.Recent()
	assert.Len(t, recent, 2)
	assert.Equal(t, "message 3", recent[0].Message)
	assert.Equal(t, "message 4", recent[1].Message)
}

func TestNotifier_InstanceScopedIDs(t *testing.T) {
	a := New(zap.NewNop(), 10)
	b := New(zap.NewNop(), 10)

	// Separate instances must not share an ID sequence.
	assert.NotEqual(t, a.Push(LevelInfo, "x").ID, b.Push(LevelInfo, "x").ID)
}
