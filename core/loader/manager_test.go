package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	t.Run("skips disabled features", func(t *testing.T) {
		mgr := NewManager()
		on := &stubFeature{name: "content", enabled: true}
		off := &stubFeature{name: "drafts", enabled: false}
		mgr.Register(on)
		mgr.Register(off)

		err := mgr.LoadAll(app)
		assert.NoError(t, err)
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		mgr := NewManager()
		bad := &stubFeature{name: "structure", enabled: true, loadErr: errors.New("boom")}
		after := &stubFeature{name: "editor", enabled: true}
		mgr.Register(bad)
		mgr.Register(after)

		err := mgr.LoadAll(app)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "structure")
		assert.False(t, after.loaded)
	})
}
