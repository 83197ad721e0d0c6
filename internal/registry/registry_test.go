package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/breakout/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })
	t.Cleanup(func() { Unregister("zz-stub") })

	assert.True(t, Exists("zz-stub"))

	g, err := Create("zz-stub")
	require.NoError(t, err)
	assert.Equal(t, "zz-stub", g.ID())

	var found bool
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
			assert.Equal(t, "Stub zz-stub", info.Title)
		}
	}
	assert.True(t, found, "List() should include the registered game")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
	t.Cleanup(func() { Unregister("zz-dup") })

	assert.Panics(t, func() {
		Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
	})
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	assert.Error(t, err)
	assert.False(t, Exists("does-not-exist"))
}
