package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/storage"
)

// stubGame replays scripted step results and records the input it saw.
type stubGame struct {
	results []core.StepResult
	steps   int
	resets  int
	left    []bool
	state   core.GameState
}

func (g *stubGame) ID() string    { return "breakout" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.left = append(g.left, in.Has(core.ActionLeft))
	var r core.StepResult
	if g.steps < len(g.results) {
		r = g.results[g.steps]
	}
	g.steps++
	g.state = r.State
	return r
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }

func (g *stubGame) State() core.GameState { return g.state }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testOptions() Options {
	return Options{Config: config.DefaultBreakoutConfig(), Player: "alice"}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	require.True(t, ok)
	return mm, cmd
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{keyRunes("a"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{keyRunes("d"), core.ActionRight, false},
		{keyRunes("p"), core.ActionPause, false},
		{keyRunes("r"), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{keyRunes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{keyRunes("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		assert.Equal(t, tc.action, action, tc.msg.String())
		assert.Equal(t, tc.quit, quit, tc.msg.String())
	}
}

// pressRecorder collects the actions handed to it.
type pressRecorder []core.Action

func (r *pressRecorder) Press(a core.Action) { *r = append(*r, a) }

func TestPressKey(t *testing.T) {
	km := NewKeyMapper()
	var got pressRecorder

	assert.False(t, km.PressKey(tea.KeyMsg{Type: tea.KeyLeft}, &got))
	assert.False(t, km.PressKey(keyRunes("r"), &got))
	assert.True(t, km.PressKey(keyRunes("q"), &got))

	assert.Equal(t, pressRecorder{core.ActionLeft, core.ActionRestart, core.ActionQuit}, got)
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(keyRunes("k")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(keyRunes("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(keyRunes("x")))
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "Progress")
	s.SetColor(core.ColorGreen)
	s.DrawText(0, 1, "██")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Progress  ", lines[0])
	assert.Contains(t, lines[1], "██")
}

func TestModelHoldsDirectionBetweenKeyEvents(t *testing.T) {
	game := &stubGame{}
	opts := testOptions()
	opts.Config.Gameplay.HoldTicks = 3

	m := NewModel(game, nil, core.DefaultConfig(), opts)
	m.Init()
	assert.Equal(t, 1, game.resets)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for range 5 {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	assert.Equal(t, []bool{true, true, true, false, false}, game.left)
}

func TestModelPauseReleasesHold(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, core.DefaultConfig(), testOptions())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, keyRunes("p"))
	update(t, m, TickMsg(time.Now()))

	require.Len(t, game.left, 1)
	assert.False(t, game.left[0])
}

func TestModelSavesRunWhenBallLost(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &stubGame{results: []core.StepResult{
		{State: core.GameState{Score: 0}, Events: []core.Event{
			{Type: core.EventBrickDestroyed, Score: 50, Progress: 16, Tick: 90},
			{Type: core.EventBallLost, Score: 50, Progress: 16, Tick: 90},
		}},
		// Nothing scored: not recorded
		{Events: []core.Event{{Type: core.EventBallLost, Tick: 40}}},
	}}

	m := NewModel(game, store, core.DefaultConfig(), testOptions())
	m, cmd := update(t, m, TickMsg(time.Now()))
	assert.NotNil(t, cmd, "ticking continues after losing the ball")
	m, _ = update(t, m, TickMsg(time.Now()))

	assert.Equal(t, 1, m.RunsSaved())

	runs, err := store.RecentRuns("breakout", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "alice", runs[0].Player)
	assert.Equal(t, 50, runs[0].Score)
	assert.Equal(t, 16, runs[0].Progress)
	assert.Equal(t, 90, runs[0].DurationTicks)
	assert.False(t, runs[0].Won)
}

func TestModelQuitsAfterWin(t *testing.T) {
	won := core.StepResult{
		State:  core.GameState{Score: 300, Progress: 100},
		Events: []core.Event{{Type: core.EventWin, Score: 300, Progress: 100, Tick: 500}},
	}
	over := core.StepResult{State: core.GameState{Score: 300, Progress: 100, GameOver: true}}

	game := &stubGame{results: []core.StepResult{won, over}}
	m := NewModel(game, nil, core.DefaultConfig(), testOptions())

	m, _ = update(t, m, TickMsg(time.Now()))
	assert.False(t, m.IsQuitting(), "win message is still on screen")

	m, cmd := update(t, m, TickMsg(time.Now()))
	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// Embedded models go back to the menu instead
	game = &stubGame{results: []core.StepResult{over}}
	m = NewModel(game, nil, core.DefaultConfig(), testOptions())
	m.embedded = true
	m, _ = update(t, m, TickMsg(time.Now()))
	assert.True(t, m.BackToMenu())
	assert.False(t, m.IsQuitting())
}

func TestModelTickLoopRunsToCompletion(t *testing.T) {
	defer goleak.VerifyNone(t)

	won := core.StepResult{
		Events: []core.Event{{Type: core.EventWin, Score: 300, Progress: 100, Tick: 2}},
	}
	over := core.StepResult{State: core.GameState{Score: 300, Progress: 100, GameOver: true}}
	game := &stubGame{results: []core.StepResult{{}, won, over}}

	p := tea.NewProgram(
		NewModel(game, nil, core.DefaultConfig(), testOptions()),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)

	final, err := p.Run()
	require.NoError(t, err)
	m, ok := final.(Model)
	require.True(t, ok)
	assert.True(t, m.IsQuitting())
	assert.Equal(t, 3, game.steps)
	assert.Equal(t, 1, game.resets)
}

func TestModelStaysOnWinWhenExitDisabled(t *testing.T) {
	opts := testOptions()
	opts.Config.Gameplay.ExitOnWin = false
	game := &stubGame{results: []core.StepResult{{State: core.GameState{GameOver: true}}}}

	m := NewModel(game, nil, core.DefaultConfig(), opts)
	m, cmd := update(t, m, TickMsg(time.Now()))
	assert.False(t, m.IsQuitting())
	assert.NotNil(t, cmd)
}

func TestModelKeys(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, core.DefaultConfig(), testOptions())

	// Back is ignored mid-game
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu())

	m, cmd := update(t, m, keyRunes("q"))
	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelView(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 2, TickRate: 60}, testOptions())
	assert.True(t, strings.HasPrefix(m.View(), "stub"))
}

func TestSessionFlow(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	s := NewSessionModel(store, core.DefaultConfig(), testOptions())
	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		sm, ok := next.(SessionModel)
		require.True(t, ok)
		s = sm
	}

	assert.Contains(t, s.View(), "B R E A K O U T")

	// Play opens the difficulty menu
	step(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, s.View(), "Select difficulty")

	// Back to the main menu, then Play again with Hard
	step(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, s.View(), "High Scores")
	step(tea.KeyMsg{Type: tea.KeyEnter})
	for range 3 {
		step(tea.KeyMsg{Type: tea.KeyDown})
	}
	step(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, s.screen)
	assert.Equal(t, 1, s.GamesRun())

	step(TickMsg(time.Now()))
	assert.Contains(t, s.View(), "Progress: 0%")

	// Pause, then back to the menu
	step(keyRunes("p"))
	step(TickMsg(time.Now()))
	step(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, screenMenu, s.screen)

	// Stray ticks from the old game are dropped
	step(TickMsg(time.Now()))
	assert.Equal(t, screenMenu, s.screen)

	// High scores and back
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenScores, s.screen)
	assert.Contains(t, s.View(), "No scores recorded yet")
	step(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, s.screen)

	step(keyRunes("q"))
	assert.Empty(t, s.View())
}

func TestNewSessionGameAppliesPreset(t *testing.T) {
	base := config.DefaultBreakoutConfig()

	game := newSessionGame(base, config.DifficultyHard)
	game.Reset(core.DefaultConfig())
	assert.Equal(t, 80, game.Config().Paddle.Width)
	assert.Equal(t, 320.0, game.Config().Ball.Speed)

	game = newSessionGame(base, "")
	game.Reset(core.DefaultConfig())
	assert.Equal(t, base, game.Config())
}

func TestScoreboardShowsStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveRun(storage.Run{GameID: "breakout", Score: 120})
	require.NoError(t, err)
	_, err = store.SaveRun(storage.Run{GameID: "breakout", Score: 300, Progress: 100, Won: true})
	require.NoError(t, err)

	sb := NewScoreboardModel(store, 80, 24)
	view := sb.View()
	assert.Contains(t, view, "HIGH SCORES")
	assert.Contains(t, view, "Runs: 2")
	assert.Contains(t, view, "Wins: 1")
	assert.Contains(t, view, "300")

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(ScoreboardModel).IsGoingBack())
}
