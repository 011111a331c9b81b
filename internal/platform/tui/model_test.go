package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/engine"
	"github.com/vovakirdan/tui-dino/internal/logging"
)

func newTestModel(t *testing.T) (Model, *engine.Engine) {
	t.Helper()
	cfg := config.Default()
	cfg.Screenshot.Dir = t.TempDir()

	eng := engine.New(engine.WithSeed(1))
	m := NewModel(eng, Options{
		Config: cfg,
		Logger: logging.Discard(),
		Width:  80,
		Height: 26,
	})
	return m, eng
}

func TestKeyMapAction(t *testing.T) {
	keys := NewKeyMap(config.Default().Keys)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w jumps", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionJump},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"r starts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionStart},
		{"ctrl+s screenshots", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"x unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %s, expected %s", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapEmptyBindingDisabled(t *testing.T) {
	keys := NewKeyMap(config.KeyConfig{Quit: []string{"q"}})
	if keys.Jump.Enabled() {
		t.Error("binding with no keys should be disabled")
	}
	if got := keys.Action(tea.KeyMsg{Type: tea.KeyUp}); got != core.ActionNone {
		t.Errorf("Action(up) = %s, expected none", got)
	}
}

func TestNewModelSizesEngine(t *testing.T) {
	_, eng := newTestModel(t)

	// 80x26 terminal, two rows of chrome, 8x16 units per cell.
	snap := eng.Snapshot()
	if snap.Size.Width != 640 || snap.Size.Height != 384 {
		t.Errorf("canvas = %vx%v, expected 640x384", snap.Size.Width, snap.Size.Height)
	}
}

func TestWindowSizeResizesEngine(t *testing.T) {
	m, eng := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})

	snap := eng.Snapshot()
	if snap.Size.Width != 800 || snap.Size.Height != 480 {
		t.Errorf("canvas = %vx%v, expected 800x480", snap.Size.Width, snap.Size.Height)
	}
}

func TestUpdateTickAdvancesEngine(t *testing.T) {
	m, eng := newTestModel(t)

	var model tea.Model = m
	for range 3 {
		var cmd tea.Cmd
		model, cmd = model.Update(TickMsg{})
		if cmd == nil {
			t.Fatal("tick should schedule the next tick")
		}
	}

	if got := eng.Snapshot().Tick; got != 3 {
		t.Errorf("tick = %d, expected 3", got)
	}
}

func TestUpdateStartAndJump(t *testing.T) {
	m, eng := newTestModel(t)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !eng.Snapshot().IsPlaying {
		t.Fatal("enter should start a run")
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model.Update(TickMsg{})

	snap := eng.Snapshot()
	if snap.Character.Avatar != engine.AvatarJumping {
		t.Errorf("avatar = %s, expected jumping", snap.Character.Avatar)
	}
}

func TestUpdateQuit(t *testing.T) {
	m, _ := newTestModel(t)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if view := model.View(); view != "" {
		t.Errorf("view after quit = %q, expected empty", view)
	}
}

func TestViewShowsHUDAndHelp(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	for _, want := range []string{"SCORE: 0", "MAX SCORE: 0", "PLAY GAME", "jump"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScreenshotWritesFiles(t *testing.T) {
	m, _ := newTestModel(t)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.cfg.Screenshot.Dir)
	if err != nil {
		t.Fatal(err)
	}
	var txt, png int
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".txt":
			txt++
		case ".png":
			png++
		}
	}
	// Frame and thumbnail.
	if txt != 1 || png != 2 {
		t.Errorf("screenshot files: %d txt, %d png, expected 1 and 2", txt, png)
	}
	if !strings.Contains(model.(Model).status, "saved") {
		t.Errorf("status = %q, expected a saved message", model.(Model).status)
	}
}

func TestReloadAppliesConfig(t *testing.T) {
	m, eng := newTestModel(t)

	cfg := m.cfg
	cfg.Keys.Jump = []string{"x"}
	cfg.Display.ShowHelp = false
	cfg.Display.CellWidth = 4

	model, cmd := m.Update(config.Reload{Config: cfg})
	if cmd != nil {
		t.Error("no listener command expected without a reload channel")
	}
	got := model.(Model)

	if a := got.keys.Action(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}); a != core.ActionJump {
		t.Errorf("x = %s after reload, expected jump", a)
	}
	// 80x26 terminal, one row of chrome, 4x16 units per cell.
	snap := eng.Snapshot()
	if snap.Size.Width != 320 || snap.Size.Height != 400 {
		t.Errorf("canvas = %vx%v, expected 320x400", snap.Size.Width, snap.Size.Height)
	}
	if got.status != "config reloaded" {
		t.Errorf("status = %q", got.status)
	}
}

func TestReloadErrorKeepsConfig(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.cfg

	model, _ := m.Update(config.Reload{Err: os.ErrNotExist})
	got := model.(Model)

	if got.cfg.Display != before.Display {
		t.Error("failed reload changed the config")
	}
	if !strings.Contains(got.status, "config error") {
		t.Errorf("status = %q, expected a config error", got.status)
	}
}

func TestInitListensForReloads(t *testing.T) {
	ch := make(chan config.Reload, 1)
	cfg := config.Default()
	m := NewModel(engine.New(engine.WithSeed(1)), Options{
		Config:  cfg,
		Logger:  logging.Discard(),
		Width:   80,
		Height:  26,
		Reloads: ch,
	})

	ch <- config.Reload{Config: cfg}
	msg := m.waitForReload()()
	if _, ok := msg.(config.Reload); !ok {
		t.Errorf("waitForReload produced %T, expected config.Reload", msg)
	}

	close(ch)
	if msg := m.waitForReload()(); msg != nil {
		t.Errorf("closed channel produced %T, expected nil", msg)
	}
}
