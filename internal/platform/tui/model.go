package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/assets"
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/engine"
	"github.com/vovakirdan/tui-dino/internal/platform/imgexport"
	"github.com/vovakirdan/tui-dino/internal/world"
)

// Options bundles what the model needs besides the engine.
type Options struct {
	Config   config.Config
	Logger   *log.Logger
	Sprites  *assets.Registry[Sprite]
	Exporter *imgexport.Renderer
	Width    int // Initial terminal size; replaced by the first WindowSizeMsg
	Height   int

	// Reloads, if set, delivers config changes while the game runs.
	Reloads <-chan config.Reload
}

// Model is the Bubble Tea model for the runner. Bubble Tea delivers ticks
// and key presses to Update one at a time, which serialises all engine input.
type Model struct {
	engine   *engine.Engine
	screen   *core.Screen
	sprites  *assets.Registry[Sprite]
	exporter *imgexport.Renderer
	proj     Projection
	keys     KeyMap
	help     help.Model
	cfg      config.Config
	logger   *log.Logger
	width    int
	height   int
	last     engine.Snapshot
	status   string
	quitting bool
	reloads  <-chan config.Reload
}

// NewModel creates a model driving eng.
func NewModel(eng *engine.Engine, opts Options) Model {
	if opts.Sprites == nil {
		opts.Sprites = NewSpriteRegistry()
	}
	if opts.Exporter == nil {
		opts.Exporter = imgexport.NewRenderer(imgexport.NewRegistry(), opts.Config.Screenshot.PNGScale)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}

	m := Model{
		engine:   eng,
		screen:   core.NewScreen(0, 0),
		sprites:  opts.Sprites,
		exporter: opts.Exporter,
		proj: Projection{
			CellWidth:  opts.Config.Display.CellWidth,
			CellHeight: opts.Config.Display.CellHeight,
		},
		keys:    NewKeyMap(opts.Config.Keys),
		help:    help.New(),
		cfg:     opts.Config,
		logger:  opts.Logger,
		reloads: opts.Reloads,
	}
	m.resize(opts.Width, opts.Height)
	m.last = eng.Snapshot()
	return m
}

// Init starts the tick loop and the config listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.waitForReload())
}

// waitForReload returns a command that waits for the next config change.
func (m Model) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-m.reloads
		if !ok {
			return nil
		}
		return r
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case config.Reload:
		m.applyReload(msg)
		return m, m.waitForReload()
	}

	return m, nil
}

// handleKey maps a key press to engine input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		m.engine.RequestJump()
	case core.ActionStart:
		m.engine.RequestStart()
		m.last = m.engine.Snapshot()
		m.status = ""
		m.logger.Info("run started", "canvas", fmt.Sprintf("%.0fx%.0f", m.last.Size.Width, m.last.Size.Height))
	case core.ActionScreenshot:
		m.saveScreenshot()
	}
	return m, nil
}

// resize fits the playfield below the HUD and hands the new canvas to the engine.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	rows := core.Max(height-m.chromeRows(), 0)
	m.screen.Resize(width, rows)
	m.help.Width = width

	w := float64(width) * m.proj.CellWidth
	h := float64(rows) * m.proj.CellHeight
	m.engine.Resize(w, h)
	m.logger.Debug("canvas resized", "cols", width, "rows", rows, "width", w, "height", h)
}

// chromeRows is the number of terminal rows not used by the playfield.
func (m *Model) chromeRows() int {
	if m.cfg.Display.ShowHelp {
		return 2
	}
	return 1
}

// applyReload adopts a changed configuration. Key bindings, help, logging
// and screenshots change in place; a new cell size resizes the canvas.
func (m *Model) applyReload(r config.Reload) {
	if r.Err != nil {
		m.logger.Warn("config reload failed", "error", r.Err)
		m.status = "config error, keeping previous settings"
		return
	}

	cfg := r.Config
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		m.logger.SetLevel(level)
	}
	if cfg.Screenshot.PNGScale != m.cfg.Screenshot.PNGScale {
		m.exporter = imgexport.NewRenderer(imgexport.NewRegistry(), cfg.Screenshot.PNGScale)
	}

	m.cfg = cfg
	m.keys = NewKeyMap(cfg.Keys)
	m.proj = Projection{CellWidth: cfg.Display.CellWidth, CellHeight: cfg.Display.CellHeight}
	m.resize(m.width, m.height)

	m.logger.Info("config reloaded")
	m.status = "config reloaded"
}

// handleTick advances the engine one frame and reports crashes.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.engine.Tick()
	snap := m.engine.Snapshot()

	if m.last.IsPlaying && !snap.IsPlaying && snap.Character.State == world.Crashed {
		m.logger.Info("run crashed", "score", snap.Score, "max_score", snap.MaxScore, "ticks", snap.Tick)
	}
	m.last = snap

	return m, tickCmd()
}

// saveScreenshot writes the current frame as text and as PNG.
func (m *Model) saveScreenshot() {
	dir := config.ExpandHome(m.cfg.Screenshot.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}

	snap := m.engine.Snapshot()
	base := filepath.Join(dir, "dino_"+time.Now().Format("20060102_150405"))

	DrawSnapshot(m.screen, snap, m.sprites, m.proj)
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	if err := m.exporter.SavePNG(base+".png", snap); err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}

	if w := m.cfg.Screenshot.ThumbWidth; w > 0 {
		if err := m.exporter.SaveThumbnail(base+"_thumb.png", snap, w); err != nil {
			m.logger.Warn("thumbnail failed", "error", err)
		}
	}

	m.logger.Info("screenshot saved", "path", base+".png")
	m.status = "saved " + filepath.Base(base) + ".png"
}

// View renders the HUD, the playfield and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot()
	DrawSnapshot(m.screen, snap, m.sprites, m.proj)

	var sb strings.Builder
	sb.WriteString(hudLine(snap, m.status, m.width))
	sb.WriteRune('\n')
	sb.WriteString(RenderScreen(m.screen))
	if m.cfg.Display.ShowHelp {
		sb.WriteRune('\n')
		sb.WriteString(m.help.View(m.keys))
	}
	return sb.String()
}

// Run starts the Bubble Tea program for eng.
func Run(eng *engine.Engine, opts Options) error {
	p := tea.NewProgram(
		NewModel(eng, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
