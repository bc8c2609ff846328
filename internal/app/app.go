//go:build ebiten

package app

import (
	"fmt"
	"time"

	"popsim/internal/core"
	"popsim/internal/render"
	"popsim/internal/sims/biome"
	"popsim/internal/stats"
	"popsim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// maxTicksPerFrame bounds catch-up work after a stalled frame.
const maxTicksPerFrame = 8

// Game adapts a biome world to the ebiten.Game interface.
type Game struct {
	world   *biome.World
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.HistoryOverlay
	history *stats.History
	clock   *core.FixedStep
	log     zerolog.Logger

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided world.
func New(world *biome.World, cfg *Config, log zerolog.Logger) *Game {
	size := world.Size()
	history := stats.NewHistory(cfg.HistoryLen)
	history.Push(world.Stats().Total)
	sparkW := min(size.W*cfg.Scale-8, cfg.HistoryLen)
	return &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(world, cfg.HUDWidth),
		overlay: ui.NewHistoryOverlay(history, max(sparkW, 1), 48),
		history: history,
		clock:   core.NewFixedStep(cfg.TPS),
		log:     log,
		scale:   cfg.Scale,
	}
}

// Reset starts a new run with the provided seed.
func (g *Game) Reset(seed int64) {
	g.world.Reset(seed)
	g.history.Reset()
	g.history.Push(g.world.Stats().Total)
	g.tickOnce = false
	LogWorld(g.log, g.world)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		next := biome.ModeSynchronous
		if g.world.Config().Mode == biome.ModeSynchronous {
			next = biome.ModeSequential
		}
		g.world.SetMode(next)
		g.log.Info().Str("mode", next.String()).Msg("tick mode changed")
	}

	g.overlay.Update()

	due := g.clock.Due(maxTicksPerFrame)
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = 1
		g.tickOnce = false
	}
	for i := 0; i < due; i++ {
		g.world.Advance()
		g.history.Push(g.world.Stats().Total)
	}

	g.hud.SetStatus(g.statusLines())
	g.hud.Update(g.mapWidth())
	return nil
}

func (g *Game) statusLines() []string {
	s := g.world.Stats()
	state := "running"
	if g.paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("tick %d (%s)", s.Tick, state),
		fmt.Sprintf("population %d", s.Total),
		fmt.Sprintf("populated cells %d", s.Populated),
		fmt.Sprintf("window delta %+d", g.history.Delta()),
		fmt.Sprintf("mode %s  seed %d", g.world.Config().Mode, g.world.Seed()),
	}
}

func (g *Game) mapWidth() int { return g.world.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.scale)
	g.overlay.Draw(screen, g.world.Size().H*g.scale)
	g.hud.Draw(screen, g.mapWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
