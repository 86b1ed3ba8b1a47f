package fractree

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig holds window options for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Background is the window clear color. The zero value is black.
	Background Color
	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// DisableToggle removes the space-bar start/stop binding.
	DisableToggle bool
}

// game adapts a Grower and EbitenCanvas to the ebiten game loop.
type game struct {
	grower *Grower
	canvas *EbitenCanvas
	cfg    RunConfig
}

func (g *game) Update() error {
	if !g.cfg.DisableToggle && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.grower.Running() {
			g.grower.Stop()
		} else {
			g.grower.Start()
		}
	}
	g.grower.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	screen.DrawImage(g.canvas.Image(), nil)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the grower from the game loop until the
// window is closed. Width and Height default to the canvas dimensions.
// Unless disabled, the space bar toggles the grower between running and
// stopped (stopping clears the tree).
//
// Run blocks until the window is closed and must be called from the
// main goroutine.
func Run(grower *Grower, canvas *EbitenCanvas, cfg RunConfig) error {
	if cfg.Width == 0 {
		cfg.Width = canvas.Image().Bounds().Dx()
	}
	if cfg.Height == 0 {
		cfg.Height = canvas.Image().Bounds().Dy()
	}
	if cfg.Title == "" {
		cfg.Title = "fractree"
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	return ebiten.RunGame(&game{grower: grower, canvas: canvas, cfg: cfg})
}
