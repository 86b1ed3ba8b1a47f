// Package fractree draws an animated fractal tree onto a 2D canvas.
//
// A tree is a recursive Y-shaped branching structure. Each branch is
// described by a [Branch] value: an origin point, a trunk length, a
// shrink ratio, a spread angle, and an accumulated incline from
// vertical. Splitting a branch yields two children whose trunks start
// at the parent's trunk endpoint, shrunk by the ratio and tilted by
// half the spread angle to either side.
//
// The [Grower] owns a work queue of pending branches and grows the
// tree breadth-first, one branch per scheduling tick, so the drawing
// appears over time. Growth stops on its own once branches shrink
// below a fixed floor (seven generations past the root).
//
// # Quick start
//
// The simplest way to get a window on screen is [Run], which wires an
// [EbitenCanvas] into a game loop for you:
//
//	cfg := fractree.DefaultConfig(640, 480)
//	canvas := fractree.NewEbitenCanvas(640, 480)
//	grower, err := fractree.NewGrower(cfg, canvas)
//	if err != nil {
//		log.Fatal(err)
//	}
//	grower.Start()
//	fractree.Run(grower, canvas, fractree.RunConfig{Title: "Tree"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Grower.Update] from your Update method.
//
// # Canvases
//
// Drawing goes through the small [Canvas] interface, so the same
// grower renders to a live window ([EbitenCanvas]), to an offscreen
// raster for PNG output ([ImageCanvas], backed by [gg]), or to a test
// double. Tests drive [Grower.Step] directly and never touch a wall
// clock.
//
// [ebiten.Game]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#Game
// [gg]: https://github.com/gogpu/gg
package fractree
