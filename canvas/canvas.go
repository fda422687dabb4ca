// Package canvas is the windowed front end: an ebiten game that draws the
// board, forwards mouse clicks to the driver and shows the end-of-run banner.
package canvas

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/canvas-gol/game"
	"github.com/sheikhrachel/canvas-gol/model"
	"github.com/sheikhrachel/canvas-gol/sched"
)

const lineWidth = 2

var (
	controlsBackground = color.RGBA{R: 0xf4, G: 0xf4, B: 0xf4, A: 0xff}
	buttonColor        = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	buttonDisabled     = color.RGBA{R: 0xa5, G: 0xd6, B: 0xa7, A: 0xff}
	bannerBackground   = color.RGBA{A: 0xc0}
)

// Canvas implements model.Renderer, game.Notifier and ebiten.Game. Cells are
// painted onto a persistent surface so only diffs are drawn per generation.
type Canvas struct {
	cellSize int
	layout   layout
	surface  *ebiten.Image

	loop   *sched.Loop
	driver *game.Driver

	// banner is the pending notification; while set the game is paused
	banner string
}

// New creates a canvas for a cols x rows board. Bind must be called before
// the canvas is handed to ebiten.RunGame.
func New(cols, rows, cellSize int, loop *sched.Loop) *Canvas {
	l := newLayout(cols, rows, cellSize)
	c := &Canvas{
		cellSize: cellSize,
		layout:   l,
		surface:  ebiten.NewImage(l.boardW, l.boardH),
		loop:     loop,
	}
	c.surface.Fill(model.DeadColor)
	return c
}

// Bind attaches the driver that receives clicks and button presses
func (c *Canvas) Bind(d *game.Driver) {
	c.driver = d
}

// WindowSize returns the outer size of the window
func (c *Canvas) WindowSize() (int, int) {
	return c.layout.screenSize()
}

// DrawCell fills a cell and strokes its border
func (c *Canvas) DrawCell(pixelX, pixelY int, clr color.Color) {
	x, y, size := float32(pixelX), float32(pixelY), float32(c.cellSize)
	vector.DrawFilledRect(c.surface, x, y, size, size, clr, false)
	vector.StrokeRect(c.surface, x, y, size, size, lineWidth, model.BorderColor, false)
}

// DrawGridLines strokes every row and column border
func (c *Canvas) DrawGridLines() {
	w, h := float32(c.layout.boardW), float32(c.layout.boardH)
	for x := 0; x <= c.layout.boardW; x += c.cellSize {
		vector.StrokeLine(c.surface, float32(x), 0, float32(x), h, lineWidth, model.BorderColor, false)
	}
	for y := 0; y <= c.layout.boardH; y += c.cellSize {
		vector.StrokeLine(c.surface, 0, float32(y), w, float32(y), lineWidth, model.BorderColor, false)
	}
}

// Clear wipes the board surface
func (c *Canvas) Clear() {
	c.surface.Fill(model.DeadColor)
}

// Present is a no-op, the surface is copied to the screen every frame
func (c *Canvas) Present() {}

// Notify shows the outcome banner and pauses the game until dismissed
func (c *Canvas) Notify(outcome model.Outcome) {
	c.banner = outcome.Message()
}

// Update runs due ticks and handles input, once per ebiten tick
func (c *Canvas) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if c.banner != "" {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			c.banner = ""
		}
		return nil
	}

	c.loop.RunDue(time.Now())

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		c.driver.Start()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		c.driver.Reset()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		c.click(ebiten.CursorPosition())
	}
	return nil
}

func (c *Canvas) click(x, y int) {
	onBoard, ctrl := c.layout.hit(x, y)
	switch {
	case onBoard:
		c.driver.Toggle(x, y)
	case ctrl == startControl:
		c.driver.Start()
	case ctrl == resetControl:
		c.driver.Reset()
	}
}

// Draw composes the board, the control bar and the banner
func (c *Canvas) Draw(screen *ebiten.Image) {
	screen.Fill(controlsBackground)
	screen.DrawImage(c.surface, nil)

	running := c.driver.State() == game.Running
	c.drawButton(screen, startControl, "Start", !running)
	c.drawButton(screen, resetControl, "Reset", true)

	status := c.driver.Stats().String()
	if !running {
		status = "Click cells, then Start"
	}
	origin := c.layout.statusOrigin()
	text.Draw(screen, status, basicfont.Face7x13, origin.X, origin.Y, color.Black)

	if c.banner != "" {
		c.drawBanner(screen)
	}
}

func (c *Canvas) drawButton(screen *ebiten.Image, ctrl control, label string, enabled bool) {
	r := c.layout.button(ctrl)
	fill := buttonColor
	if !enabled {
		fill = buttonDisabled
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), fill, false)
	x := r.Min.X + (r.Dx()-len(label)*basicfont.Face7x13.Advance)/2
	y := r.Min.Y + r.Dy()/2 + 4
	text.Draw(screen, label, basicfont.Face7x13, x, y, color.White)
}

func (c *Canvas) drawBanner(screen *ebiten.Image) {
	w, h := c.layout.screenSize()
	box := image.Rect(0, h/2-30, w, h/2+30)
	vector.DrawFilledRect(screen, float32(box.Min.X), float32(box.Min.Y),
		float32(box.Dx()), float32(box.Dy()), bannerBackground, false)

	hint := "click to continue"
	adv := basicfont.Face7x13.Advance
	text.Draw(screen, c.banner, basicfont.Face7x13, (w-len(c.banner)*adv)/2, box.Min.Y+26, color.White)
	text.Draw(screen, hint, basicfont.Face7x13, (w-len(hint)*adv)/2, box.Min.Y+46, color.White)
}

// Layout reports a fixed logical screen size
func (c *Canvas) Layout(outsideWidth, outsideHeight int) (int, int) {
	return c.layout.screenSize()
}
