// Package game hosts the three effects in an ebiten window: a panel on top
// and a column of navigation buttons below it.
package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/vector-effects/internal/anim"
	"github.com/iburimskiy/vector-effects/internal/circles"
	"github.com/iburimskiy/vector-effects/internal/colormix"
	"github.com/iburimskiy/vector-effects/internal/config"
	"github.com/iburimskiy/vector-effects/internal/export"
	"github.com/iburimskiy/vector-effects/internal/mesh"
	"github.com/iburimskiy/vector-effects/internal/neumorph"
	"github.com/iburimskiy/vector-effects/internal/noise"
	"github.com/iburimskiy/vector-effects/internal/sound"
)

// Options configure a Game.
type Options struct {
	Width, Height int
	Panel         Panel
	NoiseOffset   int64
	Sound         bool
	Rand          *rand.Rand
}

type Game struct {
	width, height int

	clock     anim.Clock
	mountedAt float64
	show      Panel
	rnd       *rand.Rand
	noise     *noise.Source
	palette   []colormix.Color

	// panels, rebuilt whenever they are shown
	scene *circles.Scene
	grid  *mesh.Grid
	sw    *neumorph.Switch

	player *sound.Player

	// input edge detection
	prevKey map[ebiten.Key]bool
	touches []ebiten.TouchID

	// button state
	hovered int
	pressed int

	lastErr error
}

func New(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = config.WindowWidth
	}
	if opts.Height <= 0 {
		opts.Height = config.WindowHeight
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	palette := make([]colormix.Color, len(config.Palette))
	for i, hex := range config.Palette {
		palette[i] = colormix.MustHex(hex)
	}
	g := &Game{
		width:   opts.Width,
		height:  opts.Height,
		rnd:     opts.Rand,
		noise:   noise.NewSource(opts.NoiseOffset),
		palette: palette,
		player:  sound.NewPlayer(beep.SampleRate(config.SampleRate), 0.5, opts.Sound),
		prevKey: map[ebiten.Key]bool{},
		hovered: -1,
		pressed: -1,
	}
	g.Show(opts.Panel)
	log.Printf("noise offset %d", g.noise.Offset())
	return g
}

// Show mounts panel p with fresh state. Showing the current panel again
// restarts it.
func (g *Game) Show(p Panel) {
	g.show = p
	g.mountedAt = g.clock.Now()
	g.scene, g.grid, g.sw = nil, nil, nil

	switch p {
	case PanelCircles:
		g.scene = circles.NewScene(g.rnd)
		g.scene.Start(g.clock.Now())
	case PanelMesh:
		g.grid = mesh.NewGrid(&noise.Displacer{
			N:         config.GridPoints,
			Frequency: config.NoiseFrequency,
			Amplitude: config.NoiseAmplitude,
			Source:    g.noise,
		}, g.palette)
		g.grid.Resize(g.panelSize())
	case PanelNeumorphism:
		g.sw = neumorph.NewSwitch()
	}
}

func (g *Game) Panel() Panel { return g.show }

// elapsed is the clock as seen by the mounted panel.
func (g *Game) elapsed() float64 { return g.clock.Now() - g.mountedAt }

func (g *Game) panelSize() mesh.Size {
	r := panelRect(g.width, g.height)
	return mesh.Size{Width: float64(r.Dx()), Height: float64(r.Dy())}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.clock.Advance(1000.0 / config.TicksPerSecond)
	now := g.clock.Now()

	// Navigation buttons react on release over the button they were pressed on.
	mouseX, mouseY := ebiten.CursorPosition()
	g.hovered = buttonAt(mouseX, mouseY, g.width, g.height)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = g.hovered
		if g.hovered < 0 {
			g.touchStart(mouseX, mouseY, now)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressed >= 0 && g.pressed == g.hovered {
			g.press(g.pressed)
		}
		g.pressed = -1
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		if i := buttonAt(x, y, g.width, g.height); i >= 0 {
			g.press(i)
			continue
		}
		g.touchStart(x, y, now)
	}

	switch {
	case justPressed(ebiten.Key1):
		g.Show(PanelCircles)
	case justPressed(ebiten.Key2):
		g.Show(PanelMesh)
	case justPressed(ebiten.Key3):
		g.Show(PanelNeumorphism)
	}
	if justPressed(ebiten.KeyS) && g.grid != nil {
		if err := g.exportDialog(); err != nil {
			g.lastErr = err
			log.Printf("export: %v", err)
		}
	}
	if justPressed(ebiten.KeyM) {
		on := g.player.SetEnabled(!g.player.Enabled())
		log.Printf("sound %v", on)
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.tick(now)
	return nil
}

// press activates navigation button i.
func (g *Game) press(i int) {
	b := buttons[i]
	if b.inert {
		return
	}
	g.Show(b.panel)
}

// touchStart delivers a touch-start at (x, y) to the mounted panel.
func (g *Game) touchStart(x, y int, now float64) {
	if !panelContains(g.width, g.height, x, y) || g.sw == nil {
		return
	}
	target := g.sw.TouchStart(now)
	g.player.Click(target == 1)
}

func panelContains(width, height, x, y int) bool {
	r := panelRect(width, height)
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

func (g *Game) tick(now float64) {
	switch {
	case g.scene != nil:
		g.scene.Tick(now)
	case g.grid != nil:
		g.grid.Resize(g.panelSize())
	case g.sw != nil:
		g.sw.Tick(now)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	panel := screen.SubImage(panelRect(g.width, g.height)).(*ebiten.Image)
	switch g.show {
	case PanelCircles:
		g.drawCircles(panel)
	case PanelMesh:
		g.drawMesh(panel)
	case PanelNeumorphism:
		g.drawNeumorphism(panel)
	}

	for i := range buttons {
		g.drawButton(screen, i)
	}

	status := g.statusLine()
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

func (g *Game) statusLine() string {
	switch g.show {
	case PanelMesh:
		return fmt.Sprintf("Mesh %s | noise %d | S: export SVG", formatClock(g.elapsed()), g.noise.Offset())
	case PanelNeumorphism:
		state := "off"
		if g.sw.On() {
			state = "on"
		}
		return fmt.Sprintf("Switch %s | click to toggle, M: sound", state)
	case PanelCircles:
		return "Circles " + formatClock(g.elapsed())
	}
	return "1/2/3 or the buttons below select an effect, Esc/Q: quit"
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// exportDialog asks for a path and writes the current mesh frame there.
func (g *Game) exportDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Export Mesh Frame"),
		zenity.Filename("mesh.svg"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "SVG",
			Patterns: []string{"*.svg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if err := export.SaveSVG(filename, g.grid.Size(), g.grid.Frame(g.elapsed()), config.StrokeWidth); err != nil {
		return err
	}
	log.Printf("exported mesh frame to %s", filename)
	return nil
}
