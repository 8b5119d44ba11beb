package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/vector-effects/internal/config"
	"github.com/iburimskiy/vector-effects/internal/game"
	"github.com/iburimskiy/vector-effects/internal/noise"
)

func main() {
	log.SetFlags(log.Ltime)
	log.SetPrefix("[effects] ")

	var (
		panelName = flag.String("panel", "", "effect shown at startup: circles, mesh or neumorphism")
		offset    = flag.Int64("noise-offset", -1, "noise seed offset; negative picks one at random")
		width     = flag.Int("width", config.WindowWidth, "window width")
		height    = flag.Int("height", config.WindowHeight, "window height")
		withSound = flag.Bool("sound", true, "play a click when the switch toggles")
	)
	flag.Parse()

	panel, err := game.ParsePanel(*panelName)
	if err != nil {
		log.Printf("%v", err)
		flag.Usage()
		os.Exit(2)
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	if *offset < 0 {
		*offset = noise.RandomOffset(rnd)
	}

	g := game.New(game.Options{
		Width:       *width,
		Height:      *height,
		Panel:       panel,
		NoiseOffset: *offset,
		Sound:       *withSound,
		Rand:        rnd,
	})

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Vector Effects - 1/2/3: switch effect, S: export mesh, Esc/Q: quit")
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
