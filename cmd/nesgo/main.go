// Command nesgo is a minimal launcher: load a ROM, run it, show it.
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nesgo/nesgo/internal/console"
)

const (
	screenWidth  = 256
	screenHeight = 240
	scale        = 3
)

type game struct {
	nes   *console.Console
	image *ebiten.Image
}

func (g *game) Update() error {
	g.nes.SetButtons(readPad())
	g.nes.RunFrame()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.nes.Framebuffer()
	pix := make([]byte, 4*screenWidth*screenHeight)
	for i, c := range fb {
		pix[i*4] = c.R
		pix[i*4+1] = c.G
		pix[i*4+2] = c.B
		pix[i*4+3] = 0xFF
	}
	g.image.WritePixels(pix)
	screen.DrawImage(g.image, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func readPad() uint8 {
	var b uint8
	press := func(bit uint8, keys ...ebiten.Key) {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				b |= bit
			}
		}
	}
	press(0x01, ebiten.KeyZ)
	press(0x02, ebiten.KeyX)
	press(0x04, ebiten.KeyShiftRight, ebiten.KeyShiftLeft)
	press(0x08, ebiten.KeyEnter)
	press(0x10, ebiten.KeyUp)
	press(0x20, ebiten.KeyDown)
	press(0x40, ebiten.KeyLeft)
	press(0x80, ebiten.KeyRight)
	return b
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: nesgo <rom.nes>")
		os.Exit(1)
	}

	nes, err := console.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "nesgo: %v\n", err)
		os.Exit(1)
	}

	img := ebiten.NewImage(screenWidth, screenHeight)
	g := &game{nes: nes, image: img}

	ebiten.SetWindowSize(screenWidth*scale, screenHeight*scale)
	ebiten.SetWindowTitle("nesgo")
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "nesgo: %v\n", err)
		os.Exit(1)
	}
}
