//go:build !tinygo

/*
Copyright 2024 Tim St. Pierre
Desktop preview of a DOGS164 driven through the emulated controller
*/

// Command dogs164-preview runs the driver against the emulated controller
// and shows the display content in a window.
package main

import (
	"flag"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/Neomium/dogs164"
	"github.com/Neomium/dogs164/dogs164test"
)

const (
	cellH  = 14
	margin = 6
)

var (
	background = color.RGBA{0x9D, 0xC8, 0x3C, 0xFF}
	foreground = color.RGBA{0x1A, 0x24, 0x10, 0xFF}
)

var (
	scale   = flag.Int("scale", 3, "Window scale factor")
	view    = flag.String("view", "top", "View mode: top or bottom")
	verbose = flag.Bool("v", false, "Log every transfer")
)

// canvas is a tinyfont Displayer drawing into an RGBA image.
type canvas struct {
	img *image.RGBA
}

func (c *canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *canvas) SetPixel(x, y int16, col color.RGBA) {
	c.img.SetRGBA(int(x), int(y), col)
}

func (c *canvas) Display() error {
	return nil
}

type preview struct {
	dev   *dogs164.Dev
	ctrl  *dogs164test.Controller
	font  tinyfont.Fonter
	cellW int
	c     *canvas
	img   *ebiten.Image
	last  time.Time
}

func newPreview(dev *dogs164.Dev, ctrl *dogs164test.Controller) *preview {
	font := &proggy.TinySZ8pt7b
	_, w := tinyfont.LineWidth(font, "0")
	p := &preview{dev: dev, ctrl: ctrl, font: font, cellW: int(w)}
	width := 2*margin + dogs164.Cols*p.cellW
	height := 2*margin + dogs164.Rows*cellH
	p.c = &canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	p.img = ebiten.NewImage(width, height)
	return p
}

func (p *preview) Update() error {
	now := time.Now()
	if now.Sub(p.last) < time.Second {
		return nil
	}
	p.last = now
	if err := p.dev.ClearLine(4); err != nil {
		return err
	}
	_, err := p.dev.WriteString(now.Format("15:04:05"))
	return err
}

func (p *preview) Draw(screen *ebiten.Image) {
	img := p.c.img
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = background.R, background.G, background.B, background.A
	}
	if p.ctrl.DisplayFlags()&0x04 != 0 {
		for row, text := range p.ctrl.Lines() {
			for col := 0; col < len(text); col++ {
				x := int16(margin + col*p.cellW)
				y := int16(margin + row*cellH + cellH - 3)
				tinyfont.WriteLine(p.c, p.font, x, y, string(rune(text[col])), foreground)
			}
		}
		p.drawCursor()
	}
	p.img.WritePixels(img.Pix)
	screen.DrawImage(p.img, nil)
}

// drawCursor underlines the cell the address counter points at.
func (p *preview) drawCursor() {
	row, col, ok := p.ctrl.Cursor()
	if !ok || p.ctrl.DisplayFlags()&0x02 == 0 {
		return
	}
	y := margin + row*cellH - 1
	for x := margin + (col-1)*p.cellW; x < margin+col*p.cellW-1; x++ {
		p.c.img.SetRGBA(x, y, foreground)
	}
}

func (p *preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := p.c.img.Bounds()
	return b.Dx(), b.Dy()
}

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := dogs164.DefaultConfig()
	if *view == "bottom" {
		cfg.ViewMode = dogs164.ViewBottom
	}
	cfg.Display = cfg.Display.With(dogs164.CursorOn)

	ctrl := dogs164test.New(dogs164.DefaultOpts.I2CAddr)
	dev, err := dogs164.NewI2C(ctrl, dogs164.DelayerFunc(func(uint32) {}), nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.Init(cfg); err != nil {
		log.Fatal(err)
	}
	for row, text := range []string{"DOGS164 preview", "SSD18030 I2C", "4 x 16"} {
		if err := dev.Locate(row+1, 1); err != nil {
			log.Fatal(err)
		}
		if _, err := dev.WriteString(text); err != nil {
			log.Fatal(err)
		}
	}

	p := newPreview(dev, ctrl)
	b, s := p.c.img.Bounds(), *scale
	ebiten.SetWindowTitle("DOGS164")
	ebiten.SetWindowSize(b.Dx()*s, b.Dy()*s)
	if err := ebiten.RunGame(p); err != nil {
		log.Fatal(err)
	}
}
