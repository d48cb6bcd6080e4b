package main

// This file contains the display loop. Every frame of the stimulus is
// uploaded to its own texture before the loop starts, after that frames are
// flipped as fast as the loop runs.

import (
	"github.com/32bitkid/flicker"
	"github.com/32bitkid/flicker/playback"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"image"
	"image/color"
	"time"
)

type player struct {
	textures   []*ebiten.Image
	state      *playback.State
	mode       playback.Mode
	offset     image.Point
	frameSize  image.Point
	background color.Color
}

func newPlayer(set flicker.FrameSet, mode playback.Mode, background color.Color) *player {
	p := &player{
		textures:   make([]*ebiten.Image, 0, len(set)),
		state:      playback.NewState(len(set)),
		mode:       mode,
		background: background,
	}

	for _, buf := range set {
		tex := ebiten.NewImage(buf.Width, buf.Height)
		tex.WritePixels(buf.Pix)
		p.textures = append(p.textures, tex)
	}

	if len(set) > 0 {
		p.frameSize = image.Pt(set[0].Width, set[0].Height)
	}
	p.offset = playback.Center(image.Pt(mode.Width, mode.Height), p.frameSize)

	return p
}

func (p *player) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (p *player) Draw(screen *ebiten.Image) {
	n := p.state.Advance(time.Now())

	screen.Fill(p.background)
	if n >= len(p.textures) {
		return
	}

	// Pixel buffers keep the bitmap's bottom-up row order, flip them back.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, -1)
	op.GeoM.Translate(float64(p.offset.X), float64(p.offset.Y+p.frameSize.Y))
	screen.DrawImage(p.textures[n], op)
}

func (p *player) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.mode.Width, p.mode.Height
}

func (p *player) dispose() {
	for _, tex := range p.textures {
		tex.Dispose()
	}
	p.textures = nil
}
