package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/cryptowolf/pkg/components"
	"github.com/decker502/cryptowolf/pkg/config"
	"github.com/decker502/cryptowolf/pkg/game"
)

// 调试字体的字符尺寸（ebitenutil.DebugPrint）
const (
	debugCharWidth  = 6
	debugLineHeight = 16
)

var (
	colorBackground = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	colorGround     = color.RGBA{R: 51, G: 65, B: 85, A: 255}
	colorWolf       = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	colorMagnetRing = color.RGBA{R: 56, G: 189, B: 248, A: 255}
	colorOverlay    = color.RGBA{R: 0, G: 0, B: 0, A: 170}
)

// Draw 绘制当前快照
func (ps *PlayScene) Draw(screen *ebiten.Image) {
	snap := ps.session.Snapshot()
	layout := ps.session.Layout()

	drawBackground(screen, layout)
	for _, e := range snap.Entities {
		drawEntity(screen, e)
	}
	drawCatcher(screen, snap.Catcher, snap.MagnetActive)

	soundOn := ps.sound != nil && ps.sound.SoundEnabled()
	for i, line := range game.HUDLines(snap, ps.session.Rules(), soundOn) {
		ebitenutil.DebugPrintAt(screen, line, 6, 4+i*debugLineHeight)
	}

	if snap.OverlayTitle != "" {
		drawOverlay(screen, layout, snap)
	}
}

func drawBackground(screen *ebiten.Image, layout config.Layout) {
	screen.Fill(colorBackground)
	groundY := float32(layout.CatcherY() + layout.CatcherHeight)
	vector.DrawFilledRect(screen, 0, groundY, float32(layout.Width), float32(layout.Height)-groundY, colorGround, false)
	vector.StrokeLine(screen, 0, groundY, float32(layout.Width), groundY, 1, colorWolf, false)
}

func drawEntity(screen *ebiten.Image, e components.FallingEntity) {
	attrs := e.Kind.Attributes()
	clr := rgb(attrs.Color)
	x, y, r := float32(e.X), float32(e.Y), float32(e.Radius)

	switch attrs.Shape {
	case components.ShapeSquare:
		vector.DrawFilledRect(screen, x-r, y-r, 2*r, 2*r, clr, false)
	default:
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
	}
	ebitenutil.DebugPrintAt(screen, string(attrs.Icon), int(e.X)-debugCharWidth/2, int(e.Y)-debugLineHeight/2)
}

func drawCatcher(screen *ebiten.Image, c components.Catcher, magnet bool) {
	x, y, w, h := float32(c.X), float32(c.Y), float32(c.Width), float32(c.Height)
	vector.DrawFilledRect(screen, x, y, w, h, colorWolf, false)
	if magnet {
		vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 2, colorMagnetRing, false)
	}
	label := "WOLF"
	ebitenutil.DebugPrintAt(screen, label, int(c.CenterX())-len(label)*debugCharWidth/2, int(c.Y+c.Height/2)-debugLineHeight/2)
}

func drawOverlay(screen *ebiten.Image, layout config.Layout, snap game.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, float32(layout.Width), float32(layout.Height), colorOverlay, false)

	width := int(layout.Width)
	y := int(layout.Height)/2 - debugLineHeight*2
	ebitenutil.DebugPrintAt(screen, snap.OverlayTitle, centeredX(snap.OverlayTitle, width), y)
	for _, line := range snap.OverlayLines {
		y += debugLineHeight + 2
		ebitenutil.DebugPrintAt(screen, line, centeredX(line, width), y)
	}
}

// centeredX 返回文本在给定宽度内水平居中的起始X
func centeredX(text string, width int) int {
	return (width - len(text)*debugCharWidth) / 2
}

// rgb 将 0xRRGGBB 转换为不透明颜色
func rgb(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 255}
}
