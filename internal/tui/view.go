package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cryptowolf/pkg/components"
	"github.com/decker502/cryptowolf/pkg/config"
	"github.com/decker502/cryptowolf/pkg/game"
	"github.com/decker502/cryptowolf/pkg/utils"
)

// hudRows 画布上方的 HUD 行数（分数行 + 计时器/商店行），画布下方还有 1 行状态文本
const hudRows = 2

var (
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleWolf    = tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true)
	styleMagnet  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x38bdf8)).Bold(true)
	styleGround  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Field 画布在终端上占据的区域（单位：字符格）
type Field struct {
	X, Y          int
	Width, Height int
}

// FieldFor 根据终端尺寸计算画布区域
func FieldFor(cols, rows int) Field {
	return Field{
		X:      0,
		Y:      hudRows,
		Width:  max(cols, 1),
		Height: max(rows-hudRows-1, 1),
	}
}

// Contains 判断终端坐标是否在画布内
func (f Field) Contains(col, row int) bool {
	return col >= f.X && col < f.X+f.Width && row >= f.Y && row < f.Y+f.Height
}

// GameX 把终端列号转换为游戏坐标（取字符格中心）
func (f Field) GameX(col int, layout config.Layout) float64 {
	return utils.ScreenToGameX(float64(col)+0.5, float64(f.X), float64(f.Width), layout.Width)
}

// Col 把游戏X坐标转换为终端列号
func (f Field) Col(x float64, layout config.Layout) int {
	return int(utils.GameToScreenX(x, float64(f.X), float64(f.Width), layout.Width))
}

// Row 把游戏Y坐标转换为终端行号
func (f Field) Row(y float64, layout config.Layout) int {
	return int(utils.GameToScreenY(y, float64(f.Y), float64(f.Height), layout.Height))
}

// Draw 把快照绘制到终端屏幕（不调用 Show）
func Draw(screen tcell.Screen, snap game.Snapshot, rules config.RulesConfig, layout config.Layout, soundOn bool) {
	screen.Clear()
	cols, rows := screen.Size()
	field := FieldFor(cols, rows)

	lines := game.HUDLines(snap, rules, soundOn)
	puts(screen, 0, 0, lines[0], styleHUD)
	puts(screen, 0, 1, lines[1], styleHUD)
	if len(lines) > 2 {
		puts(screen, 0, rows-1, lines[2], styleStatus)
	}

	groundRow := field.Row(layout.CatcherY()+layout.CatcherHeight, layout)
	if groundRow < field.Y+field.Height {
		for col := field.X; col < field.X+field.Width; col++ {
			screen.SetContent(col, groundRow, '_', nil, styleGround)
		}
	}

	for _, e := range snap.Entities {
		drawEntity(screen, field, layout, e)
	}
	drawCatcher(screen, field, layout, snap.Catcher, snap.MagnetActive)

	if snap.OverlayTitle != "" {
		drawOverlay(screen, field, snap)
	}
}

func drawEntity(screen tcell.Screen, field Field, layout config.Layout, e components.FallingEntity) {
	col, row := field.Col(e.X, layout), field.Row(e.Y, layout)
	if !field.Contains(col, row) {
		return
	}
	attrs := e.Kind.Attributes()
	style := tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(attrs.Color))).Bold(true)
	screen.SetContent(col, row, attrs.Icon, nil, style)
}

func drawCatcher(screen tcell.Screen, field Field, layout config.Layout, c components.Catcher, magnet bool) {
	row := min(field.Row(c.Y, layout), field.Y+field.Height-1)
	left := field.Col(c.X, layout)
	right := max(field.Col(c.X+c.Width, layout)-1, left)

	for col := left; col <= right; col++ {
		screen.SetContent(col, row, '=', nil, styleWolf)
	}
	screen.SetContent((left+right)/2, row, 'W', nil, styleWolf)
	if magnet {
		screen.SetContent(left, row, '[', nil, styleMagnet)
		screen.SetContent(right, row, ']', nil, styleMagnet)
	}
}

func drawOverlay(screen tcell.Screen, field Field, snap game.Snapshot) {
	row := field.Y + field.Height/2 - 1
	puts(screen, centeredCol(snap.OverlayTitle, field), row, snap.OverlayTitle, styleOverlay)
	for _, line := range snap.OverlayLines {
		row++
		puts(screen, centeredCol(line, field), row, line, styleHUD)
	}
}

func centeredCol(text string, field Field) int {
	return field.X + max((field.Width-len(text))/2, 0)
}

func puts(screen tcell.Screen, col, row int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(col+i, row, r, nil, style)
	}
}
