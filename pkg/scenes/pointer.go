package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/cryptowolf/pkg/utils"
)

// ReadPointer 获取当前帧的指针状态
// 同时支持鼠标和触摸输入，优先检测触摸
func ReadPointer() utils.PointerState {
	state := utils.PointerState{}

	// 首先检查新的触摸（移动设备）
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.JustPressed = true
		state.IsTouching = true
		state.Present = true
		return state
	}

	// 拖动中的触摸
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		state.Present = true
		return state
	}

	// 移动端没有触摸时不跟随光标（光标位置无意义）
	if utils.IsMobile() {
		return state
	}

	state.X, state.Y = ebiten.CursorPosition()
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.Present = true
	return state
}
