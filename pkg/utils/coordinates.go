package utils

// ScreenToGameX 将设备坐标转换为游戏坐标（画布X）
//
// 参数：
//   - screenX: 设备坐标（如终端列号、窗口像素）
//   - originX: 画布在设备上的左边缘
//   - screenWidth: 画布在设备上的宽度
//   - gameWidth: 画布的逻辑宽度 W
//
// 返回：
//   - float64: 游戏坐标，不做范围限制（由 Catcher 负责）
//
// screenWidth <= 0 时返回 gameWidth/2（画布中央）
func ScreenToGameX(screenX, originX, screenWidth, gameWidth float64) float64 {
	if screenWidth <= 0 {
		return gameWidth / 2
	}
	return (screenX - originX) * gameWidth / screenWidth
}

// GameToScreenX 将游戏坐标转换回设备坐标，ScreenToGameX 的逆运算
func GameToScreenX(gameX, originX, screenWidth, gameWidth float64) float64 {
	if gameWidth <= 0 {
		return originX
	}
	return originX + gameX*screenWidth/gameWidth
}

// GameToScreenY 将游戏Y坐标按比例转换为设备坐标
func GameToScreenY(gameY, originY, screenHeight, gameHeight float64) float64 {
	if gameHeight <= 0 {
		return originY
	}
	return originY + gameY*screenHeight/gameHeight
}
