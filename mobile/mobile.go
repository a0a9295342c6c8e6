//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.cryptowolf -o build/android/cryptowolf.aar ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/CryptoWolf.xcframework ./mobile
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/cryptowolf/pkg/app"
	"github.com/decker502/cryptowolf/pkg/config"
)

var gameApp *app.App

func init() {
	// 移动端没有命令行参数和环境变量，使用经典规则
	gameApp = app.NewApp(app.Config{
		Verbose: true,
		Rules:   config.ClassicRules(),
	})
	mobile.SetGame(gameApp)
}

// Suspend 应用进入后台时由宿主调用，保存进度
func Suspend() {
	gameApp.SaveOnExit()
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
