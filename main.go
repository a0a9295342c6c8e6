package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/decker502/cryptowolf/pkg/app"
	"github.com/decker502/cryptowolf/pkg/config"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "规则文件路径（YAML），默认读取 WOLF_CONFIG")
	preset     = flag.String("preset", "", "规则预设：classic 或 shop")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	// .env 不存在不是错误
	if err := godotenv.Load(); err == nil {
		log.Printf("[Main] Loaded .env")
	}

	rules, err := config.LoadRules(config.LoadOptions{Path: *configPath, Preset: *preset})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cryptowolf: %v\n", err)
		os.Exit(1)
	}

	gameApp := app.NewApp(app.Config{
		Verbose: *verbose,
		Rules:   *rules,
	})

	ebiten.SetWindowSize(app.WindowWidth, app.WindowHeight)
	ebiten.SetWindowTitle("Crypto Wolf")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		gameApp.SaveOnExit()
		fmt.Fprintf(os.Stderr, "cryptowolf: %v\n", err)
		os.Exit(1)
	}
}
