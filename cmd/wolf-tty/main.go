// Package main plays Crypto Wolf in a terminal.
//
// Usage:
//
//	go run ./cmd/wolf-tty [flags]
//
// Flags:
//
//	-preset <name>   Rules preset: classic or shop
//	-config <path>   Rules file (YAML), defaults to WOLF_CONFIG
//	-mute            Do not open the audio device
//	-log <path>      Append logs to this file (logs are discarded otherwise)
//
// Controls:
//
//	Mouse            - Move the wolf, click the field to start/resume
//	Left/Right Arrow - Move the wolf
//	Space/Enter      - Start a new game
//	P/Escape         - Pause/resume
//	L / S / M        - Buy a life / slow-time / magnet
//	N                - Toggle sound
//	Q/Ctrl-C         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/decker502/cryptowolf/internal/tui"
	"github.com/decker502/cryptowolf/pkg/config"
	"github.com/decker502/cryptowolf/pkg/utils"
)

var (
	presetFlag = flag.String("preset", "", "Rules preset: classic or shop")
	configFlag = flag.String("config", "", "Rules file (YAML), defaults to WOLF_CONFIG")
	muteFlag   = flag.Bool("mute", false, "Do not open the audio device")
	logFlag    = flag.String("log", "", "Append logs to this file")
)

func main() {
	flag.Parse()

	// 终端被 tcell 接管，日志只能写文件
	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wolf-tty: failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := godotenv.Load(); err == nil {
		log.Printf("[Main] Loaded .env")
	}

	rules, err := config.LoadRules(config.LoadOptions{Path: *configFlag, Preset: *presetFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "wolf-tty: %v\n", err)
		os.Exit(1)
	}
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[Main] Warning: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wolf-tty: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := tui.New(screen, tui.Config{Rules: *rules, Mute: *muteFlag})
	if err := term.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "wolf-tty: %v\n", err)
		os.Exit(1)
	}
}
