package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"snake-game/config"
	"snake-game/input"
	"snake-game/session"
	"snake-game/ui"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg, err := config.Load("snake", os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid configuration: %v", err)
	}
	closeLog, err := config.SetupLogging(cfg.LogFile, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	sess, err := session.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.Printf("Failed to save on exit: %v", err)
		}
	}()

	rl.InitWindow(1280, 680, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetExitKey(0) // escape goes through the keymap
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	frame := input.NewFrame(input.DefaultKeymap())

	for !rl.WindowShouldClose() {
		frame.Clear()
		ui.PollKeys(frame)

		now := time.Now()
		if sess.Frame(frame, now) {
			break
		}
		renderer.Draw(sess.Game(), sess.Progress(now), now)
	}
}
