// Command snake-term plays snake in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"snake-game/config"
	"snake-game/input"
	"snake-game/session"
	"snake-game/ui/term"
	"time"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("snake-term", os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	// The terminal belongs to tcell, so logs go to a file or nowhere.
	closeLog, err := config.SetupLogging(cfg.LogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := session.Open(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.Printf("Failed to save on exit: %v", err)
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	loop(screen, sess)
	return nil
}

func loop(screen tcell.Screen, sess *session.Session) {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	}()

	renderer := term.NewRenderer(screen)
	frame := input.NewFrame(input.DefaultKeymap())

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if key, ok := term.Translate(ev.Key(), ev.Rune()); ok {
					frame.Press(key)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			now := time.Now()
			if sess.Frame(frame, now) {
				return
			}
			frame.Clear()
			renderer.Draw(sess.Game(), now)
		}
	}
}
