package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

// frameInterval paces the render loop. Frames are cheap (a few hundred cell
// writes), so a fixed tick keeps hover styling live between input events.
const frameInterval = 33 * time.Millisecond

func main() {
	seed := flag.Int64("seed", 0, "fixed RNG seed for a reproducible game (0 seeds from the clock)")
	flag.Parse()
	fixedSeed = *seed

	// The standard logger writes to stderr, which would scribble over the
	// cell grid. Route it to a file when asked for, otherwise drop it.
	if path := os.Getenv("THIRTYONE_LOG"); path != "" {
		if f, err := os.Create(path); err == nil {
			log.SetOutput(f)
			defer f.Close()
		}
	} else {
		log.SetOutput(io.Discard)
	}

	platform, err := newScreenPlatform()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("could not open the terminal screen: %v", err)
	}
	defer platform.Fini()

	initAudio()

	state := newState(platform.Size())
	run(platform, state)
}

// run drives the frame loop: collect this frame's events, advance the game
// one frame, present. It returns when the game requests quit.
func run(platform *screenPlatform, state *State) {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	go platform.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var frame []Event
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			frame = append(frame, platform.translate(ev)...)

		case <-ticker.C:
			platform.Clear(nil)
			if updateAndRender(platform, state, frame) {
				return
			}
			frame = frame[:0]
			platform.screen.Show()
		}
	}
}
