package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/limbo/constants"
	"github.com/lixenwraith/limbo/engine"
	"github.com/lixenwraith/limbo/render"
)

// inputState tracks the primary button so a held press counts once
type inputState struct {
	pressed bool
}

// handleEvent applies one terminal event to the session; quit is recorded on the session itself
func handleEvent(ev tcell.Event, session *engine.Session, renderer *render.TerminalRenderer, in *inputState) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev) {
			session.Quit()
		}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !in.pressed {
			x, y := ev.Position()
			session.Click(x, y)
		}
		in.pressed = down

	case *tcell.EventResize:
		w, h := ev.Size()
		renderer.Resize(w, h)
		session.SetLayout(renderer.Layout())
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		r := ev.Rune()
		return r == 'q' || r == 'Q' || (r == 'c' && ev.Modifiers()&tcell.ModCtrl != 0)
	}
	return false
}

// pollEvents forwards terminal events until the screen is finalized, then closes events
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	defer close(events)

	// Panic recovery for the poller, which runs outside the loop's recover
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\nEVENT POLLER CRASHED: %v\r\nStack Trace:\r\n%s\r\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

// runLoop renders on every tick and applies events as they arrive, until the session is quit
// Animations advance by measured elapsed time, so quit is honoured mid-playback
func runLoop(screen tcell.Screen, renderer *render.TerminalRenderer, session *engine.Session,
	clock *engine.FrameClock, ticks <-chan time.Time) {

	events := make(chan tcell.Event, constants.EventQueueSize)
	go pollEvents(screen, events)

	var in inputState
	renderer.RenderFrame(session.Frame())

	for {
		select {
		case ev, ok := <-events:
			// Terminal gone
			if !ok {
				session.Quit()
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			handleEvent(ev, session, renderer, &in)
			if session.Done() {
				return
			}

		case <-ticks:
			session.Update(clock.Tick())
			renderer.RenderFrame(session.Frame())
		}
	}
}
