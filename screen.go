package main

import (
	"github.com/gdamore/tcell/v2"
)

// screenPlatform implements Platform on a tcell terminal screen. It also
// owns event translation: raw tcell events become the game's frame-local
// Event stream, with the left mouse button reduced to a synthetic key so the
// game can treat clicks and key chords uniformly.
type screenPlatform struct {
	screen tcell.Screen
	styles map[StyleID]tcell.Style

	mouse       Point
	mouseHeld   bool
	prevButtons tcell.ButtonMask
}

func newScreenPlatform() (*screenPlatform, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	screen.EnableMouse()
	screen.HideCursor()

	styles := buildStyles()
	screen.SetStyle(styles[StyleDefault])

	return &screenPlatform{screen: screen, styles: styles}, nil
}

// Fini restores the terminal. Safe to call once at shutdown.
func (s *screenPlatform) Fini() {
	s.screen.Fini()
}

func (s *screenPlatform) Size() Size {
	w, h := s.screen.Size()
	return Size{Width: w, Height: h}
}

func (s *screenPlatform) PrintXY(x, y int, text string) {
	s.PrintXYStyled(x, y, text, StyleDefault)
}

func (s *screenPlatform) PrintXYStyled(x, y int, text string, style StyleID) {
	st, ok := s.styles[style]
	if !ok {
		st = s.styles[StyleDefault]
	}
	col := x
	for _, r := range text {
		s.screen.SetContent(col, y, r, nil, st)
		col++
	}
}

func (s *screenPlatform) Clear(r *Rect) {
	if r == nil {
		s.screen.Clear()
		return
	}
	st := s.styles[StyleDefault]
	for row := r.Y; row < r.Y+r.H; row++ {
		for col := r.X; col < r.X+r.W; col++ {
			s.screen.SetContent(col, row, ' ', nil, st)
		}
	}
}

func (s *screenPlatform) MousePosition() Point {
	return s.mouse
}

func (s *screenPlatform) KeyHeld(key KeyCode) bool {
	// Terminals only report transitions for the mouse button; no other key
	// exposes held state.
	return key == KeyMouseLeft && s.mouseHeld
}

// translate converts one tcell event into zero or more game events, updating
// the pointer and button-held tracking as a side effect.
func (s *screenPlatform) translate(ev tcell.Event) []Event {
	switch tev := ev.(type) {
	case *tcell.EventMouse:
		x, y := tev.Position()
		s.mouse = Point{X: x, Y: y}

		var out []Event
		buttons := tev.Buttons() & tcell.Button1
		if buttons != 0 && s.prevButtons == 0 {
			s.mouseHeld = true
			out = append(out, Event{Kind: EventKeyPressed, Key: KeyMouseLeft})
		} else if buttons == 0 && s.prevButtons != 0 {
			s.mouseHeld = false
			out = append(out, Event{Kind: EventKeyReleased, Key: KeyMouseLeft})
		}
		s.prevButtons = buttons
		return out

	case *tcell.EventKey:
		switch tev.Key() {
		case tcell.KeyEscape:
			return []Event{{Kind: EventKeyPressed, Key: KeyEscape}}
		case tcell.KeyCtrlC:
			return []Event{{Kind: EventClose}}
		case tcell.KeyCtrlR:
			return []Event{{Kind: EventKeyPressed, Key: KeyR, Ctrl: true}}
		case tcell.KeyRune:
			key := KeyOther
			if tev.Rune() == 'r' || tev.Rune() == 'R' {
				key = KeyR
			}
			return []Event{{
				Kind:  EventKeyPressed,
				Key:   key,
				Ctrl:  tev.Modifiers()&tcell.ModCtrl != 0,
				Shift: tev.Modifiers()&tcell.ModShift != 0,
			}}
		default:
			return []Event{{Kind: EventKeyPressed, Key: KeyOther}}
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}

	return nil
}
