package main

import (
	"fmt"
	"math/rand"
	"testing"
)

// fakePlatform scripts the platform boundary for tests: a fixed display
// size, a movable pointer, settable key-held state and captured prints.
type fakePlatform struct {
	size   Size
	mouse  Point
	held   map[KeyCode]bool
	prints []string
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		size: Size{Width: 80, Height: 24},
		held: make(map[KeyCode]bool),
	}
}

func (f *fakePlatform) Size() Size { return f.size }

func (f *fakePlatform) PrintXY(x, y int, text string) {
	f.prints = append(f.prints, fmt.Sprintf("%d,%d %s", x, y, text))
}

func (f *fakePlatform) PrintXYStyled(x, y int, text string, _ StyleID) {
	f.PrintXY(x, y, text)
}

func (f *fakePlatform) Clear(*Rect) {}

func (f *fakePlatform) MousePosition() Point { return f.mouse }

func (f *fakePlatform) KeyHeld(key KeyCode) bool { return f.held[key] }

// newTestState deals a deterministic game with no title screen.
func newTestState(seed int64) *State {
	return makeState(false, rand.New(rand.NewSource(seed)))
}

// stepFrame advances the game one frame and fails the test if the frame
// requests quit.
func stepFrame(t *testing.T, p *fakePlatform, s *State, events ...Event) {
	t.Helper()
	if updateAndRender(p, s, events) {
		t.Fatal("frame unexpectedly requested quit")
	}
}

// clickAt drives a full click at the given cell: a hover frame so the widget
// claims hotness, a press frame and a release frame.
func clickAt(t *testing.T, p *fakePlatform, s *State, pt Point) {
	t.Helper()
	p.mouse = pt
	stepFrame(t, p, s)
	p.held[KeyMouseLeft] = true
	stepFrame(t, p, s, Event{Kind: EventKeyPressed, Key: KeyMouseLeft})
	p.held[KeyMouseLeft] = false
	stepFrame(t, p, s, Event{Kind: EventKeyReleased, Key: KeyMouseLeft})
}

// checkConservation verifies that deck, pile, every hand and any card held
// by the turn together make up exactly the full card set.
func checkConservation(t *testing.T, s *State) {
	t.Helper()
	seen := make(map[Card]int)
	for _, c := range s.deck {
		seen[c]++
	}
	for _, c := range s.pile {
		seen[c]++
	}
	for _, c := range s.player {
		seen[c]++
	}
	for _, hand := range s.cpuHands {
		for _, c := range hand {
			seen[c]++
		}
	}
	if s.turn.Kind == TurnPlayerSelected {
		seen[s.turn.Held]++
	}

	if len(seen) != DeckSize {
		t.Fatalf("expected %d distinct cards in play, found %d", DeckSize, len(seen))
	}
	for card, n := range seen {
		if n != 1 {
			t.Fatalf("card %v appears %d times", card, n)
		}
	}
}
