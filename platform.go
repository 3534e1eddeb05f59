package main

// Point is a position in integer cell units.
type Point struct {
	X, Y int
}

// Size is a display size in integer cell units.
type Size struct {
	Width, Height int
}

// KeyCode is a logical key. The left mouse button is modeled as a key so the
// event reduction can treat clicks and key chords uniformly.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyMouseLeft
	KeyEscape
	KeyR
	KeyOther // any key the game has no specific handling for
)

// EventKind tags an input event.
type EventKind int

const (
	EventKeyPressed EventKind = iota
	EventKeyReleased
	EventClose
)

// Event is a single frame-local input event.
type Event struct {
	Kind  EventKind
	Key   KeyCode
	Ctrl  bool
	Shift bool
}

// StyleID names a visual style. The platform decides what each one looks
// like; the game only picks which to use.
type StyleID int

const (
	StyleDefault StyleID = iota
	StyleRedCard
	StyleTitle
	StyleSummary
)

// Platform is the rendering and input capability set the game consumes. All
// coordinates are integer cell units. Implementations draw into a character
// grid; the game never touches the terminal directly, which is also what
// lets the tests drive whole frames through a scripted fake.
type Platform interface {
	// Size returns the current display size.
	Size() Size
	// PrintXY prints text starting at the given cell in the default style.
	PrintXY(x, y int, text string)
	// PrintXYStyled prints text starting at the given cell in a named style.
	PrintXYStyled(x, y int, text string, style StyleID)
	// Clear blanks the given cell region, or the whole display when nil.
	Clear(r *Rect)
	// MousePosition returns the current pointer cell.
	MousePosition() Point
	// KeyHeld reports whether the given logical key is currently held.
	KeyHeld(key KeyCode) bool
}
