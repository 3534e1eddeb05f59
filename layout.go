package main

// Rect is an axis-aligned cell region.
type Rect struct {
	X, Y, W, H int
}

// Card and table geometry, in cells.
const (
	cardWidth  = 16
	cardHeight = 12

	// The player's hand sits along the bottom edge of the display, clear of
	// the held-card column on the left.
	handX            = 24
	handSpacing      = cardWidth + 2
	handBottomMargin = 2
	cardBackInset    = 2 // horizontal inset of a card back's inner rectangle
	cardBackInsetY   = 1
	raisedCardLift   = cardHeight / 2
	deckX, deckY     = 44, 4
	pileX, pileY     = 24, 4
	heldX, heldY     = 4, 4
	summaryX         = 4
	summaryY         = 5
	okayWidth        = 8
	okayHeight       = 3
	redealW, redealH = 11, 3
	scoreLabelWidth  = 20
	titleRow         = 10
	resolutionRow    = 8
	resolutionHeight = 3
)

// handRowY returns the row the player's hand cards rest on.
func handRowY(size Size) int {
	return size.Height - cardHeight - handBottomMargin
}

// insideRect reports whether the point lies inside the rectangle.
func insideRect(p Point, x, y, w, h int) bool {
	return x <= p.X && y <= p.Y && p.X < x+w && p.Y < y+h
}

// printCenteredLine prints text centered in the rectangle, vertically on the
// middle row. Empty text is skipped. There is no wrapping; callers keep
// labels short.
func printCenteredLine(p Platform, x, y, w, h int, text string) {
	count := len([]rune(text))
	if count == 0 {
		return
	}
	p.PrintXY(x+w/2-count/2, y+h/2, text)
}
