package main

// UIContext tracks widget identity across frames for the immediate-mode
// widgets. Widgets themselves are never retained: each frame they are
// re-evaluated from scratch and only these integer identifiers survive.
//
// hot is the widget under the pointer, active is the widget currently being
// pressed. A widget claims hotness for the *next* evaluation via nextHot;
// FrameInit promotes the claim at the top of every frame. When several
// widgets overlap the pointer, the last one evaluated in a frame wins.
type UIContext struct {
	hot     int
	active  int
	nextHot int
}

// widgetNone is the identity of no widget. Real widget ids start at 1.
const widgetNone = 0

// NewUIContext returns a context with no hot or active widget.
func NewUIContext() *UIContext {
	return &UIContext{}
}

// FrameInit promotes last frame's hotness claim and clears the slate for
// this frame's claims. Call exactly once at the top of every frame.
func (c *UIContext) FrameInit() {
	c.hot = c.nextHot
	c.nextHot = widgetNone
}

func (c *UIContext) setActive(id int) {
	c.active = id
}

func (c *UIContext) setNotActive() {
	c.active = widgetNone
}

func (c *UIContext) setNextHot(id int) {
	c.nextHot = id
}

// ButtonSpec describes a plain labeled button for one frame.
type ButtonSpec struct {
	X, Y, W, H int
	Text       string
	ID         int
}

// doButton evaluates one frame of a button's life and reports whether a
// click completed on it this frame.
//
// The press-release protocol: the button becomes active on a press while it
// is hot, and reports a click only on a release while it is still both
// active and hot with the pointer inside its rectangle. The release clears
// active whether or not it landed back on the button, so a press on one
// widget released over another clicks neither.
//
// A single call swallows multiple clicks within one frame; callers that care
// can call it once per buffered click.
func doButton(p Platform, ctx *UIContext, spec *ButtonSpec, pressed, released bool) bool {
	result := false

	mouse := p.MousePosition()
	inside := insideRect(mouse, spec.X, spec.Y, spec.W, spec.H)
	id := spec.ID

	if ctx.active == id {
		if released {
			result = ctx.hot == id && inside
			ctx.setNotActive()
		}
	} else if ctx.hot == id {
		if pressed {
			ctx.setActive(id)
		}
	}

	if inside {
		ctx.setNextHot(id)
	}

	drawButtonChrome(p, ctx, spec.X, spec.Y, spec.W, spec.H, id)
	printCenteredLine(p, spec.X, spec.Y, spec.W, spec.H, spec.Text)

	return result
}

// drawButtonChrome draws the button border in the pressed, hover or idle
// style, derived fresh from the context every frame.
func drawButtonChrome(p Platform, ctx *UIContext, x, y, w, h, id int) {
	if ctx.active == id && p.KeyHeld(KeyMouseLeft) {
		drawRectWith(p, x, y, w, h, edgesPressed)
	} else if ctx.hot == id {
		drawRectWith(p, x, y, w, h, edgesHover)
	} else {
		drawRect(p, x, y, w, h)
	}
}

// doCardButton is a button showing a card face instead of a label.
func doCardButton(p Platform, ctx *UIContext, x, y int, card Card, pressed, released bool, id int) bool {
	spec := ButtonSpec{X: x, Y: y, W: cardWidth, H: cardHeight, ID: id}
	result := doButton(p, ctx, &spec, pressed, released)
	printCardFace(p, x, y, card)
	return result
}

// doCardBackButton is a button showing a face-down card: the usual chrome
// with a decorative inner rectangle and no text.
func doCardBackButton(p Platform, ctx *UIContext, x, y int, pressed, released bool, id int) bool {
	spec := ButtonSpec{X: x, Y: y, W: cardWidth, H: cardHeight, ID: id}
	result := doButton(p, ctx, &spec, pressed, released)
	drawRect(p, x+cardBackInset, y+cardBackInsetY, cardWidth-2*cardBackInset, cardHeight-2*cardBackInsetY)
	return result
}

// doRaisedCardButton is a card button that lifts by half a card height while
// hot or active, visually separating "pick me" hand cards from passive ones.
// Both the resting and the raised rectangle count as inside for the click,
// so the card does not slip out from under a pointer that grabbed its lower
// half.
func doRaisedCardButton(p Platform, ctx *UIContext, x, y int, card Card, pressed, released bool, id int) bool {
	result := false

	raisedY := y - raisedCardLift
	mouse := p.MousePosition()
	inside := insideRect(mouse, x, y, cardWidth, cardHeight) ||
		insideRect(mouse, x, raisedY, cardWidth, cardHeight)

	if ctx.active == id {
		if released {
			result = ctx.hot == id && inside
			ctx.setNotActive()
		}
	} else if ctx.hot == id {
		if pressed {
			ctx.setActive(id)
		}
	}

	if inside {
		ctx.setNextHot(id)
	}

	drawY := y
	if ctx.hot == id || ctx.active == id {
		drawY = raisedY
	}
	drawButtonChrome(p, ctx, x, drawY, cardWidth, cardHeight, id)
	printCardFace(p, x, drawY, card)

	return result
}

// drawCard draws a passive, non-interactive card.
func drawCard(p Platform, x, y int, card Card) {
	drawRect(p, x, y, cardWidth, cardHeight)
	printCardFace(p, x, y, card)
}

// drawCardBack draws a passive face-down card.
func drawCardBack(p Platform, x, y int) {
	drawRect(p, x, y, cardWidth, cardHeight)
	drawRect(p, x+cardBackInset, y+cardBackInsetY, cardWidth-2*cardBackInset, cardHeight-2*cardBackInsetY)
}

// printCardFace prints the two display tokens of a card in its top-left
// corner, inside the border.
func printCardFace(p Platform, x, y int, card Card) {
	style := StyleDefault
	if card.Suit.isRed() {
		style = StyleRedCard
	}
	p.PrintXYStyled(x+1, y+1, card.Value.String(), style)
	p.PrintXYStyled(x+1, y+2, card.Suit.String(), style)
}

// drawRect draws a rectangle border in the idle style.
func drawRect(p Platform, x, y, w, h int) {
	drawRectWith(p, x, y, w, h, edgesIdle)
}

// drawRectWith clears the rectangle and draws its border with the given edge
// rune set: corners and edge runes in reading order.
func drawRectWith(p Platform, x, y, w, h int, edges [8]string) {
	p.Clear(&Rect{X: x, Y: y, W: w, H: h})

	right := x + w - 1
	bottom := y + h - 1

	p.PrintXY(x, y, edges[0])
	for i := x + 1; i < right; i++ {
		p.PrintXY(i, y, edges[1])
	}
	p.PrintXY(right, y, edges[2])

	for i := y + 1; i < bottom; i++ {
		p.PrintXY(x, i, edges[3])
		p.PrintXY(right, i, edges[4])
	}

	p.PrintXY(x, bottom, edges[5])
	for i := x + 1; i < right; i++ {
		p.PrintXY(i, bottom, edges[6])
	}
	p.PrintXY(right, bottom, edges[7])
}
