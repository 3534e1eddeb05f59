package main

import "testing"

func TestButtonClickCompletesOnRelease(t *testing.T) {
	p := newFakePlatform()
	ctx := NewUIContext()
	spec := &ButtonSpec{X: 0, Y: 0, W: 10, H: 3, Text: "Okay", ID: 1}
	p.mouse = Point{X: 2, Y: 1}

	// Hover frame: the button claims hotness for the next frame.
	ctx.FrameInit()
	if doButton(p, ctx, spec, false, false) {
		t.Fatal("clicked with no input")
	}

	// Press frame: hot button becomes active, but does not click yet.
	ctx.FrameInit()
	p.held[KeyMouseLeft] = true
	if doButton(p, ctx, spec, true, false) {
		t.Fatal("clicked on press")
	}
	if ctx.active != spec.ID {
		t.Fatalf("active = %d after press, want %d", ctx.active, spec.ID)
	}

	// Release frame: the click completes and active clears.
	ctx.FrameInit()
	p.held[KeyMouseLeft] = false
	if !doButton(p, ctx, spec, false, true) {
		t.Fatal("release over the active hot button did not click")
	}
	if ctx.active != widgetNone {
		t.Fatalf("active = %d after release, want none", ctx.active)
	}
}

func TestClickNeedsPressAndReleaseOnSameWidget(t *testing.T) {
	p := newFakePlatform()
	ctx := NewUIContext()
	a := &ButtonSpec{X: 0, Y: 0, W: 10, H: 3, Text: "A", ID: 1}
	b := &ButtonSpec{X: 20, Y: 0, W: 10, H: 3, Text: "B", ID: 2}

	frame := func(pressed, released bool) (clickedA, clickedB bool) {
		ctx.FrameInit()
		clickedA = doButton(p, ctx, a, pressed, released)
		clickedB = doButton(p, ctx, b, pressed, released)
		return
	}

	p.mouse = Point{X: 2, Y: 1} // over A
	frame(false, false)
	frame(true, false)

	p.mouse = Point{X: 22, Y: 1} // drag to B, then release
	clickedA, clickedB := frame(false, true)

	if clickedA || clickedB {
		t.Fatalf("press on A released over B clicked A=%v B=%v, want neither", clickedA, clickedB)
	}
	if ctx.active != widgetNone {
		t.Fatalf("active = %d after release, want none", ctx.active)
	}
}

func TestHotClassificationStableWithoutInput(t *testing.T) {
	p := newFakePlatform()
	ctx := NewUIContext()
	spec := &ButtonSpec{X: 0, Y: 0, W: 10, H: 3, Text: "A", ID: 1}
	p.mouse = Point{X: 2, Y: 1}

	ctx.FrameInit()
	doButton(p, ctx, spec, false, false)

	var classifications [2]struct{ hot, active int }
	for i := range classifications {
		ctx.FrameInit()
		doButton(p, ctx, spec, false, false)
		classifications[i].hot = ctx.hot
		classifications[i].active = ctx.active
	}

	if classifications[0] != classifications[1] {
		t.Fatalf("idle frames classified differently: %v then %v",
			classifications[0], classifications[1])
	}
	if classifications[0].hot != spec.ID {
		t.Fatalf("hot = %d with pointer over the button, want %d", classifications[0].hot, spec.ID)
	}
}

func TestLastEvaluatedOverlappingWidgetWinsHotness(t *testing.T) {
	p := newFakePlatform()
	ctx := NewUIContext()
	under := &ButtonSpec{X: 0, Y: 0, W: 10, H: 3, Text: "under", ID: 1}
	over := &ButtonSpec{X: 0, Y: 0, W: 10, H: 3, Text: "over", ID: 2}
	p.mouse = Point{X: 2, Y: 1}

	ctx.FrameInit()
	doButton(p, ctx, under, false, false)
	doButton(p, ctx, over, false, false)

	ctx.FrameInit()
	if ctx.hot != over.ID {
		t.Fatalf("hot = %d, want the last-evaluated widget %d", ctx.hot, over.ID)
	}
}

func TestRaisedCardButtonAcceptsEitherRectangle(t *testing.T) {
	p := newFakePlatform()
	ctx := NewUIContext()
	card := Card{Suit: SuitSpades, Value: ValueSeven}
	const x, y, id = 5, 10, 1

	// Point inside the raised rectangle only, above the resting card.
	p.mouse = Point{X: x + 2, Y: y - raisedCardLift + 1}

	ctx.FrameInit()
	doRaisedCardButton(p, ctx, x, y, card, false, false, id)

	ctx.FrameInit()
	p.held[KeyMouseLeft] = true
	doRaisedCardButton(p, ctx, x, y, card, true, false, id)
	if ctx.active != id {
		t.Fatalf("active = %d after press in the raised rectangle, want %d", ctx.active, id)
	}

	ctx.FrameInit()
	p.held[KeyMouseLeft] = false
	if !doRaisedCardButton(p, ctx, x, y, card, false, true, id) {
		t.Fatal("release in the raised rectangle did not click")
	}
}
