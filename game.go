package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// Participant names a winner: the player or one of the CPUs.
type Participant int

const (
	NoParticipant     Participant = 0
	ParticipantPlayer Participant = 1
	// CPU participants follow, one per CPU index.
	firstCPUParticipant Participant = 2
)

func cpuParticipant(idx int) Participant {
	return firstCPUParticipant + Participant(idx)
}

func (p Participant) Name() string {
	switch {
	case p == ParticipantPlayer:
		return "You"
	case p >= firstCPUParticipant:
		return fmt.Sprintf("CPU %d", int(p-firstCPUParticipant)+1)
	}
	return "nobody"
}

// TurnKind tags the current phase of the round.
type TurnKind int

const (
	TurnPlayer TurnKind = iota
	TurnPlayerSelected
	TurnCPU
	TurnCPUSummary
	TurnResolution
)

// Turn is the tagged state of the round. Transitions replace the whole value
// rather than mutating a payload in place. The held card lives only here
// while it is in transit: it is in no deck, pile or hand until the turn
// resolves, which is what makes the conservation invariant checkable.
type Turn struct {
	Kind   TurnKind
	Held   Card        // card in flight; meaningful only for TurnPlayerSelected
	Winner Participant // meaningful only for TurnCPUSummary and TurnResolution
}

func playerTurn() Turn                   { return Turn{Kind: TurnPlayer} }
func playerSelected(card Card) Turn      { return Turn{Kind: TurnPlayerSelected, Held: card} }
func cpuTurn() Turn                      { return Turn{Kind: TurnCPU} }
func cpuSummary(winner Participant) Turn { return Turn{Kind: TurnCPUSummary, Winner: winner} }
func resolution(winner Participant) Turn { return Turn{Kind: TurnResolution, Winner: winner} }

// Widget identities. Hand slots take three consecutive ids starting at
// idHandFirst.
const (
	idRedeal    = 1
	idDeck      = 2
	idPile      = 3
	idHandFirst = 4
	idHeld      = idHandFirst + 3
	idOkay      = 8
)

// State aggregates everything one game owns. It is created whole by
// makeState and replaced whole on redeal or reset, never incrementally
// cleared.
type State struct {
	rng         *rand.Rand
	titleScreen bool
	deck        []Card
	pile        []Card
	player      Hand
	cpuHands    []Hand
	turn        Turn
	summary     []string
	ui          *UIContext
}

// fixedSeed, when set from the -seed flag, makes every deal reproducible and
// skips the title screen.
var fixedSeed int64

// newState builds a freshly dealt game for the given display size, seeding
// the RNG from the clock unless a fixed seed is in force.
func newState(size Size) *State {
	if fixedSeed != 0 {
		return makeState(false, rand.New(rand.NewSource(fixedSeed)))
	}

	seed := time.Now().Unix()
	log.Printf("seed %d", seed)
	return makeState(true, rand.New(rand.NewSource(seed)))
}

// makeState shuffles a full deck and deals the table: three cards to the
// player, three to each of 1-4 CPUs, and one to seed the pile. Every card
// goes through dealOne so setup exercises the same path as play.
func makeState(titleScreen bool, rng *rand.Rand) *State {
	deck := FullDeck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	pile := make([]Card, 0, DeckSize)

	var player Hand
	for i := range player {
		player[i] = dealOne(&deck, &pile, rng)
	}

	cpuHands := make([]Hand, rng.Intn(4)+1)
	for i := range cpuHands {
		for j := range cpuHands[i] {
			cpuHands[i][j] = dealOne(&deck, &pile, rng)
		}
	}

	pileCard := dealOne(&deck, &pile, rng)
	pile = append(pile, pileCard)

	return &State{
		rng:         rng,
		titleScreen: titleScreen,
		deck:        deck,
		pile:        pile,
		player:      player,
		cpuHands:    cpuHands,
		turn:        playerTurn(),
		ui:          NewUIContext(),
	}
}

// deal draws one card for the running game.
func deal(s *State) Card {
	return dealOne(&s.deck, &s.pile, s.rng)
}

// dealOne removes and returns the top card of the deck. When the deck has
// run out it first moves the whole pile into the deck and shuffles it.
func dealOne(deck, pile *[]Card, rng *rand.Rand) Card {
	if len(*deck) == 0 {
		if len(*pile) == 0 {
			// Unreachable while the conservation invariant holds. Hand out a
			// fixed card instead of crashing mid-game.
			log.Println("deck and pile were both empty, dealing the fallback card")
			return Card{Suit: SuitSpades, Value: ValueAce}
		}

		*deck = append(*deck, *pile...)
		*pile = (*pile)[:0]
		rng.Shuffle(len(*deck), func(i, j int) {
			(*deck)[i], (*deck)[j] = (*deck)[j], (*deck)[i]
		})
	}

	last := len(*deck) - 1
	card := (*deck)[last]
	*deck = (*deck)[:last]
	return card
}

// pileTop returns the most recently discarded card without removing it.
func (s *State) pileTop() (Card, bool) {
	if len(s.pile) == 0 {
		return Card{}, false
	}
	return s.pile[len(s.pile)-1], true
}

// popPile removes and returns the top of the pile. The pile must not be
// empty; callers check via pileTop first.
func (s *State) popPile() Card {
	last := len(s.pile) - 1
	card := s.pile[last]
	s.pile = s.pile[:last]
	return card
}

// crossModeEventHandling handles the shortcuts that work in every mode.
// Ctrl-R throws the whole game away and starts over with a fresh seed.
func crossModeEventHandling(p Platform, s *State, ev Event) {
	if ev.Kind == EventKeyPressed && ev.Key == KeyR && ev.Ctrl {
		log.Println("reset")
		*s = *newState(p.Size())
		PlaySound(SoundDeal)
	}
}

// updateAndRender advances the game by one frame and reports whether the
// player asked to quit. All state mutation for a frame happens inside this
// one synchronous call.
func updateAndRender(p Platform, s *State, events []Event) bool {
	if s.titleScreen {
		for _, ev := range events {
			crossModeEventHandling(p, s, ev)
			switch {
			case ev.Kind == EventClose:
				return true
			case ev.Kind == EventKeyPressed && ev.Key == KeyEscape:
				return true
			case ev.Kind == EventKeyPressed:
				s.titleScreen = false
			}
		}

		p.PrintXYStyled(5, titleRow-2, "Thirty-One", StyleTitle)
		p.PrintXY(5, titleRow, "Click to start.")
		return false
	}

	return gameUpdateAndRender(p, s, events)
}

func gameUpdateAndRender(p Platform, s *State, events []Event) bool {
	// Reduce the frame's events to the two booleans the widgets consume.
	leftMousePressed := false
	leftMouseReleased := false

	for _, ev := range events {
		crossModeEventHandling(p, s, ev)
		switch {
		case ev.Kind == EventClose:
			return true
		case ev.Kind == EventKeyPressed && ev.Key == KeyEscape:
			return true
		case ev.Kind == EventKeyPressed && ev.Key == KeyMouseLeft:
			leftMousePressed = true
		case ev.Kind == EventKeyReleased && ev.Key == KeyMouseLeft:
			leftMouseReleased = true
		}
	}

	s.ui.FrameInit()

	size := p.Size()

	redealSpec := ButtonSpec{X: 0, Y: 0, W: redealW, H: redealH, Text: "Redeal", ID: idRedeal}
	if doButton(p, s.ui, &redealSpec, leftMousePressed, leftMouseReleased) {
		// A redeal keeps spending the same RNG stream; only Ctrl-R reseeds.
		*s = *makeState(false, s.rng)
		PlaySound(SoundDeal)
	}

	p.PrintXY(size.Width-scoreLabelWidth, 1, fmt.Sprintf("Your score: %d", s.player.Score()))
	p.PrintXY(size.Width-scoreLabelWidth, 2, fmt.Sprintf("Deck %d, pile %d", len(s.deck), len(s.pile)))

	// CPU turns run to completion on the frame that enters them; the
	// transition to the summary is never gated on input.
	if s.turn.Kind == TurnCPU {
		s.summary = nil
		winner := NoParticipant
		for i := range s.cpuHands {
			if takeCPUTurn(s, i) {
				winner = cpuParticipant(i)
				break
			}
		}
		s.turn = cpuSummary(winner)
	}

	switch s.turn.Kind {
	case TurnPlayer:
		drawPlayerHand(p, s, size)
		p.PrintXY(redealW+2, 1, "Draw from the deck or take the top of the pile.")

		if doCardBackButton(p, s.ui, deckX, deckY, leftMousePressed, leftMouseReleased, idDeck) {
			s.turn = playerSelected(deal(s))
			PlaySound(SoundDraw)
		}
		if top, ok := s.pileTop(); ok {
			if doCardButton(p, s.ui, pileX, pileY, top, leftMousePressed, leftMouseReleased, idPile) {
				s.turn = playerSelected(s.popPile())
				PlaySound(SoundDraw)
			}
		}

	case TurnPlayerSelected:
		held := s.turn.Held
		p.PrintXY(redealW+2, 1, "Swap it for one of your cards, or click it again to discard.")
		drawCardBack(p, deckX, deckY)
		if top, ok := s.pileTop(); ok {
			drawCard(p, pileX, pileY, top)
		}

		x := handX
		y := handRowY(size)
		for i := 0; i < len(s.player); i++ {
			if doRaisedCardButton(p, s.ui, x, y, s.player[i], leftMousePressed, leftMouseReleased, idHandFirst+i) {
				s.pile = append(s.pile, s.player.Swap(i, held))
				PlaySound(SoundDiscard)
				if s.player.IsWinning() {
					PlaySound(SoundWin)
					s.turn = resolution(ParticipantPlayer)
				} else {
					s.turn = cpuTurn()
				}
			}
			x += handSpacing
		}

		// The held card is only re-rendered as a click target while it is
		// still in transit.
		if s.turn.Kind == TurnPlayerSelected {
			if doCardButton(p, s.ui, heldX, heldY, held, leftMousePressed, leftMouseReleased, idHeld) {
				s.pile = append(s.pile, held)
				PlaySound(SoundDiscard)
				s.turn = cpuTurn()
			}
		}

	case TurnCPUSummary:
		drawPlayerHand(p, s, size)

		y := summaryY
		for _, line := range s.summary {
			p.PrintXYStyled(summaryX, y, line, StyleSummary)
			y++
		}

		okaySpec := ButtonSpec{X: summaryX, Y: y + 1, W: okayWidth, H: okayHeight, Text: "Okay", ID: idOkay}
		if doButton(p, s.ui, &okaySpec, leftMousePressed, leftMouseReleased) {
			if s.turn.Winner != NoParticipant {
				PlaySound(SoundWin)
				s.turn = resolution(s.turn.Winner)
			} else {
				s.turn = playerTurn()
			}
		}

	case TurnResolution:
		winner := s.turn.Winner
		if winner == NoParticipant {
			// Nobody was recorded; call it for the player rather than
			// rescoring every hand.
			winner = ParticipantPlayer
		}

		banner := winner.Name() + " wins!"
		if winner == ParticipantPlayer {
			banner = "You win!"
		}
		count := len([]rune(banner))
		p.PrintXYStyled(size.Width/2-count/2, resolutionRow, banner, StyleTitle)
		printCenteredLine(p, 0, resolutionRow+2, size.Width, resolutionHeight, "Redeal to play again.")
	}

	return false
}

// drawPlayerHand draws the player's three cards passively along the bottom.
func drawPlayerHand(p Platform, s *State, size Size) {
	x := handX
	y := handRowY(size)
	for _, card := range s.player {
		drawCard(p, x, y, card)
		x += handSpacing
	}
}
