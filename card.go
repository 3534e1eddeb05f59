package main

import "strconv"

// Suit identifies one of the four card suits. The order matters: Spades is
// first so it can serve as the fallback suit when dealing from an empty game.
type Suit int

const (
	SuitSpades Suit = iota
	SuitHearts
	SuitDiamonds
	SuitClubs
)

func (s Suit) String() string {
	switch s {
	case SuitSpades:
		return "♠"
	case SuitHearts:
		return "♥"
	case SuitDiamonds:
		return "♦"
	case SuitClubs:
		return "♣"
	}
	return "?"
}

// isRed reports whether the suit is drawn in the red card style.
func (s Suit) isRed() bool {
	return s == SuitHearts || s == SuitDiamonds
}

// Value is a card rank, Ace through King.
type Value int

const (
	ValueAce Value = iota + 1
	ValueTwo
	ValueThree
	ValueFour
	ValueFive
	ValueSix
	ValueSeven
	ValueEight
	ValueNine
	ValueTen
	ValueJack
	ValueQueen
	ValueKing
)

func (v Value) String() string {
	switch v {
	case ValueAce:
		return "A"
	case ValueJack:
		return "J"
	case ValueQueen:
		return "Q"
	case ValueKing:
		return "K"
	}
	return strconv.Itoa(int(v))
}

// pips returns the counting value of a rank: Aces count eleven, court cards
// count ten, everything else counts its face value.
func (v Value) pips() int {
	switch {
	case v == ValueAce:
		return 11
	case v >= ValueJack:
		return 10
	}
	return int(v)
}

// Card is an immutable suit/value pair. It has no identity beyond its fields.
type Card struct {
	Suit  Suit
	Value Value
}

func (c Card) String() string {
	return c.Value.String() + c.Suit.String()
}

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// FullDeck returns the complete ordered card set.
func FullDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for suit := SuitSpades; suit <= SuitClubs; suit++ {
		for value := ValueAce; value <= ValueKing; value++ {
			deck = append(deck, Card{Suit: suit, Value: value})
		}
	}
	return deck
}

// Hand is a fixed three-card holding. It is deliberately an array, not a
// slice: a hand never grows or shrinks, cards are only ever exchanged.
type Hand [3]Card

// Swap replaces the card at pos and returns the card that was there. The
// exchange is atomic: exactly one card leaves the hand for each card that
// enters it.
func (h *Hand) Swap(pos int, card Card) Card {
	old := h[pos]
	h[pos] = card
	return old
}

// Score returns the hand's Thirty-One score.
func (h Hand) Score() int {
	return ScoreCards(h[0], h[1], h[2])
}

// WinningScore ends the round immediately when a hand reaches it.
const WinningScore = 31

// IsWinning reports whether the hand ends the round.
func (h Hand) IsWinning() bool {
	return h.Score() == WinningScore
}

// ScoreCards scores three cards by the standard Thirty-One rule: the best
// same-suit pip sum across the four suits. Cards of mixed suits never add
// together, so a lone Ace scores eleven and A+K+Q of one suit scores 31.
func ScoreCards(a, b, c Card) int {
	best := 0
	for suit := SuitSpades; suit <= SuitClubs; suit++ {
		total := 0
		for _, card := range [3]Card{a, b, c} {
			if card.Suit == suit {
				total += card.Value.pips()
			}
		}
		if total > best {
			best = total
		}
	}
	return best
}
