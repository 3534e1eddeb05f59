package main

import "testing"

func TestFullDeckHasEveryCardOnce(t *testing.T) {
	deck := FullDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck has %d cards, want %d", len(deck), DeckSize)
	}

	seen := make(map[Card]bool, DeckSize)
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("card %v appears twice", c)
		}
		seen[c] = true
	}
}

func TestSwapReturnsDisplacedCard(t *testing.T) {
	hand := Hand{
		{Suit: SuitSpades, Value: ValueAce},
		{Suit: SuitHearts, Value: ValueFive},
		{Suit: SuitClubs, Value: ValueNine},
	}
	incoming := Card{Suit: SuitDiamonds, Value: ValueKing}

	old := hand.Swap(1, incoming)

	if (old != Card{Suit: SuitHearts, Value: ValueFive}) {
		t.Fatalf("Swap returned %v, want 5♥", old)
	}
	if hand[1] != incoming {
		t.Fatalf("slot 1 holds %v, want %v", hand[1], incoming)
	}
	if (hand[0] != Card{Suit: SuitSpades, Value: ValueAce}) ||
		(hand[2] != Card{Suit: SuitClubs, Value: ValueNine}) {
		t.Fatalf("untouched slots changed: %v", hand)
	}
}

func TestScoreCardsSumsOnlyOneSuit(t *testing.T) {
	tests := []struct {
		name string
		hand Hand
		want int
	}{
		{
			name: "same suit court run",
			hand: Hand{
				{Suit: SuitHearts, Value: ValueAce},
				{Suit: SuitHearts, Value: ValueKing},
				{Suit: SuitHearts, Value: ValueQueen},
			},
			want: 31,
		},
		{
			name: "mixed suits take the best single card",
			hand: Hand{
				{Suit: SuitSpades, Value: ValueAce},
				{Suit: SuitHearts, Value: ValueKing},
				{Suit: SuitDiamonds, Value: ValueQueen},
			},
			want: 11,
		},
		{
			name: "two of a suit add together",
			hand: Hand{
				{Suit: SuitClubs, Value: ValueFive},
				{Suit: SuitClubs, Value: ValueNine},
				{Suit: SuitHearts, Value: ValueTwo},
			},
			want: 14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hand.Score(); got != tt.want {
				t.Fatalf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsWinningOnlyAtThirtyOne(t *testing.T) {
	winning := Hand{
		{Suit: SuitDiamonds, Value: ValueAce},
		{Suit: SuitDiamonds, Value: ValueTen},
		{Suit: SuitDiamonds, Value: ValueJack},
	}
	if !winning.IsWinning() {
		t.Fatalf("hand scoring %d should win", winning.Score())
	}

	thirty := Hand{
		{Suit: SuitDiamonds, Value: ValueKing},
		{Suit: SuitDiamonds, Value: ValueTen},
		{Suit: SuitDiamonds, Value: ValueJack},
	}
	if thirty.IsWinning() {
		t.Fatalf("hand scoring %d should not win", thirty.Score())
	}
}
