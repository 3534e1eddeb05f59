package main

import "fmt"

// Selection is a CPU's verdict on a candidate card: keep the hand as it is,
// or swap the candidate in at one of the three positions.
type Selection int

const (
	SelectionKeep Selection = iota
	SelectionReplaceFirst
	SelectionReplaceSecond
	SelectionReplaceThird
)

// replaceIndex returns the hand position a replacement selection targets,
// or -1 for SelectionKeep.
func (sel Selection) replaceIndex() int {
	return int(sel) - 1
}

// chooseSwap picks the best of the four hands reachable with the candidate
// card: the unchanged hand, or the hand with the candidate swapped in at each
// of the three positions. It is a pure function of its arguments.
//
// Ties go to the earliest option in the fixed order keep, first, second,
// third, so a candidate that cannot improve the hand is always kept out.
func chooseSwap(hand Hand, candidate Card) Selection {
	best := SelectionKeep
	bestScore := hand.Score()

	for i := 0; i < len(hand); i++ {
		trial := hand
		trial[i] = candidate
		if score := trial.Score(); score > bestScore {
			bestScore = score
			best = Selection(i + 1)
		}
	}

	return best
}

// takeCPUTurn plays one full turn for the CPU at idx and reports whether its
// hand is now winning. The pile's top card is taken when the heuristic would
// swap it in; otherwise the CPU draws. The acquired card is then either
// swapped into the hand or discarded unchanged, so exactly one card lands on
// the pile either way. A line describing the visible part of the turn is
// appended to the state's summary.
func takeCPUTurn(s *State, idx int) bool {
	hand := &s.cpuHands[idx]

	var card Card
	var source string
	if top, ok := s.pileTop(); ok && chooseSwap(*hand, top) != SelectionKeep {
		card = s.popPile()
		source = fmt.Sprintf("took the %v from the pile", card)
	} else {
		card = deal(s)
		source = "drew from the deck"
	}

	discarded := card
	if sel := chooseSwap(*hand, card); sel != SelectionKeep {
		discarded = hand.Swap(sel.replaceIndex(), card)
	}
	s.pile = append(s.pile, discarded)

	s.summary = append(s.summary,
		fmt.Sprintf("CPU %d %s and discarded the %v.", idx+1, source, discarded))

	if hand.IsWinning() {
		s.summary = append(s.summary, fmt.Sprintf("CPU %d has thirty-one!", idx+1))
		return true
	}
	return false
}
