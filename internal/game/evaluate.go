package game

import "strings"

// Evaluate compares guess against answer and classifies every position.
//
// Pass 1:
//   - Mark exact matches as Correct and consume one count of that letter.
//
// Pass 2 (left to right):
//   - For each remaining position, mark Near while the letter still has
//     unclaimed count in the answer; otherwise mark Absent.
//
// Exact matches always claim their share first, so a correct placement is
// never stolen by an earlier near match of the same letter.
func Evaluate(answer, guess string) ([]TileState, error) {
	a := []rune(strings.ToUpper(answer))
	g := []rune(strings.ToUpper(guess))
	if len(a) != len(g) {
		return nil, ErrLengthMismatch
	}

	counts := make(map[rune]int, len(a))
	for _, r := range a {
		counts[r]++
	}

	res := make([]TileState, len(a))
	for i := range g {
		if g[i] == a[i] {
			res[i] = TileCorrect
			counts[g[i]]--
		}
	}

	for i := range g {
		if res[i] == TileCorrect {
			continue
		}
		if counts[g[i]] > 0 {
			res[i] = TileNear
			counts[g[i]]--
		} else {
			res[i] = TileAbsent
		}
	}
	return res, nil
}

// Solved reports whether every tile is Correct.
func Solved(states []TileState) bool {
	if len(states) == 0 {
		return false
	}
	for _, s := range states {
		if s != TileCorrect {
			return false
		}
	}
	return true
}
