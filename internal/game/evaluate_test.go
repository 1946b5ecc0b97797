package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	const (
		c = TileCorrect
		n = TileNear
		x = TileAbsent
	)
	cases := []struct {
		answer, guess string
		want          []TileState
	}{
		{"APPLE", "APPLE", []TileState{c, c, c, c, c}},
		{"FARMS", "farms", []TileState{c, c, c, c, c}},
		{"ZEBRA", "COINS", []TileState{x, x, x, x, x}},
		// only one P may be credited
		{"PRINT", "APPLE", []TileState{x, n, x, x, x}},
		// the final E claims its exact match before the first E competes
		{"SPREE", "EERIE", []TileState{n, x, c, x, c}},
		{"APPLE", "ALPHA", []TileState{c, n, c, x, x}},
		{"abbey", "babes", []TileState{n, n, c, c, x}},
	}
	for _, tc := range cases {
		t.Run(tc.answer+"_"+tc.guess, func(t *testing.T) {
			got, err := Evaluate(tc.answer, tc.guess)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluateLengthMismatch(t *testing.T) {
	got, err := Evaluate("APPLE", "APPLES")
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Nil(t, got)
}

func TestEvaluateNeverOverCredits(t *testing.T) {
	words := []string{"APPLE", "ALPHA", "SPREE", "EERIE", "LLAMA", "PAPAL", "EEEEE", "ABBEY", "BOBBY", "KAYAK"}
	for _, answer := range words {
		for _, guess := range words {
			states, err := Evaluate(answer, guess)
			require.NoError(t, err)
			require.Len(t, states, len(answer))

			occurs := map[rune]int{}
			for _, r := range answer {
				occurs[r]++
			}
			credited := map[rune]int{}
			for i, r := range guess {
				if states[i] == TileCorrect || states[i] == TileNear {
					credited[r]++
				}
			}
			for r, k := range credited {
				assert.LessOrEqual(t, k, occurs[r], "answer %s guess %s letter %c", answer, guess, r)
			}
		}
	}
}

func TestSolved(t *testing.T) {
	states, _ := Evaluate("TIGER", "TIGER")
	assert.True(t, Solved(states))
	states, _ = Evaluate("TIGER", "LIMIT")
	assert.False(t, Solved(states))
	assert.False(t, Solved(nil))
}
