package corpus

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

var syllables = []string{ //nolint:gochecknoglobals
	"ka", "lo", "mi", "ne", "ru", "sa", "ti", "vo", "ze", "pa",
	"qu", "da", "fe", "gi", "ho", "ju", "be", "co", "xi", "ya",
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec
}

// GenerateInts returns n integers in [0, maxValue) drawn from a generator
// seeded with seed. A non-positive maxValue draws from the full int range.
func GenerateInts(seed uint64, n int, maxValue int) []int {
	rng := newRand(seed)
	out := make([]int, n)

	for i := range out {
		if maxValue > 0 {
			out[i] = rng.IntN(maxValue)
		} else {
			out[i] = rng.Int()
		}
	}

	return out
}

// GenerateWords returns n pseudo-words built from two to four syllables.
// Roughly one word in four is capitalized and one in eight ends in a
// number, so case folding and natural ordering both matter.
func GenerateWords(seed uint64, n int) []string {
	rng := newRand(seed)
	out := make([]string, n)

	var sb strings.Builder

	for i := range out {
		sb.Reset()

		for range 2 + rng.IntN(3) {
			sb.WriteString(syllables[rng.IntN(len(syllables))])
		}

		word := sb.String()

		if rng.IntN(4) == 0 {
			word = strings.ToUpper(word[:1]) + word[1:]
		}

		if rng.IntN(8) == 0 {
			word += strconv.Itoa(rng.IntN(200))
		}

		out[i] = word
	}

	return out
}
