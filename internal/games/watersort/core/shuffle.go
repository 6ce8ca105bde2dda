package core

import "math/rand"

// Shuffle permutes tokens in place with a uniform Fisher-Yates pass.
func Shuffle(tokens []Color, rng *rand.Rand) {
	for i := len(tokens) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
}

// fillTokens returns TubeCapacity copies of each color, grouped by color.
func fillTokens(colors []Color) []Color {
	tokens := make([]Color, 0, len(colors)*TubeCapacity)
	for _, c := range colors {
		for range TubeCapacity {
			tokens = append(tokens, c)
		}
	}
	return tokens
}
