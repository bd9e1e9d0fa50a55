package gamification

// Rand is the randomness the selector needs; *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// SelectTemplates returns k distinct templates chosen uniformly without replacement,
// using a partial Fisher–Yates shuffle over a copy of the input.
func SelectTemplates(rng Rand, templates []MissionTemplate, k int) []MissionTemplate {
	k = min(max(k, 0), len(templates))

	pool := append([]MissionTemplate(nil), templates...)
	for i := range k {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
