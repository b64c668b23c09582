package tabu

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"
)

// WordCard is a single card of a deck. Cards are immutable; Deal returns a
// copy whose Forbidden slice has been trimmed for the game's difficulty.
type WordCard struct {
	ID        string     `json:"id"`
	Word      string     `json:"word"`
	Forbidden []string   `json:"forbidden"`
	AgeGroups []AgeGroup `json:"age_groups"`
	Category  string     `json:"category,omitempty"`
}

// For reports whether the card may be dealt to the given age group.
func (c WordCard) For(g AgeGroup) bool {
	return slices.Contains(c.AgeGroups, g)
}

// Trimmed returns a copy of the card keeping only the first
// ForbiddenCount[d] forbidden words.
func (c WordCard) Trimmed(d Difficulty) WordCard {
	n := min(ForbiddenCount[d], len(c.Forbidden))
	out := c
	out.Forbidden = slices.Clone(c.Forbidden[:n])
	out.AgeGroups = slices.Clone(c.AgeGroups)
	return out
}

// Rand is the random source used to pick cards. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeed draws a seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Deal picks a uniformly random card from pool that is valid for the age
// group and not present in exclude, trimmed for the difficulty. It reports
// false when no eligible card remains; that is the normal end of a deck.
func Deal(pool []WordCard, r Rand, g AgeGroup, exclude map[string]bool, d Difficulty) (WordCard, bool) {
	eligible := make([]int, 0, len(pool))
	for i, c := range pool {
		if c.For(g) && !exclude[c.ID] {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return WordCard{}, false
	}
	return pool[eligible[r.IntN(len(eligible))]].Trimmed(d), true
}
