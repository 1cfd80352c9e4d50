package game

import (
	"math/rand"
	"time"

	"github.com/kiliankoe/scoredash/internal/random"
)

// NewRand returns a seeded Random. Seed 0 picks a fresh crypto seed.
func NewRand(seed int64) Random {
	r, _, err := random.New(seed)
	if err != nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r
}
