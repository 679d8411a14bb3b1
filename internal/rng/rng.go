// Package rng supplies the two seed policies a reading can use: a fresh
// unpredictable seed per reading, or a seed derived purely from the local
// calendar date so "today's card" stays put all day without persisted state.
package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/timmayboi7/PersonalTarotApp/internal/domain"
)

const (
	// dailySalt folds into the epoch day for the daily seed.
	dailySalt int64 = 0x5A5A5A5A
	// reversedSalt derives the orientation stream from a reading's seed.
	// Distinct from dailySalt so the two policies never collide.
	reversedSalt int64 = 0x7F4A7C15
)

// SecureSeed returns a fresh unpredictable 64-bit seed for one-shot
// readings. Never reproducible across calls.
func SecureSeed() int64 {
	var b [8]byte
	_, _ = cryptorand.Read(b[:])
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// DailySeed is a pure function of the calendar date in the given zone.
// Equal dates yield equal seeds; consecutive days differ. The date itself
// is the only state.
func DailySeed(now time.Time, zone *time.Location) int64 {
	local := now.In(zone)
	y, m, d := local.Date()
	epochDay := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
	return epochDay ^ dailySalt
}

// stream adapts a seeded math/rand/v2 generator to domain.RNG.
type stream struct {
	r *rand.Rand
}

func (s *stream) Intn(n int) int { return s.r.IntN(n) }

// New returns a reproducible pseudo-random stream for the seed.
func New(seed int64) domain.RNG {
	u := uint64(seed)
	return &stream{r: rand.New(rand.NewPCG(u, u))}
}

// Streams derives the two independent streams a draw consumes: one for the
// shuffle, one for orientation. Salting the second keeps "which cards" and
// "which way up" decoupled under a single reproducible seed.
func Streams(seed int64) (shuffle, orientation domain.RNG) {
	return New(seed), New(seed ^ reversedSalt)
}
