package trail

import (
	"math"
	"math/rand"
	"time"
)

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// ResolveSeed returns seed, or a clock-derived one when seed is zero. Hosts
// that record a session resolve once and store the result, so a replay draws
// the same values the live run did.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return seed
}

// NewSource returns a seeded source. A zero seed picks one from the clock.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(ResolveSeed(seed)))
}

// RandomSign returns -1 or +1 with equal probability.
func RandomSign(src Source) float64 {
	if src.Float64() < 0.5 {
		return -1
	}
	return 1
}

// PickGlyph draws one glyph uniformly from glyphs. An empty set yields "".
func PickGlyph(src Source, glyphs []string) string {
	if len(glyphs) == 0 {
		return ""
	}
	i := int(math.Floor(src.Float64() * float64(len(glyphs))))
	if i >= len(glyphs) {
		i = len(glyphs) - 1
	}
	return glyphs[i]
}
