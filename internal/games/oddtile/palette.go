package oddtile

import (
	"math/rand"

	"github.com/ykarpenko/termplay/internal/core"
)

// rollColors picks a base tile color and the odd tile color for a round.
// The base is sampled from the 6x6x6 cube; the odd color shifts exactly one
// channel by delta steps, toward whichever side keeps the value inside the
// cube. Smaller deltas mean closer shades and a harder round.
func rollColors(rng *rand.Rand, delta int) (base, odd core.Color) {
	if delta < 1 {
		delta = 1
	}
	if delta > 5 {
		delta = 5
	}

	channels := [3]int{rng.Intn(6), rng.Intn(6), rng.Intn(6)}
	base = core.CubeColor(channels[0], channels[1], channels[2])

	idx := rng.Intn(3)
	v := channels[idx]

	up := v+delta <= 5
	down := v-delta >= 0
	switch {
	case up && down:
		if rng.Intn(2) == 0 {
			v += delta
		} else {
			v -= delta
		}
	case up:
		v += delta
	default:
		v -= delta
	}
	channels[idx] = v

	odd = core.CubeColor(channels[0], channels[1], channels[2])
	return base, odd
}
