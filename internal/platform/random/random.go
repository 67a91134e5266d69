package random

import (
	"math/rand/v2"
	"time"
)

// Source picks uniformly among n candidates. Tests substitute a scripted
// source to make selections deterministic.
type Source interface {
	IntN(n int) int
}

type Math struct {
	rnd *rand.Rand
}

// NewMath returns a PCG-backed source. A zero seed derives one from the
// current time.
func NewMath(seed uint64) *Math {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Math{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (m *Math) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	return m.rnd.IntN(n)
}
