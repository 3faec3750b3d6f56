// Package rng holds the deterministic pseudo-random source used by the
// generator. This package is internal and not part of the public API.
package rng

const (
	multiplier = 9301
	increment  = 49297
	modulus    = 233280
)

// LCG is a linear congruential generator with the classic
// state = (state*9301 + 49297) mod 233280 recurrence.
//
// The whole cursor is the single integer held here. Callers pass *LCG
// explicitly to every routine that draws from it; an LCG must not be shared
// between goroutines.
type LCG struct {
	state int64
}

// New returns an LCG seeded with seed. The seed is reduced into [0, 233280)
// first, which leaves the sequence unchanged for non-negative seeds.
func New(seed int64) *LCG {
	s := seed % modulus
	if s < 0 {
		s += modulus
	}
	return &LCG{state: s}
}

// State reports the current cursor.
func (l *LCG) State() int64 { return l.state }

// Float64 advances the cursor and returns a value in [0, 1).
func (l *LCG) Float64() float64 {
	l.state = (l.state*multiplier + increment) % modulus
	return float64(l.state) / modulus
}

// Intn returns floor(Float64()*n). Returns 0 without drawing if n <= 0.
func (l *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(l.Float64() * float64(n))
}

// IntRange returns an int uniformly drawn from [lo, hi] (inclusive).
// When hi < lo it returns lo after a single draw.
func (l *LCG) IntRange(lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return lo + l.Intn(hi-lo+1)
}

// Bool returns Float64() < 0.5.
func (l *LCG) Bool() bool { return l.Float64() < 0.5 }

// Pick returns a uniformly chosen element of items; "" when items is empty.
func (l *LCG) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[l.Intn(len(items))]
}

// Read fills p with bytes drawn as floor(Float64()*256). It never fails, so
// an LCG can feed io.Reader consumers such as uuid.NewRandomFromReader.
func (l *LCG) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(l.Intn(256))
	}
	return len(p), nil
}
