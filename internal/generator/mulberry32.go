package generator

// Mulberry32 is a 32-bit integer-hash PRNG. The same seed always yields the
// same stream, so every figure derived from it is reproducible.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 returns a stream starting at seed.
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Uint32 advances the stream and returns the next raw value.
func (m *Mulberry32) Uint32() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns the next draw in [0, 1).
func (m *Mulberry32) Float64() float64 {
	return float64(m.Uint32()) / 4294967296
}
