// Package pcg implements a 32-bit output, 64-bit state Permuted Congruential
// Generator (O'Neill's PCG-XSH-RR variant). It is the sole source of
// randomness used by the path tracer and the image tracer's stratified
// sampling, chosen for its small state (two uint64s, trivially forked per
// worker) and its reproducibility across any thread partitioning.
package pcg

// multiplier is the 64-bit LCG multiplier specified by the PCG family.
const multiplier uint64 = 6364136223846793005

// PCG is a single random stream: 64 bits of running state plus a 64-bit,
// odd, per-stream increment.
type PCG struct {
	state uint64
	inc   uint64
}

// New returns a PCG seeded deterministically from initState and initSeq,
// following the PCG reference constructor: the increment is derived from
// initSeq, the generator is advanced once, initState is folded in, and the
// generator is advanced again. This is the "constructor's canonical first
// advance" spec.md §3/§6 test vectors are defined against.
func New(initState, initSeq uint64) *PCG {
	p := &PCG{}
	p.inc = (initSeq << 1) | 1
	p.step()
	p.state += initState
	p.step()
	return p
}

// Default returns the PCG with the SceneLang default seed (state=42, inc=54).
func Default() *PCG { return New(42, 54) }

// State and Inc report the generator's current raw fields, primarily for
// deriving distinct per-worker streams (tracer.ImageTracer seeds each
// worker from (base state, base inc, tile id)).
func (p *PCG) State() uint64 { return p.state }
func (p *PCG) Inc() uint64   { return p.inc }

// step advances the underlying 64-bit LCG.
func (p *PCG) step() {
	p.state = p.state*multiplier + p.inc
}

// NextU32 returns the next 32-bit output and advances the generator. This
// implements the XSH-RR (xorshift, then random rotation) output function
// applied to the pre-advance state.
func (p *PCG) NextU32() uint32 {
	oldState := p.state
	p.step()
	xorShifted := uint32(((oldState >> 18) ^ oldState) >> 27)
	rot := uint32(oldState >> 59)
	return (xorShifted >> rot) | (xorShifted << ((-rot) & 31))
}

// NextFloat returns a uniformly distributed float64 in [0, 1).
func (p *PCG) NextFloat() float64 {
	return float64(p.NextU32()) / 4294967296.0 // 2^32
}

// Fork derives an independent stream for worker index i from this
// generator's own (state, inc) pair, so that rendering with N workers is
// reproducible regardless of N: each worker's stream depends only on its
// own tile/row index, never on scheduling order.
func (p *PCG) Fork(i uint64) *PCG {
	return New(p.state+i, p.inc+2*i+1)
}
