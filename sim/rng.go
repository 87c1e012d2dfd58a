package sim

// Random draw channels. Each stochastic process consumes its own channel so
// adding a process never shifts the draws another process sees.
const (
	chanCoastline uint8 = iota
	chanResuspension
)

// Stream produces the per-particle uniform draws used by the coastline and
// resuspension processes. Draws are derived by hashing (seed, particle ID,
// tick, channel), so a particle sees the same sequence no matter how the
// ensemble is chunked across workers. That keeps runs bit-reproducible under
// any level of parallelism, which a single shared generator cannot.
type Stream struct {
	seed uint64
}

// NewStream creates a stream for the given simulation seed.
func NewStream(seed int64) *Stream {
	return &Stream{seed: uint64(seed)}
}

// splitmix64 is the finalizer from the SplitMix64 generator.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Uniform returns a uniform value in [0, 1) for one particle, step and
// channel.
func (s *Stream) Uniform(id uint32, tick int64, channel uint8) float64 {
	key := s.seed
	key = splitmix64(key ^ uint64(id))
	key = splitmix64(key ^ uint64(tick))
	key = splitmix64(key ^ uint64(channel))
	return float64(key>>11) / (1 << 53)
}
