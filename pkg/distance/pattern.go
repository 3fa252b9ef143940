// file: pkg/distance/pattern.go
// version: 1.0.0
// guid: 967a605e-b038-4d68-8860-5645f783f7de

package distance

const (
	wordBits = 64
	asciiMax = 256
)

// Pattern is a compiled needle: for every symbol it stores a bit-vector with
// bit i set where the needle holds that symbol, split into 64-bit blocks.
// A Pattern is read-only after construction and safe for concurrent use.
type Pattern struct {
	size     int
	blocks   int
	ascii    []uint64 // asciiMax*blocks, indexed [r*blocks+block]
	extended map[rune][]uint64
}

// NewPattern compiles s into match vectors.
func NewPattern(s []rune) *Pattern {
	blocks := (len(s) + wordBits - 1) / wordBits
	p := &Pattern{
		size:   len(s),
		blocks: blocks,
		ascii:  make([]uint64, asciiMax*blocks),
	}
	for i, r := range s {
		block, bit := i/wordBits, uint64(1)<<(uint(i)%wordBits)
		if r >= 0 && r < asciiMax {
			p.ascii[int(r)*blocks+block] |= bit
			continue
		}
		if p.extended == nil {
			p.extended = make(map[rune][]uint64)
		}
		vec, ok := p.extended[r]
		if !ok {
			vec = make([]uint64, blocks)
			p.extended[r] = vec
		}
		vec[block] |= bit
	}
	return p
}

// Len returns the number of code points in the needle.
func (p *Pattern) Len() int { return p.size }

func (p *Pattern) get(block int, r rune) uint64 {
	if r >= 0 && r < asciiMax {
		return p.ascii[int(r)*p.blocks+block]
	}
	if vec, ok := p.extended[r]; ok {
		return vec[block]
	}
	return 0
}

// lastMask returns the valid bits of the final block.
func (p *Pattern) lastMask() uint64 {
	rem := uint(p.size % wordBits)
	if rem == 0 {
		return ^uint64(0)
	}
	return (uint64(1) << rem) - 1
}
