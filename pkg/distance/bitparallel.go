// file: pkg/distance/bitparallel.go
// version: 1.0.0
// guid: ea5a13e5-9601-4448-8cfe-235228234734

package distance

import (
	"math/bits"
	"sync"
)

// vecPool recycles block vectors between computations. Every borrowed vector
// is overwritten before use.
var vecPool = sync.Pool{
	New: func() any { return new([]uint64) },
}

func borrowVec(n int, fill uint64) *[]uint64 {
	v := vecPool.Get().(*[]uint64)
	if cap(*v) < n {
		*v = make([]uint64, n)
	}
	*v = (*v)[:n]
	for i := range *v {
		(*v)[i] = fill
	}
	return v
}

func returnVec(v *[]uint64) {
	vecPool.Put(v)
}

// Levenshtein returns the uniform-cost edit distance between the needle and text
// using Hyyro's formulation of Myers' bit-vector algorithm.
func (p *Pattern) Levenshtein(text []rune) int {
	switch {
	case p.size == 0:
		return len(text)
	case len(text) == 0:
		return p.size
	case p.blocks == 1:
		return p.levenshteinWord(text)
	default:
		return p.levenshteinBlock(text)
	}
}

func (p *Pattern) levenshteinWord(text []rune) int {
	vp := ^uint64(0)
	vn := uint64(0)
	dist := p.size
	mask := uint64(1) << uint(p.size-1)

	for _, ch := range text {
		pm := p.get(0, ch)
		d0 := (((pm & vp) + vp) ^ vp) | pm | vn
		hp := vn | ^(d0 | vp)
		hn := d0 & vp

		if hp&mask != 0 {
			dist++
		}
		if hn&mask != 0 {
			dist--
		}

		hp = (hp << 1) | 1
		hn <<= 1
		vp = hn | ^(d0 | hp)
		vn = hp & d0
	}
	return dist
}

func (p *Pattern) levenshteinBlock(text []rune) int {
	vpBuf := borrowVec(p.blocks, ^uint64(0))
	vnBuf := borrowVec(p.blocks, 0)
	defer returnVec(vpBuf)
	defer returnVec(vnBuf)
	vps, vns := *vpBuf, *vnBuf

	dist := p.size
	last := p.blocks - 1
	mask := uint64(1) << uint((p.size-1)%wordBits)

	for _, ch := range text {
		hpCarry := uint64(1)
		hnCarry := uint64(0)

		for w := 0; w < p.blocks; w++ {
			pm := p.get(w, ch)
			vp, vn := vps[w], vns[w]

			x := pm | hnCarry
			d0 := (((x & vp) + vp) ^ vp) | x | vn
			hp := vn | ^(d0 | vp)
			hn := d0 & vp

			if w == last {
				if hp&mask != 0 {
					dist++
				}
				if hn&mask != 0 {
					dist--
				}
			}

			hpIn := hpCarry
			hpCarry = hp >> 63
			hp = (hp << 1) | hpIn

			hnIn := hnCarry
			hnCarry = hn >> 63
			hn = (hn << 1) | hnIn

			vps[w] = hn | ^(d0 | hp)
			vns[w] = hp & d0
		}
	}
	return dist
}

// LCS returns the length of the longest common subsequence of the needle and
// text, using the bit-parallel algorithm of Hyyro (2004).
func (p *Pattern) LCS(text []rune) int {
	if p.size == 0 || len(text) == 0 {
		return 0
	}
	if p.blocks == 1 {
		return p.lcsWord(text)
	}
	return p.lcsBlock(text)
}

func (p *Pattern) lcsWord(text []rune) int {
	s := ^uint64(0)
	for _, ch := range text {
		u := s & p.get(0, ch)
		s = (s + u) | (s - u)
	}
	return bits.OnesCount64(^s & p.lastMask())
}

func (p *Pattern) lcsBlock(text []rune) int {
	buf := borrowVec(p.blocks, ^uint64(0))
	defer returnVec(buf)
	s := *buf

	for _, ch := range text {
		var carry uint64
		for w := 0; w < p.blocks; w++ {
			sv := s[w]
			u := sv & p.get(w, ch)
			var x uint64
			x, carry = bits.Add64(sv, u, carry)
			s[w] = x | (sv - u)
		}
	}

	lcs := 0
	for w := 0; w < p.blocks-1; w++ {
		lcs += bits.OnesCount64(^s[w])
	}
	return lcs + bits.OnesCount64(^s[p.blocks-1]&p.lastMask())
}
