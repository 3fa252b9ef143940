// file: pkg/distance/editops.go
// version: 1.1.0
// guid: c35d9bea-6aac-47b2-92e9-d7a5ab2f4858

package distance

import (
	"fmt"
	"slices"
)

// OpKind identifies an edit operation.
type OpKind uint8

const (
	Insert OpKind = iota
	Delete
	Replace
	Equal // only used by Opcode
)

func (k OpKind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	case Equal:
		return "equal"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// MarshalText lets the kind render by name in YAML and JSON output.
func (k OpKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Editop is a single edit. SrcPos is the position in the source the edit
// applies at; DestPos is the position in the destination supplying the new
// element (for Delete, where the destination stands when the element is dropped).
type Editop struct {
	Kind    OpKind `yaml:"kind" json:"kind"`
	SrcPos  int    `yaml:"src_pos" json:"src_pos"`
	DestPos int    `yaml:"dest_pos" json:"dest_pos"`
}

// EditScript is an ordered list of edits, sorted by source position.
type EditScript []Editop

// Editops returns a minimal edit script turning s1 into s2 under the metric's
// weights. On equal-cost alternatives the backtrack prefers a free diagonal,
// then Replace, Delete, Insert. Replace is never produced when a substitution
// costs at least a deletion plus an insertion.
func (l *Levenshtein) Editops(s1, s2 string) EditScript {
	return l.EditopsRunes([]rune(s1), []rune(s2))
}

// EditopsRunes is Editops over code point slices.
func (l *Levenshtein) EditopsRunes(s1, s2 []rune) EditScript {
	s1, s2, prefix := trimCommonAffix(s1, s2)
	w := l.weights
	m := newCostMatrix(s1, s2, w)
	replace := w.allowsReplace()

	ops := make(EditScript, 0, max(len(s1), len(s2)))
	i, j := len(s1), len(s2)
	for i > 0 || j > 0 {
		cur := m.at(i, j)
		if i > 0 && j > 0 && s1[i-1] == s2[j-1] && cur == m.at(i-1, j-1) {
			i--
			j--
			continue
		}
		switch {
		case replace && i > 0 && j > 0 && cur == m.at(i-1, j-1)+w.Substitute:
			i--
			j--
			ops = append(ops, Editop{Kind: Replace, SrcPos: i + prefix, DestPos: j + prefix})
		case i > 0 && cur == m.at(i-1, j)+w.Delete:
			i--
			ops = append(ops, Editop{Kind: Delete, SrcPos: i + prefix, DestPos: j + prefix})
		default:
			j--
			ops = append(ops, Editop{Kind: Insert, SrcPos: i + prefix, DestPos: j + prefix})
		}
	}

	slices.Reverse(ops)
	return ops
}

// Editops returns a uniform-cost Levenshtein edit script.
func Editops(s1, s2 string) EditScript {
	return uniformMetric.Editops(s1, s2)
}

// IndelEditops returns an edit script made of insertions and deletions only.
func IndelEditops(s1, s2 string) EditScript {
	return indelMetric.Editops(s1, s2)
}

// Cost prices the script under w.
func (ops EditScript) Cost(w Weights) int {
	total := 0
	for _, op := range ops {
		switch op.Kind {
		case Insert:
			total += w.Insert
		case Delete:
			total += w.Delete
		case Replace:
			total += w.Substitute
		}
	}
	return total
}

// Apply replays the script on s1, taking new elements from s2.
func (ops EditScript) Apply(s1, s2 string) string {
	return string(ops.ApplyRunes([]rune(s1), []rune(s2)))
}

// ApplyRunes is Apply over code point slices.
func (ops EditScript) ApplyRunes(s1, s2 []rune) []rune {
	out := make([]rune, 0, len(s2))
	src := 0
	for _, op := range ops {
		out = append(out, s1[src:op.SrcPos]...)
		src = op.SrcPos
		switch op.Kind {
		case Delete:
			src++
		case Insert:
			out = append(out, s2[op.DestPos])
		case Replace:
			out = append(out, s2[op.DestPos])
			src++
		}
	}
	return append(out, s1[src:]...)
}

// Opcode describes a block of the alignment: s1[SrcStart:SrcEnd] becomes
// s2[DestStart:DestEnd].
type Opcode struct {
	Kind      OpKind `yaml:"kind" json:"kind"`
	SrcStart  int    `yaml:"src_start" json:"src_start"`
	SrcEnd    int    `yaml:"src_end" json:"src_end"`
	DestStart int    `yaml:"dest_start" json:"dest_start"`
	DestEnd   int    `yaml:"dest_end" json:"dest_end"`
}

// Opcodes groups the script into contiguous blocks covering both sequences,
// including the Equal stretches between edits.
func (ops EditScript) Opcodes(srcLen, destLen int) []Opcode {
	var blocks []Opcode
	src, dest := 0, 0

	for i := 0; i < len(ops); {
		op := ops[i]
		if src < op.SrcPos || dest < op.DestPos {
			blocks = append(blocks, Opcode{Kind: Equal, SrcStart: src, SrcEnd: op.SrcPos, DestStart: dest, DestEnd: op.DestPos})
			src, dest = op.SrcPos, op.DestPos
		}

		srcStart, destStart := src, dest
		for i < len(ops) && ops[i].Kind == op.Kind && ops[i].SrcPos == src && ops[i].DestPos == dest {
			switch op.Kind {
			case Replace:
				src++
				dest++
			case Delete:
				src++
			case Insert:
				dest++
			}
			i++
		}
		blocks = append(blocks, Opcode{Kind: op.Kind, SrcStart: srcStart, SrcEnd: src, DestStart: destStart, DestEnd: dest})
	}

	if src < srcLen || dest < destLen {
		blocks = append(blocks, Opcode{Kind: Equal, SrcStart: src, SrcEnd: srcLen, DestStart: dest, DestEnd: destLen})
	}
	return blocks
}
