// file: pkg/distance/editops_test.go
// version: 1.1.0
// guid: f5e445fa-1e41-4270-b7c9-f374b25c588f

package distance

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEditops_Kitten(t *testing.T) {
	ops := Editops("kitten", "sitting")

	require.Len(t, ops, 3)
	assert.Equal(t, "sitting", ops.Apply("kitten", "sitting"))
	assert.Equal(t, 3, ops.Cost(Uniform))
	assert.Equal(t, EditScript{
		{Kind: Replace, SrcPos: 0, DestPos: 0},
		{Kind: Replace, SrcPos: 4, DestPos: 4},
		{Kind: Insert, SrcPos: 6, DestPos: 6},
	}, ops)
}

func TestEditops_EmptyInputs(t *testing.T) {
	assert.Empty(t, Editops("", ""))
	assert.Empty(t, Editops("same", "same"))

	ins := Editops("", "ab")
	assert.Equal(t, EditScript{{Insert, 0, 0}, {Insert, 0, 1}}, ins)

	del := Editops("ab", "")
	assert.Equal(t, EditScript{{Delete, 0, 0}, {Delete, 1, 0}}, del)
	assert.Equal(t, "", del.Apply("ab", ""))
}

func TestEditops_Deterministic(t *testing.T) {
	first := Editops("abcdef", "azced")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Editops("abcdef", "azced"))
	}
}

func TestIndelEditops_NoReplace(t *testing.T) {
	ops := IndelEditops("kitten", "sitting")
	assert.Equal(t, 5, len(ops))
	for _, op := range ops {
		assert.NotEqual(t, Replace, op.Kind)
	}
	assert.Equal(t, "sitting", ops.Apply("kitten", "sitting"))
}

func TestEditops_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s1 := genText(0, 80).Draw(t, "s1")
		s2 := genText(0, 80).Draw(t, "s2")
		checkRoundTrip(t, s1, s2)
	})
}

func TestEditops_RoundTripBlock(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s1 := genText(65, 160).Draw(t, "s1")
		s2 := genText(65, 160).Draw(t, "s2")
		checkRoundTrip(t, s1, s2)
	})
}

func TestEditops_WeightedRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s1 := genText(0, 40).Draw(t, "s1")
		s2 := genText(0, 40).Draw(t, "s2")
		w := genWeights().Draw(t, "weights")
		l, err := New(w)
		if err != nil {
			t.Fatal(err)
		}

		ops := l.Editops(s1, s2)
		if got := ops.ApplyRunes([]rune(s1), []rune(s2)); !slices.Equal(got, []rune(s2)) {
			t.Fatalf("replay of %v on %q gave %q, want %q", ops, s1, string(got), s2)
		}
		if cost, want := ops.Cost(w), referenceDistance(s1, s2, w); cost != want {
			t.Fatalf("script cost %d, distance %d", cost, want)
		}
	})
}

func checkRoundTrip(t *rapid.T, s1, s2 string) {
	r1, r2 := []rune(s1), []rune(s2)

	lev := Editops(s1, s2)
	if got := lev.ApplyRunes(r1, r2); !slices.Equal(got, r2) {
		t.Fatalf("levenshtein replay on %q gave %q, want %q", s1, string(got), s2)
	}
	if cost := lev.Cost(Uniform); cost != Distance(s1, s2) {
		t.Fatalf("levenshtein script cost %d, distance %d", cost, Distance(s1, s2))
	}
	assertOrdered(t, lev)

	indel := IndelEditops(s1, s2)
	if got := indel.ApplyRunes(r1, r2); !slices.Equal(got, r2) {
		t.Fatalf("indel replay on %q gave %q, want %q", s1, string(got), s2)
	}
	if cost := indel.Cost(Indel); cost != IndelDistance(s1, s2) {
		t.Fatalf("indel script cost %d, distance %d", cost, IndelDistance(s1, s2))
	}
	assertOrdered(t, indel)
	assertCovers(t, lev.Opcodes(len(r1), len(r2)), r1, r2)
}

func assertOrdered(t *rapid.T, ops EditScript) {
	for i := 1; i < len(ops); i++ {
		if ops[i].SrcPos < ops[i-1].SrcPos || ops[i].DestPos < ops[i-1].DestPos {
			t.Fatalf("editops out of order at %d: %v", i, ops)
		}
	}
}

func assertCovers(t *rapid.T, blocks []Opcode, r1, r2 []rune) {
	src, dest := 0, 0
	for _, b := range blocks {
		if b.SrcStart != src || b.DestStart != dest {
			t.Fatalf("opcode gap at %+v (src=%d dest=%d)", b, src, dest)
		}
		if b.Kind == Equal && !slices.Equal(r1[b.SrcStart:b.SrcEnd], r2[b.DestStart:b.DestEnd]) {
			t.Fatalf("equal block %+v differs", b)
		}
		src, dest = b.SrcEnd, b.DestEnd
	}
	if src != len(r1) || dest != len(r2) {
		t.Fatalf("opcodes end at (%d,%d), want (%d,%d)", src, dest, len(r1), len(r2))
	}
}

func TestOpcodes(t *testing.T) {
	ops := Editops("kitten", "sitting")
	blocks := ops.Opcodes(6, 7)
	assert.Equal(t, []Opcode{
		{Kind: Replace, SrcStart: 0, SrcEnd: 1, DestStart: 0, DestEnd: 1},
		{Kind: Equal, SrcStart: 1, SrcEnd: 4, DestStart: 1, DestEnd: 4},
		{Kind: Replace, SrcStart: 4, SrcEnd: 5, DestStart: 4, DestEnd: 5},
		{Kind: Equal, SrcStart: 5, SrcEnd: 6, DestStart: 5, DestEnd: 6},
		{Kind: Insert, SrcStart: 6, SrcEnd: 6, DestStart: 6, DestEnd: 7},
	}, blocks)

	assert.Equal(t, []Opcode{{Kind: Equal, SrcStart: 0, SrcEnd: 3, DestStart: 0, DestEnd: 3}},
		Editops("abc", "abc").Opcodes(3, 3))
}

func TestOpKind_String(t *testing.T) {
	assert.Equal(t, "insert", Insert.String())
	assert.Equal(t, "delete", Delete.String())
	assert.Equal(t, "replace", Replace.String())
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "OpKind(9)", OpKind(9).String())
}
