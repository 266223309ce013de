package tetris

import "testing"

func TestShapeTableCells(t *testing.T) {
	for _, k := range Kinds {
		size := boxSize(k)
		for r := range numRotations {
			seen := map[Offset]bool{}
			for _, o := range shapes[k][r] {
				if o.DX < 0 || o.DX >= size || o.DY < 0 || o.DY >= size {
					t.Errorf("%v rotation %d: offset %+v outside %dx%d box", k, r, o, size, size)
				}
				if seen[o] {
					t.Errorf("%v rotation %d: duplicate offset %+v", k, r, o)
				}
				seen[o] = true
			}
		}
	}
}

func TestSpawnLayoutsStartAtTopRow(t *testing.T) {
	for _, k := range Kinds {
		top := false
		for _, o := range shapes[k][0] {
			if o.DY == 0 {
				top = true
			}
		}
		if !top {
			t.Errorf("%v spawns with an empty top row", k)
		}
	}
}

func TestORotationIsInvariant(t *testing.T) {
	for r := 1; r < numRotations; r++ {
		if shapes[KindO][r] != shapes[KindO][0] {
			t.Errorf("O rotation %d = %v, expected %v", r, shapes[KindO][r], shapes[KindO][0])
		}
	}
}

func TestIRotationStates(t *testing.T) {
	tests := []struct {
		rotation int
		vertical bool
		line     int // column for vertical, row for horizontal
	}{
		{0, false, 0},
		{1, true, 3},
		{2, false, 3},
		{3, true, 0},
	}

	for _, tc := range tests {
		for _, o := range shapes[KindI][tc.rotation] {
			got := o.DY
			if tc.vertical {
				got = o.DX
			}
			if got != tc.line {
				t.Errorf("I rotation %d: offset %+v not on line %d", tc.rotation, o, tc.line)
			}
		}
	}
}

func TestBagGeneratorDealsEveryKindPerBag(t *testing.T) {
	g := NewBagGenerator(42)

	for bag := range 5 {
		counts := map[Kind]int{}
		for range numKinds {
			counts[g.Next()]++
		}
		for _, k := range Kinds {
			if counts[k] != 1 {
				t.Errorf("bag %d: %v dealt %d times, expected 1", bag, k, counts[k])
			}
		}
	}
}

func TestBagGeneratorSeeded(t *testing.T) {
	a := NewBagGenerator(99)
	b := NewBagGenerator(99)
	for i := range 50 {
		if ka, kb := a.Next(), b.Next(); ka != kb {
			t.Fatalf("draw %d: %v vs %v", i, ka, kb)
		}
	}
}

func TestSequenceGenerator(t *testing.T) {
	g := NewSequenceGenerator(KindI, KindT)
	want := []Kind{KindI, KindT, KindI, KindT}
	for i, k := range want {
		if got := g.Next(); got != k {
			t.Errorf("draw %d = %v, expected %v", i, got, k)
		}
	}

	if NewSequenceGenerator().Next() != KindO {
		t.Error("empty sequence should yield O")
	}
}

func TestKindString(t *testing.T) {
	if KindI.String() != "I" || KindL.String() != "L" || Kind(-1).String() != "?" {
		t.Errorf("unexpected kind names: %s %s %s", KindI, KindL, Kind(-1))
	}
}
