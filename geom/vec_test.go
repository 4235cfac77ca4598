package geom

import "testing"

func TestFloorDivMod(t *testing.T) {
	cases := []struct {
		a, b   int64
		wantQ  int64
		wantR  int64
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{-1, 5, -1, 4},
		{0, 5, 0, 0},
		{9, 3, 3, 0},
	}
	for _, c := range cases {
		q, r := floorDivMod(c.a, c.b)
		if q != c.wantQ || r != c.wantR {
			t.Errorf("floorDivMod(%d,%d) = (%d,%d); want (%d,%d)", c.a, c.b, q, r, c.wantQ, c.wantR)
		}
		if c.a != q*c.b+r {
			t.Errorf("invariant a=q*b+r violated for (%d,%d)", c.a, c.b)
		}
	}
}

func TestVec2Less(t *testing.T) {
	if !(Vec2{0, 1}).Less(Vec2{1, 0}) {
		t.Error("expected (0,1) < (1,0)")
	}
	if !(Vec2{1, 0}).Less(Vec2{1, 1}) {
		t.Error("expected (1,0) < (1,1)")
	}
	if (Vec2{1, 1}).Less(Vec2{1, 1}) {
		t.Error("expected (1,1) not < itself")
	}
}
