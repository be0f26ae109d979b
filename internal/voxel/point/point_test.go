package point

import "testing"

func TestNewRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		x, y, z int
	}{
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
		{16, 0, 0}, {0, 16, 0}, {0, 0, 16},
	}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d,%d,%d) did not panic", c.x, c.y, c.z)
				}
			}()
			New(c.x, c.y, c.z)
		}()
	}
}

func TestPack(t *testing.T) {
	p := New(1, 2, 3)
	want := uint16(1<<8 | 2<<4 | 3)
	if got := p.Pack(); got != want {
		t.Fatalf("Pack() = %#x, want %#x", got, want)
	}
	if got := New(15, 15, 15).Pack(); got != 0x0FFF {
		t.Fatalf("Pack() = %#x, want 0x0FFF", got)
	}
}

func TestEqual(t *testing.T) {
	if !New(4, 5, 6).Equal(New(4, 5, 6)) {
		t.Fatal("expected equal points to compare equal")
	}
	if New(4, 5, 6).Equal(New(4, 5, 7)) {
		t.Fatal("expected differing points to compare unequal")
	}
}

func TestLessOrdersXThenZThenY(t *testing.T) {
	if !New(1, 0, 0).Less(New(2, 0, 0)) {
		t.Fatal("expected x-major ordering")
	}
	if !New(1, 5, 0).Less(New(1, 0, 1)) {
		t.Fatal("expected z to break x ties")
	}
	if !New(1, 0, 2).Less(New(1, 1, 2)) {
		t.Fatal("expected y to break x,z ties")
	}
	if New(1, 1, 1).Less(New(1, 1, 1)) {
		t.Fatal("a point must not be less than itself")
	}
}

func TestClamp(t *testing.T) {
	got := Clamp(-3, 20, 7)
	want := New(0, 15, 7)
	if !got.Equal(want) {
		t.Fatalf("Clamp() = %+v, want %+v", got, want)
	}
}
