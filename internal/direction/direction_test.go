package direction

import (
	"testing"

	"github.com/Garsondee/hellspawn-ai/internal/fixed"
)

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range All() {
		if Opposite(Opposite(d)) != d {
			t.Fatalf("Opposite(Opposite(%v)) != %v", d, d)
		}
	}
}

func TestOppositePairs(t *testing.T) {
	cases := map[Dir]Dir{
		East: West, NorthEast: SouthWest, North: South, NorthWest: SouthEast,
	}
	for d, want := range cases {
		if got := Opposite(d); got != want {
			t.Fatalf("Opposite(%v) = %v, want %v", d, got, want)
		}
	}
}

func TestDiagonal(t *testing.T) {
	cases := []struct {
		dx, dy fixed.Fixed
		want   Dir
	}{
		{fixed.FromInt(1), fixed.FromInt(1), NorthEast},
		{fixed.FromInt(-1), fixed.FromInt(1), NorthWest},
		{fixed.FromInt(1), fixed.FromInt(-1), SouthEast},
		{fixed.FromInt(-1), fixed.FromInt(-1), SouthWest},
	}
	for _, c := range cases {
		if got := Diagonal(c.dx, c.dy); got != c.want {
			t.Fatalf("Diagonal(%v,%v) = %v, want %v", c.dx, c.dy, got, c.want)
		}
	}
}

func TestVelocityNotNormalizedDiagonal(t *testing.T) {
	x, y := Velocity(NorthEast)
	if x != speedUnit47k || y != speedUnit47k {
		t.Fatalf("Velocity(NorthEast) = (%v, %v), want (%v, %v)", x, y, speedUnit47k, speedUnit47k)
	}
	mag := x.ToFloat()*x.ToFloat() + y.ToFloat()*y.ToFloat()
	if mag <= 1.0 {
		t.Fatalf("diagonal velocity magnitude-squared = %v, want > 1 (non-normalized)", mag)
	}
}

func TestValid(t *testing.T) {
	if !East.Valid() {
		t.Fatal("East should be valid")
	}
	if NoDir.Valid() {
		t.Fatal("NoDir should not be valid")
	}
}

func TestAllHasEightDirections(t *testing.T) {
	if got := len(All()); got != 8 {
		t.Fatalf("len(All()) = %d, want 8", got)
	}
}

func TestOctant(t *testing.T) {
	if got := Octant(fixed.Ang0); got != East {
		t.Fatalf("Octant(Ang0) = %v, want East", got)
	}
	if got := Octant(fixed.Ang90); got != North {
		t.Fatalf("Octant(Ang90) = %v, want North", got)
	}
	if got := Octant(fixed.Ang180); got != West {
		t.Fatalf("Octant(Ang180) = %v, want West", got)
	}
}
