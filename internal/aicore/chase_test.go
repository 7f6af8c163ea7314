package aicore

import (
	"testing"

	"github.com/Garsondee/hellspawn-ai/internal/direction"
	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
)

func TestNewChaseDirPicksDirectDiagonal(t *testing.T) {
	w, _ := newTestWorld()

	actor := &mobj.Actor{Kind: mobj.KindImp, X: 0, Y: 0}
	target := &mobj.Actor{X: fixed.FromInt(100), Y: fixed.FromInt(100)}
	actor.Target = target

	NewChaseDir(w, actor)

	if actor.MoveDir != direction.NorthEast {
		t.Fatalf("MoveDir = %v, want NorthEast toward a target up and to the right", actor.MoveDir)
	}
}

func TestNewChaseDirAvoidsImmediateTurnaround(t *testing.T) {
	w, _ := newTestWorld()

	// Target is due west, directly opposite the actor's current heading.
	// West is excluded as the turnaround of the old direction (East), so
	// NewChaseDir should fall back to retrying East rather than reversing.
	actor := &mobj.Actor{Kind: mobj.KindImp, X: 0, Y: 0, MoveDir: direction.East}
	target := &mobj.Actor{X: fixed.FromInt(-100), Y: 0}
	actor.Target = target

	NewChaseDir(w, actor)

	if actor.MoveDir != direction.East {
		t.Fatalf("MoveDir = %v, want East (retry of the old direction, not the West turnaround)", actor.MoveDir)
	}
}

func TestNewChaseDirPanicsWithoutTarget(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewChaseDir should panic when actor has no target")
		}
	}()
	w, _ := newTestWorld()
	NewChaseDir(w, &mobj.Actor{Kind: mobj.KindImp})
}
