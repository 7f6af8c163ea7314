package aicore

import (
	"github.com/Garsondee/hellspawn-ai/internal/direction"
	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
	"github.com/Garsondee/hellspawn-ai/internal/rng"
)

const floatSpeed fixed.Fixed = 4 * fixed.FracUnit

// Move attempts to advance actor one step in its current MoveDir. It
// panics on an out-of-range MoveDir — a caller bug, not a recoverable
// runtime condition.
func Move(w *mobj.World, actor *mobj.Actor) bool {
	if actor.MoveDir == direction.NoDir {
		return false
	}
	if !actor.MoveDir.Valid() {
		panic("aicore: Move called with invalid movedir")
	}

	dx, dy := direction.Velocity(actor.MoveDir)
	speed := actor.Archetype().Speed
	tryX := actor.X + fixed.Mul(speed, dx)
	tryY := actor.Y + fixed.Mul(speed, dy)

	res := w.Ports.TryMove(actor, tryX, tryY, false)

	if !res.Success {
		if actor.Has(mobj.FlagFloatCapable) && res.FloatOK {
			if actor.Z < res.FloorZ {
				actor.Z += floatSpeed
			} else {
				actor.Z -= floatSpeed
			}
			actor.Set(mobj.FlagInFloat)
			return true
		}

		if len(res.SpecHit) == 0 {
			return false
		}

		actor.MoveDir = direction.NoDir
		good := false
		for _, line := range res.SpecHit {
			if w.Ports.UseSpecialLine(actor, line, 0) {
				good = true
			}
		}
		// 3 in 4 succeed outright; the remaining 1 in 4 forces a direction
		// change next tick, which is what keeps an actor from wiggling
		// forever against a special line it can't open.
		return good && (w.Compatibility || !w.RNG.Below(rng.SiteTryWalk, 64))
	}

	actor.Clear(mobj.FlagInFloat)
	if !actor.Has(mobj.FlagFloatCapable) {
		actor.Z = res.FloorZ
	}
	return true
}

// TryWalk calls Move and, on success, recommits the actor to its
// direction for a random 0-15 ticks.
func TryWalk(w *mobj.World, actor *mobj.Actor) bool {
	if !Move(w, actor) {
		return false
	}
	actor.MoveCount = int(w.RNG.Draw(rng.SiteTryWalk) & 15)
	return true
}
