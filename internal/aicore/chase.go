package aicore

import (
	"github.com/Garsondee/hellspawn-ai/internal/direction"
	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
	"github.com/Garsondee/hellspawn-ai/internal/rng"
)

// chaseDeadzone is the "within 10 map units, don't bother" threshold on
// each axis.
const chaseDeadzone fixed.Fixed = 10 * fixed.FracUnit

// NewChaseDir picks a new greedy movement direction toward actor's
// current target. It panics if actor has no target — that mirrors the
// original's own I_Error, since calling this without a target is a
// caller bug, not a recoverable runtime condition.
func NewChaseDir(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		panic("aicore: NewChaseDir called with no target")
	}

	oldDir := actor.MoveDir
	turnaround := direction.Opposite(oldDir)

	deltaX := actor.Target.X - actor.X
	deltaY := actor.Target.Y - actor.Y

	var d [3]direction.Dir
	switch {
	case deltaX > chaseDeadzone:
		d[1] = direction.East
	case deltaX < -chaseDeadzone:
		d[1] = direction.West
	default:
		d[1] = direction.NoDir
	}
	switch {
	case deltaY < -chaseDeadzone:
		d[2] = direction.South
	case deltaY > chaseDeadzone:
		d[2] = direction.North
	default:
		d[2] = direction.NoDir
	}

	// Try the direct diagonal route first.
	if d[1] != direction.NoDir && d[2] != direction.NoDir {
		actor.MoveDir = direction.Diagonal(deltaX, deltaY)
		if actor.MoveDir != turnaround && TryWalk(w, actor) {
			return
		}
	}

	if w.RNG.Draw(rng.SiteNewChase) > 200 || fixed.Abs(deltaY) > fixed.Abs(deltaX) {
		d[1], d[2] = d[2], d[1]
	}

	if d[1] == turnaround {
		d[1] = direction.NoDir
	}
	if d[2] == turnaround {
		d[2] = direction.NoDir
	}

	if d[1] != direction.NoDir {
		actor.MoveDir = d[1]
		if TryWalk(w, actor) {
			return
		}
	}
	if d[2] != direction.NoDir {
		actor.MoveDir = d[2]
		if TryWalk(w, actor) {
			return
		}
	}

	// No direct path — retry the previous direction.
	if oldDir != direction.NoDir {
		actor.MoveDir = oldDir
		if TryWalk(w, actor) {
			return
		}
	}

	// Sweep all 8 compass directions, clockwise or counter-clockwise
	// chosen by a random bit, skipping the turnaround.
	all := direction.All()
	if w.RNG.Bool(rng.SiteNewChaseDir) {
		for _, tdir := range all {
			if tdir == turnaround {
				continue
			}
			actor.MoveDir = tdir
			if TryWalk(w, actor) {
				return
			}
		}
	} else {
		for i := len(all) - 1; i >= 0; i-- {
			tdir := all[i]
			if tdir == turnaround {
				continue
			}
			actor.MoveDir = tdir
			if TryWalk(w, actor) {
				return
			}
		}
	}

	if turnaround != direction.NoDir {
		actor.MoveDir = turnaround
		if TryWalk(w, actor) {
			return
		}
	}

	actor.MoveDir = direction.NoDir
}
