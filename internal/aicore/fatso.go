package aicore

import (
	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
)

// fatSpread is the mancubus's per-shot angular deviation, 1/8 of a
// right angle.
const fatSpread fixed.Angle = fixed.Ang90 / 8

// respin recomputes a spawned missile's momentum after its angle has
// been rotated away from the straight-line aim SpawnMissile resolved.
func respin(mo *mobj.Actor, kind mobj.MissileKind) {
	speed := mobj.MissileSpeed(kind)
	mo.MomX = fixed.Mul(speed, fixed.Cos(mo.Angle))
	mo.MomY = fixed.Mul(speed, fixed.Sin(mo.Angle))
}

// FatRaise announces the mancubus volley with its attack sound.
func FatRaise(w *mobj.World, actor *mobj.Actor) {
	FaceTarget(w, actor)
	w.Ports.SpawnSound(actor, "manatk")
}

// FatAttack1 fires a straight shot followed by one spread left.
func FatAttack1(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	FaceTarget(w, actor)
	actor.Angle += fatSpread

	w.Ports.SpawnMissile(actor, actor.Target, mobj.MissileFatShot)

	mo := w.Ports.SpawnMissile(actor, actor.Target, mobj.MissileFatShot)
	if mo != nil {
		mo.Angle += fatSpread
		respin(mo, mobj.MissileFatShot)
	}
}

// FatAttack2 fires a straight shot followed by one spread further right.
func FatAttack2(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	FaceTarget(w, actor)
	actor.Angle -= fatSpread

	w.Ports.SpawnMissile(actor, actor.Target, mobj.MissileFatShot)

	mo := w.Ports.SpawnMissile(actor, actor.Target, mobj.MissileFatShot)
	if mo != nil {
		mo.Angle -= fatSpread * 2
		respin(mo, mobj.MissileFatShot)
	}
}

// FatAttack3 fires two shots, spread a half-step to either side.
func FatAttack3(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	FaceTarget(w, actor)

	mo := w.Ports.SpawnMissile(actor, actor.Target, mobj.MissileFatShot)
	if mo != nil {
		mo.Angle -= fatSpread / 2
		respin(mo, mobj.MissileFatShot)
	}

	mo = w.Ports.SpawnMissile(actor, actor.Target, mobj.MissileFatShot)
	if mo != nil {
		mo.Angle += fatSpread / 2
		respin(mo, mobj.MissileFatShot)
	}
}
