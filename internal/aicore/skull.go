package aicore

import (
	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
)

// skullSpeed is the lost soul's fixed launch speed, independent of its
// archetype's listed Speed field.
const skullSpeed fixed.Fixed = 20 * fixed.FracUnit

// skullCensusCap is the compatibility-mode ceiling on live lost souls:
// with more than this many already on the level, a new one is refused.
const skullCensusCap = 20

// SkullAttack launches actor directly at its target, flying in a
// straight line until it hits something. The flight velocity is fixed
// to skullSpeed regardless of the skull's own archetype speed, and the
// vertical component aims at the target's mid-height over the distance
// the horizontal leg will take to cover.
func SkullAttack(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	dest := actor.Target
	actor.Set(mobj.FlagSkullFlying)

	w.Ports.SpawnSound(actor, actor.Archetype().AttackSound)
	FaceTarget(w, actor)

	actor.MomX = fixed.Mul(skullSpeed, fixed.Cos(actor.Angle))
	actor.MomY = fixed.Mul(skullSpeed, fixed.Sin(actor.Angle))

	dist := fixed.Div(fixed.AproxDistance(dest.X-actor.X, dest.Y-actor.Y), skullSpeed)
	if dist < fixed.FromInt(1) {
		dist = fixed.FromInt(1)
	}
	actor.MomZ = fixed.Div(dest.Z+dest.Height/2-actor.Z, dist)
}

// PainShootSkull spawns a lost soul along angle and launches it at
// actor's target. In compatibility mode it enforces the vanilla 20-skull
// census cap and skips both the line-crossing and ceiling/floor checks;
// outside compatibility mode those checks run: a spawn that would cross
// a blocking line is removed, and one that fails the ceiling/floor check
// is killed on the spot with lethal overkill damage rather than left to
// spawn invisibly.
func PainShootSkull(w *mobj.World, actor *mobj.Actor, angle fixed.Angle) {
	if w.Compatibility {
		if w.Thinkers.CountKind(mobj.KindLostSoul, nil) > skullCensusCap {
			return
		}
	}

	skullRadius := mobj.Archetypes[mobj.KindLostSoul].Radius
	prestep := 4*fixed.FracUnit + 3*(actor.Radius+skullRadius)/2

	x := actor.X + fixed.Mul(prestep, fixed.Cos(angle))
	y := actor.Y + fixed.Mul(prestep, fixed.Sin(angle))
	z := actor.Z + 8*fixed.FracUnit

	newmobj := w.Ports.SpawnActor(x, y, z, mobj.KindLostSoul)
	if newmobj == nil {
		return
	}

	if !w.Compatibility {
		if w.Ports.CheckSides(actor, x, y) {
			w.Ports.RemoveMobj(newmobj)
			return
		}
		if !w.Ports.CheckSkullHeadroom(newmobj) {
			w.Ports.DamageMobj(newmobj, actor, actor, 10000)
			return
		}
	}

	if !w.Ports.TryMove(newmobj, newmobj.X, newmobj.Y, false).Success {
		w.Ports.DamageMobj(newmobj, actor, actor, 10000)
		return
	}

	newmobj.Target = actor.Target
	SkullAttack(w, newmobj)
}

// PainAttack is the pain elemental's ranged attack: face the target and
// spit a single lost soul straight at it.
func PainAttack(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	FaceTarget(w, actor)
	PainShootSkull(w, actor, actor.Angle)
}

// PainDie fires three lost souls at 90-degree offsets from the pain
// elemental's facing before it becomes walkable debris.
func PainDie(w *mobj.World, actor *mobj.Actor) {
	Fall(w, actor)
	PainShootSkull(w, actor, actor.Angle+fixed.Ang90)
	PainShootSkull(w, actor, actor.Angle+fixed.Ang180)
	PainShootSkull(w, actor, actor.Angle+fixed.Ang270)
}
