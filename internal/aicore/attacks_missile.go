package aicore

import (
	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
	"github.com/Garsondee/hellspawn-ai/internal/rng"
)

// TroopAttack claws at melee range, otherwise launches a trooper shot.
func TroopAttack(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	FaceTarget(w, actor)
	if CheckMeleeRange(w, actor) {
		w.Ports.SpawnSound(actor, "claw")
		damage := (int(w.RNG.Draw(rng.SiteTroopAttack))%8 + 1) * 3
		w.Ports.DamageMobj(actor.Target, actor, actor, damage)
		return
	}
	w.Ports.SpawnMissile(actor, actor.Target, mobj.MissileTrooperShot)
}

// SargAttack is a melee-only lunge; a demon with no sight line on its
// target just whiffs.
func SargAttack(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	FaceTarget(w, actor)
	if CheckMeleeRange(w, actor) {
		damage := (int(w.RNG.Draw(rng.SiteSargAttack))%10 + 1) * 4
		w.Ports.DamageMobj(actor.Target, actor, actor, damage)
	}
}

// HeadAttack bites at melee range, otherwise spits a fireball.
func HeadAttack(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	FaceTarget(w, actor)
	if CheckMeleeRange(w, actor) {
		damage := (int(w.RNG.Draw(rng.SiteHeadAttack))%6 + 1) * 10
		w.Ports.DamageMobj(actor.Target, actor, actor, damage)
		return
	}
	w.Ports.SpawnMissile(actor, actor.Target, mobj.MissileHeadShot)
}

// CyberAttack always launches a rocket; the cyberdemon has no melee state.
func CyberAttack(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	FaceTarget(w, actor)
	w.Ports.SpawnMissile(actor, actor.Target, mobj.MissileRocket)
}

// BruisAttack claws at melee range, otherwise launches a bruiser shot.
// Unlike TroopAttack it does not re-face before the melee check.
func BruisAttack(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	if CheckMeleeRange(w, actor) {
		w.Ports.SpawnSound(actor, "claw")
		damage := (int(w.RNG.Draw(rng.SiteBruisAttack))%8 + 1) * 10
		w.Ports.DamageMobj(actor.Target, actor, actor, damage)
		return
	}
	w.Ports.SpawnMissile(actor, actor.Target, mobj.MissileBruiserShot)
}

// BspiAttack is the arachnotron's sole attack: a plasma bolt, no melee
// branch at all.
func BspiAttack(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	FaceTarget(w, actor)
	w.Ports.SpawnMissile(actor, actor.Target, mobj.MissileArachPlaz)
}

// SkelFist is the revenant's melee swing.
func SkelFist(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	FaceTarget(w, actor)
	if CheckMeleeRange(w, actor) {
		damage := (int(w.RNG.Draw(rng.SiteSkelFist))%10 + 1) * 6
		w.Ports.SpawnSound(actor, "skepch")
		w.Ports.DamageMobj(actor.Target, actor, actor, damage)
	}
}

// SkelWhoosh is the revenant's melee wind-up: a sound cue with no damage.
func SkelWhoosh(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	FaceTarget(w, actor)
	w.Ports.SpawnSound(actor, "skeswg")
}

// SkelMissile launches the revenant's homing tracer. The spawn is
// briefly raised 16 units so the projectile clears the revenant's own
// collision box, then restored; the spawned missile is nudged forward
// one tick of its own momentum and its tracer is set to the target so
// Tracer can steer it.
func SkelMissile(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	FaceTarget(w, actor)
	actor.Z += 16 * fixed.FracUnit
	mo := w.Ports.SpawnMissile(actor, actor.Target, mobj.MissileTracer)
	actor.Z -= 16 * fixed.FracUnit

	if mo == nil {
		return
	}
	mo.X += mo.MomX
	mo.Y += mo.MomY
	mo.Tracer = actor.Target
}

// traceAngle is the maximum per-tick steering correction a homing tracer
// applies toward its target, 3/64 of a full turn.
const traceAngle fixed.Angle = 0xc000000

// Tracer steers a revenant missile toward its tracer target and leaves
// a smoke trail behind it. It runs only on ticks where the level-relative
// game tic is a multiple of 4, matching the ancestral engine's
// sync-preserving throttle; all other ticks are a no-op.
func Tracer(w *mobj.World, actor *mobj.Actor) {
	if (w.GameTic-w.LevelStartTic)&3 != 0 {
		return
	}

	w.Ports.SpawnPuff(actor.X, actor.Y, actor.Z)

	smoke := w.Ports.SpawnMobj(actor.X-actor.MomX, actor.Y-actor.MomY, actor.Z, mobj.MobjSmoke)
	if smoke != nil {
		smoke.MomZ = fixed.FracUnit
		smoke.Tics -= int(w.RNG.Draw(rng.SiteTracer) & 3)
		if smoke.Tics < 1 {
			smoke.Tics = 1
		}
	}

	dest := actor.Tracer
	if dest == nil || dest.HP <= 0 {
		return
	}

	exact := fixed.PointToAngle(dest.X-actor.X, dest.Y-actor.Y)
	if exact != actor.Angle {
		// The original picks a turn direction by comparing the unsigned
		// difference to exactly 0x80000000 rather than reinterpreting it
		// as signed; preserved verbatim since the two diverge at that
		// single boundary value.
		if uint32(exact-actor.Angle) > 0x80000000 {
			actor.Angle -= traceAngle
			if uint32(exact-actor.Angle) < 0x80000000 {
				actor.Angle = exact
			}
		} else {
			actor.Angle += traceAngle
			if uint32(exact-actor.Angle) > 0x80000000 {
				actor.Angle = exact
			}
		}
	}

	speed := actor.Archetype().Speed
	actor.MomX = fixed.Mul(speed, fixed.Cos(actor.Angle))
	actor.MomY = fixed.Mul(speed, fixed.Sin(actor.Angle))

	dist := fixed.AproxDistance(dest.X-actor.X, dest.Y-actor.Y)
	dist = fixed.Div(dist, speed)
	if dist < fixed.FromInt(1) {
		dist = fixed.FromInt(1)
	}

	slope := fixed.Div(dest.Z+40*fixed.FracUnit-actor.Z, dist)
	if slope < actor.MomZ {
		actor.MomZ -= fixed.FracUnit / 8
	} else {
		actor.MomZ += fixed.FracUnit / 8
	}
}
