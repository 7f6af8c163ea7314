package aicore

import (
	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
	"github.com/Garsondee/hellspawn-ai/internal/rng"
)

// spreadShift is the amount a hitscan angle perturbation is shifted left
// after the symmetric random-pair draw, matching the original's <<20.
const spreadShift = 20

// rollDamage draws "(rand%5 + 1) * k" damage, the dice shared by every
// human hitscanner.
func rollDamage(w *mobj.World, site rng.CallSite, k int) int {
	return (int(w.RNG.Draw(site))%5 + 1) * k
}

func spreadAngle(w *mobj.World, site rng.CallSite, base fixed.Angle) fixed.Angle {
	hi := int32(w.RNG.Draw(site))
	lo := int32(w.RNG.Draw(site))
	return base + fixed.Angle(uint32((hi-lo)<<spreadShift))
}

// PosAttack fires one pistol round: aim, spread, and a 3-15 damage roll.
func PosAttack(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}

	FaceTarget(w, actor)
	bangle := actor.Angle
	slope := w.Ports.AimLineAttack(actor, bangle, missileRange)

	w.Ports.SpawnSound(actor, "pistol")
	angle := spreadAngle(w, rng.SitePosAttack, bangle)
	damage := rollDamage(w, rng.SitePosAttack, 3)
	w.Ports.LineAttack(actor, angle, missileRange, slope, damage)
}

// SPosAttack fires a 3-pellet shotgun spread from a single aim slope.
func SPosAttack(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}

	w.Ports.SpawnSound(actor, "shotgn")
	FaceTarget(w, actor)
	bangle := actor.Angle
	slope := w.Ports.AimLineAttack(actor, bangle, missileRange)

	for i := 0; i < 3; i++ {
		angle := spreadAngle(w, rng.SiteSPosAttack, bangle)
		damage := rollDamage(w, rng.SiteSPosAttack, 3)
		w.Ports.LineAttack(actor, angle, missileRange, slope, damage)
	}
}

// CPosAttack fires one chaingun round per call; the dispatcher's
// animation loop is what turns this into a burst.
func CPosAttack(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}

	w.Ports.SpawnSound(actor, "shotgn")
	FaceTarget(w, actor)
	bangle := actor.Angle
	slope := w.Ports.AimLineAttack(actor, bangle, missileRange)

	angle := spreadAngle(w, rng.SiteCPosAttack, bangle)
	damage := rollDamage(w, rng.SiteCPosAttack, 3)
	w.Ports.LineAttack(actor, angle, missileRange, slope, damage)
}

// CPosRefire re-faces the target each burst tick and keeps firing. A
// roll below 40 out of 256 skips the break-off check for this tick;
// otherwise it breaks off back to see-state once the target is dead or
// out of sight.
func CPosRefire(w *mobj.World, actor *mobj.Actor) {
	FaceTarget(w, actor)

	if w.RNG.Below(rng.SiteCPosRefire, 40) {
		return
	}

	if actor.Target == nil || actor.Target.HP <= 0 || !w.Ports.CheckSight(actor, actor.Target) {
		w.Ports.SetMobjState(actor, actor.Archetype().SeeState)
	}
}

// SpidRefire is CPosRefire's arachnotron/spider counterpart: only a roll
// below 10 out of 256 (rather than 40) skips the break-off check, so it
// breaks off more readily once the target is dead or out of sight.
func SpidRefire(w *mobj.World, actor *mobj.Actor) {
	FaceTarget(w, actor)

	if w.RNG.Below(rng.SiteSpidRefire, 10) {
		return
	}

	if actor.Target == nil || actor.Target.HP <= 0 || !w.Ports.CheckSight(actor, actor.Target) {
		w.Ports.SetMobjState(actor, actor.Archetype().SeeState)
	}
}
