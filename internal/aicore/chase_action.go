package aicore

import (
	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
	"github.com/Garsondee/hellspawn-ai/internal/rng"
)

// activeSoundChance is the 1-in-85-ish chance (random byte < 3) of an
// idle chase tick emitting the archetype's active-sound.
const activeSoundChance = 3

// Chase is the workhorse per-tick handler bound to every monster's
// running/walking animation frames: it re-aligns facing, re-evaluates
// the current target, fires melee or missile attacks when in range, and
// otherwise advances one step toward the target.
func Chase(w *mobj.World, actor *mobj.Actor) {
	if actor.ReactionTime > 0 {
		actor.ReactionTime--
	}

	if actor.Threshold > 0 {
		if actor.Target == nil || actor.Target.HP <= 0 {
			actor.Threshold = 0
		} else {
			actor.Threshold--
		}
	}

	if actor.MoveDir.Valid() {
		a := uint32(actor.Angle) & (7 << 29)
		delta := int32(a - uint32(actor.MoveDir)<<29)
		switch {
		case delta > 0:
			actor.Angle -= fixed.Ang90 / 2
		case delta < 0:
			actor.Angle += fixed.Ang90 / 2
		}
	}

	arch := actor.Archetype()

	if actor.Target == nil || !actor.Target.Has(mobj.FlagShootable) {
		if LookForPlayers(w, actor, true) {
			return
		}
		w.Ports.SetMobjState(actor, arch.SpawnState)
		return
	}

	if actor.Has(mobj.FlagJustAttacked) {
		actor.Clear(mobj.FlagJustAttacked)
		if !w.Skill.Nightmare && !w.Skill.Fast {
			NewChaseDir(w, actor)
		}
		return
	}

	if arch.HasMelee() && CheckMeleeRange(w, actor) {
		if arch.AttackSound != mobj.SoundNone {
			w.Ports.SpawnSound(actor, arch.AttackSound)
		}
		w.Ports.SetMobjState(actor, arch.MeleeState)
		if w.Events != nil {
			w.Events.Add(w.GameTic, actor.LogTag(), "attack", "melee", actor.Target.LogTag(), 0)
		}
		return
	}

	if arch.HasMissile() {
		skipMissile := !w.Skill.Nightmare && !w.Skill.Fast && actor.MoveCount != 0
		if !skipMissile && CheckMissileRange(w, actor) {
			w.Ports.SetMobjState(actor, arch.MissileState)
			actor.Set(mobj.FlagJustAttacked)
			if w.Events != nil {
				w.Events.Add(w.GameTic, actor.LogTag(), "attack", "missile", actor.Target.LogTag(), 0)
			}
			return
		}
	}

	if w.NetGame && actor.Threshold == 0 && !w.Ports.CheckSight(actor, actor.Target) {
		if LookForPlayers(w, actor, true) {
			return
		}
	}

	actor.MoveCount--
	if actor.MoveCount < 0 || !Move(w, actor) {
		NewChaseDir(w, actor)
	}

	if arch.ActiveSound != mobj.SoundNone && w.RNG.Below(rng.SiteSee, activeSoundChance) {
		w.Ports.SpawnSound(actor, arch.ActiveSound)
	}
}

// FaceTarget turns actor to face its target exactly, then — if the
// target is a shadow (spectre) — perturbs the resulting angle by a
// symmetric random offset of up to roughly 1/8 turn, the aiming fuzz
// that makes shadows hard to hit.
func FaceTarget(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}

	actor.Clear(mobj.FlagAmbush)
	actor.Angle = fixed.PointToAngle(actor.Target.X-actor.X, actor.Target.Y-actor.Y)

	if actor.Target.Has(mobj.FlagShadow) {
		hi := int32(w.RNG.Draw(rng.SiteFaceTarget))
		lo := int32(w.RNG.Draw(rng.SiteFaceTarget))
		actor.Angle += fixed.Angle(uint32((hi - lo) << 21))
	}
}
