package aicore

import (
	"github.com/Garsondee/hellspawn-ai/internal/direction"
	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
)

// mapBlockShift matches the ancestral engine's 128-unit block-map cell
// size (1<<7 == 128, in fixed-point map units). Map origin is treated as
// the coordinate-system zero; a host with a non-zero bmaporg offset
// still gets the same relative 3x3 neighborhood, just shifted by a
// constant the host's BlockThingsIterator already accounts for.
const mapBlockShift = 7 + fixed.FracBits

func blockCoord(v fixed.Fixed) int { return int(v) >> mapBlockShift }

const maxRadius = 32 * fixed.FracUnit

// vileCheck reports whether thing is a raisable corpse sitting within
// reach of (tryX, tryY), resizing it temporarily (or, in compatibility
// mode, merely doubling its height) to confirm headroom via
// CheckPosition. It restores thing's size and solid flag before
// returning; on acceptance it records thing in w.CorpseHit and returns
// false to stop the iteration, for VileChase to finish the job.
func vileCheck(w *mobj.World, tryX, tryY fixed.Fixed, thing *mobj.Actor) bool {
	if !thing.Has(mobj.FlagCorpse) {
		return true
	}
	if thing.Tics != -1 {
		return true
	}
	if !thing.Archetype().CanRaise() {
		return true
	}

	maxDist := thing.Radius + mobj.Archetypes[mobj.KindArchvile].Radius
	if fixed.Abs(thing.X-tryX) > maxDist || fixed.Abs(thing.Y-tryY) > maxDist {
		return true
	}

	thing.MomX, thing.MomY = 0, 0

	var check bool
	if w.Compatibility {
		thing.Height <<= 2
		check = w.Ports.CheckPosition(thing, thing.X, thing.Y)
		thing.Height >>= 2
	} else {
		arch := thing.Archetype()
		height, radius := thing.Height, thing.Radius
		thing.Height = arch.Height
		thing.Radius = arch.Radius
		thing.Set(mobj.FlagSolid)
		check = w.Ports.CheckPosition(thing, thing.X, thing.Y)
		thing.Height = height
		thing.Radius = radius
		thing.Clear(mobj.FlagSolid)
	}

	if !check {
		return true
	}

	w.CorpseHit = thing
	return false
}

// VileChase scans a 3x3 block-map neighborhood ahead of the archvile for
// a corpse to resurrect; if none is found (or movedir is NoDir), it
// falls through to the ordinary Chase behavior.
func VileChase(w *mobj.World, actor *mobj.Actor) {
	if actor.MoveDir != direction.NoDir {
		dx, dy := direction.Velocity(actor.MoveDir)
		speed := actor.Archetype().Speed
		tryX := actor.X + fixed.Mul(speed, dx)
		tryY := actor.Y + fixed.Mul(speed, dy)

		w.VileTryX, w.VileTryY = int32(tryX), int32(tryY)
		w.VileObj = actor
		w.CorpseHit = nil

		xl := blockCoord(tryX - maxRadius*2)
		xh := blockCoord(tryX + maxRadius*2)
		yl := blockCoord(tryY - maxRadius*2)
		yh := blockCoord(tryY + maxRadius*2)

		for bx := xl; bx <= xh; bx++ {
			for by := yl; by <= yh; by++ {
				found := !w.Ports.BlockThingsIterator(bx, by, func(thing *mobj.Actor) bool {
					return vileCheck(w, tryX, tryY, thing)
				})
				if found && w.CorpseHit != nil {
					raiseCorpse(w, actor, w.CorpseHit)
					return
				}
			}
		}
	}

	Chase(w, actor)
}

// raiseCorpse performs the resurrection once VileChase finds a
// candidate: briefly re-faces it, transitions the vile to its heal
// animation, plays the slop sound, and restores the corpse to its
// archetype's combat-ready state (or, in compatibility mode, merely
// doubles its already-halved height again — the classic "ghost" bug,
// where the corpse is playable but never regains its true radius).
func raiseCorpse(w *mobj.World, actor, corpse *mobj.Actor) {
	saved := actor.Target
	actor.Target = corpse
	FaceTarget(w, actor)
	actor.Target = saved

	w.Ports.SetMobjState(actor, stateVileHeal1)
	w.Ports.SpawnSound(corpse, "slop")

	arch := corpse.Archetype()
	w.Ports.SetMobjState(corpse, arch.RaiseState)

	if w.Compatibility {
		corpse.Height <<= 2
	} else {
		corpse.Height = arch.Height
		corpse.Radius = arch.Radius
	}
	corpse.Clear(mobj.FlagCorpse)
	corpse.Set(mobj.FlagShootable | mobj.FlagSolid)
	corpse.HP = arch.SpawnHP
	corpse.Target = nil
}

// VileStart plays the archvile's attack announcement sound.
func VileStart(w *mobj.World, actor *mobj.Actor) {
	w.Ports.SpawnSound(actor, "vilatk")
}

// fireOffset is the fixed 24-unit standoff the hellfire keeps in front
// of whichever actor it is tethered to.
const fireOffset fixed.Fixed = 24 * fixed.FracUnit

// Fire repositions the flame actor 24 units in front of its tracer
// (the vile's victim), unless the vile has lost sight of the victim, in
// which case the flame holds its last position.
func Fire(w *mobj.World, actor *mobj.Actor) {
	dest := actor.Tracer
	if dest == nil {
		return
	}
	if actor.Target == nil || !w.Ports.CheckSight(actor.Target, dest) {
		return
	}

	w.Ports.UnsetThingPosition(actor)
	actor.X = dest.X + fixed.Mul(fireOffset, fixed.Cos(dest.Angle))
	actor.Y = dest.Y + fixed.Mul(fireOffset, fixed.Sin(dest.Angle))
	actor.Z = dest.Z
	w.Ports.SetThingPosition(actor)
}

// StartFire plays the ignition sound then repositions via Fire.
func StartFire(w *mobj.World, actor *mobj.Actor) {
	w.Ports.SpawnSound(actor, "flamst")
	Fire(w, actor)
}

// FireCrackle plays the burning loop sound then repositions via Fire.
func FireCrackle(w *mobj.World, actor *mobj.Actor) {
	w.Ports.SpawnSound(actor, "flame")
	Fire(w, actor)
}

// VileTarget spawns the hellfire tethered between the vile and its
// target. The fog's spawn Y coordinate is set from the target's X, not
// Y — a verbatim-preserved original bug, not a typo introduced here.
func VileTarget(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	FaceTarget(w, actor)

	fog := w.Ports.SpawnMobj(actor.Target.X, actor.Target.X, actor.Target.Z, mobj.MobjFire)
	if fog == nil {
		return
	}

	actor.Tracer = fog
	fog.Target = actor
	fog.Tracer = actor.Target
	Fire(w, fog)
}

// VileAttack deals the archvile's direct flame-burst damage: a fixed 20
// points, a mass-scaled vertical launch, and a 70-point radius
// explosion centered on the fire actor repositioned 24 units from the
// victim toward the vile.
func VileAttack(w *mobj.World, actor *mobj.Actor) {
	if actor.Target == nil {
		return
	}
	FaceTarget(w, actor)
	if !w.Ports.CheckSight(actor, actor.Target) {
		return
	}

	w.Ports.SpawnSound(actor, "barexp")
	w.Ports.DamageMobj(actor.Target, actor, actor, 20)
	actor.Target.MomZ = fixed.Div(1000*fixed.FracUnit, fixed.FromInt(actor.Target.Mass))

	fire := actor.Tracer
	if fire == nil {
		return
	}

	fire.X = actor.Target.X - fixed.Mul(fireOffset, fixed.Cos(actor.Angle))
	fire.Y = actor.Target.Y - fixed.Mul(fireOffset, fixed.Sin(actor.Angle))
	w.Ports.RadiusAttack(fire, actor, 70)
}
