package aicore

import (
	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
	"github.com/Garsondee/hellspawn-ai/internal/rng"
)

// SpawnBrainTargets rebuilds the icon-landing target list from the
// current thinker ring. It runs once at level start rather than at
// brain wakeup, so a mid-level save/restore never loses the list.
func SpawnBrainTargets(w *mobj.World) {
	w.BrainTargets = w.BrainTargets[:0]
	w.TargetOn = 0
	w.Easy = false

	for _, a := range w.Thinkers.Actors() {
		if a.Kind == mobj.KindBossTarget {
			w.BrainTargets = append(w.BrainTargets, a)
		}
	}
}

// BrainAwake plays the final boss's wakeup cue at world volume; the
// target list itself was already built by SpawnBrainTargets.
func BrainAwake(w *mobj.World, actor *mobj.Actor) {
	w.Ports.SpawnSound(nil, "bossit")
}

// BrainPain plays the boss brain's pain grunt at world volume.
func BrainPain(w *mobj.World, actor *mobj.Actor) {
	w.Ports.SpawnSound(nil, "bospn")
}

// spawnDebrisRocket spawns one exploding rocket at (x, y, z), applies
// randomized upward momentum, switches it straight to its explosion
// animation, and shortens its fuse by up to 7 ticks without letting it
// reach zero. BrainScream and BrainExplode both scatter a field of
// these, differing only in how x is chosen.
func spawnDebrisRocket(w *mobj.World, site rng.CallSite, x, y, z fixed.Fixed) {
	th := w.Ports.SpawnMobj(x, y, z, mobj.MobjBrainMissile)
	if th == nil {
		return
	}
	th.MomZ = fixed.Fixed(int(w.RNG.Draw(site)) * 512)
	w.Ports.SetMobjState(th, stateBrainExplode1)
	th.Tics -= int(w.RNG.Draw(site) & 7)
	if th.Tics < 1 {
		th.Tics = 1
	}
}

// BrainScream scatters a wall of debris rockets across the boss brain's
// width before its death cry, the icon-of-sin's signature detonation.
func BrainScream(w *mobj.World, actor *mobj.Actor) {
	for x := actor.X - 196*fixed.FracUnit; x < actor.X+320*fixed.FracUnit; x += fixed.FracUnit * 8 {
		y := actor.Y - 320*fixed.FracUnit
		z := fixed.FromInt(128) + fixed.Fixed(int(w.RNG.Draw(rng.SiteBrainScream))*2)*fixed.FracUnit
		spawnDebrisRocket(w, rng.SiteBrainScream, x, y, z)
	}
	w.Ports.SpawnSound(nil, "bosdth")
}

// BrainExplode scatters a single debris rocket near actor, horizontally
// jittered by the difference of two draws — the original's deliberate
// evaluation-order-independent rewrite of what used to be a single
// expression with two side-effecting P_Random calls.
func BrainExplode(w *mobj.World, actor *mobj.Actor) {
	t := int(w.RNG.Draw(rng.SiteBrainExplode))
	x := actor.X + fixed.Fixed((t-int(w.RNG.Draw(rng.SiteBrainExplode)))*2048)
	y := actor.Y
	z := fixed.FromInt(128) + fixed.Fixed(int(w.RNG.Draw(rng.SiteBrainExplode))*2)*fixed.FracUnit
	spawnDebrisRocket(w, rng.SiteBrainExplode, x, y, z)
}

// BrainDie ends the level: destroying the icon of sin is always the
// final objective of the map that hosts it.
func BrainDie(w *mobj.World, actor *mobj.Actor) {
	w.Ports.ExitLevel()
	if w.Events != nil {
		w.Events.Add(w.GameTic, actor.LogTag(), "brain", "victory", "exit-level", 0)
	}
}

// BrainSpit advances the round-robin target index and launches a spawn
// cube at the chosen landing spot. On skill levels at or below easy, it
// only fires on every other call — the alternating brain.easy toggle
// flips regardless of whether this call actually fires, so the skip
// pattern is exact from the first call onward.
func BrainSpit(w *mobj.World, actor *mobj.Actor) {
	if len(w.BrainTargets) == 0 {
		return
	}

	w.Easy = !w.Easy
	if w.Skill.Easy && !w.Easy {
		return
	}

	targ := w.BrainTargets[w.TargetOn]
	w.TargetOn = (w.TargetOn + 1) % len(w.BrainTargets)

	cube := w.Ports.SpawnMissile(actor, targ, mobj.MissileSpawnShot)
	if cube != nil {
		cube.Target = targ

		// Preserved verbatim: this is a plain integer divide by the
		// cube's own y-momentum, which is zero for a target due east or
		// west of the brain, and which the original leaves unguarded. The
		// quotient is a tick count, then divided by the spawn state's tic
		// count.
		cube.ReactionTime = int((targ.Y-actor.Y)/cube.MomY) / spawnShotStateTics
	}

	w.Ports.SpawnSound(nil, "bospit")
}

// spawnShotStateTics is the travelling-cube state's frame duration, the
// divisor BrainSpit's flight-time estimate uses.
const spawnShotStateTics = 3

// SpawnSound plays the travelling cube's hum, then immediately runs one
// step of its flight toward the target it was launched at.
func SpawnSound(w *mobj.World, actor *mobj.Actor) {
	w.Ports.SpawnSound(actor, "boscub")
	SpawnFly(w, actor)
}

// spawnRoll is one entry of the weighted monster-type table SpawnFly
// rolls against: a roll strictly less than Ceiling selects Kind, checked
// in ascending Ceiling order.
type spawnRoll struct {
	Ceiling int
	Kind    mobj.Kind
}

var spawnRollTable = []spawnRoll{
	{50, mobj.KindTrooper},
	{90, mobj.KindSergeant},
	{120, mobj.KindShadow},
	{130, mobj.KindPainElemental},
	{160, mobj.KindCacodemon},
	{162, mobj.KindArchvile},
	{172, mobj.KindRevenant},
	{192, mobj.KindArachnotron},
	{222, mobj.KindMancubus},
	{246, mobj.KindHellKnight},
}

// SpawnFly finishes a travelling cube's flight: once its countdown
// reaches zero it spawns teleport fog at the target, rolls a weighted
// monster type, materializes it there, gives it first look at the
// players, and telefrags anything already standing on the landing spot
// before removing the cube.
func SpawnFly(w *mobj.World, actor *mobj.Actor) {
	actor.ReactionTime--
	if actor.ReactionTime > 0 {
		return
	}

	targ := actor.Target
	if targ == nil {
		w.Ports.RemoveMobj(actor)
		return
	}

	fog := w.Ports.SpawnMobj(targ.X, targ.Y, targ.Z, mobj.MobjSpawnFire)
	if fog != nil {
		w.Ports.SpawnSound(fog, "telept")
	}

	r := int(w.RNG.Draw(rng.SiteSpawnFly))
	kind := mobj.KindBaron
	for _, roll := range spawnRollTable {
		if r < roll.Ceiling {
			kind = roll.Kind
			break
		}
	}

	newmobj := w.Ports.SpawnActor(targ.X, targ.Y, targ.Z, kind)
	if newmobj != nil {
		if LookForPlayers(w, newmobj, true) {
			w.Ports.SetMobjState(newmobj, newmobj.Archetype().SeeState)
		}
		w.Ports.TeleportMove(newmobj, newmobj.X, newmobj.Y)
	}

	w.Ports.RemoveMobj(actor)
}
