package aicore

import (
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
	"github.com/Garsondee/hellspawn-ai/internal/rng"
)

// seeSound resolves an archetype's see-sound family ("posit1"/"bgsit1"
// sentinels randomize over 3 and 2 variants respectively) to a concrete
// id. Archetypes with any other SeeSound value play it unmodified.
func seeSound(w *mobj.World, arch mobj.Archetype) mobj.SoundID {
	switch arch.SeeSound {
	case mobj.SoundPosSight1:
		switch w.RNG.Draw(rng.SiteSee) % 3 {
		case 0:
			return "posit1"
		case 1:
			return "posit2"
		default:
			return "posit3"
		}
	case mobj.SoundBgSight1:
		if w.RNG.Bool(rng.SiteSee) {
			return "bgsit1"
		}
		return "bgsit2"
	default:
		return arch.SeeSound
	}
}

// Look adopts the current sector's soundtarget if shootable and not
// ambush-hidden, otherwise scans for a visible player in the forward
// arc. On acquisition it plays the see-sound and transitions to
// see-state.
func Look(w *mobj.World, actor *mobj.Actor) {
	actor.Threshold = 0
	seen := false

	if sec := w.Ports.CurrentSector(actor); sec != nil && sec.SoundTarget != nil && sec.SoundTarget.Has(mobj.FlagShootable) {
		if actor.Has(mobj.FlagAmbush) && !w.Ports.CheckSight(actor, sec.SoundTarget) {
			// heard but not seen, and this actor only reacts on sight
		} else {
			actor.Target = sec.SoundTarget
			seen = true
		}
	}

	if !seen {
		if !LookForPlayers(w, actor, false) {
			return
		}
	}

	arch := actor.Archetype()
	if sound := seeSound(w, arch); sound != mobj.SoundNone {
		if fullVolumeOnDeath(actor.Kind) {
			w.Ports.SpawnSound(nil, sound)
		} else {
			w.Ports.SpawnSound(actor, sound)
		}
	}

	w.Ports.SetMobjState(actor, arch.SeeState)

	if w.Events != nil && actor.Target != nil {
		w.Events.Add(w.GameTic, actor.LogTag(), "sight", "acquired", actor.Target.LogTag(), 0)
	}
}
