package aicore

import (
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
	"github.com/Garsondee/hellspawn-ai/internal/rng"
)

// fullVolumeOnDeath reports whether k's death cry plays at world volume
// rather than positionally — the two heaviest bosses.
func fullVolumeOnDeath(k mobj.Kind) bool {
	return k == mobj.KindSpiderMastermind || k == mobj.KindCyberdemon
}

func deathSound(w *mobj.World, arch mobj.Archetype) mobj.SoundID {
	switch arch.DeathSound {
	case mobj.SoundPodDeath1:
		switch w.RNG.Draw(rng.SiteScream) % 3 {
		case 0:
			return "podth1"
		case 1:
			return "podth2"
		default:
			return "podth3"
		}
	case mobj.SoundBgDeath1:
		if w.RNG.Bool(rng.SiteScream) {
			return "bgdth1"
		}
		return "bgdth2"
	default:
		return arch.DeathSound
	}
}

// Scream plays actor's death cry, picking a random member of its sound
// family where one exists. An archetype with no death sound at all stays
// silent.
func Scream(w *mobj.World, actor *mobj.Actor) {
	arch := actor.Archetype()
	if arch.DeathSound == mobj.SoundNone {
		return
	}
	sound := deathSound(w, arch)
	if fullVolumeOnDeath(actor.Kind) {
		w.Ports.SpawnSound(nil, sound)
	} else {
		w.Ports.SpawnSound(actor, sound)
	}
}

// XScream plays the gib splat, for deaths gory enough to skip the
// ordinary death cry.
func XScream(w *mobj.World, actor *mobj.Actor) {
	w.Ports.SpawnSound(actor, "slop")
}

// Pain plays actor's pain grunt, if its archetype has one.
func Pain(w *mobj.World, actor *mobj.Actor) {
	if sound := actor.Archetype().PainSound; sound != mobj.SoundNone {
		w.Ports.SpawnSound(actor, sound)
	}
}

// Fall drops actor's solid flag so corpses can be walked over.
func Fall(w *mobj.World, actor *mobj.Actor) {
	actor.Clear(mobj.FlagSolid)
}

// Explode detonates a radius attack centered on actor, blaming whoever
// actor's target points at (the shooter that killed it).
func Explode(w *mobj.World, actor *mobj.Actor) {
	w.Ports.RadiusAttack(actor, actor.Target, 128)
}
