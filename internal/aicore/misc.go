package aicore

import "github.com/Garsondee/hellspawn-ai/internal/mobj"

// Hoof plays the cyberdemon's footstep and otherwise behaves exactly
// like Chase.
func Hoof(w *mobj.World, actor *mobj.Actor) {
	w.Ports.SpawnSound(actor, "hoof")
	Chase(w, actor)
}

// Metal plays the spider mastermind's footstep and otherwise behaves
// exactly like Chase.
func Metal(w *mobj.World, actor *mobj.Actor) {
	w.Ports.SpawnSound(actor, "metal")
	Chase(w, actor)
}

// BabyMetal plays the arachnotron's footstep and otherwise behaves
// exactly like Chase.
func BabyMetal(w *mobj.World, actor *mobj.Actor) {
	w.Ports.SpawnSound(actor, "bspwlk")
	Chase(w, actor)
}
