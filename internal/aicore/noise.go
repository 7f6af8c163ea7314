// Package aicore is the monster AI core: noise propagation, sight/range
// predicates, movement, chase-direction selection, target acquisition,
// the per-frame action-handler library, boss-death triggers, and the
// final-boss subsystem.
package aicore

import "github.com/Garsondee/hellspawn-ai/internal/mobj"

// NoiseAlert floods from emitter's sector, marking every sector it can
// reach with source as the new sound target. It bumps World.ValidCount
// once per call so a second call within the same tick still reaches a
// superset-or-equal set of sectors.
func NoiseAlert(w *mobj.World, source, emitter *mobj.Actor, emitterSector *mobj.Sector) {
	w.BumpValidCount()
	recursiveSound(w, emitterSector, 0, source)
	if w.Events != nil {
		w.Events.Add(w.GameTic, source.LogTag(), "noise", "alert", emitter.LogTag(), 0)
	}
}

// recursiveSound implements P_RecursiveSound: it marks sec, then recurses
// across every open two-sided line, treating the first sound-blocking
// line crossed as a one-unit attenuation and the second as a hard stop.
func recursiveSound(w *mobj.World, sec *mobj.Sector, soundBlocks int, source *mobj.Actor) {
	// Already flooded by a path at least as short — re-entry is skipped
	// only when the stored depth is already <= this path's depth, so a
	// shorter path can still overwrite a longer one.
	if sec.ValidCount == w.ValidCount && sec.SoundTraversed <= soundBlocks+1 {
		return
	}

	sec.ValidCount = w.ValidCount
	sec.SoundTraversed = soundBlocks + 1
	sec.SoundTarget = source

	for _, line := range sec.Lines {
		if !line.TwoSided() {
			continue
		}

		opening := w.Ports.LineOpening(line)
		if opening <= 0 {
			continue // closed door
		}

		other := line.Other(sec)
		if other == nil {
			continue
		}

		if !line.SoundBlocking() {
			recursiveSound(w, other, soundBlocks, source)
		} else if soundBlocks == 0 {
			recursiveSound(w, other, 1, source)
		}
	}
}
