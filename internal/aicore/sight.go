package aicore

import (
	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
	"github.com/Garsondee/hellspawn-ai/internal/rng"
)

// meleeRange and meleeRangeFudge implement the engine's
// "MELEERANGE - 20*FRACUNIT" constant; meleeRange below is MELEERANGE.
const (
	meleeRange      fixed.Fixed = 64 * fixed.FracUnit
	meleeRangeFudge fixed.Fixed = 20 * fixed.FracUnit
	missileRange    fixed.Fixed = 2048 * fixed.FracUnit
)

// CheckMeleeRange reports whether a's target is close enough, and
// visible, for a melee attack. No sight check is made without a target.
func CheckMeleeRange(w *mobj.World, a *mobj.Actor) bool {
	if a.Target == nil {
		return false
	}
	pl := a.Target
	dist := fixed.AproxDistance(pl.X-a.X, pl.Y-a.Y)
	if dist >= meleeRange-meleeRangeFudge+pl.Radius {
		return false
	}
	return w.Ports.CheckSight(a, a.Target)
}

// CheckMissileRange reports whether a should fire a missile attack now.
// It is stochastic: the fire probability falls off with distance via a
// random gate, after several archetype-specific clamps.
func CheckMissileRange(w *mobj.World, a *mobj.Actor) bool {
	if a.Target == nil || !w.Ports.CheckSight(a, a.Target) {
		return false
	}

	if a.Has(mobj.FlagJustHit) {
		a.Clear(mobj.FlagJustHit)
		return true // retaliation override
	}

	if a.ReactionTime > 0 {
		return false
	}

	dist := fixed.AproxDistance(a.X-a.Target.X, a.Y-a.Target.Y) - 64*fixed.FracUnit

	arch := a.Archetype()
	if !arch.HasMelee() {
		dist -= 128 * fixed.FracUnit // no melee attack, so fire more
	}

	d := dist.ToInt() // the >>16 in the original

	if a.Kind == mobj.KindArchvile && d > 14*64 {
		return false // too far away
	}

	if a.Kind == mobj.KindRevenant {
		if d < 196 {
			return false // close enough for fist attack
		}
		d >>= 1
	}

	if a.Kind == mobj.KindCyberdemon || a.Kind == mobj.KindSpiderMastermind || a.Kind == mobj.KindLostSoul {
		d >>= 1
	}

	if d > 200 {
		d = 200
	}
	if a.Kind == mobj.KindCyberdemon && d > 160 {
		d = 160
	}

	return !w.RNG.Below(rng.SiteMissRange, d)
}
