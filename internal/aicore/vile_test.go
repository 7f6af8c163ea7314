package aicore

import (
	"testing"

	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
)

// newCorpse builds a lying-down corpse at some collapsed height distinct
// from its archetype's standing height, the way a dead monster's sprite
// bounding box differs from its living one.
func newCorpse(kind mobj.Kind) *mobj.Actor {
	arch := mobj.Archetypes[kind]
	c := &mobj.Actor{Kind: kind, Tics: -1, Height: arch.Height / 2, Radius: arch.Radius}
	c.Set(mobj.FlagCorpse)
	return c
}

func TestRaiseCorpseRestoresTrueSizeWhenNotCompatible(t *testing.T) {
	w, _ := newTestWorld()
	w.Compatibility = false

	vile := &mobj.Actor{Kind: mobj.KindArchvile}
	corpse := newCorpse(mobj.KindImp)
	arch := mobj.Archetypes[mobj.KindImp]

	raiseCorpse(w, vile, corpse)

	if corpse.Height != arch.Height || corpse.Radius != arch.Radius {
		t.Fatalf("non-compatible raise: Height=%v Radius=%v, want Height=%v Radius=%v",
			corpse.Height, corpse.Radius, arch.Height, arch.Radius)
	}
	if corpse.Has(mobj.FlagCorpse) {
		t.Fatal("raised corpse should no longer carry FlagCorpse")
	}
}

func TestRaiseCorpseGhostBugWhenCompatible(t *testing.T) {
	w, _ := newTestWorld()
	w.Compatibility = true

	vile := &mobj.Actor{Kind: mobj.KindArchvile}
	corpse := newCorpse(mobj.KindImp)
	arch := mobj.Archetypes[mobj.KindImp]
	lyingHeight := corpse.Height

	raiseCorpse(w, vile, corpse)

	// The compatibility branch just quadruples whatever height the corpse
	// happened to have while lying down, rather than setting it to the
	// archetype's real standing height — the classic "ghost monster" bug:
	// the corpse regains combat capability but its hitbox no longer
	// matches its sprite.
	if want := lyingHeight * 4; corpse.Height != want {
		t.Fatalf("compatibility raise Height = %v, want %v (lying height quadrupled)", corpse.Height, want)
	}
	if corpse.Height == arch.Height {
		t.Fatal("compatibility raise coincidentally recovered the archetype's true height; the fixture should avoid that to exercise the bug")
	}
	if corpse.Radius != arch.Radius {
		t.Fatal("compatibility raise never touches Radius, so it should still read the value set at construction")
	}
}

func TestVileCheckRejectsNonCorpse(t *testing.T) {
	w, _ := newTestWorld()
	w.Compatibility = false

	thing := &mobj.Actor{Kind: mobj.KindImp}
	if !vileCheck(w, 0, 0, thing) {
		t.Fatal("vileCheck should reject a non-corpse (return true, meaning 'keep iterating')")
	}
}

func TestVileCheckRejectsOutOfRange(t *testing.T) {
	w, _ := newTestWorld()
	corpse := newCorpse(mobj.KindImp)

	if !vileCheck(w, fixed.FromInt(1000), fixed.FromInt(1000), corpse) {
		t.Fatal("vileCheck should skip a corpse far outside the archvile's reach")
	}
}
