package aicore

import "github.com/Garsondee/hellspawn-ai/internal/mobj"

// States named directly by a handler rather than looked up through an
// archetype's SeeState/MeleeState/etc fields.
const (
	stateVileHeal1     mobj.StateID = "S_VILE_HEAL1"
	stateBrainExplode1 mobj.StateID = "S_BRAINEXPLODE1"
)
