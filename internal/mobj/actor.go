package mobj

import (
	"fmt"

	"github.com/Garsondee/hellspawn-ai/internal/direction"
	"github.com/Garsondee/hellspawn-ai/internal/fixed"
)

// Flag is a bit in an Actor's flag-set.
type Flag uint32

const (
	FlagShootable Flag = 1 << iota
	FlagSolid
	FlagCorpse
	FlagAmbush
	FlagJustHit
	FlagJustAttacked
	FlagInFloat
	FlagFloatCapable
	FlagSkullFlying
	FlagShadow
)

// Has reports whether f is set in the actor's flag-set.
func (a *Actor) Has(f Flag) bool { return a.Flags&f != 0 }

// Set turns f on.
func (a *Actor) Set(f Flag) { a.Flags |= f }

// Clear turns f off.
func (a *Actor) Clear(f Flag) { a.Flags &^= f }

// Actor is the unit of simulation.
type Actor struct {
	// Thinker ring linkage (intrusive, insertion-ordered).
	next, prev *Actor
	removed    bool

	ID   int
	Kind Kind

	X, Y, Z       fixed.Fixed
	MomX, MomY, MomZ fixed.Fixed
	Angle         fixed.Angle
	Radius, Height fixed.Fixed

	State      StateID
	Tics       int // remaining frame ticks; -1 means "animation halted" (a resurrectable corpse)
	HP         int
	Mass       int
	Flags      Flag

	Target    *Actor // current focus, or nil
	Tracer    *Actor // homing/fire-tether actor, or nil
	LastEnemy *Actor // memory slot, or nil

	MoveDir     direction.Dir
	MoveCount   int // ticks-until-redecide
	ReactionTime int
	Threshold   int
	LastLook    int // round-robin player index

	IsLeader bool // not read by the AI core; KeenDie/BossDeath survivor scans ignore it
}

// Archetype looks up the actor's archetype descriptor.
func (a *Actor) Archetype() Archetype { return Archetypes[a.Kind] }

// IsAlive reports whether the actor is shootable and not a corpse — the
// condition required of anything assigned to Target.
func (a *Actor) IsAlive() bool { return a.HP > 0 && a.Has(FlagShootable) }

// LogTag identifies the actor in an eventlog.Entry, e.g. "imp#7".
func (a *Actor) LogTag() string { return fmt.Sprintf("%s#%d", a.Kind, a.ID) }
