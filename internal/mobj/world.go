package mobj

import (
	"github.com/Garsondee/hellspawn-ai/internal/eventlog"
	"github.com/Garsondee/hellspawn-ai/internal/rng"
)

// GameMode distinguishes the boss-death trigger table's rule set.
type GameMode int

const (
	ModeRegistered GameMode = iota
	ModeCommercial
	ModeOther
)

// Player is the minimal player-actor view LookForPlayers needs: whether
// the slot is in use, alive, and the underlying Actor for sight/position
// checks.
type Player struct {
	InGame bool
	Health int
	Mobj   *Actor
}

// Skill gates the two adaptive-difficulty branches an archetype's action
// handlers distinguish: fast monsters (nightmare or the -fast branch)
// versus everyone else.
type Skill struct {
	Nightmare bool
	Fast      bool
	Easy      bool // gates BrainSpit's every-other-call skip
}

// World holds every piece of process-wide state the AI core reads or
// mutates: the thinker ring, the RNG stream, the player and brain-target
// registries, and the vile's scratch registers.
type World struct {
	Ports Ports

	Thinkers *ThinkerRing
	RNG      *rng.Stream
	Events   *eventlog.Log

	ValidCount int

	Players []Player

	BrainTargets []*Actor
	TargetOn     int
	Easy         bool

	Mode       GameMode
	Episode    int
	Map        int

	Skill          Skill
	NetGame        bool
	Compatibility  bool // gates the vanilla-bug-compatible branches throughout aicore
	MonstersRemember bool

	GameTic       int
	LevelStartTic int

	// vile scratch registers: scoped to World rather than package-level
	// globals so multiple Worlds (e.g. concurrent tests) never interfere,
	// while still matching the single-threaded, process-wide-within-one-
	// world semantics the original relied on.
	CorpseHit        *Actor
	VileObj          *Actor
	VileTryX, VileTryY int32
}

// NewWorld constructs an empty World wired to the given Ports.
func NewWorld(ports Ports) *World {
	return &World{
		Ports:    ports,
		Thinkers: NewThinkerRing(),
		RNG:      &rng.Stream{},
		Events:   eventlog.New(),
	}
}

// BumpValidCount advances the global traversal stamp and returns the new
// value, for NoiseAlert and any other single-traversal visited-set marker.
func (w *World) BumpValidCount() int {
	w.ValidCount++
	return w.ValidCount
}
