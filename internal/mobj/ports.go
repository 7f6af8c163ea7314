package mobj

import "github.com/Garsondee/hellspawn-ai/internal/fixed"

// MissileKind names the projectile archetypes SpawnMissile creates. The
// AI core never inspects these beyond passing
// them through to Ports — spawning itself is an external collaborator.
type MissileKind string

const (
	MissileTrooperShot  MissileKind = "troopshot"
	MissileHeadShot     MissileKind = "headshot"
	MissileBruiserShot  MissileKind = "bruisershot"
	MissileRocket       MissileKind = "rocket"
	MissileTracer       MissileKind = "tracer"
	MissileArachPlaz    MissileKind = "arachplaz"
	MissileFatShot      MissileKind = "fatshot"
	MissileSpawnShot    MissileKind = "spawnshot"
)

// missileSpeeds gives each projectile kind's travel speed, in the same
// fixed-point units an Archetype's Speed uses. FatAttack1/2/3 need this
// to recompute a spread shot's momentum after rotating its angle away
// from the aim SpawnMissile already resolved.
var missileSpeeds = map[MissileKind]fixed.Fixed{
	MissileTrooperShot: fixed.FromInt(10),
	MissileHeadShot:    fixed.FromInt(5),
	MissileBruiserShot: fixed.FromInt(15),
	MissileRocket:      fixed.FromInt(20),
	MissileTracer:      fixed.FromInt(10),
	MissileArachPlaz:   fixed.FromInt(25),
	MissileFatShot:     fixed.FromInt(20),
	MissileSpawnShot:   fixed.FromInt(10),
}

// MissileSpeed looks up a projectile kind's travel speed.
func MissileSpeed(k MissileKind) fixed.Fixed { return missileSpeeds[k] }

// MobjKind names a non-missile spawn request (smoke trails, fire, fog,
// the vile's healing flame, the spawn cube's arrival fog).
type MobjKind string

const (
	MobjSmoke        MobjKind = "smoke"
	MobjFire         MobjKind = "fire"
	MobjSpawnFire    MobjKind = "spawnfire"
	MobjBrainMissile MobjKind = "brainmissile"
)

// DoorKind/FloorKind parameterize the line-special services the
// boss-death trigger table actuates.
type DoorKind int

const (
	DoorOpen DoorKind = iota
	DoorBlazeOpen
)

type FloorKind int

const (
	FloorLowerToLowest FloorKind = iota
	FloorRaiseToTexture
)

// Ports bundles every external collaborator the AI core calls through:
// line-of-sight, movement resolution, attack resolution, and the spawn/
// sound/door/floor services the world owns. A production host implements
// this against its real map, renderer-free physics, and sound systems;
// tests implement a minimal fake.
type Ports interface {
	// CheckSight reports whether b is visible from a.
	CheckSight(a, b *Actor) bool

	// CurrentSector returns the sector an actor currently occupies, for
	// Look's soundtarget check.
	CurrentSector(a *Actor) *Sector

	// TryMove attempts to move actor to (x, y) without dropping off a
	// ledge when allowDropoff is false. It reports success, and on
	// failure populates FloatOK/FloorZ/SpecHit via the return value.
	TryMove(actor *Actor, x, y fixed.Fixed, allowDropoff bool) MoveResult

	// UseSpecialLine activates a bumped line's special, if any.
	UseSpecialLine(actor *Actor, line *Line, side int) bool

	// BlockThingsIterator visits actors in the block-map cell (bx, by),
	// calling pred on each; it stops and returns false as soon as pred
	// returns false (mirrors the original's "false means stop, a match
	// was found" PIT_* convention).
	BlockThingsIterator(bx, by int, pred func(*Actor) bool) bool

	// CheckPosition reports whether actor fits at (x, y) given its
	// current radius/height, without moving it.
	CheckPosition(actor *Actor, x, y fixed.Fixed) bool

	SpawnMobj(x, y, z fixed.Fixed, kind MobjKind) *Actor

	// SpawnActor creates a fully-fledged monster actor of the given
	// archetype kind, for lost soul and spawn-cube materialization.
	SpawnActor(x, y, z fixed.Fixed, kind Kind) *Actor
	SpawnMissile(src, dst *Actor, kind MissileKind) *Actor
	SpawnPuff(x, y, z fixed.Fixed)
	RemoveMobj(a *Actor)
	TeleportMove(a *Actor, x, y fixed.Fixed) bool
	UnsetThingPosition(a *Actor)
	SetThingPosition(a *Actor)

	// AimLineAttack returns the vertical aim slope along angle from
	// actor, searching out to rangeUnits.
	AimLineAttack(actor *Actor, angle fixed.Angle, rangeUnits fixed.Fixed) fixed.Fixed
	LineAttack(actor *Actor, angle fixed.Angle, rangeUnits, slope fixed.Fixed, damage int)
	RadiusAttack(source, owner *Actor, damage int)
	DamageMobj(victim, inflictor, owner *Actor, damage int)

	SetMobjState(a *Actor, state StateID)
	SpawnSound(a *Actor, sound SoundID) // a == nil means world-volume

	// CheckSides rejects a Lost Soul spawn crossing a 1-sided,
	// impassable, or monster-blocking line.
	CheckSides(actor *Actor, x, y fixed.Fixed) bool

	// CheckSkullHeadroom reports whether a newly spawned actor's z
	// position fits within its current sector's floor/ceiling gap.
	CheckSkullHeadroom(a *Actor) bool

	EVDoDoor(line *Line, kind DoorKind)
	EVDoFloor(line *Line, kind FloorKind)
	ExitLevel()

	// LineOpening computes the vertical gap of a two-sided line, for
	// NoiseAlert's flood. A non-positive opening is "closed" and stops
	// propagation through that line.
	LineOpening(line *Line) fixed.Fixed
}

// MoveResult carries TryMove's side effects, the way the original's
// floatok/tmfloorz/spechit globals did, but scoped to a single call
// instead of being process-wide scratch state.
type MoveResult struct {
	Success  bool
	FloatOK  bool
	FloorZ   fixed.Fixed
	SpecHit  []*Line
}
