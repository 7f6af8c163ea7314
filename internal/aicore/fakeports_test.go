package aicore

import (
	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
)

// fakePorts is a minimal, fully in-memory Ports stand-in shared by this
// package's scenario tests. Every query defaults to the most permissive
// answer (open sight, successful movement, no obstruction); tests that
// care about a specific collaborator response override that one field.
type fakePorts struct {
	world *mobj.World

	nextID int

	sight        bool
	sides        bool
	headroom     bool
	lineOpen     fixed.Fixed
	tryMoveFails bool
	specHit      []*mobj.Line
	useSpecial   bool
	damageLog    []damageRecord
	spawned    []*mobj.Actor
	removed    []*mobj.Actor
	teleported []*mobj.Actor
	doorCalls  []mobj.Line
	floorCalls []mobj.Line
	exited     bool
}

type damageRecord struct {
	victim, inflictor, owner *mobj.Actor
	damage                   int
}

func newFakePorts() *fakePorts {
	return &fakePorts{sight: true, headroom: true, lineOpen: fixed.FromInt(64)}
}

func (p *fakePorts) bind(w *mobj.World) { p.world = w }

func (p *fakePorts) CheckSight(a, b *mobj.Actor) bool { return p.sight }

func (p *fakePorts) CurrentSector(a *mobj.Actor) *mobj.Sector { return nil }

func (p *fakePorts) TryMove(actor *mobj.Actor, x, y fixed.Fixed, allowDropoff bool) mobj.MoveResult {
	if p.tryMoveFails {
		return mobj.MoveResult{Success: false, SpecHit: p.specHit}
	}
	actor.X, actor.Y = x, y
	return mobj.MoveResult{Success: true}
}

func (p *fakePorts) UseSpecialLine(actor *mobj.Actor, line *mobj.Line, side int) bool {
	return p.useSpecial
}

func (p *fakePorts) BlockThingsIterator(bx, by int, pred func(*mobj.Actor) bool) bool { return true }

func (p *fakePorts) CheckPosition(actor *mobj.Actor, x, y fixed.Fixed) bool { return true }

func (p *fakePorts) SpawnMobj(x, y, z fixed.Fixed, kind mobj.MobjKind) *mobj.Actor {
	p.nextID++
	a := &mobj.Actor{ID: p.nextID, X: x, Y: y, Z: z, Tics: 35}
	p.spawned = append(p.spawned, a)
	return a
}

func (p *fakePorts) SpawnActor(x, y, z fixed.Fixed, kind mobj.Kind) *mobj.Actor {
	arch := mobj.Archetypes[kind]
	p.nextID++
	a := &mobj.Actor{ID: p.nextID, Kind: kind, X: x, Y: y, Z: z, Radius: arch.Radius, Height: arch.Height, HP: arch.SpawnHP, Mass: arch.Mass}
	a.Set(mobj.FlagShootable | mobj.FlagSolid)
	p.spawned = append(p.spawned, a)
	return a
}

func (p *fakePorts) SpawnMissile(src, dst *mobj.Actor, kind mobj.MissileKind) *mobj.Actor {
	p.nextID++
	angle := fixed.PointToAngle(dst.X-src.X, dst.Y-src.Y)
	speed := mobj.MissileSpeed(kind)
	mo := &mobj.Actor{ID: p.nextID, X: src.X, Y: src.Y, Z: src.Z, Angle: angle, MomX: fixed.Mul(speed, fixed.Cos(angle)), MomY: fixed.Mul(speed, fixed.Sin(angle))}
	p.spawned = append(p.spawned, mo)
	return mo
}

func (p *fakePorts) SpawnPuff(x, y, z fixed.Fixed) {}

func (p *fakePorts) RemoveMobj(a *mobj.Actor) { p.removed = append(p.removed, a) }

func (p *fakePorts) TeleportMove(a *mobj.Actor, x, y fixed.Fixed) bool {
	a.X, a.Y = x, y
	p.teleported = append(p.teleported, a)
	return true
}

func (p *fakePorts) UnsetThingPosition(a *mobj.Actor) {}
func (p *fakePorts) SetThingPosition(a *mobj.Actor)   {}

func (p *fakePorts) AimLineAttack(actor *mobj.Actor, angle fixed.Angle, rangeUnits fixed.Fixed) fixed.Fixed {
	return 0
}

func (p *fakePorts) LineAttack(actor *mobj.Actor, angle fixed.Angle, rangeUnits, slope fixed.Fixed, damage int) {
	if actor.Target != nil {
		p.DamageMobj(actor.Target, actor, actor, damage)
	}
}

func (p *fakePorts) RadiusAttack(source, owner *mobj.Actor, damage int) {
	if source.Target != nil {
		p.DamageMobj(source.Target, source, owner, damage)
	}
}

func (p *fakePorts) DamageMobj(victim, inflictor, owner *mobj.Actor, damage int) {
	victim.HP -= damage
	p.damageLog = append(p.damageLog, damageRecord{victim, inflictor, owner, damage})
}

func (p *fakePorts) SetMobjState(a *mobj.Actor, state mobj.StateID) { a.State = state }

func (p *fakePorts) SpawnSound(a *mobj.Actor, sound mobj.SoundID) {}

func (p *fakePorts) CheckSides(actor *mobj.Actor, x, y fixed.Fixed) bool { return p.sides }

func (p *fakePorts) CheckSkullHeadroom(a *mobj.Actor) bool { return p.headroom }

func (p *fakePorts) EVDoDoor(line *mobj.Line, kind mobj.DoorKind) { p.doorCalls = append(p.doorCalls, *line) }

func (p *fakePorts) EVDoFloor(line *mobj.Line, kind mobj.FloorKind) {
	p.floorCalls = append(p.floorCalls, *line)
}

func (p *fakePorts) ExitLevel() { p.exited = true }

func (p *fakePorts) LineOpening(line *mobj.Line) fixed.Fixed { return p.lineOpen }
