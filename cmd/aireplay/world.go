package main

import (
	"fmt"

	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
)

// flatPorts is a minimal, single-sector Ports implementation for a
// headless scenario replay: movement always succeeds (no walls), sight
// is unconditional line-of-sight, and combat resolves directly against
// whatever actor the missile/melee call names. It exists to give the AI
// core something to call through outside of a _test.go fake, the way a
// real host's map/physics/sound systems would, just with every query
// answered the simplest way that still lets a scenario run end to end.
type flatPorts struct {
	w         *mobj.World
	nextID    int
	sector    *mobj.Sector
	telefrags int
}

func newFlatPorts() *flatPorts {
	return &flatPorts{sector: &mobj.Sector{ID: 0}}
}

func (p *flatPorts) bind(w *mobj.World) { p.w = w }

func (p *flatPorts) CheckSight(a, b *mobj.Actor) bool { return true }

func (p *flatPorts) CurrentSector(a *mobj.Actor) *mobj.Sector { return p.sector }

func (p *flatPorts) TryMove(actor *mobj.Actor, x, y fixed.Fixed, allowDropoff bool) mobj.MoveResult {
	actor.X, actor.Y = x, y
	return mobj.MoveResult{Success: true}
}

func (p *flatPorts) UseSpecialLine(actor *mobj.Actor, line *mobj.Line, side int) bool { return false }

func (p *flatPorts) BlockThingsIterator(bx, by int, pred func(*mobj.Actor) bool) bool {
	for _, a := range p.w.Thinkers.Actors() {
		if !pred(a) {
			return false
		}
	}
	return true
}

func (p *flatPorts) CheckPosition(actor *mobj.Actor, x, y fixed.Fixed) bool { return true }

func (p *flatPorts) SpawnMobj(x, y, z fixed.Fixed, kind mobj.MobjKind) *mobj.Actor {
	p.nextID++
	return &mobj.Actor{ID: p.nextID, X: x, Y: y, Z: z, Tics: 35}
}

func (p *flatPorts) SpawnActor(x, y, z fixed.Fixed, kind mobj.Kind) *mobj.Actor {
	arch := mobj.Archetypes[kind]
	p.nextID++
	a := &mobj.Actor{
		ID: p.nextID, Kind: kind,
		X: x, Y: y, Z: z,
		Radius: arch.Radius, Height: arch.Height,
		HP:   arch.SpawnHP,
		Mass: arch.Mass,
	}
	a.Set(mobj.FlagShootable | mobj.FlagSolid)
	p.w.Thinkers.Add(a)
	return a
}

func (p *flatPorts) SpawnMissile(src, dst *mobj.Actor, kind mobj.MissileKind) *mobj.Actor {
	p.nextID++
	angle := fixed.PointToAngle(dst.X-src.X, dst.Y-src.Y)
	speed := mobj.MissileSpeed(kind)
	mo := &mobj.Actor{
		ID: p.nextID, X: src.X, Y: src.Y, Z: src.Z, Angle: angle,
		MomX: fixed.Mul(speed, fixed.Cos(angle)),
		MomY: fixed.Mul(speed, fixed.Sin(angle)),
	}
	p.w.Thinkers.Add(mo)
	return mo
}

func (p *flatPorts) SpawnPuff(x, y, z fixed.Fixed) {}

func (p *flatPorts) RemoveMobj(a *mobj.Actor) { p.w.Thinkers.Remove(a) }

func (p *flatPorts) TeleportMove(a *mobj.Actor, x, y fixed.Fixed) bool {
	a.X, a.Y = x, y
	p.telefrags++
	return true
}

func (p *flatPorts) UnsetThingPosition(a *mobj.Actor) {}
func (p *flatPorts) SetThingPosition(a *mobj.Actor)   {}

func (p *flatPorts) AimLineAttack(actor *mobj.Actor, angle fixed.Angle, rangeUnits fixed.Fixed) fixed.Fixed {
	return 0
}

func (p *flatPorts) LineAttack(actor *mobj.Actor, angle fixed.Angle, rangeUnits, slope fixed.Fixed, damage int) {
	if actor.Target != nil {
		p.DamageMobj(actor.Target, actor, actor, damage)
	}
}

func (p *flatPorts) RadiusAttack(source, owner *mobj.Actor, damage int) {
	if source.Target != nil {
		p.DamageMobj(source.Target, source, owner, damage)
	}
}

func (p *flatPorts) DamageMobj(victim, inflictor, owner *mobj.Actor, damage int) {
	victim.HP -= damage
	if p.w.Events != nil {
		p.w.Events.Add(p.w.GameTic, victim.LogTag(), "damage", "hit", fmt.Sprintf("-%d", damage), float64(damage))
	}
}

func (p *flatPorts) SetMobjState(a *mobj.Actor, state mobj.StateID) { a.State = state }

func (p *flatPorts) SpawnSound(a *mobj.Actor, sound mobj.SoundID) {
	if p.w.Events == nil {
		return
	}
	tag := "--"
	if a != nil {
		tag = a.LogTag()
	}
	p.w.Events.Add(p.w.GameTic, tag, "sound", "play", string(sound), 0)
}

func (p *flatPorts) CheckSides(actor *mobj.Actor, x, y fixed.Fixed) bool { return false }

func (p *flatPorts) CheckSkullHeadroom(a *mobj.Actor) bool { return true }

func (p *flatPorts) EVDoDoor(line *mobj.Line, kind mobj.DoorKind)   {}
func (p *flatPorts) EVDoFloor(line *mobj.Line, kind mobj.FloorKind) {}
func (p *flatPorts) ExitLevel()                                     {}

func (p *flatPorts) LineOpening(line *mobj.Line) fixed.Fixed { return fixed.FromInt(64) }
