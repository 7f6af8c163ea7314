package aicore

import (
	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
)

// LookForPlayers scans players round-robin starting at actor's last look
// index, honoring the 180°/360° perception cone and the monsters-remember
// last-enemy fallback. The scan index persists on the actor between
// calls, so a monster that fails to spot anyone this tick resumes from
// where it left off next tick rather than always restarting at player 0.
func LookForPlayers(w *mobj.World, actor *mobj.Actor, allAround bool) bool {
	n := len(w.Players)
	if n == 0 {
		return tryLastEnemy(w, actor)
	}

	limit := 2
	if w.MonstersRemember {
		limit = n
	}

	idx := ((actor.LastLook % n) + n) % n
	stop := ((idx-1)%n + n) % n
	c := 0

	for {
		if !w.Players[idx].InGame {
			idx = (idx + 1) % n
			continue
		}

		c++
		if c == limit || idx == stop {
			actor.LastLook = idx
			break
		}

		player := w.Players[idx]
		if player.Health > 0 && player.Mobj != nil && w.Ports.CheckSight(actor, player.Mobj) {
			if allAround || !behindAndFar(actor, player.Mobj) {
				actor.Target = player.Mobj
				actor.LastLook = idx
				return true
			}
		}

		idx = (idx + 1) % n
	}

	return tryLastEnemy(w, actor)
}

// behindAndFar reports whether target lies in actor's rear half-plane and
// is farther away than melee range — the one case LookForPlayers skips
// when scanning only the front arc.
func behindAndFar(actor, target *mobj.Actor) bool {
	an := fixed.PointToAngle(target.X-actor.X, target.Y-actor.Y) - actor.Angle
	if an > fixed.Ang90 && an < fixed.Ang270 {
		dist := fixed.AproxDistance(target.X-actor.X, target.Y-actor.Y)
		return dist > meleeRange
	}
	return false
}

// tryLastEnemy promotes actor.LastEnemy to Target if monsters-remember is
// on and the memory slot is still alive. The promotion is one-shot: the
// slot is cleared when it is promoted.
func tryLastEnemy(w *mobj.World, actor *mobj.Actor) bool {
	if w.MonstersRemember && actor.LastEnemy != nil && actor.LastEnemy.HP > 0 {
		actor.Target = actor.LastEnemy
		actor.LastEnemy = nil
		return true
	}
	return false
}
