package aicore

import "github.com/Garsondee/hellspawn-ai/internal/mobj"

// playerLeftAlive reports whether any player is still alive, the
// precondition BossDeath checks before its survivor scan: a level-ending
// trigger never fires for a party that has already lost. KeenDie does not
// check it.
func playerLeftAlive(w *mobj.World) bool {
	for _, p := range w.Players {
		if p.InGame && p.Health > 0 {
			return true
		}
	}
	return false
}

// KeenDie is Doom II map 32's special case: once every Keen statue on
// the level is dead, tag 666 opens a door.
func KeenDie(w *mobj.World, actor *mobj.Actor) {
	Fall(w, actor)

	if w.Thinkers.AnyAliveOfKind(mobj.KindKeen, actor) {
		return
	}

	w.Ports.EVDoDoor(&mobj.Line{Tag: 666}, mobj.DoorOpen)
	if w.Events != nil {
		w.Events.Add(w.GameTic, actor.LogTag(), "boss", "keen-door", "tag666", 0)
	}
}

// BossDeath checks whether actor's death is the one this level has been
// waiting for, and if so fires the matching floor/door special (or, for
// the generic "any boss on map 8" case, ends the level outright). It is
// a no-op for any death that doesn't match the level's configured
// trigger, or while another actor of the same kind is still alive.
func BossDeath(w *mobj.World, actor *mobj.Actor) {
	switch w.Mode {
	case mobj.ModeCommercial:
		if w.Map != 7 {
			return
		}
		if actor.Kind != mobj.KindMancubus && actor.Kind != mobj.KindArachnotron {
			return
		}
	default:
		switch w.Episode {
		case 1:
			if w.Map != 8 || actor.Kind != mobj.KindBaron {
				return
			}
		case 2:
			if w.Map != 8 || actor.Kind != mobj.KindCyberdemon {
				return
			}
		case 3:
			if w.Map != 8 || actor.Kind != mobj.KindSpiderMastermind {
				return
			}
		case 4:
			switch w.Map {
			case 6:
				if actor.Kind != mobj.KindCyberdemon {
					return
				}
			case 8:
				if actor.Kind != mobj.KindSpiderMastermind {
					return
				}
			default:
				return
			}
		default:
			if w.Map != 8 {
				return
			}
		}
	}

	if !playerLeftAlive(w) {
		return
	}

	if w.Thinkers.AnyAliveOfKind(actor.Kind, actor) {
		return
	}

	if w.Mode == mobj.ModeCommercial {
		if w.Map == 7 {
			switch actor.Kind {
			case mobj.KindMancubus:
				w.Ports.EVDoFloor(&mobj.Line{Tag: 666}, mobj.FloorLowerToLowest)
				bossDeathLog(w, actor, "floor666")
				return
			case mobj.KindArachnotron:
				w.Ports.EVDoFloor(&mobj.Line{Tag: 667}, mobj.FloorRaiseToTexture)
				bossDeathLog(w, actor, "floor667")
				return
			}
		}
	} else {
		switch w.Episode {
		case 1:
			w.Ports.EVDoFloor(&mobj.Line{Tag: 666}, mobj.FloorLowerToLowest)
			bossDeathLog(w, actor, "floor666")
			return
		case 2:
			w.Ports.EVDoFloor(&mobj.Line{Tag: 666}, mobj.FloorLowerToLowest)
			bossDeathLog(w, actor, "floor666")
			return
		case 3:
			w.Ports.EVDoFloor(&mobj.Line{Tag: 666}, mobj.FloorLowerToLowest)
			bossDeathLog(w, actor, "floor666")
			return
		case 4:
			switch w.Map {
			case 6:
				w.Ports.EVDoDoor(&mobj.Line{Tag: 666}, mobj.DoorBlazeOpen)
				bossDeathLog(w, actor, "door666-blaze")
				return
			case 8:
				w.Ports.EVDoFloor(&mobj.Line{Tag: 666}, mobj.FloorLowerToLowest)
				bossDeathLog(w, actor, "floor666")
				return
			}
		}
	}

	w.Ports.ExitLevel()
	bossDeathLog(w, actor, "exit-level")
}

func bossDeathLog(w *mobj.World, actor *mobj.Actor, trigger string) {
	if w.Events != nil {
		w.Events.Add(w.GameTic, actor.LogTag(), "boss", "death-trigger", trigger, 0)
	}
}
