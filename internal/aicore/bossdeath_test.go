package aicore

import (
	"testing"

	"github.com/Garsondee/hellspawn-ai/internal/mobj"
)

func TestBossDeathEpisode1Map8LowersFloor(t *testing.T) {
	w, ports := newTestWorld()
	w.Mode = mobj.ModeRegistered
	w.Episode = 1
	w.Map = 8
	w.Players = []mobj.Player{{InGame: true, Health: 100}}

	baron := &mobj.Actor{Kind: mobj.KindBaron}

	BossDeath(w, baron)

	if len(ports.floorCalls) != 1 || ports.floorCalls[0].Tag != 666 {
		t.Fatalf("expected a single EVDoFloor(tag 666), got %+v", ports.floorCalls)
	}
	if ports.exited {
		t.Fatal("episode 1 map 8 should trigger a floor special, not ExitLevel")
	}
}

func TestBossDeathEpisode2Map8CyberdemonLowersFloor(t *testing.T) {
	w, ports := newTestWorld()
	w.Mode = mobj.ModeRegistered
	w.Episode = 2
	w.Map = 8
	w.Players = []mobj.Player{{InGame: true, Health: 100}}

	cyber := &mobj.Actor{Kind: mobj.KindCyberdemon}

	BossDeath(w, cyber)

	if len(ports.floorCalls) != 1 || ports.floorCalls[0].Tag != 666 {
		t.Fatalf("expected a single EVDoFloor(tag 666), got %+v", ports.floorCalls)
	}
	if ports.exited {
		t.Fatal("episode 2 map 8 should trigger a floor special, not ExitLevel")
	}
}

func TestBossDeathEpisode3Map8SpiderMastermindLowersFloor(t *testing.T) {
	w, ports := newTestWorld()
	w.Mode = mobj.ModeRegistered
	w.Episode = 3
	w.Map = 8
	w.Players = []mobj.Player{{InGame: true, Health: 100}}

	spider := &mobj.Actor{Kind: mobj.KindSpiderMastermind}

	BossDeath(w, spider)

	if len(ports.floorCalls) != 1 || ports.floorCalls[0].Tag != 666 {
		t.Fatalf("expected a single EVDoFloor(tag 666), got %+v", ports.floorCalls)
	}
	if ports.exited {
		t.Fatal("episode 3 map 8 should trigger a floor special, not ExitLevel")
	}
}

func TestBossDeathCommercialMap7MancubusLowersFloor666(t *testing.T) {
	w, ports := newTestWorld()
	w.Mode = mobj.ModeCommercial
	w.Map = 7
	w.Players = []mobj.Player{{InGame: true, Health: 100}}

	mancubus := &mobj.Actor{Kind: mobj.KindMancubus}
	BossDeath(w, mancubus)

	if len(ports.floorCalls) != 1 || ports.floorCalls[0].Tag != 666 {
		t.Fatalf("expected EVDoFloor(tag 666) for a mancubus death on MAP07, got %+v", ports.floorCalls)
	}
}

func TestBossDeathCommercialMap7ArachnotronRaisesFloor667(t *testing.T) {
	w, ports := newTestWorld()
	w.Mode = mobj.ModeCommercial
	w.Map = 7
	w.Players = []mobj.Player{{InGame: true, Health: 100}}

	arach := &mobj.Actor{Kind: mobj.KindArachnotron}
	BossDeath(w, arach)

	if len(ports.floorCalls) != 1 || ports.floorCalls[0].Tag != 667 {
		t.Fatalf("expected EVDoFloor(tag 667) for an arachnotron death on MAP07, got %+v", ports.floorCalls)
	}
}

func TestBossDeathWrongMapIsNoop(t *testing.T) {
	w, ports := newTestWorld()
	w.Mode = mobj.ModeRegistered
	w.Episode = 1
	w.Map = 3
	w.Players = []mobj.Player{{InGame: true, Health: 100}}

	baron := &mobj.Actor{Kind: mobj.KindBaron}
	BossDeath(w, baron)

	if len(ports.floorCalls) != 0 || len(ports.doorCalls) != 0 || ports.exited {
		t.Fatal("a boss death on the wrong map should trigger nothing")
	}
}

func TestBossDeathNoopWhenNoPlayersLeftAlive(t *testing.T) {
	w, ports := newTestWorld()
	w.Mode = mobj.ModeRegistered
	w.Episode = 1
	w.Map = 8
	w.Players = []mobj.Player{{InGame: true, Health: 0}}

	baron := &mobj.Actor{Kind: mobj.KindBaron}
	BossDeath(w, baron)

	if len(ports.floorCalls) != 0 {
		t.Fatal("BossDeath should be a no-op once every player is dead")
	}
}

func TestBossDeathNoopWhileSiblingStillAlive(t *testing.T) {
	w, ports := newTestWorld()
	w.Mode = mobj.ModeRegistered
	w.Episode = 1
	w.Map = 8
	w.Players = []mobj.Player{{InGame: true, Health: 100}}

	dying := &mobj.Actor{Kind: mobj.KindBaron, HP: 0}
	sibling := &mobj.Actor{Kind: mobj.KindBaron, HP: 10}
	w.Thinkers.Add(dying)
	w.Thinkers.Add(sibling)

	BossDeath(w, dying)

	if len(ports.floorCalls) != 0 {
		t.Fatal("BossDeath should wait for every baron to be dead before firing")
	}
}

func TestKeenDieOpensDoorOnceAllKeensDead(t *testing.T) {
	w, ports := newTestWorld()
	keen := &mobj.Actor{Kind: mobj.KindKeen, HP: 0}
	w.Thinkers.Add(keen)

	KeenDie(w, keen)

	if len(ports.doorCalls) != 1 || ports.doorCalls[0].Tag != 666 {
		t.Fatalf("expected a single EVDoDoor(tag 666), got %+v", ports.doorCalls)
	}
}

func TestKeenDieWaitsForOtherKeens(t *testing.T) {
	w, ports := newTestWorld()
	dying := &mobj.Actor{Kind: mobj.KindKeen, HP: 0}
	other := &mobj.Actor{Kind: mobj.KindKeen, HP: 10}
	w.Thinkers.Add(dying)
	w.Thinkers.Add(other)

	KeenDie(w, dying)

	if len(ports.doorCalls) != 0 {
		t.Fatal("KeenDie should not open the door while another keen survives")
	}
}
