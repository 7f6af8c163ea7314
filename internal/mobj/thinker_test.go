package mobj

import "testing"

func TestThinkerRingAddRemoveOrder(t *testing.T) {
	r := NewThinkerRing()
	a := &Actor{ID: 1}
	b := &Actor{ID: 2}
	c := &Actor{ID: 3}
	r.Add(a)
	r.Add(b)
	r.Add(c)

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	got := r.Actors()
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("Actors() = %v, want [a,b,c] in insertion order", got)
	}

	r.Remove(b)
	if r.Len() != 2 {
		t.Fatalf("Len() after Remove = %d, want 2", r.Len())
	}
	got = r.Actors()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("Actors() after removing b = %v, want [a,c]", got)
	}

	r.Remove(b)
	if r.Len() != 2 {
		t.Fatalf("Remove on an already-removed actor changed Len() to %d", r.Len())
	}
}

func TestCountKindExcludesSelf(t *testing.T) {
	r := NewThinkerRing()
	a := &Actor{ID: 1, Kind: KindLostSoul}
	b := &Actor{ID: 2, Kind: KindLostSoul}
	c := &Actor{ID: 3, Kind: KindTrooper}
	r.Add(a)
	r.Add(b)
	r.Add(c)

	if got := r.CountKind(KindLostSoul, nil); got != 2 {
		t.Fatalf("CountKind(LostSoul, nil) = %d, want 2", got)
	}
	if got := r.CountKind(KindLostSoul, a); got != 1 {
		t.Fatalf("CountKind(LostSoul, a) = %d, want 1", got)
	}
}

func TestAnyAliveOfKindChecksHP(t *testing.T) {
	r := NewThinkerRing()
	keen1 := &Actor{ID: 1, Kind: KindKeen, HP: 0}
	keen2 := &Actor{ID: 2, Kind: KindKeen, HP: 10}
	r.Add(keen1)
	r.Add(keen2)

	if !r.AnyAliveOfKind(KindKeen, keen1) {
		t.Fatal("AnyAliveOfKind should find keen2 alive")
	}
	if r.AnyAliveOfKind(KindKeen, keen2) {
		t.Fatal("AnyAliveOfKind should not count keen2 when it is the except actor")
	}
	keen2.HP = 0
	if r.AnyAliveOfKind(KindKeen, nil) {
		t.Fatal("AnyAliveOfKind should report false once all keens are dead")
	}
}
