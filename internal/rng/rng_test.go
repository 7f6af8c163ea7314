package rng

import "testing"

func TestDrawAdvancesIndexAndWraps(t *testing.T) {
	var s Stream
	for i := 0; i < tableSize; i++ {
		s.Draw(SiteSee)
	}
	if s.Index() != 0 {
		t.Fatalf("Index() after a full period = %d, want 0", s.Index())
	}
	if len(s.Log()) != tableSize {
		t.Fatalf("Log() length = %d, want %d", len(s.Log()), tableSize)
	}
}

func TestTwoFreshStreamsAgree(t *testing.T) {
	var a, b Stream
	for i := 0; i < 50; i++ {
		va := a.Draw(SiteTryWalk)
		vb := b.Draw(SiteTryWalk)
		if va != vb {
			t.Fatalf("draw %d diverged: %d != %d", i, va, vb)
		}
	}
}

func TestBelowIsExclusive(t *testing.T) {
	var s Stream
	v := s.Draw(SiteSee)
	var s2 Stream
	got := s2.Below(SiteSee, int(v)+1)
	if !got {
		t.Fatalf("Below(%d+1) on a stream that draws %d first should be true", v, v)
	}
	var s3 Stream
	if s3.Below(SiteSee, int(v)) {
		t.Fatalf("Below(%d) on a stream that draws %d first should be false", v, v)
	}
}

func TestCallSiteStringUnknown(t *testing.T) {
	if got := CallSite(-1).String(); got != "unknown" {
		t.Fatalf("CallSite(-1).String() = %q, want unknown", got)
	}
	if got := numCallSites.String(); got != "unknown" {
		t.Fatalf("numCallSites.String() = %q, want unknown", got)
	}
}

func TestLogTagsInCallOrder(t *testing.T) {
	var s Stream
	s.Draw(SiteSee)
	s.Draw(SiteTryWalk)
	log := s.Log()
	if len(log) != 2 || log[0].Site != SiteSee || log[1].Site != SiteTryWalk {
		t.Fatalf("Log() = %+v, want [SiteSee, SiteTryWalk] in order", log)
	}
}
