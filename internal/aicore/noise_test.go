package aicore

import (
	"testing"

	"github.com/Garsondee/hellspawn-ai/internal/mobj"
)

func newTestWorld() (*mobj.World, *fakePorts) {
	ports := newFakePorts()
	w := mobj.NewWorld(ports)
	ports.bind(w)
	return w, ports
}

func TestNoiseAlertCrossesOpenTwoRoomLine(t *testing.T) {
	w, _ := newTestWorld()

	secA := &mobj.Sector{ID: 0}
	secB := &mobj.Sector{ID: 1}
	door := &mobj.Line{Flags: mobj.LineTwoSided, Front: secA, Back: secB}
	secA.Lines = []*mobj.Line{door}
	secB.Lines = []*mobj.Line{door}

	source := &mobj.Actor{ID: 1, Kind: mobj.KindTrooper}
	emitter := &mobj.Actor{ID: 2, Kind: mobj.KindTrooper}

	NoiseAlert(w, source, emitter, secA)

	if secA.SoundTarget != source || secB.SoundTarget != source {
		t.Fatalf("both sectors should hear the source, got secA=%v secB=%v", secA.SoundTarget, secB.SoundTarget)
	}
}

func TestNoiseAlertStopsAtSecondSoundBlockingLine(t *testing.T) {
	w, _ := newTestWorld()

	secA := &mobj.Sector{ID: 0}
	secB := &mobj.Sector{ID: 1}
	secC := &mobj.Sector{ID: 2}

	l1 := &mobj.Line{Flags: mobj.LineTwoSided | mobj.LineSoundBlock, Front: secA, Back: secB}
	l2 := &mobj.Line{Flags: mobj.LineTwoSided | mobj.LineSoundBlock, Front: secB, Back: secC}
	secA.Lines = []*mobj.Line{l1}
	secB.Lines = []*mobj.Line{l1, l2}
	secC.Lines = []*mobj.Line{l2}

	source := &mobj.Actor{ID: 1, Kind: mobj.KindTrooper}
	emitter := &mobj.Actor{ID: 2, Kind: mobj.KindTrooper}

	NoiseAlert(w, source, emitter, secA)

	if secB.SoundTarget != source {
		t.Fatal("one sound-blocking line should still attenuate through, not stop propagation")
	}
	if secC.SoundTarget != nil {
		t.Fatal("a second sound-blocking line in the same path should stop propagation")
	}
}

func TestNoiseAlertClosedLineBlocks(t *testing.T) {
	w, ports := newTestWorld()
	ports.lineOpen = 0

	secA := &mobj.Sector{ID: 0}
	secB := &mobj.Sector{ID: 1}
	door := &mobj.Line{Flags: mobj.LineTwoSided, Front: secA, Back: secB}
	secA.Lines = []*mobj.Line{door}
	secB.Lines = []*mobj.Line{door}

	source := &mobj.Actor{ID: 1, Kind: mobj.KindTrooper}
	emitter := &mobj.Actor{ID: 2, Kind: mobj.KindTrooper}

	NoiseAlert(w, source, emitter, secA)

	if secB.SoundTarget != nil {
		t.Fatal("a closed door line should not propagate noise")
	}
}
