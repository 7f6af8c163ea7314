package mobj

import "github.com/Garsondee/hellspawn-ai/internal/fixed"

// LineFlag marks boundary-line attributes relevant to the AI core.
type LineFlag uint32

const (
	LineTwoSided LineFlag = 1 << iota
	LineSoundBlock
)

// Line is a boundary between two sectors (or a one-sided wall, in which
// case Back is nil). Tag identifies it for the line-special dispatcher.
type Line struct {
	Flags      LineFlag
	Tag        int
	Front, Back *Sector

	// Opening is not read by the AI core: NoiseAlert asks
	// Ports.LineOpening for a line's vertical gap.
	Opening fixed.Fixed
}

// TwoSided reports whether the line has sectors on both sides.
func (l *Line) TwoSided() bool { return l.Flags&LineTwoSided != 0 }

// SoundBlocking reports whether the line absorbs one unit of noise
// propagation.
func (l *Line) SoundBlocking() bool { return l.Flags&LineSoundBlock != 0 }

// Other returns the sector on the far side of the line from sec.
func (l *Line) Other(sec *Sector) *Sector {
	if l.Front == sec {
		return l.Back
	}
	return l.Front
}

// Sector is a floor/ceiling region bounded by Lines.
type Sector struct {
	ID    int
	Lines []*Line

	// Scratch fields, mutated only from the simulation thread within one
	// tick.
	ValidCount     int
	SoundTraversed int
	SoundTarget    *Actor
}
