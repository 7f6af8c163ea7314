// Package direction holds the 8-compass-point movement model shared by
// Move, NewChaseDir, and VileChase: a direction enum, opposite/diagonal
// lookup tables, and the per-direction unit velocity vectors Move scales
// by an archetype's speed.
package direction

import "github.com/Garsondee/hellspawn-ai/internal/fixed"

// Dir is one of the 8 compass directions, or the sentinel NoDir.
type Dir int

const (
	East Dir = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
	NoDir
	numDirs = NoDir
)

func (d Dir) String() string {
	switch d {
	case East:
		return "east"
	case NorthEast:
		return "northeast"
	case North:
		return "north"
	case NorthWest:
		return "northwest"
	case West:
		return "west"
	case SouthWest:
		return "southwest"
	case South:
		return "south"
	case SouthEast:
		return "southeast"
	case NoDir:
		return "nodir"
	default:
		return "invalid"
	}
}

// Valid reports whether d is one of the 8 compass directions (NoDir is
// excluded — callers that need "NoDir or a real direction" check that
// separately, since Move treats an out-of-range value as a caller bug).
func (d Dir) Valid() bool { return d >= East && d < numDirs }

// opposite maps each direction (and NoDir) to its 180° reverse.
var opposite = [...]Dir{
	East:      West,
	NorthEast: SouthWest,
	North:     South,
	NorthWest: SouthEast,
	West:      East,
	SouthWest: NorthEast,
	South:     North,
	SouthEast: NorthWest,
	NoDir:     NoDir,
}

// Opposite returns the turnaround direction of d.
func Opposite(d Dir) Dir { return opposite[d] }

// diags maps the sign pattern of (dy<0, dx>0) to the matching diagonal,
// indexed as ((dy<0)<<1)|(dx>0) per the original P_NewChaseDir lookup.
var diags = [4]Dir{NorthWest, NorthEast, SouthWest, SouthEast}

// Diagonal returns the diagonal direction combining the signs of dx, dy.
func Diagonal(dx, dy fixed.Fixed) Dir {
	idx := 0
	if dy < 0 {
		idx |= 2
	}
	if dx > 0 {
		idx |= 1
	}
	return diags[idx]
}

// speedUnit47k is the off-axis component the original engine used for
// diagonal unit vectors: 47000/65536 ≈ 0.7172, not exactly 1/√2.
const speedUnit47k fixed.Fixed = 47000

// xSpeed/ySpeed are the unit velocity vectors per direction, scaled by an
// archetype's speed in Move. Values and ordering match xspeed[]/yspeed[]
// in the original engine exactly, including the non-normalized diagonal
// magnitude.
var xSpeed = [8]fixed.Fixed{
	East:      fixed.FracUnit,
	NorthEast: speedUnit47k,
	North:     0,
	NorthWest: -speedUnit47k,
	West:      -fixed.FracUnit,
	SouthWest: -speedUnit47k,
	South:     0,
	SouthEast: speedUnit47k,
}

var ySpeed = [8]fixed.Fixed{
	East:      0,
	NorthEast: speedUnit47k,
	North:     fixed.FracUnit,
	NorthWest: speedUnit47k,
	West:      0,
	SouthWest: -speedUnit47k,
	South:     -fixed.FracUnit,
	SouthEast: -speedUnit47k,
}

// Velocity returns the unit (x, y) vector for a compass direction. Callers
// scale by an archetype's speed. d must be a real direction, not NoDir.
func Velocity(d Dir) (fixed.Fixed, fixed.Fixed) {
	return xSpeed[d], ySpeed[d]
}

// All enumerates the 8 real compass directions counter-clockwise from East, for
// the exhaustive sweep NewChaseDir falls back to.
func All() []Dir {
	return []Dir{East, NorthEast, North, NorthWest, West, SouthWest, South, SouthEast}
}

// Octant returns the top 3 bits of a as a Dir, the same facing-alignment
// encoding aicore.Chase compares against movedir when it rotates an
// actor's angle. Chase does not call Octant: it masks the angle inline,
// in an expression that reads as if bit-masked during subtraction, an
// idiom preserved verbatim there.
func Octant(a fixed.Angle) Dir {
	return Dir(uint32(a) >> 29)
}
