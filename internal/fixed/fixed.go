// Package fixed implements the 16.16 signed fixed-point arithmetic and the
// binary-angle-measurement (BAM) angle type that the AI core's motion and
// sight math is built on. Everything downstream of this package must stay
// integer-exact: a recorded play session is replayed by re-running the AI
// against the same tick inputs, and float64 rounding would desync it.
package fixed

import "math"

// FracBits is the number of fractional bits in a Fixed value.
const FracBits = 16

// FracUnit is fixed-point 1.0.
const FracUnit Fixed = 1 << FracBits

// Fixed is a signed 16.16 fixed-point number.
type Fixed int32

// FromInt converts a plain integer to fixed-point.
func FromInt(n int) Fixed { return Fixed(n) << FracBits }

// ToInt truncates a fixed-point value to a plain integer.
func (f Fixed) ToInt() int { return int(f) >> FracBits }

// FromFloat converts a float64 to fixed-point, for test fixtures and
// config loading only — never in the per-tick hot path.
func FromFloat(v float64) Fixed { return Fixed(v * float64(FracUnit)) }

// ToFloat widens a fixed-point value to float64, for logging/debug output.
func (f Fixed) ToFloat() float64 { return float64(f) / float64(FracUnit) }

// Mul multiplies two fixed-point values like the classic FixedMul: widen
// to int64 to avoid overflow, then arithmetic-shift back down, which
// rounds toward negative infinity.
func Mul(a, b Fixed) Fixed {
	return Fixed((int64(a) * int64(b)) >> FracBits)
}

// Div divides a by b in fixed-point. Division by zero is a programmer
// error in the original engine (it traps); callers in this codebase are
// expected to have already excluded b == 0.
func Div(a, b Fixed) Fixed {
	return Fixed((int64(a) << FracBits) / int64(b))
}

// Abs returns the absolute value.
func Abs(f Fixed) Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Angle is a binary angle measurement: a uint32 fraction of a full turn.
// 0 points east, increasing counter-clockwise, wrapping at 1<<32.
type Angle uint32

// Angle constants matching the classic ANG* values.
const (
	Ang0   Angle = 0
	Ang45  Angle = 0x20000000
	Ang90  Angle = 0x40000000
	Ang135 Angle = 0x60000000
	Ang180 Angle = 0x80000000
	Ang270 Angle = 0xC0000000
)

// fineBits/fineAngles/fineMask mirror the engine's lookup-table shift: only
// the most significant bits of an Angle select a table slot.
const (
	fineBits   = 13
	fineAngles = 1 << fineBits
	fineMask   = fineAngles - 1
	toFineShift = 32 - fineBits
)

var (
	fineSine   [fineAngles]Fixed
	fineCosine [fineAngles]Fixed
)

func init() {
	for i := 0; i < fineAngles; i++ {
		rad := (float64(i) / fineAngles) * 2 * math.Pi
		fineSine[i] = FromFloat(math.Sin(rad))
		fineCosine[i] = FromFloat(math.Cos(rad))
	}
}

// fineIndex maps a full-circle Angle down to a fine-table slot.
func fineIndex(a Angle) int {
	return int((uint32(a) >> toFineShift) & fineMask)
}

// Sin returns the fixed-point sine of a, via the precomputed table.
func Sin(a Angle) Fixed { return fineSine[fineIndex(a)] }

// Cos returns the fixed-point cosine of a, via the precomputed table.
func Cos(a Angle) Fixed { return fineCosine[fineIndex(a)] }

// PointToAngle returns the Angle from the origin toward (dx, dy). It is
// computed with float64 math.Atan2 on every call, not with an integer
// lookup table.
func PointToAngle(dx, dy Fixed) Angle {
	rad := math.Atan2(dy.ToFloat(), dx.ToFloat())
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return Angle(uint32((rad / (2 * math.Pi)) * 4294967296.0))
}

// Diff returns the signed shortest angular difference b-a, in [-Ang180, Ang180).
func Diff(a, b Angle) int32 {
	return int32(b - a)
}

// AproxDistance approximates sqrt(dx²+dy²) the way the original engine
// does: max(|dx|,|dy|) + min(|dx|,|dy|)/2. It is deliberately not a true
// Euclidean distance — callers rely on its exact bias (§6).
func AproxDistance(dx, dy Fixed) Fixed {
	dx = Abs(dx)
	dy = Abs(dy)
	if dx < dy {
		return dy + dx/2
	}
	return dx + dy/2
}
