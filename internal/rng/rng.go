// Package rng provides the AI core's single shared pseudo-random stream.
// Every draw is tagged with a call-site id so a replay can be audited
// call-by-call, but the tag does not affect which byte comes back — like
// the engine this core descends from, there is exactly one table and one
// index, shared by every caller. Determinism depends on that: two fresh
// Streams fed the same ordered sequence of call-site ids always produce
// the same bytes.
package rng

// CallSite identifies where in the AI core a PRandom draw originated —
// one id per call-site, purely for bookkeeping and replay auditing. It
// has no effect on the byte returned.
type CallSite int

const (
	SiteMissRange CallSite = iota
	SiteTryWalk
	SiteNewChase
	SiteNewChaseDir
	SiteSee
	SiteFaceTarget
	SitePosAttack
	SiteSPosAttack
	SiteCPosAttack
	SiteCPosRefire
	SiteSpidRefire
	SiteTroopAttack
	SiteSargAttack
	SiteHeadAttack
	SiteBruisAttack
	SiteSkelFist
	SiteTracer
	SiteScream
	SiteBrainScream
	SiteBrainExplode
	SiteSpawnFly
	numCallSites
)

var siteNames = [numCallSites]string{
	SiteMissRange:    "missrange",
	SiteTryWalk:      "trywalk",
	SiteNewChase:     "newchase",
	SiteNewChaseDir:  "newchasedir",
	SiteSee:          "see",
	SiteFaceTarget:   "facetarget",
	SitePosAttack:    "posattack",
	SiteSPosAttack:   "sposattack",
	SiteCPosAttack:   "cposattack",
	SiteCPosRefire:   "cposrefire",
	SiteSpidRefire:   "spidrefire",
	SiteTroopAttack:  "troopattack",
	SiteSargAttack:   "sargattack",
	SiteHeadAttack:   "headattack",
	SiteBruisAttack:  "bruisattack",
	SiteSkelFist:     "skelfist",
	SiteTracer:       "tracer",
	SiteScream:       "scream",
	SiteBrainScream:  "brainscream",
	SiteBrainExplode: "brainexp",
	SiteSpawnFly:     "spawnfly",
}

// String names the call site, for event-log entries.
func (c CallSite) String() string {
	if c < 0 || c >= numCallSites {
		return "unknown"
	}
	return siteNames[c]
}

// tableSize matches the classic 256-entry rndtable: a full period keeps
// the byte stream's statistical shape stable across very long replays
// without needing a seedable generic PRNG.
const tableSize = 256

// table is the fixed byte sequence every Stream draws from. Its exact
// values do not matter for correctness — nothing depends on a specific
// byte appearing at a specific table slot — only that it is fixed at
// compile time, so two Streams built from a fresh zero index always
// agree.
var table [tableSize]byte

func init() {
	// A simple, deterministic byte sequence: reproducible without
	// embedding a large literal table, and satisfies the only invariant
	// that matters — that it never changes at runtime. This LCG repeats
	// every 64 steps, so the table holds 64 distinct bytes, four times.
	x := byte(1)
	for i := range table {
		x = x*167 + 1 // odd multiplier; period 64 modulo 256
		table[i] = x
	}
}

// Consumption records one Draw call, in order, for replay auditing.
type Consumption struct {
	Site  CallSite
	Value uint8
}

// Stream is a deterministic byte source plus a consumption log. The zero
// value is ready to use and starts at index 0, matching a fresh level's
// validcount/rndindex reset.
type Stream struct {
	index int
	log   []Consumption
}

// Draw returns the next byte in the stream, advancing it, and appends a
// Consumption record tagged with site.
func (s *Stream) Draw(site CallSite) uint8 {
	v := table[s.index]
	s.index = (s.index + 1) % tableSize
	s.log = append(s.log, Consumption{Site: site, Value: v})
	return v
}

// Bool draws a byte and returns whether its low bit is set — the
// "P_Random(x)&1" idiom used to pick a sweep direction.
func (s *Stream) Bool(site CallSite) bool {
	return s.Draw(site)&1 != 0
}

// Below draws a byte and reports whether it is strictly less than n —
// the "P_Random(x) < n" stochastic-gate idiom used throughout the action
// handlers (missile-range falloff, refire chance, active-sound chance).
func (s *Stream) Below(site CallSite, n int) bool {
	return int(s.Draw(site)) < n
}

// Log returns the full ordered consumption history, for scenario-test
// assertions and replay diffing. Callers must not mutate the result.
func (s *Stream) Log() []Consumption { return s.log }

// Index reports the current table position, for tests that want to
// assert the stream advanced by exactly N draws.
func (s *Stream) Index() int { return s.index }
