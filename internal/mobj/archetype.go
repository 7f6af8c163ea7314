package mobj

import "github.com/Garsondee/hellspawn-ai/internal/fixed"

// Kind enumerates the archetypes the AI core drives. Behavior
// differences are held in a table keyed by this enum rather than forked
// at the type level.
type Kind int

const (
	KindTrooper Kind = iota
	KindSergeant
	KindChaingunner
	KindDemon
	KindShadow
	KindImp
	KindCacodemon
	KindLostSoul
	KindPainElemental
	KindBaron
	KindHellKnight
	KindRevenant
	KindMancubus
	KindArachnotron
	KindArchvile
	KindSpiderMastermind
	KindCyberdemon
	KindKeen
	KindBossBrain
	KindBossTarget
	numKinds
)

func (k Kind) String() string {
	names := [numKinds]string{
		KindTrooper: "trooper", KindSergeant: "sergeant", KindChaingunner: "chaingunner",
		KindDemon: "demon", KindShadow: "shadow", KindImp: "imp", KindCacodemon: "cacodemon",
		KindLostSoul: "lostsoul", KindPainElemental: "painelemental", KindBaron: "baron",
		KindHellKnight: "hellknight", KindRevenant: "revenant", KindMancubus: "mancubus",
		KindArachnotron: "arachnotron", KindArchvile: "archvile",
		KindSpiderMastermind: "spidermastermind", KindCyberdemon: "cyberdemon",
		KindKeen: "keen", KindBossBrain: "bossbrain", KindBossTarget: "bosstarget",
	}
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return names[k]
}

// KindByName resolves a kind's lowercase name back to its enum value, for
// config overrides keyed by name in a YAML file rather than by ordinal.
func KindByName(name string) (Kind, bool) {
	for k := Kind(0); k < numKinds; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// SoundID identifies a sound effect by name rather than by a numeric id
// table — the archetype table below and the action handlers both name
// sounds directly, so a symbolic type is clearer than magic numbers.
type SoundID string

// Variant-family sentinels: the see/death sound tables collapse several
// concrete sounds into "pick one of N" families.
const (
	SoundNone SoundID = ""

	SoundPosSight1 SoundID = "posit1"
	SoundBgSight1  SoundID = "bgsit1"

	SoundPodDeath1 SoundID = "podth1"
	SoundBgDeath1  SoundID = "bgdth1"
)

// StateID names an animation-state the dispatcher may transition an actor
// to. SetMobjState itself is external; this core only ever selects an
// id. S_NULL means "self-remove on entry".
type StateID string

const StateNull StateID = "S_NULL"

// Archetype is the immutable descriptor shared by every actor of one Kind.
type Archetype struct {
	Radius, Height fixed.Fixed
	Speed          fixed.Fixed // map units per tick, already in fixed-point
	Mass           int
	SpawnHP        int

	SeeSound     SoundID
	AttackSound  SoundID
	PainSound    SoundID
	DeathSound   SoundID
	ActiveSound  SoundID

	SpawnState  StateID // idle animation Chase falls back to on a lost target
	SeeState    StateID
	MeleeState  StateID // "" or StateNull means no melee capability
	MissileState StateID // "" or StateNull means no missile capability
	PainState   StateID
	RaiseState  StateID // StateNull means "cannot be resurrected"

	FloatCapable bool
}

// HasMelee reports whether the archetype has a melee attack at all —
// Chase and CheckMissileRange's "no melee state" branch both key off this.
func (a Archetype) HasMelee() bool { return a.MeleeState != "" && a.MeleeState != StateNull }

// HasMissile reports whether the archetype has a missile attack at all.
func (a Archetype) HasMissile() bool { return a.MissileState != "" && a.MissileState != StateNull }

// CanRaise reports whether a corpse of this archetype has a designated
// revival animation — VileChase's resurrection scan requires one; a
// corpse with no raise state is never a resurrection candidate.
func (a Archetype) CanRaise() bool { return a.RaiseState != "" && a.RaiseState != StateNull }

// Archetypes is the default, compile-time archetype table. internal/config
// can load a YAML override of the same shape at startup.
var Archetypes = map[Kind]Archetype{
	KindTrooper: {
		Radius: fixed.FromInt(20), Height: fixed.FromInt(56), Speed: fixed.FromInt(8),
		Mass: 100, SpawnHP: 20,
		SeeSound: SoundPosSight1, AttackSound: "pistol", PainSound: "popain", DeathSound: SoundPodDeath1,
		ActiveSound: "posact", SpawnState: "S_POSS_STND", SeeState: "S_POSS_RUN1", MeleeState: StateNull, MissileState: "S_POSS_ATK1",
		PainState: "S_POSS_PAIN", RaiseState: "S_POSS_RAISE1",
	},
	KindSergeant: {
		Radius: fixed.FromInt(20), Height: fixed.FromInt(56), Speed: fixed.FromInt(8),
		Mass: 100, SpawnHP: 30,
		SeeSound: SoundPosSight1, AttackSound: "shotgn", PainSound: "popain", DeathSound: SoundPodDeath1,
		ActiveSound: "posact", SpawnState: "S_SPOS_STND", SeeState: "S_SPOS_RUN1", MeleeState: StateNull, MissileState: "S_SPOS_ATK1",
		PainState: "S_SPOS_PAIN", RaiseState: "S_SPOS_RAISE1",
	},
	KindChaingunner: {
		Radius: fixed.FromInt(20), Height: fixed.FromInt(56), Speed: fixed.FromInt(8),
		Mass: 100, SpawnHP: 70,
		SeeSound: "cposit", AttackSound: "shotgn", PainSound: "popain", DeathSound: "cpodth",
		ActiveSound: "posact", SpawnState: "S_CPOS_STND", SeeState: "S_CPOS_RUN1", MeleeState: StateNull, MissileState: "S_CPOS_ATK1",
		PainState: "S_CPOS_PAIN", RaiseState: "S_CPOS_RAISE1",
	},
	KindDemon: {
		Radius: fixed.FromInt(30), Height: fixed.FromInt(56), Speed: fixed.FromInt(10),
		Mass: 400, SpawnHP: 150,
		SeeSound: "sgtsit", AttackSound: SoundNone, PainSound: "dmpain", DeathSound: "dmdth",
		ActiveSound: "dmact", SpawnState: "S_SARG_STND", SeeState: "S_SARG_RUN1", MeleeState: "S_SARG_ATK1", MissileState: StateNull,
		PainState: "S_SARG_PAIN", RaiseState: StateNull,
	},
	KindShadow: {
		Radius: fixed.FromInt(30), Height: fixed.FromInt(56), Speed: fixed.FromInt(10),
		Mass: 400, SpawnHP: 150,
		SeeSound: "sgtsit", AttackSound: SoundNone, PainSound: "dmpain", DeathSound: "dmdth",
		ActiveSound: "dmact", SpawnState: "S_SARG_STND", SeeState: "S_SARG_RUN1", MeleeState: "S_SARG_ATK1", MissileState: StateNull,
		PainState: "S_SARG_PAIN", RaiseState: StateNull,
	},
	KindImp: {
		Radius: fixed.FromInt(20), Height: fixed.FromInt(56), Speed: fixed.FromInt(8),
		Mass: 100, SpawnHP: 60,
		SeeSound: "bgsit1", AttackSound: SoundNone, PainSound: "popain", DeathSound: SoundBgDeath1,
		ActiveSound: "bgact", SpawnState: "S_TROO_STND", SeeState: "S_TROO_RUN1", MeleeState: "S_TROO_ATK1", MissileState: "S_TROO_ATK1",
		PainState: "S_TROO_PAIN", RaiseState: "S_TROO_RAISE1",
	},
	KindCacodemon: {
		Radius: fixed.FromInt(31), Height: fixed.FromInt(56), Speed: fixed.FromInt(8),
		Mass: 400, SpawnHP: 400,
		SeeSound: "cacsit", AttackSound: SoundNone, PainSound: "dmpain", DeathSound: "cacdth",
		ActiveSound: SoundNone, SpawnState: "S_HEAD_STND", SeeState: "S_HEAD_RUN1", MeleeState: "S_HEAD_ATK1", MissileState: "S_HEAD_ATK1",
		PainState: "S_HEAD_PAIN", RaiseState: StateNull, FloatCapable: true,
	},
	KindLostSoul: {
		Radius: fixed.FromInt(16), Height: fixed.FromInt(56), Speed: 0,
		Mass: 50, SpawnHP: 100,
		SeeSound: SoundNone, AttackSound: "sklatk", PainSound: "dmpain", DeathSound: SoundNone,
		ActiveSound: SoundNone, SpawnState: "S_SKULL_STND", SeeState: "S_SKULL_RUN1", MeleeState: "S_SKULL_ATK1", MissileState: StateNull,
		PainState: "S_SKULL_PAIN", RaiseState: StateNull, FloatCapable: true,
	},
	KindPainElemental: {
		Radius: fixed.FromInt(31), Height: fixed.FromInt(56), Speed: fixed.FromInt(8),
		Mass: 400, SpawnHP: 400,
		SeeSound: "pesit", AttackSound: SoundNone, PainSound: "pepain", DeathSound: "pedth",
		ActiveSound: SoundNone, SpawnState: "S_PAIN_STND", SeeState: "S_PAIN_RUN1", MeleeState: StateNull, MissileState: "S_PAIN_ATK1",
		PainState: "S_PAIN_PAIN", RaiseState: StateNull, FloatCapable: true,
	},
	KindBaron: {
		Radius: fixed.FromInt(24), Height: fixed.FromInt(64), Speed: fixed.FromInt(8),
		Mass: 1000, SpawnHP: 1000,
		SeeSound: "brssit", AttackSound: SoundNone, PainSound: "dmpain", DeathSound: "brsdth",
		ActiveSound: SoundNone, SpawnState: "S_BOSS_STND", SeeState: "S_BOSS_RUN1", MeleeState: "S_BOSS_ATK1", MissileState: "S_BOSS_ATK1",
		PainState: "S_BOSS_PAIN", RaiseState: StateNull,
	},
	KindHellKnight: {
		Radius: fixed.FromInt(24), Height: fixed.FromInt(64), Speed: fixed.FromInt(8),
		Mass: 1000, SpawnHP: 500,
		SeeSound: "kntsit", AttackSound: SoundNone, PainSound: "dmpain", DeathSound: "kntdth",
		ActiveSound: SoundNone, SpawnState: "S_BOS2_STND", SeeState: "S_BOS2_RUN1", MeleeState: "S_BOS2_ATK1", MissileState: "S_BOS2_ATK1",
		PainState: "S_BOS2_PAIN", RaiseState: StateNull,
	},
	KindRevenant: {
		Radius: fixed.FromInt(20), Height: fixed.FromInt(64), Speed: fixed.FromInt(10),
		Mass: 500, SpawnHP: 300,
		SeeSound: "skesit", AttackSound: SoundNone, PainSound: "popain", DeathSound: "skedth",
		ActiveSound: SoundNone, SpawnState: "S_SKEL_STND", SeeState: "S_SKEL_RUN1", MeleeState: "S_SKEL_FIST1", MissileState: "S_SKEL_MISS1",
		PainState: "S_SKEL_PAIN", RaiseState: "S_SKEL_RAISE1",
	},
	KindMancubus: {
		Radius: fixed.FromInt(48), Height: fixed.FromInt(64), Speed: fixed.FromInt(5),
		Mass: 1000, SpawnHP: 600,
		SeeSound: "mansit", AttackSound: SoundNone, PainSound: "mnpain", DeathSound: "mandth",
		ActiveSound: SoundNone, SpawnState: "S_FATT_STND", SeeState: "S_FATT_RUN1", MeleeState: StateNull, MissileState: "S_FATT_ATK1",
		PainState: "S_FATT_PAIN", RaiseState: StateNull,
	},
	KindArachnotron: {
		Radius: fixed.FromInt(64), Height: fixed.FromInt(64), Speed: fixed.FromInt(12),
		Mass: 600, SpawnHP: 500,
		SeeSound: "bspsit", AttackSound: SoundNone, PainSound: "dmpain", DeathSound: "bspdth",
		ActiveSound: "bspact", SpawnState: "S_BSPI_STND", SeeState: "S_BSPI_RUN1", MeleeState: StateNull, MissileState: "S_BSPI_ATK1",
		PainState: "S_BSPI_PAIN", RaiseState: StateNull,
	},
	KindArchvile: {
		Radius: fixed.FromInt(20), Height: fixed.FromInt(56), Speed: fixed.FromInt(15),
		Mass: 500, SpawnHP: 700,
		SeeSound: "vilsit", AttackSound: "vilatk", PainSound: "vipain", DeathSound: "vildth",
		ActiveSound: SoundNone, SpawnState: "S_VILE_STND", SeeState: "S_VILE_RUN1", MeleeState: StateNull, MissileState: "S_VILE_ATK1",
		PainState: "S_VILE_PAIN", RaiseState: StateNull,
	},
	KindSpiderMastermind: {
		Radius: fixed.FromInt(128), Height: fixed.FromInt(100), Speed: fixed.FromInt(12),
		Mass: 1000, SpawnHP: 3000,
		SeeSound: "spisit", AttackSound: "shotgn", PainSound: "dmpain", DeathSound: "spidth",
		ActiveSound: SoundNone, SpawnState: "S_SPID_STND", SeeState: "S_SPID_RUN1", MeleeState: StateNull, MissileState: "S_SPID_ATK1",
		PainState: "S_SPID_PAIN", RaiseState: StateNull,
	},
	KindCyberdemon: {
		Radius: fixed.FromInt(40), Height: fixed.FromInt(110), Speed: fixed.FromInt(16),
		Mass: 1000, SpawnHP: 4000,
		SeeSound: "cybsit", AttackSound: SoundNone, PainSound: "dmpain", DeathSound: "cybdth",
		ActiveSound: "hoof", SpawnState: "S_CYBER_STND", SeeState: "S_CYBER_RUN1", MeleeState: StateNull, MissileState: "S_CYBER_ATK1",
		PainState: "S_CYBER_PAIN", RaiseState: StateNull,
	},
	KindKeen: {
		Radius: fixed.FromInt(16), Height: fixed.FromInt(72), Speed: 0,
		Mass: 10000000, SpawnHP: 100,
		SeeSound: SoundNone, AttackSound: SoundNone, PainSound: "keenpn", DeathSound: "keendt",
		ActiveSound: SoundNone, SpawnState: "S_KEENSTND", SeeState: StateNull, MeleeState: StateNull, MissileState: StateNull,
		PainState: "S_KEENPAIN", RaiseState: StateNull,
	},
	KindBossBrain: {
		Radius: fixed.FromInt(16), Height: fixed.FromInt(16), Speed: 0,
		Mass: 10000000, SpawnHP: 250,
		SeeSound: SoundNone, AttackSound: SoundNone, PainSound: "bospn", DeathSound: "bosdth",
		ActiveSound: SoundNone, SpawnState: StateNull, SeeState: StateNull, MeleeState: StateNull, MissileState: StateNull,
		PainState: StateNull, RaiseState: StateNull,
	},
	KindBossTarget: {
		Radius: fixed.FromInt(20), Height: fixed.FromInt(16), Speed: 0,
		Mass: 10000000, SpawnHP: 1000,
		SeeSound: SoundNone, AttackSound: SoundNone, PainSound: SoundNone, DeathSound: SoundNone,
		ActiveSound: SoundNone, SpawnState: StateNull, SeeState: StateNull, MeleeState: StateNull, MissileState: StateNull,
		PainState: StateNull, RaiseState: StateNull,
	},
}
