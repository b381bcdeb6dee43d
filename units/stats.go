package units

// UnitStats is the full capability bundle returned by Stats: movement,
// capacity, combat profile, production and ability flags. It is a plain
// value — compute it, copy it, compare it; it never mutates in place.
type UnitStats struct {
	Movement int
	Capacity int

	// CombatValue is the dice-hit threshold (e.g. 7 means a roll of 7-10
	// hits); CombatDice is how many dice are rolled. A unit with no combat
	// role (CombatDice == 0) never participates in combat rolls.
	CombatValue int
	CombatDice  int

	// Production is the unit's production value when it has the
	// production ability (0 otherwise). Space docks derive theirs from
	// the hosting planet's resources at the call site, not here.
	Production int

	// Cost is the generic resource cost to produce one of this unit.
	// DualProduced units (fighters, infantry) are costed in pairs: PairCost
	// is charged even for a single half-pair (see production package).
	Cost         int
	DualProduced bool
	PairCost     int

	Sustain            bool
	Bombardment        bool
	SpaceCannon        bool
	PlanetaryShield    bool
	AntiFighterBarrage bool
	Deploy             bool
}

// baseTable is the data-only catalog of per-type baseline stats, modeled on
// a ship-blueprint table: numbers only, no behavior.
var baseTable = map[UnitType]UnitStats{
	Carrier: {
		Movement: 1, Capacity: 4,
		CombatValue: 9, CombatDice: 1,
		Cost: 3,
	},
	Cruiser: {
		Movement: 2, Capacity: 0,
		CombatValue: 7, CombatDice: 1,
		Cost: 2,
	},
	CruiserII: {
		Movement: 3, Capacity: 1,
		CombatValue: 6, CombatDice: 1,
		Cost: 2,
	},
	Destroyer: {
		Movement: 2, Capacity: 0,
		CombatValue: 9, CombatDice: 1,
		AntiFighterBarrage: true,
		Cost:               1,
	},
	Dreadnought: {
		Movement: 1, Capacity: 1,
		CombatValue: 5, CombatDice: 1,
		Sustain:     true,
		Bombardment: true,
		Cost:        4,
	},
	Fighter: {
		Movement: 0, Capacity: 0,
		CombatValue: 9, CombatDice: 1,
		Cost: 1, DualProduced: true, PairCost: 2,
	},
	Infantry: {
		Movement: 0, Capacity: 0,
		CombatValue: 8, CombatDice: 1,
		Cost: 1, DualProduced: true, PairCost: 2,
	},
	Mech: {
		Movement: 0, Capacity: 0,
		CombatValue: 6, CombatDice: 1,
		Sustain: true,
		Cost:    2,
	},
	PDS: {
		Movement: 0, Capacity: 0,
		SpaceCannon:     true,
		PlanetaryShield: true,
		Cost:            2,
	},
	SpaceDock: {
		Movement: 0, Capacity: 0,
		// Production is computed from the hosting planet's resources + 2
		// by the production package; the base table leaves it at 0.
		Cost: 3,
	},
	WarSun: {
		Movement: 2, Capacity: 6,
		CombatValue: 3, CombatDice: 3,
		Sustain:     true,
		Bombardment: true,
		Cost:        12,
	},
	Flagship: {
		Movement: 1, Capacity: 3,
		CombatValue: 5, CombatDice: 2,
		Sustain: true,
		Cost:    8,
	},
}

// Stats is the pure capability lookup: (type, faction, techs) -> UnitStats.
// Faction is accepted for forward compatibility with faction-specific base
// stat overrides; the base game table here has none, so it only affects
// which technology upgrades are legal to combine (none currently are
// faction-gated). Same inputs always produce an identical value.
func Stats(t UnitType, faction Faction, techs TechSet) (UnitStats, bool) {
	base, ok := baseTable[t]
	if !ok {
		return UnitStats{}, false
	}

	s := base

	// cruiser_ii tech upgrades cruiser stats in place: a player with the
	// technology fields a cruiser using the CruiserII row instead.
	if t == Cruiser && techs.Has(CruiserIITech) {
		s = baseTable[CruiserII]
	}

	return s, true
}
