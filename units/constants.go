// Package units holds the closed unit-type, faction and technology
// enumerations plus the per-(type, faction, tech-set) capability table
// (C3 of the rules engine). The lookup is a pure function: same inputs
// always produce the identical UnitStats value, so callers may memoize it
// freely.
package units

// UnitType is the closed enum of playable unit types.
type UnitType string

const (
	Carrier     UnitType = "carrier"
	Cruiser     UnitType = "cruiser"
	CruiserII   UnitType = "cruiser_ii"
	Destroyer   UnitType = "destroyer"
	Dreadnought UnitType = "dreadnought"
	Fighter     UnitType = "fighter"
	Infantry    UnitType = "infantry"
	Mech        UnitType = "mech"
	PDS         UnitType = "pds"
	SpaceDock   UnitType = "space_dock"
	WarSun      UnitType = "war_sun"
	Flagship    UnitType = "flagship"
)

// Faction is the closed enum of player factions.
type Faction string

const (
	FactionNone     Faction = ""
	FactionSol      Faction = "sol"
	FactionHacan    Faction = "hacan"
	FactionXxcha    Faction = "xxcha"
	FactionJord     Faction = "jord"
	FactionYssaril  Faction = "yssaril"
	FactionNaalu    Faction = "naalu"
	FactionBarony   Faction = "barony"
	FactionSaar     Faction = "saar"
	FactionMuaat    Faction = "muaat"
	FactionArborec  Faction = "arborec"
	FactionL1Z1X    Faction = "l1z1x"
	FactionWinnu    Faction = "winnu"
)

// Technology is the closed enum of technologies relevant to unit stats and
// movement. Stats applies only CruiserIITech. GravityDrive is applied by
// the movement package (Validator.ValidatePlan), not here; no other
// technology changes movement in this module.
type Technology string

const (
	GravityDrive       Technology = "gravity_drive"
	FleetLogistics     Technology = "fleet_logistics"
	LightWaveDeflector Technology = "light_wave_deflector"
	CruiserIITech      Technology = "cruiser_ii"
	DreadnoughtII      Technology = "dreadnought_ii"
	CarrierII          Technology = "carrier_ii"
	DestroyerII        Technology = "destroyer_ii"
	FighterII          Technology = "fighter_ii"
	PlasmaScoring      Technology = "plasma_scoring"
)

// Ships occupy the space area of a system.
var Ships = map[UnitType]bool{
	Carrier:     true,
	Cruiser:     true,
	CruiserII:   true,
	Destroyer:   true,
	Dreadnought: true,
	Fighter:     true,
	Flagship:    true,
	WarSun:      true,
}

// GroundForces reside on planets and move only through transport in space.
var GroundForces = map[UnitType]bool{
	Infantry: true,
	Mech:     true,
}

// Structures are planet-bound, non-mobile units.
var Structures = map[UnitType]bool{
	PDS:       true,
	SpaceDock: true,
}

// IsShip reports whether t occupies the space area of a system.
func IsShip(t UnitType) bool { return Ships[t] }

// IsGroundForce reports whether t is infantry or a mech.
func IsGroundForce(t UnitType) bool { return GroundForces[t] }

// IsStructure reports whether t is a PDS or a space dock.
func IsStructure(t UnitType) bool { return Structures[t] }

// TechSet is an immutable-by-convention set of technologies a player owns.
// Callers should treat it as read-only; construct with NewTechSet.
type TechSet map[Technology]bool

// NewTechSet builds a TechSet from a list of technologies.
func NewTechSet(techs ...Technology) TechSet {
	s := make(TechSet, len(techs))
	for _, t := range techs {
		s[t] = true
	}
	return s
}

// Has reports whether the set contains t.
func (s TechSet) Has(t Technology) bool { return s[t] }
