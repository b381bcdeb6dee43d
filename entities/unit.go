package entities

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/nicoberrocal/galaxyCore/units"
)

// UnitID, SystemID, PlanetID and PlayerID are opaque identifiers resolved
// through a GameState's arenas — the teacher's id convention, reused
// throughout so entities never embed back-pointers to each other.
type (
	UnitID   = bson.ObjectID
	SystemID = bson.ObjectID
	PlanetID = bson.ObjectID
	PlayerID = bson.ObjectID
)

// Unit is a single placed game piece. Capability lookup (movement,
// capacity, combat, abilities) is always derived via units.Stats — Unit
// itself carries only identity and the inputs to that lookup.
type Unit struct {
	ID              UnitID          `bson:"_id"`
	Type            units.UnitType  `bson:"type"`
	Owner           PlayerID        `bson:"owner"`
	FactionOverride units.Faction   `bson:"factionOverride,omitempty"`
	Technologies    units.TechSet   `bson:"technologies,omitempty"`
	DamageSustained bool            `bson:"damageSustained"`
}

// Stats resolves this unit's effective capability bundle.
func (u Unit) Stats() (units.UnitStats, bool) {
	return units.Stats(u.Type, u.FactionOverride, u.Technologies)
}

// Location pins a unit to exactly one of {space of a system, surface of a
// planet}: one Location value names exactly one area. GameState does not
// store Locations; it records placement through System.SpaceUnits and
// Planet.Units.
type Location struct {
	Kind     LocationKind
	System   SystemID
	Planet   PlanetID // zero value when Kind == LocationSpace
}

// InSpace builds a space location in the given system.
func InSpace(system SystemID) Location {
	return Location{Kind: LocationSpace, System: system}
}

// OnPlanet builds a planet-surface location.
func OnPlanet(system SystemID, planet PlanetID) Location {
	return Location{Kind: LocationPlanet, System: system, Planet: planet}
}
