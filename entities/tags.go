// Package entities holds the System/Planet/Unit/Player data model: ids are
// opaque bson.ObjectID values resolved through a GameState arena, never
// back-pointers, so cloning a snapshot never has to chase cycles.
package entities

// WormholeTag is one of the four wormhole types a system may carry.
type WormholeTag string

const (
	WormholeAlpha WormholeTag = "alpha"
	WormholeBeta  WormholeTag = "beta"
	WormholeGamma WormholeTag = "gamma"
	WormholeDelta WormholeTag = "delta"
)

// AnomalyTag is one of the anomaly types a system may carry; multiple tags
// may coexist on the same system.
type AnomalyTag string

const (
	AsteroidField AnomalyTag = "asteroid_field"
	Nebula        AnomalyTag = "nebula"
	Supernova     AnomalyTag = "supernova"
	GravityRift   AnomalyTag = "gravity_rift"
)

// LocationKind distinguishes a unit's containing area. This is the
// enum-based successor to the source's string-literal "space"/planet-name
// split: the spec's Open Questions name exactly this ambiguity and mandate
// the enum-based version as canonical.
type LocationKind int

const (
	LocationSpace LocationKind = iota
	LocationPlanet
)

func (k LocationKind) String() string {
	if k == LocationPlanet {
		return "planet"
	}
	return "space"
}
