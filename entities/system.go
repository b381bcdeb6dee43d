package entities

import "github.com/nicoberrocal/galaxyCore/hexcoord"

// System is a hex-board node: a set of planets, a multiset of units in
// space (by id), wormhole/anomaly tags, and a per-player command-token
// flag.
//
// Invariants enforced by callers (GameState transitions), not by this
// struct directly:
//   - a unit is in exactly one of {space of one system, surface of one
//     planet}, except transiently during a movement step;
//   - ships reside only in space; ground forces only on planets.
type System struct {
	ID            SystemID                `bson:"_id"`
	Coord         hexcoord.HexCoord       `bson:"coord"`
	Planets       []Planet                `bson:"planets,omitempty"`
	SpaceUnits    []UnitID                 `bson:"spaceUnits,omitempty"`
	Wormholes     map[WormholeTag]bool     `bson:"wormholes,omitempty"`
	Anomalies     map[AnomalyTag]bool      `bson:"anomalies,omitempty"`
	CommandTokens map[PlayerID]bool        `bson:"commandTokens,omitempty"`
}

// HasCommandToken reports whether player has a command token in this
// system.
func (s System) HasCommandToken(player PlayerID) bool {
	return s.CommandTokens[player]
}

// HasWormhole reports whether the system carries the given wormhole tag.
func (s System) HasWormhole(tag WormholeTag) bool {
	return s.Wormholes[tag]
}

// HasAnomaly reports whether the system carries the given anomaly tag.
func (s System) HasAnomaly(tag AnomalyTag) bool {
	return s.Anomalies[tag]
}

// SharesWormholeWith reports whether s and other have any wormhole tag in
// common.
func (s System) SharesWormholeWith(other System) bool {
	for tag := range s.Wormholes {
		if other.Wormholes[tag] {
			return true
		}
	}
	return false
}

// Planet looks up a planet by id within this system.
func (s System) Planet(id PlanetID) (Planet, bool) {
	for _, p := range s.Planets {
		if p.ID == id {
			return p, true
		}
	}
	return Planet{}, false
}

// Clone returns a deep copy safe to mutate independently of s.
func (s System) Clone() System {
	out := s
	if s.Planets != nil {
		out.Planets = make([]Planet, len(s.Planets))
		for i, p := range s.Planets {
			out.Planets[i] = p.Clone()
		}
	}
	if s.SpaceUnits != nil {
		out.SpaceUnits = append([]UnitID(nil), s.SpaceUnits...)
	}
	if s.Wormholes != nil {
		out.Wormholes = make(map[WormholeTag]bool, len(s.Wormholes))
		for k, v := range s.Wormholes {
			out.Wormholes[k] = v
		}
	}
	if s.Anomalies != nil {
		out.Anomalies = make(map[AnomalyTag]bool, len(s.Anomalies))
		for k, v := range s.Anomalies {
			out.Anomalies[k] = v
		}
	}
	if s.CommandTokens != nil {
		out.CommandTokens = make(map[PlayerID]bool, len(s.CommandTokens))
		for k, v := range s.CommandTokens {
			out.CommandTokens[k] = v
		}
	}
	return out
}
