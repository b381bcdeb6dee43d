// Package production implements unit production (C7) and blockade (C8):
// cost/reinforcement checks, placement legality, combined production
// capacity across a system's planets and space-based producers, and
// blockade detection with its production-denial and capture-return
// effects.
package production

import (
	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/errs"
	"github.com/nicoberrocal/galaxyCore/units"
)

// ArborecInfantryHook, when non-nil, reports whether owner's standard
// infantry production is restricted by their Arborec faction ability
// (infantry is instead produced via a separate biotic mechanic outside
// this package's scope). Nil means no faction restriction applies.
type ArborecInfantryHook func(owner entities.PlayerID) bool

// Manager is the production rule set, parameterized by the one
// faction-specific hook the core spec surfaces without implementing.
type Manager struct {
	ArborecInfantry ArborecInfantryHook
}

// NewManager returns a Manager with no faction restrictions wired.
func NewManager() *Manager {
	return &Manager{}
}

// ProductionCapacity sums the production value available in sys: each
// planet hosting a space dock contributes its resources plus 2 (LRR Rule
// 68, "Production" ability on a space dock), and any space-based unit
// with a non-zero Production stat (e.g. a flagship with the production
// ability) contributes its stat directly. Multiple producers in the same
// system combine additively.
func (m *Manager) ProductionCapacity(sys entities.System, unitsArena map[entities.UnitID]entities.Unit) int {
	capacity := 0
	for _, p := range sys.Planets {
		if m.planetHasStructure(p, unitsArena, units.SpaceDock) {
			capacity += p.Resources + 2
		}
	}
	for _, uid := range sys.SpaceUnits {
		u, ok := unitsArena[uid]
		if !ok {
			continue
		}
		if stats, ok := u.Stats(); ok && stats.Production > 0 {
			capacity += stats.Production
		}
	}
	return capacity
}

func (m *Manager) planetHasStructure(p entities.Planet, unitsArena map[entities.UnitID]entities.Unit, t units.UnitType) bool {
	for _, uid := range p.Units {
		if u, ok := unitsArena[uid]; ok && u.Type == t {
			return true
		}
	}
	return false
}

// CheckCost returns the resource cost to produce one unit of t (the pair
// cost for dual-produced types, even for a single half-pair) and a
// validation error if available falls short.
func (m *Manager) CheckCost(t units.UnitType, faction units.Faction, techs units.TechSet, available int) (int, *errs.ValidationError) {
	stats, ok := units.Stats(t, faction, techs)
	if !ok {
		return 0, &errs.ValidationError{Code: errs.InvalidPlacement, Unit: string(t)}
	}
	cost := stats.Cost
	if stats.DualProduced {
		cost = stats.PairCost
	}
	if cost > available {
		return cost, &errs.ValidationError{Code: errs.InsufficientResources, Unit: string(t), Shortfall: cost - available}
	}
	return cost, nil
}

// CheckReinforcements reports whether count units of t are available in
// the player's reinforcement pool.
func (m *Manager) CheckReinforcements(t units.UnitType, count int, reinforcements map[units.UnitType]int) *errs.ValidationError {
	have := reinforcements[t]
	if have < count {
		return &errs.ValidationError{Code: errs.InsufficientReinforcements, Unit: string(t), Shortfall: count - have}
	}
	return nil
}

// PlacementRequest is one proposed unit placement.
type PlacementRequest struct {
	Unit   units.UnitType
	Owner  entities.PlayerID
	System entities.System
	Planet entities.PlanetID // zero value for ships, placed in space
}

// ValidatePlacement enforces placement legality: ships cannot be produced
// into a system where enemy ships are present (LRR Rule 68.3, blockaded
// production — see BlockadeManager for the general blockade case), ground
// forces require a target planet (and are subject to the Arborec
// infantry hook), and structures are otherwise unrestricted at this
// layer.
func (m *Manager) ValidatePlacement(req PlacementRequest, unitsArena map[entities.UnitID]entities.Unit) *errs.ValidationError {
	if units.IsShip(req.Unit) {
		for _, uid := range req.System.SpaceUnits {
			if u, ok := unitsArena[uid]; ok && u.Owner != req.Owner {
				return &errs.ValidationError{Code: errs.BlockadedProduction, System: req.System.ID.Hex()}
			}
		}
		return nil
	}
	if units.IsGroundForce(req.Unit) {
		if req.Unit == units.Infantry && m.ArborecInfantry != nil && m.ArborecInfantry(req.Owner) {
			return &errs.ValidationError{Code: errs.InvalidPlacement, Unit: string(req.Unit)}
		}
		if req.Planet.IsZero() {
			return &errs.ValidationError{Code: errs.InvalidPlacement, Unit: string(req.Unit)}
		}
		return nil
	}
	return nil
}
