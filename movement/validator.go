package movement

import (
	"sort"

	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/errs"
	"github.com/nicoberrocal/galaxyCore/galaxy"
	"github.com/nicoberrocal/galaxyCore/units"
)

// Validator resolves paths and enforces the full single-unit and
// joint-plan movement legality checks over an Engine and a Galaxy.
type Validator struct {
	Galaxy *galaxy.Galaxy
	Engine *Engine
}

// NewValidator builds a validator with the default rule engine.
func NewValidator(g *galaxy.Galaxy) *Validator {
	return &Validator{Galaxy: g, Engine: NewEngine()}
}

// MoveInput is everything needed to validate one unit's proposed move.
type MoveInput struct {
	Unit        entities.Unit
	Origin      entities.SystemID
	Dest        entities.SystemID
	PlayerTechs units.TechSet

	Systems map[entities.SystemID]entities.System
	Units   map[entities.UnitID]entities.Unit

	ActiveSystem entities.SystemID

	// FromLocation and ToLocation pin a ground force's location more
	// precisely than System alone (space vs. a specific planet surface).
	// Both are optional; they only matter when Origin == Dest, to detect
	// a direct planet-to-planet transfer attempted without transiting
	// space.
	FromLocation *entities.Location
	ToLocation   *entities.Location

	// GravityDriveBonus grants this unit the plan's single +1 effective
	// range assignment (Validator.ValidatePlan decides which move, if
	// any, receives it).
	GravityDriveBonus bool

	// IsEnemy reports whether owner is hostile to the mover; nil means no
	// unit is ever treated as an enemy. diplomacy.IsEnemyOf builds one.
	IsEnemy func(owner entities.PlayerID) bool
}

// ValidateMovement runs the single-unit checks in order: system
// existence, own command-token-blocks-exit, path existence, enemy-ship
// blocking, rule-engine legality (anomalies), range sufficiency, and the
// direct-planet-transfer check. Range sufficiency applies to ships only:
// a ground force has no movement of its own and travels by transport,
// which ValidatePlan assigns. It returns the resolved path on success.
func (v *Validator) ValidateMovement(in MoveInput) ([]entities.SystemID, *errs.ValidationError) {
	if _, ok := v.Galaxy.CoordOf(in.Origin); !ok {
		return nil, &errs.ValidationError{Code: errs.InvalidSystem, System: in.Origin.Hex()}
	}
	if _, ok := v.Galaxy.CoordOf(in.Dest); !ok {
		return nil, &errs.ValidationError{Code: errs.InvalidSystem, System: in.Dest.Hex()}
	}

	// Step 2 (Rule 58.4c/58.4d): the mover's own command token in the
	// origin system blocks it from moving out; another player's token
	// there does not.
	if origin, ok := in.Systems[in.Origin]; ok && origin.HasCommandToken(in.Unit.Owner) {
		return nil, &errs.ValidationError{Code: errs.CommandTokenBlocksExit, System: in.Origin.Hex()}
	}

	path, ok := v.Galaxy.FindPath(in.Origin, in.Dest, in.Systems)
	if !ok {
		return nil, &errs.ValidationError{Code: errs.NoPathExists, System: in.Dest.Hex()}
	}

	// Step 4 (Rule 58.4b): an enemy ship in any intermediate system blocks
	// passage; command tokens (own or another player's) never block
	// passage through, only exit from the origin.
	if in.IsEnemy != nil {
		for _, sid := range middle(path) {
			sys, ok := in.Systems[sid]
			if !ok {
				continue
			}
			for _, uid := range sys.SpaceUnits {
				u, ok := in.Units[uid]
				if ok && in.IsEnemy(u.Owner) {
					return nil, &errs.ValidationError{Code: errs.EnemyShipBlocksPath, System: sid.Hex()}
				}
			}
		}
	}

	ctx := Context{
		UnitType:     in.Unit.Type,
		Faction:      in.Unit.FactionOverride,
		PlayerTechs:  in.PlayerTechs,
		Origin:       in.Origin,
		Dest:         in.Dest,
		Galaxy:       v.Galaxy,
		Systems:      in.Systems,
		Path:         path,
		ActiveSystem: in.ActiveSystem,
	}

	// A denial without an error code is a plain range shortfall against
	// base movement; the effective-range check below decides it, counting
	// the gravity-rift and gravity-drive bonuses the base rule does not.
	if ok, verr := v.Engine.CanMove(ctx); !ok && verr != nil {
		return nil, verr
	}

	rng := v.Engine.EffectiveRange(ctx)
	if in.GravityDriveBonus && in.PlayerTechs.Has(units.GravityDrive) {
		rng++
	}
	dist := len(path) - 1
	if dist > rng && !units.IsGroundForce(in.Unit.Type) {
		return nil, &errs.ValidationError{Code: errs.InsufficientMovement, Unit: in.Unit.ID.Hex(), Shortfall: dist - rng}
	}

	// Step 6: destination equals origin only ever describes a ground
	// force hopping between two planet surfaces in the same system
	// without transiting space (embarking/disembarking a single planet
	// stays LocationSpace<->LocationPlanet and is not this case).
	if in.Origin == in.Dest && in.FromLocation != nil && in.ToLocation != nil &&
		in.FromLocation.Kind == entities.LocationPlanet && in.ToLocation.Kind == entities.LocationPlanet &&
		in.FromLocation.Planet != in.ToLocation.Planet {
		return nil, &errs.ValidationError{Code: errs.DirectPlanetTransfer, System: in.Origin.Hex()}
	}

	return path, nil
}

func middle(path []entities.SystemID) []entities.SystemID {
	if len(path) <= 2 {
		return nil
	}
	return path[1 : len(path)-1]
}

// PlanResult is the outcome of validating a joint movement plan: the
// resolved path per unit, which unit (if any) received the gravity-drive
// bonus, and the ground-force-to-transport assignment.
type PlanResult struct {
	Paths              map[entities.UnitID][]entities.SystemID
	GravityDriveUnit    entities.UnitID // zero value if none needed or none available
	TransportAssignment map[entities.UnitID]entities.UnitID // ground force -> carrying ship
}

// ValidatePlan validates every move in moves jointly: it tries each move
// first without the gravity-drive bonus, and if exactly the moves that
// fail for lack of one extra range could succeed with it, assigns the
// plan's single bonus to the first such move (best-fit: the move most in
// need, i.e. the first encountered with a shortfall of exactly 1).
// Ground forces are then assigned to ships with spare capacity by
// first-fit in encounter order, and a destination-time fleet-supply check
// closes out the plan (non-fighter, non-ground, non-structure ship count
// per player must not exceed their fleet pool at the moment they arrive).
func (v *Validator) ValidatePlan(moves []MoveInput, commandSheets map[entities.PlayerID]entities.CommandSheet) (*PlanResult, *errs.ValidationError) {
	result := &PlanResult{
		Paths:               make(map[entities.UnitID][]entities.SystemID),
		TransportAssignment: make(map[entities.UnitID]entities.UnitID),
	}

	bonusAssigned := false
	var groundForces []MoveInput
	var ships []MoveInput

	for _, m := range moves {
		path, verr := v.ValidateMovement(m)
		if verr != nil && verr.Code == errs.InsufficientMovement && verr.Shortfall == 1 && !bonusAssigned && m.PlayerTechs.Has(units.GravityDrive) {
			m.GravityDriveBonus = true
			path, verr = v.ValidateMovement(m)
			if verr == nil {
				bonusAssigned = true
				result.GravityDriveUnit = m.Unit.ID
			}
		}
		if verr != nil {
			return nil, verr
		}
		result.Paths[m.Unit.ID] = path

		if units.IsGroundForce(m.Unit.Type) {
			groundForces = append(groundForces, m)
		} else if units.IsShip(m.Unit.Type) {
			ships = append(ships, m)
		}
	}

	// Transport capacity: first-fit bin packing, processed in a stable
	// order (by unit id hex string) so assignment is deterministic.
	sort.Slice(ships, func(i, j int) bool { return ships[i].Unit.ID.Hex() < ships[j].Unit.ID.Hex() })
	sort.Slice(groundForces, func(i, j int) bool { return groundForces[i].Unit.ID.Hex() < groundForces[j].Unit.ID.Hex() })

	remaining := make(map[entities.UnitID]int, len(ships))
	for _, s := range ships {
		stats, _ := s.Unit.Stats()
		remaining[s.Unit.ID] = stats.Capacity
	}
	for _, gf := range groundForces {
		placed := false
		for _, s := range ships {
			if remaining[s.Unit.ID] > 0 {
				remaining[s.Unit.ID]--
				result.TransportAssignment[gf.Unit.ID] = s.Unit.ID
				placed = true
				break
			}
		}
		if !placed {
			return nil, &errs.ValidationError{Code: errs.InsufficientTransport, Unit: gf.Unit.ID.Hex(), Shortfall: 1}
		}
	}

	// Destination-time fleet supply: count the non-fighter ships each
	// player moves in this plan against that player's fleet pool. The
	// count is one total per player across all destinations; ships
	// already sitting in a destination system are not counted. This is
	// evaluated once, at the plan's conclusion — no retroactive culling
	// of in-flight ships mid-plan.
	arrivals := make(map[entities.PlayerID]int)
	for _, s := range ships {
		if units.IsShip(s.Unit.Type) && s.Unit.Type != units.Fighter {
			arrivals[s.Unit.Owner]++
		}
	}
	for player, count := range arrivals {
		sheet, ok := commandSheets[player]
		if ok && count > sheet.Fleet {
			return nil, &errs.ValidationError{Code: errs.FleetSupplyExceeded, Shortfall: count - sheet.Fleet}
		}
	}

	return result, nil
}
