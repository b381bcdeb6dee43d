// Package movement implements the composable movement rule engine (C5) and
// the single-unit/joint-plan validator (C6).
package movement

import (
	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/errs"
	"github.com/nicoberrocal/galaxyCore/galaxy"
	"github.com/nicoberrocal/galaxyCore/hexcoord"
	"github.com/nicoberrocal/galaxyCore/units"
)

// Context carries everything a movement rule needs to evaluate a single
// unit's movement: the unit, origin/destination, the player's technology
// set, a galaxy reference, the fully resolved path (including endpoints)
// when available, and the active system of the tactical action in
// progress (zero value if none).
type Context struct {
	UnitType    units.UnitType
	Faction     units.Faction
	PlayerTechs units.TechSet

	Origin entities.SystemID
	Dest   entities.SystemID

	Galaxy  *galaxy.Galaxy
	Systems map[entities.SystemID]entities.System

	// Path is the sequence of systems from Origin to Dest inclusive, as
	// resolved by galaxy.FindPath. Rules that need path-wide anomaly
	// checks (AnomalyRule) require this to be populated.
	Path []entities.SystemID

	// ActiveSystem is the system receiving the command token this
	// tactical action; zero value means none is set.
	ActiveSystem entities.SystemID
}

func (c Context) coord(id entities.SystemID) hexcoord.HexCoord {
	coord, _ := c.Galaxy.CoordOf(id)
	return coord
}

// Rule is the closed interface every movement rule implements: a pure
// legality check and a pure range query, both over a Context.
type Rule interface {
	// CanMove reports whether this rule permits the movement in ctx. A
	// nil error with false means the movement is merely out of range
	// (caller should already know why); a non-nil error carries the
	// specific validation code to surface to the caller.
	CanMove(ctx Context) (bool, *errs.ValidationError)
	// MovementRange returns this rule's view of the unit's movement range,
	// ignoring path-dependent bonuses (those are engine-level, see
	// Engine.EffectiveRange).
	MovementRange(unitType units.UnitType, faction units.Faction, techs units.TechSet) int
}

// BasicMovementRule: a unit may move iff the hex distance from origin to
// destination is at most its base movement range.
type BasicMovementRule struct{}

func (BasicMovementRule) CanMove(ctx Context) (bool, *errs.ValidationError) {
	dist := hexcoord.Distance(ctx.coord(ctx.Origin), ctx.coord(ctx.Dest))
	rng := BasicMovementRule{}.MovementRange(ctx.UnitType, ctx.Faction, ctx.PlayerTechs)
	if dist > rng {
		return false, nil
	}
	return true, nil
}

func (BasicMovementRule) MovementRange(unitType units.UnitType, faction units.Faction, techs units.TechSet) int {
	stats, ok := units.Stats(unitType, faction, techs)
	if !ok {
		return 0
	}
	return stats.Movement
}

// GravityDriveRule never denies movement at the engine level: if the
// player lacks gravity_drive it is a pass-through allow, and if they have
// it, the single +1-range assignment to one ship per tactical action is
// decided at plan level (see MovementValidator), not here.
type GravityDriveRule struct{}

func (GravityDriveRule) CanMove(ctx Context) (bool, *errs.ValidationError) {
	return true, nil
}

func (GravityDriveRule) MovementRange(unitType units.UnitType, faction units.Faction, techs units.TechSet) int {
	return BasicMovementRule{}.MovementRange(unitType, faction, techs)
}

// AnomalyRule enforces anomaly semantics per tag set of each system on the
// path: asteroid fields and supernovae deny entry/passage outright;
// nebulae restrict entry to the active system; gravity rifts never block
// (their survival check and range bonus are handled elsewhere — see
// Engine.EffectiveRange for the bonus, and the tactical-action movement
// step for the survival roll).
type AnomalyRule struct{}

func (AnomalyRule) CanMove(ctx Context) (bool, *errs.ValidationError) {
	if len(ctx.Path) == 0 {
		return true, nil
	}
	// Entered systems are every path element except the origin (index 0):
	// the unit starts there, it doesn't "enter" it.
	for _, sid := range ctx.Path[1:] {
		sys, ok := ctx.Systems[sid]
		if !ok {
			continue
		}
		if sys.HasAnomaly(entities.AsteroidField) {
			return false, &errs.ValidationError{Code: errs.AnomalyBlocksMovement, System: sid.Hex(), Tag: string(entities.AsteroidField)}
		}
		if sys.HasAnomaly(entities.Supernova) {
			return false, &errs.ValidationError{Code: errs.AnomalyBlocksMovement, System: sid.Hex(), Tag: string(entities.Supernova)}
		}
		if sys.HasAnomaly(entities.Nebula) && sid != ctx.ActiveSystem {
			return false, &errs.ValidationError{Code: errs.NebulaRequiresActiveSystem, System: sid.Hex(), Tag: string(entities.Nebula)}
		}
	}
	return true, nil
}

func (AnomalyRule) MovementRange(unitType units.UnitType, faction units.Faction, techs units.TechSet) int {
	return BasicMovementRule{}.MovementRange(unitType, faction, techs)
}

// Engine applies a fixed, compile-time list of rules: new rules are
// additions to this slice, never reflection-discovered.
type Engine struct {
	rules []Rule
}

// NewEngine returns the engine with the default rule set.
func NewEngine() *Engine {
	return &Engine{rules: []Rule{BasicMovementRule{}, GravityDriveRule{}, AnomalyRule{}}}
}

// AddRule appends a custom rule to the engine's fixed list.
func (e *Engine) AddRule(r Rule) { e.rules = append(e.rules, r) }

// CanMove is the conjunction of every rule's CanMove. On denial it returns
// the first rule's validation error that objected (denial overrides
// permission, consistent with spec: when rules conflict, the denial
// wins).
func (e *Engine) CanMove(ctx Context) (bool, *errs.ValidationError) {
	for _, r := range e.rules {
		ok, verr := r.CanMove(ctx)
		if !ok {
			if verr != nil {
				return false, verr
			}
			return false, nil
		}
	}
	return true, nil
}

// EffectiveRange computes the effective movement range for ctx.Path:
// base_movement + gravity-rift bonuses, clamped to 1 if the unit starts
// movement inside a nebula (the more restrictive rule always wins, so the
// nebula clamp overrides any gravity-rift bonus).
func (e *Engine) EffectiveRange(ctx Context) int {
	base := BasicMovementRule{}.MovementRange(ctx.UnitType, ctx.Faction, ctx.PlayerTechs)

	if len(ctx.Path) == 0 {
		return base
	}

	if origin, ok := ctx.Systems[ctx.Origin]; ok && origin.HasAnomaly(entities.Nebula) {
		return 1
	}

	bonus := 0
	// Every system the unit exits or passes through (all but the final
	// destination) independently grants +1 if tagged gravity_rift.
	for _, sid := range ctx.Path[:len(ctx.Path)-1] {
		if sys, ok := ctx.Systems[sid]; ok && sys.HasAnomaly(entities.GravityRift) {
			bonus++
		}
	}
	return base + bonus
}

// GravityRiftCrossings returns the systems in ctx.Path that independently
// require a post-move survival check (one roll per traversal).
func (e *Engine) GravityRiftCrossings(ctx Context) []entities.SystemID {
	if len(ctx.Path) == 0 {
		return nil
	}
	var out []entities.SystemID
	for _, sid := range ctx.Path[:len(ctx.Path)-1] {
		if sys, ok := ctx.Systems[sid]; ok && sys.HasAnomaly(entities.GravityRift) {
			out = append(out, sid)
		}
	}
	return out
}
