// Package coordinator binds the movement validator and tactical action
// pipeline into the one entry point external callers use (C10):
// propose_tactical_action, plus a set of read-only query methods a UI or
// bot would poll before committing to a move.
package coordinator

import (
	"math/rand"
	"os"

	"github.com/rs/zerolog"

	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/errs"
	"github.com/nicoberrocal/galaxyCore/galaxy"
	"github.com/nicoberrocal/galaxyCore/gamestate"
	"github.com/nicoberrocal/galaxyCore/movement"
	"github.com/nicoberrocal/galaxyCore/production"
	"github.com/nicoberrocal/galaxyCore/tacticalaction"
	"github.com/nicoberrocal/galaxyCore/units"
)

// DiceRoll is one entry in a tactical action's deterministic roll log —
// deterministic because Coordinator's Rand is seeded once at
// construction, so replaying the same sequence of proposed actions
// against the same seed reproduces the same rolls.
type DiceRoll struct {
	Context string
	Value   int
}

// TacticalActionRequest is everything propose_tactical_action needs: the
// acting player, the system being activated, any unit movements, the
// command sheets movement's fleet-supply check needs, and any production
// placements to validate in the same action.
type TacticalActionRequest struct {
	Actor               entities.PlayerID
	System              entities.SystemID
	Moves               []movement.MoveInput
	CommandSheets       map[entities.PlayerID]entities.CommandSheet
	ProductionRequests  []production.PlacementRequest
	Hooks               map[tacticalaction.TimingWindow][]func(*tacticalaction.Context) error
}

// TacticalActionResult is the pipeline's outcome: the resulting snapshot
// (the pre-action snapshot, unchanged, on failure), the error if any step
// failed, and whatever dice rolls were logged during execution.
type TacticalActionResult struct {
	State   gamestate.GameState
	Err     error
	DiceLog []DiceRoll
}

// Coordinator is the stateful binding of every rule component the core
// exposes; everything it touches is otherwise pure, so a Coordinator is
// cheap to construct per game and safe to reuse across many proposed
// actions against different GameState snapshots.
type Coordinator struct {
	Galaxy     *galaxy.Galaxy
	Validator  *movement.Validator
	Pipeline   *tacticalaction.Pipeline
	Production *production.Manager
	Blockade   *production.BlockadeManager
	Logger     zerolog.Logger

	rand    *rand.Rand
	diceLog []DiceRoll
}

// New returns a Coordinator wired with the default rule components and a
// dice source seeded from seed.
func New(g *galaxy.Galaxy, seed int64) *Coordinator {
	return &Coordinator{
		Galaxy:     g,
		Validator:  movement.NewValidator(g),
		Pipeline:   tacticalaction.NewPipeline(),
		Production: production.NewManager(),
		Blockade:   production.NewBlockadeManager(),
		Logger:     zerolog.New(os.Stdout).With().Timestamp().Logger(),
		rand:       rand.New(rand.NewSource(seed)),
	}
}

// RollDie rolls one ten-sided die (the TI4 combat/ability roll range) and
// appends it, tagged with context, to the coordinator's dice log.
func (c *Coordinator) RollDie(context string) int {
	v := c.rand.Intn(10) + 1
	c.diceLog = append(c.diceLog, DiceRoll{Context: context, Value: v})
	return v
}

// ProposeTacticalAction is the core's single write entry point: it
// validates any requested movement jointly, then runs the five-step
// pipeline against state. On any failure the returned State is the
// original, untouched snapshot.
func (c *Coordinator) ProposeTacticalAction(state gamestate.GameState, req TacticalActionRequest) TacticalActionResult {
	c.Logger.Debug().Str("system", req.System.Hex()).Str("actor", req.Actor.Hex()).Msg("tactical action proposed")
	diceStart := len(c.diceLog)

	// Activation precondition: the system must exist, not already carry
	// the actor's command token, and the actor must have at least one
	// tactic pool point to spend. ActivationStep.CanExecute re-checks the
	// same thing, but a failed CanExecute there only skips the step
	// silently — the whole action must be rejected here instead.
	sys, ok := state.Systems[req.System]
	if !ok {
		verr := &errs.ValidationError{Code: errs.InvalidSystem, System: req.System.Hex()}
		c.Logger.Warn().Str("code", string(verr.Code)).Msg("activation precondition failed")
		return TacticalActionResult{State: state, Err: verr}
	}
	if sys.HasCommandToken(req.Actor) {
		verr := &errs.ValidationError{Code: errs.InvalidSystem, System: req.System.Hex()}
		c.Logger.Warn().Str("code", string(verr.Code)).Msg("activation precondition failed")
		return TacticalActionResult{State: state, Err: verr}
	}
	if state.Players[req.Actor].CommandSheet.Tactic < 1 {
		verr := &errs.ValidationError{Code: errs.InsufficientTacticPool, System: req.System.Hex()}
		c.Logger.Warn().Str("code", string(verr.Code)).Msg("activation precondition failed")
		return TacticalActionResult{State: state, Err: verr}
	}

	var plan *movement.PlanResult
	if len(req.Moves) > 0 {
		p, verr := c.Validator.ValidatePlan(req.Moves, req.CommandSheets)
		if verr != nil {
			c.Logger.Warn().Str("code", string(verr.Code)).Msg("movement validation failed")
			return TacticalActionResult{State: state, Err: verr}
		}
		plan = p
	}

	ctx := &tacticalaction.Context{
		State:              state,
		Actor:              req.Actor,
		System:             req.System,
		MovementPlan:       plan,
		ProductionManager:  c.Production,
		ProductionRequests: req.ProductionRequests,
		Hooks:              req.Hooks,
	}

	final, err := c.Pipeline.Run(ctx)
	if err != nil {
		c.Logger.Warn().Err(err).Msg("tactical action rolled back")
		return TacticalActionResult{State: final, Err: err}
	}

	final = c.applyBlockadeCaptureReturn(final, req.System)

	c.Logger.Debug().Msg("tactical action committed")
	return TacticalActionResult{State: final, DiceLog: append([]DiceRoll(nil), c.diceLog[diceStart:]...)}
}

// applyBlockadeCaptureReturn implements Rule 14's capture-return side
// effect for sys: the instant a planet there is blockaded, any units its
// controller holds captured from one of the blockading players are
// returned immediately, crediting them back to each original owner's
// reinforcements.
func (c *Coordinator) applyBlockadeCaptureReturn(state gamestate.GameState, sys entities.SystemID) gamestate.GameState {
	s, ok := state.Systems[sys]
	if !ok {
		return state
	}

	next := state
	cloned := false
	for _, p := range s.Planets {
		if !p.Controlled() || !c.Blockade.IsBlockaded(p, s, state.Units) {
			continue
		}

		blockading := make(map[entities.PlayerID]bool)
		for _, uid := range s.SpaceUnits {
			if u, ok := state.Units[uid]; ok && u.Owner != p.Controller {
				blockading[u.Owner] = true
			}
		}

		controller := state.Players[p.Controller]
		returning := make(map[entities.PlayerID][]entities.UnitID)
		for owner, ids := range controller.CapturedUnits {
			if blockading[owner] && len(ids) > 0 {
				returning[owner] = ids
			}
		}
		if len(returning) == 0 {
			continue
		}

		if !cloned {
			next = state.Clone()
			cloned = true
		}
		nc := next.Players[p.Controller]
		nc.CapturedUnits = c.Blockade.ReturnCapturedUnits(nc.CapturedUnits, blockading)
		next.Players[p.Controller] = nc

		for owner, ids := range returning {
			rp := next.Players[owner]
			if rp.Reinforcements == nil {
				rp.Reinforcements = make(map[units.UnitType]int, len(ids))
			}
			for _, uid := range ids {
				if u, ok := next.Units[uid]; ok {
					rp.Reinforcements[u.Type]++
				}
			}
			next.Players[owner] = rp
		}
	}
	return next
}

// IsValidMovement is a read-only check: would this single move validate
// right now, without committing anything.
func (c *Coordinator) IsValidMovement(in movement.MoveInput) bool {
	_, verr := c.Validator.ValidateMovement(in)
	return verr == nil
}

// ValidateMovementPlan is the read-only joint-plan counterpart to
// IsValidMovement, returning the full diagnostic on failure.
func (c *Coordinator) ValidateMovementPlan(moves []movement.MoveInput, sheets map[entities.PlayerID]entities.CommandSheet) (*movement.PlanResult, *errs.ValidationError) {
	return c.Validator.ValidatePlan(moves, sheets)
}

// EffectiveMovementRange reports the effective range of the move
// described by ctx without validating it.
func (c *Coordinator) EffectiveMovementRange(ctx movement.Context) int {
	return c.Validator.Engine.EffectiveRange(ctx)
}

// CanActivateSystem reports whether actor may activate sys this round:
// sys must be registered, not already carry actor's command token, and
// actor must have at least one tactic pool point left to spend.
func (c *Coordinator) CanActivateSystem(state gamestate.GameState, actor entities.PlayerID, sys entities.SystemID) bool {
	s, ok := state.Systems[sys]
	if !ok || s.HasCommandToken(actor) {
		return false
	}
	return state.Players[actor].CommandSheet.Tactic >= 1
}

// RequiresSpaceCombat reports whether sys contains any ship not owned by
// actor — a necessary (not sufficient, combat resolution itself is out
// of scope) precondition for the space-cannon/combat timing windows.
func (c *Coordinator) RequiresSpaceCombat(state gamestate.GameState, sys entities.SystemID, actor entities.PlayerID) bool {
	s, ok := state.Systems[sys]
	if !ok {
		return false
	}
	for _, uid := range s.SpaceUnits {
		if u, ok := state.Units[uid]; ok && u.Owner != actor {
			return true
		}
	}
	return false
}

// IsBlockaded reports whether planet (within sys) is currently blockaded.
func (c *Coordinator) IsBlockaded(state gamestate.GameState, sys entities.SystemID, planet entities.PlanetID) bool {
	s, ok := state.Systems[sys]
	if !ok {
		return false
	}
	p, ok := s.Planet(planet)
	if !ok {
		return false
	}
	return c.Blockade.IsBlockaded(p, s, state.Units)
}
