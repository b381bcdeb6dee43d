// Package tacticalaction implements the five-step tactical action pipeline
// (C9): Activation, Movement, SpaceCannon, Invasion, Production. Combat
// resolution and invasion outcomes are named timing windows the core
// surfaces but does not resolve — full match simulation is out of scope;
// this package sequences steps, commits validated movement, and fires the
// timing hooks an external combat/invasion resolver would hook into.
package tacticalaction

import (
	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/errs"
	"github.com/nicoberrocal/galaxyCore/gamestate"
	"github.com/nicoberrocal/galaxyCore/movement"
	"github.com/nicoberrocal/galaxyCore/production"
)

// TimingWindow names a point in the pipeline external hooks attach to.
type TimingWindow string

const (
	AfterActivation    TimingWindow = "after_activation"
	AfterMovement      TimingWindow = "after_movement"
	StartOfSpaceCombat TimingWindow = "start_of_space_combat"
	BeforeInvasion      TimingWindow = "before_invasion"
	BeforeProduction    TimingWindow = "before_production"
)

// Context is the single mutable object the pipeline's steps share while
// one tactical action is executing. It is discarded (or rolled back to
// its starting State) at the end of the action — nothing here persists
// independently of the GameState it produces.
type Context struct {
	State  gamestate.GameState
	Actor  entities.PlayerID
	System entities.SystemID

	MovementPlan *movement.PlanResult

	ProductionManager   *production.Manager
	ProductionRequests  []production.PlacementRequest
	ValidatedPlacements []production.PlacementRequest

	Hooks map[TimingWindow][]func(*Context) error
}

// Fire runs every hook registered for window, in registration order.
func (c *Context) Fire(window TimingWindow) error {
	for _, h := range c.Hooks[window] {
		if err := h(c); err != nil {
			return err
		}
	}
	return nil
}

// Step is the closed, compile-time-fixed set of pipeline stages.
type Step interface {
	Name() errs.PipelineStep
	CanExecute(ctx *Context) bool
	Execute(ctx *Context) error
}

// ActivationStep places a command token in the active system and spends
// one tactic pool point, marking it activated for the remainder of the
// round. Both halves of the precondition (no token there yet, at least
// one tactic pool point available) are re-checked by Coordinator before
// the pipeline even runs, since a precondition failure here must reject
// the whole action rather than silently skip the step.
type ActivationStep struct{}

func (ActivationStep) Name() errs.PipelineStep { return errs.StepActivation }

func (ActivationStep) CanExecute(ctx *Context) bool {
	sys, ok := ctx.State.Systems[ctx.System]
	if !ok || sys.HasCommandToken(ctx.Actor) {
		return false
	}
	return ctx.State.Players[ctx.Actor].CommandSheet.Tactic >= 1
}

func (ActivationStep) Execute(ctx *Context) error {
	ctx.State = ctx.State.WithActiveSystem(ctx.System, ctx.Actor).WithTacticSpent(ctx.Actor)
	return ctx.Fire(AfterActivation)
}

// MovementStep commits every unit movement in ctx.MovementPlan (already
// validated by movement.Validator before the pipeline runs — this step
// never re-validates, only commits).
type MovementStep struct{}

func (MovementStep) Name() errs.PipelineStep { return errs.StepMovement }

func (MovementStep) CanExecute(ctx *Context) bool {
	return ctx.MovementPlan != nil && len(ctx.MovementPlan.Paths) > 0
}

func (MovementStep) Execute(ctx *Context) error {
	for unit, path := range ctx.MovementPlan.Paths {
		if len(path) < 2 {
			continue
		}
		ctx.State = ctx.State.WithUnitMoved(unit, path[0], path[len(path)-1])
	}
	return ctx.Fire(AfterMovement)
}

// SpaceCannonStep marks the point where space cannon offense/defense
// would resolve; the core only surfaces the timing window.
type SpaceCannonStep struct{}

func (SpaceCannonStep) Name() errs.PipelineStep { return errs.StepSpaceCannon }

func (SpaceCannonStep) CanExecute(ctx *Context) bool { return true }

func (SpaceCannonStep) Execute(ctx *Context) error {
	return ctx.Fire(StartOfSpaceCombat)
}

// InvasionStep marks the point where ground combat/invasion would
// resolve; the core only surfaces the timing window.
type InvasionStep struct{}

func (InvasionStep) Name() errs.PipelineStep { return errs.StepInvasion }

func (InvasionStep) CanExecute(ctx *Context) bool { return true }

func (InvasionStep) Execute(ctx *Context) error {
	return ctx.Fire(BeforeInvasion)
}

// ProductionStep validates any requested placements with
// production.Manager.ValidatePlacement (enemy ships in the system deny ship
// production; ground forces need a target planet). Production capacity,
// cost and reinforcements are not checked here. Validated requests are recorded on
// the context for the caller to commit as new units — constructing and
// placing a brand new unit's identity is a GameState-setup concern, not
// this package's.
type ProductionStep struct{}

func (ProductionStep) Name() errs.PipelineStep { return errs.StepProduction }

func (ProductionStep) CanExecute(ctx *Context) bool {
	return ctx.ProductionManager != nil && len(ctx.ProductionRequests) > 0
}

func (ProductionStep) Execute(ctx *Context) error {
	if err := ctx.Fire(BeforeProduction); err != nil {
		return err
	}
	for _, req := range ctx.ProductionRequests {
		if verr := ctx.ProductionManager.ValidatePlacement(req, ctx.State.Units); verr != nil {
			return verr
		}
		ctx.ValidatedPlacements = append(ctx.ValidatedPlacements, req)
	}
	return nil
}

// Pipeline runs the fixed five-step sequence, rolling back to the
// pre-action snapshot on any step failure.
type Pipeline struct {
	steps []Step
}

// NewPipeline returns the default five-step pipeline in spec order.
func NewPipeline() *Pipeline {
	return &Pipeline{steps: []Step{
		ActivationStep{},
		MovementStep{},
		SpaceCannonStep{},
		InvasionStep{},
		ProductionStep{},
	}}
}

// Run executes every applicable step against ctx.State in order. On
// failure it returns a *errs.PipelineError identifying the failing step
// and the untouched pre-action snapshot; ctx.State is left at that
// snapshot too, so the context is safe to inspect or discard after an
// error.
func (p *Pipeline) Run(ctx *Context) (gamestate.GameState, error) {
	start := ctx.State
	for _, step := range p.steps {
		if !step.CanExecute(ctx) {
			continue
		}
		if err := step.Execute(ctx); err != nil {
			ctx.State = start
			return start, &errs.PipelineError{Step: step.Name(), Cause: err}
		}
	}
	return ctx.State, nil
}
