package tacticalaction

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/galaxy"
	"github.com/nicoberrocal/galaxyCore/gamestate"
	"github.com/nicoberrocal/galaxyCore/hexcoord"
	"github.com/nicoberrocal/galaxyCore/movement"
	"github.com/nicoberrocal/galaxyCore/production"
	"github.com/nicoberrocal/galaxyCore/units"
)

func TestPipelineCommitsActivationAndMovement(t *testing.T) {
	g := galaxy.New()
	from := bson.NewObjectID()
	to := bson.NewObjectID()
	g.Place(hexcoord.HexCoord{Q: 0, R: 0}, from)
	g.Place(hexcoord.HexCoord{Q: 1, R: 0}, to)

	unit := bson.NewObjectID()
	actor := entities.PlayerID(bson.NewObjectID())

	s := gamestate.New(g)
	s.Systems[from] = entities.System{ID: from, SpaceUnits: []entities.UnitID{unit}}
	s.Systems[to] = entities.System{ID: to}
	s.Players[actor] = entities.Player{ID: actor, CommandSheet: entities.CommandSheet{Tactic: 1}}

	var fired []TimingWindow
	ctx := &Context{
		State:  s,
		Actor:  actor,
		System: to,
		MovementPlan: &movement.PlanResult{
			Paths: map[entities.UnitID][]entities.SystemID{unit: {from, to}},
		},
		Hooks: map[TimingWindow][]func(*Context) error{
			AfterActivation: {func(c *Context) error { fired = append(fired, AfterActivation); return nil }},
			AfterMovement:   {func(c *Context) error { fired = append(fired, AfterMovement); return nil }},
		},
	}

	p := NewPipeline()
	final, err := p.Run(ctx)
	if err != nil {
		t.Fatalf("unexpected pipeline error: %v", err)
	}
	if !final.Systems[to].HasCommandToken(actor) {
		t.Fatalf("expected active system to carry actor's command token")
	}
	if len(final.Systems[to].SpaceUnits) != 1 || final.Systems[to].SpaceUnits[0] != unit {
		t.Fatalf("expected unit committed to destination system")
	}
	if len(final.Systems[from].SpaceUnits) != 0 {
		t.Fatalf("expected unit removed from origin system")
	}
	if len(fired) != 2 || fired[0] != AfterActivation || fired[1] != AfterMovement {
		t.Fatalf("expected activation and movement hooks fired in order, got %v", fired)
	}
}

func TestPipelineRollsBackOnProductionFailure(t *testing.T) {
	g := galaxy.New()
	sys := bson.NewObjectID()
	g.Place(hexcoord.HexCoord{Q: 0, R: 0}, sys)

	actor := entities.PlayerID(bson.NewObjectID())
	enemy := entities.PlayerID(bson.NewObjectID())
	enemyShip := entities.Unit{ID: bson.NewObjectID(), Type: units.Cruiser, Owner: enemy}

	s := gamestate.New(g)
	s.Systems[sys] = entities.System{ID: sys, SpaceUnits: []entities.UnitID{enemyShip.ID}}
	s.Units[enemyShip.ID] = enemyShip
	s.Players[actor] = entities.Player{ID: actor, CommandSheet: entities.CommandSheet{Tactic: 1}}

	ctx := &Context{
		State:             s,
		Actor:             actor,
		System:            sys,
		ProductionManager: production.NewManager(),
		ProductionRequests: []production.PlacementRequest{
			{Unit: units.Destroyer, Owner: actor, System: s.Systems[sys]},
		},
	}
	p := NewPipeline()
	final, err := p.Run(ctx)
	if err == nil {
		t.Fatalf("expected blockaded ship production to fail the pipeline")
	}
	if final.Systems[sys].HasCommandToken(actor) {
		t.Fatalf("expected rollback to discard the activation step's command token")
	}
}
