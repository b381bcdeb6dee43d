package movement

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/units"
)

func TestValidateMovementEnemyShipBlocksPath(t *testing.T) {
	g, ids, systems := chain(t, 3)
	mover := entities.PlayerID(bson.NewObjectID())
	enemy := entities.PlayerID(bson.NewObjectID())

	blocker := entities.Unit{ID: bson.NewObjectID(), Type: units.Destroyer, Owner: enemy}
	mid := systems[ids[1]]
	mid.SpaceUnits = []entities.UnitID{blocker.ID}
	systems[ids[1]] = mid

	u := entities.Unit{ID: bson.NewObjectID(), Type: units.Cruiser, Owner: mover}
	v := NewValidator(g)
	_, verr := v.ValidateMovement(MoveInput{
		Unit: u, Origin: ids[0], Dest: ids[2],
		Systems: systems,
		Units:   map[entities.UnitID]entities.Unit{blocker.ID: blocker},
		IsEnemy: func(owner entities.PlayerID) bool { return owner == enemy },
	})
	if verr == nil || verr.Code != "enemy_ship_blocks_path" {
		t.Fatalf("expected enemy_ship_blocks_path, got %v", verr)
	}
}

func TestValidateMovementCommandTokenBlocksExit(t *testing.T) {
	g, ids, systems := chain(t, 3)
	mover := entities.PlayerID(bson.NewObjectID())
	origin := systems[ids[0]]
	origin.CommandTokens = map[entities.PlayerID]bool{mover: true}
	systems[ids[0]] = origin

	u := entities.Unit{ID: bson.NewObjectID(), Type: units.Cruiser, Owner: mover}
	v := NewValidator(g)
	_, verr := v.ValidateMovement(MoveInput{
		Unit: u, Origin: ids[0], Dest: ids[2],
		Systems: systems,
	})
	if verr == nil || verr.Code != "command_token_blocks_exit" {
		t.Fatalf("expected command_token_blocks_exit, got %v", verr)
	}
}

func TestValidateMovementAnotherPlayersTokenAtOriginDoesNotBlock(t *testing.T) {
	g, ids, systems := chain(t, 3)
	mover := entities.PlayerID(bson.NewObjectID())
	someoneElse := entities.PlayerID(bson.NewObjectID())
	origin := systems[ids[0]]
	origin.CommandTokens = map[entities.PlayerID]bool{someoneElse: true}
	systems[ids[0]] = origin

	u := entities.Unit{ID: bson.NewObjectID(), Type: units.Cruiser, Owner: mover}
	v := NewValidator(g)
	_, verr := v.ValidateMovement(MoveInput{
		Unit: u, Origin: ids[0], Dest: ids[1],
		Systems: systems,
	})
	if verr != nil {
		t.Fatalf("expected another player's token at origin to permit passage, got %v", verr)
	}
}

func TestValidateMovementCommandTokensDoNotBlockPassageThrough(t *testing.T) {
	g, ids, systems := chain(t, 3)
	mover := entities.PlayerID(bson.NewObjectID())
	mid := systems[ids[1]]
	mid.CommandTokens = map[entities.PlayerID]bool{mover: true, bson.NewObjectID(): true}
	systems[ids[1]] = mid

	u := entities.Unit{ID: bson.NewObjectID(), Type: units.Cruiser, Owner: mover}
	v := NewValidator(g)
	_, verr := v.ValidateMovement(MoveInput{
		Unit: u, Origin: ids[0], Dest: ids[2],
		Systems: systems,
	})
	if verr != nil {
		t.Fatalf("expected command tokens in an intermediate system to never block passage through, got %v", verr)
	}
}

func TestValidateMovementDeniesDirectPlanetToPlanetTransfer(t *testing.T) {
	g, ids, systems := chain(t, 1)
	mover := entities.PlayerID(bson.NewObjectID())
	planetA := bson.NewObjectID()
	planetB := bson.NewObjectID()

	u := entities.Unit{ID: bson.NewObjectID(), Type: units.Infantry, Owner: mover}
	v := NewValidator(g)
	_, verr := v.ValidateMovement(MoveInput{
		Unit: u, Origin: ids[0], Dest: ids[0],
		Systems:      systems,
		FromLocation: &entities.Location{Kind: entities.LocationPlanet, System: ids[0], Planet: planetA},
		ToLocation:   &entities.Location{Kind: entities.LocationPlanet, System: ids[0], Planet: planetB},
	})
	if verr == nil || verr.Code != "direct_planet_transfer" {
		t.Fatalf("expected direct_planet_transfer, got %v", verr)
	}
}

func TestValidatePlanTransportAssignment(t *testing.T) {
	g, ids, systems := chain(t, 2)
	owner := entities.PlayerID(bson.NewObjectID())

	carrier := entities.Unit{ID: bson.NewObjectID(), Type: units.Carrier, Owner: owner} // capacity 4
	infantry := entities.Unit{ID: bson.NewObjectID(), Type: units.Infantry, Owner: owner}

	v := NewValidator(g)
	moves := []MoveInput{
		{Unit: carrier, Origin: ids[0], Dest: ids[1], Systems: systems},
		{Unit: infantry, Origin: ids[0], Dest: ids[1], Systems: systems},
	}
	result, verr := v.ValidatePlan(moves, nil)
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if result.TransportAssignment[infantry.ID] != carrier.ID {
		t.Fatalf("expected infantry assigned to carrier, got %v", result.TransportAssignment)
	}
}

func TestValidatePlanInsufficientTransport(t *testing.T) {
	g, ids, systems := chain(t, 2)
	owner := entities.PlayerID(bson.NewObjectID())

	cruiser := entities.Unit{ID: bson.NewObjectID(), Type: units.Cruiser, Owner: owner} // capacity 0
	infantry := entities.Unit{ID: bson.NewObjectID(), Type: units.Infantry, Owner: owner}

	v := NewValidator(g)
	moves := []MoveInput{
		{Unit: cruiser, Origin: ids[0], Dest: ids[1], Systems: systems},
		{Unit: infantry, Origin: ids[0], Dest: ids[1], Systems: systems},
	}
	_, verr := v.ValidatePlan(moves, nil)
	if verr == nil || verr.Code != "insufficient_transport" {
		t.Fatalf("expected insufficient_transport, got %v", verr)
	}
}

func TestValidatePlanFleetSupplyExceeded(t *testing.T) {
	g, ids, systems := chain(t, 2)
	owner := entities.PlayerID(bson.NewObjectID())

	c1 := entities.Unit{ID: bson.NewObjectID(), Type: units.Cruiser, Owner: owner}
	c2 := entities.Unit{ID: bson.NewObjectID(), Type: units.Cruiser, Owner: owner}

	v := NewValidator(g)
	moves := []MoveInput{
		{Unit: c1, Origin: ids[0], Dest: ids[1], Systems: systems},
		{Unit: c2, Origin: ids[0], Dest: ids[1], Systems: systems},
	}
	sheets := map[entities.PlayerID]entities.CommandSheet{owner: {Fleet: 1}}
	_, verr := v.ValidatePlan(moves, sheets)
	if verr == nil || verr.Code != "fleet_supply_exceeded" {
		t.Fatalf("expected fleet_supply_exceeded, got %v", verr)
	}
}

func TestValidatePlanGravityDriveBonusAssignment(t *testing.T) {
	g, ids, systems := chain(t, 4) // distance 3, cruiser base movement 2
	owner := entities.PlayerID(bson.NewObjectID())
	techs := units.NewTechSet(units.GravityDrive)

	cruiser := entities.Unit{ID: bson.NewObjectID(), Type: units.Cruiser, Owner: owner, Technologies: techs}

	v := NewValidator(g)
	moves := []MoveInput{
		{Unit: cruiser, Origin: ids[0], Dest: ids[3], PlayerTechs: techs, Systems: systems},
	}
	result, verr := v.ValidatePlan(moves, nil)
	if verr != nil {
		t.Fatalf("expected gravity drive bonus to close a 1-range shortfall, got %v", verr)
	}
	if result.GravityDriveUnit != cruiser.ID {
		t.Fatalf("expected gravity drive bonus assigned to the only mover")
	}
}
