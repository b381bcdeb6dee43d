package production

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/units"
)

func TestProductionCapacityCombinesDockAndSpaceProducer(t *testing.T) {
	owner := entities.PlayerID(bson.NewObjectID())
	dock := entities.Unit{ID: bson.NewObjectID(), Type: units.SpaceDock, Owner: owner}
	flagship := entities.Unit{ID: bson.NewObjectID(), Type: units.Flagship, Owner: owner}

	planet := entities.Planet{ID: bson.NewObjectID(), Resources: 3, Units: []entities.UnitID{dock.ID}}
	sys := entities.System{ID: bson.NewObjectID(), Planets: []entities.Planet{planet}, SpaceUnits: []entities.UnitID{flagship.ID}}

	arena := map[entities.UnitID]entities.Unit{dock.ID: dock, flagship.ID: flagship}
	m := NewManager()
	got := m.ProductionCapacity(sys, arena)
	// flagship's base Production stat is 0 in the baseline table, so only
	// the dock contributes: 3 resources + 2.
	assert.Equal(t, 5, got)
}

func TestCheckCostDualProducedUsesPairCost(t *testing.T) {
	m := NewManager()
	cost, verr := m.CheckCost(units.Infantry, units.FactionNone, nil, 2)
	require.Nil(t, verr)
	assert.Equal(t, 2, cost) // PairCost for infantry
}

func TestCheckCostInsufficientResources(t *testing.T) {
	m := NewManager()
	_, verr := m.CheckCost(units.WarSun, units.FactionNone, nil, 5)
	require.NotNil(t, verr)
	assert.Equal(t, "insufficient_resources", string(verr.Code))
}

func TestValidatePlacementShipDeniedWithEnemyShipsPresent(t *testing.T) {
	owner := entities.PlayerID(bson.NewObjectID())
	enemy := entities.PlayerID(bson.NewObjectID())
	enemyShip := entities.Unit{ID: bson.NewObjectID(), Type: units.Cruiser, Owner: enemy}
	sys := entities.System{ID: bson.NewObjectID(), SpaceUnits: []entities.UnitID{enemyShip.ID}}

	m := NewManager()
	verr := m.ValidatePlacement(PlacementRequest{
		Unit: units.Destroyer, Owner: owner, System: sys,
	}, map[entities.UnitID]entities.Unit{enemyShip.ID: enemyShip})
	require.NotNil(t, verr)
	assert.Equal(t, "blockaded_production", string(verr.Code))
}

func TestValidatePlacementArborecInfantryRestriction(t *testing.T) {
	owner := entities.PlayerID(bson.NewObjectID())
	m := NewManager()
	m.ArborecInfantry = func(o entities.PlayerID) bool { return o == owner }

	verr := m.ValidatePlacement(PlacementRequest{
		Unit: units.Infantry, Owner: owner, System: entities.System{}, Planet: bson.NewObjectID(),
	}, nil)
	require.NotNil(t, verr)
	assert.Equal(t, "invalid_placement", string(verr.Code))
}
