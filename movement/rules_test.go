package movement

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/galaxy"
	"github.com/nicoberrocal/galaxyCore/hexcoord"
	"github.com/nicoberrocal/galaxyCore/units"
)

func chain(t *testing.T, n int) (*galaxy.Galaxy, []entities.SystemID, map[entities.SystemID]entities.System) {
	t.Helper()
	g := galaxy.New()
	ids := make([]entities.SystemID, n)
	systems := make(map[entities.SystemID]entities.System, n)
	for i := 0; i < n; i++ {
		id := bson.NewObjectID()
		ids[i] = id
		coord := hexcoord.HexCoord{Q: i, R: 0}
		g.Place(coord, id)
		systems[id] = entities.System{ID: id, Coord: coord}
	}
	return g, ids, systems
}

func TestBasicMovementRuleWithinRange(t *testing.T) {
	g, ids, systems := chain(t, 3)
	path, _ := g.FindPath(ids[0], ids[2], systems)
	ctx := Context{
		UnitType: units.Cruiser, // base movement 2
		Origin:   ids[0], Dest: ids[2],
		Galaxy: g, Systems: systems, Path: path,
	}
	e := NewEngine()
	ok, verr := e.CanMove(ctx)
	if !ok || verr != nil {
		t.Fatalf("expected cruiser to reach distance-2 destination, got ok=%v err=%v", ok, verr)
	}
}

func TestBasicMovementRuleOutOfRange(t *testing.T) {
	g, ids, systems := chain(t, 5)
	path, _ := g.FindPath(ids[0], ids[4], systems)
	ctx := Context{
		UnitType: units.Cruiser, // base movement 2, distance 4
		Origin:   ids[0], Dest: ids[4],
		Galaxy: g, Systems: systems, Path: path,
	}
	e := NewEngine()
	ok, _ := e.CanMove(ctx)
	if ok {
		t.Fatalf("expected cruiser to be out of range over distance 4")
	}
}

func TestAnomalyRuleBlocksAsteroidField(t *testing.T) {
	g, ids, systems := chain(t, 3)
	mid := systems[ids[1]]
	mid.Anomalies = map[entities.AnomalyTag]bool{entities.AsteroidField: true}
	systems[ids[1]] = mid

	path, _ := g.FindPath(ids[0], ids[2], systems)
	ctx := Context{
		UnitType: units.WarSun, // movement 2, would otherwise reach
		Origin:   ids[0], Dest: ids[2],
		Galaxy: g, Systems: systems, Path: path,
	}
	e := NewEngine()
	ok, verr := e.CanMove(ctx)
	if ok {
		t.Fatalf("expected asteroid field to block passage")
	}
	if verr == nil || verr.Tag != string(entities.AsteroidField) {
		t.Fatalf("expected asteroid_field validation error, got %v", verr)
	}
}

func TestAnomalyRuleNebulaRequiresActiveSystem(t *testing.T) {
	g, ids, systems := chain(t, 2)
	dest := systems[ids[1]]
	dest.Anomalies = map[entities.AnomalyTag]bool{entities.Nebula: true}
	systems[ids[1]] = dest

	path, _ := g.FindPath(ids[0], ids[1], systems)
	ctx := Context{
		UnitType: units.Cruiser,
		Origin:   ids[0], Dest: ids[1],
		Galaxy: g, Systems: systems, Path: path,
	}
	e := NewEngine()
	if ok, _ := e.CanMove(ctx); ok {
		t.Fatalf("expected nebula entry to be denied without active system match")
	}

	ctx.ActiveSystem = ids[1]
	if ok, verr := e.CanMove(ctx); !ok {
		t.Fatalf("expected nebula entry to be allowed when destination is the active system, got err=%v", verr)
	}
}

func TestEffectiveRangeNebulaClampsToOne(t *testing.T) {
	g, ids, systems := chain(t, 5)
	origin := systems[ids[0]]
	origin.Anomalies = map[entities.AnomalyTag]bool{entities.Nebula: true}
	systems[ids[0]] = origin

	path, _ := g.FindPath(ids[0], ids[2], systems)
	ctx := Context{UnitType: units.WarSun, Origin: ids[0], Dest: ids[2], Galaxy: g, Systems: systems, Path: path}
	e := NewEngine()
	if got := e.EffectiveRange(ctx); got != 1 {
		t.Fatalf("expected nebula-start clamp to effective range 1, got %d", got)
	}
}

func TestEffectiveRangeGravityRiftBonus(t *testing.T) {
	g, ids, systems := chain(t, 3)
	mid := systems[ids[1]]
	mid.Anomalies = map[entities.AnomalyTag]bool{entities.GravityRift: true}
	systems[ids[1]] = mid

	path, _ := g.FindPath(ids[0], ids[2], systems)
	ctx := Context{UnitType: units.Cruiser, Origin: ids[0], Dest: ids[2], Galaxy: g, Systems: systems, Path: path}
	e := NewEngine()
	if got := e.EffectiveRange(ctx); got != 3 {
		t.Fatalf("expected base movement 2 + 1 gravity-rift bonus == 3, got %d", got)
	}
	crossings := e.GravityRiftCrossings(ctx)
	if len(crossings) != 1 || crossings[0] != ids[1] {
		t.Fatalf("expected one gravity-rift crossing at %v, got %v", ids[1], crossings)
	}
}
