package batch

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/galaxy"
	"github.com/nicoberrocal/galaxyCore/hexcoord"
	"github.com/nicoberrocal/galaxyCore/movement"
	"github.com/nicoberrocal/galaxyCore/units"
)

func TestValidateManyIsIndependentPerMove(t *testing.T) {
	g := galaxy.New()
	a := bson.NewObjectID()
	b := bson.NewObjectID()
	c := bson.NewObjectID()
	g.Place(hexcoord.HexCoord{Q: 0, R: 0}, a)
	g.Place(hexcoord.HexCoord{Q: 1, R: 0}, b)
	g.Place(hexcoord.HexCoord{Q: 100, R: 100}, c) // unreachable from a/b

	systems := map[entities.SystemID]entities.System{
		a: {ID: a, Coord: hexcoord.HexCoord{Q: 0, R: 0}},
		b: {ID: b, Coord: hexcoord.HexCoord{Q: 1, R: 0}},
		c: {ID: c, Coord: hexcoord.HexCoord{Q: 100, R: 100}},
	}

	validMove := movement.MoveInput{
		Unit: entities.Unit{ID: bson.NewObjectID(), Type: units.Cruiser}, Origin: a, Dest: b, Systems: systems,
	}
	unreachableMove := movement.MoveInput{
		Unit: entities.Unit{ID: bson.NewObjectID(), Type: units.Cruiser}, Origin: a, Dest: c, Systems: systems,
	}

	bv := NewBatchValidator(movement.NewValidator(g))
	results, err := bv.ValidateMany(context.Background(), []movement.MoveInput{validMove, unreachableMove})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Err != nil {
		t.Fatalf("expected the reachable move to validate, got %v", results[0].Err)
	}
	if results[1].Err == nil || results[1].Err.Code != "no_path_exists" {
		t.Fatalf("expected the unreachable move to fail independently, got %v", results[1].Err)
	}
}
