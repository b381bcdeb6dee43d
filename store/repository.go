// Package store persists GameState snapshots to MongoDB. It is an
// ambient concern the core rules engine never calls into directly —
// GameState stays a plain in-memory value everywhere else in this
// module; only a caller that wants durable snapshots reaches for this
// package.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/gamestate"
)

// snapshotDoc is the on-disk shape of a GameState. Each system already
// carries its own hex coordinate (entities.System.Coord), so the galaxy's
// topology is rebuilt by re-registering every system's coordinate and any
// hyperlane edges with a fresh galaxy.Galaxy at load time — this package
// only round-trips the arenas, round bookkeeping and scoring.
type snapshotDoc struct {
	ID                  bson.ObjectID               `bson:"_id,omitempty"`
	Systems             map[string]entities.System  `bson:"systems"`
	Units               map[string]entities.Unit    `bson:"units"`
	Players             map[string]entities.Player  `bson:"players"`
	Phase               gamestate.Phase             `bson:"phase"`
	Round               int                         `bson:"round"`
	Speaker             string                      `bson:"speaker,omitempty"`
	ActiveSystem        string                      `bson:"activeSystem,omitempty"`
	VictoryPoints       map[string]int              `bson:"victoryPoints"`
	CompletedObjectives map[string]map[string]bool  `bson:"completedObjectives"`
}

// GameStateRepository persists and loads GameState snapshots in a single
// MongoDB collection, one document per saved snapshot id.
type GameStateRepository struct {
	collection *mongo.Collection
}

// Connect dials MongoDB at uri and returns a repository bound to
// database.collection. Compression is negotiated over the wire via
// snappy and zstd (SCRAM auth, if the URI carries credentials, is
// handled transparently by the driver's connection string parsing).
func Connect(ctx context.Context, uri, database, collection string) (*GameStateRepository, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetCompressors([]string{"snappy", "zstd"})

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &GameStateRepository{collection: client.Database(database).Collection(collection)}, nil
}

// Save upserts state under id, returning the id a fresh save was assigned
// one.
func (r *GameStateRepository) Save(ctx context.Context, id bson.ObjectID, state gamestate.GameState) (bson.ObjectID, error) {
	if id.IsZero() {
		id = bson.NewObjectID()
	}
	doc := toDoc(id, state)
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts)
	if err != nil {
		return id, fmt.Errorf("save snapshot %s: %w", id.Hex(), err)
	}
	return id, nil
}

// Load reads back the snapshot saved under id and reconstructs a
// GameState. The returned state has no Galaxy set — the caller rebuilds
// one from the loaded Systems (each carries its own Coord) and
// re-applies any hyperlane edges, then assigns it to the returned
// GameState before use.
func (r *GameStateRepository) Load(ctx context.Context, id bson.ObjectID) (gamestate.GameState, error) {
	var doc snapshotDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return gamestate.GameState{}, fmt.Errorf("load snapshot %s: %w", id.Hex(), err)
	}
	return fromDoc(doc)
}

func toDoc(id bson.ObjectID, state gamestate.GameState) snapshotDoc {
	doc := snapshotDoc{
		ID:                  id,
		Systems:              make(map[string]entities.System, len(state.Systems)),
		Units:                make(map[string]entities.Unit, len(state.Units)),
		Players:              make(map[string]entities.Player, len(state.Players)),
		Phase:                state.Phase,
		Round:                state.Round,
		VictoryPoints:        make(map[string]int, len(state.VictoryPoints)),
		CompletedObjectives:  make(map[string]map[string]bool, len(state.CompletedObjectives)),
	}
	for id, sys := range state.Systems {
		doc.Systems[id.Hex()] = sys
	}
	for id, u := range state.Units {
		doc.Units[id.Hex()] = u
	}
	for id, p := range state.Players {
		doc.Players[id.Hex()] = p
	}
	if !state.Speaker.IsZero() {
		doc.Speaker = state.Speaker.Hex()
	}
	if !state.ActiveSystem.IsZero() {
		doc.ActiveSystem = state.ActiveSystem.Hex()
	}
	for id, v := range state.VictoryPoints {
		doc.VictoryPoints[id.Hex()] = v
	}
	for id, objs := range state.CompletedObjectives {
		doc.CompletedObjectives[id.Hex()] = objs
	}
	return doc
}

func fromDoc(doc snapshotDoc) (gamestate.GameState, error) {
	state := gamestate.GameState{
		Systems:             make(map[entities.SystemID]entities.System, len(doc.Systems)),
		Units:               make(map[entities.UnitID]entities.Unit, len(doc.Units)),
		Players:             make(map[entities.PlayerID]entities.Player, len(doc.Players)),
		Phase:               doc.Phase,
		Round:               doc.Round,
		VictoryPoints:       make(map[entities.PlayerID]int, len(doc.VictoryPoints)),
		CompletedObjectives: make(map[entities.PlayerID]map[string]bool, len(doc.CompletedObjectives)),
	}
	for hex, sys := range doc.Systems {
		id, err := bson.ObjectIDFromHex(hex)
		if err != nil {
			return gamestate.GameState{}, fmt.Errorf("decode system id %q: %w", hex, err)
		}
		state.Systems[id] = sys
	}
	for hex, u := range doc.Units {
		id, err := bson.ObjectIDFromHex(hex)
		if err != nil {
			return gamestate.GameState{}, fmt.Errorf("decode unit id %q: %w", hex, err)
		}
		state.Units[id] = u
	}
	for hex, p := range doc.Players {
		id, err := bson.ObjectIDFromHex(hex)
		if err != nil {
			return gamestate.GameState{}, fmt.Errorf("decode player id %q: %w", hex, err)
		}
		state.Players[id] = p
	}
	if doc.Speaker != "" {
		id, err := bson.ObjectIDFromHex(doc.Speaker)
		if err != nil {
			return gamestate.GameState{}, fmt.Errorf("decode speaker id %q: %w", doc.Speaker, err)
		}
		state.Speaker = id
	}
	if doc.ActiveSystem != "" {
		id, err := bson.ObjectIDFromHex(doc.ActiveSystem)
		if err != nil {
			return gamestate.GameState{}, fmt.Errorf("decode active system id %q: %w", doc.ActiveSystem, err)
		}
		state.ActiveSystem = id
	}
	for hex, v := range doc.VictoryPoints {
		id, err := bson.ObjectIDFromHex(hex)
		if err != nil {
			return gamestate.GameState{}, fmt.Errorf("decode player id %q: %w", hex, err)
		}
		state.VictoryPoints[id] = v
	}
	for hex, objs := range doc.CompletedObjectives {
		id, err := bson.ObjectIDFromHex(hex)
		if err != nil {
			return gamestate.GameState{}, fmt.Errorf("decode player id %q: %w", hex, err)
		}
		state.CompletedObjectives[id] = objs
	}
	return state, nil
}
