// Package config parses process-level configuration for anything that
// hosts the rules engine: RNG seed, fleet pool defaults, and the Mongo
// DSN the store package connects with. Core rule packages never import
// this package — they take plain values through constructors — so
// swapping config sources never touches rule logic.
package config

import (
	"github.com/jessevdk/go-flags"
)

// Config is the full set of process-level knobs a host binary accepts.
type Config struct {
	MongoURI        string `long:"mongo-uri" env:"GALAXY_MONGO_URI" default:"mongodb://localhost:27017" description:"MongoDB connection string for GameState persistence"`
	MongoDatabase   string `long:"mongo-database" env:"GALAXY_MONGO_DATABASE" default:"galaxycore" description:"MongoDB database name"`
	MongoCollection string `long:"mongo-collection" env:"GALAXY_MONGO_COLLECTION" default:"snapshots" description:"MongoDB collection name for GameState snapshots"`

	RandSeed int64 `long:"rand-seed" env:"GALAXY_RAND_SEED" default:"1" description:"seed for the coordinator's deterministic dice log"`

	DefaultFleetPool int `long:"default-fleet-pool" env:"GALAXY_DEFAULT_FLEET_POOL" default:"4" description:"starting fleet command pool for new players"`
}

// Parse reads Config from args (typically os.Args[1:]), falling back to
// each field's env var and then its default tag.
func Parse(args []string) (*Config, error) {
	var cfg Config
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return &cfg, nil
}
