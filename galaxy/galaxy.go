// Package galaxy implements the hex-board topology: where each system sits,
// which systems are connected by hyperlane, and adjacency/pathfinding over
// the union of physical distance-1, wormhole and hyperlane edges.
//
// Galaxy itself is a pure topology value — it knows coordinates and
// hyperlane edges, nothing about unit placement or ownership. Callers that
// need wormhole-aware adjacency or pathfinding pass in the current
// entities.System values (held by the immutable GameState) alongside the
// query; this keeps Galaxy cheap to snapshot and lets a caller cache
// derived pathfinding results safely per GameState version.
package galaxy

import (
	"sort"

	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/hexcoord"
)

// Galaxy is the coordinate<->system registry plus hyperlane edges.
type Galaxy struct {
	coordOf    map[entities.SystemID]hexcoord.HexCoord
	systemAt   map[hexcoord.HexCoord]entities.SystemID
	hyperlanes map[entities.SystemID]map[entities.SystemID]bool
}

// New returns an empty galaxy.
func New() *Galaxy {
	return &Galaxy{
		coordOf:    make(map[entities.SystemID]hexcoord.HexCoord),
		systemAt:   make(map[hexcoord.HexCoord]entities.SystemID),
		hyperlanes: make(map[entities.SystemID]map[entities.SystemID]bool),
	}
}

// Place registers system at coord. It is a no-op (idempotent) if the exact
// same (coord, id) pair is placed again; it reports false if coord is
// already occupied by a different system, or id is already placed
// elsewhere — Place is injective in both directions.
func (g *Galaxy) Place(coord hexcoord.HexCoord, id entities.SystemID) bool {
	if existing, ok := g.systemAt[coord]; ok && existing != id {
		return false
	}
	if existing, ok := g.coordOf[id]; ok && existing != coord {
		return false
	}
	g.coordOf[id] = coord
	g.systemAt[coord] = id
	return true
}

// CoordOf returns the coordinate of a registered system.
func (g *Galaxy) CoordOf(id entities.SystemID) (hexcoord.HexCoord, bool) {
	c, ok := g.coordOf[id]
	return c, ok
}

// SystemOf returns the system id placed at coord.
func (g *Galaxy) SystemOf(coord hexcoord.HexCoord) (entities.SystemID, bool) {
	id, ok := g.systemAt[coord]
	return id, ok
}

// HyperlaneConnect adds a symmetric hyperlane edge between a and b,
// independent of physical distance.
func (g *Galaxy) HyperlaneConnect(a, b entities.SystemID) {
	if g.hyperlanes[a] == nil {
		g.hyperlanes[a] = make(map[entities.SystemID]bool)
	}
	if g.hyperlanes[b] == nil {
		g.hyperlanes[b] = make(map[entities.SystemID]bool)
	}
	g.hyperlanes[a][b] = true
	g.hyperlanes[b][a] = true
}

// hyperlaneConnected reports whether a and b have a direct hyperlane edge.
func (g *Galaxy) hyperlaneConnected(a, b entities.SystemID) bool {
	return g.hyperlanes[a][b]
}

// SystemsAdjacent reports whether a and b are adjacent: physical
// distance 1, a shared wormhole tag, or a hyperlane edge. systems supplies
// the current wormhole tags (from the GameState snapshot being queried).
func (g *Galaxy) SystemsAdjacent(a, b entities.SystemID, systems map[entities.SystemID]entities.System) bool {
	if a == b {
		return false
	}
	ca, aok := g.coordOf[a]
	cb, bok := g.coordOf[b]
	if aok && bok && hexcoord.Distance(ca, cb) == 1 {
		return true
	}
	if sa, ok := systems[a]; ok {
		if sb, ok := systems[b]; ok && sa.SharesWormholeWith(sb) {
			return true
		}
	}
	return g.hyperlaneConnected(a, b)
}

// UnitAdjacentToSystem locates the system containing a unit and tests
// adjacency to target. A system is never adjacent to itself for this
// query.
func (g *Galaxy) UnitAdjacentToSystem(unitSystem, target entities.SystemID, systems map[entities.SystemID]entities.System) bool {
	return g.SystemsAdjacent(unitSystem, target, systems)
}

// PlanetAdjacentToSystem reports adjacency for a planet's containing
// system to target — unlike units, a planet IS considered adjacent to its
// own containing system.
func (g *Galaxy) PlanetAdjacentToSystem(planetSystem, target entities.SystemID, systems map[entities.SystemID]entities.System) bool {
	if planetSystem == target {
		return true
	}
	return g.SystemsAdjacent(planetSystem, target, systems)
}

// neighborsOf returns the systems adjacent to id in a stable order: physical
// hex neighbors first (in canonical hex-direction order), then
// wormhole-sharing systems, then hyperlane-connected systems — the last two
// groups sorted by id string so ties break deterministically.
func (g *Galaxy) neighborsOf(id entities.SystemID, systems map[entities.SystemID]entities.System) []entities.SystemID {
	seen := make(map[entities.SystemID]bool)
	var out []entities.SystemID

	add := func(n entities.SystemID) {
		if n == id || seen[n] {
			return
		}
		seen[n] = true
		out = append(out, n)
	}

	if c, ok := g.coordOf[id]; ok {
		for _, nc := range hexcoord.Neighbors(c) {
			if n, ok := g.systemAt[nc]; ok {
				add(n)
			}
		}
	}

	if self, ok := systems[id]; ok {
		var wormholeNeighbors []entities.SystemID
		for sid, s := range systems {
			if sid == id || seen[sid] {
				continue
			}
			if self.SharesWormholeWith(s) {
				wormholeNeighbors = append(wormholeNeighbors, sid)
			}
		}
		sort.Slice(wormholeNeighbors, func(i, j int) bool {
			return wormholeNeighbors[i].Hex() < wormholeNeighbors[j].Hex()
		})
		for _, n := range wormholeNeighbors {
			add(n)
		}
	}

	var hyperlaneNeighbors []entities.SystemID
	for n := range g.hyperlanes[id] {
		if !seen[n] {
			hyperlaneNeighbors = append(hyperlaneNeighbors, n)
		}
	}
	sort.Slice(hyperlaneNeighbors, func(i, j int) bool {
		return hyperlaneNeighbors[i].Hex() < hyperlaneNeighbors[j].Hex()
	})
	for _, n := range hyperlaneNeighbors {
		add(n)
	}

	return out
}

// FindPath returns the shortest sequence of systems from -> to over the
// adjacency graph (physical + wormhole + hyperlane), including both
// endpoints. Ties are broken by the stable neighbor order produced by
// neighborsOf. Returns (nil, false) if no path exists.
func (g *Galaxy) FindPath(from, to entities.SystemID, systems map[entities.SystemID]entities.System) ([]entities.SystemID, bool) {
	if from == to {
		return []entities.SystemID{from}, true
	}

	visited := map[entities.SystemID]int{from: 0}
	queue := []pathFrame{{id: from, prev: -1}}
	frames := []pathFrame{{id: from, prev: -1}}

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		curIdx := qi
		for _, n := range g.neighborsOf(cur.id, systems) {
			if _, ok := visited[n]; ok {
				continue
			}
			visited[n] = len(frames)
			nf := pathFrame{id: n, prev: curIdx}
			frames = append(frames, nf)
			queue = append(queue, nf)
			if n == to {
				return reconstructPath(frames, len(frames)-1), true
			}
		}
	}
	return nil, false
}

// pathFrame is one BFS queue entry: the system reached and the index (in
// the frames slice) of the frame it was reached from.
type pathFrame struct {
	id   entities.SystemID
	prev int
}

func reconstructPath(frames []pathFrame, idx int) []entities.SystemID {
	var rev []entities.SystemID
	for idx != -1 {
		rev = append(rev, frames[idx].id)
		idx = frames[idx].prev
	}
	out := make([]entities.SystemID, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}

// PlayersNeighbors reports whether the union of systems where a has
// presence (unit or controlled planet) shares a system with, or is
// adjacent to, any system where b has presence (LRR Rule 60).
func (g *Galaxy) PlayersNeighbors(aPresence, bPresence map[entities.SystemID]bool, systems map[entities.SystemID]entities.System) bool {
	for s := range aPresence {
		if bPresence[s] {
			return true
		}
	}
	for sa := range aPresence {
		for sb := range bPresence {
			if g.SystemsAdjacent(sa, sb, systems) {
				return true
			}
		}
	}
	return false
}
