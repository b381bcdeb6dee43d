// Package gamestate holds the immutable GameState snapshot (C11) and its
// transition functions. Every transition returns a new GameState value —
// none of them mutate the receiver — so a caller holding an older
// snapshot keeps observing consistent state even while a newer one is
// being built elsewhere.
package gamestate

import (
	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/galaxy"
)

// Phase is the closed set of round phases the coordinator steps through.
type Phase string

const (
	PhaseStrategy Phase = "strategy"
	PhaseAction   Phase = "action"
	PhaseStatus   Phase = "status"
	PhaseAgenda   Phase = "agenda"
)

// GameState is the full snapshot the rules engine operates over: galaxy
// topology, every system/unit/player, and round bookkeeping. Systems and
// Units are the two arenas every id in the rest of the model resolves
// through.
type GameState struct {
	Galaxy  *galaxy.Galaxy
	Systems map[entities.SystemID]entities.System
	Units   map[entities.UnitID]entities.Unit
	Players map[entities.PlayerID]entities.Player

	Phase        Phase
	Round        int
	Speaker      entities.PlayerID
	ActiveSystem entities.SystemID // zero value when no tactical action is in progress

	// VictoryPoints and CompletedObjectives are intentionally minimal:
	// the core tracks the numbers a tactical action or status phase needs
	// to update, not full objective-card text or scoring eligibility
	// rules (out of scope — see Non-goals).
	VictoryPoints       map[entities.PlayerID]int
	CompletedObjectives map[entities.PlayerID]map[string]bool
}

// New returns an empty GameState ready to be populated by a setup routine.
func New(g *galaxy.Galaxy) GameState {
	return GameState{
		Galaxy:              g,
		Systems:             make(map[entities.SystemID]entities.System),
		Units:               make(map[entities.UnitID]entities.Unit),
		Players:             make(map[entities.PlayerID]entities.Player),
		Phase:               PhaseStrategy,
		VictoryPoints:       make(map[entities.PlayerID]int),
		CompletedObjectives: make(map[entities.PlayerID]map[string]bool),
	}
}

// Clone returns a deep copy of s. Galaxy is shared by reference: it is
// pure topology (coordinates and hyperlane edges) that never changes
// after setup, so sharing it across snapshots is safe and avoids
// needlessly copying it on every transition.
func (s GameState) Clone() GameState {
	out := s

	out.Systems = make(map[entities.SystemID]entities.System, len(s.Systems))
	for id, sys := range s.Systems {
		out.Systems[id] = sys.Clone()
	}

	out.Units = make(map[entities.UnitID]entities.Unit, len(s.Units))
	for id, u := range s.Units {
		out.Units[id] = u
	}

	out.Players = make(map[entities.PlayerID]entities.Player, len(s.Players))
	for id, p := range s.Players {
		out.Players[id] = p.Clone()
	}

	out.VictoryPoints = make(map[entities.PlayerID]int, len(s.VictoryPoints))
	for id, v := range s.VictoryPoints {
		out.VictoryPoints[id] = v
	}

	out.CompletedObjectives = make(map[entities.PlayerID]map[string]bool, len(s.CompletedObjectives))
	for id, objs := range s.CompletedObjectives {
		cp := make(map[string]bool, len(objs))
		for k, v := range objs {
			cp[k] = v
		}
		out.CompletedObjectives[id] = cp
	}

	return out
}

// WithUnitMoved returns a new GameState with unit relocated from one
// system's space to another's. It is the core's one movement-commit
// primitive: the movement package only validates, it never mutates state
// itself.
func (s GameState) WithUnitMoved(unit entities.UnitID, from, to entities.SystemID) GameState {
	next := s.Clone()
	fromSys := next.Systems[from]
	fromSys.SpaceUnits = removeUnit(fromSys.SpaceUnits, unit)
	next.Systems[from] = fromSys

	toSys := next.Systems[to]
	toSys.SpaceUnits = append(toSys.SpaceUnits, unit)
	next.Systems[to] = toSys

	return next
}

func removeUnit(units []entities.UnitID, target entities.UnitID) []entities.UnitID {
	out := units[:0:0]
	for _, u := range units {
		if u != target {
			out = append(out, u)
		}
	}
	return out
}

// WithPlanetController returns a new GameState with planet's controller
// set to newController within sys.
func (s GameState) WithPlanetController(sys entities.SystemID, planet entities.PlanetID, newController entities.PlayerID) GameState {
	next := s.Clone()
	system := next.Systems[sys]
	for i, p := range system.Planets {
		if p.ID == planet {
			system.Planets[i].Controller = newController
		}
	}
	next.Systems[sys] = system
	return next
}

// WithActiveSystem returns a new GameState with the tactical action's
// active system set (and a command token placed there for actor).
func (s GameState) WithActiveSystem(sys entities.SystemID, actor entities.PlayerID) GameState {
	next := s.Clone()
	next.ActiveSystem = sys
	system := next.Systems[sys]
	if system.CommandTokens == nil {
		system.CommandTokens = make(map[entities.PlayerID]bool, 1)
	}
	system.CommandTokens[actor] = true
	next.Systems[sys] = system
	return next
}

// WithTacticSpent returns a new GameState with player's tactic pool
// decremented by one, for the activation step's command-token cost.
func (s GameState) WithTacticSpent(player entities.PlayerID) GameState {
	next := s.Clone()
	p := next.Players[player]
	p.CommandSheet.Tactic--
	next.Players[player] = p
	return next
}

// WithPhase returns a new GameState advanced to phase.
func (s GameState) WithPhase(phase Phase) GameState {
	next := s.Clone()
	next.Phase = phase
	return next
}

// WithVictoryPoints returns a new GameState with player's victory point
// total set to points.
func (s GameState) WithVictoryPoints(player entities.PlayerID, points int) GameState {
	next := s.Clone()
	next.VictoryPoints[player] = points
	return next
}
