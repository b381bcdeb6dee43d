// Package diplomacy tracks per-pair player relations (ally/enemy) and
// adapts them into the IsEnemy hook the movement package accepts. The
// default, unconfigured behavior treats any two
// distinct players as enemies — the same rule the core uses when no
// Provider is wired at all.
package diplomacy

import (
	"github.com/nicoberrocal/galaxyCore/entities"
)

// Relation is the closed set of pairwise player relations.
type Relation int

const (
	RelationUnknown Relation = iota
	RelationAlly
	RelationEnemy
)

// Pair is a normalized, order-independent player pair used as a map key.
type Pair struct {
	A entities.PlayerID
	B entities.PlayerID
}

func normalizePair(a, b entities.PlayerID) Pair {
	if a.Hex() <= b.Hex() {
		return Pair{A: a, B: b}
	}
	return Pair{A: b, B: a}
}

// Provider answers ally/enemy queries for a player pair.
type Provider interface {
	AreAllies(a, b entities.PlayerID) bool
	AreEnemies(a, b entities.PlayerID) bool
}

// MemoryProvider is an in-memory Provider: distinct players default to
// enemies unless a relation has been explicitly recorded.
type MemoryProvider struct {
	relations map[Pair]Relation
}

// NewMemoryProvider returns an empty provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{relations: make(map[Pair]Relation)}
}

func (p *MemoryProvider) AreAllies(a, b entities.PlayerID) bool {
	if a == b {
		return true
	}
	return p.relations[normalizePair(a, b)] == RelationAlly
}

func (p *MemoryProvider) AreEnemies(a, b entities.PlayerID) bool {
	if a == b {
		return false
	}
	if r, ok := p.relations[normalizePair(a, b)]; ok {
		return r == RelationEnemy
	}
	return true
}

// FormAlliance records a and b as allies.
func (p *MemoryProvider) FormAlliance(a, b entities.PlayerID) {
	p.relations[normalizePair(a, b)] = RelationAlly
}

// BreakAlliance reverts a and b to the default (enemy) relation.
func (p *MemoryProvider) BreakAlliance(a, b entities.PlayerID) {
	delete(p.relations, normalizePair(a, b))
}

// SetEnemy explicitly records a and b as enemies.
func (p *MemoryProvider) SetEnemy(a, b entities.PlayerID) {
	p.relations[normalizePair(a, b)] = RelationEnemy
}

// IsEnemyOf adapts a Provider into the single-argument closure that
// movement.MoveInput.IsEnemy accepts (production placement takes no such
// closure; it treats every other owner as hostile): given
// the acting player, it returns a function reporting whether a candidate
// owner is hostile to them. A nil Provider yields the core's own default
// (any other player is an enemy).
func IsEnemyOf(provider Provider, actor entities.PlayerID) func(owner entities.PlayerID) bool {
	if provider == nil {
		return func(owner entities.PlayerID) bool { return owner != actor }
	}
	return func(owner entities.PlayerID) bool { return provider.AreEnemies(actor, owner) }
}
