package production

import (
	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/errs"
	"github.com/nicoberrocal/galaxyCore/units"
)

// BlockadeManager implements LRR Rule 14: a controlled planet is
// blockaded when enemy ships occupy its system's space and the
// controller has none there. A blockaded planet may still produce ground
// forces, but never ships.
type BlockadeManager struct{}

// NewBlockadeManager returns a ready-to-use blockade manager; it carries
// no state of its own.
func NewBlockadeManager() *BlockadeManager {
	return &BlockadeManager{}
}

// IsBlockaded reports whether planet (controlled, within sys) is
// blockaded: enemy ships present in sys's space and none of the
// controller's own ships there to contest it.
func (b *BlockadeManager) IsBlockaded(planet entities.Planet, sys entities.System, unitsArena map[entities.UnitID]entities.Unit) bool {
	if !planet.Controlled() {
		return false
	}
	ownerHasShips := false
	enemyHasShips := false
	for _, uid := range sys.SpaceUnits {
		u, ok := unitsArena[uid]
		if !ok || !units.IsShip(u.Type) {
			continue
		}
		if u.Owner == planet.Controller {
			ownerHasShips = true
		} else {
			enemyHasShips = true
		}
	}
	return enemyHasShips && !ownerHasShips
}

// CanProduce denies ship production on a blockaded planet; ground force
// and structure production are unaffected.
func (b *BlockadeManager) CanProduce(unitType units.UnitType, blockaded bool) *errs.ValidationError {
	if blockaded && units.IsShip(unitType) {
		return &errs.ValidationError{Code: errs.BlockadedProduction, Unit: string(unitType)}
	}
	return nil
}

// ReturnCapturedUnits implements Rule 14's capture-return side effect:
// the instant a player's production unit is blockaded, any units that
// player previously captured from one of the blockading players are
// returned immediately — not deferred until the blockade lifts. Callers
// pass the blockaded player's captured-units map (keyed by each unit's
// original owner) and the set of players currently blockading them; the
// returned map has every entry keyed by a blockading player stripped
// (the caller is responsible for crediting each stripped unit back to
// its original owner's reinforcement pool). Entries for non-blockading
// owners are untouched.
func (b *BlockadeManager) ReturnCapturedUnits(capturedByOriginalOwner map[entities.PlayerID][]entities.UnitID, blockadingPlayers map[entities.PlayerID]bool) map[entities.PlayerID][]entities.UnitID {
	if len(capturedByOriginalOwner) == 0 {
		return capturedByOriginalOwner
	}
	out := make(map[entities.PlayerID][]entities.UnitID, len(capturedByOriginalOwner))
	for owner, ids := range capturedByOriginalOwner {
		if blockadingPlayers[owner] {
			continue
		}
		out[owner] = ids
	}
	return out
}

// CanCapture reports whether a blockaded player may newly capture a unit
// belonging to owner: Rule 14 forbids capturing further units from any
// blockading player for as long as the blockade persists.
func (b *BlockadeManager) CanCapture(owner entities.PlayerID, blockadingPlayers map[entities.PlayerID]bool) bool {
	return !blockadingPlayers[owner]
}
