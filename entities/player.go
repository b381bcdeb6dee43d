package entities

import "github.com/nicoberrocal/galaxyCore/units"

// CommandSheet holds a player's three command pools. Invariant: each pool
// is non-negative.
type CommandSheet struct {
	Tactic   int `bson:"tactic"`
	Fleet    int `bson:"fleet"`
	Strategy int `bson:"strategy"`
}

// Player is a participant in the game: identity, faction, command pools,
// reinforcements and bank.
//
// Invariants: TradeGoods >= 0, Commodities <= CommodityMax, each
// CommandSheet pool >= 0.
type Player struct {
	ID             PlayerID               `bson:"_id"`
	Faction        units.Faction          `bson:"faction"`
	CommandSheet   CommandSheet           `bson:"commandSheet"`
	Reinforcements map[units.UnitType]int `bson:"reinforcements,omitempty"`
	TradeGoods     int                    `bson:"tradeGoods"`
	Commodities    int                    `bson:"commodities"`
	CommodityMax   int                    `bson:"commodityMax"`
	Technologies   units.TechSet          `bson:"technologies,omitempty"`

	// CapturedUnits holds units this player currently holds captured,
	// keyed by each unit's original owner (Rule 14's blockade
	// capture-return side effect reads and clears entries here).
	CapturedUnits map[PlayerID][]UnitID `bson:"capturedUnits,omitempty"`
}

// SpendableResources is the player-held portion (trade goods) of the
// resource pool a production check spends from. Planet resources are not
// included; production.Manager.CheckCost takes the total as its available
// argument, summed by its caller.
func (p Player) SpendableResources() int {
	return p.TradeGoods
}

// Clone returns a deep copy safe to mutate independently of p.
func (p Player) Clone() Player {
	out := p
	if p.Reinforcements != nil {
		out.Reinforcements = make(map[units.UnitType]int, len(p.Reinforcements))
		for k, v := range p.Reinforcements {
			out.Reinforcements[k] = v
		}
	}
	if p.Technologies != nil {
		out.Technologies = make(units.TechSet, len(p.Technologies))
		for k, v := range p.Technologies {
			out.Technologies[k] = v
		}
	}
	if p.CapturedUnits != nil {
		out.CapturedUnits = make(map[PlayerID][]UnitID, len(p.CapturedUnits))
		for k, v := range p.CapturedUnits {
			out.CapturedUnits[k] = append([]UnitID(nil), v...)
		}
	}
	return out
}
