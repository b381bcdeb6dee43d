package units

import "testing"

func TestStatsIsPure(t *testing.T) {
	techs := NewTechSet(GravityDrive)
	a, _ := Stats(Cruiser, FactionSol, techs)
	b, _ := Stats(Cruiser, FactionSol, techs)
	if a != b {
		t.Fatalf("expected identical stats for identical inputs: %+v vs %+v", a, b)
	}
}

func TestCruiserIIUpgrade(t *testing.T) {
	plain, _ := Stats(Cruiser, FactionSol, NewTechSet())
	upgraded, _ := Stats(Cruiser, FactionSol, NewTechSet(CruiserIITech))
	if plain.Movement != 2 {
		t.Fatalf("expected base cruiser movement 2, got %d", plain.Movement)
	}
	if upgraded.Movement != 3 || upgraded.Capacity != 1 {
		t.Fatalf("expected cruiser_ii upgrade to apply, got %+v", upgraded)
	}
}

func TestUnknownUnitType(t *testing.T) {
	if _, ok := Stats(UnitType("not_a_unit"), FactionNone, NewTechSet()); ok {
		t.Fatalf("expected unknown unit type to report !ok")
	}
}

func TestShipGroundStructureSetsPartition(t *testing.T) {
	all := []UnitType{Carrier, Cruiser, CruiserII, Destroyer, Dreadnought, Fighter, Flagship, WarSun, Infantry, Mech, PDS, SpaceDock}
	for _, u := range all {
		count := 0
		if IsShip(u) {
			count++
		}
		if IsGroundForce(u) {
			count++
		}
		if IsStructure(u) {
			count++
		}
		if count != 1 {
			t.Fatalf("unit %s should belong to exactly one of ship/ground/structure, belongs to %d", u, count)
		}
	}
}
