package systems

import (
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
	"testing"
)

type namerStub map[string]string

func (n namerStub) SpeciesName(id string) (string, bool) {
	v, ok := n[id]
	return v, ok
}

func newCreature(level int, growth enums.GrowthRate, evo *domain.EvolutionData) *domain.Creature {
	base := domain.Stats{HP: 40, MaxHP: 40, Attack: 50, Defense: 30, Speed: 60, Special: 20}
	stats := domain.LevelStats(base, level)
	return &domain.Creature{
		ID:        "c1",
		SpeciesID: "flamby",
		Name:      "Flamby",
		Level:     level,
		BaseStats: base,
		Stats:     stats,
		CurrentHP: stats.MaxHP / 2,
		ExpToNext: domain.ExpRequired(level+1, growth),
		Growth:    growth,
		Evolution: evo,
	}
}

func TestExpRequired(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		growth enums.GrowthRate
		want   int
	}{
		{"medium level 2", 2, enums.GrowthMedium, 200},
		{"medium level 10", 10, enums.GrowthMedium, 1000},
		{"slow level 2", 2, enums.GrowthSlow, 237},
		{"fast level 2", 2, enums.GrowthFast, 174},
		{"level floor", 0, enums.GrowthMedium, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.ExpRequired(tt.level, tt.growth); got != tt.want {
				t.Errorf("ExpRequired(%d, %s) = %d, want %d", tt.level, tt.growth, got, tt.want)
			}
		})
	}

	// fast needs less than medium needs less than slow
	for level := 2; level <= 50; level++ {
		f := domain.ExpRequired(level, enums.GrowthFast)
		m := domain.ExpRequired(level, enums.GrowthMedium)
		s := domain.ExpRequired(level, enums.GrowthSlow)
		if !(f < m && m < s) {
			t.Fatalf("level %d: fast=%d medium=%d slow=%d", level, f, m, s)
		}
	}
}

func TestAwardExperience_ZeroIsNoop(t *testing.T) {
	engine := NewProgressionEngine(nil)
	evo := &domain.EvolutionData{TargetID: "flamaroth", Level: 3}
	c := newCreature(5, enums.GrowthMedium, evo)
	before := *c
	beforeEvo := *evo

	for _, amount := range []int{0, -50} {
		res := engine.AwardExperience(c, amount)
		if res.LeveledUp || res.Evolved || res.NewLevel != 5 {
			t.Errorf("award %d: %+v", amount, res)
		}
	}
	if c.Level != before.Level || c.Stats != before.Stats || c.Experience != before.Experience || c.CurrentHP != before.CurrentHP {
		t.Errorf("creature changed: %+v", c)
	}
	if *c.Evolution != beforeEvo {
		t.Errorf("evolution changed: %+v", c.Evolution)
	}
}

func TestAwardExperience_LevelUp(t *testing.T) {
	engine := NewProgressionEngine(nil)
	c := newCreature(1, enums.GrowthMedium, nil)

	// Level 1 -> 2 costs 200, 2 -> 3 costs 300.
	res := engine.AwardExperience(c, 550)
	if !res.LeveledUp || res.NewLevel != 3 || res.LevelsGained != 2 {
		t.Fatalf("result = %+v", res)
	}
	if c.Experience != 50 || c.ExpToNext != 400 {
		t.Errorf("exp=%d next=%d, want 50/400", c.Experience, c.ExpToNext)
	}
	if c.Stats != domain.LevelStats(c.BaseStats, 3) {
		t.Errorf("stats not recomputed: %+v", c.Stats)
	}
	if c.CurrentHP != c.Stats.MaxHP {
		t.Errorf("hp %d not restored to %d", c.CurrentHP, c.Stats.MaxHP)
	}
}

func TestAwardExperience_Associative(t *testing.T) {
	engine := NewProgressionEngine(namerStub{"flamaroth": "Flamaroth"})

	for _, growth := range []enums.GrowthRate{enums.GrowthSlow, enums.GrowthMedium, enums.GrowthFast} {
		split := newCreature(2, growth, &domain.EvolutionData{TargetID: "flamaroth", Level: 3})
		whole := newCreature(2, growth, &domain.EvolutionData{TargetID: "flamaroth", Level: 3})

		a, b := 250, 900
		engine.AwardExperience(split, a)
		engine.AwardExperience(split, b)
		engine.AwardExperience(whole, a+b)

		if split.Level < 4 {
			t.Fatalf("%s: expected at least two thresholds crossed, level %d", growth, split.Level)
		}
		if split.Level != whole.Level || split.Experience != whole.Experience || split.ExpToNext != whole.ExpToNext {
			t.Errorf("%s: split L%d/%d/%d whole L%d/%d/%d", growth,
				split.Level, split.Experience, split.ExpToNext, whole.Level, whole.Experience, whole.ExpToNext)
		}
		if split.Stats != whole.Stats || split.BaseStats != whole.BaseStats || split.CurrentHP != whole.CurrentHP {
			t.Errorf("%s: stats differ %+v vs %+v", growth, split.Stats, whole.Stats)
		}
		if *split.Evolution != *whole.Evolution || split.Name != whole.Name {
			t.Errorf("%s: evolution differs", growth)
		}
	}
}

func TestAwardExperience_EvolvesOnce(t *testing.T) {
	engine := NewProgressionEngine(namerStub{"flamaroth": "Flamaroth"})
	c := newCreature(4, enums.GrowthMedium, &domain.EvolutionData{TargetID: "flamaroth", Level: 5})
	base := c.BaseStats

	res := engine.AwardExperience(c, c.ExpToNext)
	if !res.Evolved || c.Level != 5 {
		t.Fatalf("expected evolution at level 5: %+v", res)
	}
	if c.BaseStats.Attack != base.Attack*12/10 || c.Name != "Flamaroth" || c.SpeciesID != "flamaroth" {
		t.Errorf("evolved creature = %+v", c)
	}
	if c.CurrentHP != c.Stats.MaxHP {
		t.Error("evolution must fully heal")
	}

	evolvedBase := c.BaseStats
	res = engine.AwardExperience(c, c.ExpToNext)
	if res.Evolved || c.BaseStats != evolvedBase {
		t.Errorf("second crossing evolved again: %+v", res)
	}
	if engine.Evolve(c) {
		t.Error("Evolve on an evolved creature must fail")
	}
}

func TestAwardExperience_NoLevelNoEvolution(t *testing.T) {
	engine := NewProgressionEngine(nil)
	// Already past the evolution level but the award does not level up.
	c := newCreature(20, enums.GrowthMedium, &domain.EvolutionData{TargetID: "x", Level: 16})

	res := engine.AwardExperience(c, 1)
	if res.Evolved || c.Evolution.Evolved {
		t.Error("evolution must wait for a level crossing")
	}
}

func TestEvolve_WithoutEvolution(t *testing.T) {
	engine := NewProgressionEngine(nil)
	c := newCreature(3, enums.GrowthFast, nil)
	if engine.Evolve(c) {
		t.Error("creature without evolution data evolved")
	}
}

func TestCanEvolve(t *testing.T) {
	engine := NewProgressionEngine(nil)
	tests := []struct {
		name  string
		level int
		evo   *domain.EvolutionData
		want  bool
	}{
		{"no path", 30, nil, false},
		{"below level", 15, &domain.EvolutionData{TargetID: "x", Level: 16}, false},
		{"at level", 16, &domain.EvolutionData{TargetID: "x", Level: 16}, true},
		{"already evolved", 20, &domain.EvolutionData{TargetID: "x", Level: 16, Evolved: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.CanEvolve(newCreature(tt.level, enums.GrowthMedium, tt.evo)); got != tt.want {
				t.Errorf("CanEvolve = %v, want %v", got, tt.want)
			}
		})
	}
}
