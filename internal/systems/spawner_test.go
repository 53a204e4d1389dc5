package systems

import (
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/pkg/utils"
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"
)

type popStub struct {
	spawned []domain.Vec3
	levels  []int
}

func (p *popStub) Count() int { return len(p.spawned) }

func (p *popStub) Spawn(pos domain.Vec3, level int, _ *rand.Rand) (string, bool) {
	p.spawned = append(p.spawned, pos)
	p.levels = append(p.levels, level)
	return fmt.Sprintf("s%d", len(p.spawned)), true
}

func spawnerConfig() SpawnerConfig {
	return SpawnerConfig{
		Max:         3,
		Cooldown:    3 * time.Second,
		MinDistance: 15,
		Chance:      1,
		RingRadius:  20,
		RingPoints:  8,
		RingJitter:  5,
		LevelMin:    1,
		LevelMax:    5,
	}
}

func TestSpawnRing(t *testing.T) {
	points := SpawnRing(domain.Vec3{X: 10, Z: -10}, 20, 8, 5, rand.New(rand.NewSource(1)))
	if len(points) != 8 {
		t.Fatalf("points = %d", len(points))
	}
	for i, p := range points {
		d := p.DistanceTo(domain.Vec3{X: 10, Z: -10})
		if d < 20 || d >= 25 {
			t.Errorf("point %d at distance %v", i, d)
		}
		angle := math.Atan2(p.Z+10, p.X-10)
		want := 2 * math.Pi * float64(i) / 8
		if diff := math.Mod(angle-want+4*math.Pi, 2*math.Pi); diff > 1e-9 && diff < 2*math.Pi-1e-9 {
			t.Errorf("point %d angle %v, want %v", i, angle, want)
		}
	}
}

func TestSpawner_CooldownAndCap(t *testing.T) {
	pop := &popStub{}
	s := NewPopulationSpawner("enemies", spawnerConfig(), pop, utils.NewDice(1))
	start := time.Unix(100, 0)
	player := domain.Vec3{}

	if _, ok := s.Update(start, player); !ok {
		t.Fatal("first update with chance 1 must spawn")
	}
	if _, ok := s.Update(start.Add(2999*time.Millisecond), player); ok {
		t.Error("spawned inside cooldown")
	}
	if _, ok := s.Update(start.Add(3*time.Second), player); !ok {
		t.Error("cooldown elapsed, spawn expected")
	}
	s.Update(start.Add(6*time.Second), player)
	if pop.Count() != 3 {
		t.Fatalf("count = %d", pop.Count())
	}
	if _, ok := s.Update(start.Add(time.Hour), player); ok {
		t.Error("spawned past the cap")
	}

	for _, lvl := range pop.levels {
		if lvl < 1 || lvl > 5 {
			t.Errorf("level %d outside band", lvl)
		}
	}
}

func TestSpawner_MinDistance(t *testing.T) {
	cfg := spawnerConfig()
	cfg.Max = 100
	cfg.Cooldown = 0
	pop := &popStub{}
	s := NewPopulationSpawner("wild", cfg, pop, utils.NewDice(2))
	now := time.Unix(0, 0)

	// Standing on a ring point excludes it and its neighbours.
	player := s.Points()[0]
	for i := 0; i < 200; i++ {
		s.Update(now.Add(time.Duration(i)*time.Second), player)
	}
	if pop.Count() == 0 {
		t.Fatal("nothing spawned")
	}
	for _, p := range pop.spawned {
		if p.DistanceTo(player) <= cfg.MinDistance {
			t.Fatalf("spawned %v within %v of the player", p, cfg.MinDistance)
		}
	}

	// No ring point clears a 1000 unit gate.
	cfg.MinDistance = 1000
	empty := &popStub{}
	s = NewPopulationSpawner("wild", cfg, empty, utils.NewDice(3))
	if _, ok := s.Update(now, domain.Vec3{}); ok || empty.Count() != 0 {
		t.Error("spawned without a valid point")
	}
}

func TestSpawner_Probability(t *testing.T) {
	cfg := spawnerConfig()
	cfg.Max = 10000
	cfg.Cooldown = 0
	cfg.Chance = 0.3
	pop := &popStub{}
	s := NewPopulationSpawner("enemies", cfg, pop, utils.NewDice(4))

	const rounds = 5000
	for i := 0; i < rounds; i++ {
		s.Update(time.Unix(int64(i), 0), domain.Vec3{})
	}
	rate := float64(pop.Count()) / rounds
	if rate < 0.25 || rate > 0.35 {
		t.Errorf("spawn rate %v, want about 0.3", rate)
	}

	cfg.Chance = 0
	none := &popStub{}
	s = NewPopulationSpawner("enemies", cfg, none, utils.NewDice(5))
	for i := 0; i < 100; i++ {
		s.Update(time.Unix(int64(i), 0), domain.Vec3{})
	}
	if none.Count() != 0 {
		t.Error("chance 0 spawned")
	}
}
