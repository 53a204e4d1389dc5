package systems

import (
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/pkg/logger"
	"ethereplodor-server/pkg/utils"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// SpawnerConfig tunes one population.
type SpawnerConfig struct {
	Max         int           `env:"MAX"`
	Cooldown    time.Duration `env:"COOLDOWN"`
	MinDistance float64       `env:"MIN_DISTANCE"`
	Chance      float64       `env:"CHANCE"`
	Center      domain.Vec3
	RingRadius  float64       `env:"RING_RADIUS"`
	RingPoints  int           `env:"RING_POINTS"`
	RingJitter  float64       `env:"RING_JITTER"`
	LevelMin    int           `env:"LEVEL_MIN"`
	LevelMax    int           `env:"LEVEL_MAX"`
}

// Population is the registry side a spawner feeds.
type Population interface {
	// Count is the live population the cap applies to.
	Count() int
	// Spawn creates one entity at pos with the given level, returning its id.
	Spawn(pos domain.Vec3, level int, rng *rand.Rand) (string, bool)
}

// PopulationSpawner keeps a capped, randomly timed population around the player.
type PopulationSpawner struct {
	name      string
	cfg       SpawnerConfig
	points    []domain.Vec3
	lastSpawn time.Time
	pop       Population
	rng       *rand.Rand
	log       *logrus.Entry
}

// NewPopulationSpawner builds the ring once. Ring jitter is cosmetic; every gating roll is gameplay.
func NewPopulationSpawner(name string, cfg SpawnerConfig, pop Population, dice utils.Dice) *PopulationSpawner {
	s := &PopulationSpawner{
		name: name,
		cfg:  cfg,
		pop:  pop,
		rng:  dice.Gameplay,
		log:  logger.Component("spawner").WithField("population", name),
	}
	s.points = SpawnRing(cfg.Center, cfg.RingRadius, cfg.RingPoints, cfg.RingJitter, dice.Cosmetic)
	return s
}

// SpawnRing spaces count points evenly by angle, each at radius + [0, jitter).
func SpawnRing(center domain.Vec3, radius float64, count int, jitter float64, rng *rand.Rand) []domain.Vec3 {
	points := make([]domain.Vec3, 0, max(count, 0))
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		dist := radius + rng.Float64()*jitter
		points = append(points, domain.Vec3{
			X: center.X + math.Cos(angle)*dist,
			Y: center.Y,
			Z: center.Z + math.Sin(angle)*dist,
		})
	}
	return points
}

// Points returns a copy of the ring.
func (s *PopulationSpawner) Points() []domain.Vec3 {
	return append([]domain.Vec3(nil), s.points...)
}

// Update runs one gating pass and spawns at most one entity.
func (s *PopulationSpawner) Update(now time.Time, playerPos domain.Vec3) (string, bool) {
	// 1. Cap
	if s.pop.Count() >= s.cfg.Max {
		return "", false
	}

	// 2. Cooldown
	if !s.lastSpawn.IsZero() && now.Sub(s.lastSpawn) < s.cfg.Cooldown {
		return "", false
	}

	// 3. Not on top of the player
	valid := make([]domain.Vec3, 0, len(s.points))
	for _, p := range s.points {
		if p.DistanceTo(playerPos) > s.cfg.MinDistance {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		return "", false
	}

	// 4. Probability, then a uniform point
	if s.rng.Float64() >= s.cfg.Chance {
		return "", false
	}
	point := valid[s.rng.Intn(len(valid))]
	level := s.rollLevel()

	id, ok := s.pop.Spawn(point, level, s.rng)
	if !ok {
		return "", false
	}
	s.lastSpawn = now

	s.log.WithFields(logrus.Fields{
		"entity_id": id,
		"level":     level,
		"live":      s.pop.Count(),
	}).Debug("Spawned")
	return id, true
}

func (s *PopulationSpawner) rollLevel() int {
	lo, hi := max(s.cfg.LevelMin, 1), s.cfg.LevelMax
	if hi < lo {
		hi = lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
