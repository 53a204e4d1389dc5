package systems

import (
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/pkg/logger"
	"ethereplodor-server/pkg/utils"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Loot tuning.
const (
	GoldDropChance     = 0.8
	BaseDropChance     = 0.3
	MaxItemAttempts    = 3
	DropJitter         = 1.0 // +/- on X and Z
	LegendaryBase      = 0.01
	LegendaryPerLevel  = 0.001
	LegendaryCap       = 0.10
	itemLevelAllowance = 2
)

// Fixed tier weights; legendary is level dependent.
var rarityWeights = map[enums.Rarity]float64{
	enums.RarityCommon:   0.60,
	enums.RarityUncommon: 0.25,
	enums.RarityRare:     0.10,
	enums.RarityEpic:     0.04,
}

// LegendaryWeight is min(10%, 1% + level*0.1%).
func LegendaryWeight(level int) float64 {
	return math.Min(LegendaryCap, LegendaryBase+float64(level)*LegendaryPerLevel)
}

// RarityProbabilities normalizes the weight table for the given level.
func RarityProbabilities(level int) map[enums.Rarity]float64 {
	weights := make(map[enums.Rarity]float64, len(enums.Rarities))
	total := 0.0
	for _, r := range enums.Rarities {
		w := rarityWeights[r]
		if r == enums.RarityLegendary {
			w = LegendaryWeight(level)
		}
		weights[r] = w
		total += w
	}
	for r := range weights {
		weights[r] /= total
	}
	return weights
}

// ItemLevel approximates the level of a template from its value.
func ItemLevel(value int) int {
	switch {
	case value < 50:
		return 1
	case value < 150:
		return 5
	case value < 500:
		return 10
	default:
		return 15
	}
}

// ScaleItem rescales value and stat bonuses by the tier multiplier and the source level.
func ScaleItem(item domain.Item, level int) domain.Item {
	out := item.Clone()
	k := out.Rarity.Multiplier() * (1 + float64(max(level, 1)-1)*0.1)
	scale := func(v int) int { return int(math.Floor(float64(v) * k)) }

	out.Value = scale(out.Value)
	if out.Stats != nil {
		out.Stats.Attack = scale(out.Stats.Attack)
		out.Stats.Defense = scale(out.Stats.Defense)
		out.Stats.Speed = scale(out.Stats.Speed)
		out.Stats.HP = scale(out.Stats.HP)
		out.Stats.Special = scale(out.Stats.Special)
	}
	return out
}

// LootGenerator rolls drops and owns the set of drops lying in the world.
type LootGenerator struct {
	rng      *rand.Rand // rarity, counts, template choice, ids
	cosmetic *rand.Rand // positional jitter only

	gold    domain.Item
	hasGold bool
	byTier  map[enums.Rarity][]domain.Item
	drops   *domain.Registry[*domain.LootDrop]
	log     *logrus.Entry
}

// NewLootGenerator indexes templates by tier. A template with id gold_coin becomes the currency.
func NewLootGenerator(templates []domain.Item, gold *domain.Item, dice utils.Dice) *LootGenerator {
	g := &LootGenerator{
		rng:      dice.Gameplay,
		cosmetic: dice.Cosmetic,
		byTier:   make(map[enums.Rarity][]domain.Item),
		drops:    domain.NewRegistry[*domain.LootDrop](),
		log:      logger.Component("loot"),
	}
	if gold != nil {
		g.gold = gold.Clone()
		g.hasGold = true
	}
	for _, it := range templates {
		if it.ID == domain.GoldItemID {
			continue
		}
		g.byTier[it.Rarity] = append(g.byTier[it.Rarity], it.Clone())
	}
	return g
}

// Generate rolls gold and 1-3 item attempts for a death at pos.
// Drops are returned, not registered; see Add.
func (g *LootGenerator) Generate(pos domain.Vec3, level int, rarityBonus float64) []*domain.LootDrop {
	level = max(level, 1)
	var drops []*domain.LootDrop

	// 1. Gold, one drop per coin.
	if g.hasGold && g.rng.Float64() < GoldDropChance {
		amount := level*2 + g.rng.Intn(level*5)
		for i := 0; i < amount; i++ {
			drops = append(drops, g.newDrop(g.gold.Clone(), pos))
		}
	}

	// 2. Items
	attempts := 1 + g.rng.Intn(MaxItemAttempts)
	dropChance := BaseDropChance + rarityBonus
	for i := 0; i < attempts; i++ {
		if g.rng.Float64() >= dropChance {
			continue
		}
		item, ok := g.rollItem(level)
		if !ok {
			continue
		}
		drops = append(drops, g.newDrop(item, pos))
	}

	g.log.WithFields(logrus.Fields{
		"level": level,
		"drops": len(drops),
	}).Debug("Loot generated")
	return drops
}

// RollRarity draws a tier from the normalized table.
func (g *LootGenerator) RollRarity(level int) enums.Rarity {
	probs := RarityProbabilities(level)
	roll := g.rng.Float64()
	cumulative := 0.0
	for _, r := range enums.Rarities {
		cumulative += probs[r]
		if roll < cumulative {
			return r
		}
	}
	return enums.RarityCommon
}

func (g *LootGenerator) rollItem(level int) (domain.Item, bool) {
	tier := g.RollRarity(level)
	pool := g.eligible(tier, level)
	if len(pool) == 0 {
		// Fall back to common when the rolled tier has nothing for this level.
		pool = g.eligible(enums.RarityCommon, level)
	}
	if len(pool) == 0 {
		return domain.Item{}, false
	}
	return ScaleItem(pool[g.rng.Intn(len(pool))], level), true
}

func (g *LootGenerator) eligible(tier enums.Rarity, level int) []domain.Item {
	var out []domain.Item
	for _, it := range g.byTier[tier] {
		if ItemLevel(it.Value) <= level+itemLevelAllowance {
			out = append(out, it)
		}
	}
	return out
}

func (g *LootGenerator) newDrop(item domain.Item, pos domain.Vec3) *domain.LootDrop {
	jitter := domain.Vec3{
		X: (g.cosmetic.Float64()*2 - 1) * DropJitter,
		Z: (g.cosmetic.Float64()*2 - 1) * DropJitter,
	}
	return &domain.LootDrop{
		ID:          utils.GenerateDeterministicID(g.rng, "loot_"),
		Item:        item,
		Pos:         pos.Add(jitter),
		PickupRange: domain.LootPickupRange,
	}
}

// --- WORLD DROPS ---

// Add registers drops in the world.
func (g *LootGenerator) Add(drops ...*domain.LootDrop) {
	for _, d := range drops {
		g.drops.Add(d.ID, d)
	}
}

// Remove takes a drop out of the world. Only the first call for an id returns true.
func (g *LootGenerator) Remove(id string) bool {
	return g.drops.Remove(id)
}

func (g *LootGenerator) Get(id string) (*domain.LootDrop, bool) {
	return g.drops.Get(id)
}

// List snapshots the live drops.
func (g *LootGenerator) List() []*domain.LootDrop {
	return g.drops.Snapshot()
}

func (g *LootGenerator) Len() int {
	return g.drops.Len()
}

// InRange lists the drops whose pickup radius covers pos.
func (g *LootGenerator) InRange(pos domain.Vec3) []*domain.LootDrop {
	var out []*domain.LootDrop
	for _, d := range g.drops.Snapshot() {
		if d.Pos.DistanceTo(pos) <= d.PickupRange {
			out = append(out, d)
		}
	}
	return out
}
