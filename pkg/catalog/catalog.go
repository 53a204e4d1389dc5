package catalog

import (
	"embed"
	"encoding/json"
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
	"fmt"
	"time"
)

//go:embed data/*.json
var dataFS embed.FS

// Species is the reference record of a creature kind.
type Species struct {
	ID          string                `json:"id" jsonschema:"required"`
	Name        string                `json:"name" jsonschema:"required"`
	Element     enums.Element         `json:"type" jsonschema:"required,type=string"`
	BaseStats   domain.Stats          `json:"baseStats" jsonschema:"required"`
	CaptureRate float64               `json:"captureRate" jsonschema:"required,minimum=0"`
	Growth      enums.GrowthRate      `json:"growthRate" jsonschema:"required,type=string,enum=slow,enum=medium,enum=fast"`
	Evolution   *domain.EvolutionData `json:"evolution,omitempty"`
	Color       string                `json:"color,omitempty"`
	Abilities   []domain.Ability      `json:"abilities,omitempty"`
}

// EnemyArchetype is the reference record of one enemy kind.
type EnemyArchetype struct {
	Kind             enums.EnemyKind `json:"kind" jsonschema:"required,type=string,enum=basic,enum=fast,enum=tank"`
	Name             string          `json:"name" jsonschema:"required"`
	HP               int             `json:"hp" jsonschema:"required,minimum=1"`
	Attack           int             `json:"attack" jsonschema:"required"`
	Defense          int             `json:"defense" jsonschema:"required"`
	Speed            float64         `json:"speed" jsonschema:"required"`
	DetectionRange   float64         `json:"detectionRange" jsonschema:"required"`
	AttackRange      float64         `json:"attackRange" jsonschema:"required"`
	AttackCooldownMs int             `json:"attackCooldownMs" jsonschema:"required"`
	PatrolRadius     float64         `json:"patrolRadius" jsonschema:"required"`
	Weight           float64         `json:"weight" jsonschema:"required,minimum=0"`
}

func (s EnemyArchetype) AttackCooldown() time.Duration {
	return time.Duration(s.AttackCooldownMs) * time.Millisecond
}

// Catalog is the immutable reference data shared by every simulation.
type Catalog struct {
	Items   []domain.Item
	Species []Species
	Quests  []domain.Quest
	Enemies []EnemyArchetype
	Areas   []domain.Area

	itemsByID   map[string]domain.Item
	speciesByID map[string]Species
	enemyByKind map[enums.EnemyKind]EnemyArchetype
	areaByID    map[string]domain.Area
}

// Load decodes the embedded data files.
func Load() (*Catalog, error) {
	c := &Catalog{}

	files := []struct {
		name string
		dst  any
	}{
		{"data/items.json", &c.Items},
		{"data/creatures.json", &c.Species},
		{"data/quests.json", &c.Quests},
		{"data/enemies.json", &c.Enemies},
		{"data/areas.json", &c.Areas},
	}
	for _, f := range files {
		raw, err := dataFS.ReadFile(f.name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.name, err)
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return nil, fmt.Errorf("decode %s: %w", f.name, err)
		}
	}

	if err := c.index(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustLoad panics on a broken embedded catalog. Only for main and tests.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) index() error {
	c.itemsByID = make(map[string]domain.Item, len(c.Items))
	for _, it := range c.Items {
		if _, dup := c.itemsByID[it.ID]; dup {
			return fmt.Errorf("duplicate item id %q", it.ID)
		}
		c.itemsByID[it.ID] = it
	}

	c.speciesByID = make(map[string]Species, len(c.Species))
	for _, sp := range c.Species {
		c.speciesByID[sp.ID] = sp
	}
	for _, sp := range c.Species {
		if sp.Evolution == nil {
			continue
		}
		if _, ok := c.speciesByID[sp.Evolution.TargetID]; !ok {
			return fmt.Errorf("species %q evolves into unknown %q", sp.ID, sp.Evolution.TargetID)
		}
	}

	c.enemyByKind = make(map[enums.EnemyKind]EnemyArchetype, len(c.Enemies))
	for _, e := range c.Enemies {
		c.enemyByKind[e.Kind] = e
	}

	c.areaByID = make(map[string]domain.Area, len(c.Areas))
	for _, a := range c.Areas {
		if _, dup := c.areaByID[a.ID]; dup {
			return fmt.Errorf("duplicate area id %q", a.ID)
		}
		c.areaByID[a.ID] = a
	}
	for _, a := range c.Areas {
		for _, d := range a.Doors {
			if _, ok := c.areaByID[d.TargetAreaID]; !ok {
				return fmt.Errorf("door %q of area %q leads to unknown %q", d.ID, a.ID, d.TargetAreaID)
			}
		}
	}

	for _, q := range c.Quests {
		for _, r := range q.Reward.Items {
			if _, ok := c.itemsByID[r.ItemID]; !ok {
				return fmt.Errorf("quest %q rewards unknown item %q", q.ID, r.ItemID)
			}
		}
	}
	return nil
}

// Item returns a copy of the template.
func (c *Catalog) Item(id string) (domain.Item, bool) {
	it, ok := c.itemsByID[id]
	if !ok {
		return domain.Item{}, false
	}
	return it.Clone(), true
}

func (c *Catalog) SpeciesByID(id string) (Species, bool) {
	sp, ok := c.speciesByID[id]
	return sp, ok
}

func (c *Catalog) Enemy(kind enums.EnemyKind) (EnemyArchetype, bool) {
	e, ok := c.enemyByKind[kind]
	return e, ok
}

// Area returns a copy of the area definition.
func (c *Catalog) Area(id string) (domain.Area, bool) {
	a, ok := c.areaByID[id]
	if !ok {
		return domain.Area{}, false
	}
	return a.Clone(), true
}

// SpeciesName resolves display names, used when a creature evolves.
func (c *Catalog) SpeciesName(id string) (string, bool) {
	sp, ok := c.speciesByID[id]
	return sp.Name, ok
}

// LootTable is every droppable template (currency excluded).
func (c *Catalog) LootTable() []domain.Item {
	out := make([]domain.Item, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ID == domain.GoldItemID {
			continue
		}
		out = append(out, it.Clone())
	}
	return out
}

// NewQuests copies the quest templates in their initial state.
func (c *Catalog) NewQuests() []*domain.Quest {
	out := make([]*domain.Quest, 0, len(c.Quests))
	for i := range c.Quests {
		q := c.Quests[i].Clone()
		q.Status = enums.QuestNotStarted
		for j := range q.Objectives {
			q.Objectives[j].Current = 0
		}
		out = append(out, q)
	}
	return out
}
