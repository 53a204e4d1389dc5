package engine

import (
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/pkg/api"
)

// Snapshot builds the current state under the lock, without draining the log batch.
func (s *Simulation) Snapshot() api.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildSnapshot()
}

// buildSnapshot copies everything a client may read. Slices are never nil
// so the JSON always carries arrays.
func (s *Simulation) buildSnapshot() api.Snapshot {
	// 1. Player
	self := s.player.Combat()
	snap := api.Snapshot{
		Type: api.SnapshotType,
		Tick: s.tick,
		Time: s.now.UnixMilli(),
		Player: api.PlayerView{
			ID:          self.ID,
			HP:          self.HP,
			MaxHP:       self.MaxHP,
			Attack:      self.Attack,
			Defense:     self.Defense,
			Position:    self.Pos,
			AttackReady: s.strike.Ready(s.now),
		},
	}

	// 2. World
	snap.Area = s.areas.Current()

	enemies := s.enemies.Snapshot()
	snap.Enemies = make([]api.EnemyView, 0, len(enemies))
	for _, e := range enemies {
		snap.Enemies = append(snap.Enemies, toEnemyView(e))
	}

	wild := s.wild.Snapshot()
	snap.WildCreatures = make([]domain.Creature, 0, len(wild))
	for _, c := range wild {
		snap.WildCreatures = append(snap.WildCreatures, *c.Clone())
	}

	drops := s.loot.List()
	snap.Loot = make([]domain.LootDrop, 0, len(drops))
	for _, d := range drops {
		cp := *d
		cp.Item = d.Item.Clone()
		snap.Loot = append(snap.Loot, cp)
	}

	// 3. Progress
	quests := s.quests.List()
	snap.Quests = make([]domain.Quest, 0, len(quests))
	for _, q := range quests {
		snap.Quests = append(snap.Quests, *q)
	}

	roster := s.player.Roster()
	owned := roster.Owned()
	snap.OwnedCreatures = make([]domain.Creature, 0, len(owned))
	for _, c := range owned {
		snap.OwnedCreatures = append(snap.OwnedCreatures, *c.Clone())
	}
	snap.Team = append([]string{}, roster.TeamIDs()...)
	snap.Inventory = *s.player.Inventory().Clone()

	// 4. Shop and log batch
	stock := s.shop.List()
	snap.Shop = make([]api.ShopEntryView, 0, len(stock))
	for _, entry := range stock {
		snap.Shop = append(snap.Shop, api.ShopEntryView{
			ItemID: entry.Item.ID,
			Name:   entry.Item.Name,
			Rarity: entry.Item.Rarity,
			Price:  entry.Price,
			Stock:  entry.Stock,
		})
	}

	snap.Logs = make([]api.LogEntry, len(s.logs))
	copy(snap.Logs, s.logs)

	return snap
}

func toEnemyView(e *domain.Enemy) api.EnemyView {
	return api.EnemyView{
		ID:       e.ID,
		Name:     e.Name,
		Kind:     e.Kind,
		Level:    e.Level,
		State:    e.State,
		HP:       e.HP,
		MaxHP:    e.MaxHP,
		Position: e.Pos,
	}
}

// --- DEBUG ---

// DebugEnemies copies every enemy, dead ones included.
func (s *Simulation) DebugEnemies() []domain.Enemy {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Enemy, 0, s.enemies.Len())
	for _, e := range s.enemies.Snapshot() {
		cp := *e
		if e.Patrol != nil {
			p := *e.Patrol
			cp.Patrol = &p
		}
		out = append(out, cp)
	}
	return out
}

func (s *Simulation) DebugWild() []domain.Creature {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Creature, 0, s.wild.Len())
	for _, c := range s.wild.Snapshot() {
		out = append(out, *c.Clone())
	}
	return out
}

func (s *Simulation) DebugLoot() []domain.LootDrop {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.LootDrop, 0, s.loot.Len())
	for _, d := range s.loot.List() {
		cp := *d
		cp.Item = d.Item.Clone()
		out = append(out, cp)
	}
	return out
}

func (s *Simulation) DebugQuests() []*domain.Quest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quests.List()
}

func (s *Simulation) DebugCorpses() []map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.corpses.DebugDump()
}

// Tick returns the number of completed passes.
func (s *Simulation) Tick() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}
