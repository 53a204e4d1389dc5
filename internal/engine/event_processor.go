package engine

import (
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/internal/engine/handlers"
	"fmt"

	"github.com/sirupsen/logrus"
)

// processEvents drains pending gameplay events into the quest tracker.
// Events raised while draining (rewards that level a creature) are drained too.
func (s *Simulation) processEvents() {
	for len(s.pending) > 0 {
		ev := s.pending[0]
		s.pending = s.pending[1:]

		for _, id := range s.quests.OnEvent(ev) {
			title := id
			if q, ok := s.quests.Get(id); ok {
				title = q.Title
			}
			s.AddLog(fmt.Sprintf("Quest complete: %s. Claim your reward!", title), handlers.MsgQuest)
		}
	}
	s.pending = s.pending[:0]
}

// onEnemyKilled is the kill pipeline: mark dead, drop loot, count the kill,
// schedule the corpse. A second call for the same enemy is a no-op.
func (s *Simulation) onEnemyKilled(e *domain.Enemy) {
	// 1. Dead now, gone later
	if !e.MarkDead(s.now) {
		return
	}
	s.corpses.Schedule(e.ID, s.now.Add(s.cfg.CorpseLinger))

	// 2. Loot at the body
	drops := s.loot.Generate(e.Pos, e.Level, 0)
	s.loot.Add(drops...)
	for _, d := range drops {
		if !d.IsGold() {
			s.AddLog(fmt.Sprintf("%s dropped %s.", e.Name, d.Item.Name), handlers.MsgLoot)
		}
	}

	// 3. Quest progress
	s.pending = append(s.pending, domain.EnemyKilled(e.Kind))

	s.log.WithFields(logrus.Fields{
		"enemy_id": e.ID,
		"kind":     e.Kind.String(),
		"level":    e.Level,
		"drops":    len(drops),
	}).Debug("Enemy killed")
}

// awardExperience levels c and queues the level event.
func (s *Simulation) awardExperience(c *domain.Creature, amount int) {
	res := s.progression.AwardExperience(c, amount)
	if !res.LeveledUp {
		return
	}

	msg := fmt.Sprintf("%s reached level %d!", c.Name, res.NewLevel)
	if res.Evolved {
		msg += fmt.Sprintf(" It evolved into %s!", c.Name)
	}
	s.AddLog(msg, handlers.MsgInfo)
	s.pending = append(s.pending, domain.CreatureLeveled(c.SpeciesID, res.LevelsGained))
}
