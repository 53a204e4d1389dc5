package systems

import (
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// RewardSink receives quest rewards. The inventory/roster side implements it.
type RewardSink interface {
	// CanHold reports whether every reward item fits at once.
	CanHold(items []domain.RewardItem) bool
	AddGold(amount int)
	AddItem(itemID string, quantity int) bool
	AddExperience(amount int)
}

// QuestTracker advances objectives from game events and drives
// not_started → in_progress → completed → rewarded.
type QuestTracker struct {
	quests *domain.Registry[*domain.Quest]
	log    *logrus.Entry
}

func NewQuestTracker(quests []*domain.Quest) *QuestTracker {
	t := &QuestTracker{
		quests: domain.NewRegistry[*domain.Quest](),
		log:    logger.Component("quests"),
	}
	for _, q := range quests {
		t.quests.Add(q.ID, q)
	}
	return t
}

// Start only succeeds from not_started.
func (t *QuestTracker) Start(id string) bool {
	q, ok := t.quests.Get(id)
	if !ok || q.Status != enums.QuestNotStarted {
		return false
	}
	q.Status = enums.QuestInProgress
	t.log.WithField("quest_id", id).Info("Quest started")

	// A quest whose objectives are already met (target 0) completes at once.
	t.checkCompletion(q)
	return true
}

// OnEvent advances matching objectives of in-progress quests, clamped at target.
// Returns the ids of quests it completed.
func (t *QuestTracker) OnEvent(ev domain.GameEvent) []string {
	amount := ev.Amount
	if amount <= 0 {
		amount = 1
	}

	var completed []string
	for _, q := range t.quests.Snapshot() {
		if q.Status != enums.QuestInProgress {
			continue
		}
		for i := range q.Objectives {
			obj := &q.Objectives[i]
			if obj.Type != ev.Type || obj.Done() {
				continue
			}
			if obj.TargetID != "" && obj.TargetID != ev.TargetID {
				continue
			}
			obj.Current = min(obj.Current+amount, obj.Target)
		}
		if t.checkCompletion(q) {
			completed = append(completed, q.ID)
		}
	}
	return completed
}

func (t *QuestTracker) checkCompletion(q *domain.Quest) bool {
	if q.Status != enums.QuestInProgress || !q.Complete() {
		return false
	}
	q.Status = enums.QuestCompleted
	t.log.WithField("quest_id", q.ID).Info("Quest completed")
	return true
}

// ClaimReward only succeeds from completed. It pays out through sink and ends in rewarded.
// A reward whose items do not fit pays nothing and leaves the quest completed.
func (t *QuestTracker) ClaimReward(id string, sink RewardSink) bool {
	q, ok := t.quests.Get(id)
	if !ok || q.Status != enums.QuestCompleted {
		return false
	}

	r := q.Reward
	if !sink.CanHold(r.Items) {
		t.log.WithField("quest_id", id).Warn("Reward does not fit, claim refused")
		return false
	}
	if r.Gold > 0 {
		sink.AddGold(r.Gold)
	}
	if r.Experience > 0 {
		sink.AddExperience(r.Experience)
	}
	for _, it := range r.Items {
		if !sink.AddItem(it.ItemID, it.Quantity) {
			t.log.WithFields(logrus.Fields{
				"quest_id": id,
				"item_id":  it.ItemID,
			}).Warn("Reward item could not be delivered")
		}
	}

	q.Status = enums.QuestRewarded
	t.log.WithFields(logrus.Fields{
		"quest_id": id,
		"gold":     r.Gold,
		"exp":      r.Experience,
	}).Info("Quest rewarded")
	return true
}

// Get returns a copy of the quest.
func (t *QuestTracker) Get(id string) (*domain.Quest, bool) {
	q, ok := t.quests.Get(id)
	if !ok {
		return nil, false
	}
	return q.Clone(), true
}

// List copies every quest in catalog order.
func (t *QuestTracker) List() []*domain.Quest {
	live := t.quests.Snapshot()
	out := make([]*domain.Quest, len(live))
	for i, q := range live {
		out[i] = q.Clone()
	}
	return out
}
