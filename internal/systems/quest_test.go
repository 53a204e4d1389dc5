package systems

import (
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
	"testing"
)

type sinkStub struct {
	gold  int
	exp   int
	items map[string]int
	full  bool
}

func (s *sinkStub) CanHold([]domain.RewardItem) bool { return !s.full }

func (s *sinkStub) AddGold(n int)       { s.gold += n }
func (s *sinkStub) AddExperience(n int) { s.exp += n }
func (s *sinkStub) AddItem(id string, n int) bool {
	if s.items == nil {
		s.items = map[string]int{}
	}
	s.items[id] += n
	return true
}

func testQuests() []*domain.Quest {
	return []*domain.Quest{
		{
			ID:         "kill5",
			Objectives: []domain.Objective{{Type: enums.ObjectiveKillEnemies, Target: 5}},
			Reward:     domain.Reward{Gold: 100, Experience: 50, Items: []domain.RewardItem{{ItemID: "potion_health", Quantity: 2}}},
		},
		{
			ID:         "tanks",
			Objectives: []domain.Objective{{Type: enums.ObjectiveKillEnemies, TargetID: "tank", Target: 2}},
		},
		{
			ID: "mixed",
			Objectives: []domain.Objective{
				{Type: enums.ObjectiveCollectItems, TargetID: "gem_common", Target: 10},
				{Type: enums.ObjectiveCaptureCreatures, Target: 1},
			},
		},
	}
}

func TestQuest_ForwardOnly(t *testing.T) {
	tracker := NewQuestTracker(testQuests())
	sink := &sinkStub{}

	status := func() enums.QuestStatus {
		q, _ := tracker.Get("kill5")
		return q.Status
	}

	// not_started: events and claims do nothing
	tracker.OnEvent(domain.EnemyKilled(enums.EnemyKindBasic))
	if tracker.ClaimReward("kill5", sink) || status() != enums.QuestNotStarted {
		t.Fatal("claim on not_started must be a no-op")
	}
	if q, _ := tracker.Get("kill5"); q.Objectives[0].Current != 0 {
		t.Error("not_started quest must ignore events")
	}

	if !tracker.Start("kill5") || tracker.Start("kill5") {
		t.Fatal("Start only succeeds once")
	}

	for i := 0; i < 4; i++ {
		tracker.OnEvent(domain.EnemyKilled(enums.EnemyKindFast))
	}
	if tracker.ClaimReward("kill5", sink) || status() != enums.QuestInProgress {
		t.Fatal("claim on in_progress must be a no-op")
	}

	done := tracker.OnEvent(domain.EnemyKilled(enums.EnemyKindTank))
	if len(done) != 1 || done[0] != "kill5" || status() != enums.QuestCompleted {
		t.Fatalf("expected automatic completion, got %v %s", done, status())
	}

	// Clamped at target
	tracker.OnEvent(domain.EnemyKilled(enums.EnemyKindTank))
	if q, _ := tracker.Get("kill5"); q.Objectives[0].Current != 5 {
		t.Errorf("progress %d, want clamp 5", q.Objectives[0].Current)
	}

	if !tracker.ClaimReward("kill5", sink) || status() != enums.QuestRewarded {
		t.Fatal("claim on completed must succeed")
	}
	if sink.gold != 100 || sink.exp != 50 || sink.items["potion_health"] != 2 {
		t.Errorf("reward = %+v", sink)
	}

	// rewarded is terminal
	if tracker.ClaimReward("kill5", sink) || tracker.Start("kill5") || sink.gold != 100 {
		t.Error("rewarded quest must not move")
	}
}

func TestQuest_ClaimRefusedWhenBagFull(t *testing.T) {
	tracker := NewQuestTracker(testQuests())
	tracker.Start("kill5")
	tracker.OnEvent(domain.GameEvent{Type: enums.ObjectiveKillEnemies, Amount: 5})

	sink := &sinkStub{full: true}
	if tracker.ClaimReward("kill5", sink) {
		t.Fatal("claim must be refused when items do not fit")
	}
	if sink.gold != 0 || sink.exp != 0 || len(sink.items) != 0 {
		t.Errorf("refused claim paid out: %+v", sink)
	}
	if q, _ := tracker.Get("kill5"); q.Status != enums.QuestCompleted {
		t.Errorf("status = %s, want completed", q.Status)
	}

	sink.full = false
	if !tracker.ClaimReward("kill5", sink) || sink.gold != 100 {
		t.Error("claim must succeed once there is room")
	}
}

func TestQuest_TargetFilter(t *testing.T) {
	tracker := NewQuestTracker(testQuests())
	tracker.Start("tanks")

	tracker.OnEvent(domain.EnemyKilled(enums.EnemyKindBasic))
	tracker.OnEvent(domain.EnemyKilled(enums.EnemyKindTank))
	q, _ := tracker.Get("tanks")
	if q.Objectives[0].Current != 1 {
		t.Errorf("only tank kills count, progress %d", q.Objectives[0].Current)
	}
}

func TestQuest_MultipleObjectives(t *testing.T) {
	tracker := NewQuestTracker(testQuests())
	tracker.Start("mixed")

	tracker.OnEvent(domain.ItemCollected("gem_common", 7))
	tracker.OnEvent(domain.ItemCollected("gem_rare", 7))
	tracker.OnEvent(domain.ItemCollected("gem_common", 7))

	q, _ := tracker.Get("mixed")
	if q.Objectives[0].Current != 10 || q.Status != enums.QuestInProgress {
		t.Fatalf("after gems: %+v", q)
	}

	if done := tracker.OnEvent(domain.CreatureCaptured("voltix")); len(done) != 1 {
		t.Fatalf("capture should complete the quest, got %v", done)
	}
}

func TestQuest_UnknownID(t *testing.T) {
	tracker := NewQuestTracker(testQuests())
	if tracker.Start("nope") || tracker.ClaimReward("nope", &sinkStub{}) {
		t.Error("unknown quest ids must fail")
	}
	if _, ok := tracker.Get("nope"); ok {
		t.Error("Get of unknown id")
	}
}

func TestQuest_ListIsCopy(t *testing.T) {
	tracker := NewQuestTracker(testQuests())
	list := tracker.List()
	list[0].Status = enums.QuestRewarded
	if q, _ := tracker.Get(list[0].ID); q.Status != enums.QuestNotStarted {
		t.Error("List must not expose live quests")
	}
}
