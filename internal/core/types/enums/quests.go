package enums

// QuestStatus only ever moves forward: not_started → in_progress → completed → rewarded.
type QuestStatus uint8

const (
	QuestNotStarted QuestStatus = iota
	QuestInProgress
	QuestCompleted
	QuestRewarded
)

var questStatusToString = map[QuestStatus]string{
	QuestNotStarted: "not_started",
	QuestInProgress: "in_progress",
	QuestCompleted:  "completed",
	QuestRewarded:   "rewarded",
}

var questStatusFromString = map[string]QuestStatus{
	"not_started": QuestNotStarted,
	"in_progress": QuestInProgress,
	"completed":   QuestCompleted,
	"rewarded":    QuestRewarded,
}

func (s QuestStatus) String() string {
	if val, ok := questStatusToString[s]; ok {
		return val
	}
	return "unknown"
}

func (s QuestStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *QuestStatus) UnmarshalText(text []byte) error {
	return unmarshalName(questStatusFromString, "quest status", text, s)
}

// ObjectiveType doubles as the game event type that advances it.
type ObjectiveType uint8

const (
	ObjectiveUnknown ObjectiveType = iota
	ObjectiveKillEnemies
	ObjectiveCollectItems
	ObjectiveCaptureCreatures
	ObjectiveReachLevel
	ObjectiveExploreArea
)

var objectiveToString = map[ObjectiveType]string{
	ObjectiveKillEnemies:      "kill_enemies",
	ObjectiveCollectItems:     "collect_items",
	ObjectiveCaptureCreatures: "capture_creatures",
	ObjectiveReachLevel:       "reach_level",
	ObjectiveExploreArea:      "explore_area",
}

var objectiveFromString = map[string]ObjectiveType{
	"kill_enemies":      ObjectiveKillEnemies,
	"collect_items":     ObjectiveCollectItems,
	"capture_creatures": ObjectiveCaptureCreatures,
	"reach_level":       ObjectiveReachLevel,
	"explore_area":      ObjectiveExploreArea,
}

func (o ObjectiveType) String() string {
	if val, ok := objectiveToString[o]; ok {
		return val
	}
	return "unknown"
}

func ParseObjectiveType(s string) ObjectiveType {
	if val, ok := lookup(objectiveFromString, s); ok {
		return val
	}
	return ObjectiveUnknown
}

func (o ObjectiveType) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *ObjectiveType) UnmarshalText(text []byte) error {
	return unmarshalName(objectiveFromString, "objective type", text, o)
}
