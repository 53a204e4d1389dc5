package enums

// EnemyState is the behavioral state of a hostile enemy.
type EnemyState uint8

const (
	EnemyStateIdle EnemyState = iota
	EnemyStatePatrol
	EnemyStateChase
	EnemyStateAttack
	EnemyStateDead
)

var enemyStateToString = map[EnemyState]string{
	EnemyStateIdle:   "idle",
	EnemyStatePatrol: "patrol",
	EnemyStateChase:  "chase",
	EnemyStateAttack: "attack",
	EnemyStateDead:   "dead",
}

var enemyStateFromString = map[string]EnemyState{
	"idle":   EnemyStateIdle,
	"patrol": EnemyStatePatrol,
	"chase":  EnemyStateChase,
	"attack": EnemyStateAttack,
	"dead":   EnemyStateDead,
}

func (s EnemyState) String() string {
	if val, ok := enemyStateToString[s]; ok {
		return val
	}
	return "unknown"
}

func (s EnemyState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *EnemyState) UnmarshalText(text []byte) error {
	return unmarshalName(enemyStateFromString, "enemy state", text, s)
}

// EnemyKind is the archetype an enemy was spawned from.
type EnemyKind uint8

const (
	EnemyKindBasic EnemyKind = iota
	EnemyKindFast
	EnemyKindTank
)

var enemyKindToString = map[EnemyKind]string{
	EnemyKindBasic: "basic",
	EnemyKindFast:  "fast",
	EnemyKindTank:  "tank",
}

var enemyKindFromString = map[string]EnemyKind{
	"basic": EnemyKindBasic,
	"fast":  EnemyKindFast,
	"tank":  EnemyKindTank,
}

func (k EnemyKind) String() string {
	if val, ok := enemyKindToString[k]; ok {
		return val
	}
	return "unknown"
}

// ParseEnemyKind falls back to basic for unknown names.
func ParseEnemyKind(s string) EnemyKind {
	if val, ok := lookup(enemyKindFromString, s); ok {
		return val
	}
	return EnemyKindBasic
}

func (k EnemyKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *EnemyKind) UnmarshalText(text []byte) error {
	return unmarshalName(enemyKindFromString, "enemy kind", text, k)
}
