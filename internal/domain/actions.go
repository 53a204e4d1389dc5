package domain

import "strings"

// ActionType is the internal id of an external command.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionPlayerSync
	ActionAttack
	ActionCapture
	ActionUseItem
	ActionEquip
	ActionBuy
	ActionSell
	ActionStartQuest
	ActionClaimReward
	ActionTeamAdd
	ActionTeamRemove
	ActionEvolve
	ActionEnterArea

	// Debug commands, only registered with SIM_ADMIN
	ActionAdminHeal
	ActionAdminKill
	ActionAdminGrant
)

// JSON -> domain
var actionStringToCmd = map[string]ActionType{
	"INIT":         ActionInit,
	"PLAYER_SYNC":  ActionPlayerSync,
	"ATTACK":       ActionAttack,
	"CAPTURE":      ActionCapture,
	"USE_ITEM":     ActionUseItem,
	"EQUIP":        ActionEquip,
	"BUY":          ActionBuy,
	"SELL":         ActionSell,
	"START_QUEST":  ActionStartQuest,
	"CLAIM_REWARD": ActionClaimReward,
	"TEAM_ADD":     ActionTeamAdd,
	"TEAM_REMOVE":  ActionTeamRemove,
	"EVOLVE":       ActionEvolve,
	"ENTER_AREA":   ActionEnterArea,
	"ADMIN_HEAL":   ActionAdminHeal,
	"ADMIN_KILL":   ActionAdminKill,
	"ADMIN_GRANT":  ActionAdminGrant,
}

// domain -> logs
var actionCmdToString = map[ActionType]string{
	ActionInit:        "INIT",
	ActionPlayerSync:  "PLAYER_SYNC",
	ActionAttack:      "ATTACK",
	ActionCapture:     "CAPTURE",
	ActionUseItem:     "USE_ITEM",
	ActionEquip:       "EQUIP",
	ActionBuy:         "BUY",
	ActionSell:        "SELL",
	ActionStartQuest:  "START_QUEST",
	ActionClaimReward: "CLAIM_REWARD",
	ActionTeamAdd:     "TEAM_ADD",
	ActionTeamRemove:  "TEAM_REMOVE",
	ActionEvolve:      "EVOLVE",
	ActionEnterArea:   "ENTER_AREA",
	ActionAdminHeal:   "ADMIN_HEAL",
	ActionAdminKill:   "ADMIN_KILL",
	ActionAdminGrant:  "ADMIN_GRANT",
}

// ParseAction is case-insensitive.
func ParseAction(s string) ActionType {
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
