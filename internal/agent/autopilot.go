package agent

import (
	"encoding/json"
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/internal/systems"
	"ethereplodor-server/pkg/api"
	"ethereplodor-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SubscriberID is the hub id of the in-process autopilot.
const SubscriberID = "autopilot"

// Commander accepts commands the way the simulation does.
type Commander interface {
	Submit(cmd api.ClientCommand) error
}

// Autopilot plays the player in headless runs. It sees only snapshots and
// talks back through the same command surface as a websocket client:
// settle quests, strike enemies in reach, capture adjacent creatures,
// otherwise walk toward the nearest thing worth doing.
type Autopilot struct {
	cmd   Commander
	inbox <-chan api.Snapshot
	last  int64 // unix ms of the previous snapshot
	log   *logrus.Entry
}

func NewAutopilot(cmd Commander, inbox <-chan api.Snapshot) *Autopilot {
	return &Autopilot{
		cmd:   cmd,
		inbox: inbox,
		log:   logger.Component("autopilot"),
	}
}

// Run reacts to every snapshot until the inbox closes.
func (a *Autopilot) Run() {
	a.log.Info("🤖 Autopilot engaged")
	for snap := range a.inbox {
		for _, cmd := range a.Decide(snap) {
			if err := a.cmd.Submit(cmd); err != nil {
				a.log.WithError(err).WithField("action", cmd.Action).Debug("Command refused")
			}
		}
	}
	a.log.Info("Autopilot shut down")
}

// Decide turns one snapshot into the commands to send.
func (a *Autopilot) Decide(snap api.Snapshot) []api.ClientCommand {
	dt := 0.0
	if a.last != 0 && snap.Time > a.last {
		dt = float64(snap.Time-a.last) / 1000
	}
	a.last = snap.Time

	var out []api.ClientCommand

	// 1. Quest bookkeeping
	for _, q := range snap.Quests {
		switch q.Status {
		case enums.QuestNotStarted:
			out = append(out, command(domain.ActionStartQuest, api.QuestPayload{QuestID: q.ID}))
		case enums.QuestCompleted:
			out = append(out, command(domain.ActionClaimReward, api.QuestPayload{QuestID: q.ID}))
		}
	}

	if snap.Player.HP <= 0 {
		return out
	}
	me := snap.Player.Position

	// 2. Strike what is in reach
	if snap.Player.AttackReady {
		if _, ok := systems.Nearest(me, domain.PlayerAttackRange, snap.Enemies, liveEnemyPos); ok {
			return append(out, command(domain.ActionAttack, nil))
		}
	}

	// 3. Capture what is adjacent
	if _, ok := systems.Nearest(me, domain.CaptureRange, snap.WildCreatures, creaturePos); ok {
		return append(out, command(domain.ActionCapture, api.CapturePayload{Ball: pickBall(snap.Inventory)}))
	}

	// 4. Walk: loot, then enemies, then creatures
	target, ok := a.pickTarget(me, snap)
	if !ok || dt <= 0 {
		return out
	}
	step := systems.Steer(me, target, domain.PlayerSpeed*dt)
	return append(out, command(domain.ActionPlayerSync, api.PlayerSyncPayload{Position: step.Pos}))
}

func (a *Autopilot) pickTarget(me domain.Vec3, snap api.Snapshot) (domain.Vec3, bool) {
	if d, ok := systems.Nearest(me, unbounded, snap.Loot, dropPos); ok {
		return d.Pos, true
	}
	if e, ok := systems.Nearest(me, unbounded, snap.Enemies, liveEnemyPos); ok {
		return e.Position, true
	}
	if c, ok := systems.Nearest(me, unbounded, snap.WildCreatures, creaturePos); ok {
		return *c.Pos, true
	}
	return domain.Vec3{}, false
}

// pickBall spends the best ball in the bag; basic ones are free.
func pickBall(inv domain.Inventory) enums.BallType {
	for _, b := range []enums.BallType{enums.BallUltra, enums.BallSuper} {
		if inv.Quantity(b.ItemID()) > 0 {
			return b
		}
	}
	return enums.BallBasic
}

const unbounded = 1e9

func liveEnemyPos(e api.EnemyView) (domain.Vec3, bool) {
	return e.Position, e.State != enums.EnemyStateDead && e.HP > 0
}

func creaturePos(c domain.Creature) (domain.Vec3, bool) {
	if c.Pos == nil {
		return domain.Vec3{}, false
	}
	return *c.Pos, true
}

func dropPos(d domain.LootDrop) (domain.Vec3, bool) {
	return d.Pos, true
}

func command(action domain.ActionType, payload interface{}) api.ClientCommand {
	cmd := api.ClientCommand{Action: action.String()}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			logger.Component("autopilot").WithError(err).Error("Marshal payload")
			return cmd
		}
		cmd.Payload = raw
	}
	return cmd
}
