package engine

import (
	"context"
	"errors"
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/internal/engine/handlers"
	"ethereplodor-server/internal/engine/handlers/actions"
	"ethereplodor-server/internal/engine/handlers/admin"
	"ethereplodor-server/internal/engine/handlers/events"
	"ethereplodor-server/internal/network"
	"ethereplodor-server/internal/systems"
	"ethereplodor-server/pkg/api"
	"ethereplodor-server/pkg/catalog"
	"ethereplodor-server/pkg/logger"
	"ethereplodor-server/pkg/utils"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// PlayerID is the id of the default local player.
const PlayerID = "player_1"

// maxStep caps dt so a stalled loop does not teleport enemies.
const maxStep = 250 * time.Millisecond

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrQueueFull     = errors.New("command queue full")
)

// Simulation owns every registry and system of one world.
// All state is mutated under mu, from Step or a command.
type Simulation struct {
	mu sync.Mutex

	cfg  Config
	cat  *catalog.Catalog
	dice utils.Dice

	// --- ENTITIES ---
	player  domain.Player
	enemies *domain.Registry[*domain.Enemy]
	brains  map[string]*systems.EnemyAI
	wild    *domain.Registry[*domain.Creature]

	// --- SYSTEMS ---
	combat       *systems.CombatResolver
	capture      *systems.CaptureResolver
	progression  *systems.ProgressionEngine
	loot         *systems.LootGenerator
	quests       *systems.QuestTracker
	shop         *systems.Shop
	strike       *systems.Cooldown
	enemySpawner *systems.PopulationSpawner
	wildSpawner  *systems.PopulationSpawner
	corpses      *CorpseScheduler
	areas        *systems.AreaMap

	handlers map[domain.ActionType]handlers.HandlerFunc
	commands chan domain.InternalCommand
	Hub      *network.Broadcaster

	tick     int64
	now      time.Time
	lastStep time.Time
	home     domain.Vec3
	logs     []api.LogEntry
	logSeq   int
	pending  []domain.GameEvent
	log      *logrus.Entry
}

// NewSimulation wires one world. A nil player gets a LocalPlayer at the origin.
func NewSimulation(cfg Config, cat *catalog.Catalog, player domain.Player) *Simulation {
	dice := utils.NewDice(cfg.Seed)

	s := &Simulation{
		cfg:      cfg,
		cat:      cat,
		dice:     dice,
		enemies:  domain.NewRegistry[*domain.Enemy](),
		brains:   make(map[string]*systems.EnemyAI),
		wild:     domain.NewRegistry[*domain.Creature](),
		corpses:  NewCorpseScheduler(),
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
		commands: make(chan domain.InternalCommand, 100),
		Hub:      network.NewBroadcaster(),
		now:      time.Now(),
		log:      logger.Component("simulation"),
	}

	// 1. Player
	if player == nil {
		player = s.newLocalPlayer()
	}
	s.player = player
	s.home = player.Position()

	// 2. Systems
	s.combat = systems.NewCombatResolver(dice.Gameplay)
	s.capture = systems.NewCaptureResolver(dice.Gameplay)
	s.progression = systems.NewProgressionEngine(cat)
	s.quests = systems.NewQuestTracker(cat.NewQuests())
	s.shop = systems.NewShop(cat.Items, dice.Gameplay)
	s.strike = systems.NewCooldown(domain.PlayerAttackCooldown)
	s.areas = systems.NewAreaMap(cat.Areas, cfg.StartArea)

	var gold *domain.Item
	if g, ok := cat.Item(domain.GoldItemID); ok {
		gold = &g
	}
	s.loot = systems.NewLootGenerator(cat.LootTable(), gold, dice)

	// 3. Populations around the player's start
	enemyCfg, wildCfg := cfg.Enemies, cfg.Wild
	enemyCfg.Center, wildCfg.Center = s.home, s.home
	s.enemySpawner = systems.NewPopulationSpawner("enemies", enemyCfg, enemyPopulation{s}, dice)
	s.wildSpawner = systems.NewPopulationSpawner("wild", wildCfg, wildPopulation{s}, dice)

	s.registerHandlers()

	s.log.WithFields(logrus.Fields{
		"seed":     cfg.Seed,
		"enemies":  cfg.Enemies.Max,
		"wild":     cfg.Wild.Max,
		"quests":   len(cat.Quests),
		"items":    len(cat.Items),
		"admin":    cfg.Admin,
		"area":     s.areas.Current().ID,
		"linger_s": cfg.CorpseLinger.Seconds(),
	}).Info("Simulation ready")
	return s
}

func (s *Simulation) newLocalPlayer() *LocalPlayer {
	p := NewLocalPlayer(PlayerID, domain.Vec3{})
	inv := p.Inventory()
	inv.AddGold(s.cfg.StartingGold)
	for _, id := range slices.Sorted(maps.Keys(s.cfg.StartingItems)) {
		qty := s.cfg.StartingItems[id]
		item, ok := s.cat.Item(id)
		if !ok {
			s.log.WithField("item_id", id).Warn("Unknown starting item")
			continue
		}
		inv.AddItem(item, qty)
	}
	return p
}

func (s *Simulation) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionPlayerSync] = handlers.WithPayload(actions.HandlePlayerSync)
	s.handlers[domain.ActionAttack] = handlers.WithEmptyPayload(actions.HandleAttack)
	s.handlers[domain.ActionCapture] = handlers.WithPayload(actions.HandleCapture)
	s.handlers[domain.ActionUseItem] = handlers.WithPayload(actions.HandleUseItem)
	s.handlers[domain.ActionEquip] = handlers.WithPayload(actions.HandleEquip)
	s.handlers[domain.ActionBuy] = handlers.WithPayload(actions.HandleBuy)
	s.handlers[domain.ActionSell] = handlers.WithPayload(actions.HandleSell)
	s.handlers[domain.ActionStartQuest] = handlers.WithPayload(actions.HandleStartQuest)
	s.handlers[domain.ActionClaimReward] = handlers.WithPayload(actions.HandleClaimReward)
	s.handlers[domain.ActionTeamAdd] = handlers.WithPayload(actions.HandleTeamAdd)
	s.handlers[domain.ActionTeamRemove] = handlers.WithPayload(actions.HandleTeamRemove)
	s.handlers[domain.ActionEvolve] = handlers.WithPayload(actions.HandleEvolve)
	s.handlers[domain.ActionEnterArea] = handlers.WithPayload(events.HandleAreaTransition)

	if s.cfg.Admin {
		s.handlers[domain.ActionAdminHeal] = handlers.WithEmptyPayload(admin.HandleHeal)
		s.handlers[domain.ActionAdminKill] = handlers.WithPayload(admin.HandleKill)
		s.handlers[domain.ActionAdminGrant] = handlers.WithPayload(admin.HandleGrant)
	}
}

// --- GAME LOOP ---

// Run ticks at cfg.Tick and executes queued commands between ticks until ctx ends.
func (s *Simulation) Run(ctx context.Context) {
	s.log.WithField("tick", s.cfg.Tick.String()).Info("Simulation loop started")

	ticker := time.NewTicker(s.cfg.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Simulation loop stopped")
			return

		case cmd := <-s.commands:
			// Errors are already logged and reported in the game log.
			_, _ = s.Execute(cmd)

		case now := <-ticker.C:
			s.Step(now)
			s.Publish()
		}
	}
}

// Step runs one tick pass. Within it: spawn, AI update, enemy attacks,
// player damage, loot pickup, quest side effects, corpse removal.
// The first four only run while the player is in a hostile area.
func (s *Simulation) Step(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dt := 0.0
	if !s.lastStep.IsZero() {
		dt = min(max(now.Sub(s.lastStep), 0), maxStep).Seconds()
	}
	s.lastStep = now
	s.now = now
	s.tick++

	if s.areas.Current().Type.Hostile() {
		s.stepWilderness(now, dt)
	}

	// 5. Quest side effects of everything above
	s.processEvents()

	// 6. Corpses whose linger elapsed
	for _, id := range s.corpses.PopDue(now) {
		s.removeEnemy(id)
	}
}

func (s *Simulation) stepWilderness(now time.Time, dt float64) {
	playerPos := s.player.Position()

	// 1. Populations
	s.enemySpawner.Update(now, playerPos)
	s.wildSpawner.Update(now, playerPos)

	// 2. AI, walked over a copy so removals cannot skip anyone
	self := s.player.Combat()
	live := s.enemies.Snapshot()
	for _, e := range live {
		if brain, ok := s.brains[e.ID]; ok {
			brain.UpdatePlayer(self)
			brain.Update(dt)
		}
	}

	// 3. Attack results, then player HP
	for _, e := range live {
		brain, ok := s.brains[e.ID]
		if !ok {
			continue
		}
		hit, ok := brain.AttackResult(now)
		if !ok {
			continue
		}

		down := s.player.ApplyDamage(hit.Damage)
		msg := fmt.Sprintf("%s hits you for %d", e.Name, hit.Damage)
		if hit.IsCritical {
			msg += " (critical!)"
		}
		s.AddLog(msg+".", handlers.MsgCombat)

		if down {
			s.playerDefeated(e)
			break
		}
	}

	// 4. Loot within reach
	s.collectLoot()
}

// Execute runs one command synchronously at the simulation clock.
func (s *Simulation) Execute(cmd domain.InternalCommand) (handlers.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.execute(cmd)
}

func (s *Simulation) execute(cmd domain.InternalCommand) (handlers.Result, error) {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return handlers.Result{}, fmt.Errorf("%w: %s", ErrUnknownAction, cmd.Action)
	}

	result, err := handler(s.context(), cmd.Payload)
	if err != nil {
		s.log.WithError(err).WithField("action", cmd.Action.String()).Warn("Command rejected")
		s.AddLog(err.Error(), handlers.MsgError)
		return result, err
	}

	if result.Msg != "" {
		s.AddLog(result.Msg, result.MsgType)
	}

	// Kills are recorded before their consequences are counted.
	for _, e := range result.Killed {
		s.onEnemyKilled(e)
	}
	s.pending = append(s.pending, result.Events...)
	s.processEvents()

	return result, nil
}

// Submit queues an external command for the loop.
func (s *Simulation) Submit(cmd api.ClientCommand) error {
	action := domain.ParseAction(cmd.Action)
	if action == domain.ActionUnknown {
		return fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}

	select {
	case s.commands <- domain.InternalCommand{Action: action, Payload: cmd.Payload}:
		return nil
	default:
		s.log.WithField("action", cmd.Action).Warn("Command queue full, dropping")
		return ErrQueueFull
	}
}

func (s *Simulation) context() handlers.Context {
	return handlers.Context{
		Now:     s.now,
		Player:  s.player,
		Enemies: s.enemies,
		Wild:    s.wild,
		Combat:  s.combat,
		Capture: s.capture,
		Levels:  s.progression,
		Quests:  s.quests,
		Shop:    s.shop,
		Rewards: rewardSink{s},
		Strike:  s.strike,
		Areas:   s.areas,
		Rng:     s.dice.Gameplay,
	}
}

// Publish broadcasts a snapshot and starts a fresh log batch.
func (s *Simulation) Publish() {
	s.mu.Lock()
	snap := s.buildSnapshot()
	s.logs = s.logs[:0]
	s.mu.Unlock()

	s.Hub.Broadcast(snap)
}

// --- TICK HELPERS ---

func (s *Simulation) collectLoot() {
	inv := s.player.Inventory()
	gold := 0

	for _, drop := range s.loot.InRange(s.player.Position()) {
		got, err := systems.TryPickup(inv, drop, s.loot)
		if err != nil {
			// Full bag: the drop stays where it is.
			continue
		}
		if got.Gold > 0 {
			gold += got.Gold
			continue
		}
		s.AddLog(fmt.Sprintf("Picked up %s.", drop.Item.Name), handlers.MsgLoot)
		s.pending = append(s.pending, domain.ItemCollected(got.ItemID, got.Quantity))
	}

	if gold > 0 {
		s.AddLog(fmt.Sprintf("+%d gold.", gold), handlers.MsgLoot)
	}
}

func (s *Simulation) playerDefeated(by *domain.Enemy) {
	s.log.WithFields(logrus.Fields{
		"enemy_id": by.ID,
		"kind":     by.Kind.String(),
		"tick":     s.tick,
	}).Info("Player defeated")

	s.AddLog(fmt.Sprintf("You were defeated by %s.", by.Name), handlers.MsgCombat)
	s.player.Respawn(s.home)
	s.areas.ReturnToStart()
}

// rewardSink grants quest rewards. Only called under mu, from a command.
type rewardSink struct {
	s *Simulation
}

// CanHold resolves the templates and checks the bag. Unknown items never fit.
func (r rewardSink) CanHold(items []domain.RewardItem) bool {
	stacks := make([]domain.InventorySlot, 0, len(items))
	for _, it := range items {
		item, ok := r.s.cat.Item(it.ItemID)
		if !ok {
			return false
		}
		stacks = append(stacks, domain.InventorySlot{Item: item, Quantity: it.Quantity})
	}
	return r.s.player.Inventory().Fits(stacks)
}

func (r rewardSink) AddGold(amount int) {
	r.s.player.Inventory().AddGold(amount)
}

func (r rewardSink) AddItem(itemID string, quantity int) bool {
	item, ok := r.s.cat.Item(itemID)
	if !ok {
		return false
	}
	return r.s.player.Inventory().AddItem(item, quantity)
}

// AddExperience goes to the lead creature of the active team.
func (r rewardSink) AddExperience(amount int) {
	lead := r.s.player.Roster().Lead()
	if lead == nil {
		r.s.log.WithField("experience", amount).Warn("No team lead, experience lost")
		return
	}
	r.s.awardExperience(lead, amount)
}
