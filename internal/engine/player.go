package engine

import (
	"ethereplodor-server/internal/domain"
)

// LocalPlayer is the in-memory player used by the headless server and tests.
type LocalPlayer struct {
	entity domain.CombatEntity
	inv    *domain.Inventory
	roster *domain.Roster
}

func NewLocalPlayer(id string, pos domain.Vec3) *LocalPlayer {
	return &LocalPlayer{
		entity: domain.CombatEntity{
			ID:      id,
			HP:      domain.PlayerMaxHP,
			MaxHP:   domain.PlayerMaxHP,
			Attack:  domain.PlayerBaseAttack,
			Defense: domain.PlayerBaseDefense,
			Pos:     pos,
		},
		inv:    domain.NewInventory(domain.DefaultInventorySlots),
		roster: domain.NewRoster(),
	}
}

// Combat adds the equipment bonuses to the base stats.
func (p *LocalPlayer) Combat() domain.CombatEntity {
	out := p.entity
	out.Attack += p.inv.AttackBonus()
	out.Defense += p.inv.DefenseBonus()
	return out
}

func (p *LocalPlayer) Position() domain.Vec3 {
	return p.entity.Pos
}

func (p *LocalPlayer) SetPosition(pos domain.Vec3) {
	p.entity.Pos = pos
}

func (p *LocalPlayer) ApplyDamage(amount int) bool {
	return p.entity.TakeDamage(amount)
}

func (p *LocalPlayer) ApplyHeal(amount int) int {
	return p.entity.Heal(amount)
}

func (p *LocalPlayer) Respawn(pos domain.Vec3) {
	p.entity.HP = p.entity.MaxHP
	p.entity.Pos = pos
}

func (p *LocalPlayer) Inventory() *domain.Inventory {
	return p.inv
}

func (p *LocalPlayer) Roster() *domain.Roster {
	return p.roster
}
