package domain

// Player is the collaborator owning the player character.
// The simulation reads it and hands back deltas; it never stores its own copy.
type Player interface {
	// Combat is a copy of the combat shape, equipment bonuses included.
	Combat() CombatEntity
	Position() Vec3
	SetPosition(pos Vec3)
	// ApplyDamage returns true once the player is down.
	ApplyDamage(amount int) bool
	ApplyHeal(amount int) int
	// Respawn restores full health at pos.
	Respawn(pos Vec3)
	Inventory() *Inventory
	Roster() *Roster
}
