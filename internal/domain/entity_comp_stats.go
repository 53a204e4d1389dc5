package domain

// CombatEntity is the shape combat math works on, for the player and enemies alike.
// Invariant: 0 <= HP <= MaxHP.
type CombatEntity struct {
	ID      string `json:"id"`
	HP      int    `json:"hp"`
	MaxHP   int    `json:"maxHp"`
	Attack  int    `json:"attack"`
	Defense int    `json:"defense"`
	Pos     Vec3   `json:"position"`
}

// IsAlive reports hp > 0.
func (c *CombatEntity) IsAlive() bool {
	return c.HP > 0
}

// TakeDamage applies hp = max(0, hp - amount). Negative amounts count as 0.
// Returns true when hp ended at 0 (death signal).
func (c *CombatEntity) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	c.HP -= amount
	if c.HP <= 0 {
		c.HP = 0
		return true
	}
	return false
}

// Heal restores up to MaxHP and returns the amount actually healed.
// Dead entities stay dead.
func (c *CombatEntity) Heal(amount int) int {
	if amount <= 0 || c.HP <= 0 {
		return 0
	}
	before := c.HP
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	return c.HP - before
}
