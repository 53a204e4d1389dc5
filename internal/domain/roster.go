package domain

import (
	"ethereplodor-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// MaxTeamSize caps the active team.
const MaxTeamSize = 6

// Roster is the player's owned creatures plus the ordered active team.
type Roster struct {
	owned *Registry[*Creature]
	team  []string
}

func NewRoster() *Roster {
	return &Roster{owned: NewRegistry[*Creature]()}
}

// Capture mints an owned copy of a wild creature under newID.
func (r *Roster) Capture(wild *Creature, newID string) *Creature {
	owned := wild.Clone()
	owned.ID = newID
	owned.IsWild = false
	owned.Pos = nil
	r.owned.Add(owned.ID, owned)
	return owned
}

func (r *Roster) Get(id string) (*Creature, bool) {
	return r.owned.Get(id)
}

// Owned lists every owned creature in capture order.
func (r *Roster) Owned() []*Creature {
	return r.owned.Snapshot()
}

// AddToTeam fails (with a warning) when the team is full, the creature is unknown or already in.
func (r *Roster) AddToTeam(id string) bool {
	if !r.owned.Has(id) {
		return false
	}
	for _, member := range r.team {
		if member == id {
			return false
		}
	}
	if r.TeamFull() {
		logger.Component("roster").WithFields(logrus.Fields{
			"creature_id": id,
			"team_size":   len(r.team),
		}).Warn("Team full, creature not added")
		return false
	}
	r.team = append(r.team, id)
	return true
}

func (r *Roster) RemoveFromTeam(id string) bool {
	for i, member := range r.team {
		if member == id {
			r.team = append(r.team[:i], r.team[i+1:]...)
			return true
		}
	}
	return false
}

// Team returns the active team in order.
func (r *Roster) Team() []*Creature {
	out := make([]*Creature, 0, len(r.team))
	for _, id := range r.team {
		if c, ok := r.owned.Get(id); ok {
			out = append(out, c)
		}
	}
	return out
}

// TeamIDs returns a copy of the team order.
func (r *Roster) TeamIDs() []string {
	return append([]string(nil), r.team...)
}

// Lead is the first team member, nil for an empty team.
func (r *Roster) Lead() *Creature {
	team := r.Team()
	if len(team) == 0 {
		return nil
	}
	return team[0]
}

func (r *Roster) TeamFull() bool {
	return len(r.team) >= MaxTeamSize
}
