package domain

import "ethereplodor-server/internal/core/types/enums"

// Objective counts events of one type, optionally filtered on a target id.
type Objective struct {
	Type     enums.ObjectiveType `json:"type"`
	TargetID string              `json:"targetId,omitempty"`
	Target   int                 `json:"target"`
	Current  int                 `json:"current"`
}

func (o *Objective) Done() bool {
	return o.Current >= o.Target
}

type RewardItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type Reward struct {
	Gold       int          `json:"gold,omitempty"`
	Experience int          `json:"experience,omitempty"`
	Items      []RewardItem `json:"items,omitempty"`
}

type Quest struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Objectives  []Objective       `json:"objectives"`
	Reward      Reward            `json:"reward"`
	Status      enums.QuestStatus `json:"status"`
}

// Complete reports whether every objective reached its target.
func (q *Quest) Complete() bool {
	for i := range q.Objectives {
		if !q.Objectives[i].Done() {
			return false
		}
	}
	return true
}

// Clone deep-copies objectives and reward items.
func (q *Quest) Clone() *Quest {
	out := *q
	out.Objectives = append([]Objective(nil), q.Objectives...)
	out.Reward.Items = append([]RewardItem(nil), q.Reward.Items...)
	return &out
}
