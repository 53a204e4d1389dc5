package actions

import (
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/engine/handlers"
	"ethereplodor-server/pkg/api"
	"fmt"
)

func HandleStartQuest(ctx handlers.Context, p api.QuestPayload) (handlers.Result, error) {
	q, ok := ctx.Quests.Get(p.QuestID)
	if !ok {
		return handlers.Fail("Unknown quest."), nil
	}
	if !ctx.Quests.Start(p.QuestID) {
		return handlers.Fail(fmt.Sprintf("%s cannot be started.", q.Title)), nil
	}
	return handlers.Result{Msg: fmt.Sprintf("Quest started: %s", q.Title), MsgType: handlers.MsgQuest}, nil
}

func HandleClaimReward(ctx handlers.Context, p api.QuestPayload) (handlers.Result, error) {
	q, ok := ctx.Quests.Get(p.QuestID)
	if !ok {
		return handlers.Fail("Unknown quest."), nil
	}
	if q.Status == enums.QuestCompleted && !ctx.Rewards.CanHold(q.Reward.Items) {
		return handlers.Fail("Your bag is too full for this reward."), nil
	}
	if !ctx.Quests.ClaimReward(p.QuestID, ctx.Rewards) {
		return handlers.Fail(fmt.Sprintf("%s has no reward to claim.", q.Title)), nil
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("Reward claimed: %d gold, %d experience.", q.Reward.Gold, q.Reward.Experience),
		MsgType: handlers.MsgQuest,
	}, nil
}
