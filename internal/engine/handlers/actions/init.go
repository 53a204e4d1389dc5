package actions

import "ethereplodor-server/internal/engine/handlers"

func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Welcome to Ethereplodor.",
		MsgType: handlers.MsgInfo,
	}, nil
}
