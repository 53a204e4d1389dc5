package handlers

import (
	"encoding/json"
	"ethereplodor-server/pkg/api"
	"fmt"
)

// TypedHandlerFunc works on an already decoded payload.
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc needs no payload (INIT, ATTACK).
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload decodes and validates T before calling handler.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		var payload T

		// 1. Decode; an absent payload leaves T zero
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &payload); err != nil {
				return Result{}, fmt.Errorf("invalid payload format: %w", err)
			}
		}

		// 2. Validate when T knows how
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("validation failed: %w", err)
			}
		}

		// 3. Logic
		return handler(ctx, payload)
	}
}

// WithEmptyPayload ignores whatever came in.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}
