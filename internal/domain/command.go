package domain

import "encoding/json"

// InternalCommand is a parsed client command queued for the simulation loop.
type InternalCommand struct {
	Action  ActionType
	Payload json.RawMessage
}
