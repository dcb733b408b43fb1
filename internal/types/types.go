package types

import (
	"github.com/DoyleJ11/lol-cooldowns/internal/aggregator"
	"github.com/DoyleJ11/lol-cooldowns/internal/champion"
)

const (
	MsgCooldowns = "Cooldowns"
	MsgError     = "Error"
)

// ServerMessage is pushed over the websocket stream.
type ServerMessage struct {
	Type    string             `json:"type"` // "Cooldowns" | "Error"
	Version int                `json:"version"`
	Payload *aggregator.Result `json:"payload,omitempty"`
	Lineup  *champion.Lineup   `json:"lineup,omitempty"` // blue side first
	Error   string             `json:"error,omitempty"`
}

// ErrorResponse is the body of a failed /cooldowns request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LiveDataError is reported when the live roster cannot be read.
const LiveDataError = "Failed to fetch live data"
