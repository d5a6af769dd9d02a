package messages

import "github.com/leap-fish/necs/esync"

// JoinRequest is sent by a client after connecting to request a character.
type JoinRequest struct {
	Version    string
	PlayerName string
}

// JoinAccepted is sent by the server once the client's character exists.
type JoinAccepted struct {
	NetworkID  esync.NetworkId
	ServerName string
	Level      string
	TickRate   int
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
