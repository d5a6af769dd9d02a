package messages

// PlayerInput is sent from client to server each frame with the player's
// control state. The server keeps the latest one per character.
type PlayerInput struct {
	Sequence  uint32 // Incrementing ID, echoed back in NetCharacter
	Direction int    // -1 left, 0 none, 1 right
	Jump      bool
	Fire      bool
	Up        bool // Aim modifiers for Fire
	Down      bool
	Timestamp int64 // Client timestamp (Unix ms)
}
