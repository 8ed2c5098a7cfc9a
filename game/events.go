package game

// Events produced by the tick passes. The arena queues them during a tick
// and flushes them to the affected connections once at the end, mirroring
// the command structs on the inbox side.

type Event any

// PlayerEaten: one player absorbed another.
type PlayerEaten struct {
	EaterID, EaterNick string
	EatenID, EatenNick string
}

// PlayerDied: a virus eliminated a player.
type PlayerDied struct {
	ID, Nick string
	VirusID  string
}

// VoiceConnected: two players came within voice range of each other.
type VoiceConnected struct {
	AID, ANick string
	BID, BNick string
	Distance   float64
}

// VoiceDisconnected: an edge went away, either by distance or because one
// side was removed.
type VoiceDisconnected struct {
	AID, BID string
}
