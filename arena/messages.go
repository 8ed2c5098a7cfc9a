package arena

// Conn is the outbound sink for one connected client. The network layer
// implements it over a websocket; tests implement it in-process.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Commands sent into the arena inbox. They run strictly between ticks on
// the arena goroutine, never concurrently with a tick.

// Join: issued once after the join frame is parsed.
type Join struct {
	Conn     Conn
	Nickname string
	Color    string
	Reply    chan<- JoinResult
}

type JoinResult struct {
	PlayerID string
}

// Move: one buffered directional sample.
type Move struct {
	PlayerID string
	DX, DY   float64
}

type Shoot struct {
	PlayerID string
	MouseX   float64
	MouseY   float64
	PlayerX  float64
	PlayerY  float64
}

type Chat struct {
	PlayerID string
	Message  string
}

type Emoji struct {
	PlayerID string
	Emoji    string
}

type VoiceAudio struct {
	PlayerID string
	Audio    string
	Sequence int
}

type VoiceStatus struct {
	PlayerID string
	Status   string
}

type Ping struct {
	PlayerID string
}

// Leave: issued on disconnect.
type Leave struct {
	PlayerID string
}
