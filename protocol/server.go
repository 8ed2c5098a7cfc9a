package protocol

// Init is sent once, right after a join is accepted.
type Init struct {
	ID         string           `json:"id"`
	MapSize    float64          `json:"mapSize"`
	VoiceRange float64          `json:"voiceRange"`
	Players    []PlayerSnapshot `json:"players,omitempty"`
	Foods      []FoodSnapshot   `json:"foods,omitempty"`
	Viruses    []VirusSnapshot  `json:"viruses,omitempty"`
}

// State is the periodic authoritative snapshot.
type State struct {
	Players   []PlayerSnapshot `json:"players"`
	Foods     []FoodSnapshot   `json:"foods"`
	Viruses   []VirusSnapshot  `json:"viruses"`
	Bullets   []BulletSnapshot `json:"bullets"`
	Timestamp int64            `json:"timestamp"` // unix millis
}

type PlayerSnapshot struct {
	ID       string  `json:"id"`
	Nickname string  `json:"nickname"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	R        float64 `json:"r"`
	Color    string  `json:"color,omitempty"`
	Speaking bool    `json:"speaking,omitempty"`
}

type FoodSnapshot struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	Color string  `json:"color,omitempty"`
}

type VirusSnapshot struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	R  float64 `json:"r"`
}

type BulletSnapshot struct {
	ID      string  `json:"id"`
	OwnerID string  `json:"ownerId"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	R       float64 `json:"r"`
	Angle   float64 `json:"angle"` // launch direction, radians
}

type ChatMessage struct {
	PlayerID  string `json:"playerId,omitempty"` // empty for system messages
	Nickname  string `json:"nickname"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	System    bool   `json:"system,omitempty"`
}

type ChatHistory struct {
	Messages []ChatMessage `json:"messages"`
}

type Eat struct {
	Eater string `json:"eater"`
	Eaten string `json:"eaten"`
}

type VoiceConnect struct {
	PlayerID string  `json:"playerId"`
	Nickname string  `json:"nickname"`
	Distance float64 `json:"distance"`
}

type VoiceDisconnect struct {
	PlayerID string `json:"playerId"`
}

// VoiceAudioRelay is VoiceAudio forwarded to a neighbor, with the
// distance-based volume the receiver should play it at.
type VoiceAudioRelay struct {
	From     string  `json:"from"`
	Nickname string  `json:"nickname"`
	Audio    string  `json:"audio"`
	Sequence int     `json:"sequence"`
	Volume   float64 `json:"volume"`
	Distance float64 `json:"distance"`
}

type VoiceStatusUpdate struct {
	PlayerID string `json:"playerId"`
	Status   string `json:"status"`
}

type EmojiBroadcast struct {
	PlayerID string `json:"playerId"`
	Emoji    string `json:"emoji"`
}

type Cooldown struct {
	Remaining int64 `json:"remaining"` // millis until the next shot is allowed
}

type Error struct {
	Message string `json:"message"`
}

type Pong struct{}
