package protocol

// Payloads coming in from the client.

type Join struct {
	Nickname string `json:"nickname"`
	Color    string `json:"color,omitempty"` // optional, server assigns one otherwise
}

type Move struct {
	DX float64 `json:"dx"` // directional weight, unit-ish but not trusted
	DY float64 `json:"dy"`
}

type Shoot struct {
	MouseX  float64 `json:"mouseX"`
	MouseY  float64 `json:"mouseY"`
	PlayerX float64 `json:"playerX"` // client's view of its own position, aim math only
	PlayerY float64 `json:"playerY"`
}

type Chat struct {
	Message string `json:"message"`
}

type Emoji struct {
	Emoji string `json:"emoji"`
}

// VoiceAudio carries an opaque encoded audio chunk. The server relays it
// to proximity neighbors without interpreting the payload.
type VoiceAudio struct {
	Audio    string `json:"audio"` // base64
	Sequence int    `json:"sequence"`
}

type VoiceStatus struct {
	Status string `json:"status"` // "talking" | "silent"
}
