package protocol

// Inbound message types (client -> server).
const (
	MsgJoin        = "join"
	MsgMove        = "move"
	MsgShoot       = "shoot"
	MsgChat        = "chat"
	MsgEmoji       = "emoji"
	MsgVoiceAudio  = "voiceAudio"
	MsgVoiceStatus = "voiceStatus"
	MsgPing        = "ping"
)

// Outbound message types (server -> client).
const (
	MsgInit              = "init"
	MsgState             = "state"
	MsgChatHistory       = "chatHistory"
	MsgEat               = "eat"
	MsgVoiceConnect      = "voiceConnect"
	MsgVoiceDisconnect   = "voiceDisconnect"
	MsgVoiceStatusUpdate = "voiceStatusUpdate"
	MsgCooldown          = "cooldown"
	MsgError             = "error"
	MsgPong              = "pong"
)

const (
	SimTickHz = 20
)
