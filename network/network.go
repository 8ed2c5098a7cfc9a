package network

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"agari/arena"
	"agari/protocol"
)

const (
	readLimit     = 1 << 20
	readDeadline  = 60 * time.Second
	writeDeadline = 10 * time.Second
	pingEvery     = 25 * time.Second
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server is the websocket edge: it turns frames into arena commands and
// hands each connection to the arena as an outbound sink.
type Server struct {
	arena *arena.Arena
}

func NewServer(a *arena.Arena) *Server {
	return &Server{arena: a}
}

// wsConn adapts a websocket connection to arena.Conn. Writes are
// serialized with a mutex because the arena goroutine and the ping loop
// both touch the socket.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeDeadline)); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	wc := &wsConn{conn: conn}
	var playerID string
	defer func() {
		if playerID != "" {
			s.arena.Inbox <- arena.Leave{PlayerID: playerID}
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(readDeadline))

		typ, err := protocol.DecodeType(msg)
		if err != nil {
			// malformed input is dropped, the connection stays open
			log.Printf("dropping malformed frame: %v", err)
			continue
		}

		if playerID == "" {
			if typ != protocol.MsgJoin {
				continue // nothing else is valid before a join
			}
			j, err := protocol.DecodePayload[protocol.Join](msg)
			if err != nil {
				log.Printf("dropping malformed join: %v", err)
				continue
			}
			reply := make(chan arena.JoinResult, 1)
			s.arena.Inbox <- arena.Join{Conn: wc, Nickname: j.Nickname, Color: j.Color, Reply: reply}
			playerID = (<-reply).PlayerID
			continue
		}

		s.dispatch(playerID, typ, msg)
	}
}

func (s *Server) dispatch(playerID, typ string, msg []byte) {
	switch typ {
	case protocol.MsgMove:
		p, err := protocol.DecodePayload[protocol.Move](msg)
		if err != nil {
			log.Printf("dropping malformed move: %v", err)
			return
		}
		s.arena.Inbox <- arena.Move{PlayerID: playerID, DX: p.DX, DY: p.DY}
	case protocol.MsgShoot:
		p, err := protocol.DecodePayload[protocol.Shoot](msg)
		if err != nil {
			log.Printf("dropping malformed shoot: %v", err)
			return
		}
		s.arena.Inbox <- arena.Shoot{
			PlayerID: playerID,
			MouseX:   p.MouseX, MouseY: p.MouseY,
			PlayerX: p.PlayerX, PlayerY: p.PlayerY,
		}
	case protocol.MsgChat:
		p, err := protocol.DecodePayload[protocol.Chat](msg)
		if err != nil || p.Message == "" {
			return
		}
		s.arena.Inbox <- arena.Chat{PlayerID: playerID, Message: p.Message}
	case protocol.MsgEmoji:
		p, err := protocol.DecodePayload[protocol.Emoji](msg)
		if err != nil || p.Emoji == "" {
			return
		}
		s.arena.Inbox <- arena.Emoji{PlayerID: playerID, Emoji: p.Emoji}
	case protocol.MsgVoiceAudio:
		p, err := protocol.DecodePayload[protocol.VoiceAudio](msg)
		if err != nil {
			return
		}
		s.arena.Inbox <- arena.VoiceAudio{PlayerID: playerID, Audio: p.Audio, Sequence: p.Sequence}
	case protocol.MsgVoiceStatus:
		p, err := protocol.DecodePayload[protocol.VoiceStatus](msg)
		if err != nil {
			return
		}
		s.arena.Inbox <- arena.VoiceStatus{PlayerID: playerID, Status: p.Status}
	case protocol.MsgPing:
		s.arena.Inbox <- arena.Ping{PlayerID: playerID}
	default:
		log.Printf("unknown message type %q from %s", typ, playerID)
	}
}
