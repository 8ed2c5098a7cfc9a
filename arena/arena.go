package arena

import (
	"errors"
	"fmt"
	"time"

	"agari/game"
	"agari/protocol"
)

const chatHistoryLimit = 50

// Arena owns the single shared game world. One goroutine (Run) serializes
// every mutation: inbox commands run between ticks, each tick runs the
// full update pipeline and broadcasts a snapshot.
type Arena struct {
	Inbox chan any

	// Overridable before Run for tests and configuration.
	Now            func() time.Time
	TickHz         int
	IdleTimeout    time.Duration
	IdleSweepEvery time.Duration

	state   *game.State
	clients map[string]Conn
	chatLog []protocol.ChatMessage
	quit    chan struct{}
}

func New() *Arena {
	return &Arena{
		Inbox:          make(chan any, 256),
		Now:            time.Now,
		TickHz:         protocol.SimTickHz,
		IdleTimeout:    30 * time.Second,
		IdleSweepEvery: 5 * time.Second,
		state:          game.NewState(time.Now()),
		clients:        make(map[string]Conn),
		quit:           make(chan struct{}),
	}
}

func (a *Arena) Stop() {
	close(a.quit)
}

func (a *Arena) NumPlayers() int {
	return len(a.clients)
}

func (a *Arena) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(a.TickHz))
	defer ticker.Stop()
	idle := time.NewTicker(a.IdleSweepEvery)
	defer idle.Stop()

	for {
		select {
		case <-a.quit:
			return
		case cmd := <-a.Inbox:
			a.handleCommand(cmd)
		case <-ticker.C:
			a.tick()
		case <-idle.C:
			a.sweepIdle()
		}
	}
}

func (a *Arena) tick() {
	now := a.Now()
	dt := 1.0 / float64(a.TickHz)
	events := game.Step(a.state, now, dt)
	a.broadcastState(now)
	a.flushEvents(events)
}

func (a *Arena) handleCommand(cmd any) {
	now := a.Now()
	switch c := cmd.(type) {
	case Join:
		p := a.state.AddPlayer(c.Nickname, c.Color, now)
		a.clients[p.ID] = c.Conn
		a.sendTo(p.ID, protocol.MsgInit, protocol.Init{
			ID:         p.ID,
			MapSize:    game.MapSize,
			VoiceRange: game.VoiceRange,
			Players:    a.playerSnapshots(),
			Foods:      a.foodSnapshots(),
			Viruses:    a.virusSnapshots(),
		})
		if len(a.chatLog) > 0 {
			a.sendTo(p.ID, protocol.MsgChatHistory, protocol.ChatHistory{Messages: a.chatLog})
		}
		a.systemChat(fmt.Sprintf("%s joined the arena", p.Nickname), now)
		c.Reply <- JoinResult{PlayerID: p.ID}

	case Move:
		p, ok := a.state.Players[c.PlayerID]
		if !ok {
			return
		}
		if len(p.Moves) < game.MaxBufferedMoves {
			p.Moves = append(p.Moves, game.MoveSample{DX: c.DX, DY: c.DY, At: now})
		}
		p.LastInputAt = now

	case Shoot:
		p, ok := a.state.Players[c.PlayerID]
		if !ok {
			return
		}
		p.LastInputAt = now
		_, err := game.Shoot(a.state, c.PlayerID, c.MouseX, c.MouseY, c.PlayerX, c.PlayerY, now)
		var cd *game.CooldownError
		switch {
		case err == nil:
		case errors.As(err, &cd):
			a.sendTo(c.PlayerID, protocol.MsgCooldown, protocol.Cooldown{Remaining: cd.Remaining.Milliseconds()})
		case errors.Is(err, game.ErrTooSmall):
			a.sendTo(c.PlayerID, protocol.MsgError, protocol.Error{Message: "you are too small to shoot"})
		}

	case Chat:
		p, ok := a.state.Players[c.PlayerID]
		if !ok {
			return
		}
		p.LastInputAt = now
		a.appendChat(protocol.ChatMessage{
			PlayerID:  p.ID,
			Nickname:  p.Nickname,
			Message:   c.Message,
			Timestamp: now.UnixMilli(),
		})

	case Emoji:
		if _, ok := a.state.Players[c.PlayerID]; !ok {
			return
		}
		a.broadcast(protocol.MsgEmoji, protocol.EmojiBroadcast{PlayerID: c.PlayerID, Emoji: c.Emoji})

	case VoiceAudio:
		a.relayVoice(c, now)

	case VoiceStatus:
		p, ok := a.state.Players[c.PlayerID]
		if !ok {
			return
		}
		p.Speaking = c.Status == "talking"
		p.LastInputAt = now
		a.broadcast(protocol.MsgVoiceStatusUpdate, protocol.VoiceStatusUpdate{PlayerID: c.PlayerID, Status: c.Status})

	case Ping:
		// keepalive only, deliberately does not refresh the idle clock
		a.sendTo(c.PlayerID, protocol.MsgPong, protocol.Pong{})

	case Leave:
		a.removePlayer(c.PlayerID, "left the game")
	}
}

// relayVoice forwards an opaque audio chunk to the sender's current
// proximity neighbors with distance-based volume.
func (a *Arena) relayVoice(c VoiceAudio, now time.Time) {
	p, ok := a.state.Players[c.PlayerID]
	if !ok {
		return
	}
	p.LastInputAt = now
	for nid := range p.Neighbors {
		n, ok := a.state.Players[nid]
		if !ok {
			continue
		}
		d := game.Dist(p.X, p.Y, n.X, n.Y)
		a.sendTo(nid, protocol.MsgVoiceAudio, protocol.VoiceAudioRelay{
			From:     p.ID,
			Nickname: p.Nickname,
			Audio:    c.Audio,
			Sequence: c.Sequence,
			Volume:   game.VoiceVolume(d),
			Distance: d,
		})
	}
}

// flushEvents sends the per-player messages queued during a tick. Runs
// once per tick, after the snapshot broadcast.
func (a *Arena) flushEvents(events []game.Event) {
	now := a.Now()
	for _, ev := range events {
		switch e := ev.(type) {
		case game.PlayerEaten:
			a.broadcast(protocol.MsgEat, protocol.Eat{Eater: e.EaterID, Eaten: e.EatenID})
			a.systemChat(fmt.Sprintf("%s ate %s", e.EaterNick, e.EatenNick), now)
			a.dropConn(e.EatenID)
		case game.PlayerDied:
			a.broadcast(protocol.MsgEat, protocol.Eat{Eater: e.VirusID, Eaten: e.ID})
			a.systemChat(fmt.Sprintf("%s was destroyed by a virus", e.Nick), now)
			a.dropConn(e.ID)
		case game.VoiceConnected:
			a.sendTo(e.AID, protocol.MsgVoiceConnect, protocol.VoiceConnect{PlayerID: e.BID, Nickname: e.BNick, Distance: e.Distance})
			a.sendTo(e.BID, protocol.MsgVoiceConnect, protocol.VoiceConnect{PlayerID: e.AID, Nickname: e.ANick, Distance: e.Distance})
		case game.VoiceDisconnected:
			a.sendTo(e.AID, protocol.MsgVoiceDisconnect, protocol.VoiceDisconnect{PlayerID: e.BID})
			a.sendTo(e.BID, protocol.MsgVoiceDisconnect, protocol.VoiceDisconnect{PlayerID: e.AID})
		}
	}
}

// removePlayer is the shared teardown for leaves, idle kicks and send
// failures. Idempotent: safe for ids that are already gone.
func (a *Arena) removePlayer(id, farewell string) {
	p, hasPlayer := a.state.Players[id]
	if hasPlayer {
		a.flushEvents(game.TeardownEdges(a.state, id))
		a.state.RemovePlayer(id)
		a.systemChat(fmt.Sprintf("%s %s", p.Nickname, farewell), a.Now())
	}
	a.dropConn(id)
}

func (a *Arena) dropConn(id string) {
	if conn, ok := a.clients[id]; ok {
		_ = conn.Close()
		delete(a.clients, id)
	}
}

func (a *Arena) sweepIdle() {
	now := a.Now()
	for _, id := range a.state.PlayerIDs() {
		p, ok := a.state.Players[id]
		if !ok {
			continue
		}
		if now.Sub(p.LastInputAt) > a.IdleTimeout {
			a.removePlayer(id, "was disconnected for inactivity")
		}
	}
}

func (a *Arena) appendChat(msg protocol.ChatMessage) {
	a.chatLog = append(a.chatLog, msg)
	if len(a.chatLog) > chatHistoryLimit {
		a.chatLog = a.chatLog[len(a.chatLog)-chatHistoryLimit:]
	}
	a.broadcast(protocol.MsgChat, msg)
}

func (a *Arena) systemChat(text string, now time.Time) {
	a.appendChat(protocol.ChatMessage{
		Nickname:  "system",
		Message:   text,
		Timestamp: now.UnixMilli(),
		System:    true,
	})
}

func (a *Arena) broadcastState(now time.Time) {
	b, err := protocol.Encode(protocol.MsgState, a.buildSnapshot(now))
	if err != nil {
		return
	}
	var failed []string
	for id, c := range a.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		a.removePlayer(id, "lost connection")
	}
}

// broadcast is the explicit best-effort policy: one bad connection never
// breaks delivery to the rest. Dead sockets are culled by the snapshot
// broadcast and the idle sweep.
func (a *Arena) broadcast(t string, payload any) {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		return
	}
	for _, c := range a.clients {
		_ = c.Send(b)
	}
}

func (a *Arena) sendTo(id string, t string, payload any) {
	c, ok := a.clients[id]
	if !ok {
		return
	}
	b, err := protocol.Encode(t, payload)
	if err != nil {
		return
	}
	_ = c.Send(b)
}
