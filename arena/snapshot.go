package arena

import (
	"time"

	"agari/game"
	"agari/protocol"
)

// Snapshot building. Players are always sent in full; foods, viruses and
// bullets are capped so a single frame can never balloon the payload.

func (a *Arena) buildSnapshot(now time.Time) protocol.State {
	return protocol.State{
		Players:   a.playerSnapshots(),
		Foods:     a.foodSnapshots(),
		Viruses:   a.virusSnapshots(),
		Bullets:   a.bulletSnapshots(),
		Timestamp: now.UnixMilli(),
	}
}

func (a *Arena) playerSnapshots() []protocol.PlayerSnapshot {
	out := make([]protocol.PlayerSnapshot, 0, len(a.state.Players))
	for _, p := range a.state.Players {
		out = append(out, protocol.PlayerSnapshot{
			ID:       p.ID,
			Nickname: p.Nickname,
			X:        p.X,
			Y:        p.Y,
			R:        p.R,
			Color:    p.Color,
			Speaking: p.Speaking,
		})
	}
	return out
}

func (a *Arena) foodSnapshots() []protocol.FoodSnapshot {
	out := make([]protocol.FoodSnapshot, 0, min(len(a.state.Foods), game.MaxSnapshotFoods))
	for _, f := range a.state.Foods {
		if len(out) >= game.MaxSnapshotFoods {
			break
		}
		out = append(out, protocol.FoodSnapshot{ID: f.ID, X: f.X, Y: f.Y, R: f.R, Color: f.Color})
	}
	return out
}

func (a *Arena) virusSnapshots() []protocol.VirusSnapshot {
	out := make([]protocol.VirusSnapshot, 0, min(len(a.state.Viruses), game.MaxSnapshotViruses))
	for _, v := range a.state.Viruses {
		if len(out) >= game.MaxSnapshotViruses {
			break
		}
		out = append(out, protocol.VirusSnapshot{ID: v.ID, X: v.X, Y: v.Y, R: v.R})
	}
	return out
}

func (a *Arena) bulletSnapshots() []protocol.BulletSnapshot {
	out := make([]protocol.BulletSnapshot, 0, min(len(a.state.Bullets), game.MaxSnapshotBullets))
	for _, b := range a.state.Bullets {
		if len(out) >= game.MaxSnapshotBullets {
			break
		}
		out = append(out, protocol.BulletSnapshot{ID: b.ID, OwnerID: b.OwnerID, X: b.X, Y: b.Y, R: b.R, Angle: b.Angle})
	}
	return out
}
