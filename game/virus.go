package game

import (
	"math"
	"time"
)

// StepViruses advances every virus agent and drains due respawns. Each
// virus thinks on its own ~100ms deadline rather than every tick: flee the
// nearest player when one is close, otherwise drift toward a periodically
// re-rolled wander target.
func StepViruses(s *State, now time.Time) {
	s.spawnDueViruses(now)

	for _, v := range s.Viruses {
		if now.Before(v.NextThinkAt) {
			continue
		}
		v.NextThinkAt = now.Add(VirusThinkEvery)

		if p, d2 := s.nearestPlayer(v.X, v.Y); p != nil && d2 <= VirusFleeRadius*VirusFleeRadius {
			flee(v, p)
		} else {
			wander(s, v, now)
		}
		v.X, v.Y = clampToMap(v.X, v.Y, v.R)
	}
}

func (s *State) nearestPlayer(x, y float64) (*Player, float64) {
	var nearest *Player
	best := math.MaxFloat64
	for _, p := range s.Players {
		if d2 := Dist2(x, y, p.X, p.Y); d2 < best {
			best = d2
			nearest = p
		}
	}
	return nearest, best
}

func flee(v *Virus, from *Player) {
	dx := v.X - from.X
	dy := v.Y - from.Y
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		// dead center, pick an arbitrary escape direction
		dx, dy, mag = 1, 0, 1
	}
	v.X += dx / mag * VirusSpeed
	v.Y += dy / mag * VirusSpeed
}

func wander(s *State, v *Virus, now time.Time) {
	if !now.Before(v.NextWanderAt) {
		v.WanderX = s.randomCoord(v.R)
		v.WanderY = s.randomCoord(v.R)
		v.NextWanderAt = now.Add(VirusWanderEvery)
	}
	dx := v.WanderX - v.X
	dy := v.WanderY - v.Y
	mag := math.Hypot(dx, dy)
	if mag <= VirusWanderSpeed {
		v.X, v.Y = v.WanderX, v.WanderY
		return
	}
	v.X += dx / mag * VirusWanderSpeed
	v.Y += dy / mag * VirusWanderSpeed
}

func (s *State) spawnDueViruses(now time.Time) {
	remaining := s.virusRespawns[:0]
	for _, due := range s.virusRespawns {
		if now.Before(due) {
			remaining = append(remaining, due)
			continue
		}
		s.SpawnVirus(now)
	}
	s.virusRespawns = remaining
}
