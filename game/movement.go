package game

import (
	"math"
	"time"
)

// Speed is the size/speed balancing rule: inversely proportional to radius
// relative to the starting radius, clamped.
func Speed(r float64) float64 {
	if r <= 0 {
		return MaxSpeed
	}
	return clamp(BaseSpeed*InitialRadius/r, MinSpeed, MaxSpeed)
}

// IntegrateMovement drains every player's buffered input and applies one
// tick of movement. A player with no fresh samples does not move.
func IntegrateMovement(s *State, now time.Time, dt float64) {
	for _, p := range s.Players {
		integrate(p, now, dt)
	}
}

func integrate(p *Player, now time.Time, dt float64) {
	moves := p.Moves
	p.Moves = p.Moves[:0]

	var sx, sy float64
	n := 0
	for _, m := range moves {
		if now.Sub(m.At) > MoveFreshness {
			continue // stale sample, client lagged
		}
		sx += m.DX
		sy += m.DY
		n++
	}
	if n == 0 {
		return
	}

	ax := sx / float64(n)
	ay := sy / float64(n)
	mag := math.Hypot(ax, ay)
	if mag < MoveDeadzone {
		// net input is noise, holding still beats oscillating
		return
	}
	// Samples are raw directional weights; never let a hostile client buy
	// extra speed with oversized vectors.
	if mag > 1 {
		ax /= mag
		ay /= mag
	}

	step := Speed(p.R) * dt * ReferenceFrameRate
	p.X, p.Y = clampToMap(p.X+ax*step, p.Y+ay*step, p.R)
}
