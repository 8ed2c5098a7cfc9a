package game

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrTooSmall = errors.New("too small to shoot")

// CooldownError rejects a shoot attempt made before the split cooldown has
// elapsed. Remaining is reported back to the client.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("split on cooldown for %s", e.Remaining)
}

// Shoot ejects a fraction of the player's radius as a bullet along the aim
// angle. The client's reported own position is used only to compute the
// angle; the bullet spawns at the server-side position.
func Shoot(s *State, playerID string, mouseX, mouseY, playerX, playerY float64, now time.Time) (*Bullet, error) {
	p, ok := s.Players[playerID]
	if !ok {
		return nil, fmt.Errorf("no such player %q", playerID)
	}
	if !p.LastSplitAt.IsZero() {
		if elapsed := now.Sub(p.LastSplitAt); elapsed < SplitCooldown {
			return nil, &CooldownError{Remaining: SplitCooldown - elapsed}
		}
	}
	if p.R < MinSplitRadius {
		return nil, ErrTooSmall
	}

	angle := math.Atan2(mouseY-playerY, mouseX-playerX)
	br := p.R * BulletRadiusFraction
	p.grow(-br)

	b := &Bullet{
		ID:        newID(),
		OwnerID:   p.ID,
		R:         br,
		Angle:     angle,
		CreatedAt: now,
	}
	// spawn just past the firer's edge so it doesn't count as captured
	// on the very next tick
	offset := p.R + br + 2
	b.X, b.Y = clampToMap(p.X+math.Cos(angle)*offset, p.Y+math.Sin(angle)*offset, b.R)
	s.Bullets[b.ID] = b
	p.LastSplitAt = now
	return b, nil
}

// StepBullets advances every bullet toward its owner's current position.
// Bullets whose owner is gone, or whose lifetime has elapsed, are dropped
// without crediting anyone.
func StepBullets(s *State, now time.Time, dt float64) {
	for id, b := range s.Bullets {
		owner, ok := s.Players[b.OwnerID]
		if !ok {
			delete(s.Bullets, id)
			continue
		}
		if now.Sub(b.CreatedAt) >= BulletLifetime {
			delete(s.Bullets, id)
			continue
		}

		dx := owner.X - b.X
		dy := owner.Y - b.Y
		d := math.Hypot(dx, dy)
		if d <= BulletCaptureRadius {
			owner.grow(b.R)
			delete(s.Bullets, id)
			continue
		}

		step := BulletSpeed * dt * ReferenceFrameRate
		if step >= d {
			b.X, b.Y = owner.X, owner.Y
		} else {
			b.X += dx / d * step
			b.Y += dy / d * step
		}
		b.X, b.Y = clampToMap(b.X, b.Y, b.R)
	}
}
