package game

import (
	"math"
	"time"
)

// ResolveCollisions runs the full per-player rule set once, after movement.
// Players are processed in store-iteration order; a player eliminated
// earlier in the pass is skipped, so every rule guards on existence before
// mutating.
func ResolveCollisions(s *State, now time.Time) []Event {
	var events []Event
	for _, id := range s.PlayerIDs() {
		p, ok := s.Players[id]
		if !ok {
			continue // eliminated earlier in this pass
		}
		s.eatFood(p)
		events = append(events, s.resolveViruses(p, now)...)
		if _, alive := s.Players[id]; !alive {
			continue
		}
		events = append(events, s.resolvePlayers(p)...)
		if _, alive := s.Players[id]; !alive {
			continue
		}
		s.interceptBullets(p)
	}
	return events
}

// eatFood consumes at most one overlapping food per tick. The containment
// bound is the player's radius alone, not the sum: the test deliberately
// favors the player. Each consumed food is respawned elsewhere to hold the
// population.
func (s *State) eatFood(p *Player) {
	for id, f := range s.Foods {
		if !Contains(p.X, p.Y, p.R, f.X, f.Y) {
			continue
		}
		p.grow(f.R * FoodTransferRatio)
		delete(s.Foods, id)
		s.SpawnFood()
		return
	}
}

func (s *State) resolveViruses(p *Player, now time.Time) []Event {
	var events []Event
	for id, v := range s.Viruses {
		if !Overlaps(p.X, p.Y, p.R, v.X, v.Y, v.R) {
			continue
		}
		switch {
		case p.R > v.R*EatDominance:
			// Risk/reward: the full virus radius is absorbed, but the
			// kill litters fragments around the eater for others to grab.
			p.grow(v.R)
			delete(s.Viruses, id)
			s.queueVirusRespawn(now)
			s.scatterFragments(p)
		case v.R > p.R*EatDominance:
			events = append(events, PlayerDied{ID: p.ID, Nick: p.Nickname, VirusID: id})
			events = append(events, s.eliminate(p.ID)...)
			return events
		}
	}
	return events
}

func (s *State) scatterFragments(p *Player) {
	for i := 0; i < VirusSplitCount; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		dist := p.R + 20 + s.rng.Float64()*80
		f := &Food{
			ID:       newID(),
			R:        FoodMinRadius + s.rng.Float64()*(FoodMaxRadius-FoodMinRadius),
			Color:    foodPalette[s.rng.Intn(len(foodPalette))],
			Fragment: true,
		}
		f.X, f.Y = clampToMap(p.X+math.Cos(angle)*dist, p.Y+math.Sin(angle)*dist, f.R)
		s.Foods[f.ID] = f
	}
}

func (s *State) resolvePlayers(p *Player) []Event {
	var events []Event
	for _, oid := range s.PlayerIDs() {
		if oid == p.ID {
			continue
		}
		o, ok := s.Players[oid]
		if !ok {
			continue
		}
		if !Overlaps(p.X, p.Y, p.R, o.X, o.Y, o.R) {
			continue
		}
		if p.R > o.R*EatDominance {
			// 70% transfer: the missing 30% is a deliberate sink, growth
			// must not be zero-sum.
			p.grow(o.R * PlayerTransferRatio)
			events = append(events, PlayerEaten{
				EaterID: p.ID, EaterNick: p.Nickname,
				EatenID: o.ID, EatenNick: o.Nickname,
			})
			events = append(events, s.eliminate(oid)...)
		}
	}
	return events
}

func (s *State) interceptBullets(p *Player) {
	for id, b := range s.Bullets {
		if b.OwnerID == p.ID {
			continue
		}
		if p.R > b.R*EatDominance && Overlaps(p.X, p.Y, p.R, b.X, b.Y, b.R) {
			p.grow(b.R * BulletTransferRatio)
			delete(s.Bullets, id)
		}
	}
}

// eliminate removes a player and tears down its proximity edges in the
// same operation. Safe to call for an id that is already gone.
func (s *State) eliminate(id string) []Event {
	events := TeardownEdges(s, id)
	s.RemovePlayer(id)
	return events
}
