package game

import "time"

// Step runs one full tick in the required order: movement, collisions,
// virus agents, bullets, proximity. Events from all passes are returned
// for the caller to flush after the snapshot broadcast.
func Step(s *State, now time.Time, dt float64) []Event {
	s.Tick++

	IntegrateMovement(s, now, dt)
	events := ResolveCollisions(s, now)
	StepViruses(s, now)
	StepBullets(s, now, dt)
	events = append(events, ProximityPass(s, now)...)
	return events
}
