package game

import "time"

// Voice proximity edges. Passes run at ~1Hz on an explicit deadline, not
// every tick, to bound notification traffic. The edge set is symmetric
// after every pass and after every teardown.

// ProximityPass recomputes all edges if the pass deadline has arrived.
// Each transition produces exactly one event per pair.
func ProximityPass(s *State, now time.Time) []Event {
	if now.Before(s.NextProximityAt) {
		return nil
	}
	s.NextProximityAt = now.Add(ProximityEvery)

	var events []Event
	ids := s.PlayerIDs()
	for i := 0; i < len(ids); i++ {
		a := s.Players[ids[i]]
		for j := i + 1; j < len(ids); j++ {
			b := s.Players[ids[j]]
			d2 := Dist2(a.X, a.Y, b.X, b.Y)
			within := d2 <= VoiceRange*VoiceRange
			_, linked := a.Neighbors[b.ID]

			switch {
			case within && !linked:
				a.Neighbors[b.ID] = struct{}{}
				b.Neighbors[a.ID] = struct{}{}
				events = append(events, VoiceConnected{
					AID: a.ID, ANick: a.Nickname,
					BID: b.ID, BNick: b.Nickname,
					Distance: Dist(a.X, a.Y, b.X, b.Y),
				})
			case !within && linked:
				delete(a.Neighbors, b.ID)
				delete(b.Neighbors, a.ID)
				events = append(events, VoiceDisconnected{AID: a.ID, BID: b.ID})
			}
		}
	}
	return events
}

// TeardownEdges drops every edge of a player about to be removed, emitting
// one disconnect event per neighbor. It must run in the same operation as
// the removal, never deferred to the next pass.
func TeardownEdges(s *State, id string) []Event {
	p, ok := s.Players[id]
	if !ok {
		return nil
	}
	var events []Event
	for nid := range p.Neighbors {
		if n, ok := s.Players[nid]; ok {
			delete(n.Neighbors, id)
		}
		events = append(events, VoiceDisconnected{AID: id, BID: nid})
	}
	p.Neighbors = make(map[string]struct{})
	return events
}

// VoiceVolume maps edge distance to playback volume with linear falloff
// and a small floor so a neighbor never goes fully silent.
func VoiceVolume(distance float64) float64 {
	v := 1 - distance/VoiceRange
	if v < 0.05 {
		v = 0.05
	}
	return v
}
