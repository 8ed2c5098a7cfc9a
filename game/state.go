package game

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Authoritative game state. The store is dumb: it holds entities keyed by
// id and knows nothing about collisions, edges or buffers. Cascading
// cleanup on player removal belongs to the callers.

type MoveSample struct {
	DX, DY float64
	At     time.Time
}

type Player struct {
	ID       string
	Nickname string
	Color    string
	X, Y     float64
	R        float64
	Speaking bool

	Moves       []MoveSample // pending input, drained once per tick
	LastSplitAt time.Time
	LastInputAt time.Time
	Neighbors   map[string]struct{} // voice-range proximity edges
}

type Food struct {
	ID       string
	X, Y     float64
	R        float64
	Color    string
	Fragment bool // scattered by a virus absorption
}

type Virus struct {
	ID   string
	X, Y float64
	R    float64

	NextThinkAt      time.Time
	WanderX, WanderY float64
	NextWanderAt     time.Time
}

type Bullet struct {
	ID        string
	OwnerID   string // weak reference, owner may be gone
	X, Y      float64
	R         float64
	Angle     float64
	CreatedAt time.Time
}

type State struct {
	Tick    int
	Players map[string]*Player
	Foods   map[string]*Food
	Viruses map[string]*Virus
	Bullets map[string]*Bullet

	NextProximityAt time.Time
	virusRespawns   []time.Time

	rng *rand.Rand
}

func NewState(now time.Time) *State {
	s := &State{
		Players: make(map[string]*Player),
		Foods:   make(map[string]*Food),
		Viruses: make(map[string]*Virus),
		Bullets: make(map[string]*Bullet),
		rng:     rand.New(rand.NewSource(now.UnixNano())),
	}
	for i := 0; i < FoodCount; i++ {
		s.SpawnFood()
	}
	for i := 0; i < VirusCount; i++ {
		s.SpawnVirus(now)
	}
	return s
}

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

// AddPlayer creates a player at a random position and returns it.
func (s *State) AddPlayer(nickname, color string, now time.Time) *Player {
	if nickname == "" {
		nickname = "Player"
	}
	if color == "" {
		color = playerPalette[s.rng.Intn(len(playerPalette))]
	}
	p := &Player{
		ID:          newID(),
		Nickname:    nickname,
		Color:       color,
		R:           InitialRadius,
		LastInputAt: now,
		Neighbors:   make(map[string]struct{}),
	}
	p.X, p.Y = s.safeSpawnPoint(p.R)
	s.Players[p.ID] = p
	return p
}

// safeSpawnPoint picks a position clear of viruses and of players big
// enough to eat a fresh spawn. Gives up after a bounded number of rolls
// on a crowded map.
func (s *State) safeSpawnPoint(r float64) (float64, float64) {
	var x, y float64
	for attempt := 0; attempt < 32; attempt++ {
		x, y = s.randomCoord(r), s.randomCoord(r)
		if s.spawnHazardAt(x, y, r) {
			continue
		}
		return x, y
	}
	return x, y
}

func (s *State) spawnHazardAt(x, y, r float64) bool {
	const margin = 50
	for _, v := range s.Viruses {
		if Overlaps(x, y, r+margin, v.X, v.Y, v.R) {
			return true
		}
	}
	for _, p := range s.Players {
		if p.R > r*EatDominance && Overlaps(x, y, r+margin, p.X, p.Y, p.R) {
			return true
		}
	}
	return false
}

func (s *State) RemovePlayer(id string) {
	delete(s.Players, id)
}

func (s *State) SpawnFood() *Food {
	f := &Food{
		ID:    newID(),
		R:     FoodMinRadius + s.rng.Float64()*(FoodMaxRadius-FoodMinRadius),
		Color: foodPalette[s.rng.Intn(len(foodPalette))],
	}
	f.X = s.randomCoord(f.R)
	f.Y = s.randomCoord(f.R)
	s.Foods[f.ID] = f
	return f
}

func (s *State) SpawnVirus(now time.Time) *Virus {
	v := &Virus{
		ID: newID(),
		R:  VirusMinRadius + s.rng.Float64()*(VirusMaxRadius-VirusMinRadius),
	}
	v.X = s.randomCoord(v.R)
	v.Y = s.randomCoord(v.R)
	v.WanderX = s.randomCoord(v.R)
	v.WanderY = s.randomCoord(v.R)
	v.NextWanderAt = now.Add(VirusWanderEvery)
	s.Viruses[v.ID] = v
	return v
}

// queueVirusRespawn schedules a replacement virus; StepViruses drains due
// entries.
func (s *State) queueVirusRespawn(now time.Time) {
	s.virusRespawns = append(s.virusRespawns, now.Add(VirusRespawnDelay))
}

// PlayerIDs returns ids in a stable order so passes that mutate the store
// mid-iteration behave deterministically.
func (s *State) PlayerIDs() []string {
	ids := make([]string, 0, len(s.Players))
	for id := range s.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *State) randomCoord(r float64) float64 {
	if 2*r >= MapSize {
		return MapSize / 2
	}
	return r + s.rng.Float64()*(MapSize-2*r)
}

// grow applies a radius transfer, honoring the hard cap.
func (p *Player) grow(delta float64) {
	p.R = clamp(p.R+delta, MinRadius, MaxRadius)
}
