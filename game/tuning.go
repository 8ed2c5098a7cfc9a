package game

import "time"

// Startup-fixed tunables, overridable from the environment before the
// arena starts. No hot reload: mutate only during boot or in tests.
var (
	MapSize = 5000.0

	InitialRadius = 20.0

	// Larger players move slower: speed = BaseSpeed * InitialRadius / r,
	// clamped to [MinSpeed, MaxSpeed].
	BaseSpeed = 5.0

	VoiceRange = 200.0

	FoodCount  = 300
	VirusCount = 8

	BulletLifetime = 5 * time.Second
	SplitCooldown  = 10 * time.Second
)

const (
	MinRadius = 10.0
	MaxRadius = 400.0

	MinSpeed           = 1.0
	MaxSpeed           = 8.0
	ReferenceFrameRate = 60.0 // speed constants are tuned per 60fps frame

	MoveFreshness = 200 * time.Millisecond // input samples older than this are noise
	MoveDeadzone  = 0.01

	FoodMinRadius     = 3.0
	FoodMaxRadius     = 6.0
	FoodTransferRatio = 0.5

	VirusMinRadius    = 30.0
	VirusMaxRadius    = 45.0
	VirusSplitCount   = 10
	VirusRespawnDelay = 5 * time.Second
	VirusThinkEvery   = 100 * time.Millisecond
	VirusWanderEvery  = 2 * time.Second
	VirusFleeRadius   = 300.0
	VirusSpeed        = 3.0 // per think step, fleeing
	VirusWanderSpeed  = 1.0 // per think step, wandering

	// A player must be 10% larger to eat a virus or another player.
	EatDominance        = 1.1
	PlayerTransferRatio = 0.7 // 30% of the eaten radius is lost on purpose

	ProximityEvery = time.Second

	MinSplitRadius       = 30.0
	BulletRadiusFraction = 0.25
	BulletSpeed          = 12.0
	BulletCaptureRadius  = 10.0
	BulletTransferRatio  = 0.5 // share an intercepting player keeps

	MaxSnapshotFoods   = 200
	MaxSnapshotViruses = 20
	MaxSnapshotBullets = 50

	MaxBufferedMoves = 64
)

var playerPalette = []string{
	"#FF5252", "#2196F3", "#4CAF50", "#FFC107",
	"#9C27B0", "#FF9800", "#00BCD4", "#E91E63",
}

var foodPalette = []string{
	"#8BC34A", "#CDDC39", "#FFEB3B", "#FF7043", "#26C6DA", "#AB47BC",
}
