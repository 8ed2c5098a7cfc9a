package main

import (
	"log"
	"net/http"

	"agari/arena"
	"agari/config"
	"agari/game"
	"agari/network"
)

func main() {
	config.Load()
	port := config.String("PORT", "3000")

	// World tuning is fixed at startup, before the arena seeds its state.
	game.MapSize = config.Float("MAP_SIZE", game.MapSize)
	game.InitialRadius = config.Float("INITIAL_RADIUS", game.InitialRadius)
	game.BaseSpeed = config.Float("BASE_SPEED", game.BaseSpeed)
	game.VoiceRange = config.Float("VOICE_RANGE", game.VoiceRange)
	game.FoodCount = config.Int("FOOD_COUNT", game.FoodCount)
	game.VirusCount = config.Int("VIRUS_COUNT", game.VirusCount)
	game.BulletLifetime = config.Duration("BULLET_LIFETIME", game.BulletLifetime)
	game.SplitCooldown = config.Duration("SPLIT_COOLDOWN", game.SplitCooldown)

	a := arena.New()
	a.TickHz = config.Int("TICK_HZ", a.TickHz)
	a.IdleTimeout = config.Duration("IDLE_TIMEOUT", a.IdleTimeout)
	go a.Run()
	defer a.Stop()

	srv := network.NewServer(a)
	http.HandleFunc("/ws", srv.HandleWS)
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	log.Printf("server started on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}
