package main

import (
	"log"
	"trading_game/internal/client/app"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		log.Fatalf("game stopped: %v", err)
	}
}
