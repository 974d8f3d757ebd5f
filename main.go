package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/config"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/server"
)

func main() {
	cfg := config.Default()
	if path := os.Getenv("MRC_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	cfg = config.FromEnv(cfg)

	cat := card.DefaultCatalog()
	if cfg.Deck.Path != "" {
		loaded, err := card.LoadDeck(cfg.Deck.Path)
		if err != nil {
			log.Fatal(err)
		}
		cat = loaded
	}

	app := server.NewApp(cfg, cat)
	handler := server.NewHandler(app, log.Default())

	addr := ":" + cfg.Server.Port
	fmt.Printf("mrc-bingo listening on %s (season seed %q, deck %d cards)\n", addr, cfg.Season.Seed, cat.Len())
	log.Fatal(http.ListenAndServe(addr, handler))
}
