package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/db"
	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// No game can start without root words.
	if err := words.Init(cfg.WordsStartFile, cfg.WordsDictionaryFile); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	roots, dict := words.Default().Stats()
	log.Info().Int("roots", roots).Int("dictionary", dict).Msg("word lists loaded")

	conn, err := db.OpenAndMigrate(context.Background(), cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("failed to open database")
	}
	defer conn.Close()

	srv := httpserver.New(cfg, store.NewMemoryStore(), conn, words.Default())
	log.Info().Str("port", cfg.Port).Msg("starting wordscramble server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
